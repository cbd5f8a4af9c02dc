// Package errors provides standardized error values for Ferrite front-end
// tooling. The grammar model itself cannot represent invalid states, so these
// errors describe contract misuse by collaborators: a scanner built against
// an incompatible vocabulary, a foreign node handed to a tree utility, or an
// analysis pass that failed while reading a tree.
package errors

import (
	"errors"
	"fmt"
	"runtime"
)

// ErrorCategory represents different categories of errors
type ErrorCategory string

const (
	CategoryGrammar  ErrorCategory = "GRAMMAR"
	CategoryAST      ErrorCategory = "AST"
	CategoryAnalysis ErrorCategory = "ANALYSIS"
)

// StandardError provides a consistent error format
type StandardError struct {
	Category ErrorCategory
	Code     string
	Message  string
	Context  map[string]interface{}
	Caller   string
	Err      error // Wrapped cause, may be nil
}

// Error implements the error interface
func (e *StandardError) Error() string {
	msg := fmt.Sprintf("[%s:%s] %s (caller: %s)", e.Category, e.Code, e.Message, e.Caller)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap exposes the wrapped cause to errors.Is and errors.As.
func (e *StandardError) Unwrap() error { return e.Err }

// NewStandardError creates a new standardized error
func NewStandardError(category ErrorCategory, code, message string, context map[string]interface{}) *StandardError {
	return newStandardError(2, category, code, message, context, nil)
}

func newStandardError(skip int, category ErrorCategory, code, message string, context map[string]interface{}, cause error) *StandardError {
	pc, _, _, ok := runtime.Caller(skip)
	caller := "unknown"
	if ok {
		if fn := runtime.FuncForPC(pc); fn != nil {
			caller = fn.Name()
		}
	}

	return &StandardError{
		Category: category,
		Code:     code,
		Message:  message,
		Context:  context,
		Caller:   caller,
		Err:      cause,
	}
}

// HasCode reports whether err (or anything it wraps) is a StandardError with the given code.
func HasCode(err error, code string) bool {
	var se *StandardError
	if errors.As(err, &se) {
		return se.Code == code
	}
	return false
}

// Common error constructors

func IncompatibleGrammar(version, constraint string) *StandardError {
	return newStandardError(2, CategoryGrammar, "INCOMPATIBLE_GRAMMAR",
		fmt.Sprintf("Grammar version %s does not satisfy %q", version, constraint),
		map[string]interface{}{"version": version, "constraint": constraint}, nil)
}

func InvalidConstraint(constraint string, cause error) *StandardError {
	return newStandardError(2, CategoryGrammar, "INVALID_CONSTRAINT",
		fmt.Sprintf("Invalid grammar version constraint %q", constraint),
		map[string]interface{}{"constraint": constraint}, cause)
}

func UnknownNode(node interface{}) *StandardError {
	return newStandardError(2, CategoryAST, "UNKNOWN_NODE",
		fmt.Sprintf("Node of type %T is not part of the Ferrite AST", node),
		map[string]interface{}{"type": fmt.Sprintf("%T", node)}, nil)
}

func PassFailed(pass string, cause error) *StandardError {
	return newStandardError(2, CategoryAnalysis, "PASS_FAILED",
		fmt.Sprintf("Analysis pass %s failed", pass),
		map[string]interface{}{"pass": pass}, cause)
}

func InvalidPosition(input string) *StandardError {
	return newStandardError(2, CategoryAST, "INVALID_POSITION",
		fmt.Sprintf("Position %q is not a LINE:COLUMN pair of positive numbers", input),
		map[string]interface{}{"position": input}, nil)
}
