package token

import (
	"github.com/Masterminds/semver/v3"

	ferrors "github.com/ferrite-lang/ferrite/internal/errors"
)

// GrammarVersion identifies the revision of the token vocabulary and the
// precedence table. It changes whenever a kind is added or a level moves.
const GrammarVersion = "1.0.0"

var grammarVersion = semver.MustParse(GrammarVersion)

// Version returns the parsed grammar version.
func Version() *semver.Version { return grammarVersion }

// CheckCompatible reports whether this vocabulary satisfies a semver
// constraint such as "^1.0" declared by a scanner or parser.
func CheckCompatible(constraint string) error {
	c, err := semver.NewConstraint(constraint)
	if err != nil {
		return ferrors.InvalidConstraint(constraint, err)
	}
	if !c.Check(grammarVersion) {
		return ferrors.IncompatibleGrammar(GrammarVersion, constraint)
	}
	return nil
}
