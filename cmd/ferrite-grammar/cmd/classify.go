package cmd

import (
	"unicode/utf8"

	"github.com/spf13/cobra"

	"github.com/ferrite-lang/ferrite/internal/token"
)

// classification is the scanner's view of one lexeme.
type classification struct {
	Lexeme     string `yaml:"lexeme"`
	Kind       string `yaml:"kind"`
	Category   string `yaml:"category"`
	Precedence string `yaml:"precedence"`
	Span       string `yaml:"span"`
}

// classifyLexemes treats args as one line of source separated by single
// spaces. Operator and delimiter spellings resolve to their symbol kinds;
// everything else is classified as an identifier-shaped lexeme.
func classifyLexemes(args []string) []classification {
	out := make([]classification, 0, len(args))
	column := 1
	for _, lexeme := range args {
		var tok token.Token
		if k, ok := token.LookupSymbol(lexeme); ok {
			tok = token.New(k, lexeme, 1, column)
		} else {
			tok = token.Classify(lexeme, 1, column)
		}
		info := describe(tok.Kind)
		out = append(out, classification{
			Lexeme:     lexeme,
			Kind:       info.Kind,
			Category:   info.Category,
			Precedence: tok.Precedence().String(),
			Span:       tok.Span().String(),
		})
		column += utf8.RuneCountInString(lexeme) + 1
	}
	return out
}

func newClassifyCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "classify LEXEME...",
		Short: "Classify lexemes",
		Long: `Classifies each lexeme the way the scanner would. Keywords map to their
keyword kind, symbols to their operator or delimiter kind, and anything
else is an identifier.`,
		Example: `  ferrite-grammar classify let x += self Self`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			results := classifyLexemes(args)
			for _, r := range results {
				opts.logger.Debug("classified lexeme", "lexeme", r.Lexeme, "kind", r.Kind, "span", r.Span)
			}

			rows := make([][]string, 0, len(results))
			for _, r := range results {
				rows = append(rows, []string{r.Lexeme, r.Kind, r.Category, r.Precedence, r.Span})
			}
			return render(cmd.OutOrStdout(), opts.format, results,
				[]string{"Lexeme", "Kind", "Category", "Precedence", "Span"}, rows)
		},
	}
}
