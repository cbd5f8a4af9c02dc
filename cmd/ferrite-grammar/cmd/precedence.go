package cmd

import (
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ferrite-lang/ferrite/internal/token"
)

// level is one rung of the precedence ladder.
type level struct {
	Level     int      `yaml:"level"`
	Name      string   `yaml:"name"`
	Operators []string `yaml:"operators,flow"`
}

// ladder groups every kind with an infix role under its level. PrecLowest
// is left without operators; it is the parser's stop signal.
func ladder() []level {
	levels := make([]level, 0, len(token.Levels()))
	for _, p := range token.Levels() {
		l := level{Level: int(p), Name: p.String(), Operators: []string{}}
		if p != token.PrecLowest {
			for _, k := range token.Kinds() {
				if token.PrecedenceOf(k) == p {
					l.Operators = append(l.Operators, k.String())
				}
			}
		}
		levels = append(levels, l)
	}
	return levels
}

func newPrecedenceCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "precedence",
		Short: "Show the operator precedence ladder",
		Long: `Shows the precedence levels from loosest to tightest binding with the
token kinds that bind at each level. Levels without kinds are used only
for prefix or literal parsing.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			levels := ladder()
			opts.logger.Debug("listing precedence levels", "count", len(levels))

			rows := make([][]string, 0, len(levels))
			for _, l := range levels {
				rows = append(rows, []string{strconv.Itoa(l.Level), l.Name, strings.Join(l.Operators, " ")})
			}
			return render(cmd.OutOrStdout(), opts.format, levels, []string{"Level", "Name", "Kinds"}, rows)
		},
	}
}
