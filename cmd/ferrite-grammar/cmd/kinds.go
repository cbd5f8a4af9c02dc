package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ferrite-lang/ferrite/internal/token"
)

// kindInfo describes one token kind.
type kindInfo struct {
	Kind       string `yaml:"kind"`
	Category   string `yaml:"category"`
	Precedence string `yaml:"precedence"`
	Assoc      string `yaml:"assoc,omitempty"`
}

func category(k token.Kind) string {
	switch {
	case k.IsKeyword():
		return "keyword"
	case k.IsOperator():
		return "operator"
	case k.IsLiteral():
		return "literal"
	case k == token.Illegal || k == token.EOF:
		return "special"
	default:
		return "delimiter"
	}
}

func describe(k token.Kind) kindInfo {
	info := kindInfo{
		Kind:       k.String(),
		Category:   category(k),
		Precedence: token.PrecedenceOf(k).String(),
	}
	if token.PrecedenceOf(k) > token.PrecLowest {
		info.Assoc = "left"
		if k.IsRightAssoc() {
			info.Assoc = "right"
		}
	}
	return info
}

func newKindsCmd(opts *options) *cobra.Command {
	var only string

	cmd := &cobra.Command{
		Use:   "kinds",
		Short: "List every token kind",
		Long: `Lists every token kind a scanner may emit with its category, infix
precedence and associativity.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var infos []kindInfo
			for _, k := range token.Kinds() {
				info := describe(k)
				if only != "" && info.Category != only {
					continue
				}
				infos = append(infos, info)
			}
			opts.logger.Debug("listing kinds", "category", only, "count", len(infos))

			rows := make([][]string, 0, len(infos))
			for _, info := range infos {
				rows = append(rows, []string{info.Kind, info.Category, info.Precedence, info.Assoc})
			}
			return render(cmd.OutOrStdout(), opts.format, infos, []string{"Kind", "Category", "Precedence", "Assoc"}, rows)
		},
	}
	cmd.Flags().StringVar(&only, "category", "", "Only list kinds of this category (keyword, operator, literal, delimiter, special)")
	return cmd
}
