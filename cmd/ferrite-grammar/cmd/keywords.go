package cmd

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ferrite-lang/ferrite/internal/token"
)

func newKeywordsCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "keywords",
		Short: "List reserved words",
		Long: `Lists every reserved word in lexical order. Matching is case-sensitive,
so "self" and "Self" are different keywords.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			keywords := token.Keywords()
			opts.logger.Debug("listing keywords", "count", len(keywords))

			rows := make([][]string, 0, len(keywords))
			for i, kw := range keywords {
				rows = append(rows, []string{strconv.Itoa(i + 1), kw})
			}
			return render(cmd.OutOrStdout(), opts.format, keywords, []string{"#", "Keyword"}, rows)
		},
	}
}
