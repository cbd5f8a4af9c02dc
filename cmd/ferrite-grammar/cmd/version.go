package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ferrite-lang/ferrite/internal/token"
)

type versionInfo struct {
	Grammar    string `yaml:"grammar"`
	Constraint string `yaml:"constraint,omitempty"`
	Compatible *bool  `yaml:"compatible,omitempty"`
}

func newVersionCmd(opts *options) *cobra.Command {
	var constraint string

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show the grammar version",
		Long: `Shows the version of the token vocabulary and tree shape. With --require
the command fails unless the grammar satisfies the given semver
constraint, so build scripts can pin the scanner and parser they pair.`,
		Example: `  ferrite-grammar version --require ">= 1.0, < 2.0"`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			info := versionInfo{Grammar: token.Version().String()}
			rows := [][]string{{"grammar", info.Grammar}}

			if constraint != "" {
				if err := token.CheckCompatible(constraint); err != nil {
					opts.logger.Warn("grammar version check failed", "constraint", constraint, "error", err)
					return err
				}
				ok := true
				info.Constraint, info.Compatible = constraint, &ok
				rows = append(rows, []string{"constraint", constraint}, []string{"compatible", "yes"})
				opts.logger.Debug("grammar version check passed", "constraint", constraint)
			}
			return render(cmd.OutOrStdout(), opts.format, info, []string{"Field", "Value"}, rows)
		},
	}
	cmd.Flags().StringVar(&constraint, "require", "", "Fail unless the grammar satisfies this semver constraint")
	return cmd
}
