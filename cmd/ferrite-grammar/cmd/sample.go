package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ferrite-lang/ferrite/internal/ast"
	ferrors "github.com/ferrite-lang/ferrite/internal/errors"
	"github.com/ferrite-lang/ferrite/internal/position"
	"github.com/ferrite-lang/ferrite/internal/token"
)

// sampleTree builds `let x = 1 + 2;` the way a parser would: from scanned
// tokens, through the node constructors only.
func sampleTree() *ast.Ast {
	toks := []token.Token{
		token.Classify("let", 1, 1),
		token.Classify("x", 1, 5),
		token.New(token.Assign, "=", 1, 7),
		token.New(token.Int, "1", 1, 9),
		token.New(token.Plus, "+", 1, 11),
		token.New(token.Int, "2", 1, 13),
		token.New(token.Semicolon, ";", 1, 14),
	}

	one := ast.NewNumberLiteral(ast.SpanFrom(toks[3]), 1, toks[3].Literal)
	two := ast.NewNumberLiteral(ast.SpanFrom(toks[5]), 2, toks[5].Literal)
	sum := ast.NewBinaryExpression(ast.Cover(one, two), one, toks[4].Literal, two)
	let := ast.NewLetStatement(ast.SpanFrom(toks[0]).Union(ast.SpanFrom(toks[6])), ast.IdentifierFrom(toks[1]), sum)
	return ast.NewAst(let)
}

// sampleStats are gathered by read-only passes running side by side.
type sampleStats struct {
	nodes     *ast.SideTable[int]
	operators *ast.SideTable[token.Precedence]
}

func analyzeSample(ctx context.Context, tree *ast.Ast) (*sampleStats, error) {
	stats := &sampleStats{
		nodes:     ast.NewSideTable[int](),
		operators: ast.NewSideTable[token.Precedence](),
	}

	count := ast.PassFunc{PassName: "count", Fn: func(ctx context.Context, tree *ast.Ast) error {
		stats.nodes.Set(tree, ast.CountNodes(tree))
		return nil
	}}
	operators := ast.PassFunc{PassName: "operators", Fn: func(ctx context.Context, tree *ast.Ast) error {
		ast.Inspect(tree, func(n ast.Node) bool {
			if b, ok := n.(*ast.BinaryExpression); ok {
				stats.operators.Set(b, b.Precedence())
			}
			return ctx.Err() == nil
		})
		return ctx.Err()
	}}

	if err := ast.RunPasses(ctx, tree, count, operators); err != nil {
		return nil, err
	}
	return stats, nil
}

// located is one node on the path to a source position.
type located struct {
	Node   string `yaml:"node"`
	Span   string `yaml:"span"`
	Source string `yaml:"source"`
}

func parsePosition(s string) (position.Position, error) {
	var line, col int
	if n, err := fmt.Sscanf(s, "%d:%d", &line, &col); err != nil || n != 2 {
		return position.Position{}, ferrors.InvalidPosition(s)
	}
	pos := position.At(line, col)
	if !pos.IsValid() {
		return position.Position{}, ferrors.InvalidPosition(s)
	}
	return pos, nil
}

func locate(tree *ast.Ast, pos position.Position) []located {
	path := ast.Enclosing(tree, pos)
	out := make([]located, 0, len(path))
	for _, n := range path {
		out = append(out, located{Node: ast.NodeName(n), Span: n.GetSpan().String(), Source: n.String()})
	}
	return out
}

func newSampleCmd(opts *options) *cobra.Command {
	var at string

	cmd := &cobra.Command{
		Use:   "sample",
		Short: "Build and print a small syntax tree",
		Long: `Builds the tree for "let x = 1 + 2;" from scanned tokens and prints it.
Text output shows the source rendering; YAML output shows the full node
dump with spans. With --at, prints the nodes enclosing that position
instead, outermost first.`,
		Example: `  ferrite-grammar sample --at 1:13`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tree := sampleTree()

			stats, err := analyzeSample(cmd.Context(), tree)
			if err != nil {
				return err
			}
			nodes, _ := stats.nodes.Get(tree)
			opts.logger.Debug("sample analyzed", "nodes", nodes, "operators", stats.operators.Len())
			stats.operators.Range(func(n ast.Node, p token.Precedence) bool {
				opts.logger.Debug("operator", "expr", n.String(), "precedence", p.String(), "span", n.GetSpan().String())
				return true
			})

			out := cmd.OutOrStdout()
			if at != "" {
				pos, err := parsePosition(at)
				if err != nil {
					return err
				}
				path := locate(tree, pos)
				opts.logger.Debug("located position", "position", pos.String(), "depth", len(path))
				rows := make([][]string, 0, len(path))
				for _, l := range path {
					rows = append(rows, []string{l.Node, l.Span, l.Source})
				}
				return render(out, opts.format, path, []string{"Node", "Span", "Source"}, rows)
			}
			if opts.format == formatYAML {
				dump, err := ast.Dump(tree)
				if err != nil {
					return err
				}
				_, err = out.Write(dump)
				return err
			}
			_, err = fmt.Fprintf(out, "%s\n", tree)
			return err
		},
	}

	cmd.Flags().StringVar(&at, "at", "", "List the nodes enclosing LINE:COLUMN")
	return cmd
}
