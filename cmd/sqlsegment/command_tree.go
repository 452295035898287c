package main

import (
	"fmt"
	"sort"

	"github.com/shibukawa/sqlsegment/parser"
	"github.com/shibukawa/sqlsegment/syntaxtree"
)

// TreeCmd represents the tree command
type TreeCmd struct {
	File         string `arg:"" optional:"" help:"SQL file (default: stdin)" type:"path"`
	SQL          string `help:"SQL statement to parse instead of a file"`
	Dialect      string `short:"d" help:"SQL dialect (default: from config)"`
	Placeholders bool   `short:"p" help:"Also list parameter markers with their indexes"`
}

// Run executes the tree command
func (cmd *TreeCmd) Run(ctx *Context) error {
	config, err := ctx.loadConfig()
	if err != nil {
		return err
	}

	src, err := readSource(ctx, cmd.File, cmd.SQL)
	if err != nil {
		return err
	}

	result, err := parser.Parse(src.SQL, resolveDialect(cmd.Dialect, config))
	if err != nil {
		return fmt.Errorf("%s: %w", src.Name, err)
	}

	fmt.Fprint(ctx.Stdout, syntaxtree.Dump(result.Root))

	if cmd.Placeholders {
		writePlaceholders(ctx, result.Placeholders)
	}

	return nil
}

func writePlaceholders(ctx *Context, placeholders syntaxtree.PlaceholderIndex) {
	markers := make([]syntaxtree.Node, 0, len(placeholders))
	for node := range placeholders {
		markers = append(markers, node)
	}

	sort.Slice(markers, func(i, j int) bool {
		return placeholders[markers[i]] < placeholders[markers[j]]
	})

	fmt.Fprintln(ctx.Stdout, "PLACEHOLDERS")

	for _, marker := range markers {
		if rule, ok := marker.(*syntaxtree.RuleNode); ok {
			fmt.Fprintf(ctx.Stdout, "  %d: %s at %s\n", placeholders[marker], marker.Text(), rule.Position())
			continue
		}

		fmt.Fprintf(ctx.Stdout, "  %d: %s\n", placeholders[marker], marker.Text())
	}
}
