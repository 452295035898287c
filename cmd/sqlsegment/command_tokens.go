package main

import (
	"fmt"

	"github.com/shibukawa/sqlsegment"
	"github.com/shibukawa/sqlsegment/tokenizer"
)

// TokensCmd represents the tokens command
type TokensCmd struct {
	File      string `arg:"" optional:"" help:"SQL file (default: stdin)" type:"path"`
	SQL       string `help:"SQL text to tokenize instead of a file"`
	Dialect   string `short:"d" help:"SQL dialect (default: from config)"`
	SkipSpace bool   `short:"s" help:"Omit whitespace and comments"`
}

// Run executes the tokens command
func (cmd *TokensCmd) Run(ctx *Context) error {
	config, err := ctx.loadConfig()
	if err != nil {
		return err
	}

	src, err := readSource(ctx, cmd.File, cmd.SQL)
	if err != nil {
		return err
	}

	dialect := resolveDialect(cmd.Dialect, config)
	if !dialect.IsValid() {
		return fmt.Errorf("%w: invalid dialect '%s'", sqlsegment.ErrConfigValidation, dialect)
	}

	t := tokenizer.NewSqlTokenizer(src.SQL, dialect, tokenizer.TokenizerOptions{
		SkipWhitespace: cmd.SkipSpace,
		SkipComments:   cmd.SkipSpace,
	})

	for token, err := range t.Tokens() {
		if err != nil {
			return fmt.Errorf("%s: %w", src.Name, err)
		}

		if token.Type == tokenizer.EOF {
			break
		}

		fmt.Fprintf(ctx.Stdout, "%-8s %-18s %q\n", token.Position, token.Type, token.Value)
	}

	return nil
}
