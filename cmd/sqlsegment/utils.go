package main

import (
	"fmt"
	"io"
	"os"

	"github.com/shibukawa/sqlsegment"
)

const stdinName = "<stdin>"

// source is one SQL input with the name used in reports
type source struct {
	Name string
	SQL  string
}

// readSource reads a single SQL input from --sql, a file or stdin
func readSource(ctx *Context, file, sql string) (source, error) {
	switch {
	case sql != "" && file != "":
		return source{}, ErrConflictingInput
	case sql != "":
		return source{Name: "<sql>", SQL: sql}, nil
	case file != "":
		return readFile(file)
	default:
		data, err := io.ReadAll(ctx.Stdin)
		if err != nil {
			return source{}, fmt.Errorf("failed to read stdin: %w", err)
		}

		return source{Name: stdinName, SQL: string(data)}, nil
	}
}

// readFile reads a SQL file
func readFile(path string) (source, error) {
	if !fileExists(path) {
		return source{}, fmt.Errorf("%w: %s", ErrInputFileNotExist, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return source{}, fmt.Errorf("failed to read %s: %w", path, err)
	}

	return source{Name: path, SQL: string(data)}, nil
}

// resolveDialect prefers the command line value over the configuration
func resolveDialect(flag string, config *sqlsegment.Config) sqlsegment.Dialect {
	if flag != "" {
		return sqlsegment.Dialect(flag)
	}

	return config.Dialect
}

// fileExists checks if a file exists
func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
