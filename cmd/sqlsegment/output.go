package main

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/shibukawa/sqlsegment"
	"github.com/shibukawa/sqlsegment/segment"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type renderer func(w io.Writer, results []extraction) error

func newRenderer(format string) (renderer, error) {
	switch format {
	case sqlsegment.FormatYAML:
		return renderYAML, nil
	case sqlsegment.FormatJSON:
		return renderJSON, nil
	case sqlsegment.FormatText:
		return renderText, nil
	case sqlsegment.FormatCSV:
		return renderCSV, nil
	default:
		return nil, fmt.Errorf("%w: '%s': must be one of yaml, json, text, csv", ErrUnknownFormat, format)
	}
}

func renderYAML(w io.Writer, results []extraction) error {
	data, err := yaml.MarshalWithOptions(results, yaml.IndentSequence(true))
	if err != nil {
		return err
	}

	_, err = w.Write(data)

	return err
}

func renderJSON(w io.Writer, results []extraction) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")

	return encoder.Encode(results)
}

var titleCaser = cases.Title(language.English)

// label turns "order by" or "row_count" into "Order By" / "Row Count"
func label(name string) string {
	return titleCaser.String(strings.ReplaceAll(name, "_", " "))
}

func renderText(w io.Writer, results []extraction) error {
	var sb strings.Builder

	for i, result := range results {
		if i > 0 {
			sb.WriteString("\n")
		}

		sb.WriteString(result.Source + "\n")

		if result.err != nil {
			fmt.Fprintf(&sb, "  %s: %s\n", label("error"), result.Error)
			continue
		}

		writeItems(&sb, "group by", result.GroupBy)
		writeItems(&sb, "order by", result.OrderBy)

		if result.Limit != nil {
			fmt.Fprintf(&sb, "  %s:\n", label("limit"))
			writeLimitValue(&sb, "row_count", result.Limit.RowCount)
			writeLimitValue(&sb, "offset", result.Limit.Offset)
		}

		if len(result.GroupBy) == 0 && len(result.OrderBy) == 0 && result.Limit == nil {
			sb.WriteString("  (no segments)\n")
		}
	}

	_, err := io.WriteString(w, sb.String())

	return err
}

// itemKey renders the sort key of an item as written
func itemKey(item segment.ItemView) string {
	switch item.Kind {
	case segment.IndexItem:
		return strconv.Itoa(*item.Index)
	case segment.ExpressionItem:
		return item.Expression
	default:
		return item.Column
	}
}

func writeItems(sb *strings.Builder, name string, items []segment.ItemView) {
	if len(items) == 0 {
		return
	}

	fmt.Fprintf(sb, "  %s:\n", label(name))

	for i, item := range items {
		fmt.Fprintf(sb, "    %d. %s %s %s (nulls %s)\n", i+1, label(string(item.Kind)), itemKey(item), item.Direction, item.NullsDirection)
	}
}

func writeLimitValue(sb *strings.Builder, name string, value *segment.LimitValueView) {
	switch {
	case value == nil:
		return
	case value.ParameterIndex != nil:
		fmt.Fprintf(sb, "    %s: ?%d\n", label(name), *value.ParameterIndex)
	case value.Value != nil:
		fmt.Fprintf(sb, "    %s: %d\n", label(name), *value.Value)
	}
}

var csvHeader = []string{"source", "clause", "position", "kind", "key", "direction", "nulls_direction"}

// renderCSV writes one row per GROUP BY or ORDER BY item and per LIMIT value.
// Failed inputs produce a single "error" row.
func renderCSV(w io.Writer, results []extraction) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(csvHeader); err != nil {
		return err
	}

	for _, result := range results {
		if result.err != nil {
			_ = cw.Write([]string{result.Source, "error", "", "", result.Error, "", ""})
			continue
		}

		writeItemRows(cw, result.Source, "group_by", result.GroupBy)
		writeItemRows(cw, result.Source, "order_by", result.OrderBy)

		if result.Limit != nil {
			writeLimitRow(cw, result.Source, "row_count", result.Limit.RowCount)
			writeLimitRow(cw, result.Source, "offset", result.Limit.Offset)
		}
	}

	cw.Flush()

	return cw.Error()
}

func writeItemRows(cw *csv.Writer, source, clause string, items []segment.ItemView) {
	for i, item := range items {
		_ = cw.Write([]string{source, clause, strconv.Itoa(i + 1), string(item.Kind), itemKey(item), item.Direction, item.NullsDirection})
	}
}

func writeLimitRow(cw *csv.Writer, source, name string, value *segment.LimitValueView) {
	switch {
	case value == nil:
		return
	case value.ParameterIndex != nil:
		_ = cw.Write([]string{source, "limit", "", name, "?" + strconv.Itoa(*value.ParameterIndex), "", ""})
	case value.Value != nil:
		_ = cw.Write([]string{source, "limit", "", name, strconv.Itoa(*value.Value), "", ""})
	}
}
