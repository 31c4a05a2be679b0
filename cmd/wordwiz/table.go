package main

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

type columnAlignment int

const (
	alignLeft columnAlignment = iota
	alignRight
)

// minWrapWidth keeps wrapped columns readable on very narrow terminals.
const minWrapWidth = 20

// renderTable draws a rounded table with headers as given. When maxWidth is
// positive the last column is soft-wrapped so each row fits in maxWidth
// columns.
func renderTable(headers []string, rows [][]string, aligns []columnAlignment, maxWidth int) string {
	columns := len(headers)
	if columns == 0 {
		return ""
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.Style().Format.Header = text.FormatDefault

	header := make(table.Row, columns)
	for i, h := range headers {
		header[i] = h
	}
	tw.AppendHeader(header)

	for _, row := range rows {
		r := make(table.Row, columns)
		for i := range r {
			if i < len(row) {
				r[i] = row[i]
			} else {
				r[i] = ""
			}
		}
		tw.AppendRow(r)
	}

	configs := make([]table.ColumnConfig, columns)
	for i := range configs {
		align := text.AlignLeft
		if i < len(aligns) && aligns[i] == alignRight {
			align = text.AlignRight
		}
		configs[i] = table.ColumnConfig{
			Number:      i + 1,
			Align:       align,
			AlignHeader: text.AlignLeft,
		}
	}
	if maxWidth > 0 {
		last := &configs[columns-1]
		last.WidthMax = lastColumnWidth(headers, rows, maxWidth)
		last.WidthMaxEnforcer = text.WrapSoft
	}
	tw.SetColumnConfigs(configs)

	return tw.Render()
}

// lastColumnWidth returns the content width left for the last column once
// the other columns and the borders are laid out in maxWidth cells. Each
// column costs its widest cell (header included) plus three cells for
// padding and separator; the closing border costs one more.
func lastColumnWidth(headers []string, rows [][]string, maxWidth int) int {
	columns := len(headers)
	used := 3*columns + 1
	for i := 0; i < columns-1; i++ {
		width := text.StringWidthWithoutEscSequences(headers[i])
		for _, row := range rows {
			if i < len(row) {
				width = max(width, text.StringWidthWithoutEscSequences(row[i]))
			}
		}
		used += width
	}
	return max(minWrapWidth, maxWidth-used)
}
