package main

import (
	"io"
	"os"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/mattn/go-isatty"
	"github.com/okian/fiprank/internal/domain/model"
)

type columnAlignment int

const (
	alignLeft columnAlignment = iota
	alignRight
)

func renderTable(out io.Writer, headers []string, rows [][]string, aligns []columnAlignment) string {
	columns := len(headers)
	if columns == 0 {
		return ""
	}

	tw := table.NewWriter()
	if isTerminal(out) {
		tw.SetStyle(table.StyleColoredBright)
	} else {
		tw.SetStyle(table.StyleRounded)
	}

	header := make(table.Row, columns)
	for i := 0; i < columns; i++ {
		header[i] = headers[i]
	}
	tw.AppendHeader(header)

	for _, row := range rows {
		r := make(table.Row, columns)
		for i := 0; i < columns; i++ {
			if i < len(row) {
				r[i] = row[i]
			} else {
				r[i] = ""
			}
		}
		tw.AppendRow(r)
	}

	columnConfigs := make([]table.ColumnConfig, 0, columns)
	for i := 0; i < columns; i++ {
		align := text.AlignLeft
		if i < len(aligns) && aligns[i] == alignRight {
			align = text.AlignRight
		}
		columnConfigs = append(columnConfigs, table.ColumnConfig{
			Number:      i + 1,
			Align:       align,
			AlignHeader: text.AlignLeft,
		})
	}
	tw.SetColumnConfigs(columnConfigs)

	return tw.Render()
}

// renderRecords adds delta columns only when at least one record has history.
func renderRecords(out io.Writer, records []model.Record) string {
	withHistory := false
	for _, r := range records {
		if len(r.History) > 0 {
			withHistory = true
			break
		}
	}

	headers := []string{"Position", "Name", "Country", "Points"}
	aligns := []columnAlignment{alignRight, alignLeft, alignLeft, alignRight}
	if withHistory {
		headers = append(headers, "+/- Position", "+/- Points", "Since")
		aligns = append(aligns, alignRight, alignRight, alignLeft)
	}

	rows := make([][]string, len(records))
	for i, r := range records {
		row := []string{
			strconv.Itoa(r.Position),
			r.Name,
			displayCountry(r.Country),
			strconv.Itoa(r.Points),
		}
		if withHistory {
			since := "-"
			if last, ok := r.LastHistory(); ok {
				since = last.Label
			}
			row = append(row, r.PositionDelta.String(), r.PointsDelta.String(), since)
		}
		rows[i] = row
	}
	return renderTable(out, headers, rows, aligns)
}

func displayCountry(code string) string {
	if code == "" {
		return "-"
	}
	return code
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
