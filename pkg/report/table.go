package report

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

type columnAlignment int

const (
	alignLeft columnAlignment = iota
	alignRight
)

func renderTable(title string, headers []string, rows [][]string, aligns []columnAlignment) string {
	columns := len(headers)
	if columns == 0 {
		return ""
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.SetTitle(title)

	header := make(table.Row, columns)
	for i := range columns {
		header[i] = headers[i]
	}
	tw.AppendHeader(header)

	for _, row := range rows {
		r := make(table.Row, columns)
		for i := range columns {
			if i < len(row) {
				r[i] = row[i]
			} else {
				r[i] = ""
			}
		}
		tw.AppendRow(r)
	}

	columnConfigs := make([]table.ColumnConfig, 0, columns)
	for i := range columns {
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

func formatValue(value float64) string {
	if value == float64(int64(value)) {
		return strconv.FormatInt(int64(value), 10)
	}
	return strconv.FormatFloat(value, 'f', 3, 64)
}

func joinEntries(entries []Entry) string {
	parts := make([]string, 0, len(entries))
	for _, entry := range entries {
		parts = append(parts, fmt.Sprintf("%s:%s", entry.NGram, formatValue(entry.Value)))
	}
	return strings.Join(parts, " ")
}

func entryTable(title string, entries []Entry) string {
	rows := make([][]string, 0, len(entries))
	for i, entry := range entries {
		rows = append(rows, []string{strconv.Itoa(i + 1), entry.NGram, formatValue(entry.Value)})
	}
	return renderTable(title, []string{"#", "N-gram", "Value"}, rows, []columnAlignment{alignRight, alignLeft, alignRight})
}

func (r *Report) tables() string {
	var b strings.Builder

	summary := [][]string{
		{"Words", strconv.Itoa(r.Words)},
		{"Unique words", strconv.Itoa(r.UniqueWords)},
		{"Mean word size", formatValue(r.MeanWordSize)},
		{"Median word size", formatValue(r.MedianWordSize)},
	}
	b.WriteString(renderTable("Summary", []string{"Metric", "Value"}, summary, []columnAlignment{alignLeft, alignRight}))
	b.WriteString("\n")

	b.WriteString(entryTable("Top letters", r.TopLetters))
	b.WriteString("\n")

	rows := make([][]string, 0, len(r.TopNGrams))
	for i, entry := range r.TopNGrams {
		row := []string{strconv.Itoa(i + 1), entry.NGram, formatValue(entry.Value), "", "", "", ""}
		if i < len(r.Percentages) {
			row[3] = formatValue(r.Percentages[i].Value)
		}
		if i < len(r.Positions) {
			p := r.Positions[i]
			row[4], row[5], row[6] = strconv.Itoa(p.Start), strconv.Itoa(p.Middle), strconv.Itoa(p.End)
		}
		rows = append(rows, row)
	}
	b.WriteString(renderTable(
		fmt.Sprintf("Top %d-grams", r.NGramSize),
		[]string{"#", "N-gram", "Count", "Share", "Start", "Middle", "End"},
		rows,
		[]columnAlignment{alignRight, alignLeft, alignRight, alignRight, alignRight, alignRight, alignRight},
	))
	b.WriteString("\n")

	siblings := make([][]string, 0, len(r.Siblings))
	for _, s := range r.Siblings {
		siblings = append(siblings, []string{joinEntries(s.Before), s.NGram, joinEntries(s.After)})
	}
	b.WriteString(renderTable("Siblings", []string{"Before", "N-gram", "After"}, siblings, []columnAlignment{alignRight, alignLeft, alignLeft}))
	b.WriteString("\n")

	b.WriteString(entryTable("Related n-grams", r.Related))
	b.WriteString("\n")

	carriers := make([][]string, 0, len(r.Carriers))
	for _, c := range r.Carriers {
		carriers = append(carriers, []string{c.Word, strings.Join(c.NGrams, " ")})
	}
	b.WriteString(renderTable("Words with top n-grams", []string{"Word", "N-grams"}, carriers, nil))
	b.WriteString("\n")

	b.WriteString(entryTable("Top words", r.TopWords))
	b.WriteString("\n")
	return b.String()
}

func (c *Comparison) tables() string {
	rows := make([][]string, 0, len(c.Sections))
	for _, s := range c.Sections {
		rows = append(rows, []string{
			s.Type,
			strings.Join(s.Shared, " "),
			strings.Join(s.OnlyFirst, " "),
			strings.Join(s.OnlySecond, " "),
		})
	}
	return renderTable("Comparison", []string{"Type", "Shared", "Only first", "Only second"}, rows, nil) + "\n"
}
