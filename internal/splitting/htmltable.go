package splitting

import (
	"html"
	"regexp"
	"strings"
)

var (
	htmlTableRe = regexp.MustCompile(`(?is)<table\b[^>]*>(.*?)</table>`)
	htmlRowRe   = regexp.MustCompile(`(?is)<tr\b[^>]*>(.*?)</tr>`)
	htmlCellRe  = regexp.MustCompile(`(?is)<t[dh]\b[^>]*>(.*?)</t[dh]>`)
	htmlTagRe   = regexp.MustCompile(`(?s)<[^>]+>`)
)

// convertHTMLTables rewrites every <table>...</table> region in text into a
// pipe-delimited Markdown table, treating the first row as the header. Cell
// text has its own tags stripped, HTML entities unescaped, and any literal
// pipe escaped so it cannot be mistaken for a column separator downstream.
// A <table> region with no rows, or with no cells in any row, is left
// untouched.
func convertHTMLTables(text string) string {
	return htmlTableRe.ReplaceAllStringFunc(text, func(m string) string {
		sub := htmlTableRe.FindStringSubmatch(m)
		if sub == nil {
			return m
		}
		rows := extractRows(sub[1])
		if len(rows) == 0 {
			return m
		}

		cols := 0
		for _, row := range rows {
			if len(row) > cols {
				cols = len(row)
			}
		}
		if cols == 0 {
			return m
		}
		for i := range rows {
			for len(rows[i]) < cols {
				rows[i] = append(rows[i], "")
			}
		}

		header := rows[0]
		body := rows[1:]

		var sb strings.Builder
		sb.WriteString("| " + strings.Join(header, " | ") + " |\n")
		sepCells := make([]string, cols)
		for i := range sepCells {
			sepCells[i] = "----------"
		}
		sb.WriteString("| " + strings.Join(sepCells, " | ") + " |")
		for _, row := range body {
			sb.WriteString("\n| " + strings.Join(row, " | ") + " |")
		}
		return "\n\n" + sb.String() + "\n\n"
	})
}

func extractRows(tableInner string) [][]string {
	rowMatches := htmlRowRe.FindAllStringSubmatch(tableInner, -1)
	rows := make([][]string, 0, len(rowMatches))
	for _, rm := range rowMatches {
		cellMatches := htmlCellRe.FindAllStringSubmatch(rm[1], -1)
		row := make([]string, 0, len(cellMatches))
		for _, cm := range cellMatches {
			cell := htmlTagRe.ReplaceAllString(cm[1], "")
			cell = html.UnescapeString(cell)
			cell = strings.TrimSpace(cell)
			cell = strings.ReplaceAll(cell, "|", `\|`)
			row = append(row, cell)
		}
		if len(row) > 0 {
			rows = append(rows, row)
		}
	}
	return rows
}
