package ui

import (
	"fmt"

	"github.com/idilsaglam/linkform/internal/model"
	"github.com/idilsaglam/linkform/internal/validate"
)

// Truncate shortens s to at most n runes, marking the cut with "...".
func Truncate(s string, n int) string {
	r := []rune(s)
	if n <= 3 || len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}

// Header summarises the list: valid rows, rows with shown errors, total.
func Header(total int, shown validate.State) string {
	t := Current()
	bad := len(shown.Rows)
	return fmt.Sprintf("%s   %s %d  %s %d  %s %d",
		t.Title.Render("Links"),
		t.Success.Render(t.SymValid), total-bad,
		t.Error.Render(t.SymInvalid), bad,
		t.Accent.Render("Total"), total,
	)
}

// RowLine renders one item as "NN. title  url".
func RowLine(pos int, it model.Item) string {
	t := Current()
	title := it.Title
	if title == "" {
		title = t.Muted.Render("(no title)")
	} else {
		title = Truncate(title, 40)
	}
	url := it.URL
	if url == "" {
		url = t.Muted.Render("(no url)")
	} else {
		url = t.Accent.Render(Truncate(url, 60))
	}
	return fmt.Sprintf("%s %s  %s", t.Muted.Render(fmt.Sprintf("%2d.", pos+1)), title, url)
}

// ErrorLines renders the shown errors of one row, one line per field.
func ErrorLines(row validate.Row) []string {
	t := Current()
	out := make([]string, 0, len(row.Errors))
	for _, e := range row.Errors {
		out = append(out, "    "+t.Error.Render(fmt.Sprintf("%s %s: %s", t.SymInvalid, e.Field, e.Message)))
	}
	return out
}

// ReportLines renders the whole list with its shown errors for a Panel.
func ReportLines(items []model.Item, shown validate.State) []string {
	t := Current()
	lines := []string{
		Header(len(items), shown),
		t.Muted.Render(ProgressBar(len(items)-len(shown.Rows), len(items), 28)),
		"",
	}
	if len(items) == 0 {
		lines = append(lines, t.Muted.Render("No links found. Add one to get started."))
		return lines
	}
	for i, it := range items {
		lines = append(lines, RowLine(i, it))
		if row, ok := shown.Rows[i]; ok {
			lines = append(lines, ErrorLines(row)...)
		}
	}
	return lines
}
