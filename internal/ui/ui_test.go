package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/linkform/internal/model"
	"github.com/idilsaglam/linkform/internal/validate"
)

func useMono(t *testing.T) {
	t.Helper()
	require.NoError(t, SetTheme("mono"))
	t.Cleanup(func() { _ = SetTheme("classic") })
}

func TestSetTheme(t *testing.T) {
	useMono(t)
	assert.Equal(t, "ok", Current().SymValid)
	require.NoError(t, SetTheme("neon"))
	assert.Equal(t, "✔", Current().SymValid)
	assert.Error(t, SetTheme("plaid"))
}

func TestProgressBar(t *testing.T) {
	assert.Equal(t, "[█████░░░░░] 2/4", ProgressBar(2, 4, 10))
	assert.Equal(t, "[█████] 0/0", ProgressBar(0, 0, 1))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", Truncate("short", 10))
	assert.Equal(t, "abcdefg...", Truncate("abcdefghijklmnop", 10))
}

func TestReportLines(t *testing.T) {
	useMono(t)
	items := []model.Item{
		{ID: "a", Link: model.Link{Title: "google", URL: "https://google.com"}},
		{ID: "b", Link: model.Link{Title: "", URL: "teste"}},
	}
	shown := validate.State{Rows: map[int]validate.Row{
		1: {ID: "b", Errors: []validate.FieldError{
			{Field: validate.FieldTitle, Kind: validate.RequiredField, Message: "Title is required"},
			{Field: validate.FieldURL, Kind: validate.InvalidFormat, Message: "Invalid URL"},
		}},
	}}

	out := strings.Join(ReportLines(items, shown), "\n")
	assert.Contains(t, out, "Links   ok 1  x 1  Total 2")
	assert.Contains(t, out, " 1. google  https://google.com")
	assert.Contains(t, out, " 2. (no title)  teste")
	assert.Contains(t, out, "x title: Title is required")
	assert.Contains(t, out, "x url: Invalid URL")
}

func TestReportLines_Empty(t *testing.T) {
	useMono(t)
	out := strings.Join(ReportLines(nil, validate.State{}), "\n")
	assert.Contains(t, out, "No links found")
}

func TestOKFail(t *testing.T) {
	useMono(t)
	var buf bytes.Buffer
	OK(&buf, "submitted")
	Fail(&buf, "blocked")
	assert.Equal(t, "ok submitted\nx blocked\n", buf.String())
}

func TestPanelFramesLines(t *testing.T) {
	useMono(t)
	out := Panel([]string{"hello"})
	assert.Contains(t, out, "hello")
	assert.True(t, strings.HasPrefix(out, "┌"), out)
}
