package ui

import (
	"bytes"
	"testing"
	"time"

	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func capture(t *testing.T) (*bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	prevOut, prevErr := Out, Err
	out, errBuf := &bytes.Buffer{}, &bytes.Buffer{}
	Out, Err = out, errBuf
	t.Cleanup(func() { Out, Err = prevOut, prevErr })
	return out, errBuf
}

func TestFormatValue(t *testing.T) {
	ts := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	tests := []struct {
		in   interface{}
		want string
	}{
		{nil, "NULL"},
		{"ibm", "ibm"},
		{[]byte("raw"), "raw"},
		{int64(42), "42"},
		{3.5, "3.5"},
		{1.0, "1"},
		{true, "true"},
		{ts, "2024-01-02T03:04:05Z"},
		{int32(7), "7"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatValue(tt.in))
	}
}

func TestRowsTable(t *testing.T) {
	cells := RowsTable([][]interface{}{
		{int64(1), "ibm", nil},
		{int64(2), "msft", 1.1},
	})
	assert.Equal(t, [][]string{{"1", "ibm", "NULL"}, {"2", "msft", "1.1"}}, cells)
	assert.Empty(t, RowsTable(nil))
}

func TestPrintTable(t *testing.T) {
	pterm.DisableStyling()
	defer pterm.EnableStyling()
	out, _ := capture(t)

	require.NoError(t, PrintTable([]string{"ticker", "price"}, [][]string{{"ibm", "150"}}))
	assert.Contains(t, out.String(), "ticker")
	assert.Contains(t, out.String(), "ibm")
	assert.Contains(t, out.String(), "150")
}

func TestMessages(t *testing.T) {
	out, errBuf := capture(t)

	PrintSuccess("created %s", "stocks")
	PrintWarning("careful")
	PrintInfo("%d rows", 4)
	PrintStep(1, 3, "insert")
	PrintList([]string{"a", "b"})
	PrintCodeBlock("stocks", "  CREATE TABLE stocks (id integer)  ")
	PrintError("failed: %v", "boom")

	s := out.String()
	assert.Contains(t, s, "created stocks")
	assert.Contains(t, s, "careful")
	assert.Contains(t, s, "4 rows")
	assert.Contains(t, s, "[1/3]")
	assert.Contains(t, s, "• b")
	assert.Contains(t, s, "CREATE TABLE stocks (id integer)\n")
	assert.Contains(t, errBuf.String(), "failed: boom")
	assert.NotContains(t, s, "boom")
}

func TestConfirm_AssumeYes(t *testing.T) {
	ok, err := Confirm("drop table?", true)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestHighlight(t *testing.T) {
	assert.Contains(t, Highlight("stocks"), "stocks")
}
