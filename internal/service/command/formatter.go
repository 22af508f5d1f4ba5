package command

import (
	"fmt"
	"strings"
)

const ruleWidth = 80

// Column is a fixed-width table column. Width pads the row cells and
// TitleWidth the header cell; 0 leaves the cell unpadded.
type Column struct {
	Title      string
	Width      int
	TitleWidth int
}

type ResponseFormatter struct{}

func NewResponseFormatter() *ResponseFormatter {
	return &ResponseFormatter{}
}

func (f *ResponseFormatter) NotFound(input string) string {
	return fmt.Sprintf("Command not found: %s. Type 'help' for a list of commands.", input)
}

func (f *ResponseFormatter) Error(err error) string {
	return fmt.Sprintf("Error: %v", err)
}

// Usage renders one help line, e.g. "  ping <host>   - Simulates a ping...".
func (f *ResponseFormatter) Usage(usage, description string) string {
	return fmt.Sprintf("  %-14s- %s\n", usage, description)
}

func (f *ResponseFormatter) Rule() string {
	return strings.Repeat("-", ruleWidth)
}

// Table renders tab-separated rows padded to Width under a header padded to
// TitleWidth and a horizontal rule.
func (f *ResponseFormatter) Table(columns []Column, rows [][]string) string {
	var sb strings.Builder

	titles := make([]string, len(columns))
	for i, c := range columns {
		titles[i] = pad(c.Title, c.TitleWidth)
	}
	sb.WriteString(strings.Join(titles, "\t"))
	sb.WriteString("\n")
	sb.WriteString(f.Rule())

	for _, cells := range rows {
		sb.WriteString("\n")
		sb.WriteString(f.row(columns, cells))
	}
	return sb.String()
}

func (f *ResponseFormatter) row(columns []Column, cells []string) string {
	padded := make([]string, len(columns))
	for i, c := range columns {
		var cell string
		if i < len(cells) {
			cell = cells[i]
		}
		padded[i] = pad(cell, c.Width)
	}
	return strings.Join(padded, "\t")
}

func pad(cell string, width int) string {
	if width <= 0 {
		return cell
	}
	return fmt.Sprintf("%-*s", width, cell)
}

func (f *ResponseFormatter) Combine(sections ...string) string {
	return strings.Join(sections, "\n")
}
