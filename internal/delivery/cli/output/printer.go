// Package output renders command results on the terminal, either as aligned
// tables or as JSON for scripting.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
)

const (
	FormatTable = "table"
	FormatJSON  = "json"
)

type Printer struct {
	out    io.Writer
	errOut io.Writer
	format string
}

func NewPrinter(out, errOut io.Writer) *Printer {
	return &Printer{out: out, errOut: errOut, format: FormatTable}
}

func (p *Printer) SetFormat(format string) error {
	switch strings.ToLower(format) {
	case FormatTable, "":
		p.format = FormatTable
	case FormatJSON:
		p.format = FormatJSON
	default:
		return fmt.Errorf("unknown output format %q, use table or json", format)
	}
	return nil
}

func (p *Printer) IsJSON() bool {
	return p.format == FormatJSON
}

// Render writes data as JSON, or calls table to draw it for humans.
func (p *Printer) Render(data interface{}, table func()) error {
	if p.IsJSON() {
		enc := json.NewEncoder(p.out)
		enc.SetIndent("", "  ")
		return enc.Encode(data)
	}
	table()
	return nil
}

// Table prints rows under headers with aligned columns.
func (p *Printer) Table(headers []string, rows [][]string) {
	if len(rows) == 0 {
		fmt.Fprintln(p.out, "(none)")
		return
	}

	w := tabwriter.NewWriter(p.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, strings.Join(headers, "\t"))
	for _, row := range rows {
		fmt.Fprintln(w, strings.Join(row, "\t"))
	}
	w.Flush()
}

// Field is one label/value line of a detail view.
type Field struct {
	Label string
	Value string
}

// Fields prints a detail block, skipping empty values.
func (p *Printer) Fields(fields ...Field) {
	w := tabwriter.NewWriter(p.out, 0, 0, 2, ' ', 0)
	for _, f := range fields {
		if f.Value == "" {
			continue
		}
		fmt.Fprintf(w, "%s:\t%s\n", f.Label, f.Value)
	}
	w.Flush()
}

// Section prints a heading separating blocks of a screen.
func (p *Printer) Section(title string) {
	fmt.Fprintf(p.out, "\n%s\n%s\n", title, strings.Repeat("-", len([]rune(title))))
}

func (p *Printer) Println(a ...interface{}) {
	fmt.Fprintln(p.out, a...)
}

func (p *Printer) Printf(format string, a ...interface{}) {
	fmt.Fprintf(p.out, format, a...)
}

// Error reports a failure on the error stream.
func (p *Printer) Error(err error) {
	fmt.Fprintf(p.errOut, "Error: %v\n", err)
}
