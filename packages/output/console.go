package output

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/abdul-hamid-achik/expect/packages/report"
	"github.com/fatih/color"
)

type ConsoleFormatter struct {
	writer  io.Writer
	verbose bool
	noColor bool
}

type ConsoleOption func(*ConsoleFormatter)

func NewConsoleFormatter(opts ...ConsoleOption) *ConsoleFormatter {
	f := &ConsoleFormatter{
		writer: os.Stdout,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

func WithWriter(w io.Writer) ConsoleOption {
	return func(f *ConsoleFormatter) {
		f.writer = w
	}
}

// WithVerbose adds the path of every underlying failure to aggregated output.
func WithVerbose(v bool) ConsoleOption {
	return func(f *ConsoleFormatter) {
		f.verbose = v
	}
}

func WithNoColor(nc bool) ConsoleOption {
	return func(f *ConsoleFormatter) {
		f.noColor = nc
	}
}

func (f *ConsoleFormatter) color(attrs ...color.Attribute) func(a ...any) string {
	c := color.New(attrs...)
	if f.noColor {
		c.DisableColor()
	}
	return c.SprintFunc()
}

// Sprint renders a failure as it should appear in test output.
func (f *ConsoleFormatter) Sprint(failure *report.Failure) string {
	red := f.color(color.FgRed)
	header := f.color(color.FgRed, color.Bold)
	cyan := f.color(color.FgCyan)

	causes := failure.Causes()
	if len(causes) == 0 {
		return red(failure.Message)
	}

	var b strings.Builder
	title, _, _ := strings.Cut(failure.Message, "\n")
	b.WriteString(header(title))
	for _, c := range causes {
		b.WriteString("\n\t- ")
		b.WriteString(red(c.Message))
		if f.verbose {
			if name := c.Path.String(); name != "" {
				b.WriteString(" " + cyan("(at "+name+")"))
			}
		}
	}
	return b.String()
}

// FormatFailure writes a failure to the formatter's writer.
func (f *ConsoleFormatter) FormatFailure(failure *report.Failure) {
	fmt.Fprintln(f.writer, f.Sprint(failure))
}

func (f *ConsoleFormatter) FormatError(err error) {
	red := f.color(color.FgRed)
	fmt.Fprintf(f.writer, "%s %v\n", red("Error:"), err)
}
