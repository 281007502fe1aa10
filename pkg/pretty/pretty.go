// Package pretty renders JSON values as indented text for diagnostics.
package pretty

import (
	"bytes"
	"io"
	"os"
	"strings"

	"github.com/tidwall/gjson"
)

const DefaultPadding = 4

type Option func(*printer)

func WithPadding(padding int) Option {
	return func(p *printer) {
		if padding >= 0 {
			p.padding = padding
		}
	}
}

type printer struct {
	padding int
}

func newPrinter(options ...Option) *printer {
	p := &printer{
		padding: DefaultPadding,
	}

	for _, option := range options {
		option(p)
	}

	return p
}

// Format renders value with one object member or array element per line.
// Object members keep the order of the source document.
func Format(value gjson.Result, options ...Option) string {
	var buf bytes.Buffer

	p := newPrinter(options...)
	p.render(&buf, value, 0)

	return buf.String()
}

func Fprint(w io.Writer, value gjson.Result, options ...Option) error {
	var buf bytes.Buffer

	p := newPrinter(options...)
	p.render(&buf, value, 0)

	buf.WriteByte('\n')

	_, err := w.Write(buf.Bytes())
	return err
}

func Print(value gjson.Result, options ...Option) error {
	return Fprint(os.Stdout, value, options...)
}

func (p *printer) render(buf *bytes.Buffer, value gjson.Result, indent int) {
	switch {
	case value.IsObject():
		p.renderObject(buf, value, indent)

	case value.IsArray():
		p.renderArray(buf, value, indent)

	default:
		raw := strings.TrimSpace(value.Raw)

		if raw == "" {
			raw = "null"
		}

		buf.WriteString(raw)
	}
}

func (p *printer) renderObject(buf *bytes.Buffer, value gjson.Result, indent int) {
	count := 0

	value.ForEach(func(_, _ gjson.Result) bool {
		count++
		return true
	})

	if count == 0 {
		buf.WriteString("{}")
		return
	}

	buf.WriteString("{\n")

	i := 0

	value.ForEach(func(key, val gjson.Result) bool {
		buf.WriteString(strings.Repeat(" ", indent+p.padding))
		buf.WriteString(key.Raw)
		buf.WriteString(": ")

		p.render(buf, val, indent+p.padding)

		if i++; i < count {
			buf.WriteByte(',')
		}

		buf.WriteByte('\n')
		return true
	})

	buf.WriteString(strings.Repeat(" ", indent))
	buf.WriteByte('}')
}

func (p *printer) renderArray(buf *bytes.Buffer, value gjson.Result, indent int) {
	items := value.Array()

	if len(items) == 0 {
		buf.WriteString("[]")
		return
	}

	buf.WriteString("[\n")

	for i, item := range items {
		buf.WriteString(strings.Repeat(" ", indent+p.padding))

		p.render(buf, item, indent+p.padding)

		if i < len(items)-1 {
			buf.WriteByte(',')
		}

		buf.WriteByte('\n')
	}

	buf.WriteString(strings.Repeat(" ", indent))
	buf.WriteByte(']')
}
