package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/fedragon/tiff-ifd/tiff"
	"github.com/fedragon/tiff-ifd/tiff/entry"
)

// printer renders a document as an indented tree
type printer struct {
	width int // terminal width, 0 when values are not truncated

	group lipgloss.Style
	id    lipgloss.Style
	name  lipgloss.Style
	kind  lipgloss.Style
}

func newPrinter(width int) *printer {
	return &printer{
		width: width,
		group: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		id:    lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		name:  lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		kind:  lipgloss.NewStyle().Faint(true),
	}
}

func (p *printer) document(doc *tiff.Document) string {
	var b strings.Builder

	doc.Walk(func(dir tiff.Directory, group tiff.Group, depth int) {
		indent := strings.Repeat("    ", depth)
		b.WriteString(indent)
		b.WriteString(p.group.Render(fmt.Sprintf("%s 0x%X: %d entries, %d children", group, dir.ID, len(dir.Entries), len(dir.Children))))
		b.WriteByte('\n')

		var pointer entry.ID
		if depth > 0 {
			pointer = entry.ID(dir.ID)
		}
		for _, en := range dir.Entries {
			b.WriteString(p.line(indent+"  ", pointer, en))
			b.WriteByte('\n')
		}
	})

	return b.String()
}

func (p *printer) line(indent string, pointer entry.ID, en entry.Entry) string {
	name, ok := entry.NameIn(pointer, en.ID)
	if !ok {
		name = "Unknown"
	}

	prefix := fmt.Sprintf("%s%s %-26s %-10s ", indent,
		p.id.Render(fmt.Sprintf("0x%04X", uint16(en.ID))),
		p.name.Render(name),
		p.kind.Render(typeName(en.Value.DataType())))

	value := formatValue(en.Value)
	if p.width > 0 {
		value = truncate(value, p.width-lipgloss.Width(prefix))
	}

	return prefix + value
}

func typeName(dt entry.DataType) string {
	switch dt {
	case entry.DataType_UByte:
		return "byte"
	case entry.DataType_String:
		return "ascii"
	case entry.DataType_UShort:
		return "short"
	case entry.DataType_ULong:
		return "long"
	case entry.DataType_URational:
		return "rational"
	case entry.DataType_Byte:
		return "sbyte"
	case entry.DataType_UByte_Sequence:
		return "undefined"
	case entry.DataType_Short:
		return "sshort"
	case entry.DataType_Long:
		return "slong"
	case entry.DataType_Rational:
		return "srational"
	case entry.DataType_Single_Precision_IEEE_Format:
		return "float"
	case entry.DataType_Double_Precision_IEEE_Format:
		return "double"
	}
	return "?"
}

func formatValue(v entry.Value) string {
	switch v := v.(type) {
	case entry.String:
		return strconv.Quote(string(v))
	case entry.Undefined:
		return fmt.Sprintf("% X", []byte(v))
	default:
		return fmt.Sprint(v)
	}
}

func truncate(s string, width int) string {
	if width <= 1 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	return string(runes[:width-1]) + "…"
}
