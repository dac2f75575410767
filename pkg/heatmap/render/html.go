package render

import (
	"fmt"
	"html"
	"io"
	"strings"

	nethtml "golang.org/x/net/html"

	"github.com/ukaji3/heatmap-go/pkg/heatmap/models"
	"github.com/ukaji3/heatmap-go/pkg/heatmap/parser"
)

// HTMLSink sets the background-color of <td> elements in a parsed document.
type HTMLSink struct {
	doc *parser.HTMLDocument
}

// NewHTMLSink creates a sink that writes into doc.
func NewHTMLSink(doc *parser.HTMLDocument) *HTMLSink {
	return &HTMLSink{doc: doc}
}

// SetBackground sets the cell's background-color declaration, keeping any
// other inline style declarations.
func (s *HTMLSink) SetBackground(row, col int, c models.RGB) error {
	n := s.doc.Cell(row, col)
	if n == nil {
		return fmt.Errorf("no cell at row %d col %d", row, col)
	}
	for i, a := range n.Attr {
		if a.Namespace == "" && strings.EqualFold(a.Key, "style") {
			n.Attr[i].Val = setDeclaration(a.Val, "background-color", c.CSS())
			return nil
		}
	}
	n.Attr = append(n.Attr, nethtml.Attribute{Key: "style", Val: "background-color: " + c.CSS() + ";"})
	return nil
}

// setDeclaration replaces or appends prop in an inline style string.
func setDeclaration(style, prop, value string) string {
	var decls []string
	for _, d := range strings.Split(style, ";") {
		d = strings.TrimSpace(d)
		if d == "" {
			continue
		}
		name, _, _ := strings.Cut(d, ":")
		if strings.EqualFold(strings.TrimSpace(name), prop) {
			continue
		}
		decls = append(decls, d)
	}
	decls = append(decls, prop+": "+value)
	return strings.Join(decls, "; ") + ";"
}

// WriteHTMLTable writes rows as a standalone HTML table, coloring cells
// with the colors held by rec. header, when non-empty, becomes a <thead>.
func WriteHTMLTable(w io.Writer, header []string, rows []models.Row, rec *Recorder) error {
	var builder strings.Builder

	builder.WriteString("<style>\n")
	builder.WriteString(".heatmap { border-collapse: collapse; }\n")
	builder.WriteString(".heatmap td, .heatmap th { border: 1px solid #333; padding: 4px 8px; text-align: right; }\n")
	builder.WriteString("</style>\n")
	builder.WriteString("<table class=\"heatmap\">\n")

	if len(header) > 0 {
		builder.WriteString("  <thead>\n    <tr>")
		for _, h := range header {
			builder.WriteString(fmt.Sprintf("<th>%s</th>", html.EscapeString(h)))
		}
		builder.WriteString("</tr>\n  </thead>\n")
	}

	builder.WriteString("  <tbody>\n")
	for _, row := range rows {
		builder.WriteString(fmt.Sprintf("    <tr data-row=\"%d\">", row.Index))
		for _, cell := range row.Cells {
			style := ""
			if c, ok := rec.Color(row.Index, cell.Col); ok {
				style = fmt.Sprintf(" style=\"background-color:%s;\"", c.CSS())
			}
			builder.WriteString(fmt.Sprintf("<td data-col=\"%d\"%s>%s</td>",
				cell.Col, style, html.EscapeString(cell.Text)))
		}
		builder.WriteString("</tr>\n")
	}
	builder.WriteString("  </tbody>\n</table>\n")

	_, err := io.WriteString(w, builder.String())
	return err
}
