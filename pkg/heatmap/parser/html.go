package parser

import (
	"context"
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/ukaji3/heatmap-go/pkg/heatmap/models"
)

type cellKey struct {
	row int
	col int
}

// HTMLDocument is a parsed HTML document whose table body rows act as a
// row source. Rows are numbered from 1 across all tables in document order.
// Only <td> cells are returned, but column indexes count <th> cells too.
type HTMLDocument struct {
	root  *html.Node
	rows  []models.Row
	cells map[cellKey]*html.Node
}

// ParseHTML parses r and indexes every <tr> inside a <tbody>.
func ParseHTML(r io.Reader) (*HTMLDocument, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, err
	}

	doc := &HTMLDocument{
		root:  root,
		cells: make(map[cellKey]*html.Node),
	}
	doc.index(root, false)
	return doc, nil
}

func (d *HTMLDocument) index(n *html.Node, inBody bool) {
	if n.Type == html.ElementNode {
		switch n.DataAtom {
		case atom.Table:
			// a nested table starts its own body context
			inBody = false
		case atom.Tbody:
			inBody = true
		case atom.Tr:
			if inBody {
				d.addRow(n)
			}
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		d.index(c, inBody)
	}
}

func (d *HTMLDocument) addRow(tr *html.Node) {
	row := models.Row{Index: len(d.rows) + 1}
	col := 0
	for c := tr.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode {
			continue
		}
		switch c.DataAtom {
		case atom.Td:
			row.Cells = append(row.Cells, models.Cell{Col: col, Text: nodeText(c)})
			d.cells[cellKey{row.Index, col}] = c
			col++
		case atom.Th:
			col++
		}
	}
	d.rows = append(d.rows, row)
}

// Rows returns the indexed body rows.
func (d *HTMLDocument) Rows(ctx context.Context) ([]models.Row, error) {
	return d.rows, ctx.Err()
}

// Cell returns the <td> node at row and col, or nil.
func (d *HTMLDocument) Cell(row, col int) *html.Node {
	return d.cells[cellKey{row, col}]
}

// Render writes the document, including any modifications, to w.
func (d *HTMLDocument) Render(w io.Writer) error {
	return html.Render(w, d.root)
}

// nodeText concatenates the text of every descendant text node.
func nodeText(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return sb.String()
}
