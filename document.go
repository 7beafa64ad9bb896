package vendordoc

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fumiama/go-docx"
)

// Document wraps a parsed docx file. It is owned by a single request and must
// not be shared between goroutines.
type Document struct {
	doc *docx.Docx
}

// Open parses a docx document from r
func Open(r io.ReaderAt, size int64) (*Document, error) {
	doc, err := docx.Parse(r, size)
	if err != nil {
		return nil, err
	}
	return &Document{doc: doc}, nil
}

// OpenFile reads and parses the docx file at path.
func OpenFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Open(bytes.NewReader(data), int64(len(data)))
}

// Wrap exposes an in-memory go-docx document through the populator API.
func Wrap(doc *docx.Docx) *Document {
	return &Document{doc: doc}
}

// Docx returns the underlying go-docx document.
func (d *Document) Docx() *docx.Docx {
	return d.doc
}

// Save writes the document to w
func (d *Document) Save(w io.Writer) error {
	_, err := d.doc.WriteTo(w)
	return err
}

// SaveFile writes the document to path, replacing any existing file.
func (d *Document) SaveFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := d.Save(f); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}

// Tables returns the top-level tables in body order.
func (d *Document) Tables() []*docx.Table {
	var tables []*docx.Table
	for _, item := range d.doc.Document.Body.Items {
		if t, ok := item.(*docx.Table); ok {
			tables = append(tables, t)
		}
	}
	return tables
}

// Paragraphs returns the top-level paragraphs in body order.
func (d *Document) Paragraphs() []*docx.Paragraph {
	var paragraphs []*docx.Paragraph
	for _, item := range d.doc.Document.Body.Items {
		if p, ok := item.(*docx.Paragraph); ok {
			paragraphs = append(paragraphs, p)
		}
	}
	return paragraphs
}

// ParagraphText returns the visible text of p, including hyperlink text.
func ParagraphText(p *docx.Paragraph) string {
	var sb strings.Builder
	for _, child := range p.Children {
		switch c := child.(type) {
		case *docx.Run:
			writeRunText(&sb, c)
		case *docx.Hyperlink:
			if !writeRunText(&sb, &c.Run) {
				sb.WriteString(c.Run.InstrText)
			}
		}
	}
	return sb.String()
}

func writeRunText(sb *strings.Builder, run *docx.Run) bool {
	wrote := false
	for _, runChild := range run.Children {
		switch t := runChild.(type) {
		case *docx.Text:
			sb.WriteString(t.Text)
			wrote = true
		case *docx.Tab:
			sb.WriteByte('\t')
		case *docx.BarterRabbet:
			sb.WriteByte('\n')
		}
	}
	return wrote
}

// CellText returns the text of every paragraph in cell joined by newlines.
func CellText(cell *docx.WTableCell) string {
	parts := make([]string, 0, len(cell.Paragraphs))
	for _, p := range cell.Paragraphs {
		parts = append(parts, ParagraphText(p))
	}
	return strings.Join(parts, "\n")
}

// replaceParagraphText puts newText in place of the first text node of p and
// blanks the rest, keeping the formatting of the first run.
func replaceParagraphText(p *docx.Paragraph, newText string) {
	placed := false
	for _, child := range p.Children {
		run, ok := child.(*docx.Run)
		if !ok {
			continue
		}
		children := make([]interface{}, 0, len(run.Children))
		for _, runChild := range run.Children {
			text, ok := runChild.(*docx.Text)
			if !ok {
				children = append(children, runChild)
				continue
			}
			if !placed {
				children = append(children, textNodes(newText)...)
				placed = true
				continue
			}
			text.Text = ""
			children = append(children, text)
		}
		run.Children = children
	}
	if !placed && newText != "" {
		p.Children = append(p.Children, textRun(newText, nil))
	}
}

// textRun builds a run holding text, with line breaks and tabs as their own
// nodes.
func textRun(text string, props *docx.RunProperties) *docx.Run {
	if props == nil {
		props = &docx.RunProperties{}
	}
	return &docx.Run{
		RunProperties: props,
		Children:      textNodes(text),
	}
}

// textNodes splits text the way go-docx AddText does, but marks every text
// node space-preserving so leading and trailing spaces survive.
func textNodes(text string) []interface{} {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	nodes := make([]interface{}, 0, 1)
	for i, line := range strings.Split(text, "\n") {
		if i > 0 {
			nodes = append(nodes, &docx.BarterRabbet{})
		}
		for j, piece := range strings.Split(line, "\t") {
			if j > 0 {
				nodes = append(nodes, &docx.Tab{})
			}
			if piece != "" {
				nodes = append(nodes, &docx.Text{Text: piece, XMLSpace: "preserve"})
			}
		}
	}
	if len(nodes) == 0 {
		nodes = append(nodes, &docx.Text{XMLSpace: "preserve"})
	}
	return nodes
}
