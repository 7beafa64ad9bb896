package vendordoc

import (
	"github.com/fumiama/go-docx"
)

// A table cell must always hold at least one paragraph or Word refuses to open
// the file. Everything that rewrites a cell goes through resetCellContent and
// finalizeCellContent instead of touching cell.Paragraphs.

// resetCellContent drops every paragraph of cell and leaves a single empty
// placeholder, which it returns. The placeholder inherits the paragraph
// properties of the old first paragraph so alignment and style survive.
func resetCellContent(cell *docx.WTableCell) *docx.Paragraph {
	var props *docx.ParagraphProperties
	if len(cell.Paragraphs) > 0 && cell.Paragraphs[0].Properties != nil {
		cp := *cell.Paragraphs[0].Properties
		props = &cp
	}
	cell.Paragraphs = cell.Paragraphs[:0]
	p := cell.AddParagraph()
	p.Properties = props
	return p
}

// finalizeCellContent removes the placeholder returned by resetCellContent
// once real content follows it. A cell is never left without a paragraph.
func finalizeCellContent(cell *docx.WTableCell, placeholder *docx.Paragraph) {
	if len(cell.Paragraphs) < 2 {
		return
	}
	kept := make([]*docx.Paragraph, 0, len(cell.Paragraphs)-1)
	for _, p := range cell.Paragraphs {
		if p != placeholder {
			kept = append(kept, p)
		}
	}
	if len(kept) == 0 {
		kept = append(kept, placeholder)
	}
	cell.Paragraphs = kept
}

// setCellText replaces the cell content with value, or N/A when value is empty.
func setCellText(cell *docx.WTableCell, value any) {
	p := resetCellContent(cell)
	p.Children = append(p.Children, textRun(displayValue(value), nil))
}

// setItalicText is setCellText with the run set in italics.
func setItalicText(cell *docx.WTableCell, value any) {
	p := resetCellContent(cell)
	p.Children = append(p.Children, textRun(displayValue(value), &docx.RunProperties{Italic: &docx.Italic{}}))
}

func rowCell(table *docx.Table, row, col int) *docx.WTableCell {
	if row < 0 || row >= len(table.TableRows) {
		return nil
	}
	cells := table.TableRows[row].TableCells
	if col < 0 || col >= len(cells) {
		return nil
	}
	return cells[col]
}
