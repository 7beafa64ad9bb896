package vendordoc

import (
	"github.com/fumiama/go-docx"
)

const (
	noNewsText = "No recent news available"
	bullet     = "• "

	// newsIndent is the left indent of each news paragraph, in twips.
	newsIndent = 144
	// bulletSize is the bullet glyph size in half-points.
	bulletSize = "16"

	hyperlinkColor = "0563C1"
)

// DefaultHyperlinkStyle is the character style id Word assigns to hyperlinks
// in English templates.
const DefaultHyperlinkStyle = "Hyperlink"

// renderNews rebuilds cell as a bulleted list of items. Linked items become
// hyperlinks unless legacy is set, in which case every item is written as
// "date - headline: summary" text.
func (p *Populator) renderNews(cell *docx.WTableCell, items []NewsItem) {
	placeholder := resetCellContent(cell)
	if len(items) == 0 {
		placeholder.Children = append(placeholder.Children, textRun(noNewsText, nil))
		return
	}

	for _, item := range items {
		para := cell.AddParagraph()
		para.Properties = &docx.ParagraphProperties{
			Ind: &docx.Ind{Left: newsIndent},
		}
		para.Children = append(para.Children, textRun(bullet, &docx.RunProperties{
			Size:   &docx.Size{Val: bulletSize},
			SizeCs: &docx.SizeCs{Val: bulletSize},
		}))

		switch {
		case p.opts.LegacyNews:
			para.Children = append(para.Children, textRun(PlainText(item.Combined()), nil))
		case item.Linked():
			p.addLink(para, item)
		default:
			para.Children = append(para.Children, textRun(PlainText(item.Title()), nil))
		}
	}

	finalizeCellContent(cell, placeholder)
}

// addLink appends a hyperlink to item.URL. go-docx registers the external
// relationship on the document part and stores the label in instrText; the
// label is moved into a regular text node so Word displays it.
func (p *Populator) addLink(para *docx.Paragraph, item NewsItem) {
	label := PlainText(item.Title())
	if label == "" {
		label = item.URL
	}
	link := para.AddLink(label, item.URL)
	link.Run.InstrText = ""
	link.Run.RunProperties = &docx.RunProperties{
		RunStyle:  &docx.RunStyle{Val: p.opts.hyperlinkStyle()},
		Color:     &docx.Color{Val: hyperlinkColor},
		Underline: &docx.Underline{Val: "single"},
	}
	link.Run.Children = []interface{}{
		&docx.Text{Text: label, XMLSpace: "preserve"},
	}
}
