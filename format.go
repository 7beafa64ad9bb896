package vendordoc

import (
	"strings"

	"github.com/fumiama/go-docx"
)

const headerMarker = "report created for"

// RunFormat is the subset of run formatting carried over to appended text.
type RunFormat struct {
	Bold      bool
	Italic    bool
	Underline string
	Font      *docx.RunFonts
	Size      string
	Color     string
	Style     string
}

// FormatOf captures the formatting of run. A nil run or a run without
// properties gives the zero RunFormat.
func FormatOf(run *docx.Run) RunFormat {
	var f RunFormat
	if run == nil || run.RunProperties == nil {
		return f
	}
	rp := run.RunProperties
	f.Bold = rp.Bold != nil
	f.Italic = rp.Italic != nil
	if rp.Underline != nil {
		f.Underline = rp.Underline.Val
		if f.Underline == "" {
			f.Underline = "single"
		}
	}
	if rp.Fonts != nil {
		fonts := *rp.Fonts
		f.Font = &fonts
	}
	if rp.Size != nil {
		f.Size = rp.Size.Val
	}
	if rp.Color != nil {
		f.Color = rp.Color.Val
	}
	if rp.RunStyle != nil {
		f.Style = rp.RunStyle.Val
	}
	return f
}

// Properties builds fresh run properties carrying f.
func (f RunFormat) Properties() *docx.RunProperties {
	rp := &docx.RunProperties{}
	if f.Bold {
		rp.Bold = &docx.Bold{}
	}
	if f.Italic {
		rp.Italic = &docx.Italic{}
	}
	if f.Underline != "" {
		rp.Underline = &docx.Underline{Val: f.Underline}
	}
	if f.Font != nil {
		fonts := *f.Font
		rp.Fonts = &fonts
	}
	if f.Size != "" {
		rp.Size = &docx.Size{Val: f.Size}
	}
	if f.Color != "" {
		rp.Color = &docx.Color{Val: f.Color}
	}
	if f.Style != "" {
		rp.RunStyle = &docx.RunStyle{Val: f.Style}
	}
	return rp
}

func firstRun(p *docx.Paragraph) *docx.Run {
	for _, child := range p.Children {
		if run, ok := child.(*docx.Run); ok {
			return run
		}
	}
	return nil
}

// appendClientName adds " <client>" to the first "Report Created For" header
// paragraph, formatted like that paragraph's first run. It reports whether a
// header was found.
func appendClientName(d *Document, clientName string) bool {
	for _, p := range d.Paragraphs() {
		if !strings.Contains(strings.ToLower(ParagraphText(p)), headerMarker) {
			continue
		}
		format := FormatOf(firstRun(p))
		p.Children = append(p.Children, textRun(" "+clientName, format.Properties()))
		return true
	}
	return false
}
