package vendordoc

import (
	"strings"

	"github.com/fumiama/go-docx"
	"go.uber.org/zap"
)

const (
	vendorProfileLabel  = "vendor profile"
	vendorResellerLabel = "vendor / reseller"
)

// Options tunes the populator.
type Options struct {
	// LegacyNews renders news as "date - headline: summary" text without
	// hyperlinks.
	LegacyNews bool
	// HyperlinkStyle is the character style applied to news links.
	// Defaults to DefaultHyperlinkStyle.
	HyperlinkStyle string
}

func (o Options) hyperlinkStyle() string {
	if o.HyperlinkStyle == "" {
		return DefaultHyperlinkStyle
	}
	return o.HyperlinkStyle
}

// Populator fills the vendor profile template from a Record.
type Populator struct {
	opts Options
	log  *zap.Logger
}

// NewPopulator creates a Populator. A nil logger disables logging.
func NewPopulator(opts Options, log *zap.Logger) *Populator {
	if log == nil {
		log = zap.NewNop()
	}
	return &Populator{opts: opts, log: log}
}

// Populate fills doc with the default options.
func Populate(doc *Document, rec Record, clientName string) *Document {
	return NewPopulator(Options{}, nil).Populate(doc, rec, clientName)
}

// Populate mutates doc in place and returns it. Running it twice on the same
// document is not supported: filled cells can match the label rules again.
func (p *Populator) Populate(doc *Document, rec Record, clientName string) *Document {
	if !appendClientName(doc, clientName) {
		p.log.Debug("no report header paragraph found")
	}
	for i, table := range doc.Tables() {
		p.populateTable(table, rec)
		p.log.Debug("table populated", zap.Int("table", i), zap.Int("rows", len(table.TableRows)))
	}
	return doc
}

func (p *Populator) populateTable(table *docx.Table, rec Record) {
	p.placeVendorProfile(table, rec)
	p.placeVendorReseller(table, rec)

	for _, row := range table.TableRows {
		if len(row.TableCells) < 2 {
			continue
		}
		label := normalizeLabel(CellText(row.TableCells[0]))
		rule, ok := matchLabel(label)
		if !ok {
			continue
		}
		rule.apply(p, row.TableCells[1], rec)
		p.log.Debug("row filled", zap.String("rule", rule.name), zap.String("label", label))
	}
}

// placeVendorProfile writes the profile paragraph, in italics, into the second
// cell of the row under the first "Vendor Profile" header.
func (p *Populator) placeVendorProfile(table *docx.Table, rec Record) {
	for i, row := range table.TableRows {
		if len(row.TableCells) == 0 {
			continue
		}
		if !strings.Contains(normalizeLabel(CellText(row.TableCells[0])), vendorProfileLabel) {
			continue
		}
		if target := rowCell(table, i+1, 1); target != nil {
			setItalicText(target, PlainText(rec.String(FieldProfileParagraph)))
		}
		return
	}
}

// placeVendorReseller writes the vendor name under the first cell labelled
// "Vendor / Reseller", in the same column.
func (p *Populator) placeVendorReseller(table *docx.Table, rec Record) {
	for i, row := range table.TableRows {
		for j, cell := range row.TableCells {
			if !strings.Contains(strings.ToLower(CellText(cell)), vendorResellerLabel) {
				continue
			}
			if target := rowCell(table, i+1, j); target != nil {
				setCellText(target, rec.VendorName())
			}
			return
		}
	}
}

// Substitution replaces every occurrence of Token with Value.
type Substitution struct {
	Token string
	Value string
}

// ReplacePlaceholders substitutes literal tokens such as "[CLIENT_NAME]" in
// top-level paragraphs, applying subs one after another in the given order.
// Templates that predate the table layout rely on it.
func ReplacePlaceholders(doc *Document, subs []Substitution) {
	for _, para := range doc.Paragraphs() {
		text := ParagraphText(para)
		replaced := text
		for _, sub := range subs {
			replaced = strings.ReplaceAll(replaced, sub.Token, sub.Value)
		}
		if replaced != text {
			replaceParagraphText(para, replaced)
		}
	}
}
