package vendordoc

import (
	"github.com/fumiama/go-docx"
)

// SampleTemplate builds an in-memory template with the layout the populator
// expects: a "Report Created For" header, legacy placeholders, a vendor /
// reseller table and the labelled profile table.
func SampleTemplate() *Document {
	doc := docx.New().WithDefaultTheme()

	doc.AddParagraph().AddText("Vendor Profile & Market Analysis").Size("32").Bold()
	doc.AddParagraph().AddText("Report Created For:").Bold().Font("Calibri", "Calibri", "Calibri", "")
	doc.AddParagraph().AddText("Prepared for " + ClientNameToken + " regarding " + VendorNameToken)

	parties := doc.AddTable(2, 2, 9000, nil)
	fillRow(parties.TableRows[0], "Vendor / Reseller", "Contract Term")
	fillRow(parties.TableRows[1], "", "")

	labels := []string{
		"Vendor Profile",
		"Overview",
		"Company Type",
		"Fiscal Year End",
		"Estimated Annual Revenue",
		"Employees",
		"Core Competitors",
		"Recent News",
		"Deal Description",
	}
	profile := doc.AddTable(len(labels), 2, 9000, nil)
	for i, label := range labels {
		fillRow(profile.TableRows[i], label, "")
	}

	return Wrap(doc)
}

func fillRow(row *docx.WTableRow, texts ...string) {
	for i, cell := range row.TableCells {
		p := cell.AddParagraph()
		if i < len(texts) && texts[i] != "" {
			p.AddText(texts[i])
		}
	}
}
