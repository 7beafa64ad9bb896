package vendordoc_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fumiama/go-docx"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/little-yangyang/vendordoc"
)

func fullRecord() vendordoc.Record {
	return vendordoc.Record{
		"company_type":             "Public",
		"fiscal_year_end":          "December 31",
		"estimated_annual_revenue": "$4.2B",
		"employees":                float64(12000),
		"competitors_core":         []any{"Acme", "Beta"},
		"vendor_profile_paragraph": "TechVendor builds <b>cloud</b> tooling &amp; services.",
		"matched_vendor_name":      "TechVendor Incorporated",
		"vendor_name":              "TechVendor",
		"recent_news": []any{
			map[string]any{"title": "A", "url": "http://x"},
			map[string]any{"title": "B"},
		},
	}
}

// valueCell finds the second cell of the first row labelled label.
func valueCell(t *testing.T, doc *vendordoc.Document, label string) *docx.WTableCell {
	t.Helper()
	for _, table := range doc.Tables() {
		for _, row := range table.TableRows {
			if len(row.TableCells) >= 2 && vendordoc.CellText(row.TableCells[0]) == label {
				return row.TableCells[1]
			}
		}
	}
	t.Fatalf("no row labelled %q", label)
	return nil
}

func paragraphTexts(cell *docx.WTableCell) []string {
	out := make([]string, 0, len(cell.Paragraphs))
	for _, p := range cell.Paragraphs {
		out = append(out, vendordoc.ParagraphText(p))
	}
	return out
}

func requireEveryCellHasParagraph(t *testing.T, doc *vendordoc.Document) {
	t.Helper()
	for ti, table := range doc.Tables() {
		for ri, row := range table.TableRows {
			for ci, cell := range row.TableCells {
				require.NotEmptyf(t, cell.Paragraphs, "table %d row %d cell %d has no paragraph", ti, ri, ci)
			}
		}
	}
}

func TestPopulateLabelRows(t *testing.T) {
	doc := vendordoc.Populate(vendordoc.SampleTemplate(), fullRecord(), "Acme Corp")

	require.Equal(t, "Public", vendordoc.CellText(valueCell(t, doc, "Company Type")))
	require.Equal(t, "December 31", vendordoc.CellText(valueCell(t, doc, "Fiscal Year End")))
	require.Equal(t, "$4.2B", vendordoc.CellText(valueCell(t, doc, "Estimated Annual Revenue")))
	require.Equal(t, "12000", vendordoc.CellText(valueCell(t, doc, "Employees")))
	require.Equal(t, "Acme, Beta", vendordoc.CellText(valueCell(t, doc, "Core Competitors")))
	requireEveryCellHasParagraph(t, doc)
}

func TestPopulateMissingFieldsRenderDefaults(t *testing.T) {
	doc := vendordoc.Populate(vendordoc.SampleTemplate(), vendordoc.Record{"unrelated": "x"}, "Acme Corp")

	for _, label := range []string{"Company Type", "Fiscal Year End", "Estimated Annual Revenue", "Employees", "Core Competitors", "Deal Description"} {
		require.Equal(t, "N/A", vendordoc.CellText(valueCell(t, doc, label)), label)
	}
	require.Equal(t, "N/A", vendordoc.CellText(valueCell(t, doc, "Overview")))

	news := valueCell(t, doc, "Recent News")
	require.Equal(t, []string{"No recent news available"}, paragraphTexts(news))
	requireEveryCellHasParagraph(t, doc)
}

func TestPopulateFalsyValuesRenderNotAvailable(t *testing.T) {
	rec := vendordoc.Record{
		"company_type":     "",
		"employees":        float64(0),
		"competitors_core": []any{},
		"recent_news":      []any{},
	}
	doc := vendordoc.Populate(vendordoc.SampleTemplate(), rec, "Acme Corp")

	require.Equal(t, "N/A", vendordoc.CellText(valueCell(t, doc, "Company Type")))
	require.Equal(t, "N/A", vendordoc.CellText(valueCell(t, doc, "Employees")))
	require.Equal(t, "N/A", vendordoc.CellText(valueCell(t, doc, "Core Competitors")))
	require.Equal(t, "No recent news available", vendordoc.CellText(valueCell(t, doc, "Recent News")))
}

func TestPopulateCompanyTypeVerbatim(t *testing.T) {
	for _, v := range []string{"Private (PE-backed)", "Subsidiary of Foo & Bar", "  spaced  "} {
		doc := vendordoc.Populate(vendordoc.SampleTemplate(), vendordoc.Record{"company_type": v}, "Acme")
		require.Equal(t, v, vendordoc.CellText(valueCell(t, doc, "Company Type")))
	}
}

func TestPopulateScalarCompetitors(t *testing.T) {
	doc := vendordoc.Populate(vendordoc.SampleTemplate(), vendordoc.Record{"competitors_core": "Gamma"}, "Acme")
	require.Equal(t, "Gamma", vendordoc.CellText(valueCell(t, doc, "Core Competitors")))
}

func TestPopulateVendorProfileIsItalicPlainText(t *testing.T) {
	doc := vendordoc.Populate(vendordoc.SampleTemplate(), fullRecord(), "Acme Corp")

	cell := valueCell(t, doc, "Overview")
	require.Len(t, cell.Paragraphs, 1)
	require.Equal(t, "TechVendor builds cloud tooling & services.", vendordoc.CellText(cell))

	run, ok := cell.Paragraphs[0].Children[0].(*docx.Run)
	require.True(t, ok)
	require.NotNil(t, run.RunProperties)
	require.NotNil(t, run.RunProperties.Italic)

	// The header row itself is left alone.
	require.Equal(t, "", vendordoc.CellText(valueCell(t, doc, "Vendor Profile")))
}

func TestPopulateVendorProfileKeepsProseVerbatim(t *testing.T) {
	profile := "Line one.\n\nSecond paragraph: pricing where cost<value and value>cost; uses <Acme Cloud> brand."
	doc := vendordoc.Populate(vendordoc.SampleTemplate(), vendordoc.Record{"vendor_profile_paragraph": profile}, "Acme")

	cell := valueCell(t, doc, "Overview")
	require.Equal(t, profile, vendordoc.CellText(cell))

	run := cell.Paragraphs[0].Children[0].(*docx.Run)
	var breaks int
	for _, child := range run.Children {
		if _, ok := child.(*docx.BarterRabbet); ok {
			breaks++
		}
	}
	require.Equal(t, 2, breaks)
}

func TestMultiLineValueSurvivesSave(t *testing.T) {
	rec := vendordoc.Record{
		"company_type":             "Public\nNASDAQ: TV",
		"vendor_profile_paragraph": "First.\nSecond <b>bold</b> & <Brand>.",
	}
	doc := vendordoc.Populate(vendordoc.SampleTemplate(), rec, "Acme")

	var buf bytes.Buffer
	require.NoError(t, doc.Save(&buf))
	reopened, err := vendordoc.Open(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	require.NoError(t, err)

	require.Equal(t, "Public\nNASDAQ: TV", vendordoc.CellText(valueCell(t, reopened, "Company Type")))
	require.Equal(t, "First.\nSecond bold & <Brand>.", vendordoc.CellText(valueCell(t, reopened, "Overview")))
}

func TestPopulateVendorResellerPrefersMatchedName(t *testing.T) {
	doc := vendordoc.Populate(vendordoc.SampleTemplate(), fullRecord(), "Acme Corp")
	parties := doc.Tables()[0]
	require.Equal(t, "TechVendor Incorporated", vendordoc.CellText(parties.TableRows[1].TableCells[0]))
	require.Equal(t, "", vendordoc.CellText(parties.TableRows[1].TableCells[1]))

	doc = vendordoc.Populate(vendordoc.SampleTemplate(), vendordoc.Record{"vendor_name": "Plain Vendor"}, "Acme Corp")
	require.Equal(t, "Plain Vendor", vendordoc.CellText(doc.Tables()[0].TableRows[1].TableCells[0]))
}

func TestPopulateVendorResellerWithoutRowBelow(t *testing.T) {
	d := docx.New().WithDefaultTheme()
	table := d.AddTable(1, 2, 9000, nil)
	table.TableRows[0].TableCells[0].AddParagraph().AddText("Vendor / Reseller")
	table.TableRows[0].TableCells[1].AddParagraph()

	doc := vendordoc.Populate(vendordoc.Wrap(d), vendordoc.Record{"vendor_name": "X"}, "Acme")
	require.Equal(t, "Vendor / Reseller", vendordoc.CellText(table.TableRows[0].TableCells[0]))
	requireEveryCellHasParagraph(t, doc)
}

func TestPopulateAppendsClientNameWithHeaderFormatting(t *testing.T) {
	doc := vendordoc.Populate(vendordoc.SampleTemplate(), fullRecord(), "Acme Corp")

	var header *docx.Paragraph
	for _, p := range doc.Paragraphs() {
		if strings.HasPrefix(vendordoc.ParagraphText(p), "Report Created For:") {
			header = p
		}
	}
	require.NotNil(t, header)
	require.Equal(t, "Report Created For: Acme Corp", vendordoc.ParagraphText(header))

	last, ok := header.Children[len(header.Children)-1].(*docx.Run)
	require.True(t, ok)
	require.NotNil(t, last.RunProperties.Bold)
	require.Nil(t, last.RunProperties.Italic)
	require.NotNil(t, last.RunProperties.Fonts)
	require.Equal(t, "Calibri", last.RunProperties.Fonts.ASCII)
}

func TestPopulateWithoutHeaderIsNoop(t *testing.T) {
	d := docx.New().WithDefaultTheme()
	d.AddParagraph().AddText("Nothing to see")
	doc := vendordoc.Populate(vendordoc.Wrap(d), vendordoc.Record{}, "Acme")
	require.Equal(t, "Nothing to see", vendordoc.ParagraphText(doc.Paragraphs()[0]))
}

func TestPopulateDealDescription(t *testing.T) {
	rec := fullRecord()
	rec["deal_description"] = "3-year license"
	doc := vendordoc.Populate(vendordoc.SampleTemplate(), rec, "Acme")
	require.Equal(t, "3-year license", vendordoc.CellText(valueCell(t, doc, "Deal Description")))
}

func TestPopulateLabelPriority(t *testing.T) {
	d := docx.New().WithDefaultTheme()
	labels := []string{"Revenue (Employees)", "Employee News", "Competitors"}
	table := d.AddTable(len(labels), 2, 9000, nil)
	for i, label := range labels {
		table.TableRows[i].TableCells[0].AddParagraph().AddText(label)
		table.TableRows[i].TableCells[1].AddParagraph().AddText("old")
	}

	rec := vendordoc.Record{
		"estimated_annual_revenue": "$1M",
		"employees":                "50",
		"competitors_core":         []any{"A"},
	}
	vendordoc.Populate(vendordoc.Wrap(d), rec, "Acme")

	got := []string{
		vendordoc.CellText(table.TableRows[0].TableCells[1]),
		vendordoc.CellText(table.TableRows[1].TableCells[1]),
		vendordoc.CellText(table.TableRows[2].TableCells[1]),
	}
	// "Competitors" without "core" matches nothing and keeps its text.
	want := []string{"$1M", "50", "old"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("cell values mismatch (-want +got):\n%s", diff)
	}
}

func TestPopulateClearsMultiParagraphCells(t *testing.T) {
	d := docx.New().WithDefaultTheme()
	table := d.AddTable(1, 2, 9000, nil)
	table.TableRows[0].TableCells[0].AddParagraph().AddText("Company Type")
	value := table.TableRows[0].TableCells[1]
	value.AddParagraph().Justification("center").AddText("first")
	value.AddParagraph().AddText("second")

	vendordoc.Populate(vendordoc.Wrap(d), vendordoc.Record{"company_type": "LLC"}, "Acme")

	require.Len(t, value.Paragraphs, 1)
	require.Equal(t, "LLC", vendordoc.CellText(value))
	require.NotNil(t, value.Paragraphs[0].Properties)
	require.Equal(t, "center", value.Paragraphs[0].Properties.Justification.Val)
}

func topLevelTexts(doc *vendordoc.Document) []string {
	var texts []string
	for _, p := range doc.Paragraphs() {
		texts = append(texts, vendordoc.ParagraphText(p))
	}
	return texts
}

func TestReplacePlaceholders(t *testing.T) {
	doc := vendordoc.SampleTemplate()
	vendordoc.ReplacePlaceholders(doc, []vendordoc.Substitution{
		{Token: vendordoc.ClientNameToken, Value: "Acme Corp"},
		{Token: vendordoc.VendorNameToken, Value: "TechVendor"},
	})
	require.Contains(t, topLevelTexts(doc), "Prepared for Acme Corp regarding TechVendor")
}

func TestReplacePlaceholdersAppliesInOrder(t *testing.T) {
	subs := []vendordoc.Substitution{
		{Token: vendordoc.ClientNameToken, Value: "Client " + vendordoc.VendorNameToken},
		{Token: vendordoc.VendorNameToken, Value: "V"},
	}
	for i := 0; i < 50; i++ {
		doc := vendordoc.SampleTemplate()
		vendordoc.ReplacePlaceholders(doc, subs)
		require.Contains(t, topLevelTexts(doc), "Prepared for Client V regarding V")
	}

	reversed := []vendordoc.Substitution{subs[1], subs[0]}
	doc := vendordoc.SampleTemplate()
	vendordoc.ReplacePlaceholders(doc, reversed)
	require.Contains(t, topLevelTexts(doc), "Prepared for Client [VENDOR_NAME] regarding V")
}

func TestReplacePlaceholdersKeepsLineBreaks(t *testing.T) {
	doc := vendordoc.SampleTemplate()
	vendordoc.ReplacePlaceholders(doc, []vendordoc.Substitution{
		{Token: vendordoc.ClientNameToken, Value: "Acme\nHoldings"},
	})
	require.Contains(t, topLevelTexts(doc), "Prepared for Acme\nHoldings regarding [VENDOR_NAME]")
}

func TestPopulatedDocumentSurvivesSave(t *testing.T) {
	doc := vendordoc.Populate(vendordoc.SampleTemplate(), fullRecord(), "Acme Corp")

	var buf bytes.Buffer
	require.NoError(t, doc.Save(&buf))

	reopened, err := vendordoc.Open(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	require.NoError(t, err)

	require.Equal(t, "Public", vendordoc.CellText(valueCell(t, reopened, "Company Type")))
	require.Equal(t, "Acme, Beta", vendordoc.CellText(valueCell(t, reopened, "Core Competitors")))

	news := valueCell(t, reopened, "Recent News")
	require.Equal(t, []string{"• A", "• B"}, paragraphTexts(news))

	link, ok := news.Paragraphs[0].Children[1].(*docx.Hyperlink)
	require.True(t, ok)
	target, err := reopened.Docx().ReferTarget(link.ID)
	require.NoError(t, err)
	require.Equal(t, "http://x", target)

	requireEveryCellHasParagraph(t, reopened)
}
