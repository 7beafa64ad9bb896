package vendordoc

import (
	"strings"

	"github.com/fumiama/go-docx"
)

// labelRule maps a row label to the value written into the row's second cell.
type labelRule struct {
	name  string
	match func(label string) bool
	apply func(p *Populator, cell *docx.WTableCell, rec Record)
}

func containsAny(subs ...string) func(string) bool {
	return func(label string) bool {
		for _, s := range subs {
			if strings.Contains(label, s) {
				return true
			}
		}
		return false
	}
}

func containsAll(subs ...string) func(string) bool {
	return func(label string) bool {
		for _, s := range subs {
			if !strings.Contains(label, s) {
				return false
			}
		}
		return true
	}
}

func scalarField(key string) func(*Populator, *docx.WTableCell, Record) {
	return func(_ *Populator, cell *docx.WTableCell, rec Record) {
		setCellText(cell, rec.Get(key))
	}
}

// labelRules is evaluated top to bottom and the first match wins, so a label
// such as "Employee News" is filled from employees.
var labelRules = []labelRule{
	{name: "company type", match: containsAny("company type"), apply: scalarField(FieldCompanyType)},
	{name: "fiscal year end", match: containsAny("fiscal year end"), apply: scalarField(FieldFiscalYearEnd)},
	{name: "revenue", match: containsAny("estimated annual revenue", "revenue"), apply: scalarField(FieldRevenue)},
	{name: "employees", match: containsAny("employees", "employee"), apply: scalarField(FieldEmployees)},
	{
		name:  "core competitors",
		match: containsAll("competitors", "core"),
		apply: func(_ *Populator, cell *docx.WTableCell, rec Record) {
			setCellText(cell, rec.Competitors())
		},
	},
	{
		name:  "recent news",
		match: containsAny("recent news", "news"),
		apply: func(p *Populator, cell *docx.WTableCell, rec Record) {
			p.renderNews(cell, rec.NewsItems())
		},
	},
	{name: "deal description", match: containsAny("deal description"), apply: scalarField(FieldDealDescription)},
}

func matchLabel(label string) (labelRule, bool) {
	for _, rule := range labelRules {
		if rule.match(label) {
			return rule, true
		}
	}
	return labelRule{}, false
}

func normalizeLabel(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
