package vendordoc

import (
	"fmt"
	"strconv"
	"strings"
)

// Recognized research_data keys.
const (
	FieldCompanyType       = "company_type"
	FieldFiscalYearEnd     = "fiscal_year_end"
	FieldRevenue           = "estimated_annual_revenue"
	FieldEmployees         = "employees"
	FieldCompetitorsCore   = "competitors_core"
	FieldRecentNews        = "recent_news"
	FieldProfileParagraph  = "vendor_profile_paragraph"
	FieldMatchedVendorName = "matched_vendor_name"
	FieldVendorName        = "vendor_name"
	FieldDealDescription   = "deal_description"
)

// NotAvailable is written into scalar cells whose value is missing or empty.
const NotAvailable = "N/A"

// Record is the vendor research data supplied with a request. Values keep the
// shape they were decoded with from JSON; unknown keys are ignored.
type Record map[string]any

// Get returns the raw value for key, or nil.
func (r Record) Get(key string) any {
	if r == nil {
		return nil
	}
	return r[key]
}

// String returns the value for key in display form, or "" when absent.
func (r Record) String(key string) string {
	return Stringify(r.Get(key))
}

// VendorName prefers the matched vendor name over the plain one.
func (r Record) VendorName() string {
	if name := r.String(FieldMatchedVendorName); name != "" {
		return name
	}
	return r.String(FieldVendorName)
}

// Competitors renders competitors_core: lists are joined with ", ", other
// truthy values are stringified.
func (r Record) Competitors() string {
	v := r.Get(FieldCompetitorsCore)
	switch list := v.(type) {
	case []any:
		parts := make([]string, 0, len(list))
		for _, item := range list {
			parts = append(parts, Stringify(item))
		}
		return strings.Join(parts, ", ")
	case []string:
		return strings.Join(list, ", ")
	}
	if !Truthy(v) {
		return ""
	}
	return Stringify(v)
}

// Clone returns a shallow copy of r.
func (r Record) Clone() Record {
	out := make(Record, len(r)+1)
	for k, v := range r {
		out[k] = v
	}
	return out
}

// NewsItem is one entry of recent_news. Scalar entries only carry Raw.
type NewsItem struct {
	Date     string
	Headline string
	Summary  string
	URL      string

	Raw    string
	Scalar bool
}

// Title is the headline shown for the item.
func (n NewsItem) Title() string {
	if n.Scalar {
		return n.Raw
	}
	return n.Headline
}

// Linked reports whether the item should render as a hyperlink.
func (n NewsItem) Linked() bool {
	return !n.Scalar && strings.HasPrefix(n.URL, "http")
}

// Combined is the "date - headline: summary" form used by the plain renderer.
func (n NewsItem) Combined() string {
	if n.Scalar {
		return n.Raw
	}
	text := n.Headline
	if n.Date != "" {
		text = n.Date + " - " + n.Headline
	}
	if n.Summary != "" {
		text += ": " + n.Summary
	}
	return text
}

// NewsItems normalizes recent_news into a list. Absent or empty values give
// nil; a non-list value becomes a single item.
func (r Record) NewsItems() []NewsItem {
	v := r.Get(FieldRecentNews)
	if !Truthy(v) {
		return nil
	}
	var raw []any
	switch list := v.(type) {
	case []any:
		raw = list
	case []map[string]any:
		for _, m := range list {
			raw = append(raw, m)
		}
	case []string:
		for _, s := range list {
			raw = append(raw, s)
		}
	default:
		raw = []any{v}
	}
	items := make([]NewsItem, 0, len(raw))
	for _, entry := range raw {
		items = append(items, parseNewsItem(entry))
	}
	return items
}

func parseNewsItem(v any) NewsItem {
	m, ok := v.(map[string]any)
	if !ok {
		return NewsItem{Raw: Stringify(v), Scalar: true}
	}
	item := NewsItem{
		Date:    Stringify(m["date"]),
		Summary: Stringify(m["summary"]),
		URL:     Stringify(m["url"]),
	}
	item.Headline = Stringify(m["headline"])
	if item.Headline == "" {
		item.Headline = Stringify(m["title"])
	}
	return item
}

// Stringify converts a decoded JSON value to display text. nil becomes "".
func Stringify(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(t), 'f', -1, 32)
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case bool:
		return strconv.FormatBool(t)
	case []any:
		parts := make([]string, 0, len(t))
		for _, item := range t {
			parts = append(parts, Stringify(item))
		}
		return strings.Join(parts, ", ")
	case []string:
		return strings.Join(t, ", ")
	default:
		return fmt.Sprint(t)
	}
}

// Truthy follows the usual dynamic-language notion of an empty value.
func Truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case string:
		return t != ""
	case float64:
		return t != 0
	case float32:
		return t != 0
	case int:
		return t != 0
	case int64:
		return t != 0
	case bool:
		return t
	case []any:
		return len(t) > 0
	case []string:
		return len(t) > 0
	case []map[string]any:
		return len(t) > 0
	case map[string]any:
		return len(t) > 0
	}
	return true
}

// displayValue is the text written into a scalar cell.
func displayValue(v any) string {
	if !Truthy(v) {
		return NotAvailable
	}
	return Stringify(v)
}
