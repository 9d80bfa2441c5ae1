package notion

import (
	"encoding/json"
	"fmt"
)

// Property types used by the games database.
const (
	TypeTitle       = "title"
	TypeRichText    = "rich_text"
	TypeNumber      = "number"
	TypeDate        = "date"
	TypeURL         = "url"
	TypeMultiSelect = "multi_select"
	TypeCheckbox    = "checkbox"
)

// Text is the content of a rich text item.
type Text struct {
	Content string `json:"content"`
}

// RichText is one item of a title or rich_text value.
type RichText struct {
	Type      string `json:"type"`
	Text      Text   `json:"text"`
	PlainText string `json:"plain_text,omitempty"`
}

// SelectOption is one chosen option of a multi_select value.
type SelectOption struct {
	Name string `json:"name"`
}

// Date is a date value. Start is YYYY-MM-DD.
type Date struct {
	Start string `json:"start"`
}

// PropertyValue is the value of one page property. Only the member matching
// Type is encoded.
type PropertyValue struct {
	Type        string
	Title       []RichText
	RichText    []RichText
	Number      *float64
	Date        *Date
	URL         *string
	MultiSelect []SelectOption
	Checkbox    *bool
}

// Properties maps column names to values.
type Properties map[string]PropertyValue

// TitleValue builds a title value holding one text item.
func TitleValue(s string) PropertyValue {
	return PropertyValue{Type: TypeTitle, Title: []RichText{textItem(s)}}
}

// RichTextValue builds a rich_text value holding one text item, even when s is empty.
func RichTextValue(s string) PropertyValue {
	return PropertyValue{Type: TypeRichText, RichText: []RichText{textItem(s)}}
}

// NumberValue builds a number value.
func NumberValue(n float64) PropertyValue {
	return PropertyValue{Type: TypeNumber, Number: &n}
}

// DateValue builds a date value starting at start (YYYY-MM-DD).
func DateValue(start string) PropertyValue {
	return PropertyValue{Type: TypeDate, Date: &Date{Start: start}}
}

// URLValue builds a url value.
func URLValue(u string) PropertyValue {
	return PropertyValue{Type: TypeURL, URL: &u}
}

// MultiSelectValue builds a multi_select value. A nil slice is sent as [].
func MultiSelectValue(options []SelectOption) PropertyValue {
	if options == nil {
		options = []SelectOption{}
	}
	return PropertyValue{Type: TypeMultiSelect, MultiSelect: options}
}

// CheckboxValue builds a checkbox value.
func CheckboxValue(b bool) PropertyValue {
	return PropertyValue{Type: TypeCheckbox, Checkbox: &b}
}

func textItem(s string) RichText {
	return RichText{Type: "text", Text: Text{Content: s}}
}

// PlainText joins the text of a title or rich_text value.
func (p PropertyValue) PlainText() string {
	items := p.Title
	if p.Type == TypeRichText {
		items = p.RichText
	}
	var out string
	for _, item := range items {
		if item.PlainText != "" {
			out += item.PlainText
			continue
		}
		out += item.Text.Content
	}
	return out
}

// MarshalJSON encodes {"type": T, T: value}. Empty lists stay as [] because
// Notion reads a missing member as an invalid request.
func (p PropertyValue) MarshalJSON() ([]byte, error) {
	var value any
	switch p.Type {
	case TypeTitle:
		value = nonNil(p.Title)
	case TypeRichText:
		value = nonNil(p.RichText)
	case TypeNumber:
		value = p.Number
	case TypeDate:
		value = p.Date
	case TypeURL:
		value = p.URL
	case TypeMultiSelect:
		value = nonNil(p.MultiSelect)
	case TypeCheckbox:
		value = p.Checkbox != nil && *p.Checkbox
	default:
		return nil, fmt.Errorf("unsupported property type %q", p.Type)
	}
	return json.Marshal(map[string]any{"type": p.Type, p.Type: value})
}

// UnmarshalJSON decodes the supported members. Values of other types keep
// only their Type.
func (p *PropertyValue) UnmarshalJSON(data []byte) error {
	var raw struct {
		Type        string         `json:"type"`
		Title       []RichText     `json:"title"`
		RichText    []RichText     `json:"rich_text"`
		Number      *float64       `json:"number"`
		Date        *Date          `json:"date"`
		URL         *string        `json:"url"`
		MultiSelect []SelectOption `json:"multi_select"`
		Checkbox    *bool          `json:"checkbox"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*p = PropertyValue{
		Type:        raw.Type,
		Title:       raw.Title,
		RichText:    raw.RichText,
		Number:      raw.Number,
		Date:        raw.Date,
		URL:         raw.URL,
		MultiSelect: raw.MultiSelect,
		Checkbox:    raw.Checkbox,
	}
	return nil
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

// ExternalFile points at an image hosted outside Notion.
type ExternalFile struct {
	Type     string `json:"type"`
	External struct {
		URL string `json:"url"`
	} `json:"external"`
}

// External builds an external file reference.
func External(url string) *ExternalFile {
	f := &ExternalFile{Type: "external"}
	f.External.URL = url
	return f
}

// Parent identifies the database a page is created in.
type Parent struct {
	Type       string `json:"type"`
	DatabaseID string `json:"database_id"`
}

// PageWrite is the body shared by page creation and update.
type PageWrite struct {
	Properties Properties    `json:"properties"`
	Cover      *ExternalFile `json:"cover,omitempty"`
	Icon       *ExternalFile `json:"icon,omitempty"`
}

type createPageRequest struct {
	Parent Parent `json:"parent"`
	PageWrite
}

// Page is a database row.
type Page struct {
	ID         string     `json:"id"`
	URL        string     `json:"url,omitempty"`
	Archived   bool       `json:"archived,omitempty"`
	Properties Properties `json:"properties"`
}

// DatabaseProperty describes one column of a database.
type DatabaseProperty struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"`
}

// Database is the schema of a database.
type Database struct {
	ID         string                      `json:"id"`
	Title      []RichText                  `json:"title"`
	Properties map[string]DatabaseProperty `json:"properties"`
}

// Filter is a single property filter of a database query.
type Filter struct {
	Property string        `json:"property"`
	Title    *TextFilter   `json:"title,omitempty"`
	Number   *NumberFilter `json:"number,omitempty"`
}

// TextFilter matches title or rich_text columns.
type TextFilter struct {
	Equals string `json:"equals"`
}

// NumberFilter matches number columns.
type NumberFilter struct {
	Equals float64 `json:"equals"`
}

// TitleEquals filters rows whose title column equals name.
func TitleEquals(column, name string) *Filter {
	return &Filter{Property: column, Title: &TextFilter{Equals: name}}
}

// NumberEquals filters rows whose number column equals n.
func NumberEquals(column string, n float64) *Filter {
	return &Filter{Property: column, Number: &NumberFilter{Equals: n}}
}

// Query is the body of a database query.
type Query struct {
	Filter   *Filter `json:"filter,omitempty"`
	PageSize int     `json:"page_size,omitempty"`
}

type queryResponse struct {
	// Results is nil when the member is missing from the response.
	Results *[]Page `json:"results"`
	HasMore bool    `json:"has_more"`
}
