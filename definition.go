package mailop

import (
	"encoding/json"
	"strings"
)

// ID identifies the operation to the host.
const ID = "directus-extension-reply-to-mail"

// Definition is the operation's identity as shown in the flow editor.
type Definition struct {
	ID          string `json:"id"`
	Icon        string `json:"icon"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Meta describes the mail operation.
var Meta = Definition{
	ID:          ID,
	Icon:        "mail",
	Name:        "Mailer (replyTo)",
	Description: "Extends the default mailer operation with a replyTo field",
}

// OverviewItem is one label/value line of a configured step's summary.
// Text is omitted when the value is unset.
type OverviewItem struct {
	Label string  `json:"label"`
	Text  *string `json:"text,omitempty"`
}

// Overview summarizes configured options for display. Unset values have
// no text; an unset type is shown as the default.
func Overview(opts Options) []OverviewItem {
	return []OverviewItem{
		overviewItem("Subject", opts.Subject),
		overviewItem("To", strings.Join(opts.To, ", ")),
		overviewItem("ReplyTo", opts.ReplyTo),
		overviewItem("Type", string(opts.Type.OrDefault())),
	}
}

func overviewItem(label, text string) OverviewItem {
	if text == "" {
		return OverviewItem{Label: label}
	}
	return OverviewItem{Label: label, Text: &text}
}

// Panel is the settings panel state that field visibility depends on.
type Panel struct {
	Type Type `json:"type,omitempty"`
}

// Field is one input of the operation's settings panel.
type Field struct {
	Field  string       `json:"field"`
	Name   string       `json:"name"`
	Type   string       `json:"type"`
	Schema *FieldSchema `json:"schema,omitempty"`
	Meta   FieldMeta    `json:"meta"`
}

// FieldSchema holds storage-level defaults.
type FieldSchema struct {
	DefaultValue any `json:"default_value,omitempty"`
}

// FieldMeta controls how a field is presented.
type FieldMeta struct {
	Width     string         `json:"width,omitempty"`
	Interface string         `json:"interface"`
	Hidden    *bool          `json:"hidden,omitempty"`
	Options   map[string]any `json:"options,omitempty"`
}

// Choice is a selectable option of a dropdown.
type Choice struct {
	Text  string `json:"text"`
	Value string `json:"value"`
}

// dataExample is the placeholder and starting value of the data editor.
var dataExample = func() string {
	b, _ := json.MarshalIndent(map[string]string{"url": "example.com"}, "", "  ")
	return string(b)
}()

// Fields returns the settings panel fields for the given panel state.
// The template inputs are shown only for template bodies, the body editor
// only for the others; the body editor is HTML for wysiwyg and markdown
// otherwise.
func Fields(p Panel) []Field {
	isTemplate := p.Type == TypeTemplate

	bodyInterface := "input-rich-text-md"
	if p.Type == TypeWYSIWYG {
		bodyInterface = "input-rich-text-html"
	}

	choices := make([]Choice, 0, len(Types))
	for _, t := range Types {
		choices = append(choices, Choice{Text: choiceText(t), Value: string(t)})
	}

	return []Field{
		{
			Field: "to",
			Name:  "To",
			Type:  "csv",
			Meta: FieldMeta{
				Width:     "full",
				Interface: "tags",
				Options: map[string]any{
					"placeholder": "Add e-mail addresses and press enter...",
					"iconRight":   "alternate_email",
				},
			},
		},
		{
			Field: "subject",
			Name:  "Subject",
			Type:  "string",
			Meta: FieldMeta{
				Width:     "full",
				Interface: "input",
				Options: map[string]any{
					"iconRight": "title",
				},
			},
		},
		{
			Field: "replyTo",
			Name:  "ReplyTo",
			Type:  "string",
			Meta: FieldMeta{
				Width:     "full",
				Interface: "input",
				Options: map[string]any{
					"iconRight": "alternate_email",
				},
			},
		},
		{
			Field:  "type",
			Name:   "Type",
			Type:   "string",
			Schema: &FieldSchema{DefaultValue: string(DefaultType)},
			Meta: FieldMeta{
				Width:     "half",
				Interface: "select-dropdown",
				Options: map[string]any{
					"choices": choices,
				},
			},
		},
		{
			Field: "template",
			Name:  "Template",
			Type:  "string",
			Meta: FieldMeta{
				Width:     "half",
				Interface: "input",
				Hidden:    boolPtr(!isTemplate),
				Options: map[string]any{
					"placeholder": DefaultTemplate,
				},
			},
		},
		{
			Field: "body",
			Name:  "Body",
			Type:  "text",
			Meta: FieldMeta{
				Width:     "full",
				Interface: bodyInterface,
				Hidden:    boolPtr(isTemplate),
			},
		},
		{
			Field: "data",
			Name:  "Data",
			Type:  "json",
			Meta: FieldMeta{
				Width:     "full",
				Interface: "input-code",
				Hidden:    boolPtr(!isTemplate),
				Options: map[string]any{
					"language":    "json",
					"placeholder": dataExample,
					"template":    dataExample,
				},
			},
		},
	}
}

func choiceText(t Type) string {
	switch t {
	case TypeMarkdown:
		return "Markdown"
	case TypeWYSIWYG:
		return "WYSIWYG"
	case TypeTemplate:
		return "Template"
	default:
		return string(t)
	}
}

func boolPtr(b bool) *bool { return &b }
