package mailop

import (
	"bytes"
	"encoding/json"
)

// Type selects how the message content is produced.
type Type string

const (
	TypeMarkdown Type = "markdown"
	TypeWYSIWYG  Type = "wysiwyg"
	TypeTemplate Type = "template"
)

// DefaultType is used when no type is configured.
const DefaultType = TypeMarkdown

// DefaultTemplate is the template name used when a template payload
// names none.
const DefaultTemplate = "base"

// Types lists the supported body types in the order they are offered.
var Types = []Type{TypeMarkdown, TypeWYSIWYG, TypeTemplate}

// OrDefault returns t, or DefaultType when t is empty.
func (t Type) OrDefault() Type {
	if t == "" {
		return DefaultType
	}
	return t
}

// Recipients holds one or more addresses exactly as configured.
// It decodes from a JSON string or a JSON list of strings.
type Recipients []string

// UnmarshalJSON implements json.Unmarshaler.
func (r *Recipients) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*r = nil
		return nil
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*r = Recipients{s}
		return nil
	}

	var list []string
	if err := json.Unmarshal(data, &list); err != nil {
		return err
	}
	*r = Recipients(list)
	return nil
}

// Options is the configuration a user sets on a mail operation step.
// Body may be any value; see CoerceBody.
type Options struct {
	Body     any            `json:"body,omitempty"`
	Template string         `json:"template,omitempty"`
	Data     map[string]any `json:"data,omitempty"`
	To       Recipients     `json:"to"`
	ReplyTo  string         `json:"replyTo,omitempty"`
	Type     Type           `json:"type,omitempty"`
	Subject  string         `json:"subject"`
}

// UnmarshalJSON implements json.Unmarshaler. A string body decodes to a
// string; any other JSON body is kept as json.RawMessage so its original
// key order survives coercion.
func (o *Options) UnmarshalJSON(data []byte) error {
	type plain Options
	aux := struct {
		*plain
		Body json.RawMessage `json:"body"`
	}{plain: (*plain)(o)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	raw := bytes.TrimSpace(aux.Body)
	switch {
	case len(raw) == 0, bytes.Equal(raw, []byte("null")):
		o.Body = nil
	case raw[0] == '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return err
		}
		o.Body = s
	default:
		o.Body = json.RawMessage(raw)
	}
	return nil
}
