package mailop

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Body is the content of a payload: either HTMLBody or TemplateBody.
// The unexported method keeps the set closed, so a payload always carries
// exactly one of them.
type Body interface {
	isBody()
}

// HTMLBody is finished HTML content.
type HTMLBody string

func (HTMLBody) isBody() {}

// TemplateBody asks the mail service to render a named template.
type TemplateBody struct {
	Name string         `json:"name"`
	Data map[string]any `json:"data"`
}

func (TemplateBody) isBody() {}

// Payload is what the operation hands to the mail service.
type Payload struct {
	To      Recipients
	Subject string
	ReplyTo string
	Body    Body
}

// MarshalJSON renders the payload in the host's wire shape, with either an
// "html" or a "template" key.
func (p Payload) MarshalJSON() ([]byte, error) {
	type wire struct {
		To       Recipients    `json:"to"`
		Subject  string        `json:"subject"`
		ReplyTo  string        `json:"replyTo,omitempty"`
		HTML     *string       `json:"html,omitempty"`
		Template *TemplateBody `json:"template,omitempty"`
	}

	w := wire{To: p.To, Subject: p.Subject, ReplyTo: p.ReplyTo}
	switch b := p.Body.(type) {
	case HTMLBody:
		s := string(b)
		w.HTML = &s
	case TemplateBody:
		if b.Data == nil {
			b.Data = map[string]any{}
		}
		w.Template = &b
	default:
		return nil, fmt.Errorf("%w: got %T", ErrInvalidBody, p.Body)
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(w); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// CoerceBody turns an arbitrary body value into message text.
// Strings pass through unchanged and nil becomes "". Anything else is
// serialized as compact JSON without HTML escaping; raw JSON keeps its key
// order. Values that cannot be serialized fall back to their fmt form.
func CoerceBody(v any) string {
	switch b := v.(type) {
	case nil:
		return ""
	case string:
		return b
	case json.RawMessage:
		var buf bytes.Buffer
		if err := json.Compact(&buf, b); err != nil {
			return string(b)
		}
		return buf.String()
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return fmt.Sprint(v)
	}
	return string(bytes.TrimSuffix(buf.Bytes(), []byte("\n")))
}

// Assemble builds the payload for opts using RenderSafeHTML for markdown.
func Assemble(opts Options) Payload {
	return AssembleWith(opts, RenderSafeHTML)
}

// AssembleWith builds the payload for opts, converting markdown bodies with
// render. Unknown types are treated as markdown.
func AssembleWith(opts Options, render func(string) string) Payload {
	p := Payload{
		To:      opts.To,
		Subject: opts.Subject,
		ReplyTo: opts.ReplyTo,
	}

	switch opts.Type {
	case TypeTemplate:
		name := opts.Template
		if name == "" {
			name = DefaultTemplate
		}
		data := opts.Data
		if data == nil {
			data = map[string]any{}
		}
		p.Body = TemplateBody{Name: name, Data: data}
	case TypeWYSIWYG:
		p.Body = HTMLBody(CoerceBody(opts.Body))
	default:
		p.Body = HTMLBody(render(CoerceBody(opts.Body)))
	}
	return p
}
