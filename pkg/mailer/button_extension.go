package mailer

import (
	"bytes"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

// DefaultButtonClass is the CSS class put on rendered buttons.
const DefaultButtonClass = "btn"

var buttonPrefix = []byte("[!button|")

// KindButton is the node kind for ButtonNode.
var KindButton = ast.NewNodeKind("Button")

// ButtonNode is a call-to-action link written as [!button|Label](URL).
type ButtonNode struct {
	ast.BaseInline
	URL   []byte
	Label []byte
}

// Kind implements ast.Node.
func (n *ButtonNode) Kind() ast.NodeKind {
	return KindButton
}

// Dump implements ast.Node.
func (n *ButtonNode) Dump(source []byte, level int) {
	ast.DumpHelper(n, source, level, map[string]string{
		"URL":   string(n.URL),
		"Label": string(n.Label),
	}, nil)
}

type buttonParser struct{}

func (buttonParser) Trigger() []byte {
	return []byte{'['}
}

func (buttonParser) Parse(_ ast.Node, block text.Reader, _ parser.Context) ast.Node {
	line, _ := block.PeekLine()
	rest, ok := bytes.CutPrefix(line, buttonPrefix)
	if !ok {
		return nil
	}

	label, rest, ok := bytes.Cut(rest, []byte("]"))
	if !ok || len(rest) == 0 || rest[0] != '(' {
		return nil
	}

	url, _, ok := bytes.Cut(rest[1:], []byte(")"))
	if !ok {
		return nil
	}

	// prefix + label + "](" + url + ")"
	block.Advance(len(buttonPrefix) + len(label) + 2 + len(url) + 1)

	return &ButtonNode{URL: url, Label: label}
}

type buttonRenderer struct {
	class string
}

func (r *buttonRenderer) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	reg.Register(KindButton, r.render)
}

func (r *buttonRenderer) render(w util.BufWriter, _ []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		return ast.WalkContinue, nil
	}

	n := node.(*ButtonNode)
	_, _ = w.WriteString(`<a href="`)
	_, _ = w.Write(util.EscapeHTML(util.URLEscape(n.URL, false)))
	_, _ = w.WriteString(`" class="`)
	_, _ = w.Write(util.EscapeHTML([]byte(r.class)))
	_, _ = w.WriteString(`">`)
	_, _ = w.Write(util.EscapeHTML(n.Label))
	_, _ = w.WriteString(`</a>`)

	return ast.WalkContinue, nil
}

// ButtonOption configures the button extension.
type ButtonOption func(*buttonRenderer)

// WithButtonClass overrides the CSS class of rendered buttons.
func WithButtonClass(class string) ButtonOption {
	return func(r *buttonRenderer) {
		if class != "" {
			r.class = class
		}
	}
}

type buttonExtension struct {
	opts []ButtonOption
}

// NewButtonExtension returns a goldmark extension for [!button|Label](URL) links.
func NewButtonExtension(opts ...ButtonOption) goldmark.Extender {
	return &buttonExtension{opts: opts}
}

func (e *buttonExtension) Extend(m goldmark.Markdown) {
	r := &buttonRenderer{class: DefaultButtonClass}
	for _, opt := range e.opts {
		opt(r)
	}

	m.Parser().AddOptions(parser.WithInlineParsers(
		util.Prioritized(buttonParser{}, 50),
	))
	m.Renderer().AddOptions(renderer.WithNodeRenderers(
		util.Prioritized(r, 50),
	))
}
