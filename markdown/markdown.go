// Package markdown renders post bodies to HTML as templ components.
//
// The structured mode parses the body with goldmark and decorates every
// element listed in Classes. The naive mode only escapes the text and turns
// newlines into <br /> tags.
package markdown

import (
	"bytes"
	"context"
	"fmt"
	"html"
	"io"
	"strings"

	"github.com/a-h/templ"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

// Mode selects how a body is turned into HTML.
type Mode string

const (
	ModeStructured Mode = "structured"
	ModeNaive      Mode = "naive"
)

// ParseMode validates a mode name. The empty string means structured.
func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case "", ModeStructured:
		return ModeStructured, nil
	case ModeNaive:
		return ModeNaive, nil
	}
	return "", fmt.Errorf("markdown: unknown render mode %q", s)
}

// Renderer converts post bodies to HTML. It is safe for concurrent use.
type Renderer struct {
	mode Mode
	md   goldmark.Markdown
}

// New returns a Renderer for mode.
func New(mode Mode) *Renderer {
	return &Renderer{
		mode: mode,
		md: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
			goldmark.WithParserOptions(
				parser.WithAutoHeadingID(),
				parser.WithASTTransformers(util.Prioritized(classTransformer{}, 100)),
			),
			goldmark.WithRendererOptions(
				renderer.WithNodeRenderers(util.Prioritized(codeBlockRenderer{}, 100)),
			),
		),
	}
}

// Component wraps Render as a templ.Component.
func (r *Renderer) Component(content string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return r.Render(w, content)
	})
}

// Render writes the HTML form of content to w.
func (r *Renderer) Render(w io.Writer, content string) error {
	if r.mode == ModeNaive {
		_, err := io.WriteString(w, Naive(content))
		return err
	}
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(content), &buf); err != nil {
		return fmt.Errorf("markdown: convert: %w", err)
	}
	_, err := w.Write(buf.Bytes())
	return err
}

// Naive escapes content and replaces every newline with a line break.
// Headings, lists and code fences are left as literal text.
func Naive(content string) string {
	return strings.ReplaceAll(html.EscapeString(content), "\n", "<br />")
}

// classTransformer sets the class attribute of every element in Classes.
type classTransformer struct{}

func (classTransformer) Transform(doc *ast.Document, _ text.Reader, _ parser.Context) {
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		var kind Kind
		switch node := n.(type) {
		case *ast.Heading:
			kind = headingKind(node.Level)
		case *ast.Paragraph:
			kind = KindParagraph
		case *ast.Link, *ast.AutoLink:
			kind = KindLink
		case *ast.Image:
			kind = KindImage
		case *ast.CodeSpan:
			kind = KindInlineCode
		case *ast.Blockquote:
			kind = KindBlockquote
		case *ast.List:
			kind = KindUnorderedList
			if node.IsOrdered() {
				kind = KindOrderedList
			}
		}
		if cls, ok := Classes[kind]; ok && cls != "" {
			n.SetAttributeString("class", []byte(cls))
		}
		return ast.WalkContinue, nil
	})
}

// codeBlockRenderer replaces goldmark's fenced and indented code block
// output with a classed <pre> and an optional language badge.
type codeBlockRenderer struct{}

func (r codeBlockRenderer) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	reg.Register(ast.KindFencedCodeBlock, r.renderCodeBlock)
	reg.Register(ast.KindCodeBlock, r.renderCodeBlock)
}

func (codeBlockRenderer) renderCodeBlock(w util.BufWriter, source []byte, n ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		return ast.WalkContinue, nil
	}
	var lang string
	if fenced, ok := n.(*ast.FencedCodeBlock); ok {
		lang = html.EscapeString(string(fenced.Language(source)))
	}
	if lang != "" {
		_, _ = w.WriteString(`<div class="code-block-wrapper"><span class="code-lang code-lang-` + lang + `">` + lang + `</span>`)
	}
	_, _ = w.WriteString(`<pre class="` + Classes[KindCodeBlock] + `"><code class="` + codeBlockInner)
	if lang != "" {
		_, _ = w.WriteString(` language-` + lang)
	}
	_, _ = w.WriteString(`">`)
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		line := lines.At(i)
		_, _ = w.WriteString(html.EscapeString(string(line.Value(source))))
	}
	_, _ = w.WriteString("</code></pre>")
	if lang != "" {
		_, _ = w.WriteString("</div>")
	}
	return ast.WalkSkipChildren, nil
}
