package markdown

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

func render(t *testing.T, mode Mode, input string) string {
	t.Helper()
	var buf bytes.Buffer
	if err := New(mode).Render(&buf, input); err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	return buf.String()
}

func classAttr(k Kind) string {
	return `class="` + Classes[k] + `"`
}

func TestRenderHeadings(t *testing.T) {
	tests := []struct {
		input string
		tag   string
		kind  Kind
		text  string
	}{
		{"# Heading 1", "h1", KindHeading1, "Heading 1"},
		{"## Heading 2", "h2", KindHeading2, "Heading 2"},
		{"### Heading 3", "h3", KindHeading3, "Heading 3"},
	}
	for _, tt := range tests {
		got := render(t, ModeStructured, tt.input)
		if !strings.HasPrefix(got, "<"+tt.tag+" ") {
			t.Errorf("Render(%q) = %q, want <%s> element", tt.input, got, tt.tag)
		}
		if !strings.Contains(got, classAttr(tt.kind)) {
			t.Errorf("Render(%q) = %q, missing class for %s", tt.input, got, tt.kind)
		}
		if !strings.Contains(got, ">"+tt.text+"</"+tt.tag+">") {
			t.Errorf("Render(%q) = %q, missing text", tt.input, got)
		}
	}
}

func TestRenderHeading4HasNoClass(t *testing.T) {
	got := render(t, ModeStructured, "#### Small")
	if strings.Contains(got, "class=") {
		t.Errorf("h4 should render without class: %q", got)
	}
	if !strings.Contains(got, ">Small</h4>") {
		t.Errorf("h4 missing: %q", got)
	}
}

func TestRenderParagraph(t *testing.T) {
	got := render(t, ModeStructured, "Just text.")
	want := "<p " + classAttr(KindParagraph) + ">Just text.</p>\n"
	if got != want {
		t.Errorf("Render = %q, want %q", got, want)
	}
}

func TestRenderLists(t *testing.T) {
	got := render(t, ModeStructured, "- item 1\n- item 2")
	if !strings.Contains(got, "<ul "+classAttr(KindUnorderedList)+">") {
		t.Errorf("unordered list missing class: %q", got)
	}
	if !strings.Contains(got, "<li>item 1</li>") || !strings.Contains(got, "<li>item 2</li>") {
		t.Errorf("list items missing: %q", got)
	}

	got = render(t, ModeStructured, "1. first\n2. second\n3. third")
	if !strings.Contains(got, "<ol "+classAttr(KindOrderedList)+">") {
		t.Errorf("ordered list missing class: %q", got)
	}
	if strings.Count(got, "<li>") != 3 {
		t.Errorf("expected three items: %q", got)
	}
}

func TestRenderListWithInline(t *testing.T) {
	got := render(t, ModeStructured, "- **Improved bundling**: Faster builds")
	if !strings.Contains(got, "<strong>Improved bundling</strong>: Faster builds") {
		t.Errorf("bold inside list item not rendered: %q", got)
	}
}

func TestRenderInlineCode(t *testing.T) {
	got := render(t, ModeStructured, "Check your `next.config.js`:")
	want := "<code " + classAttr(KindInlineCode) + ">next.config.js</code>"
	if !strings.Contains(got, want) {
		t.Errorf("Render = %q, want to contain %q", got, want)
	}
}

func TestRenderInlineCodeNotFormatted(t *testing.T) {
	got := render(t, ModeStructured, "`**not bold**`")
	if strings.Contains(got, "<strong>") {
		t.Errorf("bold inside backticks should not be formatted: %q", got)
	}
}

func TestRenderCodeBlockWithLanguage(t *testing.T) {
	got := render(t, ModeStructured, "```go\nfmt.Println(\"<hi>\")\n```")
	if !strings.Contains(got, `<div class="code-block-wrapper">`) {
		t.Errorf("code block should be wrapped in div: %q", got)
	}
	if !strings.Contains(got, `<span class="code-lang code-lang-go">go</span>`) {
		t.Errorf("code block should have language badge: %q", got)
	}
	if !strings.Contains(got, `<pre `+classAttr(KindCodeBlock)+`>`) {
		t.Errorf("pre should carry code block classes: %q", got)
	}
	if !strings.Contains(got, `<code class="`+codeBlockInner+` language-go">`) {
		t.Errorf("code should carry language class: %q", got)
	}
	if !strings.Contains(got, "fmt.Println(&#34;&lt;hi&gt;&#34;)") {
		t.Errorf("code content should be escaped: %q", got)
	}
	if !strings.HasSuffix(got, "</code></pre></div>") {
		t.Errorf("wrapper div should be closed: %q", got)
	}
}

func TestRenderCodeBlockWithoutLanguage(t *testing.T) {
	got := render(t, ModeStructured, "```\nplain code\n```")
	if strings.Contains(got, "code-lang") || strings.Contains(got, "code-block-wrapper") {
		t.Errorf("code block without language should not have badge: %q", got)
	}
	if !strings.Contains(got, "plain code\n</code></pre>") {
		t.Errorf("code block content missing: %q", got)
	}
}

func TestRenderBlockquote(t *testing.T) {
	got := render(t, ModeStructured, "> quoted")
	if !strings.Contains(got, "<blockquote "+classAttr(KindBlockquote)+">") {
		t.Errorf("blockquote missing class: %q", got)
	}
}

func TestRenderLinkAndImage(t *testing.T) {
	got := render(t, ModeStructured, "[Go](https://go.dev) ![logo](/logo.png)")
	if !strings.Contains(got, `<a href="https://go.dev" `+classAttr(KindLink)+`>Go</a>`) {
		t.Errorf("link missing class: %q", got)
	}
	if !strings.Contains(got, `src="/logo.png"`) || !strings.Contains(got, classAttr(KindImage)) {
		t.Errorf("image missing class: %q", got)
	}
}

func TestRenderDropsRawHTML(t *testing.T) {
	got := render(t, ModeStructured, "<script>alert(1)</script>")
	if strings.Contains(got, "<script>") {
		t.Errorf("raw HTML should not pass through: %q", got)
	}
}

func TestRenderNaive(t *testing.T) {
	got := render(t, ModeNaive, "# Title\n\n<b>x</b>")
	want := "# Title<br /><br />&lt;b&gt;x&lt;/b&gt;"
	if got != want {
		t.Errorf("Render naive = %q, want %q", got, want)
	}
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		in   string
		want Mode
		ok   bool
	}{
		{"", ModeStructured, true},
		{"structured", ModeStructured, true},
		{" Naive ", ModeNaive, true},
		{"fancy", "", false},
	}
	for _, tt := range tests {
		got, err := ParseMode(tt.in)
		if (err == nil) != tt.ok {
			t.Errorf("ParseMode(%q) err = %v, want ok=%v", tt.in, err, tt.ok)
		}
		if got != tt.want {
			t.Errorf("ParseMode(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestMarkdownComponent(t *testing.T) {
	var buf bytes.Buffer
	if err := New(ModeStructured).Component("## Getting Started").Render(context.Background(), &buf); err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if !strings.Contains(buf.String(), "Getting Started</h2>") {
		t.Errorf("component output = %q", buf.String())
	}
}
