package pages

import (
	"strings"
	"testing"

	"github.com/goliatone/socialsync/internal/content"
	"github.com/goliatone/socialsync/internal/markdown"
)

func TestPortableTextMarkdown(t *testing.T) {
	blocks := []content.Block{
		{Type: "block", Style: "h2", Children: []content.Span{{Text: "Overview"}}},
		{Type: "block", Style: "normal", Children: []content.Span{
			{Text: "Read "},
			{Text: "more", Marks: []string{"lnk"}},
			{Text: " and ", Marks: nil},
			{Text: "bold", Marks: []string{"strong"}},
		}, MarkDefs: []content.MarkDef{{Key: "lnk", Type: "link", Href: "https://example.com"}}},
		{Type: "block", ListItem: "bullet", Level: 1, Children: []content.Span{{Text: "one"}}},
		{Type: "block", ListItem: "bullet", Level: 1, Children: []content.Span{{Text: "two_2"}}},
		{Type: "unknownWidget"},
	}

	got := PortableTextMarkdown(blocks, nil)
	want := "## Overview\n\nRead [more](https://example.com) and **bold**\n\n- one\n- two\\_2\n"
	if got != want {
		t.Fatalf("unexpected markdown:\n%q\nwant\n%q", got, want)
	}

	html, err := RichHTML(markdown.NewRenderer(markdown.Options{SafeMode: true}), content.RichText{Blocks: blocks}, nil)
	if err != nil {
		t.Fatalf("RichHTML: %v", err)
	}
	for _, want := range []string{`<a href="https://example.com">more</a>`, "<strong>bold</strong>", "<li>two_2</li>"} {
		if !strings.Contains(string(html), want) {
			t.Fatalf("expected %q in %s", want, html)
		}
	}
}

func TestRichHTMLDropsRawHTML(t *testing.T) {
	html, err := RichHTML(markdown.NewRenderer(markdown.Options{SafeMode: true}), content.RichText{Markdown: "hi <script>alert(1)</script>"}, nil)
	if err != nil {
		t.Fatalf("RichHTML: %v", err)
	}
	if strings.Contains(string(html), "<script>") {
		t.Fatalf("expected raw html to be dropped, got %s", html)
	}
	if empty, _ := RichHTML(markdown.NewRenderer(markdown.Options{}), content.RichText{}, nil); empty != "" {
		t.Fatalf("expected empty output, got %q", empty)
	}
}

func TestPortableTextCodeMarkKeepsBackticksAndOtherMarks(t *testing.T) {
	blocks := []content.Block{
		{Type: "block", Style: "normal", Children: []content.Span{
			{Text: "Run "},
			{Text: "go `test` *", Marks: []string{"strong", "code"}},
			{Text: " now"},
		}},
		{Type: "block", Style: "normal", Children: []content.Span{
			{Text: "`tick`", Marks: []string{"code"}},
		}},
	}

	got := PortableTextMarkdown(blocks, nil)
	want := "Run **``go `test` *``** now\n\n`` `tick` ``\n"
	if got != want {
		t.Fatalf("unexpected markdown:\n%q\nwant\n%q", got, want)
	}

	html, err := RichHTML(markdown.NewRenderer(markdown.Options{SafeMode: true}), content.RichText{Blocks: blocks}, nil)
	if err != nil {
		t.Fatalf("RichHTML: %v", err)
	}
	for _, want := range []string{"<strong><code>go `test` *</code></strong>", "<code>`tick`</code>"} {
		if !strings.Contains(string(html), want) {
			t.Fatalf("expected %q in %s", want, html)
		}
	}
}
