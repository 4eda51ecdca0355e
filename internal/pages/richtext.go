package pages

import (
	"html/template"
	"slices"
	"strings"

	"github.com/goliatone/socialsync/internal/content"
	"github.com/goliatone/socialsync/internal/markdown"
	"github.com/goliatone/socialsync/internal/media"
)

var markdownEscaper = strings.NewReplacer(
	`\`, `\\`,
	"*", `\*`,
	"_", `\_`,
	"`", "\\`",
	"[", `\[`,
	"]", `\]`,
	"<", `\<`,
	">", `\>`,
	"#", `\#`,
)

// PortableTextMarkdown converts portable text blocks to Markdown. Image
// blocks resolve through resolver at gallery size.
func PortableTextMarkdown(blocks []content.Block, resolver *media.Resolver) string {
	var b strings.Builder
	previousList := false
	for i, block := range blocks {
		line := blockMarkdown(block, resolver)
		if line == "" {
			continue
		}
		isList := block.ListItem != ""
		if i > 0 && b.Len() > 0 {
			if isList && previousList {
				b.WriteString("\n")
			} else {
				b.WriteString("\n\n")
			}
		}
		b.WriteString(line)
		previousList = isList
	}
	if b.Len() > 0 {
		b.WriteString("\n")
	}
	return b.String()
}

func blockMarkdown(block content.Block, resolver *media.Resolver) string {
	if block.Type == "image" {
		img := &media.Image{Type: "image", Asset: block.Asset, Alt: block.Alt}
		src := media.Placeholder(media.GalleryWidth, media.GalleryHeight)
		if resolver != nil {
			src = resolver.URL(img, media.GalleryWidth, media.GalleryHeight)
		}
		return "![" + markdownEscaper.Replace(block.Alt) + "](" + src + ")"
	}
	if block.Type != "" && block.Type != "block" {
		return ""
	}

	text := spansMarkdown(block.Children, block.MarkDefs)
	if strings.TrimSpace(text) == "" {
		return ""
	}

	if block.ListItem != "" {
		level := block.Level
		if level < 1 {
			level = 1
		}
		marker := "- "
		if block.ListItem == "number" {
			marker = "1. "
		}
		return strings.Repeat("  ", level-1) + marker + text
	}

	switch block.Style {
	case "h1":
		return "# " + text
	case "h2":
		return "## " + text
	case "h3":
		return "### " + text
	case "h4":
		return "#### " + text
	case "blockquote":
		return "> " + strings.ReplaceAll(text, "\n", "\n> ")
	}
	return text
}

func spansMarkdown(spans []content.Span, defs []content.MarkDef) string {
	links := make(map[string]string, len(defs))
	for _, def := range defs {
		if def.Type == "link" && def.Href != "" {
			links[def.Key] = def.Href
		}
	}

	var b strings.Builder
	for _, span := range spans {
		text := markdownEscaper.Replace(span.Text)
		if strings.TrimSpace(text) == "" {
			b.WriteString(text)
			continue
		}
		if slices.Contains(span.Marks, "code") {
			text = codeSpan(span.Text)
		}
		for _, mark := range span.Marks {
			switch mark {
			case "strong":
				text = "**" + text + "**"
			case "em":
				text = "*" + text + "*"
			case "code":
				// applied first, above
			default:
				if href, ok := links[mark]; ok {
					text = "[" + text + "](" + href + ")"
				}
			}
		}
		b.WriteString(text)
	}
	return b.String()
}

// codeSpan fences text with one more backtick than its longest run.
func codeSpan(text string) string {
	longest, run := 0, 0
	for _, r := range text {
		if r == '`' {
			run++
			longest = max(longest, run)
			continue
		}
		run = 0
	}
	fence := strings.Repeat("`", longest+1)
	if strings.HasPrefix(text, "`") || strings.HasSuffix(text, "`") {
		text = " " + text + " "
	}
	return fence + text + fence
}

// RichHTML renders rich text through goldmark. Empty input yields "".
func RichHTML(r *markdown.Renderer, text content.RichText, resolver *media.Resolver) (template.HTML, error) {
	source := text.Markdown
	if len(text.Blocks) > 0 {
		source = PortableTextMarkdown(text.Blocks, resolver)
	}
	if strings.TrimSpace(source) == "" {
		return "", nil
	}
	out, err := r.Render([]byte(source))
	if err != nil {
		return "", err
	}
	// goldmark runs in safe mode, so raw HTML in the source has already been dropped.
	return template.HTML(out), nil
}
