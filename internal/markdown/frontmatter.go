package markdown

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/adrg/frontmatter"
)

// FrontMatter is the YAML header of an imported content file. Type, Title
// and Slug are lifted out; every other key lands in Fields.
type FrontMatter struct {
	Type   string
	Title  string
	Slug   string
	Fields map[string]any
}

type frontMatterEnvelope struct {
	Type   string         `yaml:"type"`
	Title  string         `yaml:"title"`
	Slug   string         `yaml:"slug"`
	Custom map[string]any `yaml:",inline"`
}

// ParseFrontMatter extracts metadata and the Markdown body from source. Nested
// YAML maps are normalised to map[string]any so the result can be encoded as JSON.
func ParseFrontMatter(source []byte) (FrontMatter, []byte, error) {
	var meta frontMatterEnvelope

	body, err := frontmatter.Parse(bytes.NewReader(source), &meta)
	if err != nil {
		return FrontMatter{}, nil, fmt.Errorf("parse frontmatter: %w", err)
	}

	fields := make(map[string]any, len(meta.Custom))
	for key, value := range meta.Custom {
		fields[key] = Normalize(value)
	}
	return FrontMatter{
		Type:   strings.ToLower(strings.TrimSpace(meta.Type)),
		Title:  strings.TrimSpace(meta.Title),
		Slug:   strings.TrimSpace(meta.Slug),
		Fields: fields,
	}, bytes.TrimSpace(body), nil
}

// Normalize converts YAML decoded values into JSON friendly ones.
func Normalize(value any) any {
	switch typed := value.(type) {
	case map[any]any:
		out := make(map[string]any, len(typed))
		for key, v := range typed {
			out[fmt.Sprint(key)] = Normalize(v)
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(typed))
		for key, v := range typed {
			out[key] = Normalize(v)
		}
		return out
	case []any:
		out := make([]any, len(typed))
		for i, v := range typed {
			out[i] = Normalize(v)
		}
		return out
	default:
		return value
	}
}
