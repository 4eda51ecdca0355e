package content

import (
	"bytes"
	"encoding/json"

	"github.com/goliatone/socialsync/internal/media"
)

// Slug is the content store slug object.
type Slug struct {
	Current string `json:"current"`
}

// Category groups projects.
type Category struct {
	ID   string `json:"_id,omitempty"`
	Name string `json:"name"`
	Slug Slug   `json:"slug"`
}

// Service is an agency offering.
type Service struct {
	ID          string       `json:"_id,omitempty"`
	Title       string       `json:"title"`
	Slug        Slug         `json:"slug"`
	Description string       `json:"description"`
	Icon        string       `json:"icon,omitempty"`
	Features    []string     `json:"features,omitempty"`
	Image       *media.Image `json:"image,omitempty"`
}

// Project is a portfolio entry.
type Project struct {
	ID          string        `json:"_id,omitempty"`
	Title       string        `json:"title"`
	Slug        Slug          `json:"slug"`
	Category    *Category     `json:"category,omitempty"`
	Description string        `json:"description"`
	MainImage   *media.Image  `json:"mainImage,omitempty"`
	Gallery     []media.Image `json:"gallery,omitempty"`
	Client      string        `json:"client,omitempty"`
	Date        string        `json:"date,omitempty"`
	Tags        []string      `json:"tags,omitempty"`
	Content     RichText      `json:"content,omitempty"`
	Results     RichText      `json:"results,omitempty"`
	Testimonial string        `json:"testimonial,omitempty"`
}

// Testimonial is a client quote.
type Testimonial struct {
	ID       string       `json:"_id,omitempty"`
	Name     string       `json:"name"`
	Position string       `json:"position"`
	Company  string       `json:"company"`
	Content  string       `json:"content"`
	Avatar   *media.Image `json:"avatar,omitempty"`
}

// Hero is the homepage hero section.
type Hero struct {
	Title    string       `json:"title,omitempty"`
	Subtitle string       `json:"subtitle,omitempty"`
	Image    *media.Image `json:"image,omitempty"`
}

// Homepage holds the homepage document with its featured references expanded.
type Homepage struct {
	Hero                 *Hero         `json:"hero,omitempty"`
	FeaturedServices     []Service     `json:"featuredServices,omitempty"`
	FeaturedProjects     []Project     `json:"featuredProjects,omitempty"`
	FeaturedTestimonials []Testimonial `json:"featuredTestimonials,omitempty"`
}

// Span is an inline run of text inside a block.
type Span struct {
	Type  string   `json:"_type,omitempty"`
	Key   string   `json:"_key,omitempty"`
	Text  string   `json:"text"`
	Marks []string `json:"marks,omitempty"`
}

// MarkDef defines an annotation referenced from span marks.
type MarkDef struct {
	Key  string `json:"_key"`
	Type string `json:"_type"`
	Href string `json:"href,omitempty"`
}

// Block is a portable text block. Image blocks carry Asset instead of children.
type Block struct {
	Type     string       `json:"_type"`
	Key      string       `json:"_key,omitempty"`
	Style    string       `json:"style,omitempty"`
	ListItem string       `json:"listItem,omitempty"`
	Level    int          `json:"level,omitempty"`
	Children []Span       `json:"children,omitempty"`
	MarkDefs []MarkDef    `json:"markDefs,omitempty"`
	Asset    *media.Asset `json:"asset,omitempty"`
	Alt      string       `json:"alt,omitempty"`
}

// RichText holds either portable text blocks or a markdown string.
type RichText struct {
	Markdown string
	Blocks   []Block
}

// IsZero reports whether the rich text has no content.
func (r RichText) IsZero() bool {
	return r.Markdown == "" && len(r.Blocks) == 0
}

// UnmarshalJSON accepts a string (markdown) or an array of blocks.
func (r *RichText) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	*r = RichText{}
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil
	}
	if trimmed[0] == '"' {
		return json.Unmarshal(trimmed, &r.Markdown)
	}
	return json.Unmarshal(trimmed, &r.Blocks)
}

// MarshalJSON writes blocks when present, otherwise the markdown string.
func (r RichText) MarshalJSON() ([]byte, error) {
	if len(r.Blocks) > 0 {
		return json.Marshal(r.Blocks)
	}
	if r.Markdown != "" {
		return json.Marshal(r.Markdown)
	}
	return []byte("null"), nil
}
