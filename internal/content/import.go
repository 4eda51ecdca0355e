package content

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"
	"time"

	"github.com/goliatone/go-slug"

	"github.com/goliatone/socialsync/internal/identity"
	"github.com/goliatone/socialsync/internal/logging"
	"github.com/goliatone/socialsync/internal/markdown"
	"github.com/goliatone/socialsync/pkg/interfaces"
)

var (
	// ErrImportTypeUnknown reports a file whose frontmatter type is not importable.
	ErrImportTypeUnknown = errors.New("content: unknown import type")
	// ErrImportSlugRequired reports a file without a usable slug or title.
	ErrImportSlugRequired = errors.New("content: import requires slug or title")
	// ErrImportLanguageRequired reports a translations file without a language.
	ErrImportLanguageRequired = errors.New("content: translations import requires language")
)

var importableTypes = map[string]struct{}{
	"service":      {},
	"project":      {},
	"category":     {},
	"testimonial":  {},
	"translations": {},
	"homepage":     {},
}

var imageFields = map[string]struct{}{
	"image":     {},
	"mainImage": {},
	"avatar":    {},
}

var referenceLists = map[string]string{
	"featuredServices":     "service",
	"featuredProjects":     "project",
	"featuredTestimonials": "testimonial",
}

// ImportResult summarises an import run.
type ImportResult struct {
	Imported []string
	Skipped  []string
}

// ImporterOption customises an Importer.
type ImporterOption func(*Importer)

// WithImportLogger sets the importer logger.
func WithImportLogger(logger interfaces.Logger) ImporterOption {
	return func(i *Importer) {
		if logger != nil {
			i.logger = logger
		}
	}
}

// WithImportPurger drops cached query results once documents were imported.
func WithImportPurger(purger Purger) ImporterOption {
	return func(i *Importer) {
		i.purger = purger
	}
}

// Importer loads markdown files with YAML frontmatter into a LocalStore.
type Importer struct {
	store  *LocalStore
	logger interfaces.Logger
	purger Purger
}

// NewImporter builds an importer writing into store.
func NewImporter(store *LocalStore, opts ...ImporterOption) *Importer {
	importer := &Importer{store: store, logger: logging.NoOp()}
	for _, opt := range opts {
		if opt != nil {
			opt(importer)
		}
	}
	return importer
}

// ImportDir imports every *.md file under dir.
func (i *Importer) ImportDir(ctx context.Context, dir string) (ImportResult, error) {
	return i.ImportFS(ctx, os.DirFS(dir))
}

// ImportFS imports every *.md file in fsys in lexical order. Files without a
// recognised type are skipped and reported.
func (i *Importer) ImportFS(ctx context.Context, fsys fs.FS) (ImportResult, error) {
	var files []string
	err := fs.WalkDir(fsys, ".", func(name string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if entry.IsDir() || !strings.EqualFold(path.Ext(name), ".md") {
			return nil
		}
		files = append(files, name)
		return nil
	})
	if err != nil {
		return ImportResult{}, fmt.Errorf("content: walk import dir: %w", err)
	}
	sort.Strings(files)

	var result ImportResult
	for _, name := range files {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		src, err := fs.ReadFile(fsys, name)
		if err != nil {
			return result, fmt.Errorf("content: read %s: %w", name, err)
		}
		doc, err := i.ImportFile(ctx, src)
		if errors.Is(err, ErrImportTypeUnknown) {
			i.logger.Warn("content.import.skipped", "file", name, "error", err)
			result.Skipped = append(result.Skipped, name)
			continue
		}
		if err != nil {
			return result, fmt.Errorf("content: import %s: %w", name, err)
		}
		i.logger.Debug("content.import.document", "file", name, "doc_id", doc.DocID, "type", doc.Type)
		result.Imported = append(result.Imported, doc.DocID)
	}
	i.logger.Info("content.import.completed", "imported", len(result.Imported), "skipped", len(result.Skipped))
	if i.purger != nil && len(result.Imported) > 0 {
		if err := i.purger.Purge(ctx); err != nil {
			i.logger.Warn("content.import.purge_failed", "error", err)
		}
	}
	return result, nil
}

// ImportFile parses a single file and upserts it.
func (i *Importer) ImportFile(ctx context.Context, src []byte) (*Document, error) {
	body, err := BuildDocumentBody(src)
	if err != nil {
		return nil, err
	}
	return i.store.Upsert(ctx, body)
}

// BuildDocumentBody converts a markdown file into a content store document.
func BuildDocumentBody(src []byte) (map[string]any, error) {
	fm, markdownBody, err := markdown.ParseFrontMatter(src)
	if err != nil {
		return nil, err
	}
	if _, ok := importableTypes[fm.Type]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrImportTypeUnknown, fm.Type)
	}
	if fm.Type == "translations" {
		return translationsBody(fm)
	}

	body := make(map[string]any, len(fm.Fields)+6)
	for key, value := range fm.Fields {
		body[key] = value
	}
	body["_type"] = fm.Type

	key, err := importSlug(fm)
	if err != nil {
		return nil, err
	}
	if fm.Type != "homepage" {
		body["slug"] = map[string]any{"current": key}
	}
	body["_id"] = identity.DocumentID(fm.Type, key)

	switch fm.Type {
	case "category":
		body["name"] = firstNonEmpty(stringValue(body["name"]), fm.Title)
	case "testimonial":
		body["name"] = firstNonEmpty(stringValue(body["name"]), fm.Title)
		if len(markdownBody) > 0 {
			body["content"] = string(markdownBody)
		}
	case "service":
		body["title"] = fm.Title
		if stringValue(body["description"]) == "" && len(markdownBody) > 0 {
			body["description"] = string(markdownBody)
		}
	case "project":
		body["title"] = fm.Title
		if len(markdownBody) > 0 {
			body["content"] = string(markdownBody)
		}
		if category := stringValue(body["category"]); category != "" {
			body["category"] = reference("category", category)
		}
	case "homepage":
		for field, refType := range referenceLists {
			body[field] = referenceList(refType, body[field])
		}
		if hero, ok := body["hero"].(map[string]any); ok {
			if img, ok := hero["image"].(string); ok {
				hero["image"] = imageValue(img)
			}
		}
	}

	for field := range imageFields {
		if raw, ok := body[field].(string); ok {
			body[field] = imageValue(raw)
		}
	}
	if gallery, ok := body["gallery"].([]any); ok {
		images := make([]any, 0, len(gallery))
		for _, item := range gallery {
			if raw, ok := item.(string); ok {
				images = append(images, imageValue(raw))
			}
		}
		body["gallery"] = images
	}
	switch created := body["created"].(type) {
	case string:
		body["_createdAt"] = created
	case time.Time:
		body["_createdAt"] = created.UTC().Format(time.RFC3339)
	}
	delete(body, "created")
	if date, ok := body["date"].(time.Time); ok {
		body["date"] = date.Format("2006-01-02")
	}
	return body, nil
}

func translationsBody(fm markdown.FrontMatter) (map[string]any, error) {
	language := strings.ToLower(strings.TrimSpace(stringValue(fm.Fields["language"])))
	if language == "" {
		return nil, ErrImportLanguageRequired
	}
	body := map[string]any{
		"_type":    "translations",
		"_id":      identity.TranslationsID(language),
		"language": language,
	}
	if tree, ok := fm.Fields["strings"].(map[string]any); ok {
		for key, value := range tree {
			body[key] = value
		}
	}
	return body, nil
}

func importSlug(fm markdown.FrontMatter) (string, error) {
	candidate := firstNonEmpty(fm.Slug, fm.Title, stringValue(fm.Fields["name"]))
	if fm.Type == "homepage" && candidate == "" {
		candidate = "homepage"
	}
	if candidate == "" {
		return "", ErrImportSlugRequired
	}
	normalized, err := slug.Normalize(candidate)
	if err != nil || normalized == "" {
		return "", fmt.Errorf("%w: %q", ErrImportSlugRequired, candidate)
	}
	return normalized, nil
}

func reference(docType, key string) map[string]any {
	normalized, err := slug.Normalize(key)
	if err != nil || normalized == "" {
		normalized = key
	}
	return map[string]any{
		"_type": "reference",
		"_ref":  identity.DocumentID(docType, normalized),
	}
}

func referenceList(docType string, raw any) []any {
	items, _ := raw.([]any)
	refs := make([]any, 0, len(items))
	for _, item := range items {
		if key, ok := item.(string); ok && strings.TrimSpace(key) != "" {
			refs = append(refs, reference(docType, key))
		}
	}
	return refs
}

func imageValue(raw string) map[string]any {
	raw = strings.TrimSpace(raw)
	asset := map[string]any{"url": raw}
	if strings.HasPrefix(raw, "image-") {
		asset = map[string]any{"_ref": raw}
	}
	return map[string]any{"_type": "image", "asset": asset}
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if trimmed := strings.TrimSpace(value); trimmed != "" {
			return trimmed
		}
	}
	return ""
}
