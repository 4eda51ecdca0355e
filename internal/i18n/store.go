package i18n

import (
	"context"
	_ "embed"
	"encoding/json"

	"github.com/goliatone/socialsync/internal/content"
	"github.com/goliatone/socialsync/internal/logging"
	"github.com/goliatone/socialsync/internal/validation"
	"github.com/goliatone/socialsync/pkg/interfaces"
)

// Source reports where a translation tree came from.
type Source string

const (
	SourceDefault Source = "default"
	SourceRemote  Source = "remote"
)

//go:embed schema/translations.schema.json
var translationsSchema []byte

var (
	fullSchema    = validation.MustCompile(translationsSchema)
	partialSchema = mustPartial(fullSchema)
)

func mustPartial(schema *validation.Schema) *validation.Schema {
	partial, err := schema.Partial()
	if err != nil {
		panic(err)
	}
	return partial
}

// ValidateDocument checks a remote translations document. Sections may be
// missing; present leaves must be non-empty strings.
func ValidateDocument(doc map[string]any) error {
	return partialSchema.Validate(doc)
}

// ValidateComplete checks that doc carries every leaf.
func ValidateComplete(doc map[string]any) error {
	return fullSchema.Validate(doc)
}

// Loader resolves the translation tree of a language.
type Loader interface {
	Load(ctx context.Context, lang Language) (Translations, Source)
}

// StoreOption customises a Store.
type StoreOption func(*Store)

// WithLogger sets the store logger.
func WithLogger(logger interfaces.Logger) StoreOption {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// Store loads translations, remote first with the built-in defaults as
// fallback. It keeps no per-language state and is safe for concurrent use.
type Store struct {
	fetcher content.Fetcher
	logger  interfaces.Logger
}

var _ Loader = (*Store)(nil)

// NewStore builds a store over fetcher. A nil fetcher always yields defaults.
func NewStore(fetcher content.Fetcher, opts ...StoreOption) *Store {
	store := &Store{fetcher: fetcher, logger: logging.NoOp()}
	for _, opt := range opts {
		if opt != nil {
			opt(store)
		}
	}
	return store
}

// Load returns a fully populated tree for lang. Remote documents overlay the
// defaults, so missing sections keep their built-in text.
func (s *Store) Load(ctx context.Context, lang Language) (Translations, Source) {
	defaults := Defaults(lang)
	if s.fetcher == nil {
		return defaults, SourceDefault
	}

	var raw json.RawMessage
	err := s.fetcher.Fetch(ctx, content.TranslationsQuery, content.Params{"language": lang.String()}, &raw)
	if err != nil {
		s.logger.Warn("i18n.load.fallback", "language", lang, "reason", "fetch_failed", "error", err)
		return defaults, SourceDefault
	}

	var doc map[string]any
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &doc); err != nil {
			s.logger.Warn("i18n.load.fallback", "language", lang, "reason", "decode_failed", "error", err)
			return defaults, SourceDefault
		}
	}
	doc = dropNulls(doc)
	if len(doc) == 0 {
		s.logger.Debug("i18n.load.fallback", "language", lang, "reason", "empty")
		return defaults, SourceDefault
	}
	if err := ValidateDocument(doc); err != nil {
		s.logger.Warn("i18n.load.fallback", "language", lang, "reason", "invalid_document", "error", err)
		return defaults, SourceDefault
	}

	encoded, err := json.Marshal(doc)
	if err != nil {
		return defaults, SourceDefault
	}
	merged := defaults
	if err := json.Unmarshal(encoded, &merged); err != nil {
		s.logger.Warn("i18n.load.fallback", "language", lang, "reason", "decode_failed", "error", err)
		return defaults, SourceDefault
	}
	return merged, SourceRemote
}

func dropNulls(doc map[string]any) map[string]any {
	for key, value := range doc {
		switch typed := value.(type) {
		case nil:
			delete(doc, key)
		case map[string]any:
			if cleaned := dropNulls(typed); len(cleaned) == 0 {
				delete(doc, key)
			}
		}
	}
	return doc
}
