package content

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	goerrors "github.com/goliatone/go-errors"
	repository "github.com/goliatone/go-repository-bun"
	"github.com/goliatone/go-repository-cache/cache"
	repositorycache "github.com/goliatone/go-repository-cache/repositorycache"
	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"github.com/goliatone/socialsync/internal/identity"
	"github.com/goliatone/socialsync/internal/logging"
	"github.com/goliatone/socialsync/internal/storage"
	"github.com/goliatone/socialsync/pkg/interfaces"
)

// Document is a content store document mirrored into SQL.
type Document struct {
	bun.BaseModel `bun:"table:content_documents,alias:cd"`

	ID        uuid.UUID      `bun:",pk,type:uuid"               json:"id"`
	DocID     string         `bun:"doc_id,notnull,unique"       json:"doc_id"`
	Type      string         `bun:"doc_type,notnull"            json:"doc_type"`
	Slug      string         `bun:"slug"                        json:"slug,omitempty"`
	Language  string         `bun:"language"                    json:"language,omitempty"`
	SortOrder int            `bun:"sort_order,notnull"          json:"sort_order"`
	Body      map[string]any `bun:"body,type:jsonb,notnull"     json:"body"`
	CreatedAt time.Time      `bun:"created_at,nullzero,notnull,default:current_timestamp" json:"created_at"`
	UpdatedAt time.Time      `bun:"updated_at,nullzero,notnull,default:current_timestamp" json:"updated_at"`
}

// NewDocumentRepository builds the go-repository-bun repository for documents,
// keyed by doc_id.
func NewDocumentRepository(db *bun.DB) repository.Repository[*Document] {
	return repository.MustNewRepository(db, repository.ModelHandlers[*Document]{
		NewRecord: func() *Document { return &Document{} },
		GetID: func(d *Document) uuid.UUID {
			return d.ID
		},
		SetID: func(d *Document, id uuid.UUID) {
			d.ID = id
		},
		GetIdentifier: func() string {
			return "doc_id"
		},
		GetIdentifierValue: func(d *Document) string {
			return d.DocID
		},
	})
}

// LocalOption customises a LocalStore.
type LocalOption func(*LocalStore)

// WithDocumentCache caches reference lookups through go-repository-cache.
func WithDocumentCache(service cache.CacheService, serializer cache.KeySerializer) LocalOption {
	return func(s *LocalStore) {
		if service != nil && serializer != nil {
			s.lookup = repositorycache.New(s.documents, service, serializer)
		}
	}
}

// WithLocalLogger sets the store logger.
func WithLocalLogger(logger interfaces.Logger) LocalOption {
	return func(s *LocalStore) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithLocalClock overrides the time source used for timestamps.
func WithLocalClock(now func() time.Time) LocalOption {
	return func(s *LocalStore) {
		if now != nil {
			s.now = now
		}
	}
}

// WithLocalIDGenerator overrides how ids are assigned to created documents
// that arrive without one.
func WithLocalIDGenerator(gen func() string) LocalOption {
	return func(s *LocalStore) {
		if gen != nil {
			s.newID = gen
		}
	}
}

// LocalStore keeps content documents in SQL and answers the named site
// queries with the same ordering as the remote store.
type LocalStore struct {
	db        *bun.DB
	documents repository.Repository[*Document]
	lookup    repository.Repository[*Document]
	logger    interfaces.Logger
	now       func() time.Time
	newID     func() string
}

var (
	_ Fetcher                    = (*LocalStore)(nil)
	_ interfaces.DocumentCreator = (*LocalStore)(nil)
)

// NewLocalStore wires a store over db.
func NewLocalStore(db *bun.DB, opts ...LocalOption) *LocalStore {
	documents := NewDocumentRepository(db)
	store := &LocalStore{
		db:        db,
		documents: documents,
		lookup:    documents,
		logger:    logging.NoOp(),
		now:       time.Now,
		newID:     uuid.NewString,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(store)
		}
	}
	return store
}

// Migrate creates the documents table.
func (s *LocalStore) Migrate(ctx context.Context) error {
	return storage.Migrate(ctx, s.db, (*Document)(nil))
}

// Upsert stores body keyed by its _id, creating or replacing the document.
func (s *LocalStore) Upsert(ctx context.Context, body map[string]any) (*Document, error) {
	doc, err := s.documentFromBody(body)
	if err != nil {
		return nil, err
	}

	existing, err := s.documents.GetByIdentifier(ctx, doc.DocID)
	if err != nil {
		err = mapRepositoryError(err, "document", doc.DocID)
		if !IsNotFound(err) {
			return nil, err
		}
		created, createErr := s.documents.Create(ctx, doc)
		if createErr != nil {
			return nil, fmt.Errorf("content: create document %s: %w", doc.DocID, createErr)
		}
		return created, nil
	}

	doc.ID = existing.ID
	if _, explicit := body["_createdAt"]; !explicit {
		doc.CreatedAt = existing.CreatedAt
	}
	updated, err := s.documents.Update(ctx, doc)
	if err != nil {
		return nil, mapRepositoryError(err, "document", doc.DocID)
	}
	return updated, nil
}

// CreateDocument stores a new document and returns its id.
func (s *LocalStore) CreateDocument(ctx context.Context, body map[string]any) (string, error) {
	cloned := make(map[string]any, len(body)+1)
	for key, value := range body {
		cloned[key] = value
	}
	if id, _ := cloned["_id"].(string); strings.TrimSpace(id) == "" {
		cloned["_id"] = s.newID()
	}
	doc, err := s.documentFromBody(cloned)
	if err != nil {
		return "", err
	}
	if _, err := s.documents.Create(ctx, doc); err != nil {
		return "", fmt.Errorf("content: create document: %w", err)
	}
	return doc.DocID, nil
}

// Get returns a stored document by its _id.
func (s *LocalStore) Get(ctx context.Context, docID string) (*Document, error) {
	doc, err := s.lookup.GetByIdentifier(ctx, docID)
	if err != nil {
		return nil, mapRepositoryError(err, "document", docID)
	}
	return doc, nil
}

var (
	serviceFields     = []string{"_id", "title", "slug", "description", "icon", "features", "image"}
	projectFields     = []string{"_id", "title", "slug", "category", "description", "mainImage", "gallery", "client", "date", "tags", "content"}
	projectFullFields = append(append([]string{}, projectFields...), "results", "testimonial")
	categoryFields    = []string{"_id", "name", "slug"}
	testimonialFields = []string{"_id", "name", "position", "company", "content", "avatar"}
	translationFields = []string{"navigation", "hero", "services", "projects", "testimonials", "contact", "footer"}
	homepageFields    = []string{"hero", "featuredServices", "featuredProjects", "featuredTestimonials"}
)

const referenceDepthLimit = 3

// Fetch answers the named queries. The GROQ text is ignored.
func (s *LocalStore) Fetch(ctx context.Context, query Query, params Params, out any) error {
	result, err := s.run(ctx, query, params)
	if err != nil {
		s.logger.Error("content.fetch.failed", "query", query.Name, "backend", "local", "error", err)
		return newFetchError(query.Name, err)
	}
	if result == nil || out == nil {
		return nil
	}
	encoded, err := json.Marshal(result)
	if err != nil {
		return newFetchError(query.Name, err)
	}
	if err := json.Unmarshal(encoded, out); err != nil {
		return newFetchError(query.Name, err)
	}
	return nil
}

func (s *LocalStore) run(ctx context.Context, query Query, params Params) (any, error) {
	switch query.Name {
	case QueryNameTranslations:
		return s.first(ctx, translationFields, selection{
			docType: "translations",
			where:   map[string]any{"language": paramString(params, "language")},
		})
	case QueryNameServices:
		return s.list(ctx, serviceFields, selection{
			docType: "service",
			order:   []string{"?TableAlias.sort_order ASC", "?TableAlias.created_at ASC"},
		})
	case QueryNameProjects:
		return s.list(ctx, projectFields, selection{
			docType: "project",
			order:   []string{"?TableAlias.created_at DESC"},
		})
	case QueryNameProjectBySlug:
		return s.first(ctx, projectFullFields, selection{
			docType: "project",
			where:   map[string]any{"slug": paramString(params, "slug")},
		})
	case QueryNameCategories:
		return s.list(ctx, categoryFields, selection{
			docType: "category",
			order:   []string{"?TableAlias.sort_order ASC", "?TableAlias.created_at ASC"},
		})
	case QueryNameTestimonials:
		return s.list(ctx, testimonialFields, selection{
			docType: "testimonial",
			order:   []string{"?TableAlias.created_at DESC"},
		})
	case QueryNameHomepage:
		return s.first(ctx, homepageFields, selection{
			docType: "homepage",
			order:   []string{"?TableAlias.created_at ASC"},
		})
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownQuery, query.Name)
	}
}

type selection struct {
	docType string
	where   map[string]any
	order   []string
}

func (sel selection) apply(q *bun.SelectQuery) *bun.SelectQuery {
	q = q.Where("?TableAlias.doc_type = ?", sel.docType)
	for _, column := range sortedKeys(sel.where) {
		q = q.Where("?TableAlias."+column+" = ?", sel.where[column])
	}
	for _, expr := range sel.order {
		q = q.OrderExpr(expr)
	}
	return q
}

func (s *LocalStore) list(ctx context.Context, fields []string, sel selection) ([]map[string]any, error) {
	records, _, err := s.documents.List(ctx, repository.SelectRawProcessor(sel.apply))
	if err != nil {
		return nil, err
	}
	out := make([]map[string]any, 0, len(records))
	for _, record := range records {
		out = append(out, s.project(ctx, record, fields))
	}
	return out, nil
}

func (s *LocalStore) first(ctx context.Context, fields []string, sel selection) (any, error) {
	records, _, err := s.documents.List(ctx,
		repository.SelectRawProcessor(sel.apply),
		repository.SelectPaginate(1, 0),
	)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, nil
	}
	return s.project(ctx, records[0], fields), nil
}

func (s *LocalStore) project(ctx context.Context, record *Document, fields []string) map[string]any {
	out := make(map[string]any, len(fields))
	for _, field := range fields {
		value, ok := record.Body[field]
		if !ok {
			continue
		}
		out[field] = s.deref(ctx, value, referenceDepthLimit)
	}
	if _, ok := out["_id"]; !ok && containsField(fields, "_id") {
		out["_id"] = record.DocID
	}
	return out
}

// deref replaces {_ref: id} objects with the referenced document body. Refs
// that do not resolve, such as image assets, are kept as is.
func (s *LocalStore) deref(ctx context.Context, value any, depth int) any {
	if depth <= 0 {
		return value
	}
	switch typed := value.(type) {
	case map[string]any:
		if ref, ok := typed["_ref"].(string); ok && ref != "" {
			doc, err := s.Get(ctx, ref)
			if err != nil {
				return typed
			}
			body := make(map[string]any, len(doc.Body))
			for key, v := range doc.Body {
				if strings.HasPrefix(key, "_") && key != "_id" {
					continue
				}
				body[key] = s.deref(ctx, v, depth-1)
			}
			body["_id"] = doc.DocID
			return body
		}
		out := make(map[string]any, len(typed))
		for key, v := range typed {
			out[key] = s.deref(ctx, v, depth-1)
		}
		return out
	case []any:
		out := make([]any, len(typed))
		for i, v := range typed {
			out[i] = s.deref(ctx, v, depth)
		}
		return out
	default:
		return value
	}
}

func (s *LocalStore) documentFromBody(body map[string]any) (*Document, error) {
	docType, _ := body["_type"].(string)
	docType = strings.TrimSpace(docType)
	if docType == "" {
		return nil, ErrDocumentInvalid
	}
	docID, _ := body["_id"].(string)
	docID = strings.TrimSpace(docID)
	if docID == "" {
		return nil, fmt.Errorf("%w: missing _id", ErrDocumentInvalid)
	}

	now := s.now().UTC()
	doc := &Document{
		ID:        identity.UUID("socialsync:document:" + docID),
		DocID:     docID,
		Type:      docType,
		Slug:      slugValue(body["slug"]),
		Language:  stringValue(body["language"]),
		SortOrder: intValue(body["order"]),
		Body:      body,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if raw, ok := body["_createdAt"].(string); ok {
		for _, layout := range []string{time.RFC3339Nano, "2006-01-02"} {
			if parsed, err := time.Parse(layout, raw); err == nil {
				doc.CreatedAt = parsed.UTC()
				break
			}
		}
	}
	return doc, nil
}

func mapRepositoryError(err error, resource, key string) error {
	if err == nil {
		return nil
	}
	if goerrors.IsCategory(err, repository.CategoryDatabaseNotFound) {
		return &NotFoundError{Resource: resource, Key: key}
	}
	return fmt.Errorf("%s repository error: %w", resource, err)
}

func paramString(params Params, key string) string {
	if params == nil {
		return ""
	}
	value, _ := params[key].(string)
	return value
}

func slugValue(raw any) string {
	switch typed := raw.(type) {
	case string:
		return typed
	case map[string]any:
		current, _ := typed["current"].(string)
		return current
	default:
		return ""
	}
}

func stringValue(raw any) string {
	value, _ := raw.(string)
	return value
}

func intValue(raw any) int {
	switch typed := raw.(type) {
	case int:
		return typed
	case int64:
		return int(typed)
	case float64:
		return int(typed)
	case json.Number:
		n, _ := typed.Int64()
		return int(n)
	default:
		return 0
	}
}

func sortedKeys(values map[string]any) []string {
	keys := make([]string, 0, len(values))
	for key := range values {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

func containsField(fields []string, name string) bool {
	for _, field := range fields {
		if field == name {
			return true
		}
	}
	return false
}
