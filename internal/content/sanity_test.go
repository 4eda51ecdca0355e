package content_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	goerrors "github.com/goliatone/go-errors"

	"github.com/goliatone/socialsync/internal/content"
)

func newSanityClient(t *testing.T, handler http.HandlerFunc, cfg content.SanityConfig) *content.SanityClient {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg.BaseURL = server.URL
	client, err := content.NewSanityClient(cfg, content.WithHTTPClient(server.Client()))
	if err != nil {
		t.Fatalf("NewSanityClient: %v", err)
	}
	return client
}

func TestSanityClientFetchDecodesResult(t *testing.T) {
	var gotPath, gotQuery, gotSlug, gotAuth string
	client := newSanityClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.Query().Get("query")
		gotSlug = r.URL.Query().Get("$slug")
		gotAuth = r.Header.Get("Authorization")
		_, _ = io.WriteString(w, `{"result":{"_id":"p1","title":"Harbor","slug":{"current":"harbor"},"content":[{"_type":"block","children":[{"text":"Hi"}]}]}}`)
	}, content.SanityConfig{ProjectID: "proj", Dataset: "staging", Token: "secret"})

	var project content.Project
	err := client.Fetch(context.Background(), content.ProjectBySlugQuery, content.Params{"slug": "harbor"}, &project)
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if gotPath != "/v2023-05-03/data/query/staging" {
		t.Fatalf("unexpected path %q", gotPath)
	}
	if gotQuery != content.ProjectBySlugQuery.GROQ {
		t.Fatalf("expected GROQ forwarded, got %q", gotQuery)
	}
	if gotSlug != `"harbor"` {
		t.Fatalf("expected JSON encoded param, got %q", gotSlug)
	}
	if gotAuth != "Bearer secret" {
		t.Fatalf("expected bearer token, got %q", gotAuth)
	}
	if project.Title != "Harbor" || project.Slug.Current != "harbor" {
		t.Fatalf("unexpected project %+v", project)
	}
	if len(project.Content.Blocks) != 1 || project.Content.Blocks[0].Children[0].Text != "Hi" {
		t.Fatalf("expected portable text decoded, got %+v", project.Content)
	}
}

func TestSanityClientNullResultLeavesOutputUntouched(t *testing.T) {
	client := newSanityClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"result":null}`)
	}, content.SanityConfig{ProjectID: "proj"})

	out := content.Homepage{Hero: &content.Hero{Title: "keep"}}
	if err := client.Fetch(context.Background(), content.HomepageQuery, nil, &out); err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if out.Hero == nil || out.Hero.Title != "keep" {
		t.Fatalf("expected output untouched, got %+v", out)
	}
}

func TestSanityClientErrorsBecomeFetchErrors(t *testing.T) {
	cases := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "query error envelope",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadRequest)
				_, _ = io.WriteString(w, `{"error":{"description":"expected '}' following object body","type":"queryParseError"}}`)
			},
		},
		{
			name: "server error",
			handler: func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "boom", http.StatusInternalServerError)
			},
		},
		{
			name: "bad json",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = io.WriteString(w, `{"result":`)
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			client := newSanityClient(t, tc.handler, content.SanityConfig{ProjectID: "proj"})
			var services []content.Service
			err := client.Fetch(context.Background(), content.ServicesQuery, nil, &services)
			var fetchErr *content.FetchError
			if !errors.As(err, &fetchErr) {
				t.Fatalf("expected FetchError, got %v", err)
			}
			if fetchErr.Query != content.QueryNameServices {
				t.Fatalf("unexpected query name %q", fetchErr.Query)
			}
			if !goerrors.IsCategory(errors.Unwrap(err), goerrors.CategoryExternal) {
				t.Fatalf("expected external category, got %v", errors.Unwrap(err))
			}
			if services != nil {
				t.Fatalf("expected no data, got %+v", services)
			}
		})
	}
}

func TestSanityClientUnreachableHost(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	baseURL := server.URL
	server.Close()

	client, err := content.NewSanityClient(content.SanityConfig{ProjectID: "proj", BaseURL: baseURL})
	if err != nil {
		t.Fatalf("NewSanityClient: %v", err)
	}
	var out []content.Testimonial
	if err := client.Fetch(context.Background(), content.TestimonialsQuery, nil, &out); err == nil {
		t.Fatal("expected error for unreachable store")
	}
}

func TestSanityClientCreateDocument(t *testing.T) {
	var payload struct {
		Mutations []map[string]map[string]any `json:"mutations"`
	}
	var gotMethod, gotPath, gotReturnIDs string
	client := newSanityClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		gotReturnIDs = r.URL.Query().Get("returnIds")
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			t.Errorf("decode payload: %v", err)
		}
		_, _ = io.WriteString(w, `{"transactionId":"tx1","results":[{"id":"msg-1","operation":"create"}]}`)
	}, content.SanityConfig{ProjectID: "proj", Token: "secret", UseCDN: true})

	id, err := client.CreateDocument(context.Background(), map[string]any{
		"_type": "contactMessage",
		"name":  "Ana",
	})
	if err != nil {
		t.Fatalf("CreateDocument: %v", err)
	}
	if id != "msg-1" {
		t.Fatalf("expected id msg-1, got %q", id)
	}
	if gotMethod != http.MethodPost || !strings.HasSuffix(gotPath, "/data/mutate/production") || gotReturnIDs != "true" {
		t.Fatalf("unexpected request %s %s returnIds=%s", gotMethod, gotPath, gotReturnIDs)
	}
	if len(payload.Mutations) != 1 || payload.Mutations[0]["create"]["_type"] != "contactMessage" {
		t.Fatalf("unexpected mutations %#v", payload.Mutations)
	}
}

func TestSanityClientCreateDocumentRequiresType(t *testing.T) {
	client, err := content.NewSanityClient(content.SanityConfig{ProjectID: "proj", Token: "t"})
	if err != nil {
		t.Fatalf("NewSanityClient: %v", err)
	}
	if _, err := client.CreateDocument(context.Background(), map[string]any{"name": "x"}); !errors.Is(err, content.ErrDocumentInvalid) {
		t.Fatalf("expected ErrDocumentInvalid, got %v", err)
	}
}

func TestNewSanityClientRequiresProjectID(t *testing.T) {
	if _, err := content.NewSanityClient(content.SanityConfig{}); !errors.Is(err, content.ErrProjectIDRequired) {
		t.Fatalf("expected ErrProjectIDRequired, got %v", err)
	}
}
