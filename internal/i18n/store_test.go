package i18n_test

import (
	"context"
	"encoding/json"
	"errors"
	"reflect"
	"testing"

	"github.com/goliatone/socialsync/internal/content"
	"github.com/goliatone/socialsync/internal/i18n"
)

type stubFetcher struct {
	docs  map[string]string
	err   error
	calls []string
}

func (f *stubFetcher) Fetch(_ context.Context, query content.Query, params content.Params, out any) error {
	lang, _ := params["language"].(string)
	f.calls = append(f.calls, query.Name+":"+lang)
	if f.err != nil {
		return f.err
	}
	raw, ok := f.docs[lang]
	if !ok {
		return nil
	}
	return json.Unmarshal([]byte(raw), out)
}

func TestDefaultsShareLeafPaths(t *testing.T) {
	pt := i18n.LeafPaths(i18n.Defaults(i18n.Portuguese))
	en := i18n.LeafPaths(i18n.Defaults(i18n.English))
	if !reflect.DeepEqual(pt, en) {
		t.Fatalf("leaf paths differ:\npt=%v\nen=%v", pt, en)
	}
	if len(pt) != 37 {
		t.Fatalf("expected 37 leaves, got %d", len(pt))
	}
	for _, lang := range i18n.Supported() {
		if !i18n.Defaults(lang).Complete() {
			t.Fatalf("defaults for %s have empty leaves", lang)
		}
	}
}

func TestDefaultsMatchCompleteSchema(t *testing.T) {
	for _, lang := range i18n.Supported() {
		encoded, err := json.Marshal(i18n.Defaults(lang))
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		var doc map[string]any
		if err := json.Unmarshal(encoded, &doc); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if err := i18n.ValidateComplete(doc); err != nil {
			t.Fatalf("defaults for %s fail schema: %v", lang, err)
		}
	}
}

func TestStoreLoadOverlaysRemoteDocument(t *testing.T) {
	fetcher := &stubFetcher{docs: map[string]string{
		"en": `{"hero":{"title":"Remote hero"},"footer":null}`,
	}}
	store := i18n.NewStore(fetcher)

	tree, source := store.Load(context.Background(), i18n.English)
	if source != i18n.SourceRemote {
		t.Fatalf("expected remote source, got %s", source)
	}
	if tree.Hero.Title != "Remote hero" {
		t.Fatalf("expected remote title, got %q", tree.Hero.Title)
	}
	if tree.Hero.CTA != "Explore our services" || tree.Footer.QuickLinks != "Quick Links" {
		t.Fatalf("expected missing leaves from defaults, got %+v", tree)
	}
	if !reflect.DeepEqual(i18n.LeafPaths(tree), i18n.LeafPaths(i18n.Defaults(i18n.Portuguese))) {
		t.Fatal("remote tree leaf paths differ from defaults")
	}
	if !tree.Complete() {
		t.Fatal("expected fully populated tree")
	}
}

func TestStoreLoadFallsBackToDefaults(t *testing.T) {
	cases := []struct {
		name    string
		fetcher content.Fetcher
	}{
		{name: "nil fetcher", fetcher: nil},
		{name: "fetch error", fetcher: &stubFetcher{err: errors.New("store unreachable")}},
		{name: "empty result", fetcher: &stubFetcher{}},
		{name: "all null", fetcher: &stubFetcher{docs: map[string]string{"pt": `{"hero":null,"footer":null}`}}},
		{name: "empty leaf", fetcher: &stubFetcher{docs: map[string]string{"pt": `{"hero":{"title":""}}`}}},
		{name: "wrong type", fetcher: &stubFetcher{docs: map[string]string{"pt": `{"navigation":{"home":3}}`}}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			store := i18n.NewStore(tc.fetcher)
			tree, source := store.Load(context.Background(), i18n.Portuguese)
			if source != i18n.SourceDefault {
				t.Fatalf("expected default source, got %s", source)
			}
			if !reflect.DeepEqual(tree, i18n.Defaults(i18n.Portuguese)) {
				t.Fatalf("expected default tree, got %+v", tree)
			}
		})
	}
}

func TestParseLanguage(t *testing.T) {
	cases := map[string]i18n.Language{
		"pt":    i18n.Portuguese,
		"pt-BR": i18n.Portuguese,
		"PT":    i18n.Portuguese,
		"en":    i18n.English,
		"en-US": i18n.English,
	}
	for raw, want := range cases {
		got, err := i18n.ParseLanguage(raw)
		if err != nil || got != want {
			t.Fatalf("ParseLanguage(%q) = %q, %v; want %q", raw, got, err, want)
		}
	}
	for _, raw := range []string{"", "fr", "de-DE", "!!"} {
		if _, err := i18n.ParseLanguage(raw); !errors.Is(err, i18n.ErrUnsupportedLanguage) {
			t.Fatalf("ParseLanguage(%q) expected ErrUnsupportedLanguage, got %v", raw, err)
		}
	}
	if got := i18n.ParseLanguageOr("fr", i18n.English); got != i18n.English {
		t.Fatalf("expected fallback, got %q", got)
	}
}

func TestLanguageToggleLabels(t *testing.T) {
	if i18n.Portuguese.SwitchLabel() != "EN" || i18n.Portuguese.SwitchAria() != "Switch to English" {
		t.Fatalf("unexpected pt toggle %q %q", i18n.Portuguese.SwitchLabel(), i18n.Portuguese.SwitchAria())
	}
	if i18n.English.SwitchLabel() != "PT" || i18n.English.SwitchAria() != "Mudar para Português" {
		t.Fatalf("unexpected en toggle %q %q", i18n.English.SwitchLabel(), i18n.English.SwitchAria())
	}
}
