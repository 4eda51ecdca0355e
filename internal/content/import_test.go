package content_test

import (
	"context"
	"errors"
	"testing"
	"testing/fstest"
	"time"

	"github.com/goliatone/socialsync/internal/content"
	"github.com/goliatone/socialsync/internal/identity"
)

const categoryFile = `---
type: category
title: Web Development
order: 1
---
`

const projectFile = `---
type: project
title: Harbor Rebrand
category: Web Development
client: Harbor Co
tags: [branding, web]
mainImage: https://images.example.com/harbor.png
gallery:
  - https://images.example.com/g1.png
  - image-abc123-800x600-jpg
created: "2024-05-01T10:00:00Z"
---

## Overview

A full rebrand.
`

const translationsFile = `---
type: translations
language: EN
strings:
  hero:
    title: Opening doors
---
`

func TestImporterLoadsMarkdownIntoLocalStore(t *testing.T) {
	store := newLocalStore(t)
	importer := content.NewImporter(store)
	fsys := fstest.MapFS{
		"categories/web.md":  {Data: []byte(categoryFile)},
		"projects/harbor.md": {Data: []byte(projectFile)},
		"i18n/en.md":         {Data: []byte(translationsFile)},
		"notes/readme.md":    {Data: []byte("---\ntype: memo\n---\nignored")},
		"projects/cover.png": {Data: []byte("binary")},
	}

	result, err := importer.ImportFS(context.Background(), fsys)
	if err != nil {
		t.Fatalf("ImportFS: %v", err)
	}
	if len(result.Imported) != 3 {
		t.Fatalf("expected 3 imported documents, got %v", result.Imported)
	}
	if len(result.Skipped) != 1 || result.Skipped[0] != "notes/readme.md" {
		t.Fatalf("expected memo skipped, got %v", result.Skipped)
	}

	ctx := context.Background()
	project, ok, err := content.Get[*content.Project](ctx, store, content.ProjectBySlugQuery, content.Params{"slug": "harbor-rebrand"})
	if err != nil || !ok {
		t.Fatalf("project: ok=%v err=%v", ok, err)
	}
	if project.ID != identity.DocumentID("project", "harbor-rebrand") {
		t.Fatalf("expected deterministic id, got %q", project.ID)
	}
	if project.Category == nil || project.Category.Name != "Web Development" {
		t.Fatalf("expected category reference resolved, got %+v", project.Category)
	}
	if project.Content.Markdown == "" || project.Client != "Harbor Co" || len(project.Tags) != 2 {
		t.Fatalf("unexpected project %+v", project)
	}
	if project.MainImage == nil || project.MainImage.Asset == nil || project.MainImage.Asset.URL != "https://images.example.com/harbor.png" {
		t.Fatalf("expected main image asset url, got %+v", project.MainImage)
	}
	if len(project.Gallery) != 2 || project.Gallery[1].Asset.Ref != "image-abc123-800x600-jpg" {
		t.Fatalf("unexpected gallery %+v", project.Gallery)
	}

	var tree map[string]any
	if err := store.Fetch(ctx, content.TranslationsQuery, content.Params{"language": "en"}, &tree); err != nil {
		t.Fatalf("translations: %v", err)
	}
	if tree["hero"].(map[string]any)["title"] != "Opening doors" {
		t.Fatalf("unexpected translations %#v", tree)
	}
}

func TestImporterIsIdempotent(t *testing.T) {
	store := newLocalStore(t)
	importer := content.NewImporter(store)
	fsys := fstest.MapFS{"web.md": {Data: []byte(categoryFile)}}

	for i := 0; i < 2; i++ {
		if _, err := importer.ImportFS(context.Background(), fsys); err != nil {
			t.Fatalf("ImportFS run %d: %v", i, err)
		}
	}
	categories, _, err := content.Get[[]content.Category](context.Background(), store, content.CategoriesQuery, nil)
	if err != nil {
		t.Fatalf("categories: %v", err)
	}
	if len(categories) != 1 || categories[0].Slug.Current != "web-development" {
		t.Fatalf("expected a single category, got %+v", categories)
	}
}

func TestBuildDocumentBodyErrors(t *testing.T) {
	if _, err := content.BuildDocumentBody([]byte("---\ntype: project\n---\n")); !errors.Is(err, content.ErrImportSlugRequired) {
		t.Fatalf("expected ErrImportSlugRequired, got %v", err)
	}
	if _, err := content.BuildDocumentBody([]byte("---\ntype: translations\n---\n")); !errors.Is(err, content.ErrImportLanguageRequired) {
		t.Fatalf("expected ErrImportLanguageRequired, got %v", err)
	}
	if _, err := content.BuildDocumentBody([]byte("---\ntype: memo\n---\n")); !errors.Is(err, content.ErrImportTypeUnknown) {
		t.Fatalf("expected ErrImportTypeUnknown, got %v", err)
	}
}

func TestBuildDocumentBodyServiceUsesBodyAsDescription(t *testing.T) {
	body, err := content.BuildDocumentBody([]byte("---\ntype: service\ntitle: Paid Traffic\nicon: lineChart\nfeatures: [Google Ads]\n---\nCampaigns that convert.\n"))
	if err != nil {
		t.Fatalf("BuildDocumentBody: %v", err)
	}
	if body["description"] != "Campaigns that convert." {
		t.Fatalf("expected body as description, got %#v", body["description"])
	}
	if body["_id"] != identity.DocumentID("service", "paid-traffic") {
		t.Fatalf("unexpected id %v", body["_id"])
	}
}

func TestImporterPurgesCachedQueries(t *testing.T) {
	store := newLocalStore(t)
	cached := content.NewRevalidating(store, time.Hour)
	purger, ok := cached.(content.Purger)
	if !ok {
		t.Fatal("expected revalidating fetcher to support purging")
	}
	importer := content.NewImporter(store, content.WithImportPurger(purger))
	ctx := context.Background()

	first := fstest.MapFS{"categories/web.md": {Data: []byte(categoryFile)}}
	if _, err := importer.ImportFS(ctx, first); err != nil {
		t.Fatalf("ImportFS: %v", err)
	}
	categories, _, err := content.Get[[]content.Category](ctx, cached, content.CategoriesQuery, nil)
	if err != nil || len(categories) != 1 {
		t.Fatalf("expected one category, got %+v err=%v", categories, err)
	}

	second := fstest.MapFS{"categories/photo.md": {Data: []byte("---\ntype: category\ntitle: Photography\norder: 2\n---\n")}}
	if _, err := importer.ImportFS(ctx, second); err != nil {
		t.Fatalf("ImportFS: %v", err)
	}
	categories, _, err = content.Get[[]content.Category](ctx, cached, content.CategoriesQuery, nil)
	if err != nil || len(categories) != 2 {
		t.Fatalf("expected imported category after purge, got %+v err=%v", categories, err)
	}
}
