package content

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func writeFile(t *testing.T, dir, name, body string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
}

func TestLoadDir(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "b-second.md", `---
title: "Second Post"
date: "2024-02-01"
readTime: "3 min read"
tags: ["Go", "Web"]
author: "Sam"
excerpt: "Short."
weight: 2
---
# Hello

Body text.
`)
	writeFile(t, dir, "a-first.md", `---
slug: custom-slug
title: "First Post"
date: "2024-03-01"
tags: ["Go"]
weight: 1
---
Some body.
`)
	writeFile(t, dir, "listed-only.md", `---
title: "Listed Only"
weight: 3
listingOnly: true
---
Drafted elsewhere.
`)
	writeFile(t, dir, "empty-body.md", "---\ntitle: \"Empty Body\"\nweight: 4\n---\n   \n")
	writeFile(t, dir, "notes.txt", "ignored")
	if err := os.Mkdir(filepath.Join(dir, "drafts.md"), 0o755); err != nil {
		t.Fatal(err)
	}

	r, err := LoadDir(dir)
	if err != nil {
		t.Fatalf("LoadDir failed: %v", err)
	}

	var slugs []string
	for _, s := range r.ListAll() {
		slugs = append(slugs, s.Slug)
	}
	wantSlugs := []string{"custom-slug", "b-second", "listed-only", "empty-body"}
	if !reflect.DeepEqual(slugs, wantSlugs) {
		t.Errorf("ListAll slugs = %v, want %v", slugs, wantSlugs)
	}

	post, err := r.GetBySlug("b-second")
	if err != nil {
		t.Fatalf("GetBySlug failed: %v", err)
	}
	if post.Title != "Second Post" {
		t.Errorf("Title = %q, want %q", post.Title, "Second Post")
	}
	if post.Date != "2024-02-01" {
		t.Errorf("Date = %q, want %q", post.Date, "2024-02-01")
	}
	if post.ReadTime != "3 min read" || post.Author != "Sam" || post.Excerpt != "Short." {
		t.Errorf("unexpected metadata: %+v", post)
	}
	if !reflect.DeepEqual(post.Tags, []string{"Go", "Web"}) {
		t.Errorf("Tags = %v", post.Tags)
	}
	if post.Content != "# Hello\n\nBody text." {
		t.Errorf("Content = %q", post.Content)
	}

	if _, err := r.GetBySlug("listed-only"); !errors.Is(err, ErrNotFound) {
		t.Errorf("listingOnly post should not resolve, err = %v", err)
	}
	empty, err := r.GetBySlug("empty-body")
	if err != nil {
		t.Fatalf("post with a blank body should resolve: %v", err)
	}
	if empty.Content != "" {
		t.Errorf("Content = %q, want empty", empty.Content)
	}
	if got := r.AllSlugs(); !reflect.DeepEqual(got, []string{"custom-slug", "b-second", "empty-body"}) {
		t.Errorf("AllSlugs = %v", got)
	}
}

func TestLoadDirDerivesTitle(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "hello-go_world.md", "Just a body, no front matter.\n")

	r, err := LoadDir(dir)
	if err != nil {
		t.Fatalf("LoadDir failed: %v", err)
	}
	post, err := r.GetBySlug("hello-go-world")
	if err != nil {
		t.Fatalf("GetBySlug failed: %v", err)
	}
	if post.Title != "Hello Go World" {
		t.Errorf("Title = %q, want %q", post.Title, "Hello Go World")
	}
	if post.Content != "Just a body, no front matter." {
		t.Errorf("Content = %q", post.Content)
	}
}

func TestLoadDirRejectsUnsafeSlug(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "escape.md", "---\nslug: ../../escaped\n---\nbody\n")

	if _, err := LoadDir(dir); err == nil {
		t.Fatal("expected error for a slug that is not URL-safe")
	}
}

func TestLoadDirDuplicateSlug(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "one.md", "---\nslug: same\n---\nx\n")
	writeFile(t, dir, "two.md", "---\nslug: same\n---\ny\n")

	if _, err := LoadDir(dir); err == nil {
		t.Fatal("expected duplicate slug error")
	}
}

func TestLoadDirMissing(t *testing.T) {
	if _, err := LoadDir(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Fatal("expected error for missing directory")
	}
}
