package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/eringen/techinsights"
)

func TestInitializeConfigLayers(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	yaml := "name: My Blog\nsearchWindow: 2m\nrenderMode: naive\n"
	if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("TECHINSIGHTS_AUTHOR", "Sam Doe")

	cfgFile = path
	siteConfig = techinsights.SiteConfig{}
	t.Cleanup(func() { cfgFile = "" })

	if err := initializeConfig(versionCmd); err != nil {
		t.Fatalf("initializeConfig: %v", err)
	}
	if siteConfig.Name != "My Blog" {
		t.Errorf("Name = %q, want %q", siteConfig.Name, "My Blog")
	}
	if siteConfig.SearchWindow != 2*time.Minute {
		t.Errorf("SearchWindow = %s, want 2m", siteConfig.SearchWindow)
	}
	if siteConfig.RenderMode != "naive" {
		t.Errorf("RenderMode = %q, want naive", siteConfig.RenderMode)
	}
	if siteConfig.Author != "Sam Doe" {
		t.Errorf("Author = %q, want %q", siteConfig.Author, "Sam Doe")
	}
	if siteConfig.Addr != ":3000" {
		t.Errorf("Addr = %q, want :3000", siteConfig.Addr)
	}
}

func TestInitializeConfigMissingFile(t *testing.T) {
	cfgFile = filepath.Join(t.TempDir(), "missing.yaml")
	t.Cleanup(func() { cfgFile = "" })
	if err := initializeConfig(versionCmd); err == nil {
		t.Errorf("expected error for a missing config file")
	}
}
