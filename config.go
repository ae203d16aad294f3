package techinsights

import (
	"strings"
	"time"

	"github.com/eringen/techinsights/content"
	"github.com/eringen/techinsights/markdown"
	"github.com/eringen/techinsights/views"
)

// SiteConfig holds all configuration for a site.
type SiteConfig struct {
	Name        string // Site name (default "Tech Insights")
	URL         string // Canonical URL (default "http://localhost:3000")
	Description string // Site description for RSS and meta tags
	Author      string // Site author for JSON-LD (default "Alex Chen")
	AuthorBio   string // Shown in the author card under each post

	Addr       string // Listen address (default ":3000")
	ContentDir string // Directory of markdown posts; empty uses the built-in posts
	RenderMode string // "structured" (default) or "naive"

	SearchLimit  int           // Searches per client per window (default 30)
	SearchWindow time.Duration // Search rate limit window (default 1m)

	Debug bool // Log at debug level
}

func (c *SiteConfig) setDefaults() {
	if c.Name == "" {
		c.Name = "Tech Insights"
	}
	if c.URL == "" {
		c.URL = "http://localhost:3000"
	}
	c.URL = strings.TrimSuffix(c.URL, "/")
	if c.Description == "" {
		c.Description = "Exploring the latest in web development, programming, and technology. Sharing insights, tutorials, and thoughts on building better software."
	}
	if c.Author == "" {
		c.Author = "Alex Chen"
	}
	if c.AuthorBio == "" {
		c.AuthorBio = "Passionate about building scalable web applications and sharing knowledge with the developer community. Always exploring new technologies and best practices in software development."
	}
	if c.Addr == "" {
		c.Addr = ":3000"
	}
	if c.RenderMode == "" {
		c.RenderMode = string(markdown.ModeStructured)
	}
	if c.SearchLimit <= 0 {
		c.SearchLimit = 30
	}
	if c.SearchWindow <= 0 {
		c.SearchWindow = time.Minute
	}
}

// Site returns the subset of the config that templates read.
func (c SiteConfig) Site() views.SiteConfig {
	return views.SiteConfig{
		Name:        c.Name,
		URL:         c.URL,
		Description: c.Description,
		Author:      c.Author,
		AuthorBio:   c.AuthorBio,
	}
}

// Option configures additional App behavior.
type Option func(*App)

// WithSource replaces the post registry, e.g. with one built by tests.
func WithSource(src content.Source) Option {
	return func(a *App) {
		a.Source = src
	}
}

// WithCustomRoutes registers additional routes on the Echo instance.
// The callback runs after the built-in routes are registered.
func WithCustomRoutes(fn func(*App)) Option {
	return func(a *App) {
		a.customRoutes = append(a.customRoutes, fn)
	}
}
