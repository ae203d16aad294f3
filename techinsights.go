// Package techinsights is a server-rendered blog built with Go, Echo, and templ.
// It serves a post listing, per-post pages, a sitemap and an RSS feed from an
// immutable post registry, and can export the whole site as static files.
package techinsights

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"

	"github.com/eringen/techinsights/content"
	"github.com/eringen/techinsights/markdown"
)

// App is the central application. It wires together the post source, the
// markdown renderer, handlers, middleware, and templates.
type App struct {
	Config   SiteConfig
	Echo     *echo.Echo
	Source   content.Source
	Renderer *markdown.Renderer

	searchLimiter *RateLimiter
	customRoutes  []func(*App)
}

// New builds an App: it loads the posts, then registers middleware and routes.
// The returned App is ready for Start, Export or direct use as an http.Handler.
func New(cfg SiteConfig, opts ...Option) (*App, error) {
	cfg.setDefaults()

	mode, err := markdown.ParseMode(cfg.RenderMode)
	if err != nil {
		return nil, fmt.Errorf("techinsights: %w", err)
	}

	a := &App{
		Config:   cfg,
		Echo:     echo.New(),
		Renderer: markdown.New(mode),
	}
	a.Echo.HideBanner = true
	if cfg.Debug {
		a.Echo.Logger.SetLevel(log.DEBUG)
	} else {
		a.Echo.Logger.SetLevel(log.INFO)
	}

	for _, opt := range opts {
		opt(a)
	}

	if a.Source == nil {
		src, err := loadSource(cfg.ContentDir)
		if err != nil {
			return nil, fmt.Errorf("techinsights: load posts: %w", err)
		}
		a.Source = src
	}

	a.searchLimiter = NewRateLimiter(cfg.SearchLimit, cfg.SearchWindow)

	a.setupMiddleware()
	a.setupRoutes()
	for _, fn := range a.customRoutes {
		fn(a)
	}
	return a, nil
}

func loadSource(dir string) (content.Source, error) {
	if dir == "" {
		return content.Default()
	}
	return content.LoadDir(dir)
}

// Start listens on Config.Addr until the server is shut down.
func (a *App) Start() error {
	a.Echo.Logger.Infof("serving %d posts on %s", len(a.Source.ListAll()), a.Config.Addr)
	if err := a.Echo.Start(a.Config.Addr); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// ServeHTTP makes App usable as an http.Handler.
func (a *App) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	a.Echo.ServeHTTP(w, r)
}

func (a *App) setupRoutes() {
	e := a.Echo

	e.GET("/public/site.css", a.handleStylesheet)
	e.GET("/robots.txt", a.handleRobots)
	e.GET("/sitemap.xml", a.handleSitemap)
	e.GET("/feed.xml", a.handleFeed)

	e.GET("/blog", handleBlogRedirect)
	e.GET("/", a.handleHome)
	e.GET("/blog/:slug/", a.handlePost)
	e.GET("/search/", a.handleSearch)
}

// Close releases background resources.
func (a *App) Close() error {
	if a.searchLimiter != nil {
		a.searchLimiter.Stop()
	}
	return nil
}
