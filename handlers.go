package techinsights

import (
	"errors"
	"net/http"
	"strings"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"

	"github.com/eringen/techinsights/content"
	"github.com/eringen/techinsights/views"
)

// homePage builds the listing. Tags are recomputed from the listing on
// every call.
func (a *App) homePage(query string) templ.Component {
	posts := a.Source.ListAll()
	return views.Home(a.Config.Site(), posts, content.AllTags(posts), query)
}

// postPage resolves slug and returns its detail page, or content.ErrNotFound.
func (a *App) postPage(slug string) (templ.Component, error) {
	post, err := a.Source.GetBySlug(slug)
	if err != nil {
		return nil, err
	}
	return views.Post(a.Config.Site(), post, a.Renderer.Component(post.Content)), nil
}

func (a *App) handleHome(c echo.Context) error {
	return render(c, a.homePage(""))
}

func (a *App) handlePost(c echo.Context) error {
	page, err := a.postPage(c.Param("slug"))
	if err != nil {
		if errors.Is(err, content.ErrNotFound) {
			return renderStatus(c, http.StatusNotFound, views.NotFound(a.Config.Site()))
		}
		return err
	}
	return render(c, page)
}

func (a *App) handleSearch(c echo.Context) error {
	q := strings.TrimSpace(c.QueryParam("q"))
	if q == "" {
		return c.Redirect(http.StatusSeeOther, "/")
	}
	if !a.searchLimiter.Allow(c.RealIP()) {
		return echo.NewHTTPError(http.StatusTooManyRequests, "Too many searches. Try again later.")
	}
	c.Logger().Infof("search query: %q", q)
	return render(c, a.homePage(q))
}

func (a *App) handleSitemap(c echo.Context) error {
	c.Response().Header().Set(echo.HeaderContentType, "application/xml; charset=utf-8")
	c.Response().WriteHeader(http.StatusOK)
	return a.writeSitemap(c.Response())
}

func (a *App) handleFeed(c echo.Context) error {
	c.Response().Header().Set(echo.HeaderContentType, "application/rss+xml; charset=utf-8")
	c.Response().WriteHeader(http.StatusOK)
	return a.writeRSS(c.Response())
}

func (a *App) handleRobots(c echo.Context) error {
	return c.String(http.StatusOK, a.robotsTxt())
}

func (a *App) handleStylesheet(c echo.Context) error {
	css, err := Stylesheet()
	if err != nil {
		return err
	}
	return c.Blob(http.StatusOK, "text/css; charset=utf-8", css)
}

func handleBlogRedirect(c echo.Context) error {
	return c.Redirect(http.StatusMovedPermanently, "/")
}

func render(c echo.Context, cmp templ.Component) error {
	return renderStatus(c, http.StatusOK, cmp)
}

// renderStatus writes cmp as an HTML response with the given status code.
func renderStatus(c echo.Context, code int, cmp templ.Component) error {
	c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	c.Response().WriteHeader(code)
	return cmp.Render(c.Request().Context(), c.Response().Writer)
}

func (a *App) robotsTxt() string {
	return "User-agent: *\nAllow: /\n\nSitemap: " + a.Config.URL + "/sitemap.xml\n"
}

func (a *App) httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	he, ok := err.(*echo.HTTPError)
	if ok && he.Code == http.StatusNotFound {
		_ = renderStatus(c, http.StatusNotFound, views.NotFound(a.Config.Site()))
		return
	}
	code := http.StatusInternalServerError
	if ok {
		code = he.Code
	}
	if code >= 500 {
		c.Logger().Errorf("server error: %v", err)
		_ = renderStatus(c, code, views.ServerError(a.Config.Site()))
		return
	}
	a.Echo.DefaultHTTPErrorHandler(err, c)
}
