package techinsights

import (
	"encoding/xml"
	"io"

	"github.com/eringen/techinsights/views"
)

type sitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc     string `xml:"loc"`
	LastMod string `xml:"lastmod,omitempty"`
}

// writeSitemap lists the home page and every slug that resolves to a post.
func (a *App) writeSitemap(w io.Writer) error {
	base := a.Config.URL
	urls := []sitemapURL{
		{Loc: views.BuildURL(base)},
	}
	for _, slug := range a.Source.AllSlugs() {
		u := sitemapURL{Loc: views.BuildURL(base, "blog", slug)}
		if p, err := a.Source.GetBySlug(slug); err == nil {
			u.LastMod = p.Date
		}
		urls = append(urls, u)
	}
	sitemap := sitemapURLSet{
		XMLNS: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs:  urls,
	}
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	return xml.NewEncoder(w).Encode(sitemap)
}
