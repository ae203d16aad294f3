package views

import (
	"encoding/json"
	"net/url"
	"path"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/eringen/techinsights/content"
)

// BuildURL joins path segments onto a base URL, ensuring a trailing slash.
func BuildURL(base string, pathSegments ...string) string {
	u, err := url.Parse(base)
	if err != nil {
		return base
	}
	u.Path = path.Join(u.Path, path.Join(pathSegments...))
	if len(pathSegments) > 0 && !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}
	return u.String()
}

// TagClass returns CSS classes for a tag badge. Badges are decorative.
func TagClass(variant string) string {
	base := "inline-flex items-center rounded-full px-2.5 py-0.5 text-xs font-semibold"
	switch variant {
	case "outline":
		return base + " border border-slate-300 dark:border-slate-600 text-slate-700 dark:text-slate-300"
	default:
		return base + " bg-slate-100 dark:bg-slate-800 text-slate-900 dark:text-slate-100"
	}
}

// SearchBarClass returns the classes of the search box in its collapsed or
// expanded state. The server always renders collapsed; the stylesheet
// switches to the expanded look on focus.
func SearchBarClass(expanded bool) string {
	base := "search-box flex items-center bg-white dark:bg-slate-800 rounded-full border-2 border-slate-200 dark:border-slate-700 transition-all duration-300"
	if expanded {
		return base + " shadow-lg"
	}
	return base + " shadow-md"
}

const isoDate = "2006-01-02"

// FormatDateShort renders an ISO date as "Jan 15, 2024". Unparseable input
// is returned unchanged.
func FormatDateShort(date string) string {
	t, err := time.Parse(isoDate, date)
	if err != nil {
		return date
	}
	return t.Format("Jan 2, 2006")
}

// FormatDateLong renders an ISO date as "January 15, 2024". Unparseable
// input is returned unchanged.
func FormatDateLong(date string) string {
	t, err := time.Parse(isoDate, date)
	if err != nil {
		return date
	}
	return t.Format("January 2, 2006")
}

// Initials returns up to two uppercase initials of name ("Alex Chen" -> "AC").
func Initials(name string) string {
	var out []rune
	for _, f := range strings.Fields(name) {
		r, _ := utf8.DecodeRuneInString(f)
		out = append(out, unicode.ToUpper(r))
		if len(out) == 2 {
			break
		}
	}
	return string(out)
}

// WebsiteJsonLD produces a Schema.org WebSite JSON-LD block using cfg values.
func WebsiteJsonLD(cfg SiteConfig) string {
	data := map[string]interface{}{
		"@context": "https://schema.org",
		"@type":    "WebSite",
		"name":     cfg.Name,
		"url":      BuildURL(cfg.URL),
	}
	if cfg.Description != "" {
		data["description"] = cfg.Description
	}
	if cfg.Author != "" {
		data["author"] = map[string]string{
			"@type": "Person",
			"name":  cfg.Author,
		}
	}
	b, err := json.Marshal(data)
	if err != nil {
		return "{}"
	}
	return string(b)
}

// BlogPostingJsonLD produces a Schema.org BlogPosting JSON-LD block for a post.
func BlogPostingJsonLD(cfg SiteConfig, post content.PostRecord) string {
	postURL := BuildURL(cfg.URL, "blog", post.Slug)
	data := map[string]interface{}{
		"@context":      "https://schema.org",
		"@type":         "BlogPosting",
		"headline":      post.Title,
		"description":   post.Excerpt,
		"datePublished": post.Date,
		"url":           postURL,
		"publisher": map[string]string{
			"@type": "Organization",
			"name":  cfg.Name,
		},
		"mainEntityOfPage": map[string]string{
			"@type": "WebPage",
			"@id":   postURL,
		},
	}
	if author := post.Author; author != "" {
		data["author"] = map[string]string{
			"@type": "Person",
			"name":  author,
		}
	}
	if len(post.Tags) > 0 {
		data["keywords"] = strings.Join(post.Tags, ", ")
	}
	b, err := json.Marshal(data)
	if err != nil {
		return "{}"
	}
	return string(b)
}
