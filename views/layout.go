package views

import (
	"context"

	"github.com/a-h/templ"
)

const pageBackground = "min-h-screen bg-gradient-to-br from-slate-50 to-slate-100 dark:from-slate-950 dark:to-slate-900"

// Layout wraps body in the HTML document shell, <head> metadata and the
// site header.
func Layout(cfg SiteConfig, meta PageMeta, body templ.Component) templ.Component {
	return component(func(ctx context.Context, h *htmlWriter) {
		title := cfg.Name
		if meta.Title != "" && meta.Title != cfg.Name {
			title = meta.Title + " | " + cfg.Name
		}
		description := meta.Description
		if description == "" {
			description = cfg.Description
		}
		ogType := meta.OGType
		if ogType == "" {
			ogType = "website"
		}

		h.raw(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8">`)
		h.raw(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
		h.raw(`<title>`)
		h.text(title)
		h.raw(`</title>`)
		if description != "" {
			h.raw(`<meta name="description" content="`)
			h.text(description)
			h.raw(`">`)
			h.raw(`<meta property="og:description" content="`)
			h.text(description)
			h.raw(`">`)
		}
		h.raw(`<meta property="og:title" content="`)
		h.text(title)
		h.raw(`"><meta property="og:type" content="`)
		h.text(ogType)
		h.raw(`"><meta property="og:site_name" content="`)
		h.text(cfg.Name)
		h.raw(`">`)
		if meta.URL != "" {
			h.raw(`<link rel="canonical" href="`)
			h.text(meta.URL)
			h.raw(`"><meta property="og:url" content="`)
			h.text(meta.URL)
			h.raw(`">`)
		}
		h.raw(`<link rel="alternate" type="application/rss+xml" title="`)
		h.text(cfg.Name)
		h.raw(`" href="/feed.xml">`)
		h.raw(`<link rel="stylesheet" href="/public/site.css">`)
		if meta.JSONLD != "" {
			// json.Marshal escapes <, > and &, so the block cannot close the script.
			h.raw(`<script type="application/ld+json">`)
			h.raw(meta.JSONLD)
			h.raw(`</script>`)
		}
		h.raw(`</head><body>`)
		h.child(ctx, Header(cfg))
		h.raw(`<main class="` + pageBackground + `">`)
		h.child(ctx, body)
		h.raw(`</main></body></html>`)
	})
}

type navLink struct {
	label string
	href  string
}

var headerNav = []navLink{
	{"Blog", "/"},
	{"About", "/about"},
	{"Contact", "/contact"},
}

var socialLinks = []navLink{
	{"GitHub", "https://github.com"},
	{"Twitter", "https://twitter.com"},
	{"LinkedIn", "https://linkedin.com"},
}

// Header is the sticky site header: name, navigation and social links.
func Header(cfg SiteConfig) templ.Component {
	return component(func(ctx context.Context, h *htmlWriter) {
		h.raw(`<header class="sticky top-0 z-50 w-full border-b border-slate-200 dark:border-slate-800 bg-white/80 dark:bg-slate-950/80 backdrop-blur-sm">`)
		h.raw(`<div class="container mx-auto px-4 h-16 flex items-center justify-between">`)
		h.raw(`<a href="/" class="font-bold text-xl">`)
		h.text(cfg.Name)
		h.raw(`</a><nav class="hidden md:flex items-center space-x-8">`)
		for _, l := range headerNav {
			h.raw(`<a href="`)
			h.text(l.href)
			h.raw(`" class="text-slate-600 dark:text-slate-400 hover:text-slate-900 dark:hover:text-slate-100 transition-colors">`)
			h.text(l.label)
			h.raw(`</a>`)
		}
		h.raw(`</nav><div class="flex items-center space-x-2">`)
		for _, l := range socialLinks {
			h.raw(`<a href="`)
			h.text(l.href)
			h.raw(`" target="_blank" rel="noopener noreferrer" class="text-slate-600 dark:text-slate-400 hover:text-slate-900 dark:hover:text-slate-100 transition-colors">`)
			h.text(l.label)
			h.raw(`</a>`)
		}
		h.raw(`</div></div></header>`)
	})
}

// Badge renders an inert tag badge: no link, no handler.
func Badge(tag, variant string) templ.Component {
	return component(func(ctx context.Context, h *htmlWriter) {
		h.raw(`<span data-inert class="`)
		h.text(TagClass(variant))
		h.raw(`">`)
		h.text(tag)
		h.raw(`</span>`)
	})
}
