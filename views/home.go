package views

import (
	"context"

	"github.com/a-h/templ"

	"github.com/eringen/techinsights/content"
)

// Home is the listing page: hero, search bar, tag row, post grid and the
// newsletter box.
func Home(cfg SiteConfig, posts []content.Summary, tags []string, query string) templ.Component {
	meta := PageMeta{
		Title:       cfg.Name,
		Description: cfg.Description,
		URL:         BuildURL(cfg.URL),
		OGType:      "website",
		JSONLD:      WebsiteJsonLD(cfg),
	}
	return Layout(cfg, meta, homeBody(cfg, posts, tags, query))
}

func homeBody(cfg SiteConfig, posts []content.Summary, tags []string, query string) templ.Component {
	return component(func(ctx context.Context, h *htmlWriter) {
		h.raw(`<div class="container mx-auto px-4 py-8"><div class="text-center mb-12">`)
		h.raw(`<h1 class="text-4xl md:text-6xl font-bold mb-4">`)
		h.text(cfg.Name)
		h.raw(`</h1>`)
		if cfg.Description != "" {
			h.raw(`<p class="text-xl text-slate-600 dark:text-slate-400 max-w-2xl mx-auto mb-8">`)
			h.text(cfg.Description)
			h.raw(`</p>`)
		}
		h.child(ctx, SearchBar(query))
		h.raw(`</div>`)

		h.raw(`<div class="tag-row flex flex-wrap gap-2 justify-center mb-12">`)
		h.child(ctx, Badge("All Posts", "secondary"))
		for _, tag := range tags {
			h.child(ctx, Badge(tag, "outline"))
		}
		h.raw(`</div>`)

		h.raw(`<div class="post-grid grid gap-8 md:grid-cols-2 lg:grid-cols-3 max-w-7xl mx-auto">`)
		for _, p := range posts {
			h.child(ctx, BlogCard(p))
		}
		h.raw(`</div>`)

		h.child(ctx, newsletter())
		h.raw(`</div>`)
	})
}

// newsletter is decorative: the form has no action and the button does not
// submit.
func newsletter() templ.Component {
	return component(func(ctx context.Context, h *htmlWriter) {
		h.raw(`<div class="mt-16 text-center"><div class="bg-white dark:bg-slate-800 rounded-2xl p-8 shadow-lg border border-slate-200 dark:border-slate-700 max-w-2xl mx-auto">`)
		h.raw(`<h2 class="text-2xl font-bold mb-4">Stay Updated</h2>`)
		h.raw(`<p class="text-slate-600 dark:text-slate-400 mb-6">Get the latest posts delivered directly to your inbox. No spam, just quality content.</p>`)
		h.raw(`<form data-inert class="flex gap-2 max-w-md mx-auto" onsubmit="return false">`)
		h.raw(`<input type="email" placeholder="Enter your email" aria-label="Email address" class="flex-1 px-4 py-2 border border-slate-300 dark:border-slate-600 rounded-lg">`)
		h.raw(`<button type="button" class="px-6 py-2 bg-slate-900 dark:bg-slate-100 text-white dark:text-slate-900 rounded-lg">Subscribe</button>`)
		h.raw(`</form></div></div>`)
	})
}
