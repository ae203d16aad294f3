package views

import (
	"context"

	"github.com/a-h/templ"

	"github.com/eringen/techinsights/content"
)

// Post is the detail page. body is the rendered post content, produced by
// whichever markdown mode the site runs with.
func Post(cfg SiteConfig, post content.PostRecord, body templ.Component) templ.Component {
	meta := PageMeta{
		Title:       post.Title,
		Description: post.Excerpt,
		URL:         BuildURL(cfg.URL, "blog", post.Slug),
		OGType:      "article",
		JSONLD:      BlogPostingJsonLD(cfg, post),
	}
	return Layout(cfg, meta, postBody(cfg, post, body))
}

func postBody(cfg SiteConfig, post content.PostRecord, body templ.Component) templ.Component {
	return component(func(ctx context.Context, h *htmlWriter) {
		h.raw(`<div class="container mx-auto px-4 py-8">`)
		h.raw(`<a href="/" class="back-link inline-flex items-center gap-2 text-slate-600 dark:text-slate-400 hover:text-slate-900 dark:hover:text-slate-100 mb-8 transition-colors">&larr; Back to Blog</a>`)

		h.raw(`<header class="max-w-4xl mx-auto mb-12"><div class="flex flex-wrap gap-2 mb-6">`)
		for _, tag := range post.Tags {
			h.child(ctx, Badge(tag, "secondary"))
		}
		h.raw(`</div><h1 class="text-4xl md:text-5xl font-bold mb-6">`)
		h.text(post.Title)
		h.raw(`</h1><p class="text-xl text-slate-600 dark:text-slate-400 mb-8">`)
		h.text(post.Excerpt)
		h.raw(`</p>`)
		h.raw(`<div class="flex items-center justify-between flex-wrap gap-4 pb-8 border-b border-slate-200 dark:border-slate-700">`)
		h.raw(`<div class="post-meta flex items-center gap-6 text-slate-500 dark:text-slate-400"><span>`)
		h.text(post.Author)
		h.raw(`</span><time datetime="`)
		h.text(post.Date)
		h.raw(`">`)
		h.text(FormatDateLong(post.Date))
		h.raw(`</time><span>`)
		h.text(post.ReadTime)
		h.raw(`</span></div>`)
		h.raw(`<button type="button" data-inert class="flex items-center gap-2 px-4 py-2 bg-slate-100 dark:bg-slate-800 rounded-lg">Share</button>`)
		h.raw(`</div></header>`)

		h.raw(`<article class="max-w-4xl mx-auto"><div class="prose prose-lg prose-slate dark:prose-invert max-w-none">`)
		h.child(ctx, body)
		h.raw(`</div></article>`)

		h.child(ctx, authorCard(cfg, post.Author))
		h.raw(`</div>`)
	})
}

func authorCard(cfg SiteConfig, author string) templ.Component {
	return component(func(ctx context.Context, h *htmlWriter) {
		h.raw(`<footer class="max-w-4xl mx-auto mt-16 pt-8 border-t border-slate-200 dark:border-slate-700">`)
		h.raw(`<div class="author-card bg-white dark:bg-slate-800 rounded-2xl p-8 shadow-lg border border-slate-200 dark:border-slate-700">`)
		h.raw(`<div class="flex items-center gap-4 mb-4"><div class="avatar w-16 h-16 rounded-full flex items-center justify-center text-white font-bold text-xl">`)
		h.text(Initials(author))
		h.raw(`</div><div><h3 class="text-xl font-bold">`)
		h.text(author)
		h.raw(`</h3><p class="text-slate-600 dark:text-slate-400">Full-stack Developer &amp; Tech Enthusiast</p></div></div>`)
		if cfg.AuthorBio != "" {
			h.raw(`<p class="text-slate-600 dark:text-slate-400">`)
			h.text(cfg.AuthorBio)
			h.raw(`</p>`)
		}
		h.raw(`</div></footer>`)
	})
}
