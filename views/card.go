package views

import (
	"context"

	"github.com/a-h/templ"

	"github.com/eringen/techinsights/content"
)

// BlogCard is one entry of the listing grid. The whole card links to the
// post, whether or not the post has a detail page.
func BlogCard(post content.Summary) templ.Component {
	return component(func(ctx context.Context, h *htmlWriter) {
		h.raw(`<a href="`)
		h.text(post.Link)
		h.raw(`" class="blog-card">`)
		h.raw(`<article class="group bg-white dark:bg-slate-800 rounded-2xl p-6 shadow-lg border border-slate-200 dark:border-slate-700 hover:shadow-xl transition-all duration-300 h-full">`)
		h.raw(`<div class="flex flex-col h-full"><div class="flex flex-wrap gap-2 mb-4">`)
		for _, tag := range post.Tags {
			h.child(ctx, Badge(tag, "secondary"))
		}
		h.raw(`</div><h2 class="text-xl font-bold mb-3 line-clamp-2">`)
		h.text(post.Title)
		h.raw(`</h2><p class="text-slate-600 dark:text-slate-400 mb-4 flex-1 line-clamp-3">`)
		h.text(post.Excerpt)
		h.raw(`</p><div class="flex items-center justify-between text-sm text-slate-500 dark:text-slate-400 pt-4 border-t border-slate-200 dark:border-slate-700">`)
		h.raw(`<div class="flex items-center gap-4"><time datetime="`)
		h.text(post.Date)
		h.raw(`">`)
		h.text(FormatDateShort(post.Date))
		h.raw(`</time><span>`)
		h.text(post.ReadTime)
		h.raw(`</span></div><span>`)
		h.text(post.Author)
		h.raw(`</span></div></div></article></a>`)
	})
}
