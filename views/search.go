package views

import (
	"context"

	"github.com/a-h/templ"
)

// SearchBar renders the search form. Submitting it only records the query;
// the listing is never filtered. The clear control appears once a query has
// been submitted.
func SearchBar(query string) templ.Component {
	return component(func(ctx context.Context, h *htmlWriter) {
		h.raw(`<div class="relative max-w-md mx-auto"><form action="/search/" method="get" role="search" class="relative">`)
		h.raw(`<div class="`)
		h.text(SearchBarClass(false))
		h.raw(`"><span class="search-icon w-5 h-5 text-slate-400 ml-4" aria-hidden="true"></span>`)
		h.raw(`<input type="text" name="q" value="`)
		h.text(query)
		h.raw(`" placeholder="Search articles..." aria-label="Search articles" class="flex-1 px-4 py-3 bg-transparent focus:outline-none text-slate-900 dark:text-slate-100 placeholder-slate-500">`)
		if query != "" {
			h.raw(`<a href="/" aria-label="Clear search" class="search-clear p-2 text-slate-400 hover:text-slate-600 dark:hover:text-slate-300">&times;</a>`)
		}
		h.raw(`</div></form></div>`)
	})
}
