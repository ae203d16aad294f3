package views

import (
	"context"

	"github.com/a-h/templ"
)

// NotFound is rendered for unknown routes and unknown post slugs.
func NotFound(cfg SiteConfig) templ.Component {
	return Layout(cfg, PageMeta{Title: "Page not found"}, errorBody(
		"404",
		"Page not found",
		"The page you are looking for does not exist or has not been written yet.",
	))
}

// ServerError is rendered for 5xx responses.
func ServerError(cfg SiteConfig) templ.Component {
	return Layout(cfg, PageMeta{Title: "Something went wrong"}, errorBody(
		"500",
		"Something went wrong",
		"An unexpected error occurred. Please try again later.",
	))
}

func errorBody(code, title, message string) templ.Component {
	return component(func(ctx context.Context, h *htmlWriter) {
		h.raw(`<div class="container mx-auto px-4 py-24 text-center"><p class="error-code text-6xl font-bold mb-4">`)
		h.text(code)
		h.raw(`</p><h1 class="text-3xl font-semibold mb-4">`)
		h.text(title)
		h.raw(`</h1><p class="text-slate-600 dark:text-slate-400 mb-8">`)
		h.text(message)
		h.raw(`</p><a href="/" class="back-link underline">Back to Blog</a></div>`)
	})
}
