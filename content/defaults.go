package content

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
)

//go:embed posts/*.md
var bodies embed.FS

// defaultPosts is the built-in corpus in listing order. Bodies live in
// posts/<slug>.md; a post without a file is ListingOnly.
var defaultPosts = []PostRecord{
	{
		Slug:     "getting-started-with-nextjs-15",
		Title:    "Getting Started with Next.js 15: What's New and Exciting",
		Date:     "2024-01-15",
		ReadTime: "8 min read",
		Tags:     []string{"Next.js", "React", "Web Development"},
		Author:   "Alex Chen",
		Excerpt:  "Explore the latest features in Next.js 15, including improved performance, new APIs, and enhanced developer experience.",
	},
	{
		Slug:     "mastering-typescript-advanced-patterns",
		Title:    "Mastering TypeScript: Advanced Patterns for Better Code",
		Date:     "2024-01-10",
		ReadTime: "12 min read",
		Tags:     []string{"TypeScript", "JavaScript", "Programming"},
		Author:   "Alex Chen",
		Excerpt:  "Deep dive into advanced TypeScript patterns including conditional types, mapped types, and template literal types.",
	},
	{
		// No body yet: listed on the home page, 404 on its detail page.
		Slug:     "building-scalable-apis-with-nodejs",
		Title:    "Building Scalable APIs with Node.js and Express",
		Date:     "2024-01-05",
		ReadTime: "10 min read",
		Tags:     []string{"Node.js", "API", "Backend"},
		Author:   "Alex Chen",
		Excerpt:  "Learn best practices for building robust, scalable APIs using Node.js, Express, and modern architectural patterns.",
	},
}

// Default returns the registry of built-in posts.
func Default() (*Registry, error) {
	posts := make([]PostRecord, 0, len(defaultPosts))
	for _, p := range defaultPosts {
		p = p.clone()
		b, err := fs.ReadFile(bodies, "posts/"+p.Slug+".md")
		switch {
		case err == nil:
			p.Content = string(b)
		case errors.Is(err, fs.ErrNotExist):
			p.ListingOnly = true
		default:
			return nil, fmt.Errorf("content: read body for %q: %w", p.Slug, err)
		}
		posts = append(posts, p)
	}
	return NewRegistry(posts)
}

// MustDefault is like Default but panics on error.
func MustDefault() *Registry {
	r, err := Default()
	if err != nil {
		panic(err)
	}
	return r
}
