package content

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when no resolvable post matches a slug.
var ErrNotFound = errors.New("content: post not found")

// Source is the read-only contract the web layer and the static exporter
// depend on.
type Source interface {
	GetBySlug(slug string) (PostRecord, error)
	ListAll() []Summary
	AllSlugs() []string
}

// Registry is an immutable post collection. The ordered slice is the only
// source of truth; the slug index is built from it once and skips
// ListingOnly posts, so those are listed but not resolvable.
type Registry struct {
	posts []PostRecord
	index map[string]int
}

var _ Source = (*Registry)(nil)

// NewRegistry builds a Registry from posts in the given order. Slugs must be
// unique and URL-safe: lowercase letters and digits in hyphen-separated runs.
func NewRegistry(posts []PostRecord) (*Registry, error) {
	r := &Registry{
		posts: make([]PostRecord, 0, len(posts)),
		index: make(map[string]int, len(posts)),
	}
	seen := make(map[string]struct{}, len(posts))
	for _, p := range posts {
		if p.Slug == "" {
			return nil, fmt.Errorf("content: post %q has an empty slug", p.Title)
		}
		if !ValidSlug(p.Slug) {
			return nil, fmt.Errorf("content: slug %q is not URL-safe", p.Slug)
		}
		if _, dup := seen[p.Slug]; dup {
			return nil, fmt.Errorf("content: duplicate slug %q", p.Slug)
		}
		seen[p.Slug] = struct{}{}
		r.posts = append(r.posts, p.clone())
		if !p.ListingOnly {
			r.index[p.Slug] = len(r.posts) - 1
		}
	}
	return r, nil
}

// GetBySlug returns the post whose slug matches exactly. There is no case
// folding or trimming.
func (r *Registry) GetBySlug(slug string) (PostRecord, error) {
	i, ok := r.index[slug]
	if !ok {
		return PostRecord{}, ErrNotFound
	}
	return r.posts[i].clone(), nil
}

// ListAll returns every post summary in authored order.
func (r *Registry) ListAll() []Summary {
	out := make([]Summary, 0, len(r.posts))
	for _, p := range r.posts {
		out = append(out, p.Summary())
	}
	return out
}

// AllSlugs returns every resolvable slug in authored order. It may be a
// strict subset of the slugs in ListAll.
func (r *Registry) AllSlugs() []string {
	out := make([]string, 0, len(r.index))
	for _, p := range r.posts {
		if _, ok := r.index[p.Slug]; ok {
			out = append(out, p.Slug)
		}
	}
	return out
}
