// Package content holds the blog's post registry: one ordered collection of
// posts, a slug index derived from it, and the tag aggregation used by the
// listing page.
package content

import "slices"

// PostRecord is one blog post: display metadata plus its markdown body.
type PostRecord struct {
	Slug     string
	Title    string
	Date     string // YYYY-MM-DD, parsed only for display
	ReadTime string
	Tags     []string
	Author   string
	Excerpt  string
	Content  string

	// ListingOnly posts appear in the listing but have no detail page.
	ListingOnly bool
}

// Summary is the listing-page view of a post. It never carries the body.
type Summary struct {
	Slug     string
	Title    string
	Date     string
	ReadTime string
	Tags     []string
	Author   string
	Excerpt  string
	Link     string
}

// Summary returns the listing view of p.
func (p PostRecord) Summary() Summary {
	return Summary{
		Slug:     p.Slug,
		Title:    p.Title,
		Date:     p.Date,
		ReadTime: p.ReadTime,
		Tags:     slices.Clone(p.Tags),
		Author:   p.Author,
		Excerpt:  p.Excerpt,
		Link:     "/blog/" + p.Slug + "/",
	}
}

func (p PostRecord) clone() PostRecord {
	p.Tags = slices.Clone(p.Tags)
	return p
}
