package content

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/adrg/frontmatter"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// FrontMatter is the header block of a post file.
type FrontMatter struct {
	Slug     string   `yaml:"slug" toml:"slug" json:"slug"`
	Title    string   `yaml:"title" toml:"title" json:"title"`
	Date     string   `yaml:"date" toml:"date" json:"date"`
	ReadTime string   `yaml:"readTime" toml:"readTime" json:"readTime"`
	Tags     []string `yaml:"tags" toml:"tags" json:"tags"`
	Author   string   `yaml:"author" toml:"author" json:"author"`
	Excerpt  string   `yaml:"excerpt" toml:"excerpt" json:"excerpt"`
	Weight   int      `yaml:"weight" toml:"weight" json:"weight"`

	ListingOnly bool `yaml:"listingOnly,omitempty" toml:"listingOnly" json:"listingOnly,omitempty"`
}

type loadedPost struct {
	file   string
	weight int
	post   PostRecord
}

// LoadDir builds a Registry from the *.md files directly inside dir.
// A file without a slug gets one derived from its name.
// Posts are ordered by front matter weight, then file name. A post with
// listingOnly set is listed but not resolvable.
func LoadDir(dir string) (*Registry, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("content: read dir %s: %w", dir, err)
	}

	var loaded []loadedPost
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(strings.ToLower(e.Name()), ".md") {
			continue
		}
		path := filepath.Join(dir, e.Name())
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("content: read %s: %w", path, err)
		}
		lp, err := parsePostFile(e.Name(), raw)
		if err != nil {
			return nil, fmt.Errorf("content: parse %s: %w", path, err)
		}
		loaded = append(loaded, lp)
	}

	sort.SliceStable(loaded, func(i, j int) bool {
		if loaded[i].weight != loaded[j].weight {
			return loaded[i].weight < loaded[j].weight
		}
		return loaded[i].file < loaded[j].file
	})

	posts := make([]PostRecord, 0, len(loaded))
	for _, lp := range loaded {
		posts = append(posts, lp.post)
	}
	return NewRegistry(posts)
}

func parsePostFile(name string, raw []byte) (loadedPost, error) {
	var fm FrontMatter
	body, err := frontmatter.Parse(bytes.NewReader(raw), &fm)
	if err != nil {
		return loadedPost{}, err
	}

	base := strings.TrimSuffix(name, filepath.Ext(name))
	if fm.Slug == "" {
		fm.Slug = Slugify(base)
	}
	if fm.Title == "" {
		fm.Title = titleFromName(base)
	}

	return loadedPost{
		file:   name,
		weight: fm.Weight,
		post: PostRecord{
			Slug:     fm.Slug,
			Title:    fm.Title,
			Date:     fm.Date,
			ReadTime: fm.ReadTime,
			Tags:     fm.Tags,
			Author:   fm.Author,
			Excerpt:  fm.Excerpt,
			Content:  strings.TrimSpace(string(body)),

			ListingOnly: fm.ListingOnly,
		},
	}, nil
}

func titleFromName(base string) string {
	s := strings.NewReplacer("-", " ", "_", " ").Replace(base)
	return cases.Title(language.English).String(s)
}
