package techinsights

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/a-h/templ"
	"github.com/andybalholm/brotli"

	"github.com/eringen/techinsights/views"
)

// Export writes the whole site as static files under dir: the listing, one
// page per resolvable slug, the not-found page, sitemap, feed, robots.txt and
// the stylesheet. With precompress set, every file also gets a .br sibling.
// It returns the number of pages written, not counting .br files.
func (a *App) Export(ctx context.Context, dir string, precompress bool) (int, error) {
	ex := exporter{dir: dir, precompress: precompress}

	if err := ex.component(ctx, "index.html", a.homePage("")); err != nil {
		return ex.written, err
	}
	for _, slug := range a.Source.AllSlugs() {
		if err := ctx.Err(); err != nil {
			return ex.written, err
		}
		page, err := a.postPage(slug)
		if err != nil {
			return ex.written, fmt.Errorf("export %s: %w", slug, err)
		}
		if err := ex.component(ctx, filepath.Join("blog", slug, "index.html"), page); err != nil {
			return ex.written, err
		}
	}
	if err := ex.component(ctx, "404.html", views.NotFound(a.Config.Site())); err != nil {
		return ex.written, err
	}
	if err := ex.writeFunc("sitemap.xml", a.writeSitemap); err != nil {
		return ex.written, err
	}
	if err := ex.writeFunc("feed.xml", a.writeRSS); err != nil {
		return ex.written, err
	}
	if err := ex.write("robots.txt", []byte(a.robotsTxt())); err != nil {
		return ex.written, err
	}
	css, err := Stylesheet()
	if err != nil {
		return ex.written, fmt.Errorf("export stylesheet: %w", err)
	}
	if err := ex.write(filepath.Join("public", "site.css"), css); err != nil {
		return ex.written, err
	}
	return ex.written, nil
}

type exporter struct {
	dir         string
	precompress bool
	written     int
}

func (ex *exporter) component(ctx context.Context, name string, c templ.Component) error {
	return ex.writeFunc(name, func(w io.Writer) error {
		return c.Render(ctx, w)
	})
}

func (ex *exporter) writeFunc(name string, fn func(io.Writer) error) error {
	var buf bytes.Buffer
	if err := fn(&buf); err != nil {
		return fmt.Errorf("export %s: %w", name, err)
	}
	return ex.write(name, buf.Bytes())
}

func (ex *exporter) write(name string, data []byte) error {
	path := filepath.Join(ex.dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("export %s: %w", name, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("export %s: %w", name, err)
	}
	ex.written++
	if !ex.precompress {
		return nil
	}
	if err := writeBrotli(path+".br", data); err != nil {
		return fmt.Errorf("export %s: %w", name, err)
	}
	return nil
}

func writeBrotli(path string, data []byte) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	bw := brotli.NewWriterLevel(f, brotli.BestCompression)
	if _, err := bw.Write(data); err != nil {
		bw.Close()
		f.Close()
		return err
	}
	if err := bw.Close(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
