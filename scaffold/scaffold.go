// Package scaffold writes new markdown posts for the techinsights CLI.
package scaffold

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"text/template"

	"gopkg.in/yaml.v3"

	"github.com/eringen/techinsights/content"
)

// Templates contains all scaffold template files.
// Files use Go text/template syntax and have a .tmpl suffix.
//
//go:embed all:templates
var Templates embed.FS

var postTmpl = template.Must(template.ParseFS(Templates, "templates/post.md.tmpl"))

// postData holds the template variables passed to the post template.
type postData struct {
	FrontMatter string
	Title       string
	Excerpt     string
}

// RenderPost writes a post file with fm as its YAML front matter.
func RenderPost(w io.Writer, fm content.FrontMatter) error {
	head, err := yaml.Marshal(fm)
	if err != nil {
		return fmt.Errorf("marshal front matter: %w", err)
	}
	excerpt := fm.Excerpt
	if excerpt == "" {
		excerpt = "A short summary of the post."
	}
	return postTmpl.Execute(w, postData{
		FrontMatter: string(head),
		Title:       fm.Title,
		Excerpt:     excerpt,
	})
}

// WritePost creates dir/<slug>.md. It refuses to overwrite an existing file.
func WritePost(dir string, fm content.FrontMatter) (string, error) {
	if fm.Slug == "" {
		return "", errors.New("scaffold: post needs a slug")
	}
	var buf bytes.Buffer
	if err := RenderPost(&buf, fm); err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	path := filepath.Join(dir, fm.Slug+".md")
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if errors.Is(err, os.ErrExist) {
			return "", fmt.Errorf("post %q already exists", path)
		}
		return "", err
	}
	if _, err := f.Write(buf.Bytes()); err != nil {
		f.Close()
		return "", err
	}
	return path, f.Close()
}
