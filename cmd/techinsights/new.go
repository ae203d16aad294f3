package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/eringen/techinsights/content"
	"github.com/eringen/techinsights/scaffold"
)

var (
	newDir  string
	newTags []string
)

var newCmd = &cobra.Command{
	Use:   "new <title>",
	Short: "Create a new markdown post",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		title := strings.TrimSpace(strings.Join(args, " "))
		slug := content.Slugify(title)
		if slug == "" {
			return fmt.Errorf("cannot derive a slug from %q", title)
		}

		dir := newDir
		if dir == "" {
			dir = siteConfig.ContentDir
		}
		if dir == "" {
			dir = "content"
		}

		path, err := scaffold.WritePost(dir, content.FrontMatter{
			Slug:     slug,
			Title:    title,
			Date:     time.Now().Format("2006-01-02"),
			ReadTime: "5 min read",
			Tags:     newTags,
			Author:   siteConfig.Author,
		})
		if err != nil {
			return err
		}
		fmt.Printf("Created %s\n", path)
		return nil
	},
}

func init() {
	newCmd.Flags().StringVar(&newDir, "dir", "", "directory to write the post to (default: content dir or ./content)")
	newCmd.Flags().StringSliceVar(&newTags, "tag", nil, "tag for the post (repeatable)")
}
