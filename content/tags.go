package content

// AllTags flattens the tags of posts into a set kept in first-seen order.
// Tags are compared exactly, so "Next.js" and "next.js" stay distinct.
func AllTags(posts []Summary) []string {
	seen := make(map[string]struct{})
	var tags []string
	for _, p := range posts {
		for _, t := range p.Tags {
			if _, ok := seen[t]; ok {
				continue
			}
			seen[t] = struct{}{}
			tags = append(tags, t)
		}
	}
	return tags
}
