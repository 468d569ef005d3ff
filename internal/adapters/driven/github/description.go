package github

import "strings"

// ParsedDescription is a gist description split into its conventional
// parts. Gists have no native folders or tags; the community convention
// encodes both in the description: "[folder/sub] Title #tag1 #tag2".
type ParsedDescription struct {
	// Folder is the bracketed prefix without brackets, empty when absent.
	Folder string

	// Title is the description with folder prefix and tag suffixes removed.
	Title string

	// Tags are the trailing #-prefixed words, without the marker.
	Tags []string
}

// ParseDescription extracts folder, title, and tags from a raw
// description. Malformed input degrades gracefully: a missing closing
// bracket leaves the text in the title, a bare "#" is ignored.
func ParseDescription(desc string) ParsedDescription {
	out := ParsedDescription{}
	rest := strings.TrimSpace(desc)

	if strings.HasPrefix(rest, "[") {
		if end := strings.Index(rest, "]"); end > 0 {
			out.Folder = strings.TrimSpace(rest[1:end])
			rest = strings.TrimSpace(rest[end+1:])
		}
	}

	words := strings.Fields(rest)
	title := make([]string, 0, len(words))
	for _, w := range words {
		if strings.HasPrefix(w, "#") && len(w) > 1 {
			out.Tags = append(out.Tags, strings.TrimPrefix(w, "#"))
			continue
		}
		title = append(title, w)
	}
	out.Title = strings.Join(title, " ")

	return out
}
