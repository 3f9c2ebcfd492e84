package mention

import (
	"regexp"
	"slices"
)

// mentionToken matches "@name" when the '@' starts the text or follows a
// non-word character, so email addresses are skipped.
var mentionToken = regexp.MustCompile(`(?:^|[^\p{L}\p{N}_])@([\p{L}\p{N}_.\-]+)`)

// Extract returns the candidates mentioned in text, deduplicated, in order
// of first appearance. Tokens that are not candidates are ignored.
func Extract(text string, candidates []string) []string {
	matches := mentionToken.FindAllStringSubmatch(text, -1)
	if len(matches) == 0 {
		return nil
	}
	var mentioned []string
	for _, match := range matches {
		name := trimTrailingPunct(match[1])
		if !slices.Contains(candidates, name) || slices.Contains(mentioned, name) {
			continue
		}
		mentioned = append(mentioned, name)
	}
	return mentioned
}

func trimTrailingPunct(name string) string {
	for len(name) > 0 {
		last := name[len(name)-1]
		if last != '.' && last != '-' {
			break
		}
		name = name[:len(name)-1]
	}
	return name
}
