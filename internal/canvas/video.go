package canvas

import (
	"regexp"
	"strings"
)

var (
	loomShareRe   = regexp.MustCompile(`loom\.com/share/([a-zA-Z0-9]+)`)
	youtubeLinkRe = regexp.MustCompile(`(?:youtube\.com/watch\?v=|youtu\.be/)([a-zA-Z0-9_-]+)`)
)

// NormalizeVideoURL rewrites a raw Loom or YouTube share link into its
// embeddable form. Already-embed URLs pass through unchanged; anything
// unrecognized yields no embed ("", false) without erroring.
func NormalizeVideoURL(raw string) (string, bool) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", false
	}
	if m := loomShareRe.FindStringSubmatch(trimmed); m != nil {
		return "https://www.loom.com/embed/" + m[1], true
	}
	if m := youtubeLinkRe.FindStringSubmatch(trimmed); m != nil {
		return "https://www.youtube.com/embed/" + m[1], true
	}
	if strings.Contains(trimmed, "/embed/") {
		return trimmed, true
	}
	return "", false
}
