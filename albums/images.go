package albums

import "strings"

// ImageURL resolves a possibly relative photo URL against the media host.
// Absolute URLs pass through; bare paths get the /media/ prefix the
// backend serves photos under.
func ImageURL(mediaBase, raw string) string {
	if raw == "" {
		return ""
	}
	if strings.HasPrefix(raw, "http://") || strings.HasPrefix(raw, "https://") {
		return raw
	}
	base := strings.TrimRight(mediaBase, "/")
	if strings.HasPrefix(raw, "/media/") {
		return base + raw
	}
	return base + "/media/" + strings.TrimLeft(raw, "/")
}
