package extract

import (
	"regexp"
	"strings"
)

var isoDateRegex = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}`)

// NormalizePostedDate keeps posted dates in a predictable shape:
// ISO timestamps are cut down to YYYY-MM-DD, platform-native tokens
// ("24h", "vor 3 Tagen") pass through verbatim, absence becomes the
// platform's sentinel.
func NormalizePostedDate(raw, sentinel string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return sentinel
	}
	if isoDateRegex.MatchString(raw) {
		return raw[:10]
	}
	return raw
}
