// core/taxonomy/clean.go
package taxonomy

import (
	"regexp"
	"strings"
)

// Rank markers are a single character followed by two underscores (k__,
// p__, s__, ...). An unclassified rank leaves the marker with nothing
// after it, either at the tail of the lineage or embedded before the next
// semicolon.
var (
	trailingRank = regexp.MustCompile(`.__$`)
	emptyRank    = regexp.MustCompile(`.__;`)
)

// CleanLineage normalizes a raw lineage value from a taxonomy table.
// Applied in fixed order: drop all double quotes, strip one trailing empty
// rank marker, strip every embedded empty rank marker.
func CleanLineage(raw string) string {
	s := strings.ReplaceAll(raw, `"`, "")
	s = trailingRank.ReplaceAllString(s, "")
	return emptyRank.ReplaceAllString(s, "")
}
