// Package classify summarises the make-up of a theme: where its founders come from
// and which sector it belongs to.
package classify

import (
	"fmt"
	"strings"

	"github.com/feral-file/founder-scout/internal/domain"
	"github.com/feral-file/founder-scout/internal/heuristics"
)

// FounderOrigin counts, per origin category, how many bios mention any of its keywords
// and renders "N/total <label>" fragments in table order.
func FounderOrigin(tables *heuristics.Tables, bios []string) string {
	total := len(bios)
	var parts []string
	for _, origin := range tables.Origins {
		n := 0
		for _, bio := range bios {
			if heuristics.AnyHit(bio, origin.Keywords) {
				n++
			}
		}
		if n > 0 {
			parts = append(parts, fmt.Sprintf("%d/%d %s", n, total, origin.Label))
		}
	}
	if len(parts) == 0 {
		return domain.FALLBACK_FOUNDER_ORIGIN
	}
	return strings.Join(parts, ", ")
}
