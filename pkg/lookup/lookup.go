// Package lookup carries the static scouting-target maps: the internal ids
// of the teams and players the staff tracks, plus keyword hints for matching
// those names against upstream spellings. The ids annotate views only; they
// never drive fetching.
package lookup

import (
	"sort"
	"strings"
)

// TeamIDs maps a tracked team's canonical name to its internal id.
var TeamIDs = map[string]int{
	"Varese U19":        49897,
	"Campus Varese":     56097,
	"Robur e Fides U17": 56119,
	"Varese U17":        56121,
	"Robur e Fides U19": 49893,
}

// PlayerIDs maps a tracked player's canonical name to its internal id.
var PlayerIDs = map[string]int{
	"Ivan Prato":           35989,
	"Tomas Scola":          52890,
	"Marco Bergamin":       15042,
	"Bruno Farias":         12406,
	"Tomás Fernández Lang": 53452,
	"Hassane Coulibaly":    65577,
}

// teamKeywords and playerKeywords hold lowercase fragments that identify a
// tracked name in upstream spellings that differ from the canonical one
// (diacritics, age-group suffixes, sponsor prefixes).
var teamKeywords = map[string][]string{
	"Varese U19":        {"varese"},
	"Campus Varese":     {"campus", "varese"},
	"Robur e Fides U17": {"robur"},
	"Varese U17":        {"varese"},
	"Robur e Fides U19": {"robur"},
}

var playerKeywords = map[string][]string{
	"Ivan Prato":           {"prato"},
	"Tomas Scola":          {"scola"},
	"Marco Bergamin":       {"bergamin"},
	"Bruno Farias":         {"farias"},
	"Tomás Fernández Lang": {"fernandez", "fernández"},
	"Hassane Coulibaly":    {"coulibaly"},
}

// TeamID resolves an upstream team name to a tracked internal id. The second
// return is false when the name matches no tracked team.
func TeamID(name string) (int, bool) {
	return resolve(name, TeamIDs, teamKeywords)
}

// PlayerID resolves an upstream player name to a tracked internal id.
func PlayerID(name string) (int, bool) {
	return resolve(name, PlayerIDs, playerKeywords)
}

// resolve tries substring containment in either direction first, then falls
// back to the keyword hints. The entry whose keywords score the most hits
// wins, so "campus varese" resolves to Campus Varese rather than a plain
// Varese side, and alternative spellings in a keyword list stay optional.
func resolve(name string, ids map[string]int, keywords map[string][]string) (int, bool) {
	needle := strings.ToLower(strings.TrimSpace(name))
	if needle == "" {
		return 0, false
	}

	canonicals := make([]string, 0, len(ids))
	for canonical := range ids {
		canonicals = append(canonicals, canonical)
	}
	sort.Strings(canonicals)

	for _, canonical := range canonicals {
		lc := strings.ToLower(canonical)
		if strings.Contains(needle, lc) || strings.Contains(lc, needle) {
			return ids[canonical], true
		}
	}

	best, bestHits := "", 0
	for _, canonical := range canonicals {
		if hits := countHits(needle, keywords[canonical]); hits > bestHits {
			best, bestHits = canonical, hits
		}
	}
	if best == "" {
		return 0, false
	}
	return ids[best], true
}

func countHits(s string, words []string) int {
	hits := 0
	for _, w := range words {
		if strings.Contains(s, w) {
			hits++
		}
	}
	return hits
}
