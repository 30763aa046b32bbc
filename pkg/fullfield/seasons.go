package fullfield

import (
	"sort"
	"strings"
)

// recentSeasonYears marks the seasons the scouting staff currently cares
// about. Season names look like "2025/2026" or "Stagione 2024-25".
var recentSeasonYears = []string{"2023", "2024", "2025", "2026"}

// RecentSeasons filters to seasons mentioning a recent year, newest first.
// When none match (an upstream naming change), it falls back to the last
// five seasons in upstream order rather than returning nothing.
func RecentSeasons(seasons []Season) []Season {
	recent := make([]Season, 0, len(seasons))
	for _, s := range seasons {
		for _, year := range recentSeasonYears {
			if strings.Contains(s.Name, year) {
				recent = append(recent, s)
				break
			}
		}
	}

	if len(recent) == 0 {
		if len(seasons) > 5 {
			return seasons[len(seasons)-5:]
		}
		return seasons
	}

	sort.Slice(recent, func(i, j int) bool {
		return recent[i].Name > recent[j].Name
	})
	return recent
}
