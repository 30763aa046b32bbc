package fullfield

import (
	"testing"
)

func TestRecentSeasons_FiltersAndSorts(t *testing.T) {
	seasons := []Season{
		{UUID: "s1", Name: "2019/2020"},
		{UUID: "s2", Name: "2023/2024"},
		{UUID: "s3", Name: "2025/2026"},
		{UUID: "s4", Name: "2024/2025"},
	}

	recent := RecentSeasons(seasons)

	if len(recent) != 3 {
		t.Fatalf("len = %d, want 3", len(recent))
	}
	if recent[0].Name != "2025/2026" || recent[2].Name != "2023/2024" {
		t.Errorf("Not sorted newest first: %+v", recent)
	}
}

func TestRecentSeasons_FallbackToLastFive(t *testing.T) {
	seasons := []Season{
		{Name: "Alpha"}, {Name: "Beta"}, {Name: "Gamma"},
		{Name: "Delta"}, {Name: "Epsilon"}, {Name: "Zeta"}, {Name: "Eta"},
	}

	recent := RecentSeasons(seasons)

	if len(recent) != 5 {
		t.Fatalf("len = %d, want last five", len(recent))
	}
	if recent[0].Name != "Gamma" || recent[4].Name != "Eta" {
		t.Errorf("Fallback slice wrong: %+v", recent)
	}
}

func TestRecentSeasons_Empty(t *testing.T) {
	if got := RecentSeasons(nil); len(got) != 0 {
		t.Errorf("Expected empty, got %+v", got)
	}
}
