package fetcher

import (
	"testing"
	"time"

	"github.com/mgsolli/hjemmebyggern/internal/models"
)

func TestCountToLevel(t *testing.T) {
	cases := []struct {
		count int
		want  int
	}{
		{0, 0},
		{1, 1},
		{2, 1},
		{3, 2},
		{4, 2},
		{5, 3},
		{6, 3},
		{7, 4},
		{100, 4},
	}

	for _, c := range cases {
		if got := CountToLevel(c.count); got != c.want {
			t.Errorf("CountToLevel(%d) = %d, forventet %d", c.count, got, c.want)
		}
	}
}

func TestGenerateRandomContributions(t *testing.T) {
	for i := 0; i < 50; i++ {
		c := GenerateRandomContributions()

		if len(c.Levels) != models.ContributionDays {
			t.Fatalf("forventet %d nivåer, fikk %d", models.ContributionDays, len(c.Levels))
		}
		for _, level := range c.Levels {
			if level < 0 || level > 4 {
				t.Fatalf("nivå utenfor [0,4]: %d", level)
			}
		}
		if c.Total < 10 || c.Total > 109 {
			t.Fatalf("total utenfor [10,109]: %d", c.Total)
		}
	}
}

func TestBuildContributionLevels(t *testing.T) {
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	day := func(daysAgo int, hour int) time.Time {
		return now.Truncate(24 * time.Hour).AddDate(0, 0, -daysAgo).Add(time.Duration(hour) * time.Hour)
	}

	var events []eventJSON
	for i := 0; i < 3; i++ {
		events = append(events, eventJSON{CreatedAt: day(0, i)}) // i dag: 3 hendelser
	}
	events = append(events, eventJSON{CreatedAt: day(1, 9)})  // i går: 1
	for i := 0; i < 8; i++ {
		events = append(events, eventJSON{CreatedAt: day(77, i)}) // eldste dag i vinduet: 8
	}
	events = append(events, eventJSON{CreatedAt: day(100, 9)}) // utenfor vinduet
	events = append(events, eventJSON{})                       // uten tidsstempel

	c := BuildContributionLevels(events, now)

	if len(c.Levels) != models.ContributionDays {
		t.Fatalf("forventet %d nivåer, fikk %d", models.ContributionDays, len(c.Levels))
	}
	if got := c.Levels[models.ContributionDays-1]; got != 2 {
		t.Errorf("dagens nivå = %d, forventet 2 (3 hendelser)", got)
	}
	if got := c.Levels[models.ContributionDays-2]; got != 1 {
		t.Errorf("gårsdagens nivå = %d, forventet 1", got)
	}
	if got := c.Levels[0]; got != 4 {
		t.Errorf("eldste dag i vinduet = %d, forventet 4 (8 hendelser)", got)
	}
	if c.Total != 12 {
		t.Errorf("total = %d, forventet 12 (hendelser utenfor vinduet teller ikke)", c.Total)
	}
}

func TestBuildContributionLevelsEmpty(t *testing.T) {
	c := BuildContributionLevels(nil, time.Now())
	if len(c.Levels) != models.ContributionDays {
		t.Fatalf("forventet %d nivåer, fikk %d", models.ContributionDays, len(c.Levels))
	}
	for i, level := range c.Levels {
		if level != 0 {
			t.Fatalf("nivå %d skal være 0 uten hendelser, var %d", i, level)
		}
	}
	if c.Total != 0 {
		t.Errorf("total = %d, forventet 0", c.Total)
	}
}
