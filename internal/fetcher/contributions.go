package fetcher

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/mgsolli/hjemmebyggern/internal/models"
)

// eventJSON er det eneste feltet vi trenger fra events-API-et.
type eventJSON struct {
	CreatedAt time.Time `json:"created_at"`
}

// FetchUserContributions bygger bidragsgrafen for de siste 78 dagene.
// Uten brukernavn, med useRealData av, eller ved enhver feil genereres
// syntetiske data i stedet; grafen skal aldri stå tom.
func FetchUserContributions(ctx context.Context, username string, useRealData bool, token string) models.ContributionsResult {
	if !useRealData {
		slog.Info("Bruker syntetiske bidragsdata (ekte data er slått av)")
		return models.ContributionsResult{Status: models.StatusData, Contributions: GenerateRandomContributions()}
	}
	if username == "" {
		slog.Warn("Ingen GitHub-bruker konfigurert, bruker syntetiske bidragsdata")
		return models.ContributionsResult{Status: models.StatusData, Contributions: GenerateRandomContributions()}
	}

	slog.Info("Henter bidragsdata", "bruker", username)

	events, err := fetchPublicEvents(ctx, username, token)
	if err != nil {
		slog.Warn("Bidragshenting feilet, bruker syntetiske data", "bruker", username, "error", err)
		return models.ContributionsResult{Status: models.StatusData, Contributions: GenerateRandomContributions()}
	}

	c := BuildContributionLevels(events, time.Now().UTC())
	slog.Info("Tolket bidragsdata", "hendelser", c.Total)
	return models.ContributionsResult{Status: models.StatusData, Contributions: c}
}

func fetchPublicEvents(ctx context.Context, username, token string) ([]eventJSON, error) {
	url := fmt.Sprintf("%s/users/%s/events/public?per_page=100", GitHubAPIBase, username)
	var events []eventJSON
	if err := doGitHubGet(ctx, url, token, &events); err != nil {
		return nil, err
	}
	return events, nil
}

// BuildContributionLevels bøtter hendelsene per kalenderdag (UTC) og
// mapper antallet til et nivå per dag for de siste 78 dagene, eldste
// først. Total er summen av rå hendelser over dager med minst én.
func BuildContributionLevels(events []eventJSON, now time.Time) models.Contributions {
	today := now.UTC().Truncate(24 * time.Hour)

	daily := map[string]int{}
	for _, ev := range events {
		if ev.CreatedAt.IsZero() {
			continue
		}
		daily[ev.CreatedAt.UTC().Format("2006-01-02")]++
	}

	levels := make([]int, 0, models.ContributionDays)
	total := 0
	for i := models.ContributionDays - 1; i >= 0; i-- {
		day := today.AddDate(0, 0, -i).Format("2006-01-02")
		count := daily[day]
		levels = append(levels, CountToLevel(count))
		if count > 0 {
			total += count
		}
	}

	return models.Contributions{Levels: levels, Total: total}
}

// CountToLevel mapper et hendelsantall til et heatmap-nivå 0–4.
func CountToLevel(count int) int {
	switch {
	case count == 0:
		return 0
	case count <= 2:
		return 1
	case count <= 4:
		return 2
	case count <= 6:
		return 3
	default:
		return 4
	}
}

// GenerateRandomContributions lager et syntetisk øyeblikksbilde: 70 %
// sjanse per dag for et tilfeldig nivå 0–4, og en total i [10,109].
func GenerateRandomContributions() models.Contributions {
	levels := make([]int, models.ContributionDays)
	for i := range levels {
		if rand.Float64() > 0.3 {
			levels[i] = rand.Intn(5)
		}
	}
	return models.Contributions{
		Levels: levels,
		Total:  rand.Intn(100) + 10,
	}
}
