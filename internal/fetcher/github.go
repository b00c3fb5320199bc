package fetcher

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/mgsolli/hjemmebyggern/internal/models"
)

// languageColors er GitHubs visningsfarger for de vanligste språkene.
var languageColors = map[string]string{
	"JavaScript": "#f1e05a",
	"TypeScript": "#3178c6",
	"Python":     "#3572A5",
	"Java":       "#b07219",
	"Go":         "#00ADD8",
	"Rust":       "#dea584",
	"Ruby":       "#701516",
	"PHP":        "#4F5D95",
	"C":          "#555555",
	"C++":        "#f34b7d",
	"C#":         "#239120",
	"Swift":      "#F05138",
	"Kotlin":     "#A97BFF",
	"Scala":      "#c22d40",
	"Shell":      "#89e051",
	"HTML":       "#e34c26",
	"CSS":        "#563d7c",
	"SCSS":       "#c6538c",
	"Vue":        "#41b883",
	"Svelte":     "#ff3e00",
	"Dart":       "#00B4AB",
	"Lua":        "#000080",
	"Perl":       "#39457E",
	"R":          "#198CE7",
	"Haskell":    "#5e5086",
	"Elixir":     "#6e4a7e",
	"Clojure":    "#db5855",
	"Makefile":   "#427819",
	"Dockerfile": "#384d54",
	"Vim":        "#199f4b",
	"Emacs":      "#c065db",
	"PowerShell": "#012456",
	"Blade":      "#f7523f",
	"Astro":      "#ff5a03",
}

// DefaultLanguageColor brukes for ukjente eller manglende språk.
const DefaultLanguageColor = "#8b949e"

// GetLanguageColor slår opp visningsfargen for et språk.
func GetLanguageColor(language string) string {
	if c, ok := languageColors[language]; ok {
		return c
	}
	return DefaultLanguageColor
}

var githubUserRe = regexp.MustCompile(`github\.com/([^/]+)`)

// ParseGitHubUser plukker brukernavnet ut av en GitHub-profil-URL.
// Tom streng hvis URL-en ikke peker på github.com.
func ParseGitHubUser(url string) string {
	m := githubUserRe.FindStringSubmatch(url)
	if m == nil {
		return ""
	}
	return strings.TrimSpace(m[1])
}

// repoJSON er feltene vi bryr oss om fra users/{user}/repos.
type repoJSON struct {
	Name            string   `json:"name"`
	FullName        string   `json:"full_name"`
	Description     string   `json:"description"`
	HTMLURL         string   `json:"html_url"`
	StargazersCount int      `json:"stargazers_count"`
	ForksCount      int      `json:"forks_count"`
	Language        string   `json:"language"`
	Fork            bool     `json:"fork"`
	Private         bool     `json:"private"`
	Archived        bool     `json:"archived"`
	Topics          []string `json:"topics"`
	Homepage        string   `json:"homepage"`
}

// FetchUserRepos henter brukerens offentlige repositories, filtrerer bort
// forks, private og navn som treffer et eksklusjonsmønster, sorterer
// synkende på stjerner og kutter til count. Bare den første siden på
// inntil 100 repos vurderes; for brukere med flere enn 100 repos kan
// stjernetoppen derfor mangle eldre repos.
func FetchUserRepos(ctx context.Context, username string, count int, excludePatterns []string, token string) ([]models.Repo, error) {
	slog.Info("Henter offentlige repos", "bruker", username)

	url := fmt.Sprintf("%s/users/%s/repos?sort=updated&per_page=100", GitHubAPIBase, username)
	var repos []repoJSON
	if err := doGitHubGet(ctx, url, token, &repos); err != nil {
		return nil, err
	}

	var kept []repoJSON
	for _, r := range repos {
		if r.Fork || r.Private {
			continue
		}
		if matchesAnyPattern(r.Name, excludePatterns) {
			continue
		}
		kept = append(kept, r)
	}

	sort.SliceStable(kept, func(i, j int) bool {
		return kept[i].StargazersCount > kept[j].StargazersCount
	})
	if count <= 0 {
		count = 4
	}
	if len(kept) > count {
		kept = kept[:count]
	}

	result := make([]models.Repo, 0, len(kept))
	for _, r := range kept {
		desc := r.Description
		if desc == "" {
			desc = "Ingen beskrivelse"
		}
		result = append(result, models.Repo{
			Name:          r.Name,
			FullName:      r.FullName,
			Description:   desc,
			URL:           r.HTMLURL,
			Stars:         r.StargazersCount,
			Forks:         r.ForksCount,
			Language:      r.Language,
			LanguageColor: GetLanguageColor(r.Language),
			IsArchived:    r.Archived,
			Topics:        r.Topics,
			Homepage:      r.Homepage,
		})
	}

	slog.Info("Hentet repos", "antall", len(result))
	return result, nil
}

// matchesAnyPattern prøver hvert mønster som case-insensitivt regulært
// uttrykk; et ugyldig mønster faller tilbake til eksakt, case-insensitiv
// sammenligning i stedet for å feile.
func matchesAnyPattern(name string, patterns []string) bool {
	for _, p := range patterns {
		if p == "" {
			continue
		}
		re, err := regexp.Compile("(?i)" + p)
		if err != nil {
			if strings.EqualFold(name, p) {
				return true
			}
			continue
		}
		if re.MatchString(name) {
			return true
		}
	}
	return false
}

// GetUserRepos pakker FetchUserRepos inn i degrader-ved-feil-policyen.
func GetUserRepos(ctx context.Context, username string, count int, excludePatterns []string, token string) models.ReposResult {
	repos, err := FetchUserRepos(ctx, username, count, excludePatterns, token)
	if err != nil {
		slog.Warn("Repo-henting feilet", "bruker", username, "error", err)
		return models.ReposResult{Status: models.StatusEmpty}
	}
	if len(repos) == 0 {
		return models.ReposResult{Status: models.StatusEmpty}
	}
	return models.ReposResult{Status: models.StatusData, Repos: repos}
}

// FormatNumber skriver 1280 som "1.3k" og 2000 som "2k"; under tusen
// returneres tallet som det er.
func FormatNumber(n int) string {
	if n >= 1000 {
		s := strconv.FormatFloat(float64(n)/1000, 'f', 1, 64)
		s = strings.TrimSuffix(s, ".0")
		return s + "k"
	}
	return strconv.Itoa(n)
}
