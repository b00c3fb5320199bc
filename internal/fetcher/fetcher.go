// Package fetcher henter eksterne data til hjemmesiden: RSS-artikler,
// offentlige GitHub-repositories og bidragsdata. Alle hentinger er
// engangs-GET uten retry, og alle feil degraderes til et tomt eller
// syntetisk resultat hos kalleren. Ingen feil skal krysse pakkegrensen
// uten å være pakket inn i et resultat.
package fetcher

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"
)

// Injecter en klient (for testbarhet). Klienten følger ikke redirects
// selv; RSS-hentingen følger dem manuelt med et tak på antall hopp.
var HttpClient = &http.Client{
	Timeout: 15 * time.Second,
	CheckRedirect: func(req *http.Request, via []*http.Request) error {
		return http.ErrUseLastResponse
	},
}

// GitHubAPIBase kan pekes mot en testserver.
var GitHubAPIBase = "https://api.github.com"

const userAgent = "hjemmebyggern-build/1.0"

// Feilklasser fra GitHub som skal kunne skilles fra hverandre.
var (
	ErrRateLimited = errors.New("GitHub API: rate limit nådd")
	ErrNotFound    = errors.New("GitHub API: ikke funnet")
)

// doGitHubGet gjør én GET mot GitHub API og dekoder JSON-svaret inn i out.
// Token er valgfri; uten token gjelder den uautentiserte ratebegrensningen.
func doGitHubGet(ctx context.Context, url, token string, out any) error {
	slog.Debug("Henter URL", "url", url)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/vnd.github+json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := HttpClient.Do(req)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			slog.Warn("Klarte ikke å lukke body", "error", cerr)
		}
	}()

	switch {
	case resp.StatusCode == http.StatusForbidden:
		return ErrRateLimited
	case resp.StatusCode == http.StatusNotFound:
		return ErrNotFound
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("GitHub API-feil: status %d – %s", resp.StatusCode, string(body))
	}

	return json.NewDecoder(resp.Body).Decode(out)
}
