package fetcher

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/mgsolli/hjemmebyggern/internal/models"
)

// maxRedirects er taket på antall redirect-hopp for RSS-hentingen.
const maxRedirects = 5

// DefaultRSSTimeout gjelder hele RSS-operasjonen, inkludert redirects.
const DefaultRSSTimeout = 10 * time.Second

var (
	itemRe  = regexp.MustCompile(`(?is)<item>(.*?)</item>`)
	titleRe = regexp.MustCompile(`(?is)<title><!\[CDATA\[(.*?)\]\]></title>|<title>(.*?)</title>`)
	linkRe  = regexp.MustCompile(`(?is)<link>(.*?)</link>`)
	descRe  = regexp.MustCompile(`(?is)<description><!\[CDATA\[(.*?)\]\]></description>|<description>(.*?)</description>`)
	dateRe  = regexp.MustCompile(`(?is)<pubDate>(.*?)</pubDate>`)
	tagRe   = regexp.MustCompile(`<[^>]+>`)
	wsRe    = regexp.MustCompile(`\s+`)
)

// FetchRSS henter rått XML-innhold fra en feed. Enkle redirects følges
// via Location-headeren, men aldri mer enn maxRedirects hopp. Ikke-200
// etter redirects er en feil.
func FetchRSS(ctx context.Context, url string, timeout time.Duration) (string, error) {
	if timeout <= 0 {
		timeout = DefaultRSSTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	for hop := 0; hop <= maxRedirects; hop++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return "", err
		}
		req.Header.Set("User-Agent", userAgent)

		resp, err := HttpClient.Do(req)
		if err != nil {
			return "", err
		}

		if resp.StatusCode >= 300 && resp.StatusCode < 400 {
			loc := resp.Header.Get("Location")
			if cerr := resp.Body.Close(); cerr != nil {
				slog.Warn("Klarte ikke å lukke body", "error", cerr)
			}
			if loc == "" {
				return "", fmt.Errorf("redirect uten Location-header fra %s", url)
			}
			url = loc
			continue
		}

		if resp.StatusCode != http.StatusOK {
			if cerr := resp.Body.Close(); cerr != nil {
				slog.Warn("Klarte ikke å lukke body", "error", cerr)
			}
			return "", fmt.Errorf("RSS-henting feilet med status %d", resp.StatusCode)
		}

		data, err := io.ReadAll(resp.Body)
		if cerr := resp.Body.Close(); cerr != nil {
			slog.Warn("Klarte ikke å lukke body", "error", cerr)
		}
		if err != nil {
			return "", err
		}
		return string(data), nil
	}

	return "", fmt.Errorf("for mange redirects (over %d) fra RSS-feeden", maxRedirects)
}

// ParseRSS skanner XML-en for <item>-blokker i dokumentrekkefølge og
// plukker tittel, lenke, beskrivelse og dato per blokk. Blokker uten både
// tittel og lenke hoppes over uten å telle mot count.
func ParseRSS(xml string, count int) []models.Article {
	if count <= 0 {
		count = 5
	}

	var articles []models.Article
	for _, m := range itemRe.FindAllStringSubmatch(xml, -1) {
		if len(articles) >= count {
			break
		}
		item := m[1]

		title := firstGroup(titleRe.FindStringSubmatch(item))
		link := strings.TrimSpace(matchGroup(linkRe.FindStringSubmatch(item), 1))
		if title == "" || link == "" {
			continue
		}

		desc := firstGroup(descRe.FindStringSubmatch(item))
		desc = tagRe.ReplaceAllString(desc, "")
		desc = strings.TrimSpace(wsRe.ReplaceAllString(desc, " "))

		pubDate := strings.TrimSpace(matchGroup(dateRe.FindStringSubmatch(item), 1))

		articles = append(articles, models.Article{
			Title:       title,
			Link:        link,
			Description: desc,
			PubDate:     NormalizeDate(pubDate),
		})
	}
	return articles
}

// firstGroup returnerer CDATA-gruppen hvis den traff, ellers den vanlige.
func firstGroup(m []string) string {
	if m == nil {
		return ""
	}
	if m[1] != "" {
		return strings.TrimSpace(m[1])
	}
	return strings.TrimSpace(m[2])
}

func matchGroup(m []string, i int) string {
	if m == nil || len(m) <= i {
		return ""
	}
	return m[i]
}

// rssDateLayouts er formatene vi godtar i pubDate, vanligst først.
var rssDateLayouts = []string{
	time.RFC1123Z,
	time.RFC1123,
	"Mon, 2 Jan 2006 15:04:05 -0700",
	"Mon, 2 Jan 2006 15:04:05 MST",
	time.RFC822Z,
	time.RFC822,
	time.RFC3339,
	"2006-01-02",
}

// NormalizeDate formaterer en RSS-dato som YYYY-MM-DD. Datoer som ikke
// lar seg tolke blir tom streng.
func NormalizeDate(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	for _, layout := range rssDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("2006-01-02")
		}
	}
	return ""
}

// TruncateDescription kutter en beskrivelse til maks maxLen tegn (runer),
// med ellipse når noe ble kuttet.
func TruncateDescription(s string, maxLen int) string {
	if maxLen <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	return strings.TrimSpace(string(runes[:maxLen])) + "..."
}

// GetRSSArticles henter og tolker en feed. Enhver feil logges og gir et
// tomt resultat; RSS-feil skal aldri stoppe et bygg.
func GetRSSArticles(ctx context.Context, url string, count, maxDescLen int) models.ArticlesResult {
	slog.Info("Henter RSS", "url", url)

	xml, err := FetchRSS(ctx, url, DefaultRSSTimeout)
	if err != nil {
		slog.Warn("RSS-henting feilet", "url", url, "error", err)
		return models.ArticlesResult{Status: models.StatusEmpty}
	}

	articles := ParseRSS(xml, count)
	for i := range articles {
		articles[i].Description = TruncateDescription(articles[i].Description, maxDescLen)
	}

	if len(articles) == 0 {
		slog.Warn("Feeden ga ingen gyldige artikler", "url", url)
		return models.ArticlesResult{Status: models.StatusEmpty}
	}

	slog.Info("Tolket RSS-artikler", "antall", len(articles))
	return models.ArticlesResult{Status: models.StatusData, Articles: articles}
}
