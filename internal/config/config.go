// Package config leser sidekonfigurasjonen for hjemmesiden fra en
// YAML-fil. Lasting er aldri fatal: en manglende eller ødelagt fil gir
// standardkonfigurasjonen, og en delvis utfylt seksjon beholder egne
// verdier og får resten fra standardene. En halvredigert konfigurasjon
// skal fortsatt gi en gyldig hjemmeside.
package config

import (
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"
)

type SEO struct {
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	Keywords    []string `yaml:"keywords"`
	OG          OG       `yaml:"og"`
}

type OG struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Image       string `yaml:"image"`
}

type Profile struct {
	Name    string  `yaml:"name"`
	Avatar  string  `yaml:"avatar"`
	Tagline Tagline `yaml:"tagline"`
}

type Tagline struct {
	Prefix    string `yaml:"prefix"`
	Text      string `yaml:"text"`
	Highlight string `yaml:"highlight"`
}

type Terminal struct {
	Title string `yaml:"title" json:"title"`
}

// Link er én oppføring i lenkelisten. Oppføringer uten name, description,
// url, icon eller brand forkastes i sin helhet ved lasting.
type Link struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	URL         string `yaml:"url"`
	Icon        string `yaml:"icon"`
	Brand       string `yaml:"brand"`
	External    bool   `yaml:"external"`
	Color       string `yaml:"color"`
	Enabled     *bool  `yaml:"enabled"`
}

// IsEnabled tolker manglende enabled-felt som true.
func (l Link) IsEnabled() bool {
	return l.Enabled == nil || *l.Enabled
}

type Footer struct {
	Text string     `yaml:"text"`
	Link FooterLink `yaml:"link"`
}

type FooterLink struct {
	Text string `yaml:"text"`
	URL  string `yaml:"url"`
}

type Notice struct {
	Enabled bool   `yaml:"enabled"`
	Type    string `yaml:"type"` // warning | info | success
	Icon    string `yaml:"icon"`
	Text    string `yaml:"text"` // kan inneholde markdown
}

type About struct {
	Enabled bool   `yaml:"enabled"`
	Text    string `yaml:"text"` // markdown
}

type RSS struct {
	Enabled              bool   `yaml:"enabled"`
	URL                  string `yaml:"url"`
	Count                int    `yaml:"count"`
	MaxDescriptionLength int    `yaml:"maxDescriptionLength"`
}

type Projects struct {
	Enabled         bool     `yaml:"enabled"`
	GithubURL       string   `yaml:"githubUrl"`
	Count           int      `yaml:"count"`
	ExcludePatterns []string `yaml:"excludePatterns"`
}

type Contribution struct {
	UseRealData bool   `yaml:"useRealData"`
	GithubURL   string `yaml:"githubUrl"`
}

type Nav struct {
	Enabled bool      `yaml:"enabled"`
	Menus   []NavMenu `yaml:"menus"`
}

type NavMenu struct {
	Name  string    `yaml:"name"`
	Icon  string    `yaml:"icon"`
	Items []NavItem `yaml:"items"`
}

type NavItem struct {
	Name     string `yaml:"name"`
	URL      string `yaml:"url"`
	External bool   `yaml:"external"`
}

type Animation struct {
	FadeInDelay      int `yaml:"fadeInDelay" json:"fadeInDelay"`           // ms
	TypingSpeed      int `yaml:"typingSpeed" json:"typingSpeed"`           // ms per tegn
	QuoteDisplayTime int `yaml:"quoteDisplayTime" json:"quoteDisplayTime"` // ms
	QuoteDeleteSpeed int `yaml:"quoteDeleteSpeed" json:"quoteDeleteSpeed"` // ms per tegn
}

type Theme struct {
	Accent          string `yaml:"accent"`
	AccentSecondary string `yaml:"accentSecondary"`
	BgPrimary       string `yaml:"bgPrimary"`
	BgSecondary     string `yaml:"bgSecondary"`
	TextPrimary     string `yaml:"textPrimary"`
	TextSecondary   string `yaml:"textSecondary"`
	Border          string `yaml:"border"`
}

type Analytics struct {
	GoogleAnalytics  AnalyticsID `yaml:"googleAnalytics"`
	MicrosoftClarity AnalyticsID `yaml:"microsoftClarity"`
	Umami            string      `yaml:"umami"`
	CustomScripts    []string    `yaml:"customScripts"`
}

type AnalyticsID struct {
	Enabled bool   `yaml:"enabled"`
	ID      string `yaml:"id"`
}

type Config struct {
	SEO          SEO          `yaml:"seo"`
	Profile      Profile      `yaml:"profile"`
	Identity     []string     `yaml:"identity"`
	Interests    []string     `yaml:"interests"`
	Terminal     Terminal     `yaml:"terminal"`
	Quotes       []string     `yaml:"quotes"`
	Links        []Link       `yaml:"links"`
	Footer       Footer       `yaml:"footer"`
	Notice       Notice       `yaml:"notice"`
	About        About        `yaml:"about"`
	RSS          RSS          `yaml:"rss"`
	Projects     Projects     `yaml:"projects"`
	Contribution Contribution `yaml:"contribution"`
	Nav          Nav          `yaml:"nav"`
	Animation    Animation    `yaml:"animation"`
	Theme        Theme        `yaml:"theme"`
	Analytics    Analytics    `yaml:"analytics"`
}

// Parse tolker YAML-innholdet. Ugyldig YAML gir standardkonfigurasjonen,
// gyldig YAML tolkes oppå standardene slik at utelatte nøkler beholder
// standardverdiene sine. Parse feiler aldri.
func Parse(data []byte) Config {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		slog.Warn("Klarte ikke å tolke konfigurasjonen, bruker standardverdier", "error", err)
		return Default()
	}
	return normalize(cfg)
}

// Load leser og tolker konfigurasjonsfilen. En manglende fil gir
// standardkonfigurasjonen.
func Load(path string) Config {
	data, err := os.ReadFile(path)
	if err != nil {
		slog.Warn("Klarte ikke å lese konfigurasjonsfilen, bruker standardverdier", "path", path, "error", err)
		return Default()
	}
	return Parse(data)
}

// normalize rydder opp etter unmarshal: forkaster ufullstendige lenker,
// setter per-element-standarder og reparerer ugyldige tall.
func normalize(cfg Config) Config {
	links := make([]Link, 0, len(cfg.Links))
	for _, l := range cfg.Links {
		if l.Name == "" || l.Description == "" || l.URL == "" || l.Icon == "" || l.Brand == "" {
			slog.Warn("Hopper over ufullstendig lenke", "name", l.Name, "url", l.URL)
			continue
		}
		if l.Color == "" {
			l.Color = DefaultLinkColor
		}
		links = append(links, l)
	}
	if len(links) == 0 {
		links = nil
	}
	cfg.Links = links

	if cfg.RSS.Count <= 0 {
		cfg.RSS.Count = 5
	}
	if cfg.RSS.MaxDescriptionLength <= 0 {
		cfg.RSS.MaxDescriptionLength = 100
	}
	if cfg.Projects.Count <= 0 {
		cfg.Projects.Count = 4
	}

	menus := make([]NavMenu, 0, len(cfg.Nav.Menus))
	for _, m := range cfg.Nav.Menus {
		if m.Name == "" {
			continue
		}
		items := make([]NavItem, 0, len(m.Items))
		for _, it := range m.Items {
			if it.Name == "" || it.URL == "" {
				continue
			}
			items = append(items, it)
		}
		m.Items = items
		menus = append(menus, m)
	}
	if len(menus) == 0 {
		menus = nil
	}
	cfg.Nav.Menus = menus

	return cfg
}
