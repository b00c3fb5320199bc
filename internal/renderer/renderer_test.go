package renderer_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mgsolli/hjemmebyggern/internal/config"
	"github.com/mgsolli/hjemmebyggern/internal/models"
	"github.com/mgsolli/hjemmebyggern/internal/renderer"
)

func TestEscapeHTML(t *testing.T) {
	assert.Equal(t, "&lt;script&gt;", renderer.EscapeHTML("<script>"))
	assert.Equal(t, "a &amp; b", renderer.EscapeHTML("a & b"))
	assert.Equal(t, "&quot;sitat&#39;", renderer.EscapeHTML(`"sitat'`))
	assert.Equal(t, "vanlig tekst", renderer.EscapeHTML("vanlig tekst"))
}

func TestSubstitute(t *testing.T) {
	out := renderer.Substitute("Hei {{NAME}}! {{NAME}} og {{UKJENT}}.", map[string]string{
		"NAME": "Marte",
	})
	assert.Equal(t, "Hei Marte! Marte og {{UKJENT}}.", out)
}

func TestSubstituteDoesNotRescanValues(t *testing.T) {
	out := renderer.Substitute("{{A}}", map[string]string{
		"A": "{{B}}",
		"B": "skal ikke inn",
	})
	assert.Equal(t, "{{B}}", out)
}

func enabledLink(name, url string) config.Link {
	return config.Link{
		Name:        name,
		Description: "beskrivelse",
		URL:         url,
		Icon:        "fa-solid fa-link",
		Brand:       "brand",
		Color:       config.DefaultLinkColor,
	}
}

func TestLinksSectionEmpty(t *testing.T) {
	assert.Equal(t, "", renderer.LinksSection(nil))

	disabled := enabledLink("Av", "https://example.com")
	no := false
	disabled.Enabled = &no
	assert.Equal(t, "", renderer.LinksSection([]config.Link{disabled}))
}

func TestLinksSectionRendersOnlyEnabled(t *testing.T) {
	no := false
	github := enabledLink("GitHub", "https://github.com/x")
	github.External = true
	hidden := enabledLink("Skjult", "https://example.com/skjult")
	hidden.Enabled = &no

	out := renderer.LinksSection([]config.Link{github, hidden})

	assert.Equal(t, 1, strings.Count(out, "<a "))
	assert.Contains(t, out, `href="https://github.com/x"`)
	assert.Contains(t, out, `target="_blank" rel="noopener"`)
	assert.NotContains(t, out, "Skjult")
}

func TestNotice(t *testing.T) {
	assert.Equal(t, "", renderer.Notice(config.Notice{Enabled: false, Text: "skjult"}))

	out := renderer.Notice(config.Notice{
		Enabled: true,
		Type:    "warning",
		Icon:    "fa-solid fa-shield-halved",
		Text:    "Vær *varsom* der ute.",
	})
	assert.Contains(t, out, "notice-warning")
	assert.Contains(t, out, "<em>varsom</em>")
}

func TestRSSSectionBranches(t *testing.T) {
	disabled := renderer.RSSSection(models.ArticlesResult{Status: models.StatusDisabled})
	assert.Equal(t, "", disabled)

	empty := renderer.RSSSection(models.ArticlesResult{Status: models.StatusEmpty})
	assert.Contains(t, empty, "rss-empty")

	data := renderer.RSSSection(models.ArticlesResult{
		Status: models.StatusData,
		Articles: []models.Article{
			{Title: "En artikkel", Link: "https://example.com/a", PubDate: "2026-08-30"},
		},
	})
	assert.Contains(t, data, "En artikkel")
	assert.Contains(t, data, "2026-08-30")
	assert.NotContains(t, data, "rss-empty")
}

func TestRSSSectionEscapesRemoteText(t *testing.T) {
	out := renderer.RSSSection(models.ArticlesResult{
		Status: models.StatusData,
		Articles: []models.Article{
			{Title: "<script>alert(1)</script>", Link: "https://example.com/xss"},
		},
	})
	assert.Contains(t, out, "&lt;script&gt;")
	assert.NotContains(t, out, "<script>")
}

func TestProgressWidth(t *testing.T) {
	assert.Equal(t, 100, renderer.ProgressWidth(50, 50))
	assert.Equal(t, 50, renderer.ProgressWidth(25, 50))
	assert.Equal(t, 10, renderer.ProgressWidth(1, 1000))
	assert.Equal(t, 10, renderer.ProgressWidth(0, 0))
	assert.Equal(t, 100, renderer.ProgressWidth(200, 50))
}

func TestProjectsSection(t *testing.T) {
	res := models.ReposResult{
		Status: models.StatusData,
		Repos: []models.Repo{
			{Name: "stor", URL: "https://github.com/x/stor", Stars: 1280, Language: "Go", LanguageColor: "#00ADD8", Description: "Hovedprosjektet"},
			{Name: "liten", URL: "https://github.com/x/liten", Stars: 64, Description: "Et lite et", IsArchived: true},
		},
	}
	out := renderer.ProjectsSection(res)

	assert.Contains(t, out, "project-card-main")
	assert.Contains(t, out, "project-card-mini")
	assert.Contains(t, out, "1.3k")
	assert.Contains(t, out, "Arkivert")
	assert.Contains(t, out, `style="width: 100%"`)

	empty := renderer.ProjectsSection(models.ReposResult{Status: models.StatusEmpty})
	assert.Contains(t, empty, "projects-empty")

	assert.Equal(t, "", renderer.ProjectsSection(models.ReposResult{Status: models.StatusDisabled}))
}

func TestContributionGraphAlways78Cells(t *testing.T) {
	out := renderer.ContributionGraph(models.Contributions{Levels: []int{1, 2, 3}, Total: 6})
	assert.Equal(t, models.ContributionDays, strings.Count(out, `class="contribution-cell"`))
	assert.Contains(t, out, `data-level="3"`)

	short := renderer.ContributionGraph(models.Contributions{})
	assert.Equal(t, models.ContributionDays, strings.Count(short, `class="contribution-cell"`))
}

func TestContributionGraphClampsLevels(t *testing.T) {
	levels := make([]int, models.ContributionDays)
	levels[0] = 99
	levels[1] = -4
	out := renderer.ContributionGraph(models.Contributions{Levels: levels})
	assert.NotContains(t, out, `data-level="99"`)
	assert.NotContains(t, out, `data-level="-4"`)
	assert.Contains(t, out, `data-level="4"`)
}

func TestSkeletonsMirrorContent(t *testing.T) {
	no := false
	links := []config.Link{
		enabledLink("En", "https://example.com/1"),
		enabledLink("To", "https://example.com/2"),
	}
	off := enabledLink("Av", "https://example.com/av")
	off.Enabled = &no
	links = append(links, off)

	out := renderer.SkeletonLinks(links)
	assert.Equal(t, 2, strings.Count(out, "skeleton-link\""))

	rss := renderer.SkeletonRSS(config.RSS{Enabled: true, Count: 5})
	assert.Equal(t, 5, strings.Count(rss, "skeleton-rss-item"))
	assert.Equal(t, "", renderer.SkeletonRSS(config.RSS{Enabled: false, Count: 5}))

	projects := renderer.SkeletonProjects(config.Projects{Enabled: true, Count: 4})
	assert.Equal(t, 1, strings.Count(projects, "skeleton-project-main"))
	assert.Equal(t, 3, strings.Count(projects, "skeleton-project-mini"))
}

func TestNavFragments(t *testing.T) {
	nav := config.Nav{
		Enabled: true,
		Menus: []config.NavMenu{
			{
				Name: "Prosjekter",
				Icon: "fa-solid fa-code",
				Items: []config.NavItem{
					{Name: "hjemmebyggern", URL: "https://github.com/mgsolli/hjemmebyggern", External: true},
					{Name: "Om", URL: "/om"},
				},
			},
		},
	}

	desktop := renderer.NavDesktop(nav)
	assert.Contains(t, desktop, "nav-desktop")
	assert.Contains(t, desktop, "Prosjekter")
	assert.Equal(t, 2, strings.Count(desktop, `class="nav-menu-item"`))

	mobile := renderer.NavMobile(nav)
	assert.Contains(t, mobile, "nav-mobile-panel")
	assert.Equal(t, 2, strings.Count(mobile, "nav-mobile-item"))

	assert.Equal(t, "", renderer.NavDesktop(config.Nav{Enabled: false, Menus: nav.Menus}))
	assert.Equal(t, "", renderer.NavMobile(config.Nav{Enabled: true}))
}

func TestAnalytics(t *testing.T) {
	assert.Equal(t, "", renderer.Analytics(config.Analytics{}))

	out := renderer.Analytics(config.Analytics{
		GoogleAnalytics:  config.AnalyticsID{Enabled: true, ID: "G-TEST123"},
		MicrosoftClarity: config.AnalyticsID{Enabled: true, ID: "clarity42"},
		Umami:            `<script defer src="https://umami.example.com/script.js"></script>`,
		CustomScripts:    []string{"<script>custom()</script>"},
	})
	assert.Contains(t, out, "G-TEST123")
	assert.Contains(t, out, "clarity42")
	assert.Contains(t, out, "umami.example.com")
	assert.Contains(t, out, "custom()")

	// ID uten enabled-flagg skal ikke med.
	idOnly := renderer.Analytics(config.Analytics{
		GoogleAnalytics: config.AnalyticsID{Enabled: false, ID: "G-SKJULT"},
	})
	assert.NotContains(t, idOnly, "G-SKJULT")
}

func TestThemeCSS(t *testing.T) {
	out := renderer.ThemeCSS(config.Default().Theme)
	assert.Contains(t, out, "--accent: #00ff9f;")
	assert.Contains(t, out, "--bg-primary: #0a0a0a;")
}

func TestAnimationConfig(t *testing.T) {
	out := renderer.AnimationConfig(config.Default())
	assert.Contains(t, out, "window.HOMEPAGE_CONFIG")
	assert.Contains(t, out, `"typingSpeed":60`)
	assert.Contains(t, out, "Be water, my friend.")
}

func TestMarkdown(t *testing.T) {
	assert.Contains(t, renderer.Markdown("# Hei"), "<h1>Hei</h1>")
	assert.Equal(t, "en <em>kursiv</em> tekst", renderer.MarkdownInline("en *kursiv* tekst"))
}
