package renderer

import (
	"fmt"
	"strings"

	"github.com/mgsolli/hjemmebyggern/internal/config"
	"github.com/mgsolli/hjemmebyggern/internal/fetcher"
	"github.com/mgsolli/hjemmebyggern/internal/models"
)

// LinksSection bygger lenkeseksjonen. Deaktiverte lenker utelates helt,
// og uten noen aktive lenker returneres tom streng: ingen container,
// ingen divider.
func LinksSection(links []config.Link) string {
	var enabled []config.Link
	for _, l := range links {
		if l.IsEnabled() {
			enabled = append(enabled, l)
		}
	}
	if len(enabled) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString("<div class=\"divider\"></div>\n")
	b.WriteString("<div class=\"links\" id=\"links\">\n")
	for _, l := range enabled {
		externalAttrs := ""
		if l.External {
			externalAttrs = ` target="_blank" rel="noopener"`
		}
		fmt.Fprintf(&b, `    <a href="%s" class="link" data-brand="%s" style="--brand-color: %s"%s>
        <div class="link-left">
            <div class="link-icon-wrapper">
                <i class="%s"></i>
            </div>
            <div class="link-content">
                <span class="link-text">%s</span>
                <span class="link-description">%s</span>
            </div>
        </div>
        <span class="link-indicator"></span>
    </a>
`, l.URL, l.Brand, l.Color, externalAttrs, l.Icon, l.Name, l.Description)
	}
	b.WriteString("</div>")
	return b.String()
}

// Notice bygger varselbanneret. Teksten er eierens egen og kan bruke
// markdown.
func Notice(n config.Notice) string {
	if !n.Enabled || n.Text == "" {
		return ""
	}
	return fmt.Sprintf(`<div class="notice notice-%s">
    <div class="notice-icon">
        <i class="%s"></i>
    </div>
    <div class="notice-content">
        %s
    </div>
</div>`, n.Type, n.Icon, MarkdownInline(n.Text))
}

// About bygger om-seksjonen fra markdown.
func About(a config.About) string {
	if !a.Enabled || a.Text == "" {
		return ""
	}
	return fmt.Sprintf(`<div class="about" id="about">
%s
</div>`, Markdown(a.Text))
}

// RSSSection bygger artikkellisten. Grenen for "ingen artikler" er
// bevisst forskjellig fra "funksjonen er slått av": av gir ingen seksjon
// i det hele tatt, tomt resultat gir seksjonen med en forklarende rad.
func RSSSection(res models.ArticlesResult) string {
	if res.Status == models.StatusDisabled {
		return ""
	}

	var b strings.Builder
	b.WriteString("<div class=\"rss-section\" id=\"rss\">\n")
	if res.Status == models.StatusEmpty || len(res.Articles) == 0 {
		b.WriteString("    <div class=\"rss-empty\">Ingen artikler å vise akkurat nå.</div>\n")
	} else {
		for _, a := range res.Articles {
			date := ""
			if a.PubDate != "" {
				date = fmt.Sprintf(`<span class="rss-date">%s</span>`, a.PubDate)
			}
			fmt.Fprintf(&b, `    <a href="%s" class="rss-item" target="_blank" rel="noopener">
        <span class="rss-title">%s</span>
        <span class="rss-description">%s</span>
        %s
    </a>
`, EscapeHTML(a.Link), EscapeHTML(a.Title), EscapeHTML(a.Description), date)
		}
	}
	b.WriteString("</div>")
	return b.String()
}

// ProgressWidth er bredden på stjerne-baren i prosent, alltid minst 10
// og aldri over 100.
func ProgressWidth(stars, maxStars int) int {
	if maxStars <= 0 {
		return 10
	}
	w := stars * 100 / maxStars
	if w > 100 {
		w = 100
	}
	if w < 10 {
		w = 10
	}
	return w
}

// ProjectsSection bygger prosjektseksjonen: ett hovedkort for repoet med
// flest stjerner og minikort for resten.
func ProjectsSection(res models.ReposResult) string {
	if res.Status == models.StatusDisabled {
		return ""
	}

	var b strings.Builder
	b.WriteString("<div class=\"projects-section\" id=\"projects\">\n")
	if res.Status == models.StatusEmpty || len(res.Repos) == 0 {
		b.WriteString("    <div class=\"projects-empty\">Fant ingen prosjekter å vise.</div>\n")
	} else {
		maxStars := res.Repos[0].Stars
		for _, r := range res.Repos {
			if r.Stars > maxStars {
				maxStars = r.Stars
			}
		}

		b.WriteString(projectCard(res.Repos[0], maxStars, true))
		if len(res.Repos) > 1 {
			b.WriteString("    <div class=\"projects-grid\">\n")
			for _, r := range res.Repos[1:] {
				b.WriteString(projectCard(r, maxStars, false))
			}
			b.WriteString("    </div>\n")
		}
	}
	b.WriteString("</div>")
	return b.String()
}

func projectCard(r models.Repo, maxStars int, main bool) string {
	class := "project-card project-card-mini"
	if main {
		class = "project-card project-card-main"
	}

	archived := ""
	if r.IsArchived {
		archived = `<span class="project-badge">Arkivert</span>`
	}

	lang := ""
	if r.Language != "" {
		lang = fmt.Sprintf(`<span class="project-language"><span class="language-dot" style="background: %s"></span>%s</span>`,
			r.LanguageColor, EscapeHTML(r.Language))
	}

	return fmt.Sprintf(`    <a href="%s" class="%s" target="_blank" rel="noopener">
        <span class="project-name">%s</span>%s
        <span class="project-description">%s</span>
        <div class="project-meta">
            %s
            <span class="project-stars">&#9733; %s</span>
            <span class="project-forks">&#8916; %s</span>
        </div>
        <div class="project-star-bar" style="width: %d%%"></div>
    </a>
`, EscapeHTML(r.URL), class, EscapeHTML(r.Name), archived, EscapeHTML(r.Description),
		lang, fetcher.FormatNumber(r.Stars), fetcher.FormatNumber(r.Forks), ProgressWidth(r.Stars, maxStars))
}

// ContributionGraph bygger heatmapen: alltid nøyaktig 78 celler med
// nivået som data-attributt, styling skjer i CSS.
func ContributionGraph(c models.Contributions) string {
	var b strings.Builder
	b.WriteString("<div class=\"contribution-graph\" id=\"contributions\">\n    <div class=\"contribution-cells\">\n")
	for i := 0; i < models.ContributionDays; i++ {
		level := 0
		if i < len(c.Levels) {
			level = c.Levels[i]
		}
		if level < 0 {
			level = 0
		}
		if level > 4 {
			level = 4
		}
		fmt.Fprintf(&b, "        <div class=\"contribution-cell\" data-level=\"%d\"></div>\n", level)
	}
	fmt.Fprintf(&b, "    </div>\n    <div class=\"contribution-total\">%d hendelser siste 78 dager</div>\n</div>", c.Total)
	return b.String()
}
