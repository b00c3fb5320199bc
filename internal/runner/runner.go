// Package runner binder sammen byggingen: les konfigurasjon, hent
// eksterne data, render fragmentene, sett dem inn i malen og skriv
// utkatalogen. Bare en manglende mal er fatal; alt annet degraderes.
package runner

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/mgsolli/hjemmebyggern/internal/config"
	"github.com/mgsolli/hjemmebyggern/internal/fetcher"
	"github.com/mgsolli/hjemmebyggern/internal/models"
	"github.com/mgsolli/hjemmebyggern/internal/renderer"
)

// Options er stiene og valgene for én bygging.
type Options struct {
	ConfigPath   string
	TemplatePath string
	AssetDir     string
	OutputDir    string
}

type App struct {
	Opts Options
	deps Deps
}

func NewApp(opts Options, deps Deps) *App {
	return &App{Opts: opts, deps: deps}
}

// Run kjører hele byggsekvensen én gang.
func (a *App) Run(ctx context.Context) error {
	cfg := config.Load(a.Opts.ConfigPath)

	tmpl, err := os.ReadFile(a.Opts.TemplatePath)
	if err != nil {
		return fmt.Errorf("fant ikke malen %s: %w", a.Opts.TemplatePath, err)
	}

	articles, repos, contributions := a.fetchAll(ctx, cfg)

	html := renderer.Substitute(string(tmpl), a.buildValues(cfg, articles, repos, contributions))

	if err := a.writeOutput(cfg, html); err != nil {
		return err
	}

	slog.Info("Bygget hjemmesiden", "output", filepath.Join(a.Opts.OutputDir, "index.html"), "tittel", cfg.SEO.Title)
	return nil
}

// fetchAll henter RSS, repos og bidrag parallelt. Hver henting degraderer
// egne feil, så gruppen bærer bare kansellering.
func (a *App) fetchAll(ctx context.Context, cfg config.Config) (models.ArticlesResult, models.ReposResult, models.ContributionsResult) {
	articles := models.ArticlesResult{Status: models.StatusDisabled}
	repos := models.ReposResult{Status: models.StatusDisabled}
	var contributions models.ContributionsResult

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if !cfg.RSS.Enabled {
			return nil
		}
		if cfg.RSS.URL == "" {
			slog.Warn("RSS-seksjonen er på, men url er tom")
			articles = models.ArticlesResult{Status: models.StatusEmpty}
			return nil
		}
		articles = a.deps.FetchArticles(gctx, cfg.RSS.URL, cfg.RSS.Count, cfg.RSS.MaxDescriptionLength)
		return nil
	})

	g.Go(func() error {
		if !cfg.Projects.Enabled {
			return nil
		}
		username := fetcher.ParseGitHubUser(cfg.Projects.GithubURL)
		if username == "" {
			slog.Warn("Prosjektseksjonen er på, men githubUrl peker ikke på github.com", "url", cfg.Projects.GithubURL)
			repos = models.ReposResult{Status: models.StatusEmpty}
			return nil
		}
		repos = a.deps.FetchRepos(gctx, username, cfg.Projects.Count, cfg.Projects.ExcludePatterns)
		return nil
	})

	g.Go(func() error {
		username := fetcher.ParseGitHubUser(cfg.Contribution.GithubURL)
		contributions = a.deps.FetchContributions(gctx, username, cfg.Contribution.UseRealData)
		return nil
	})

	// Funksjonene returnerer alltid nil.
	_ = g.Wait()

	// Grafen skal alltid rendres komplett, uansett hva hentingen ga.
	if contributions.Status != models.StatusData || len(contributions.Contributions.Levels) != models.ContributionDays {
		contributions = models.ContributionsResult{
			Status:        models.StatusData,
			Contributions: fetcher.GenerateRandomContributions(),
		}
	}

	return articles, repos, contributions
}

func (a *App) buildValues(cfg config.Config, articles models.ArticlesResult, repos models.ReposResult, contributions models.ContributionsResult) map[string]string {
	return map[string]string{
		"TITLE":             cfg.SEO.Title,
		"DESCRIPTION":       cfg.SEO.Description,
		"KEYWORDS":          strings.Join(cfg.SEO.Keywords, ", "),
		"OG_TITLE":          cfg.SEO.OG.Title,
		"OG_DESCRIPTION":    cfg.SEO.OG.Description,
		"OG_IMAGE":          cfg.SEO.OG.Image,
		"NAME":              cfg.Profile.Name,
		"AVATAR":            cfg.Profile.Avatar,
		"TAGLINE_PREFIX":    cfg.Profile.Tagline.Prefix,
		"TAGLINE_TEXT":      cfg.Profile.Tagline.Text,
		"TAGLINE_HIGHLIGHT": cfg.Profile.Tagline.Highlight,
		"TERMINAL_TITLE":    cfg.Terminal.Title,
		"IDENTITY":          strings.Join(cfg.Identity, " / "),
		"INTERESTS":         strings.Join(cfg.Interests, " / "),
		"LINKS_SECTION":     renderer.LinksSection(cfg.Links),
		"NOTICE":            renderer.Notice(cfg.Notice),
		"ABOUT":             renderer.About(cfg.About),
		"RSS":               renderer.RSSSection(articles),
		"PROJECTS":          renderer.ProjectsSection(repos),
		"CONTRIBUTIONS":     renderer.ContributionGraph(contributions.Contributions),
		"SKELETON_LINKS":    renderer.SkeletonLinks(cfg.Links),
		"SKELETON_RSS":      renderer.SkeletonRSS(cfg.RSS),
		"SKELETON_PROJECTS": renderer.SkeletonProjects(cfg.Projects),
		"NAV_DESKTOP":       renderer.NavDesktop(cfg.Nav),
		"NAV_MOBILE":        renderer.NavMobile(cfg.Nav),
		"FOOTER_TEXT":       cfg.Footer.Text,
		"FOOTER_LINK":       cfg.Footer.Link.Text,
		"FOOTER_URL":        cfg.Footer.Link.URL,
		"THEME_CSS":         renderer.ThemeCSS(cfg.Theme),
		"ANIMATION_CONFIG":  renderer.AnimationConfig(cfg),
		"ANALYTICS":         renderer.Analytics(cfg.Analytics),
	}
}

// writeOutput tømmer og gjenskaper utkatalogen, skriver HTML-en og
// kopierer de statiske ressursene. Manglende ressurser logges og hoppes
// over.
func (a *App) writeOutput(cfg config.Config, html string) error {
	if err := os.RemoveAll(a.Opts.OutputDir); err != nil {
		return fmt.Errorf("klarte ikke å tømme utkatalogen: %w", err)
	}
	if err := os.MkdirAll(a.Opts.OutputDir, 0o755); err != nil {
		return fmt.Errorf("klarte ikke å opprette utkatalogen: %w", err)
	}

	indexPath := filepath.Join(a.Opts.OutputDir, "index.html")
	if err := os.WriteFile(indexPath, []byte(html), 0o644); err != nil {
		return fmt.Errorf("klarte ikke å skrive %s: %w", indexPath, err)
	}

	assets := []string{"app.js", "style.css", "theme-utils.js"}
	if cfg.Profile.Avatar != "" {
		assets = append(assets, cfg.Profile.Avatar)
	}
	for _, rel := range assets {
		a.copyAsset(filepath.Join(a.Opts.AssetDir, rel), filepath.Join(a.Opts.OutputDir, rel))
	}

	// Konfigurasjonen kopieres med slik at siden kan gjenbygges fra dist.
	if a.Opts.ConfigPath != "" {
		a.copyAsset(a.Opts.ConfigPath, filepath.Join(a.Opts.OutputDir, "config.yaml"))
	}

	return nil
}

func (a *App) copyAsset(src, dest string) {
	in, err := os.Open(src)
	if err != nil {
		slog.Warn("Hopper over ressurs som ikke finnes", "src", src)
		return
	}
	defer func() {
		if cerr := in.Close(); cerr != nil {
			slog.Warn("Klarte ikke å lukke kildefilen", "src", src, "error", cerr)
		}
	}()

	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		slog.Warn("Klarte ikke å opprette katalog for ressurs", "dest", dest, "error", err)
		return
	}

	out, err := os.Create(dest)
	if err != nil {
		slog.Warn("Klarte ikke å opprette ressursfilen", "dest", dest, "error", err)
		return
	}
	defer func() {
		if cerr := out.Close(); cerr != nil {
			slog.Warn("Klarte ikke å lukke ressursfilen", "dest", dest, "error", cerr)
		}
	}()

	if _, err := io.Copy(out, in); err != nil {
		slog.Warn("Klarte ikke å kopiere ressursen", "src", src, "dest", dest, "error", err)
		return
	}
	slog.Debug("Kopierte ressurs", "dest", dest)
}
