package runner

import (
	"context"

	"github.com/mgsolli/hjemmebyggern/internal/fetcher"
	"github.com/mgsolli/hjemmebyggern/internal/models"
)

// Deps er de eksterne hentingene bygget trenger, samlet bak et grensesnitt
// slik at testene kan bytte dem ut.
type Deps interface {
	FetchArticles(ctx context.Context, url string, count, maxDescLen int) models.ArticlesResult
	FetchRepos(ctx context.Context, username string, count int, excludePatterns []string) models.ReposResult
	FetchContributions(ctx context.Context, username string, useRealData bool) models.ContributionsResult
}

// RealDeps går mot ekte nettverk via fetcher-pakken. Token er valgfri og
// hever bare GitHub-ratebegrensningen.
type RealDeps struct {
	Token string
}

func (RealDeps) FetchArticles(ctx context.Context, url string, count, maxDescLen int) models.ArticlesResult {
	return fetcher.GetRSSArticles(ctx, url, count, maxDescLen)
}

func (d RealDeps) FetchRepos(ctx context.Context, username string, count int, excludePatterns []string) models.ReposResult {
	return fetcher.GetUserRepos(ctx, username, count, excludePatterns, d.Token)
}

func (d RealDeps) FetchContributions(ctx context.Context, username string, useRealData bool) models.ContributionsResult {
	return fetcher.FetchUserContributions(ctx, username, useRealData, d.Token)
}
