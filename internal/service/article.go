package service

import (
	"context"

	"github.com/hjs-ah/portfolio/internal/domain"
)

const (
	ArticlesPlaceholder = `No articles yet. Click "Add Article" to create one.`
	AddArticleTitle     = "Add Article"
	EditArticleTitle    = "Edit Article"
)

type Articles interface {
	// ListArticles returns the articles, most recent date first.
	ListArticles(ctx context.Context) ArticleList
	NewArticle() ArticleModal
	// EditArticle returns false if the article could not be read.
	EditArticle(ctx context.Context, id string) (ArticleModal, bool)
	// SaveArticle updates the article if it has an ID, and creates it otherwise.
	SaveArticle(ctx context.Context, article domain.Article) (ArticleList, error)
	// DeleteArticle does nothing and returns a nil list unless confirmed.
	DeleteArticle(ctx context.Context, id string, confirmed bool) (*ArticleList, error)
}

type ArticleItem struct {
	domain.Article
	// Preview is the beginning of the description, stripped of markup.
	Preview     string `json:"preview"`
	DisplayDate string `json:"displayDate"`
}

type ArticleList struct {
	Items       []ArticleItem `json:"items"`
	Placeholder string        `json:"placeholder,omitempty"`
}

type ArticleModal struct {
	Title string         `json:"title"`
	Form  domain.Article `json:"form"`
}
