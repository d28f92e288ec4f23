package core

import (
	"context"
	"fmt"
	"html"
	"time"
	"unicode/utf8"

	"github.com/hjs-ah/portfolio/internal/db"
	"github.com/hjs-ah/portfolio/internal/domain"
	"github.com/hjs-ah/portfolio/internal/service"
	"github.com/hjs-ah/portfolio/internal/validate"
	"github.com/rs/zerolog/log"
)

const (
	articleEditor = "articles"
	previewLen    = 100
)

// Dates are entered as YYYY-MM-DD by the date input, and shown as M/D/YYYY.
var dateLayouts = []string{time.DateOnly, time.RFC3339}

func (s *AppService) articles(ctx context.Context) ([]domain.Article, error) {
	docs, err := s.DB.GetAll(ctx, Articles, &db.Query{OrderBy: "date", Direction: db.Desc})
	if err != nil {
		return nil, err
	}

	articles := make([]domain.Article, 0, len(docs))
	for _, doc := range docs {
		var a domain.Article
		decode(doc, &a)
		a.ID = doc.ID
		articles = append(articles, a)
	}
	return articles, nil
}

func (s *AppService) ListArticles(ctx context.Context) service.ArticleList {
	list := service.ArticleList{Items: []service.ArticleItem{}}
	articles, err := s.articles(ctx)
	if err != nil {
		log.Error().Err(err).Msg("error loading articles")
		return list
	}

	if len(articles) == 0 {
		list.Placeholder = service.ArticlesPlaceholder
		return list
	}
	for _, a := range articles {
		list.Items = append(list.Items, service.ArticleItem{
			Article:     a,
			Preview:     s.preview(a.Description),
			DisplayDate: displayDate(a.Date),
		})
	}
	return list
}

func (s *AppService) NewArticle() service.ArticleModal {
	return service.ArticleModal{Title: service.AddArticleTitle}
}

func (s *AppService) EditArticle(ctx context.Context, id string) (service.ArticleModal, bool) {
	doc, err := s.DB.Get(ctx, Articles, id)
	if err != nil {
		log.Error().Err(err).Str("id", id).Msg("error loading article")
		return service.ArticleModal{}, false
	}

	var a domain.Article
	decode(doc, &a)
	a.ID = doc.ID
	return service.ArticleModal{Title: service.EditArticleTitle, Form: a}, true
}

func (s *AppService) SaveArticle(ctx context.Context, a domain.Article) (service.ArticleList, error) {
	const prefix = "Error saving article: "
	if err := validate.Required("title", a.Title, "description", a.Description, "url", a.URL, "date", a.Date); err != nil {
		return service.ArticleList{}, invalid(prefix, err)
	}

	var err error
	op := "add"
	if a.ID != "" {
		op = "update"
		err = s.DB.Update(ctx, Articles, a.ID, a.Fields())
	} else {
		_, err = s.DB.Add(ctx, Articles, a.Fields())
	}
	s.Metrics.RecordOperation(articleEditor, op, err)
	if err != nil {
		return service.ArticleList{}, service.NewAlert(prefix, err)
	}

	return s.ListArticles(ctx), nil
}

func (s *AppService) DeleteArticle(ctx context.Context, id string, confirmed bool) (*service.ArticleList, error) {
	if !confirmed {
		return nil, nil
	}

	err := s.DB.Delete(ctx, Articles, id)
	s.Metrics.RecordOperation(articleEditor, "delete", err)
	if err != nil {
		return nil, service.NewAlert("Error deleting article: ", err)
	}

	list := s.ListArticles(ctx)
	return &list, nil
}

// preview strips the markup of a description and keeps its first characters.
func (s *AppService) preview(description string) string {
	text := html.UnescapeString(s.policy.Sanitize(description))
	if utf8.RuneCountInString(text) > previewLen {
		text = string([]rune(text)[:previewLen])
	}
	return text + "..."
}

func displayDate(date string) string {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, date); err == nil {
			return t.Format("1/2/2006")
		}
	}
	return "Invalid Date"
}

func invalid(prefix string, err error) *service.Alert {
	return &service.Alert{
		Message: prefix + err.Error(),
		Err:     fmt.Errorf("%w: %s", service.ErrInvalidInput, err),
	}
}
