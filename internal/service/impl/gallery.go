package core

import (
	"context"
	"fmt"

	"github.com/hjs-ah/portfolio/internal/db"
	"github.com/hjs-ah/portfolio/internal/domain"
	"github.com/hjs-ah/portfolio/internal/service"
	"github.com/hjs-ah/portfolio/internal/validate"
	"github.com/rs/zerolog/log"
)

const (
	creationEditor = "creations"
	bookEditor     = "books"
)

func (s *AppService) creations(ctx context.Context) ([]domain.Creation, error) {
	docs, err := s.DB.GetAll(ctx, Creations, &db.Query{OrderBy: orderField, Direction: db.Asc})
	if err != nil {
		return nil, err
	}

	creations := make([]domain.Creation, 0, len(docs))
	for _, doc := range docs {
		var c domain.Creation
		decode(doc, &c)
		c.ID = doc.ID
		creations = append(creations, c)
	}
	return creations, nil
}

func (s *AppService) books(ctx context.Context) ([]domain.Book, error) {
	docs, err := s.DB.GetAll(ctx, Books, &db.Query{OrderBy: orderField, Direction: db.Asc})
	if err != nil {
		return nil, err
	}

	books := make([]domain.Book, 0, len(docs))
	for _, doc := range docs {
		var b domain.Book
		decode(doc, &b)
		b.ID = doc.ID
		books = append(books, b)
	}
	return books, nil
}

func (s *AppService) ListCreations(ctx context.Context) service.CreationList {
	creations, err := s.creations(ctx)
	if err != nil {
		log.Error().Err(err).Msg("error loading creations")
		return service.CreationList{Items: []domain.Creation{}}
	}

	list := service.CreationList{Items: creations}
	if len(creations) == 0 {
		list.Placeholder = service.CreationsPlaceholder
	}
	return list
}

func (s *AppService) ListBooks(ctx context.Context) service.BookList {
	books, err := s.books(ctx)
	if err != nil {
		log.Error().Err(err).Msg("error loading books")
		return service.BookList{Items: []domain.Book{}}
	}

	list := service.BookList{Items: books}
	if len(books) == 0 {
		list.Placeholder = service.BooksPlaceholder
	}
	return list
}

func (s *AppService) SaveCreation(ctx context.Context, form service.CreationForm) (service.CreationList, error) {
	if form.File.Empty() {
		return service.CreationList{}, &service.Alert{Message: "Please select an image", Err: service.ErrInvalidInput}
	}

	err := s.addWithImage(ctx, Creations, "creations/", form.File, func(url string, order int64) map[string]any {
		return domain.Creation{Title: form.Title, ImageURL: url, Order: order}.Fields()
	})
	s.Metrics.RecordOperation(creationEditor, "add", err)
	if err != nil {
		return service.CreationList{}, service.NewAlert("Error saving creation: ", err)
	}
	return s.ListCreations(ctx), nil
}

func (s *AppService) SaveBook(ctx context.Context, form service.BookForm) (service.BookList, error) {
	const prefix = "Error saving book: "
	if err := validate.Required("title", form.Title, "author", form.Author); err != nil {
		return service.BookList{}, invalid(prefix, err)
	}
	if form.File.Empty() {
		return service.BookList{}, &service.Alert{Message: "Please select a book cover image", Err: service.ErrInvalidInput}
	}

	err := s.addWithImage(ctx, Books, "books/", form.File, func(url string, order int64) map[string]any {
		return domain.Book{
			Title:         form.Title,
			Author:        form.Author,
			AmazonURL:     form.AmazonURL,
			CoverImageURL: url,
			Order:         order,
		}.Fields()
	})
	s.Metrics.RecordOperation(bookEditor, "add", err)
	if err != nil {
		return service.BookList{}, service.NewAlert(prefix, err)
	}
	return s.ListBooks(ctx), nil
}

func (s *AppService) DeleteCreation(ctx context.Context, id, imageURL string, confirmed bool) (*service.CreationList, error) {
	if !confirmed {
		return nil, nil
	}

	err := s.deleteWithImage(ctx, Creations, id, imageURL)
	s.Metrics.RecordOperation(creationEditor, "delete", err)
	if err != nil {
		return nil, service.NewAlert("Error deleting creation: ", err)
	}

	list := s.ListCreations(ctx)
	return &list, nil
}

func (s *AppService) DeleteBook(ctx context.Context, id, coverURL string, confirmed bool) (*service.BookList, error) {
	if !confirmed {
		return nil, nil
	}

	err := s.deleteWithImage(ctx, Books, id, coverURL)
	s.Metrics.RecordOperation(bookEditor, "delete", err)
	if err != nil {
		return nil, service.NewAlert("Error deleting book: ", err)
	}

	list := s.ListBooks(ctx)
	return &list, nil
}

// addWithImage uploads the image under a timestamped name, then adds the document built by fields. The steps
// are not undone if a later one fails.
func (s *AppService) addWithImage(ctx context.Context, collection db.Collection, prefix string, file *domain.Upload,
	fields func(url string, order int64) map[string]any) error {
	path := fmt.Sprintf("%s%d_%s", prefix, s.Now().UnixMilli(), fileName(file))
	url, err := s.upload(ctx, path, file)
	if err != nil {
		return err
	}

	err = s.insertOrdered(ctx, collection, func(order int64) map[string]any {
		return fields(url, order)
	})
	if err != nil {
		s.orphaned(ctx, url)
	}
	return err
}

// deleteWithImage deletes the blob first; the document is only deleted if that succeeded, so it never points
// to a missing blob.
func (s *AppService) deleteWithImage(ctx context.Context, collection db.Collection, id, url string) error {
	if err := s.Storage.DeleteByURL(ctx, url); err != nil {
		return err
	}
	return s.DB.Delete(ctx, collection, id)
}
