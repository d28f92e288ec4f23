package service

import (
	"context"

	"github.com/hjs-ah/portfolio/internal/domain"
)

const (
	CreationsPlaceholder = `No creations yet. Click "Add Creation" to upload one.`
	BooksPlaceholder     = `No books yet. Click "Add Book" to add one.`
)

type Creations interface {
	// ListCreations returns the creations in ascending order.
	ListCreations(ctx context.Context) CreationList
	// SaveCreation uploads the image, then adds the creation after the last one.
	SaveCreation(ctx context.Context, form CreationForm) (CreationList, error)
	// DeleteCreation deletes the image, then the creation. It does nothing and returns a nil list unless confirmed.
	DeleteCreation(ctx context.Context, id, imageURL string, confirmed bool) (*CreationList, error)
}

type Books interface {
	ListBooks(ctx context.Context) BookList
	SaveBook(ctx context.Context, form BookForm) (BookList, error)
	DeleteBook(ctx context.Context, id, coverURL string, confirmed bool) (*BookList, error)
}

type CreationForm struct {
	Title string
	File  *domain.Upload
}

type BookForm struct {
	Title     string
	Author    string
	AmazonURL string
	File      *domain.Upload
}

type CreationList struct {
	Items       []domain.Creation `json:"items"`
	Placeholder string            `json:"placeholder,omitempty"`
}

type BookList struct {
	Items       []domain.Book `json:"items"`
	Placeholder string        `json:"placeholder,omitempty"`
}
