// Package db defines the document store: schemaless documents grouped into named collections, addressed by
// identifier and queried by a single ordering field.
package db

import (
	"context"
	"errors"
	"strings"

	"github.com/go-viper/mapstructure/v2"
)

var (
	ErrNotFound     = errors.New("not found")
	ErrInternal     = errors.New("internal error")
	ErrInvalidQuery = errors.New("invalid query")
)

// Collection is a slash separated path to a collection, such as "portfolio" or "portfolio/content/articles".
type Collection string

// Sub returns the collection named name nested under the document doc of c.
func (c Collection) Sub(doc, name string) Collection {
	return Collection(strings.Join([]string{string(c), doc, name}, "/"))
}

type Direction uint8

const (
	Asc Direction = iota
	Desc
)

// Query orders the documents of a collection. Documents lacking the OrderBy field are left out of the result.
type Query struct {
	OrderBy   string
	Direction Direction
}

type Document struct {
	ID   string
	Data map[string]any
}

//go:generate mockgen -destination=../mocks/db.go -package=mocks github.com/hjs-ah/portfolio/internal/db DB
type DB interface {
	// Get returns ErrNotFound if the document does not exist.
	Get(ctx context.Context, collection Collection, id string) (Document, error)
	// GetAll returns every document of the collection, ordered according to q if q is not nil.
	GetAll(ctx context.Context, collection Collection, q *Query) ([]Document, error)
	// SetMerge creates the document or merges data into it: nested maps are merged key by key, and fields absent
	// from data are kept. Fields present in data are overwritten, even when empty.
	SetMerge(ctx context.Context, collection Collection, id string, data map[string]any) error
	// Update replaces the given top level fields of an existing document, returning ErrNotFound if it does not exist.
	Update(ctx context.Context, collection Collection, id string, data map[string]any) error
	// Add creates a document with a generated identifier.
	Add(ctx context.Context, collection Collection, data map[string]any) (id string, err error)
	// Delete removes the document; deleting a document that does not exist is not an error.
	Delete(ctx context.Context, collection Collection, id string) error
}

// Decode copies the fields of a document into out, a pointer to a struct with mapstructure tags. Missing fields
// keep their zero value, and so do fields whose value cannot be converted: those are reported in the returned
// error while every other field is still decoded.
func Decode(data map[string]any, out any) error {
	var errs []error
	for k, v := range data {
		dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
			WeaklyTypedInput: true,
			Result:           out,
		})
		if err != nil {
			return err
		}
		if err = dec.Decode(map[string]any{k: v}); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Merge writes src into dst following the SetMerge semantics and returns dst.
func Merge(dst, src map[string]any) map[string]any {
	if dst == nil {
		dst = make(map[string]any, len(src))
	}
	for k, v := range src {
		sv, srcIsMap := v.(map[string]any)
		dv, dstIsMap := dst[k].(map[string]any)
		if srcIsMap && dstIsMap {
			dst[k] = Merge(dv, sv)
			continue
		}
		dst[k] = v
	}
	return dst
}
