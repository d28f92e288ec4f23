// Package firestore backs the document store with a Cloud Firestore database, keeping the collection layout of the
// sqlite store so both can serve the same site.
package firestore

import (
	"context"
	"errors"
	"fmt"

	"cloud.google.com/go/firestore"
	"github.com/hjs-ah/portfolio/internal/db"
	"github.com/rs/zerolog/log"
	"google.golang.org/api/option"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type fsImpl struct {
	client *firestore.Client
}

func New(ctx context.Context, projectID, credentialsFile string) (db.DB, error) {
	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}

	client, err := firestore.NewClient(ctx, projectID, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create firestore client: %w", err)
	}
	return &fsImpl{client: client}, nil
}

func (f *fsImpl) HandleError(err error) error {
	switch {
	case err == nil:
		return nil
	case status.Code(err) == codes.NotFound:
		return db.ErrNotFound
	case errors.Is(err, db.ErrInvalidQuery):
		return err
	default:
		log.Error().Err(err).Msg("firestore error")
		return fmt.Errorf("%w: %s", db.ErrInternal, err)
	}
}

func (f *fsImpl) Get(ctx context.Context, collection db.Collection, id string) (db.Document, error) {
	snap, err := f.client.Collection(string(collection)).Doc(id).Get(ctx)
	if err != nil {
		return db.Document{}, f.HandleError(err)
	}
	return db.Document{ID: snap.Ref.ID, Data: snap.Data()}, nil
}

func (f *fsImpl) GetAll(ctx context.Context, collection db.Collection, q *db.Query) ([]db.Document, error) {
	coll := f.client.Collection(string(collection))
	query := coll.Query
	if q != nil && q.OrderBy != "" {
		query = coll.OrderBy(q.OrderBy, direction(q.Direction))
	}

	snaps, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, f.HandleError(err)
	}

	docs := make([]db.Document, 0, len(snaps))
	for _, snap := range snaps {
		docs = append(docs, db.Document{ID: snap.Ref.ID, Data: snap.Data()})
	}
	return docs, nil
}

func direction(d db.Direction) firestore.Direction {
	if d == db.Desc {
		return firestore.Desc
	}
	return firestore.Asc
}

func (f *fsImpl) SetMerge(ctx context.Context, collection db.Collection, id string, data map[string]any) error {
	_, err := f.client.Collection(string(collection)).Doc(id).Set(ctx, data, firestore.MergeAll)
	return f.HandleError(err)
}

func (f *fsImpl) Update(ctx context.Context, collection db.Collection, id string, data map[string]any) error {
	updates := make([]firestore.Update, 0, len(data))
	for k, v := range data {
		updates = append(updates, firestore.Update{FieldPath: firestore.FieldPath{k}, Value: v})
	}
	_, err := f.client.Collection(string(collection)).Doc(id).Update(ctx, updates)
	return f.HandleError(err)
}

func (f *fsImpl) Add(ctx context.Context, collection db.Collection, data map[string]any) (string, error) {
	ref, _, err := f.client.Collection(string(collection)).Add(ctx, data)
	if err != nil {
		return "", f.HandleError(err)
	}
	return ref.ID, nil
}

func (f *fsImpl) Delete(ctx context.Context, collection db.Collection, id string) error {
	_, err := f.client.Collection(string(collection)).Doc(id).Delete(ctx)
	return f.HandleError(err)
}
