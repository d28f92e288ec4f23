// Package queue runs background jobs on top of the SQLite backed backlite task queue.
package queue

import (
	"context"

	"github.com/hjs-ah/portfolio/internal/storage"
	"github.com/mikestefanello/backlite"
	"github.com/rs/zerolog/log"
)

// Sweeper deletes orphaned blobs in the background.
//
//go:generate mockgen -destination=../mocks/queue.go -package=mocks github.com/hjs-ah/portfolio/internal/queue Sweeper
type Sweeper interface {
	DeleteLater(ctx context.Context, url string) error
}

type sweeperImpl struct {
	storage storage.Storage
	queues  *backlite.Client
}

// New registers the queues on blClient and starts its workers, which stop when ctx is done.
func New(ctx context.Context, st storage.Storage, blClient *backlite.Client) Sweeper {
	q := &sweeperImpl{
		storage: st,
		queues:  blClient,
	}
	q.register()
	q.queues.Start(ctx)
	log.Info().Msg("started task queue")
	return q
}

func (q *sweeperImpl) DeleteLater(ctx context.Context, url string) error {
	log.Debug().Str("url", url).Msg("enqueuing blob deletion")
	_, err := q.queues.Add(DeleteBlobJob{URL: url}).Ctx(ctx).Save()
	return err
}
