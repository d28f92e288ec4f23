package queue

import (
	"context"
	"errors"

	"github.com/hjs-ah/portfolio/internal/storage"
	"github.com/mikestefanello/backlite"
	"github.com/rs/zerolog/log"
)

func (q *sweeperImpl) register() {
	q.queues.Register(backlite.NewQueue[DeleteBlobJob](deleteBlob(q.storage)))
}

func deleteBlob(st storage.Storage) func(context.Context, DeleteBlobJob) error {
	return func(ctx context.Context, job DeleteBlobJob) error {
		err := st.DeleteByURL(ctx, job.URL)
		switch {
		case err == nil:
			log.Info().Str("url", job.URL).Msg("deleted orphaned blob")
			return nil
		case errors.Is(err, storage.ErrNotExist), errors.Is(err, storage.ErrForeignURL):
			log.Warn().Err(err).Str("url", job.URL).Msg("nothing to delete")
			return nil
		default:
			log.Error().Err(err).Str("url", job.URL).Msg("blob deletion failed")
			return err
		}
	}
}
