package queue

import (
	"time"

	"github.com/mikestefanello/backlite"
)

const (
	DeleteBlobQueue = "DeleteBlob"
)

// DeleteBlobJob removes a blob that was uploaded for a document which was never written.
type DeleteBlobJob struct {
	URL string
}

func (j DeleteBlobJob) Config() backlite.QueueConfig {
	return backlite.QueueConfig{
		Name:        DeleteBlobQueue,
		MaxAttempts: 5,
		Backoff:     30 * time.Second,
		Timeout:     time.Minute,
		Retention: &backlite.Retention{
			Duration:   24 * time.Hour,
			OnlyFailed: true,
			Data: &backlite.RetainData{
				OnlyFailed: true,
			},
		},
	}
}
