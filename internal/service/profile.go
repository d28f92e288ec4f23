package service

import (
	"context"

	"github.com/hjs-ah/portfolio/internal/domain"
)

type Profiles interface {
	// LoadProfile never fails: a missing profile or a read error yields empty fields.
	LoadProfile(ctx context.Context) domain.Profile
	// SaveProfile writes every field of the profile, empty ones included, merging it into the stored profile.
	SaveProfile(ctx context.Context, profile domain.Profile) (Notice, error)
	// UploadProfileImage stores the image and returns its URL. The profile itself is not modified until it is
	// saved with that URL.
	UploadProfileImage(ctx context.Context, file *domain.Upload) (ProfileImage, error)
}

type ProfileImage struct {
	URL    string `json:"url"`
	Notice Notice `json:"notice"`
}
