package core

import (
	"bytes"
	"context"
	"errors"

	"github.com/hjs-ah/portfolio/internal/db"
	"github.com/hjs-ah/portfolio/internal/domain"
	"github.com/hjs-ah/portfolio/internal/service"
	"github.com/rs/zerolog/log"
)

const profileEditor = "profile"

func (s *AppService) profile(ctx context.Context) (domain.Profile, error) {
	var p domain.Profile
	doc, err := s.DB.Get(ctx, Root, ProfileID)
	if errors.Is(err, db.ErrNotFound) {
		return p, nil
	}
	if err != nil {
		return p, err
	}
	decode(doc, &p)
	return p, nil
}

func (s *AppService) LoadProfile(ctx context.Context) domain.Profile {
	p, err := s.profile(ctx)
	if err != nil {
		log.Error().Err(err).Msg("error loading profile")
		return domain.Profile{}
	}
	return p
}

func (s *AppService) SaveProfile(ctx context.Context, profile domain.Profile) (service.Notice, error) {
	err := s.DB.SetMerge(ctx, Root, ProfileID, profile.Fields())
	s.Metrics.RecordOperation(profileEditor, "save", err)
	if err != nil {
		return service.Notice{}, service.NewAlert("Error saving profile: ", err)
	}
	return service.NewNotice("Profile saved successfully!"), nil
}

func (s *AppService) UploadProfileImage(ctx context.Context, file *domain.Upload) (service.ProfileImage, error) {
	if file.Empty() {
		return service.ProfileImage{}, &service.Alert{Message: "Please select an image", Err: service.ErrInvalidInput}
	}

	url, err := s.upload(ctx, "profile/"+fileName(file), file)
	s.Metrics.RecordOperation(profileEditor, "upload", err)
	if err != nil {
		return service.ProfileImage{}, service.NewAlert("Error uploading image: ", err)
	}

	return service.ProfileImage{
		URL:    url,
		Notice: service.NewNotice("Image uploaded successfully!"),
	}, nil
}

func (s *AppService) upload(ctx context.Context, path string, file *domain.Upload) (string, error) {
	if err := s.Storage.Upload(ctx, path, bytes.NewReader(file.Content), contentType(file)); err != nil {
		return "", err
	}
	return s.Storage.URL(ctx, path)
}
