package filestore

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/hjs-ah/portfolio/internal/storage"
	"github.com/rs/zerolog/log"
)

// FileStore keeps blobs in a local directory. Its retrieval URLs are BaseURL followed by the blob path, and are
// expected to be served by the application itself.
type FileStore struct {
	Root    string
	BaseURL string
}

func New(root, baseURL string) (fs *FileStore, err error) {
	fs = &FileStore{
		Root:    root,
		BaseURL: strings.TrimSuffix(baseURL, "/"),
	}

	info, err := os.Stat(root)
	if err == nil {
		if !info.IsDir() {
			log.Error().Str("root", root).Msg("not a directory")
			err = storage.ErrNotDir
		}
		return
	}

	if errors.Is(err, os.ErrNotExist) {
		err = os.MkdirAll(root, os.ModePerm)
	}

	if err != nil {
		log.Error().Err(err).Msg("internal error when setting up storage")
		err = storage.ErrInternal
	}

	return
}

func (s *FileStore) resolve(path string) (string, error) {
	cleaned, err := storage.CleanPath(path)
	if err != nil {
		return "", err
	}
	return filepath.Join(s.Root, filepath.FromSlash(cleaned)), nil
}

// Open returns the content of the blob at path.
func (s *FileStore) Open(path string) (content []byte, err error) {
	full, err := s.resolve(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(full)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			err = storage.ErrNotExist
		} else {
			log.Error().Err(err).Msg("failed to open file at path " + full)
			err = storage.ErrInternal
		}
		return
	}
	defer f.Close()

	content, err = io.ReadAll(f)
	if err != nil {
		log.Error().Err(err).Msg("failed to read file " + full)
		err = storage.ErrInternal
	}
	return
}

func (s *FileStore) Upload(ctx context.Context, path string, content io.Reader, _ string) error {
	full, err := s.resolve(path)
	if err != nil {
		return err
	}

	if err = os.MkdirAll(filepath.Dir(full), os.ModePerm); err != nil {
		log.Error().Err(err).Msg("failed to create directory for " + full)
		return storage.ErrCreate
	}

	// Written to a temporary file first, so a failed upload leaves the previous blob in place.
	tmp, err := os.CreateTemp(filepath.Dir(full), ".upload-*")
	if err != nil {
		log.Error().Err(err).Msg("failed to create file with path " + full)
		return storage.ErrCreate
	}
	defer os.Remove(tmp.Name())

	if _, err = io.Copy(tmp, content); err != nil {
		tmp.Close()
		log.Error().Err(err).Msg("failed to copy from reader")
		return storage.ErrInternal
	}
	if err = tmp.Close(); err != nil {
		log.Error().Err(err).Msg("failed to close file")
		return storage.ErrInternal
	}

	if err = os.Rename(tmp.Name(), full); err != nil {
		log.Error().Err(err).Msg("failed to move upload to " + full)
		return storage.ErrInternal
	}
	return nil
}

func (s *FileStore) URL(ctx context.Context, path string) (string, error) {
	return storage.JoinURL(s.BaseURL, path)
}

func (s *FileStore) DeleteByURL(ctx context.Context, u string) error {
	path, err := storage.PathFromURL(s.BaseURL, u)
	if err != nil {
		return err
	}
	return s.Delete(path)
}

func (s *FileStore) Delete(path string) error {
	full, err := s.resolve(path)
	if err != nil {
		return err
	}

	if err := os.Remove(full); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return storage.ErrNotExist
		}
		log.Error().Err(err).Msg("file deletion error")
		return storage.ErrInternal
	}

	return nil
}
