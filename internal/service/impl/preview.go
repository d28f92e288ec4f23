package core

import (
	"encoding/base64"

	"github.com/hjs-ah/portfolio/internal/domain"
	"github.com/hjs-ah/portfolio/internal/service"
)

func (s *AppService) Preview(file *domain.Upload) (service.Preview, error) {
	if file.Empty() {
		return service.Preview{}, &service.Alert{Message: "Please select an image", Err: service.ErrInvalidInput}
	}
	return service.Preview{
		DataURL: "data:" + contentType(file) + ";base64," + base64.StdEncoding.EncodeToString(file.Content),
	}, nil
}
