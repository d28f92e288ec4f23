package service

import (
	"encoding/json"
	"time"

	"github.com/hjs-ah/portfolio/internal/domain"
)

// NoticeDuration is how long a success message stays visible.
const NoticeDuration = 3 * time.Second

// Notice is a transient success message.
type Notice struct {
	Message    string
	ClearAfter time.Duration
}

func NewNotice(message string) Notice {
	return Notice{Message: message, ClearAfter: NoticeDuration}
}

func (n Notice) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Message      string `json:"message"`
		ClearAfterMs int64  `json:"clearAfterMs"`
	}{n.Message, n.ClearAfter.Milliseconds()})
}

// Alert is a failure the owner must acknowledge. Message is shown as is; Err is the cause.
type Alert struct {
	Message string
	Err     error
}

// NewAlert prefixes the cause's message, as in "Error saving book: permission denied".
func NewAlert(prefix string, err error) *Alert {
	return &Alert{Message: prefix + err.Error(), Err: err}
}

func (a *Alert) Error() string {
	return a.Message
}

func (a *Alert) Unwrap() error {
	return a.Err
}

type Preview struct {
	DataURL string `json:"dataUrl"`
}

// Dashboard is everything the admin console shows once the owner is signed in.
type Dashboard struct {
	Profile   domain.Profile `json:"profile"`
	Articles  ArticleList    `json:"articles"`
	Creations CreationList   `json:"creations"`
	Books     BookList       `json:"books"`
}

type Portfolio struct {
	Profile   domain.Profile    `json:"profile"`
	Articles  []domain.Article  `json:"articles"`
	Creations []domain.Creation `json:"creations"`
	Books     []domain.Book     `json:"books"`
}
