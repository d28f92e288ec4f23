package domain

// Article is a link to a piece of writing published elsewhere. Date is kept as entered by the owner and is
// never validated.
type Article struct {
	ID          string `json:"id" mapstructure:"-"`
	Title       string `json:"title" mapstructure:"title"`
	Description string `json:"description" mapstructure:"description"`
	URL         string `json:"url" mapstructure:"url"`
	Date        string `json:"date" mapstructure:"date"`
}

func (a Article) Fields() map[string]any {
	return map[string]any{
		"title":       a.Title,
		"description": a.Description,
		"url":         a.URL,
		"date":        a.Date,
	}
}
