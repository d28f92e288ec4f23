package domain

// Creation is an image shown in the "Recent Creations" gallery, sorted by Order.
type Creation struct {
	ID       string `json:"id" mapstructure:"-"`
	Title    string `json:"title" mapstructure:"title"`
	ImageURL string `json:"imageUrl" mapstructure:"imageUrl"`
	Order    int64  `json:"order" mapstructure:"order"`
}

func (c Creation) Fields() map[string]any {
	return map[string]any{
		"title":    c.Title,
		"imageUrl": c.ImageURL,
		"order":    c.Order,
	}
}

// Book is an entry of the reading list, sorted by Order.
type Book struct {
	ID            string `json:"id" mapstructure:"-"`
	Title         string `json:"title" mapstructure:"title"`
	Author        string `json:"author" mapstructure:"author"`
	AmazonURL     string `json:"amazonUrl" mapstructure:"amazonUrl"`
	CoverImageURL string `json:"coverImageUrl" mapstructure:"coverImageUrl"`
	Order         int64  `json:"order" mapstructure:"order"`
}

func (b Book) Fields() map[string]any {
	return map[string]any{
		"title":         b.Title,
		"author":        b.Author,
		"amazonUrl":     b.AmazonURL,
		"coverImageUrl": b.CoverImageURL,
		"order":         b.Order,
	}
}
