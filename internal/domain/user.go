package domain

// User is the identity of the signed in owner.
type User struct {
	AccountID int64
	Email     string
}

type Account struct {
	ID       int64
	Email    string
	Password string
}

// Profile is the singleton describing the site's owner.
type Profile struct {
	Name            string      `json:"name" mapstructure:"name"`
	Title           string      `json:"title" mapstructure:"title"`
	Location        string      `json:"location" mapstructure:"location"`
	Email           string      `json:"email" mapstructure:"email"`
	ProfileImageURL string      `json:"profileImageUrl" mapstructure:"profileImageUrl"`
	SocialLinks     SocialLinks `json:"socialLinks" mapstructure:"socialLinks"`
}

type SocialLinks struct {
	Medium   string `json:"medium" mapstructure:"medium"`
	LinkedIn string `json:"linkedin" mapstructure:"linkedin"`
	Behance  string `json:"behance" mapstructure:"behance"`
}

// Fields returns every profile field, empty ones included, so that a merge write overwrites them.
func (p Profile) Fields() map[string]any {
	return map[string]any{
		"name":            p.Name,
		"title":           p.Title,
		"location":        p.Location,
		"email":           p.Email,
		"profileImageUrl": p.ProfileImageURL,
		"socialLinks": map[string]any{
			"medium":   p.SocialLinks.Medium,
			"linkedin": p.SocialLinks.LinkedIn,
			"behance":  p.SocialLinks.Behance,
		},
	}
}
