package domain

// Upload is an image picked by the owner, read whole into memory.
type Upload struct {
	Filename    string
	ContentType string
	Content     []byte
}

func (u *Upload) Empty() bool {
	return u == nil || len(u.Content) == 0
}
