package domain

type ContactStatus string

const (
	ContactStatusNew     ContactStatus = "new"
	ContactStatusRead    ContactStatus = "read"
	ContactStatusReplied ContactStatus = "replied"
)

// ParseContactStatus accepts exactly new, read and replied.
func ParseContactStatus(s string) (ContactStatus, error) {
	switch ContactStatus(s) {
	case ContactStatusNew, ContactStatusRead, ContactStatusReplied:
		return ContactStatus(s), nil
	}
	return "", ErrInvalidStatus
}

// Validate checks that the required fields are present. Values are stored
// exactly as submitted.
func (c NewContact) Validate() error {
	if c.FullName == "" || c.Email == "" || c.Message == "" {
		return ErrMissingContactFields
	}
	return nil
}
