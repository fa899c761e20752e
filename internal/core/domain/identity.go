package domain

// Identity carries the resolved caller of a request. The zero value is an
// anonymous caller.
type Identity struct {
	UserID string
}

func (i Identity) IsAuthenticated() bool {
	return i.UserID != ""
}

func (i Identity) ID() string {
	return i.UserID
}
