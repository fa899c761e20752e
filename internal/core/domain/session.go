package domain

// Session is the per-browser state kept in the session store. An anonymous
// session has an empty UserID; flashes survive exactly one page render.
type Session struct {
	UserID  string   `json:"user_id,omitempty"`
	Flashes []string `json:"flashes,omitempty"`
}

func (s Session) Identity() Identity {
	return Identity{UserID: s.UserID}
}
