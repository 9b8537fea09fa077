package domain

// Session is the single persisted client-side record: the auth token and
// the snapshot of the seller's store taken at login. It is overwritten
// wholesale on re-login or profile edit and removed on sign-out.
type Session struct {
	Token string
	Store StoreProfile
}

// Valid reports whether the session may be persisted or used for
// authenticated calls. A session is either absent or carries a non-empty
// token, nothing in between.
func (s Session) Valid() bool {
	return s.Token != ""
}
