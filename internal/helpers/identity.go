package helpers

// AdminIdentity is the verified caller of an admin operation. It is built by
// the auth middleware from a validated access token and passed explicitly
// into every admin code path, so the core never reaches back into cookie
// state.
type AdminIdentity struct {
	UserID      string `json:"id"`
	Email       string `json:"email,omitempty"`
	AccessToken string `json:"-"`
}

func (ai *AdminIdentity) Verified() bool {
	return ai != nil && ai.UserID != ""
}
