package models

// CurrentUser is the caller identity resolved from an access token.
type CurrentUser struct {
	Email string `json:"email"`
}

// GoogleIdentity is what a verified Google ID token says about its holder.
type GoogleIdentity struct {
	Subject       string `json:"sub"`
	Email         string `json:"email"`
	EmailVerified bool   `json:"email_verified"`
	Name          string `json:"name,omitempty"`
	Picture       string `json:"picture,omitempty"`
}
