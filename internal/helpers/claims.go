package helpers

// AdminClaims is what the auth middleware stores in the request context once
// a token has been validated and the identity confirmed in admin_users.
type AdminClaims struct {
	*CustomClaims
	UserID string `json:"id"`
	Email  string `json:"email,omitempty"`
}
