package domain

// User represents a registered account keyed by its username.
type User struct {
	Username string `json:"username"`
	Name     string `json:"name"`
	// Password holds the bcrypt hash, never the plaintext. Excluded from
	// every JSON response.
	Password string `json:"-"`
}
