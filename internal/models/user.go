package models

// User is an account keyed by username. Password holds a bcrypt digest,
// never the plaintext.
type User struct {
	Username string `db:"username"`
	Password string `db:"password"`
}
