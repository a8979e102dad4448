package user

import "time"

// User is the domain entity, mapped 1:1 to the users table. The follows
// relation lives in its own table and is queried through the repository,
// never stored on the entity.
type User struct {
	ID       int64  `json:"id"`
	Email    string `json:"email"`
	Username string `json:"username"`

	// Serialized only into the cache; client responses are built from
	// DTOs and never carry the hash.
	PasswordHash string `json:"password_hash"`

	Bio   string `json:"bio"`
	Image string `json:"image"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
