package store

const (
	createUser = `INSERT INTO users (email, username, password_hash, avatar)
    VALUES ($1, $2, $3, $4)
    RETURNING user_id, email, username, password_hash, avatar, created_at;`

	findUserByEmail = `SELECT user_id, email, username, password_hash, avatar, created_at
    FROM users
    WHERE email = $1;`

	findUserByUsername = `SELECT user_id, email, username, password_hash, avatar, created_at
    FROM users
    WHERE username = $1;`

	findUserByID = `SELECT user_id, email, username, password_hash, avatar, created_at
    FROM users
    WHERE user_id = $1;`
)

// Unique constraint names defined by the users table migration. The
// repository maps insert-time violations back to the field that caused them.
const (
	emailUniqueConstraint    = "users_email_key"
	usernameUniqueConstraint = "users_username_key"
)
