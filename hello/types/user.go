// hello/types/user.go
package types

// PlaceholderUserID is assigned to every created user; nothing is stored.
const PlaceholderUserID = 1337

type CreateUserRequest struct {
	Username string `json:"username"`
}

type User struct {
	ID       uint64 `json:"id"`
	Username string `json:"username"`
}
