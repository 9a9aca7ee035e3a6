// hello/controllers/user.go
package controllers

import (
	"context"

	"hello/hello/types"
	"hello/hello/utils/logging"
)

// UserController answers user creation without storing anything.
type UserController struct{}

func NewUserController() *UserController {
	return &UserController{}
}

// CreateUser echoes username back under the placeholder id.
func (c *UserController) CreateUser(ctx context.Context, req types.CreateUserRequest) types.User {
	defer logging.LogDuration(ctx, "CreateUser")()
	return types.User{
		ID:       types.PlaceholderUserID,
		Username: req.Username,
	}
}
