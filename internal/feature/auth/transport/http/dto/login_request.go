// Package dto defines data transfer objects for the auth feature's HTTP transport layer.
package dto

// LoginReq is the body of POST /api/login.
// Rules are applied by the usecase in a fixed order, so no binding tags here.
type LoginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRes is returned on a successful login.
type LoginRes struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}
