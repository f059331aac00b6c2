// Package dto defines data transfer objects for the profile feature's HTTP transport layer.
package dto

// UpdateProfileReq is the body of PUT /api/profile.
type UpdateProfileReq struct {
	Username  string `json:"username"`
	FullName  string `json:"fullName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	BirthDate string `json:"birthDate,omitempty"`
	Bio       string `json:"bio,omitempty"`
}

// UpdateProfileRes is returned when the profile passes every rule.
type UpdateProfileRes struct {
	Success bool `json:"success"`
}

// ValidationErrorRes lists every failing field.
type ValidationErrorRes struct {
	Message string            `json:"message"`
	Errors  map[string]string `json:"errors"`
}
