// Package entity defines the profile submitted by the profile form.
package entity

// Profile is validated as a whole; every failing field is reported.
// Empty optional fields mean "not provided". Lengths are UTF-16 code units.
type Profile struct {
	Username  string `json:"username" validate:"required,minutf16=6"`
	FullName  string `json:"fullName" validate:"required"`
	Email     string `json:"email" validate:"required,emailshape"`
	Phone     string `json:"phone" validate:"required,phone"`
	BirthDate string `json:"birthDate" validate:"omitempty,date,notfuture"`
	Bio       string `json:"bio" validate:"omitempty,maxutf16=160"`
}
