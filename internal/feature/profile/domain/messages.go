// Package domain holds the profile field messages.
package domain

// ValidationFailed is the top-level message of a rejected profile.
const ValidationFailed = "Validation failed"

// Field messages. One message per field covers every rule of that field,
// except birthDate which distinguishes unparseable input.
const (
	MsgUsername         = "Username must be at least 6 characters."
	MsgFullName         = "Full name is required."
	MsgEmail            = "Must be a valid email format."
	MsgPhone            = "Phone must be 10-15 digits."
	MsgBirthDateFuture  = "Birth date cannot be in the future."
	MsgBirthDateInvalid = "Birth date must be a valid date."
	MsgBio              = "Bio must be 160 characters or less."
)

var fieldMessages = map[string]string{
	"username":  MsgUsername,
	"fullName":  MsgFullName,
	"email":     MsgEmail,
	"phone":     MsgPhone,
	"birthDate": MsgBirthDateFuture,
	"bio":       MsgBio,
}

// MessageFor returns the message for a failed rule (tag) on field.
func MessageFor(field, tag string) string {
	if field == "birthDate" && tag == "date" {
		return MsgBirthDateInvalid
	}
	if msg, ok := fieldMessages[field]; ok {
		return msg
	}
	return field + " is invalid."
}
