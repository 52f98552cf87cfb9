// Package dto defines data transfer objects exchanged between webapi,
// services, and repositories.
package dto

// UserCreate represents the data needed to register a new account.
type UserCreate struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"full_name"`
	Phone    string `json:"phone"`
}

// UserRead is the full account record as exposed by the API. The password
// is stored and echoed back verbatim; that is the documented wire contract,
// not an oversight to patch here.
type UserRead struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"full_name"`
	Phone    string `json:"phone"`
}

// ProfileUpdate carries the only two account fields mutable after
// registration.
type ProfileUpdate struct {
	FullName string `json:"full_name"`
	Phone    string `json:"phone"`
}
