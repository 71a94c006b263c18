package models

// User account types
const (
	UserTypeClient  = "client"
	UserTypePartner = "partner"
	UserTypeAdmin   = "admin"
)

// Auth providers
const (
	ProviderLocal  = "local"
	ProviderGoogle = "google"
)

// User is an HR user record. Status false means the account is disabled
// and cannot sign in. CanAccess is an opaque grant descriptor managed by
// the admin frontend.
type User struct {
	ID           int64     `json:"id"`
	UUID         string    `json:"uuid"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Phone        *string   `json:"phone"`
	Address      *string   `json:"address"`
	Gender       *string   `json:"gender"`
	Type         string    `json:"type"`
	Status       bool      `json:"status"`
	CanAccess    *string   `json:"can_access"`
	Provider     string    `json:"provider"`
	CreatedAt    DateTime  `json:"created_at"`
	UpdatedAt    *DateTime `json:"updated_at"`
	Remarks      *string   `json:"remarks"`
}
