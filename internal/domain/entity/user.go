package entity

import (
	"time"
)

const (
	DefaultCompanyName        = "Independent"
	DefaultCompanyDescription = "No company description provided"
	DefaultLanguage           = "English"
)

// User represents a registered user in the system
type User struct {
	ID                 string    `bson:"_id,omitempty" json:"id"`
	Username           string    `bson:"username" json:"username"`
	Email              string    `bson:"email" json:"email"`
	PasswordHash       string    `bson:"password_hash" json:"-"`
	Role               UserRole  `bson:"role" json:"role"`
	Address            *string   `bson:"address,omitempty" json:"address,omitempty"`
	PhoneNumber        *string   `bson:"phone_number,omitempty" json:"phone_number,omitempty"`
	IDNumber           *string   `bson:"id_number,omitempty" json:"id_number,omitempty"`
	CompanyName        string    `bson:"company_name" json:"company_name"`
	CompanyDescription string    `bson:"company_description" json:"company_description"`
	LanguagesSpoken    []string  `bson:"languages_spoken" json:"languages_spoken"`
	CreatedAt          time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt          time.Time `bson:"updated_at" json:"updated_at"`
}

// ApplyProfileDefaults fills the company and language fields when they were left empty.
func (u *User) ApplyProfileDefaults() {
	if u.CompanyName == "" {
		u.CompanyName = DefaultCompanyName
	}
	if u.CompanyDescription == "" {
		u.CompanyDescription = DefaultCompanyDescription
	}
	if len(u.LanguagesSpoken) == 0 {
		u.LanguagesSpoken = []string{DefaultLanguage}
	}
}

// UserRole represents the role of a user in the system
type UserRole string

const (
	UserRoleAdmin UserRole = "admin"
	UserRoleUser  UserRole = "user"
)

func DefaultRole() UserRole {
	return UserRoleUser
}

// IsValid reports whether the role belongs to the closed role set.
func (r UserRole) IsValid() bool {
	return r == UserRoleAdmin || r == UserRoleUser
}

// HasRole reports whether role is one of allowed.
func HasRole(role UserRole, allowed ...UserRole) bool {
	for _, a := range allowed {
		if role == a {
			return true
		}
	}
	return false
}

// Identity is the authenticated caller bound to a request.
type Identity struct {
	UserID string
	Role   UserRole
}

func (i Identity) IsAdmin() bool {
	return i.Role == UserRoleAdmin
}

// CanManage is the ownership predicate: the owner or any admin.
func (i Identity) CanManage(ownerID string) bool {
	return (i.UserID != "" && i.UserID == ownerID) || i.IsAdmin()
}
