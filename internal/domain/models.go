package domain

import "fmt"

// Role is the access level of a user
type Role string

const (
	RoleAdmin  Role = "Admin"
	RoleUser   Role = "User"
	RoleEditor Role = "Editor"
)

// Valid reports whether r is one of the known roles
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleUser, RoleEditor:
		return true
	}
	return false
}

// Status is the account state of a user
type Status string

const (
	StatusActive   Status = "Active"
	StatusInactive Status = "Inactive"
)

// Valid reports whether s is one of the known statuses
func (s Status) Valid() bool {
	return s == StatusActive || s == StatusInactive
}

// User is one record of the demo data set
type User struct {
	ID     int    `toml:"id"`
	Name   string `toml:"name"`
	Email  string `toml:"email"`
	Role   Role   `toml:"role"`
	Status Status `toml:"status"`
}

// RowID returns the unique identifier of the user
func (u User) RowID() int { return u.ID }

// Field returns the value stored under key
func (u User) Field(key string) (any, bool) {
	switch key {
	case "id":
		return u.ID, true
	case "name":
		return u.Name, true
	case "email":
		return u.Email, true
	case "role":
		return u.Role, true
	case "status":
		return u.Status, true
	}
	return nil, false
}

// String formats the user as a single tab separated line
func (u User) String() string {
	return fmt.Sprintf("%d\t%s\t%s\t%s\t%s", u.ID, u.Name, u.Email, u.Role, u.Status)
}
