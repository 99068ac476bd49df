// Package data provides the user records shown by the demo table.
package data

import (
	"errors"
	"fmt"
	"os"
	"slices"

	"github.com/pelletier/go-toml/v2"

	"uikit/internal/domain"
)

var (
	// ErrDuplicateID is returned when two users share an id
	ErrDuplicateID = errors.New("duplicate user id")
	// ErrInvalidUser is returned for a record with an unknown role or status
	ErrInvalidUser = errors.New("invalid user")
)

var sampleUsers = []domain.User{
	{ID: 1, Name: "Alice Johnson", Email: "alice@example.com", Role: domain.RoleAdmin, Status: domain.StatusActive},
	{ID: 2, Name: "Bob Smith", Email: "bob@example.com", Role: domain.RoleUser, Status: domain.StatusActive},
	{ID: 3, Name: "Charlie Brown", Email: "charlie@example.com", Role: domain.RoleEditor, Status: domain.StatusInactive},
	{ID: 4, Name: "Diana Prince", Email: "diana@example.com", Role: domain.RoleUser, Status: domain.StatusActive},
	{ID: 5, Name: "Ethan Hunt", Email: "ethan@example.com", Role: domain.RoleUser, Status: domain.StatusInactive},
}

// SampleUsers returns a fresh copy of the built-in data set
func SampleUsers() []domain.User {
	return slices.Clone(sampleUsers)
}

type userFile struct {
	Users []domain.User `toml:"users"`
}

// LoadFile reads users from a TOML file of [[users]] tables
func LoadFile(path string) ([]domain.User, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read data file: %w", err)
	}
	return Parse(raw)
}

// Parse decodes and validates a TOML user list
func Parse(raw []byte) ([]domain.User, error) {
	var f userFile
	if err := toml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("failed to parse data file: %w", err)
	}
	if err := Validate(f.Users); err != nil {
		return nil, err
	}
	return f.Users, nil
}

// Validate checks id uniqueness and the role/status enums
func Validate(users []domain.User) error {
	seen := make(map[int]struct{}, len(users))
	for _, u := range users {
		if _, dup := seen[u.ID]; dup {
			return fmt.Errorf("%w: %d", ErrDuplicateID, u.ID)
		}
		seen[u.ID] = struct{}{}
		if !u.Role.Valid() {
			return fmt.Errorf("%w %d: role %q", ErrInvalidUser, u.ID, u.Role)
		}
		if !u.Status.Valid() {
			return fmt.Errorf("%w %d: status %q", ErrInvalidUser, u.ID, u.Status)
		}
	}
	return nil
}
