package data

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"uikit/internal/domain"
)

func TestSampleUsers(t *testing.T) {
	users := SampleUsers()
	require.Len(t, users, 5)
	require.NoError(t, Validate(users))

	assert.Equal(t, domain.User{
		ID:     3,
		Name:   "Charlie Brown",
		Email:  "charlie@example.com",
		Role:   domain.RoleEditor,
		Status: domain.StatusInactive,
	}, users[2])

	// Callers get their own copy
	users[0].Name = "Mallory"
	assert.Equal(t, "Alice Johnson", SampleUsers()[0].Name)
}

func TestParse(t *testing.T) {
	raw := []byte(`
[[users]]
id = 10
name = "Grace Hopper"
email = "grace@example.com"
role = "Admin"
status = "Active"

[[users]]
id = 11
name = "Alan Turing"
email = "alan@example.com"
role = "Editor"
status = "Inactive"
`)
	users, err := Parse(raw)
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "Grace Hopper", users[0].Name)
	assert.Equal(t, domain.RoleEditor, users[1].Role)
	assert.Equal(t, domain.StatusInactive, users[1].Status)
}

func TestParseRejectsBadData(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr error
	}{
		{
			name: "duplicate id",
			raw: `
[[users]]
id = 1
role = "User"
status = "Active"
[[users]]
id = 1
role = "User"
status = "Active"
`,
			wantErr: ErrDuplicateID,
		},
		{
			name:    "unknown role",
			raw:     "[[users]]\nid = 1\nrole = \"Root\"\nstatus = \"Active\"\n",
			wantErr: ErrInvalidUser,
		},
		{
			name:    "unknown status",
			raw:     "[[users]]\nid = 1\nrole = \"User\"\nstatus = \"Banned\"\n",
			wantErr: ErrInvalidUser,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.raw))
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	_, err := Parse([]byte("[[users]\nid ="))
	assert.Error(t, err, "malformed toml should fail")
}

func TestParseEmptyFile(t *testing.T) {
	users, err := Parse(nil)
	require.NoError(t, err)
	assert.Empty(t, users)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "users.toml")
	content := "[[users]]\nid = 7\nname = \"Ada\"\nemail = \"ada@example.com\"\nrole = \"User\"\nstatus = \"Active\"\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	users, err := LoadFile(path)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, 7, users[0].ID)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
