package users

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUser_String(t *testing.T) {
	tests := []struct {
		name string
		user *User
		want string
	}{
		{"regular", NewUser("john_doe", "john@example.com", 30), "User(username='john_doe', email='john@example.com', age=30)"},
		{"empty fields", NewUser("", "", 0), "User(username='', email='', age=0)"},
		{"negative age", NewUser("x", "not-an-email", -1), "User(username='x', email='not-an-email', age=-1)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.user.String())
			assert.Equal(t, tt.want, fmt.Sprint(tt.user))
		})
	}
}
