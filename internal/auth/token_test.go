package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestIssueAndVerify(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", time.Hour)
	user := &UserAccount{Role: RoleSeller}
	user.ID = uuid.New()

	token, err := issuer.Issue(user, time.Now().UTC())
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := issuer.Verify(token)
	assert.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, RoleSeller, claims.Role)
	assert.Equal(t, user.ID.String(), claims.Subject)
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	issuer := NewTokenIssuer("correct-secret", time.Hour)
	other := NewTokenIssuer("wrong-secret", time.Hour)

	user := &UserAccount{Role: RoleSeller}
	user.ID = uuid.New()

	token, err := issuer.Issue(user, time.Now().UTC())
	assert.NoError(t, err)

	_, err = other.Verify(token)
	assert.Error(t, err)
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", time.Minute)
	user := &UserAccount{Role: RoleSeller}
	user.ID = uuid.New()

	issuedAt := time.Now().UTC().Add(-2 * time.Hour)
	token, err := issuer.Issue(user, issuedAt)
	assert.NoError(t, err)

	_, err = issuer.Verify(token)
	assert.Error(t, err)
}

func TestIssueNilUser(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", time.Hour)
	_, err := issuer.Issue(nil, time.Now().UTC())
	assert.Error(t, err)
}

func TestExtractBearerToken(t *testing.T) {
	tests := []struct {
		name      string
		header    string
		want      string
		expectErr bool
	}{
		{
			name:   "valid bearer token",
			header: "Bearer abc.def.ghi",
			want:   "abc.def.ghi",
		},
		{
			name:   "lowercase scheme",
			header: "bearer abc.def.ghi",
			want:   "abc.def.ghi",
		},
		{
			name:      "empty header",
			header:    "",
			expectErr: true,
		},
		{
			name:      "wrong scheme",
			header:    "Basic dXNlcjpwYXNz",
			expectErr: true,
		},
		{
			name:      "missing token",
			header:    "Bearer ",
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractBearerToken(tt.header)
			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
