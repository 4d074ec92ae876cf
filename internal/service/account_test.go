package service

import (
	"testing"

	"github.com/okatz/marquee/internal/domain"
	"github.com/stretchr/testify/require"
)

func newTestAccounts(t *testing.T) (*AccountService, *SessionService) {
	t.Helper()
	st := newTestStore(t)
	session := NewSessionService(st, nil)
	return NewAccountService(st, session, nil), session
}

func TestRegisterThenSignIn(t *testing.T) {
	accounts, session := newTestAccounts(t)

	require.NoError(t, accounts.Register("u", "a@b.com", "Ab12cd"))
	require.True(t, session.IsSignedIn(), "registration completing signs the user in")

	require.NoError(t, session.SignOut())

	require.NoError(t, accounts.SignIn("a@b.com", "Ab12cd"))
	require.True(t, session.IsSignedIn())
}

func TestSignInWrongPassword(t *testing.T) {
	accounts, session := newTestAccounts(t)

	require.NoError(t, accounts.Register("u", "a@b.com", "Ab12cd"))
	require.NoError(t, session.SignOut())

	err := accounts.SignIn("a@b.com", "Xy99zz")
	require.ErrorIs(t, err, domain.ErrCredentialMismatch)
	require.False(t, session.IsSignedIn(), "mismatch must leave the flag unchanged")
}

func TestSignInUnknownUserSameError(t *testing.T) {
	accounts, _ := newTestAccounts(t)

	// No record stored at all; the error must not reveal that
	err := accounts.SignIn("nobody@b.com", "Ab12cd")
	require.ErrorIs(t, err, domain.ErrCredentialMismatch)
}

func TestRegisterValidation(t *testing.T) {
	tests := []struct {
		name     string
		username string
		email    string
		password string
		wantErr  error
	}{
		{"missing fields", "", "a@b.com", "Ab12cd", domain.ErrFieldsRequired},
		{"bad email", "u", "not-an-email", "Ab12cd", domain.ErrInvalidEmail},
		{"too short", "u", "a@b.com", "Ab1", domain.ErrWeakPassword},
		{"one digit", "u", "a@b.com", "Abcde1", domain.ErrWeakPassword},
		{"no uppercase", "u", "a@b.com", "ab12cd", domain.ErrWeakPassword},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			accounts, session := newTestAccounts(t)
			err := accounts.Register(tt.username, tt.email, tt.password)
			require.ErrorIs(t, err, tt.wantErr)
			require.False(t, session.IsSignedIn(), "validation failure must not mutate state")
		})
	}
}

func TestRegisterOverwritesWholesale(t *testing.T) {
	accounts, session := newTestAccounts(t)

	require.NoError(t, accounts.Register("first", "first@b.com", "Ab12cd"))
	require.NoError(t, accounts.Register("second", "second@b.com", "Cd34ef"))
	require.NoError(t, session.SignOut())

	require.ErrorIs(t, accounts.SignIn("first@b.com", "Ab12cd"), domain.ErrCredentialMismatch)
	require.NoError(t, accounts.SignIn("second@b.com", "Cd34ef"))
}

func TestValidPassword(t *testing.T) {
	require.True(t, validPassword("Ab12cd"))
	require.True(t, validPassword("PASS12word"))
	require.False(t, validPassword("Ab1cd"))   // too short
	require.False(t, validPassword("abc123"))  // no uppercase
	require.False(t, validPassword("Abcdef1")) // one digit
}
