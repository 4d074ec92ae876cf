package service

import (
	"encoding/json"
	"log/slog"
	"unicode"

	"github.com/go-playground/validator/v10"
	"github.com/okatz/marquee/internal/domain"
)

// AccountService handles registration and sign-in over the single stored
// UserRecord. Passwords are compared as stored plain fields; there is no
// account database and no hashing.
type AccountService struct {
	store    domain.Store
	session  *SessionService
	validate *validator.Validate
	logger   *slog.Logger
}

// NewAccountService creates an account manager over the store.
func NewAccountService(store domain.Store, session *SessionService, logger *slog.Logger) *AccountService {
	if logger == nil {
		logger = slog.Default()
	}
	v := validator.New()
	_ = v.RegisterValidation("storepass", func(fl validator.FieldLevel) bool {
		return validPassword(fl.Field().String())
	})
	return &AccountService{store: store, session: session, validate: v, logger: logger}
}

// Register validates the fields, overwrites the stored record wholesale
// and signs the user in. Validation failures mutate nothing.
func (s *AccountService) Register(username, email, password string) error {
	if username == "" || email == "" || password == "" {
		return domain.ErrFieldsRequired
	}
	if err := s.validateCredentials(email, password); err != nil {
		return err
	}

	record := domain.UserRecord{Username: username, Email: email, Password: password}
	data, err := json.Marshal(record)
	if err != nil {
		return err
	}
	if err := s.store.Set(domain.KeyUser, data); err != nil {
		return err
	}
	s.logger.Info("account registered", "username", username)
	return s.session.SignIn()
}

// SignIn validates the fields and compares them against the stored
// record. Any mismatch, including a missing record, returns the one
// generic ErrCredentialMismatch and leaves the session flag unchanged.
func (s *AccountService) SignIn(email, password string) error {
	if email == "" || password == "" {
		return domain.ErrFieldsRequired
	}
	if err := s.validateCredentials(email, password); err != nil {
		return err
	}

	data, ok := s.store.Get(domain.KeyUser)
	if !ok {
		return domain.ErrCredentialMismatch
	}
	var record domain.UserRecord
	if err := json.Unmarshal(data, &record); err != nil {
		s.logger.Warn("stored user record is undecodable", "error", err)
		return domain.ErrCredentialMismatch
	}
	if record.Email != email || record.Password != password {
		return domain.ErrCredentialMismatch
	}

	s.logger.Info("signed in", "username", record.Username)
	return s.session.SignIn()
}

// SignOut clears the session flag.
func (s *AccountService) SignOut() error {
	return s.session.SignOut()
}

func (s *AccountService) validateCredentials(email, password string) error {
	if err := s.validate.Var(email, "email"); err != nil {
		return domain.ErrInvalidEmail
	}
	if err := s.validate.Var(password, "storepass"); err != nil {
		return domain.ErrWeakPassword
	}
	return nil
}

// validPassword enforces the storefront password rule: at least 6
// characters, at least 2 digits, at least 1 uppercase letter.
func validPassword(password string) bool {
	if len(password) < 6 {
		return false
	}
	digits, upper := 0, 0
	for _, r := range password {
		switch {
		case unicode.IsDigit(r):
			digits++
		case unicode.IsUpper(r):
			upper++
		}
	}
	return digits >= 2 && upper >= 1
}
