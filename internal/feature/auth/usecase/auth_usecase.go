package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/crypto/bcrypt"

	"task_backend/internal/feature/auth/domain/entity"
	"task_backend/internal/shared/apperr"
)

// UserRepository abstracts the persistence layer for user entities.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type UserRepository interface {
	// Create persists a new user. Returns ErrUserExists when the username or
	// email collides with an existing record.
	Create(ctx context.Context, user *entity.User) error

	// FindByLogin retrieves a user whose username or email equals login.
	// Returns ErrUserNotFound when no user matches.
	FindByLogin(ctx context.Context, login string) (*entity.User, error)

	// FindByID retrieves a user by identity.
	// Returns ErrUserNotFound when no user matches.
	FindByID(ctx context.Context, id uint) (*entity.User, error)
}

// TokenGenerator mints a signed token bound to a user identity.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (platform/jwt).
type TokenGenerator interface {
	Generate(userID uint) (string, error)
}

// Rules carries the registration validation policy. Lifting the rule set into
// a value keeps it swappable without touching control flow.
type Rules struct {
	// AllowedEmailDomains lists the email domains registration accepts.
	AllowedEmailDomains []string

	// MinPasswordLength is the minimum password length.
	MinPasswordLength int
}

const (
	minUsernameLength = 3
	maxUsernameLength = 30
)

// DefaultRules returns the rule set the service ships with.
func DefaultRules() Rules {
	return Rules{
		AllowedEmailDomains: []string{"gmail.com", "yahoo.com"},
		MinPasswordLength:   6,
	}
}

// authUsecase implements registration, login and the surrounding credential
// handling.
type authUsecase struct {
	users  UserRepository
	tokens TokenGenerator
	rules  Rules
}

// NewAuthUsecase creates a new instance of authUsecase.
func NewAuthUsecase(users UserRepository, tokens TokenGenerator, rules Rules) *authUsecase {
	if rules.MinPasswordLength <= 0 {
		rules.MinPasswordLength = DefaultRules().MinPasswordLength
	}
	if len(rules.AllowedEmailDomains) == 0 {
		rules.AllowedEmailDomains = DefaultRules().AllowedEmailDomains
	}
	return &authUsecase{
		users:  users,
		tokens: tokens,
		rules:  rules,
	}
}

// validateRegistration collects every failed rule so the client can fix all
// fields in one round trip.
func (u *authUsecase) validateRegistration(username, email, password, confirm string) []string {
	var details []string

	switch {
	case username == "":
		details = append(details, "username is required")
	case utf8.RuneCountInString(username) < minUsernameLength || utf8.RuneCountInString(username) > maxUsernameLength:
		details = append(details, fmt.Sprintf("username must be between %d and %d characters", minUsernameLength, maxUsernameLength))
	}

	switch {
	case email == "":
		details = append(details, "email is required")
	case !u.emailDomainAllowed(email):
		details = append(details, "email must use one of the accepted domains: "+strings.Join(u.rules.AllowedEmailDomains, ", "))
	}

	switch {
	case password == "":
		details = append(details, "password is required")
	case len(password) < u.rules.MinPasswordLength:
		details = append(details, fmt.Sprintf("password must be at least %d characters", u.rules.MinPasswordLength))
	}

	switch {
	case confirm == "":
		details = append(details, "password confirmation is required")
	case password != "" && password != confirm:
		details = append(details, "passwords do not match")
	}

	return details
}

// emailDomainAllowed reports whether email's domain is on the allowlist.
func (u *authUsecase) emailDomainAllowed(email string) bool {
	at := strings.LastIndex(email, "@")
	if at <= 0 || at == len(email)-1 {
		return false
	}
	domain := strings.ToLower(email[at+1:])
	for _, allowed := range u.rules.AllowedEmailDomains {
		if domain == strings.ToLower(allowed) {
			return true
		}
	}
	return false
}

// Register validates the input, persists a new user with a hashed password
// and returns a token bound to the new identity.
func (u *authUsecase) Register(ctx context.Context, username, email, password, confirm string) (string, *entity.User, error) {
	if details := u.validateRegistration(username, email, password, confirm); len(details) > 0 {
		return "", nil, apperr.Validation("validation failed", details...)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", nil, apperr.Internal("failed to hash password", err)
	}

	user := &entity.User{
		Username: username,
		Email:    strings.ToLower(email),
		Password: string(hashed),
	}
	if err := u.users.Create(ctx, user); err != nil {
		if errors.Is(err, ErrUserExists) {
			return "", nil, apperr.Conflict("username or email already exists")
		}
		return "", nil, apperr.Internal("failed to create user", err)
	}

	token, err := u.tokens.Generate(user.ID)
	if err != nil {
		return "", nil, apperr.Internal("failed to generate token", err)
	}

	return token, user, nil
}

// Login authenticates by username or email and returns a token on success.
// A missing account and a wrong password are indistinguishable to the caller,
// and a dummy bcrypt comparison runs when the account is unknown so response
// timing does not leak which case occurred.
func (u *authUsecase) Login(ctx context.Context, login, password string) (string, *entity.User, error) {
	user, err := u.users.FindByLogin(ctx, login)

	// Dummy hash keeps bcrypt.CompareHashAndPassword on every code path.
	passwordHash := "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"
	if err == nil {
		passwordHash = user.Password
	}

	compareErr := bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(password))

	if err != nil || compareErr != nil {
		return "", nil, apperr.Authentication("invalid credentials")
	}

	token, err := u.tokens.Generate(user.ID)
	if err != nil {
		return "", nil, apperr.Internal("failed to generate token", err)
	}

	return token, user, nil
}
