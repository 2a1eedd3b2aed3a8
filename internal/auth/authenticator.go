package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/myung2-love/Miniter/internal/models"
	"github.com/myung2-love/Miniter/internal/repositories"
)

var (
	// ErrDuplicateEmail indicates the email address is already registered.
	ErrDuplicateEmail = errors.New("email already registered")
	// ErrInvalidCredentials indicates a failed login. It deliberately does not
	// distinguish an unknown email from a wrong password.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrUnauthenticated indicates a missing, malformed, forged, or expired
	// session token.
	ErrUnauthenticated = errors.New("invalid session token")
)

// UserStore captures the credential-store operations the authenticator needs.
type UserStore interface {
	Create(ctx context.Context, user models.User) (int64, error)
	FindByEmail(ctx context.Context, email string) (models.User, error)
}

// Authenticator verifies login credentials and issues and validates signed,
// time-limited session tokens. Tokens are self-contained, so validation never
// touches the store.
type Authenticator struct {
	users    UserStore
	secret   []byte
	tokenTTL time.Duration

	// NowFunc overrides the clock in tests.
	NowFunc func() time.Time
}

// NewAuthenticator constructs an Authenticator signing tokens with the
// provided symmetric secret.
func NewAuthenticator(users UserStore, secret []byte, tokenTTL time.Duration) *Authenticator {
	if users == nil {
		panic("auth: user store must not be nil")
	}
	if len(secret) == 0 {
		panic("auth: token secret must not be empty")
	}
	return &Authenticator{users: users, secret: secret, tokenTTL: tokenTTL}
}

// Register hashes the password with bcrypt and persists a new user. The
// returned user carries the generated identifier with the hash cleared.
func (a *Authenticator) Register(ctx context.Context, name, email, profile, password string) (models.User, error) {
	email = strings.TrimSpace(strings.ToLower(email))

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, fmt.Errorf("hash password: %w", err)
	}

	user := models.User{
		Name:      name,
		Email:     email,
		Profile:   profile,
		Password:  string(hashed),
		CreatedAt: a.now(),
	}

	id, err := a.users.Create(ctx, user)
	if err != nil {
		if errors.Is(err, repositories.ErrConflict) {
			return models.User{}, ErrDuplicateEmail
		}
		return models.User{}, fmt.Errorf("create user: %w", err)
	}

	user.ID = id
	user.Password = ""
	return user, nil
}

// Login verifies the credentials and issues a session token on success.
func (a *Authenticator) Login(ctx context.Context, email, password string) (string, error) {
	email = strings.TrimSpace(strings.ToLower(email))

	user, err := a.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", fmt.Errorf("find user by email: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return "", ErrInvalidCredentials
	}

	token, err := SignToken(user.ID, a.secret, a.tokenTTL)
	if err != nil {
		return "", fmt.Errorf("issue session token: %w", err)
	}

	return token, nil
}

// Authenticate resolves a bearer token to a user identifier. It has no side
// effects and is safe to call concurrently and repeatedly with the same token.
func (a *Authenticator) Authenticate(tokenString string) (int64, error) {
	userID, err := VerifyToken(tokenString, a.secret)
	if err != nil {
		return 0, ErrUnauthenticated
	}
	return userID, nil
}

func (a *Authenticator) now() time.Time {
	if a.NowFunc != nil {
		return a.NowFunc()
	}
	return time.Now().UTC()
}
