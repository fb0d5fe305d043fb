package session

import (
	"context"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/mohsinRafiq-dev/furniture-mart/pkg/models"
)

// Authenticator validates credentials and produces the identity a session is
// minted for. A real deployment delegates to a backend auth endpoint returning
// a {user, token} pair; the manager accepts either implementation unchanged.
type Authenticator interface {
	Authenticate(ctx context.Context, email, password string) (models.User, error)
}

// AuthenticatorFunc adapts a function to the Authenticator interface.
type AuthenticatorFunc func(ctx context.Context, email, password string) (models.User, error)

func (f AuthenticatorFunc) Authenticate(ctx context.Context, email, password string) (models.User, error) {
	return f(ctx, email, password)
}

// DemoAuthenticator matches a single hardcoded credential pair. The password
// is bcrypt-hashed at construction so no plaintext is kept around.
type DemoAuthenticator struct {
	email        string
	passwordHash []byte
	user         models.User
}

func NewDemoAuthenticator(email, password string, user models.User) (*DemoAuthenticator, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	return &DemoAuthenticator{
		email:        strings.ToLower(email),
		passwordHash: hash,
		user:         user,
	}, nil
}

// NewDefaultDemoAuthenticator returns the demo admin login the storefront
// ships with.
func NewDefaultDemoAuthenticator() (*DemoAuthenticator, error) {
	return NewDemoAuthenticator("admin@furnituremart.com", "admin123", models.User{
		ID:    "demo-admin-1",
		Email: "admin@furnituremart.com",
		Name:  "Store Admin",
		Role:  models.RoleAdmin,
	})
}

func (a *DemoAuthenticator) Authenticate(_ context.Context, email, password string) (models.User, error) {
	if strings.ToLower(email) != a.email {
		return models.User{}, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(a.passwordHash, []byte(password)); err != nil {
		return models.User{}, ErrInvalidCredentials
	}
	return a.user, nil
}
