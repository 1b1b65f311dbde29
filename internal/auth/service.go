package auth

import (
	"crypto/subtle"
	"errors"

	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidCredentials = errors.New("invalid username or password")

// Service checks the single admin credential pair.
type Service struct {
	username     string
	passwordHash []byte
	issuer       *TokenIssuer
}

func NewService(username, passwordHash string, issuer *TokenIssuer) *Service {
	return &Service{
		username:     username,
		passwordHash: []byte(passwordHash),
		issuer:       issuer,
	}
}

// LOGIN
func (s *Service) Login(username, password string) (string, error) {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(s.username)) == 1
	// always pay for the hash so a wrong username costs the same
	passErr := bcrypt.CompareHashAndPassword(s.passwordHash, []byte(password))

	if !userOK || passErr != nil {
		return "", ErrInvalidCredentials
	}

	return s.issuer.Issue(s.username)
}

func (s *Service) Validate(token string) (*Claims, error) {
	return s.issuer.Validate(token)
}
