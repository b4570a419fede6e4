package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	domain "github.com/BruksfildServices01/feedback-hub/internal/domain/auth"
	"github.com/BruksfildServices01/feedback-hub/internal/models"
)

type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// TokenService signs and verifies HS256 bearer tokens.
type TokenService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	return &TokenService{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}
}

func (s *TokenService) Sign(user *models.User) (string, error) {
	now := s.now()

	claims := Claims{
		Role: user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Parse verifies signature, algorithm and expiry. Every failure is
// reported as ErrInvalidToken.
func (s *TokenService) Parse(raw string) (domain.Principal, error) {
	if raw == "" {
		return domain.Principal{}, domain.ErrTokenRequired
	}

	var claims Claims
	token, err := jwt.ParseWithClaims(
		raw,
		&claims,
		func(*jwt.Token) (any, error) { return s.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil || !token.Valid {
		return domain.Principal{}, invalidToken(err)
	}

	role := domain.Role(claims.Role)
	if claims.Subject == "" || !role.Valid() {
		return domain.Principal{}, domain.ErrInvalidToken
	}

	return domain.Principal{UserID: claims.Subject, Role: role}, nil
}

func invalidToken(err error) error {
	if err == nil {
		return domain.ErrInvalidToken
	}
	return errors.Join(domain.ErrInvalidToken, err)
}
