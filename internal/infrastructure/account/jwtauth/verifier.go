package jwtauth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/riskibarqy/event-scoring/internal/domain/user"
	"github.com/riskibarqy/event-scoring/internal/usecase"
)

var errEmptySecret = errors.New("jwt secret is required")

// Claims mirrors the access tokens issued by the identity provider. Roles
// may arrive either as a single role claim or a roles list.
type Claims struct {
	jwt.RegisteredClaims
	Email string   `json:"email,omitempty"`
	Role  string   `json:"role,omitempty"`
	Roles []string `json:"roles,omitempty"`
}

// Verifier validates HS256 access tokens locally.
type Verifier struct {
	secret []byte
	issuer string
	now    func() time.Time
}

func NewVerifier(secret, issuer string) (*Verifier, error) {
	secret = strings.TrimSpace(secret)
	if secret == "" {
		return nil, errEmptySecret
	}
	return &Verifier{
		secret: []byte(secret),
		issuer: strings.TrimSpace(issuer),
		now:    time.Now,
	}, nil
}

func (v *Verifier) VerifyAccessToken(_ context.Context, token string) (user.Principal, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return user.Principal{}, fmt.Errorf("%w: token is required", usecase.ErrUnauthorized)
	}

	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(v.now),
		jwt.WithExpirationRequired(),
	}
	if v.issuer != "" {
		opts = append(opts, jwt.WithIssuer(v.issuer))
	}

	parsed, err := jwt.ParseWithClaims(token, &Claims{}, func(*jwt.Token) (any, error) {
		return v.secret, nil
	}, opts...)
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return user.Principal{}, fmt.Errorf("%w: token expired", usecase.ErrUnauthorized)
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return user.Principal{}, fmt.Errorf("%w: invalid token signature", usecase.ErrUnauthorized)
		default:
			return user.Principal{}, fmt.Errorf("%w: invalid token: %v", usecase.ErrUnauthorized, err)
		}
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return user.Principal{}, fmt.Errorf("%w: invalid token", usecase.ErrUnauthorized)
	}
	if strings.TrimSpace(claims.Subject) == "" {
		return user.Principal{}, fmt.Errorf("%w: token subject is empty", usecase.ErrUnauthorized)
	}

	roles := claims.Roles
	if claims.Role != "" {
		roles = append([]string{claims.Role}, roles...)
	}

	return user.Principal{
		UserID: claims.Subject,
		Email:  claims.Email,
		Role:   user.HighestRole(roles),
	}, nil
}

// Issue signs a token for principal. Used by local tooling and tests.
func (v *Verifier) Issue(principal user.Principal, ttl time.Duration) (string, error) {
	now := v.now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   principal.UserID,
			Issuer:    v.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		Email: principal.Email,
		Role:  string(principal.Role),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(v.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}
