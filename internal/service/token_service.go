package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/LawrenceKuria/task-manager-fullstack/internal/domain"
)

// Token validation failures. The three cases are deliberately distinct so
// callers can log and meter them separately, but the access guard maps
// them all to the same HTTP status.
var (
	ErrInvalidSignature = errors.New("token signature is invalid")
	ErrTokenExpired     = errors.New("token has expired")
	ErrTokenMalformed   = errors.New("token is malformed")
)

type jwtTokenService struct {
	secret []byte
	ttl    time.Duration
	issuer string
}

// NewTokenService creates an HMAC-SHA256 token service
func NewTokenService(secret string, ttl time.Duration, issuer string) TokenService {
	return &jwtTokenService{
		secret: []byte(secret),
		ttl:    ttl,
		issuer: issuer,
	}
}

func (s *jwtTokenService) Issue(user *domain.User) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(s.ttl)

	claims := jwt.MapClaims{
		"sub":      user.ID.String(),
		"username": user.Username,
		"role":     string(user.Role),
		"iss":      s.issuer,
		"iat":      now.Unix(),
		"exp":      expiresAt.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, expiresAt, nil
}

func (s *jwtTokenService) Validate(tokenString string) (*domain.Claims, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithExpirationRequired())
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, ErrTokenExpired
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return nil, ErrInvalidSignature
		default:
			return nil, ErrTokenMalformed
		}
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, ErrTokenMalformed
	}

	sub, err := mapClaims.GetSubject()
	if err != nil {
		return nil, ErrTokenMalformed
	}
	userID, err := uuid.Parse(sub)
	if err != nil {
		return nil, ErrTokenMalformed
	}

	username, _ := mapClaims["username"].(string)
	role, _ := mapClaims["role"].(string)

	return &domain.Claims{
		UserID:   userID,
		Username: username,
		Role:     domain.Role(role),
	}, nil
}
