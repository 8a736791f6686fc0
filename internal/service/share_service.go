package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

var (
	ErrShareTokenInvalid = errors.New("share token invalid or expired")
)

// ShareService mints and verifies signed programme share links, so a user
// can hand a generated programme to someone without an API key.
type ShareService interface {
	MintToken(programmeID string) (string, error)
	VerifyToken(token string) (programmeID string, err error)
}

// shareClaims is the share-token payload.
type shareClaims struct {
	ProgrammeID string `json:"pid"`
	jwt.RegisteredClaims
}

type shareService struct {
	secret []byte
	ttl    time.Duration
}

// NewShareService creates a share service signing HS256 tokens with the
// given secret. ttl 0 falls back to 72 hours.
func NewShareService(secret string, ttl time.Duration) ShareService {
	if ttl <= 0 {
		ttl = 72 * time.Hour
	}
	return &shareService{secret: []byte(secret), ttl: ttl}
}

func (s *shareService) MintToken(programmeID string) (string, error) {
	now := time.Now()
	claims := shareClaims{
		ProgrammeID: programmeID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

func (s *shareService) VerifyToken(tokenString string) (string, error) {
	claims := &shareClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid || claims.ProgrammeID == "" {
		return "", ErrShareTokenInvalid
	}
	return claims.ProgrammeID, nil
}
