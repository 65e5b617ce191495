package auth

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/santamartha/hrportal/internal/app/models"
	"github.com/santamartha/hrportal/internal/pkg/apperrors"
)

// AccessTokenTTL is the fixed lifetime of an issued token
const AccessTokenTTL = time.Hour

// BearerPrefix is the exact, case-sensitive Authorization scheme prefix
const BearerPrefix = "Bearer "

// Token errors. Both wrap the apperrors categories so the HTTP layer maps them to 401.
var (
	ErrExpiredToken   = apperrors.NewCustomError(apperrors.ErrTokenExpired, "token expired")
	ErrMalformedToken = apperrors.NewCustomError(apperrors.ErrTokenInvalid, "invalid token")
	ErrMissingBearer  = apperrors.NewCustomError(apperrors.ErrUnauthorized, "missing or malformed bearer token")
)

// TokenConfig defines token signing settings
type TokenConfig struct {
	SecretKey string
	Issuer    string
	// Now overrides the clock; nil means time.Now
	Now func() time.Time
}

// TokenService issues and validates signed, stateless identity tokens
type TokenService struct {
	secret []byte
	issuer string
	now    func() time.Time
}

// NewTokenService creates a new token service
func NewTokenService(config TokenConfig) *TokenService {
	now := config.Now
	if now == nil {
		now = time.Now
	}
	return &TokenService{
		secret: []byte(config.SecretKey),
		issuer: config.Issuer,
		now:    now,
	}
}

// Claims defines JWT token content
type Claims struct {
	UserID   int64           `json:"user_id"`
	Username string          `json:"username"`
	Role     models.RoleType `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// Issue signs a token for user that expires AccessTokenTTL from now
func (s *TokenService) Issue(user *models.User) (string, error) {
	if user == nil || user.ID <= 0 {
		return "", fmt.Errorf("cannot issue token: %w", apperrors.ErrValidationFailed)
	}

	now := s.now()
	claims := &Claims{
		UserID:   user.ID,
		Username: user.Username,
		Role:     user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(AccessTokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    s.issuer,
			Subject:   strconv.FormatInt(user.ID, 10),
			ID:        uuid.NewString(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// ParseClaims verifies signature and expiry and returns the embedded claims
func (s *TokenService) ParseClaims(tokenString string) (*Claims, error) {
	if strings.TrimSpace(tokenString) == "" {
		return nil, ErrMalformedToken
	}

	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	}
	if s.issuer != "" {
		opts = append(opts, jwt.WithIssuer(s.issuer))
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return s.secret, nil
	}, opts...)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, fmt.Errorf("%w: %v", ErrMalformedToken, err)
	}

	if !token.Valid || claims.UserID <= 0 {
		return nil, ErrMalformedToken
	}

	return claims, nil
}

// Validate verifies a token and returns the embedded user id.
// It does not check that the user still exists.
func (s *TokenService) Validate(tokenString string) (int64, error) {
	claims, err := s.ParseClaims(tokenString)
	if err != nil {
		return 0, err
	}
	return claims.UserID, nil
}

// ExtractBearerToken returns the token following the literal "Bearer " prefix
func ExtractBearerToken(authHeader string) (string, error) {
	if !strings.HasPrefix(authHeader, BearerPrefix) {
		return "", ErrMissingBearer
	}
	token := strings.TrimPrefix(authHeader, BearerPrefix)
	if token == "" {
		return "", ErrMissingBearer
	}
	return token, nil
}
