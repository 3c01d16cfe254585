package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	// AccessTokenExpiry bounds the lifetime of short-lived access tokens.
	AccessTokenExpiry = 15 * time.Minute
	// RefreshTokenExpiry bounds the lifetime of refresh tokens and their
	// Redis-side records.
	RefreshTokenExpiry = 7 * 24 * time.Hour
)

// Claims represents JWT claims. UserID is the record-store identifier of
// the authenticated user and the sole basis for ownership checks.
type Claims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// JWTService signs and verifies HS256 tokens.
type JWTService struct {
	secret []byte
}

// NewJWTService creates a new JWT service with the given secret.
func NewJWTService(secret string) *JWTService {
	return &JWTService{secret: []byte(secret)}
}

func (s *JWTService) newClaims(userID uuid.UUID, email string, ttl time.Duration) *Claims {
	now := time.Now()
	return &Claims{
		UserID: userID.String(),
		Email:  email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}
}

func (s *JWTService) sign(claims *Claims) (string, error) {
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// GenerateAccessToken issues a short-lived token carrying the user's
// identity.
func (s *JWTService) GenerateAccessToken(userID uuid.UUID, email string) (string, error) {
	return s.sign(s.newClaims(userID, email, AccessTokenExpiry))
}

// GenerateRefreshToken issues a long-lived token with a unique JTI. The
// JTI is returned separately so the caller can record it in the token
// store; only refresh tokens whose JTI is still stored may be redeemed.
func (s *JWTService) GenerateRefreshToken(userID uuid.UUID, email string) (tokenID string, token string, err error) {
	tokenID = uuid.New().String()
	claims := s.newClaims(userID, email, RefreshTokenExpiry)
	claims.ID = tokenID

	token, err = s.sign(claims)
	return tokenID, token, err
}

// ValidateToken verifies the signature and time bounds and returns the
// claims. Tokens signed with any method other than HMAC are rejected.
func (s *JWTService) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}

// ExtractTokenID returns the JTI of a refresh token. Access tokens carry
// no JTI and fail here.
func (s *JWTService) ExtractTokenID(tokenString string) (string, error) {
	claims, err := s.ValidateToken(tokenString)
	if err != nil {
		return "", err
	}
	if claims.ID == "" {
		return "", errors.New("token ID not found")
	}
	return claims.ID, nil
}

// UserIDFromClaims parses the user id carried in validated claims.
func UserIDFromClaims(claims *Claims) (uuid.UUID, error) {
	return uuid.Parse(claims.UserID)
}
