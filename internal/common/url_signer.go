package common

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"winterfieldday/logkeeper/internal/constants"
)

// ExportToken is a validated single-use export download token.
type ExportToken struct {
	Format    string
	TokenID   string
	ExpiresAt time.Time
}

// URLSignerService generates and validates presigned export download
// tokens. Single-use enforcement goes through the cache layer, so a
// sqlite-only deployment needs no extra infrastructure and a Redis
// deployment shares the used-token set across restarts.
type URLSignerService struct {
	secretKey []byte
	cache     CacheInterface
}

func NewURLSignerService(secretKey []byte, cache CacheInterface) *URLSignerService {
	return &URLSignerService{
		secretKey: secretKey,
		cache:     cache,
	}
}

// GenerateExportToken signs a single-use token for one export format.
func (s *URLSignerService) GenerateExportToken(format string, ttl time.Duration) (string, error) {
	tokenID := uuid.New().String()
	expiresAt := time.Now().Add(ttl)

	claims := jwt.MapClaims{
		"format": format,
		"jti":    tokenID,
		"exp":    expiresAt.Unix(),
		"iat":    time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(s.secretKey)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, nil
}

// ValidateToken parses a token, checks signature, expiry, and reuse.
func (s *URLSignerService) ValidateToken(tokenString string) (*ExportToken, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.MapClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secretKey, nil
	})

	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	claims, ok := token.Claims.(*jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}

	format, ok := (*claims)["format"].(string)
	if !ok {
		return nil, errors.New("missing or invalid format claim")
	}

	tokenID, ok := (*claims)["jti"].(string)
	if !ok {
		return nil, errors.New("missing or invalid jti claim")
	}

	expFloat, ok := (*claims)["exp"].(float64)
	if !ok {
		return nil, errors.New("missing or invalid exp claim")
	}
	expiresAt := time.Unix(int64(expFloat), 0)

	if time.Now().After(expiresAt) {
		return nil, errors.New("token expired")
	}

	if s.IsTokenUsed(tokenID) {
		return nil, errors.New("token already used")
	}

	return &ExportToken{
		Format:    format,
		TokenID:   tokenID,
		ExpiresAt: expiresAt,
	}, nil
}

// MarkTokenAsUsed records a redeemed token id (single-use enforcement).
func (s *URLSignerService) MarkTokenAsUsed(tokenID string, ttl time.Duration) {
	s.cache.Set(string(constants.CachePrefixUsedExportToken)+tokenID, "1", ttl)
}

// IsTokenUsed checks if a token has already been redeemed.
func (s *URLSignerService) IsTokenUsed(tokenID string) bool {
	_, found := s.cache.Get(string(constants.CachePrefixUsedExportToken) + tokenID)
	return found
}
