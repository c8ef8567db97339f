package services

import (
	"errors"
	"fmt"
	"log"
	"time"

	"catalog/internal/models"
	"catalog/internal/repositories"

	"github.com/dgrijalva/jwt-go"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials is returned on login when the email is unknown or the
// password does not match. Callers must not learn which one it was.
var ErrInvalidCredentials = errors.New("invalid credentials")

// AuthService handles business logic for authentication and authorization.
// Issued tokens carry a jti claim; logout puts the jti on a denylist so a
// revoked token fails validation until it would have expired anyway.
type AuthService struct {
	userRepo  repositories.UserRepository
	tokenRepo repositories.TokenRepository
	jwtSecret []byte
	tokenTTL  time.Duration
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repositories.UserRepository, tokenRepo repositories.TokenRepository, jwtSecret string, tokenTTL time.Duration) *AuthService {
	return &AuthService{
		userRepo:  userRepo,
		tokenRepo: tokenRepo,
		jwtSecret: []byte(jwtSecret),
		tokenTTL:  tokenTTL,
	}
}

// Login authenticates a user by email and password and returns a signed JWT.
func (s *AuthService) Login(email, password string) (string, error) {
	user, err := s.userRepo.GetByEmail(email)
	if err != nil {
		return "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": user.ID,
		"jti": uuid.New().String(),
		"exp": now.Add(s.tokenTTL).Unix(),
		"iat": now.Unix(),
	})

	tokenString, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}

	return tokenString, nil
}

// ValidateToken parses a JWT, verifies its signature and expiry, and rejects
// revoked tokens. It returns the claims if valid.
func (s *AuthService) ValidateToken(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.jwtSecret, nil
	})

	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	jti, _ := claims["jti"].(string)
	if jti == "" {
		return nil, fmt.Errorf("invalid token: missing jti")
	}
	revoked, err := s.tokenRepo.IsRevoked(jti)
	if err != nil {
		return nil, fmt.Errorf("failed to check token revocation: %w", err)
	}
	if revoked {
		return nil, fmt.Errorf("token has been revoked")
	}

	return claims, nil
}

// Logout revokes the presented token. The denylist entry expires with the
// token itself; expired entries are purged opportunistically.
func (s *AuthService) Logout(tokenString string) error {
	claims, err := s.ValidateToken(tokenString)
	if err != nil {
		return err
	}

	jti, _ := claims["jti"].(string)
	exp, _ := claims["exp"].(float64)
	expiresAt := time.Unix(int64(exp), 0)

	if err := s.tokenRepo.Revoke(jti, expiresAt); err != nil {
		return err
	}

	if err := s.tokenRepo.PurgeExpired(time.Now()); err != nil {
		log.Printf("Failed to purge expired token denylist entries: %v", err)
	}
	return nil
}

// CurrentUser resolves the authenticated principal from validated claims.
func (s *AuthService) CurrentUser(claims jwt.MapClaims) (*models.User, error) {
	sub, ok := claims["sub"].(float64) // JSON numbers decode as float64
	if !ok {
		return nil, fmt.Errorf("invalid token: missing subject")
	}
	return s.userRepo.GetByID(uint(sub))
}
