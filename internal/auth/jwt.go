package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Service is the admin auth collaborator: a single bcrypt-hashed password
// exchanged for a short-lived HS256 token.
type Service struct {
	jwtSecret         []byte
	adminPasswordHash string
}

func NewService(jwtSecret, adminPasswordHash string) *Service {
	return &Service{
		jwtSecret:         []byte(jwtSecret),
		adminPasswordHash: adminPasswordHash,
	}
}

// Login checks the admin password against the configured hash.
func (s *Service) Login(password string) bool {
	return CheckPasswordHash(password, s.adminPasswordHash)
}

func (s *Service) GenerateToken() (string, error) {
	claims := jwt.MapClaims{
		"sub": "admin",
		"iat": time.Now().Unix(),
		"exp": time.Now().Add(time.Hour * 24).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtSecret)
}

func (s *Service) ValidateToken(tokenString string) error {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.jwtSecret, nil
	})

	if err != nil {
		return err
	}
	if !token.Valid {
		return fmt.Errorf("invalid token")
	}
	return nil
}
