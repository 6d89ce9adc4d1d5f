package jwt

import (
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/lestrrat-go/jwx/v2/jwt"

	"github.com/pontolabs/ponto-backend-go/internal/domain/member"
)

type Service interface {
	GenerateAccessToken(memberID string, companyID string, role member.Role) (token string, expiresAt int64, err error)
	JWTAuth() *jwtauth.JWTAuth
}

type JWTService struct {
	secretKey      string
	expirationTime string
	tokenAuth      *jwtauth.JWTAuth
}

func NewJWTService(secretKey string, expirationTime string) Service {
	return &JWTService{
		secretKey:      secretKey,
		expirationTime: expirationTime,
		tokenAuth:      jwtauth.New("HS256", []byte(secretKey), nil, jwt.WithAcceptableSkew(30*time.Second)),
	}
}

func (j *JWTService) JWTAuth() *jwtauth.JWTAuth {
	return j.tokenAuth
}

func (j *JWTService) GenerateAccessToken(memberID string, companyID string, role member.Role) (token string, expiresAt int64, err error) {
	expDuration, err := time.ParseDuration(j.expirationTime)
	if err != nil {
		return "", 0, err
	}
	expiresAt = time.Now().Add(expDuration).Unix()

	claims := map[string]interface{}{
		"member_id":  memberID,
		"company_id": companyID,
		"is_admin":   role == member.RoleAdmin,
		"type":       "access",
		"exp":        expiresAt,
	}

	_, tokenString, err := j.tokenAuth.Encode(claims)
	return tokenString, expiresAt, err
}
