// Package jwt verifies bearer tokens issued by the identity provider.
package jwt

import (
	"errors"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/lestrrat-go/jwx/v2/jwt"
)

const (
	ClaimTenantID = "tenant_id"
	ClaimUserID   = "sub"
)

var ErrTenantClaimMissing = errors.New("tenant_id claim is missing or invalid")

type Service interface {
	JWTAuth() *jwtauth.JWTAuth
	// IssueToken signs a token carrying the tenant claim. The identity
	// provider does this in production; local tooling and tests use it here.
	IssueToken(userID, tenantID string, ttl time.Duration) (string, error)
}

type JWTService struct {
	tokenAuth *jwtauth.JWTAuth
}

func NewJWTService(secretKey string) Service {
	return &JWTService{
		tokenAuth: jwtauth.New("HS256", []byte(secretKey), nil, jwt.WithAcceptableSkew(30*time.Second)),
	}
}

func (j *JWTService) JWTAuth() *jwtauth.JWTAuth {
	return j.tokenAuth
}

func (j *JWTService) IssueToken(userID, tenantID string, ttl time.Duration) (string, error) {
	claims := map[string]interface{}{
		ClaimUserID:   userID,
		ClaimTenantID: tenantID,
	}
	jwtauth.SetIssuedNow(claims)
	jwtauth.SetExpiryIn(claims, ttl)

	_, tokenString, err := j.tokenAuth.Encode(claims)
	if err != nil {
		return "", err
	}
	return tokenString, nil
}

// TenantFromClaims extracts the tenant id from verified token claims.
func TenantFromClaims(claims map[string]interface{}) (string, error) {
	tenantID, ok := claims[ClaimTenantID].(string)
	if !ok || tenantID == "" {
		return "", ErrTenantClaimMissing
	}
	return tenantID, nil
}
