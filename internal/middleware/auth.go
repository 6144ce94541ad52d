package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/wb-go/wbf/ginext"
)

const (
	ActorKey = "actor"

	RoleOperator = "operator"
	RoleAdmin    = "admin"
)

type OperatorClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// IssueOperatorToken signs an HS256 token for back-office tools.
func IssueOperatorToken(secret, subject, role string, ttl time.Duration) (string, error) {
	switch {
	case secret == "":
		return "", errors.New("signing secret is empty")
	case subject == "":
		return "", errors.New("subject is required")
	case role != RoleOperator && role != RoleAdmin:
		return "", fmt.Errorf("unknown role %q", role)
	case ttl <= 0:
		return "", errors.New("ttl must be positive")
	}

	now := time.Now()
	claims := OperatorClaims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

func ParseOperatorToken(secret, raw string) (*OperatorClaims, error) {
	token, err := jwt.ParseWithClaims(raw, &OperatorClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*OperatorClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}
	if claims.Subject == "" {
		return nil, errors.New("token has no subject")
	}
	return claims, nil
}

// RequireOperator admits bearer tokens with the operator or admin role and
// stores the token subject under ActorKey.
func RequireOperator(secret string) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		header := c.GetHeader("Authorization")
		raw, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || raw == "" {
			abort(c, http.StatusUnauthorized, "UNAUTHORIZED", "missing bearer token")
			return
		}

		claims, err := ParseOperatorToken(secret, raw)
		if err != nil {
			c.Set(ErrorKey, err.Error())
			abort(c, http.StatusUnauthorized, "UNAUTHORIZED", "invalid token")
			return
		}

		if claims.Role != RoleOperator && claims.Role != RoleAdmin {
			abort(c, http.StatusForbidden, "FORBIDDEN", "operator role required")
			return
		}

		c.Set(ActorKey, claims.Subject)
		c.Next()
	}
}
