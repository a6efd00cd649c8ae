package models

import "github.com/golang-jwt/jwt/v5"

// UserClaims are the JWT claims attached to every authenticated request.
// The user id in here is the only identity the core trusts; no service
// reads an ambient global for it.
type UserClaims struct {
	jwt.RegisteredClaims
	UserID uint   `json:"user_id"`
	Email  string `json:"email"`
}
