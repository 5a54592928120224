package jwttoken

import (
	"prisonerprofile/internal/platform/middleware"
)

// MiddlewareAdapter adapts JWTService to the auth middleware's validator
// interface, narrowing the claims to what handlers are allowed to see.
type MiddlewareAdapter struct {
	svc *JWTService
}

func NewMiddlewareAdapter(svc *JWTService) *MiddlewareAdapter {
	return &MiddlewareAdapter{svc: svc}
}

func (a *MiddlewareAdapter) ValidateToken(tokenString string) (*middleware.JWTClaims, error) {
	claims, err := a.svc.ValidateToken(tokenString)
	if err != nil {
		return nil, err
	}
	return &middleware.JWTClaims{
		StaffID: claims.StaffID,
		Name:    claims.Name,
	}, nil
}
