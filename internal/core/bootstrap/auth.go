package bootstrap

import (
	"time"

	"artist-portfolio/internal/core/auth"
	"artist-portfolio/internal/core/config"
)

func JWTer(c config.JWT) *auth.JWTer {
	return &auth.JWTer{
		Secret: []byte(c.Secret),
		Issuer: c.Issuer,
		TTL:    time.Duration(c.AccessTokenTTLMin) * time.Minute,
	}
}
