// Package jwt emite y valida los access tokens HS256 de la API.
package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// leeway tolerancia de reloj entre instancias al validar exp/iat.
const leeway = 5 * time.Second

var errEmptySecret = errors.New("jwt: secret vacío")

// Identity datos del usuario que viajan en el token. El middleware RBAC decide con Role sin ir a la DB.
type Identity struct {
	UserID   string
	Username string
	Role     string // "admin" | "user"
}

// Options secreto, emisor y vigencia. Issuer vacío no se verifica al validar.
type Options struct {
	Secret string
	Issuer string
	TTL    time.Duration
	// Now reloj; nil usa time.Now.
	Now func() time.Time
}

func (o Options) now() time.Time {
	if o.Now != nil {
		return o.Now()
	}
	return time.Now()
}

// claims el user id va en sub; jti identifica cada emisión.
type claims struct {
	jwt.RegisteredClaims
	Username string `json:"username"`
	Role     string `json:"role"`
}

// Generate firma un access token para id.
func Generate(opts Options, id Identity) (string, error) {
	if opts.Secret == "" {
		return "", errEmptySecret
	}
	now := opts.now()
	c := claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Issuer:    opts.Issuer,
			Subject:   id.UserID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(opts.TTL)),
		},
		Username: id.Username,
		Role:     id.Role,
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString([]byte(opts.Secret))
}

// Parse valida firma, exp e issuer y devuelve la identidad del token.
func Parse(opts Options, token string) (Identity, error) {
	if opts.Secret == "" {
		return Identity{}, errEmptySecret
	}
	parserOpts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithLeeway(leeway),
		jwt.WithTimeFunc(opts.now),
	}
	if opts.Issuer != "" {
		parserOpts = append(parserOpts, jwt.WithIssuer(opts.Issuer))
	}
	var c claims
	parsed, err := jwt.ParseWithClaims(token, &c, func(*jwt.Token) (any, error) {
		return []byte(opts.Secret), nil
	}, parserOpts...)
	if err != nil {
		return Identity{}, fmt.Errorf("jwt: %w", err)
	}
	if !parsed.Valid || c.Subject == "" {
		return Identity{}, errors.New("jwt: claims inválidos")
	}
	return Identity{UserID: c.Subject, Username: c.Username, Role: c.Role}, nil
}
