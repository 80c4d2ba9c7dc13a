package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrEmptySecret se devuelve al firmar o verificar sin secret configurado.
var ErrEmptySecret = errors.New("jwt: secret vacío")

// Claims claims estándar más el usuario y su rol.
// Role viaja en el token solo como pista; el rol vigente se lee del usuario en cada petición.
type Claims struct {
	jwt.RegisteredClaims
	UserID string `json:"user_id"`
	Role   string `json:"role"`
}

// Issuer firma y verifica tokens HS256 de un emisor con una vigencia fija.
type Issuer struct {
	secret []byte
	name   string
	ttl    time.Duration
	now    func() time.Time
}

// NewIssuer construye el emisor. name se escribe en "iss" y se exige al verificar.
func NewIssuer(secret, name string, ttl time.Duration) *Issuer {
	return &Issuer{secret: []byte(secret), name: name, ttl: ttl, now: time.Now}
}

// WithClock reemplaza el reloj usado para iat/exp y la verificación (tests).
func (i *Issuer) WithClock(now func() time.Time) *Issuer {
	cp := *i
	cp.now = now
	return &cp
}

// Sign genera el token de userID con su rol.
func (i *Issuer) Sign(userID, role string) (string, error) {
	if len(i.secret) == 0 {
		return "", ErrEmptySecret
	}
	now := i.now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    i.name,
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
		},
		UserID: userID,
		Role:   role,
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
}

// Verify valida firma, algoritmo, emisor y expiración y devuelve los claims.
func (i *Issuer) Verify(tokenString string) (*Claims, error) {
	if len(i.secret) == 0 {
		return nil, ErrEmptySecret
	}
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(i.now),
	}
	if i.name != "" {
		opts = append(opts, jwt.WithIssuer(i.name))
	}
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(*jwt.Token) (interface{}, error) {
		return i.secret, nil
	}, opts...)
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, fmt.Errorf("jwt: token inválido")
	}
	if claims.UserID == "" {
		return nil, fmt.Errorf("jwt: claims sin user_id")
	}
	return claims, nil
}
