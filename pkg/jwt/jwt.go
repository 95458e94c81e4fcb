package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims incluye los claims estándar JWT más los campos propios de la aplicación.
// Role viaja en el token para que los middlewares de espacio/rol decidan sin consultar la DB.
// AccountID y VendorContactID son los vínculos opcionales del usuario hacia
// la cuenta cliente o el contacto de proveedor (vacíos para el staff interno);
// solo se usan aguas abajo para filtrar datos, nunca para decidir espacios.
type Claims struct {
	jwt.RegisteredClaims
	UserID          string `json:"user_id"`
	Role            string `json:"role"`
	AccountID       string `json:"account_id,omitempty"`
	VendorContactID string `json:"vendor_contact_id,omitempty"`
}

// Options campos de negocio que viajan dentro del token.
type Options struct {
	UserID          string
	Role            string
	AccountID       string
	VendorContactID string
}

// Generate genera un token JWT firmado HS256 con los claims de la aplicación.
func Generate(secret, issuer string, expMinutes int, opts Options) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("jwt: secret vacío")
	}
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   opts.UserID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(expMinutes) * time.Minute)),
		},
		UserID:          opts.UserID,
		Role:            opts.Role,
		AccountID:       opts.AccountID,
		VendorContactID: opts.VendorContactID,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// Parse valida el token y devuelve los claims de la aplicación.
// Retorna error si el token es inválido, expirado o tiene firma incorrecta.
func Parse(secret, tokenString string) (*Claims, error) {
	if secret == "" {
		return nil, fmt.Errorf("jwt: secret vacío")
	}
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("claims inválidos")
	}
	return claims, nil
}
