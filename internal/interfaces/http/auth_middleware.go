package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhondav/agencia-api/internal/application/dto"
	"github.com/jhondav/agencia-api/internal/domain/space"
	"github.com/jhondav/agencia-api/pkg/jwt"
)

// Locals keys para los claims extraídos del token en Fiber.
const (
	LocalUserID          = "user_id"
	LocalRole            = "role"
	LocalAccountID       = "account_id"
	LocalVendorContactID = "vendor_contact_id"
)

// AuthMiddleware valida el Bearer Token JWT y extrae los claims a c.Locals.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Authorization header requerido"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token vacío"})
		}
		claims, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"})
		}
		c.Locals(LocalUserID, claims.UserID)
		c.Locals(LocalRole, claims.Role)
		c.Locals(LocalAccountID, claims.AccountID)
		c.Locals(LocalVendorContactID, claims.VendorContactID)
		return c.Next()
	}
}

// GetUserID devuelve el UserID del contexto (después del middleware de auth).
func GetUserID(c *fiber.Ctx) string {
	return localString(c, LocalUserID)
}

// GetRole devuelve el rol del contexto (después del middleware de auth).
func GetRole(c *fiber.Ctx) string {
	return localString(c, LocalRole)
}

// GetAccountID devuelve la cuenta cliente vinculada (vacío para staff interno).
func GetAccountID(c *fiber.Ctx) string {
	return localString(c, LocalAccountID)
}

// GetVendorContactID devuelve el contacto de proveedor vinculado (roles vendor).
func GetVendorContactID(c *fiber.Ctx) string {
	return localString(c, LocalVendorContactID)
}

// SessionUser reconstruye la vista de usuario del control de espacios desde
// los claims del token. Devuelve nil si no hay usuario autenticado.
func SessionUser(c *fiber.Ctx) *space.User {
	userID := GetUserID(c)
	if userID == "" {
		return nil
	}
	return &space.User{
		ID:              userID,
		Role:            space.Role(GetRole(c)),
		AccountID:       GetAccountID(c),
		VendorContactID: GetVendorContactID(c),
	}
}

// RequireRole devuelve un middleware que solo deja pasar los roles listados.
// Debe usarse DESPUÉS de AuthMiddleware.
func RequireRole(roles ...space.Role) fiber.Handler {
	allowed := make(map[space.Role]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}
	return func(c *fiber.Ctx) error {
		role := space.Role(GetRole(c))
		if role == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_ROLE", Message: "rol no encontrado en el token"})
		}
		if _, ok := allowed[role]; !ok {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "rol sin permiso para esta operación"})
		}
		return c.Next()
	}
}

func localString(c *fiber.Ctx, key string) string {
	v := c.Locals(key)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
