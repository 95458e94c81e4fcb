package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhondav/agencia-api/internal/application/dto"
	"github.com/jhondav/agencia-api/internal/domain/space"
)

// spaceChecker es el contrato mínimo que necesita el middleware para decidir
// acceso a un espacio. Lo implementa space.RoleSpaceMap; el uso de interfaz
// deja el middleware testeable con mapeos alternativos.
type spaceChecker interface {
	CanAccessSpace(user *space.User, target space.Space) bool
}

// RequireSpace devuelve un middleware Fiber que verifica que el usuario del
// token puede entrar al espacio dueño del grupo de rutas. Debe usarse
// DESPUÉS de AuthMiddleware.
//
// La verificación se repite aquí aunque la UI ya filtre la navegación: la
// autorización de servidor no confía en lo que el cliente dice ver.
//
// Comportamiento:
//   - 401 Unauthorized → no hay usuario en el contexto.
//   - 403 Forbidden (SPACE_DENIED) → el rol no tiene acceso al espacio.
func RequireSpace(target space.Space, checker spaceChecker) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := SessionUser(c)
		if user == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Code:    "UNAUTHORIZED",
				Message: "usuario no encontrado en el token",
			})
		}
		if !checker.CanAccessSpace(user, target) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Code:    "SPACE_DENIED",
				Message: "el rol '" + string(user.Role) + "' no tiene acceso al espacio '" + string(target) + "'",
			})
		}
		return c.Next()
	}
}
