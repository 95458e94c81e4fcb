package session

import "github.com/jhondav/agencia-api/internal/domain/space"

// Store puerto del almacén de sesiones activas. La clave es el ID de
// usuario: el token es stateless y el único estado vivo por sesión es el
// espacio activo. No se persiste entre reinicios; al perderse, el espacio
// inicial se vuelve a resolver por rol.
type Store interface {
	// GetOrCreate devuelve la sesión del usuario, creándola con el espacio
	// inicial resuelto por rol si no existe todavía.
	GetOrCreate(user *space.User) *space.SessionState
	// Drop destruye la sesión (logout).
	Drop(userID string)
}
