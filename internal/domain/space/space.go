// Package space implementa el control de acceso por espacios de trabajo:
// qué particiones de la UI (interno, portal cliente, portal proveedor) puede
// ocupar cada rol, y qué entradas de navegación son visibles en cada una.
//
// Un espacio es una frontera de visibilidad, no de propiedad de datos: el
// filtrado por cuenta/tenant se resuelve aparte (repos + claims del JWT).
// Este control es una comodidad de UI; la autorización de datos en el
// servidor se aplica de forma independiente y redundante (ver middleware
// RequireSpace en la capa HTTP).
package space

import (
	"github.com/jhondav/agencia-api/internal/domain"
)

// Role función organizacional del usuario. Inmutable durante la sesión:
// un cambio de rol exige re-emitir el token.
type Role string

// Roles válidos.
const (
	RoleAdmin        Role = "admin"
	RoleSales        Role = "sales"
	RoleDelivery     Role = "delivery"
	RoleFinance      Role = "finance"
	RoleClientAdmin  Role = "client_admin"
	RoleClientMember Role = "client_member"
	RoleVendor       Role = "vendor"
)

// Space partición de UI/navegación para un tipo de interlocutor.
type Space string

// Espacios válidos.
const (
	SpaceInternal Space = "internal"
	SpaceClient   Space = "client"
	SpaceVendor   Space = "vendor"
)

// AllSpaces orden canónico de los espacios. El orden importa: DefaultSpaceFor
// toma el primero permitido según esta secuencia.
var AllSpaces = []Space{SpaceInternal, SpaceClient, SpaceVendor}

// AllRoles conjunto cerrado de roles, útil para validaciones y tests.
var AllRoles = []Role{
	RoleAdmin, RoleSales, RoleDelivery, RoleFinance,
	RoleClientAdmin, RoleClientMember, RoleVendor,
}

// RoleSpaceMap mapeo total rol → espacios permitidos. Es configuración
// estática e inmutable: se carga una vez al arrancar y se comparte en solo
// lectura. Agregar un rol o espacio es un cambio de datos, no de código.
type RoleSpaceMap map[Role][]Space

// DefaultRoleSpaceMap devuelve la tabla canónica de la aplicación.
// Invariantes: todo rol mapea a un conjunto no vacío y la unión de todos
// los conjuntos cubre los tres espacios (ningún espacio huérfano).
func DefaultRoleSpaceMap() RoleSpaceMap {
	return RoleSpaceMap{
		RoleAdmin:        {SpaceInternal, SpaceClient, SpaceVendor},
		RoleSales:        {SpaceInternal},
		RoleDelivery:     {SpaceInternal},
		RoleFinance:      {SpaceInternal},
		RoleClientAdmin:  {SpaceClient},
		RoleClientMember: {SpaceClient},
		RoleVendor:       {SpaceVendor},
	}
}

// PermittedSpaces devuelve los espacios permitidos para el rol.
// Rol vacío (sesión no autenticada) devuelve conjunto vacío sin error.
// Un rol fuera del mapeo devuelve ErrInvalidRole: indica un dato corrupto
// aguas arriba y no debe degradarse en silencio a "sin acceso".
func (m RoleSpaceMap) PermittedSpaces(role Role) ([]Space, error) {
	if role == "" {
		return nil, nil
	}
	spaces, ok := m[role]
	if !ok {
		return nil, domain.ErrInvalidRole
	}
	out := make([]Space, len(spaces))
	copy(out, spaces)
	return out, nil
}

// CanAccessSpace informa si el usuario puede ocupar el espacio dado.
// Predicado puro: usuario ausente, sin rol o con rol desconocido → false.
func (m RoleSpaceMap) CanAccessSpace(user *User, target Space) bool {
	if user == nil || user.Role == "" {
		return false
	}
	spaces, err := m.PermittedSpaces(user.Role)
	if err != nil {
		return false
	}
	for _, s := range spaces {
		if s == target {
			return true
		}
	}
	return false
}

// DefaultSpaceFor resuelve el espacio inicial de una sesión: el primero
// permitido según el orden canónico. Nunca se asume "internal" a ciegas:
// un rol sin acceso interno no debe arrancar dentro de él.
func (m RoleSpaceMap) DefaultSpaceFor(role Role) (Space, error) {
	spaces, err := m.PermittedSpaces(role)
	if err != nil {
		return "", err
	}
	for _, canonical := range AllSpaces {
		for _, s := range spaces {
			if s == canonical {
				return canonical, nil
			}
		}
	}
	// Rol sin espacios sería una violación del invariante de configuración.
	return "", domain.ErrInvalidRole
}

// Validate comprueba los invariantes del mapeo: conjuntos no vacíos y
// cobertura completa de AllSpaces. Pensado para ejecutarse al cargar la
// configuración y en tests con mapeos alternativos.
func (m RoleSpaceMap) Validate() error {
	if len(m) == 0 {
		return domain.ErrInvalidInput
	}
	covered := make(map[Space]bool, len(AllSpaces))
	for _, spaces := range m {
		if len(spaces) == 0 {
			return domain.ErrInvalidInput
		}
		for _, s := range spaces {
			covered[s] = true
		}
	}
	for _, s := range AllSpaces {
		if !covered[s] {
			return domain.ErrInvalidInput
		}
	}
	return nil
}

// User vista de sesión del usuario autenticado. Los vínculos AccountID y
// VendorContactID solo sirven para filtrar datos aguas abajo; la lógica de
// espacios usa únicamente Role.
type User struct {
	ID              string
	Name            string
	Email           string
	Role            Role
	AccountID       string
	VendorContactID string
}
