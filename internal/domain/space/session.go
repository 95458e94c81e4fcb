package space

import "sync"

// SessionState estado mutable de una sesión: el usuario autenticado y el
// espacio activo. El espacio solo cambia vía RequestSpaceChange; se destruye
// al cerrar sesión. El mutex existe porque varios handlers HTTP pueden tocar
// la misma sesión de forma concurrente; la mutación es O(1) sobre un único
// campo, así que no hace falta nada más fino.
type SessionState struct {
	mu          sync.Mutex
	user        *User
	activeSpace Space
	rsm         RoleSpaceMap
}

// NewSessionState crea la sesión resolviendo el espacio inicial con
// DefaultSpaceFor (nunca se confía en "internal" sin verificar el rol).
// Un usuario nil o con rol inválido arranca sin espacio activo.
func NewSessionState(user *User, rsm RoleSpaceMap) *SessionState {
	st := &SessionState{user: user, rsm: rsm}
	if user != nil {
		if sp, err := rsm.DefaultSpaceFor(user.Role); err == nil {
			st.activeSpace = sp
		}
	}
	return st
}

// User devuelve el usuario de la sesión (nil si no autenticada).
func (st *SessionState) User() *User {
	st.mu.Lock()
	defer st.mu.Unlock()
	return st.user
}

// ActiveSpace devuelve el espacio activo actual. Los callers deben tratar
// este valor como la fuente de verdad tras pedir un cambio: la petición
// puede haber sido denegada sin error.
func (st *SessionState) ActiveSpace() Space {
	st.mu.Lock()
	defer st.mu.Unlock()
	return st.activeSpace
}

// RequestSpaceChange intenta activar el espacio destino. Si el usuario no
// puede ocuparlo, la petición es un no-op silencioso: sin error, sin cambio.
// Las navegaciones a espacios no autorizados son normales (bookmarks viejos,
// carrera durante un cambio de rol) y no deben romper la interacción.
// Devuelve true si el espacio activo quedó en target (incluida la
// transición idempotente target → target).
func (st *SessionState) RequestSpaceChange(target Space) bool {
	st.mu.Lock()
	defer st.mu.Unlock()
	if !st.rsm.CanAccessSpace(st.user, target) {
		return false
	}
	st.activeSpace = target
	return true
}

// Reset limpia la sesión al estado no autenticado (logout).
func (st *SessionState) Reset() {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.user = nil
	st.activeSpace = ""
}
