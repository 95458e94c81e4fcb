package memory

import (
	"sync"

	"github.com/jhondav/agencia-api/internal/application/session"
	"github.com/jhondav/agencia-api/internal/domain/space"
)

var _ session.Store = (*SessionStore)(nil)

// SessionStore almacén de sesiones en memoria, una por usuario. El espacio
// activo no sobrevive a un reinicio del proceso: al recrearse la sesión se
// vuelve a resolver el espacio inicial por rol, que es un estado seguro.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*space.SessionState
	rsm      space.RoleSpaceMap
}

// NewSessionStore construye el almacén con el mapeo rol → espacios.
func NewSessionStore(rsm space.RoleSpaceMap) *SessionStore {
	return &SessionStore{
		sessions: make(map[string]*space.SessionState),
		rsm:      rsm,
	}
}

// GetOrCreate devuelve la sesión del usuario, creándola si no existe.
func (s *SessionStore) GetOrCreate(user *space.User) *space.SessionState {
	if user == nil || user.ID == "" {
		// Sesión efímera no autenticada: sin espacio activo, nada que cachear.
		return space.NewSessionState(nil, s.rsm)
	}

	s.mu.RLock()
	st, ok := s.sessions[user.ID]
	s.mu.RUnlock()
	if ok {
		return st
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if st, ok := s.sessions[user.ID]; ok {
		return st
	}
	st = space.NewSessionState(user, s.rsm)
	s.sessions[user.ID] = st
	return st
}

// Drop destruye la sesión del usuario (logout).
func (s *SessionStore) Drop(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, userID)
}
