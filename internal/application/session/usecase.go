package session

import (
	"github.com/jhondav/agencia-api/internal/application/dto"
	"github.com/jhondav/agencia-api/internal/domain"
	"github.com/jhondav/agencia-api/internal/domain/space"
)

// SessionUseCase expone el control de espacios a la capa HTTP: estado
// actual, cambio de espacio y navegación visible. Todo el trabajo real lo
// hace internal/domain/space; aquí solo se traduce a DTOs.
type SessionUseCase struct {
	store   Store
	rsm     space.RoleSpaceMap
	entries []space.NavigationEntry
}

// NewSessionUseCase construye el caso de uso con el mapeo y el menú
// estáticos cargados al arrancar.
func NewSessionUseCase(store Store, rsm space.RoleSpaceMap, entries []space.NavigationEntry) *SessionUseCase {
	return &SessionUseCase{store: store, rsm: rsm, entries: entries}
}

// Current devuelve el espacio activo y los permitidos para el usuario.
func (uc *SessionUseCase) Current(user *space.User) (*dto.SessionResponse, error) {
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	permitted, err := uc.rsm.PermittedSpaces(user.Role)
	if err != nil {
		return nil, err
	}
	st := uc.store.GetOrCreate(user)
	return &dto.SessionResponse{
		ActiveSpace:     string(st.ActiveSpace()),
		PermittedSpaces: spacesToStrings(permitted),
	}, nil
}

// ChangeSpace pide activar el espacio destino. La denegación es un no-op
// silencioso del dominio; aquí se reporta en Changed para que la UI pueda
// mostrar un aviso si quiere, sin que nada falle.
func (uc *SessionUseCase) ChangeSpace(user *space.User, target string) (*dto.SessionResponse, error) {
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	permitted, err := uc.rsm.PermittedSpaces(user.Role)
	if err != nil {
		return nil, err
	}
	st := uc.store.GetOrCreate(user)
	changed := st.RequestSpaceChange(space.Space(target))
	return &dto.SessionResponse{
		ActiveSpace:     string(st.ActiveSpace()),
		PermittedSpaces: spacesToStrings(permitted),
		Changed:         &changed,
	}, nil
}

// Navigation devuelve las entradas de menú visibles en el espacio activo,
// preservando el orden de configuración.
func (uc *SessionUseCase) Navigation(user *space.User) ([]dto.NavigationEntryResponse, error) {
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	st := uc.store.GetOrCreate(user)
	visible := space.VisibleNavigation(uc.entries, st.ActiveSpace())
	out := make([]dto.NavigationEntryResponse, len(visible))
	for i, e := range visible {
		out[i] = dto.NavigationEntryResponse{Title: e.Title, Route: e.Route, Icon: e.Icon}
	}
	return out, nil
}

// Logout destruye la sesión del usuario.
func (uc *SessionUseCase) Logout(userID string) {
	uc.store.Drop(userID)
}

func spacesToStrings(ss []space.Space) []string {
	out := make([]string, len(ss))
	for i, s := range ss {
		out[i] = string(s)
	}
	return out
}
