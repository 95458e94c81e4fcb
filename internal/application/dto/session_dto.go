package dto

// SpaceChangeRequest petición de cambio de espacio activo.
type SpaceChangeRequest struct {
	Space string `json:"space"`
}

// SessionResponse estado de la sesión tal como lo consume la UI. Tras un
// cambio de espacio, ActiveSpace es la fuente de verdad: Changed=false
// indica que la petición fue denegada y quedó en no-op.
type SessionResponse struct {
	ActiveSpace     string   `json:"active_space"`
	PermittedSpaces []string `json:"permitted_spaces"`
	Changed         *bool    `json:"changed,omitempty"` // solo en respuestas de cambio
}

// NavigationEntryResponse entrada de menú visible en el espacio activo.
type NavigationEntryResponse struct {
	Title string `json:"title"`
	Route string `json:"route"`
	Icon  string `json:"icon"`
}
