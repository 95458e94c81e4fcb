package space

// NavigationEntry entrada estática del menú de navegación: a qué ruta lleva
// y en qué espacios se muestra. El icono es opaco para este paquete (la UI
// lo resuelve contra su propia librería de iconos).
type NavigationEntry struct {
	Title  string  `json:"title"`
	Route  string  `json:"route"`
	Icon   string  `json:"icon"`
	Spaces []Space `json:"spaces"`
}

// visibleIn informa si la entrada se muestra en el espacio dado.
func (e NavigationEntry) visibleIn(s Space) bool {
	for _, sp := range e.Spaces {
		if sp == s {
			return true
		}
	}
	return false
}

// VisibleNavigation filtra las entradas visibles en el espacio activo
// preservando el orden relativo original. Un espacio ausente de todos los
// conjuntos produce una secuencia vacía, nunca un error.
func VisibleNavigation(entries []NavigationEntry, active Space) []NavigationEntry {
	out := make([]NavigationEntry, 0, len(entries))
	for _, e := range entries {
		if e.visibleIn(active) {
			out = append(out, e)
		}
	}
	return out
}

// DefaultNavigation devuelve la tabla canónica del menú. Configuración
// estática: las entradas no se crean ni destruyen en runtime.
func DefaultNavigation() []NavigationEntry {
	return []NavigationEntry{
		{Title: "Dashboard", Route: "/dashboard", Icon: "layout-dashboard", Spaces: []Space{SpaceInternal, SpaceClient, SpaceVendor}},
		{Title: "Cuentas", Route: "/accounts", Icon: "building", Spaces: []Space{SpaceInternal}},
		{Title: "Contactos", Route: "/contacts", Icon: "users", Spaces: []Space{SpaceInternal}},
		{Title: "Proyectos", Route: "/projects", Icon: "folder-kanban", Spaces: []Space{SpaceInternal, SpaceClient}},
		{Title: "Tareas", Route: "/tasks", Icon: "list-checks", Spaces: []Space{SpaceInternal, SpaceVendor}},
		{Title: "Facturas", Route: "/invoices", Icon: "receipt", Spaces: []Space{SpaceInternal, SpaceClient}},
		{Title: "Contratos", Route: "/contracts", Icon: "file-signature", Spaces: []Space{SpaceInternal, SpaceClient, SpaceVendor}},
		{Title: "Notas", Route: "/notes", Icon: "notebook-pen", Spaces: []Space{SpaceInternal}},
	}
}
