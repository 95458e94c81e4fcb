package dto

// AIDraftRequest petición de redacción asistida: Instruction dice qué hacer
// ("redacta una nota de reunión", "reestructura este alcance en secciones")
// y Source es el texto libre de partida (puede estar vacío para redactar
// desde cero).
type AIDraftRequest struct {
	Instruction string `json:"instruction"`
	Source      string `json:"source,omitempty"`
}

// AIDraftDTO resultado estructurado del modelo.
type AIDraftDTO struct {
	Title   string  `json:"title"`
	Body    string  `json:"body"`
	Summary string  `json:"summary"`
	// ConfidenceScore 0.0–1.0 reportado por el modelo sobre su propia salida.
	ConfidenceScore float64 `json:"confidence_score"`
}
