package ports

import (
	"context"

	"github.com/jhondav/agencia-api/internal/application/dto"
)

// LLMService define el puerto de salida para los servicios de redacción
// asistida por IA. Cualquier adaptador (Anthropic, Gemini, Ollama, mock)
// debe implementar esta interfaz: la aplicación solo conoce este contrato,
// no la implementación concreta (DIP).
type LLMService interface {
	// DraftText redacta o reestructura texto libre según la instrucción.
	// El contexto debe llevar un timeout para evitar bloqueos en llamadas
	// externas.
	DraftText(ctx context.Context, instruction, source string) (*dto.AIDraftDTO, error)
}
