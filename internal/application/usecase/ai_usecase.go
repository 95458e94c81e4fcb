package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jhondav/agencia-api/internal/application/dto"
	"github.com/jhondav/agencia-api/internal/application/ports"
)

// llmTimeout límite por llamada al proveedor de IA; más allá de esto el
// cliente recibe 408 y el goroutine del servidor queda libre.
const llmTimeout = 10 * time.Second

// AIUseCase orquesta la redacción asistida por IA: propuestas comerciales,
// emails de seguimiento, resúmenes de notas y alcances de contrato.
type AIUseCase struct {
	llm ports.LLMService
}

func NewAIUseCase(llm ports.LLMService) *AIUseCase {
	return &AIUseCase{llm: llm}
}

// Draft valida la instrucción y delega en el puerto LLM con timeout.
func (uc *AIUseCase) Draft(ctx context.Context, req dto.AIDraftRequest) (*dto.AIDraftDTO, error) {
	if strings.TrimSpace(req.Instruction) == "" {
		return nil, fmt.Errorf("instruction es obligatorio")
	}

	ctx, cancel := context.WithTimeout(ctx, llmTimeout)
	defer cancel()

	result, err := uc.llm.DraftText(ctx, req.Instruction, req.Source)
	if err != nil {
		return nil, fmt.Errorf("redacción IA: %w", err)
	}

	return result, nil
}
