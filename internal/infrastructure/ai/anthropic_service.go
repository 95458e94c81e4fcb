package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/jhondav/agencia-api/internal/application/dto"
	"github.com/jhondav/agencia-api/internal/application/ports"
)

var _ ports.LLMService = (*AnthropicService)(nil)

const (
	anthropicMessagesURL = "https://api.anthropic.com/v1/messages"
	anthropicVersion     = "2023-06-01"

	// maxResponseBytes tope de lectura del cuerpo de respuesta.
	maxResponseBytes = 256 * 1024

	draftSystemPrompt = `Eres un redactor profesional de una agencia de servicios digitales.
Recibes una instrucción de redacción y, opcionalmente, un texto de partida.
Devuelve ÚNICAMENTE un objeto JSON válido (sin markdown, sin bloques de código` + " ```json" + `) con esta estructura exacta:
{
  "title": "<título breve del texto producido>",
  "body": "<el texto redactado o reestructurado, en español, listo para usar>",
  "summary": "<resumen de una frase, máximo 150 caracteres>",
  "confidence_score": <número decimal entre 0.0 y 1.0>
}

Reglas:
- body conserva TODOS los compromisos, cifras y fechas del texto de partida; nunca inventes datos.
- Si la instrucción pide reestructurar, reorganiza en secciones numeradas sin cambiar el fondo.
- confidence_score: 0.9 o más cuando la instrucción es clara; por debajo de 0.7 cuando hubo que asumir contexto.
- Nada de texto fuera del objeto JSON.`
)

// AnthropicService implementa LLMService contra la Messages API de Anthropic.
// Es un cliente REST plano sobre net/http; el SDK oficial no aporta nada aquí.
type AnthropicService struct {
	apiKey     string
	model      string
	httpClient *http.Client
}

// NewAnthropicService construye el adaptador. Con apiKey vacío cada llamada
// falla con un error descriptivo, así la app arranca sin credenciales de IA.
func NewAnthropicService(apiKey, model string) *AnthropicService {
	return &AnthropicService{
		apiKey: apiKey,
		model:  model,
		// El caso de uso ya limita a 10 s vía contexto; este timeout de red
		// solo cubre llamadas hechas sin deadline.
		httpClient: &http.Client{Timeout: 25 * time.Second},
	}
}

type anthropicRequest struct {
	Model     string             `json:"model"`
	MaxTokens int                `json:"max_tokens"`
	System    string             `json:"system"`
	Messages  []anthropicMessage `json:"messages"`
}

type anthropicMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type anthropicResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
	Error *struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error"`
}

// draftPayload es el contrato JSON que el system prompt le exige al modelo.
type draftPayload struct {
	Title           string  `json:"title"`
	Body            string  `json:"body"`
	Summary         string  `json:"summary"`
	ConfidenceScore float64 `json:"confidence_score"`
}

// DraftText pide a Claude el borrador estructurado y lo valida antes de
// devolverlo.
func (s *AnthropicService) DraftText(ctx context.Context, instruction, source string) (*dto.AIDraftDTO, error) {
	if s.apiKey == "" {
		return nil, fmt.Errorf("AI: ANTHROPIC_API_KEY no configurado")
	}

	var sb strings.Builder
	sb.WriteString("Instrucción: ")
	sb.WriteString(instruction)
	if source != "" {
		sb.WriteString("\n\nTexto de partida:\n")
		sb.WriteString(source)
	}

	reqBody, err := json.Marshal(anthropicRequest{
		Model:     s.model,
		MaxTokens: 2048,
		System:    draftSystemPrompt,
		Messages:  []anthropicMessage{{Role: "user", Content: sb.String()}},
	})
	if err != nil {
		return nil, fmt.Errorf("AI: serializar request: %w", err)
	}

	raw, err := s.post(ctx, reqBody)
	if err != nil {
		return nil, err
	}

	cleanJSON := extractJSON(raw)
	if cleanJSON == "" {
		return nil, fmt.Errorf("AI: el modelo no devolvió un objeto JSON (respuesta: %s)", raw)
	}

	var draft draftPayload
	if err := json.Unmarshal([]byte(cleanJSON), &draft); err != nil {
		return nil, fmt.Errorf("AI: parsear borrador: %w (JSON extraído: %s)", err, cleanJSON)
	}
	if strings.TrimSpace(draft.Body) == "" {
		return nil, fmt.Errorf("AI: borrador sin cuerpo de texto")
	}

	return &dto.AIDraftDTO{
		Title:           draft.Title,
		Body:            draft.Body,
		Summary:         draft.Summary,
		ConfidenceScore: clamp01(draft.ConfidenceScore),
	}, nil
}

// post ejecuta la llamada HTTP y devuelve el texto del primer bloque de
// contenido, traduciendo los errores de la API a errores de Go.
func (s *AnthropicService) post(ctx context.Context, body []byte) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, anthropicMessagesURL, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("AI: crear HTTP request: %w", err)
	}
	req.Header.Set("x-api-key", s.apiKey)
	req.Header.Set("anthropic-version", anthropicVersion)
	req.Header.Set("content-type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return "", fmt.Errorf("AI: timeout o cancelación: %w", ctx.Err())
		}
		return "", fmt.Errorf("AI: llamada HTTP fallida: %w", err)
	}
	defer resp.Body.Close()

	rawBody, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return "", fmt.Errorf("AI: leer respuesta: %w", err)
	}

	var parsed anthropicResponse
	if resp.StatusCode != http.StatusOK {
		if jsonErr := json.Unmarshal(rawBody, &parsed); jsonErr == nil && parsed.Error != nil {
			return "", fmt.Errorf("AI: Anthropic error (%s): %s", parsed.Error.Type, parsed.Error.Message)
		}
		return "", fmt.Errorf("AI: Anthropic HTTP %d: %s", resp.StatusCode, string(rawBody))
	}
	if err := json.Unmarshal(rawBody, &parsed); err != nil {
		return "", fmt.Errorf("AI: deserializar respuesta Anthropic: %w", err)
	}
	if len(parsed.Content) == 0 {
		return "", fmt.Errorf("AI: respuesta de Claude vacía")
	}
	return parsed.Content[0].Text, nil
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// jsonObjectRe captura desde el primer '{' hasta el último '}'.
var jsonObjectRe = regexp.MustCompile(`(?s)\{.*\}`)

// extractJSON recupera el objeto JSON de una respuesta de modelo que puede
// venir envuelta en ```json ... ``` o rodeada de texto libre.
func extractJSON(text string) string {
	text = strings.TrimSpace(text)

	if idx := strings.Index(text, "```"); idx != -1 {
		after := text[idx+3:]
		if nl := strings.Index(after, "\n"); nl != -1 {
			after = after[nl+1:]
		}
		if close := strings.LastIndex(after, "```"); close != -1 {
			after = after[:close]
		}
		text = strings.TrimSpace(after)
	}

	if strings.HasPrefix(text, "{") {
		return text
	}
	return strings.TrimSpace(jsonObjectRe.FindString(text))
}
