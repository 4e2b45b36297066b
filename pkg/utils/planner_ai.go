package utils

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"vibecation/internal/models/response_models"
)

// PlannerAIInterface is the contract with the generative collaborator:
// a system instruction plus a user prompt in, a Trip-shaped document or an
// error out. No streaming, no partial results. Callers own timeouts via ctx
// and must treat any error as "no document".
type PlannerAIInterface interface {
	GenerateTripDocument(ctx context.Context, systemPrompt, userPrompt string) (*response_models.TripDocument, error)
	Close() error
}

// NewPlannerAI creates either an OpenAI or Gemini backed client.
func NewPlannerAI(provider, apiKey, model string) (PlannerAIInterface, error) {
	switch strings.ToLower(provider) {
	case "openai":
		return NewOpenAIPlannerClient(apiKey, model), nil
	case "gemini":
		return NewGeminiPlannerClient(apiKey, model)
	default:
		return nil, fmt.Errorf("unsupported provider: %s", provider)
	}
}

// DecodeTripDocument parses a model response into a TripDocument, tolerating
// the wrappers LLMs occasionally add around the requested schema.
func DecodeTripDocument(content string) (*response_models.TripDocument, error) {
	content = CleanJSONResponse(content)
	if !json.Valid([]byte(content)) {
		return nil, fmt.Errorf("not valid json")
	}

	var doc response_models.TripDocument
	if err := json.Unmarshal([]byte(content), &doc); err == nil && len(doc.Activities) > 0 {
		return &doc, nil
	}

	// Sometimes the document comes back wrapped in {"trip": ...} or
	// {"trips": [...]} despite the instruction.
	var wrapped struct {
		Trip  *response_models.TripDocument  `json:"trip"`
		Trips []response_models.TripDocument `json:"trips"`
	}
	if err := json.Unmarshal([]byte(content), &wrapped); err != nil {
		return nil, fmt.Errorf("unmarshal trip document: %w", err)
	}
	if wrapped.Trip != nil {
		return wrapped.Trip, nil
	}
	if len(wrapped.Trips) > 0 {
		return &wrapped.Trips[0], nil
	}
	return nil, fmt.Errorf("response contains no trip document")
}

// CleanJSONResponse removes markdown fences and surrounding prose so the
// remainder is the first complete JSON value in the response.
func CleanJSONResponse(response string) string {
	response = strings.ReplaceAll(response, "```json", "")
	response = strings.ReplaceAll(response, "```JSON", "")
	response = strings.ReplaceAll(response, "```", "")
	response = strings.TrimSpace(response)

	objStart := strings.Index(response, "{")
	arrStart := strings.Index(response, "[")

	if objStart != -1 && (arrStart == -1 || objStart < arrStart) {
		if end := findMatchingDelim(response, objStart, '{', '}'); end != -1 {
			response = response[objStart : end+1]
		}
	} else if arrStart != -1 {
		if end := findMatchingDelim(response, arrStart, '[', ']'); end != -1 {
			response = response[arrStart : end+1]
		}
	}

	return strings.TrimSpace(response)
}

func findMatchingDelim(s string, start int, open, close byte) int {
	if start >= len(s) || s[start] != open {
		return -1
	}

	depth := 0
	inString := false
	escaped := false

	for i := start; i < len(s); i++ {
		char := s[i]

		if escaped {
			escaped = false
			continue
		}
		if char == '\\' && inString {
			escaped = true
			continue
		}
		if char == '"' {
			inString = !inString
			continue
		}
		if inString {
			continue
		}

		switch char {
		case open:
			depth++
		case close:
			depth--
			if depth == 0 {
				return i
			}
		}
	}

	return -1
}
