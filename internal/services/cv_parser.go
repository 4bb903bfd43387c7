package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"unicode/utf8"

	"github.com/davyken/Job-Fusion/internal/apperrors"
	"github.com/davyken/Job-Fusion/internal/models"
)

const (
	parseTemperature = 0.1
	parseMaxTokens   = 1000

	// Long CVs are truncated before prompting; the head of a CV carries
	// the fields we extract.
	maxPromptChars = 40000
)

// CVParserService extracts the structured {skills, experience, education}
// fields from raw CV text via the model endpoint. It has no persistence
// side effects; storing the result is the pipeline's job.
type CVParserService interface {
	ParseProfile(ctx context.Context, cvText string) (*models.ParsedProfile, error)
}

type cvParserService struct {
	chat          ChatClient
	promptBuilder *PromptBuilder
}

func NewCVParserService(chat ChatClient) CVParserService {
	return &cvParserService{
		chat:          chat,
		promptBuilder: NewPromptBuilder(),
	}
}

// ParseProfile implements CVParserService.
func (s *cvParserService) ParseProfile(ctx context.Context, cvText string) (*models.ParsedProfile, error) {
	if len(cvText) > maxPromptChars {
		cut := maxPromptChars
		// Never split a multi-byte rune.
		for cut > 0 && !utf8.RuneStart(cvText[cut]) {
			cut--
		}
		cvText = cvText[:cut]
	}

	systemPrompt, userPrompt := s.promptBuilder.BuildCVParsePrompt(cvText)

	log.Printf("🤖 Parsing CV with LLM (%d characters)", len(cvText))
	response, err := s.chat.Complete(ctx, systemPrompt, userPrompt, parseTemperature, parseMaxTokens)
	if err != nil {
		return nil, fmt.Errorf("cv parsing request failed: %w", err)
	}

	var profile models.ParsedProfile
	if err := parseJSONResponse(response, &profile); err != nil {
		return nil, fmt.Errorf("cv parsing: %w", err)
	}

	// Missing keys default rather than fail.
	if profile.Skills == nil {
		profile.Skills = models.SkillList{}
	}

	return &profile, nil
}

func parseJSONResponse(response string, target interface{}) error {
	jsonStr := extractJSON(response)

	if err := json.Unmarshal([]byte(jsonStr), target); err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrMalformedModelOutput, err)
	}

	return nil
}

// extractJSON tries to extract JSON from text that might contain markdown or other formatting
func extractJSON(text string) string {
	// Remove markdown code blocks
	text = strings.ReplaceAll(text, "```json", "")
	text = strings.ReplaceAll(text, "```", "")

	// Find JSON object or array boundaries
	startObj := strings.Index(text, "{")
	startArr := strings.Index(text, "[")
	endObj := strings.LastIndex(text, "}")
	endArr := strings.LastIndex(text, "]")

	// Determine if we have an object or array
	if startObj != -1 && endObj != -1 && endObj > startObj && (startArr == -1 || startObj < startArr) {
		// We have a JSON object
		return text[startObj : endObj+1]
	} else if startArr != -1 && endArr != -1 && endArr > startArr {
		// We have a JSON array
		return text[startArr : endArr+1]
	}

	return text
}
