package services

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/davyken/Job-Fusion/internal/apperrors"
)

type stubChatClient struct {
	response   string
	err        error
	calls      int
	lastSystem string
	lastUser   string
}

func (s *stubChatClient) Complete(_ context.Context, systemPrompt, userPrompt string, _ float32, _ int) (string, error) {
	s.calls++
	s.lastSystem = systemPrompt
	s.lastUser = userPrompt
	if s.err != nil {
		return "", s.err
	}
	return s.response, nil
}

func TestParseProfile(t *testing.T) {
	stub := &stubChatClient{
		response: `{"skills": ["Go", "PostgreSQL"], "experience": "5 years backend", "education": "BS CS"}`,
	}
	parser := NewCVParserService(stub)

	profile, err := parser.ParseProfile(context.Background(), "some cv text")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !reflect.DeepEqual([]string(profile.Skills), []string{"Go", "PostgreSQL"}) {
		t.Fatalf("unexpected skills: %v", profile.Skills)
	}
	if profile.Experience != "5 years backend" {
		t.Fatalf("unexpected experience: %q", profile.Experience)
	}
	if profile.Education != "BS CS" {
		t.Fatalf("unexpected education: %q", profile.Education)
	}

	if !strings.Contains(stub.lastSystem, "CV parsing expert") {
		t.Fatalf("expected extraction system prompt, got %q", stub.lastSystem)
	}
	if !strings.Contains(stub.lastUser, "some cv text") {
		t.Fatalf("expected cv text in user prompt")
	}
}

func TestParseProfileWrappedJSON(t *testing.T) {
	payload := `{"skills": ["Java", "SQL"], "experience": "2 years", "education": "BS CS"}`

	cases := []struct {
		name     string
		response string
	}{
		{"bare", payload},
		{"code fence", "```json\n" + payload + "\n```"},
		{"prose", "Sure! Here is the parsed CV:\n\n" + payload + "\n\nLet me know if you need anything else."},
	}

	var profiles []string
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			parser := NewCVParserService(&stubChatClient{response: tc.response})
			profile, err := parser.ParseProfile(context.Background(), "cv")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			profiles = append(profiles, strings.Join(profile.Skills, ",")+"|"+profile.Experience+"|"+profile.Education)
		})
	}

	for i := 1; i < len(profiles); i++ {
		if profiles[i] != profiles[0] {
			t.Fatalf("wrapped responses should parse identically: %q vs %q", profiles[i], profiles[0])
		}
	}
}

func TestParseProfileMissingKeysDefault(t *testing.T) {
	parser := NewCVParserService(&stubChatClient{response: `{}`})

	profile, err := parser.ParseProfile(context.Background(), "cv")
	if err != nil {
		t.Fatalf("missing keys should not be an error, got %v", err)
	}

	if profile.Skills == nil || len(profile.Skills) != 0 {
		t.Fatalf("expected empty skill list, got %v", profile.Skills)
	}
	if profile.Experience != "" || profile.Education != "" {
		t.Fatalf("expected empty strings, got %q / %q", profile.Experience, profile.Education)
	}
}

func TestParseProfileSkillsAsCommaString(t *testing.T) {
	parser := NewCVParserService(&stubChatClient{
		response: `{"skills": "Go, SQL , Docker", "experience": "", "education": ""}`,
	})

	profile, err := parser.ParseProfile(context.Background(), "cv")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !reflect.DeepEqual([]string(profile.Skills), []string{"Go", "SQL", "Docker"}) {
		t.Fatalf("expected normalized skills, got %v", profile.Skills)
	}
}

func TestParseProfileRemoteError(t *testing.T) {
	remoteErr := &apperrors.RemoteServiceError{StatusCode: 429, Err: errors.New("rate limited")}
	parser := NewCVParserService(&stubChatClient{err: remoteErr})

	_, err := parser.ParseProfile(context.Background(), "cv")
	if err == nil {
		t.Fatal("expected error")
	}

	var got *apperrors.RemoteServiceError
	if !errors.As(err, &got) || got.StatusCode != 429 {
		t.Fatalf("expected RemoteServiceError with status, got %v", err)
	}
}

func TestParseProfileMalformedOutput(t *testing.T) {
	parser := NewCVParserService(&stubChatClient{response: "I cannot parse this CV, sorry."})

	_, err := parser.ParseProfile(context.Background(), "cv")
	if !errors.Is(err, apperrors.ErrMalformedModelOutput) {
		t.Fatalf("expected ErrMalformedModelOutput, got %v", err)
	}
	if !apperrors.IsRemoteFailure(err) {
		t.Fatal("malformed output should count as a remote failure")
	}
}

func TestParseProfileTruncatesLongText(t *testing.T) {
	stub := &stubChatClient{response: `{"skills": []}`}
	parser := NewCVParserService(stub)

	longText := strings.Repeat("x", maxPromptChars+5000)
	if _, err := parser.ParseProfile(context.Background(), longText); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(stub.lastUser) > maxPromptChars+200 {
		t.Fatalf("expected prompt to be truncated, got %d characters", len(stub.lastUser))
	}
}

func TestParseProfileTruncationKeepsValidUTF8(t *testing.T) {
	stub := &stubChatClient{response: `{"skills": []}`}
	parser := NewCVParserService(stub)

	// The leading ASCII byte shifts every two-byte rune off the cutoff
	// alignment, so a naive byte slice would split one in half.
	longText := "a" + strings.Repeat("é", maxPromptChars)
	if _, err := parser.ParseProfile(context.Background(), longText); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !utf8.ValidString(stub.lastUser) {
		t.Fatal("truncated prompt contains an invalid UTF-8 sequence")
	}
}
