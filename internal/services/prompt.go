package services

import (
	"fmt"
	"strings"

	"github.com/davyken/Job-Fusion/internal/models"
)

type PromptBuilder struct{}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

const cvParseSystemPrompt = `You are a CV parsing expert. Extract the following information from the CV content and return it as a valid JSON object with these exact keys:
- skills: array of technical skills and programming languages
- experience: string describing years of experience and key roles
- education: string describing highest education level and field of study

Return ONLY the JSON object, no additional text.`

// BuildCVParsePrompt creates the system/user prompt pair for structured
// field extraction from raw CV text.
func (pb *PromptBuilder) BuildCVParsePrompt(cvText string) (string, string) {
	return cvParseSystemPrompt, fmt.Sprintf("Please parse this CV content:\n\n%s", cvText)
}

// BuildJobScoringPrompt creates the prompt that scores every open job
// against the candidate's profile in a single call.
func (pb *PromptBuilder) BuildJobScoringPrompt(profile *models.UserCV, jobs []models.Job) string {
	var sb strings.Builder

	sb.WriteString("You are a job matching expert. Score how well each job below fits the candidate.\n\n")
	sb.WriteString("CANDIDATE PROFILE:\n")
	sb.WriteString(fmt.Sprintf("Skills: %s\n", strings.Join(profile.Skills, ", ")))
	sb.WriteString(fmt.Sprintf("Experience: %s\n", profile.Experience))
	sb.WriteString(fmt.Sprintf("Education: %s\n\n", profile.Education))

	sb.WriteString("OPEN JOBS:\n")
	for _, job := range jobs {
		sb.WriteString(fmt.Sprintf("- id: %d | title: %s | location: %s | requirements: %s\n",
			job.ID, job.Title, job.Location, job.Requirements))
	}

	sb.WriteString(`
Rate each job from 1 to 10 based on how well the candidate's skills, experience and education match the job requirements. A candidate with broad skills (e.g. a full stack developer) also qualifies for specialized roles covered by that breadth.

Return ONLY a JSON array of objects with exactly these keys, one entry per job:
[{"job_id": <id>, "score": <1-10>}]

No additional text.`)

	return sb.String()
}
