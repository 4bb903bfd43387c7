package services

import (
	"bytes"
	"context"
	"encoding/json"
	"log"
	"sort"
	"strconv"
	"strings"

	"github.com/davyken/Job-Fusion/internal/config"
	"github.com/davyken/Job-Fusion/internal/models"
)

const (
	scoreTemperature = 0.3
	scoreMaxTokens   = 2000
)

// MatchService ranks the open-job catalog against a candidate profile.
// The primary path asks the model endpoint for scores; any remote failure
// (transport, status, timeout, unparseable output) switches to deterministic
// keyword matching, so a request never fails because the model is down.
type MatchService interface {
	Match(ctx context.Context, profile *models.UserCV, jobs []models.Job) []models.MatchResult
}

type matchService struct {
	chat          ChatClient
	promptBuilder *PromptBuilder
	cfg           config.MatchingConfig
}

func NewMatchService(chat ChatClient, cfg config.MatchingConfig) MatchService {
	if cfg.MaxResults <= 0 {
		cfg.MaxResults = 10
	}
	return &matchService{
		chat:          chat,
		promptBuilder: NewPromptBuilder(),
		cfg:           cfg,
	}
}

// Match implements MatchService.
func (m *matchService) Match(ctx context.Context, profile *models.UserCV, jobs []models.Job) []models.MatchResult {
	if len(jobs) == 0 {
		return []models.MatchResult{}
	}

	// Without a stored profile there is nothing to personalize on.
	if profile == nil {
		return m.unscored(jobs)
	}

	results, err := m.scoreRemote(ctx, profile, jobs)
	if err != nil {
		log.Printf("⚠️  Remote scoring unavailable, using keyword fallback: %v", err)
		return m.keywordMatch(profile.Skills, jobs)
	}

	return results
}

// jobScore is one entry of the model's scoring reply. The model is
// inconsistent about whether ids come back quoted, so JobID tolerates both.
type jobScore struct {
	JobID flexString `json:"job_id"`
	Score float64    `json:"score"`
}

type flexString string

func (f *flexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	var s string
	if len(data) > 0 && data[0] == '"' {
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		s = strings.TrimSpace(s)
	} else {
		s = string(data)
	}
	// "1.0" and "1" name the same job.
	if v, err := strconv.ParseFloat(s, 64); err == nil {
		s = strconv.FormatFloat(v, 'f', -1, 64)
	}
	*f = flexString(s)
	return nil
}

func (m *matchService) scoreRemote(ctx context.Context, profile *models.UserCV, jobs []models.Job) ([]models.MatchResult, error) {
	prompt := m.promptBuilder.BuildJobScoringPrompt(profile, jobs)

	response, err := m.chat.Complete(ctx, "", prompt, scoreTemperature, scoreMaxTokens)
	if err != nil {
		return nil, err
	}

	var scores []jobScore
	if err := parseJSONResponse(response, &scores); err != nil {
		return nil, err
	}

	scoreByID := make(map[string]float64, len(scores))
	for _, s := range scores {
		scoreByID[string(s.JobID)] = s.Score
	}

	results := make([]models.MatchResult, 0, len(jobs))
	for _, job := range jobs {
		score, ok := scoreByID[strconv.FormatUint(uint64(job.ID), 10)]
		if !ok {
			// Jobs the model skipped get a neutral score.
			score = m.cfg.DefaultScore
		}
		results = append(results, models.MatchResult{Job: job, Score: score})
	}

	// Stable sort keeps catalog order for ties.
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	ranked := make([]models.MatchResult, 0, m.cfg.MaxResults)
	for _, result := range results {
		if result.Score < m.cfg.MinScore {
			continue
		}
		ranked = append(ranked, result)
		if len(ranked) == m.cfg.MaxResults {
			break
		}
	}

	return ranked, nil
}

// keywordMatch is the deterministic fallback: a job matches when any
// expanded skill appears, case-insensitively, in its title or requirements.
// Matches keep catalog order and carry no score threshold.
func (m *matchService) keywordMatch(skills models.SkillList, jobs []models.Job) []models.MatchResult {
	expanded := expandSkills(skills)
	if len(expanded) == 0 {
		return m.unscored(jobs)
	}

	results := make([]models.MatchResult, 0, m.cfg.MaxResults)
	for _, job := range jobs {
		haystack := strings.ToLower(job.Title + " " + job.Requirements)
		for _, skill := range expanded {
			if strings.Contains(haystack, skill) {
				results = append(results, models.MatchResult{Job: job, Score: m.cfg.DefaultScore})
				break
			}
		}
		if len(results) == m.cfg.MaxResults {
			break
		}
	}

	return results
}

// expandSkills lowercases and trims the skill set, and widens full-stack
// candidates to the frontend/backend spellings job postings actually use.
func expandSkills(skills models.SkillList) []string {
	expanded := make([]string, 0, len(skills))
	fullstack := false

	for _, skill := range skills {
		skill = strings.ToLower(strings.TrimSpace(skill))
		if skill == "" {
			continue
		}
		expanded = append(expanded, skill)
		if strings.Contains(skill, "fullstack") || strings.Contains(skill, "full stack") {
			fullstack = true
		}
	}

	if fullstack {
		expanded = append(expanded, "frontend", "backend", "front-end", "back-end")
	}

	return expanded
}

// unscored returns the head of the catalog with the neutral default score.
func (m *matchService) unscored(jobs []models.Job) []models.MatchResult {
	limit := len(jobs)
	if limit > m.cfg.MaxResults {
		limit = m.cfg.MaxResults
	}

	results := make([]models.MatchResult, 0, limit)
	for _, job := range jobs[:limit] {
		results = append(results, models.MatchResult{Job: job, Score: m.cfg.DefaultScore})
	}
	return results
}
