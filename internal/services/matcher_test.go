package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/davyken/Job-Fusion/internal/apperrors"
	"github.com/davyken/Job-Fusion/internal/config"
	"github.com/davyken/Job-Fusion/internal/models"
)

func testMatchingConfig() config.MatchingConfig {
	return config.MatchingConfig{
		MaxResults:   10,
		MinScore:     3,
		DefaultScore: 5,
	}
}

func testProfile(skills ...string) *models.UserCV {
	return &models.UserCV{
		UserID:     "user_1",
		Skills:     models.SkillList(skills),
		Experience: "2 years",
		Education:  "BS CS",
	}
}

func makeJobs(n int) []models.Job {
	jobs := make([]models.Job, 0, n)
	for i := 1; i <= n; i++ {
		jobs = append(jobs, models.Job{
			ID:           uint(i),
			Title:        fmt.Sprintf("Job %d", i),
			Location:     "Remote",
			Requirements: "Go, SQL",
			IsOpen:       true,
		})
	}
	return jobs
}

func TestMatchRemoteScoring(t *testing.T) {
	stub := &stubChatClient{
		response: `[{"job_id": 1, "score": 9}, {"job_id": 2, "score": 2}]`,
	}
	matcher := NewMatchService(stub, testMatchingConfig())

	// Job 3 gets no score entry and falls back to the neutral default.
	results := matcher.Match(context.Background(), testProfile("Go"), makeJobs(3))

	if len(results) != 2 {
		t.Fatalf("expected 2 results (score 2 dropped), got %d", len(results))
	}
	if results[0].Job.ID != 1 || results[0].Score != 9 {
		t.Fatalf("expected job 1 with score 9 first, got job %d score %v", results[0].Job.ID, results[0].Score)
	}
	if results[1].Job.ID != 3 || results[1].Score != 5 {
		t.Fatalf("expected unscored job 3 with default score, got job %d score %v", results[1].Job.ID, results[1].Score)
	}
}

func TestMatchRemoteScoringStringIDs(t *testing.T) {
	stub := &stubChatClient{
		response: `[{"job_id": "2", "score": 8}]`,
	}
	matcher := NewMatchService(stub, testMatchingConfig())

	results := matcher.Match(context.Background(), testProfile("Go"), makeJobs(2))
	if len(results) == 0 || results[0].Job.ID != 2 {
		t.Fatalf("expected quoted job id to join by string equality, got %+v", results)
	}
}

func TestMatchRemoteScoringFloatIDs(t *testing.T) {
	stub := &stubChatClient{
		response: `[{"job_id": 2.0, "score": 8}]`,
	}
	matcher := NewMatchService(stub, testMatchingConfig())

	// A float-typed id still names job 2, not a skipped job at the
	// default score.
	results := matcher.Match(context.Background(), testProfile("Go"), makeJobs(2))
	if len(results) == 0 || results[0].Job.ID != 2 || results[0].Score != 8 {
		t.Fatalf("expected float job id to normalize onto job 2 with score 8, got %+v", results)
	}
}

func TestMatchOrderingAndThreshold(t *testing.T) {
	stub := &stubChatClient{
		response: `[
			{"job_id": 1, "score": 4},
			{"job_id": 2, "score": 10},
			{"job_id": 3, "score": 1},
			{"job_id": 4, "score": 7},
			{"job_id": 5, "score": 2.5}
		]`,
	}
	matcher := NewMatchService(stub, testMatchingConfig())

	results := matcher.Match(context.Background(), testProfile("Go"), makeJobs(5))

	for i := 1; i < len(results); i++ {
		if results[i].Score > results[i-1].Score {
			t.Fatalf("ordering must be non-increasing: %v before %v", results[i-1].Score, results[i].Score)
		}
	}
	for _, result := range results {
		if result.Score < 3 {
			t.Fatalf("scores below threshold must be excluded, found %v", result.Score)
		}
	}
	if results[0].Job.ID != 2 || results[1].Job.ID != 4 || results[2].Job.ID != 1 {
		t.Fatalf("unexpected order: %+v", results)
	}
}

func TestMatchStableTies(t *testing.T) {
	stub := &stubChatClient{
		response: `[{"job_id": 1, "score": 7}, {"job_id": 2, "score": 7}, {"job_id": 3, "score": 7}]`,
	}
	matcher := NewMatchService(stub, testMatchingConfig())

	results := matcher.Match(context.Background(), testProfile("Go"), makeJobs(3))
	for i, result := range results {
		if result.Job.ID != uint(i+1) {
			t.Fatalf("ties must preserve catalog order, got %+v", results)
		}
	}
}

func TestMatchCapsAtTenWithLargeCatalog(t *testing.T) {
	// All 50 jobs end up with the default score, well above the threshold.
	stub := &stubChatClient{response: `[]`}
	matcher := NewMatchService(stub, testMatchingConfig())

	results := matcher.Match(context.Background(), testProfile("Go"), makeJobs(50))
	if len(results) != 10 {
		t.Fatalf("expected exactly 10 results from a 50-job catalog, got %d", len(results))
	}
}

func TestMatchNoProfile(t *testing.T) {
	stub := &stubChatClient{}
	matcher := NewMatchService(stub, testMatchingConfig())

	results := matcher.Match(context.Background(), nil, makeJobs(30))

	if stub.calls != 0 {
		t.Fatal("no scoring call expected without a profile")
	}
	if len(results) != 10 {
		t.Fatalf("expected first 10 jobs, got %d", len(results))
	}
	for i, result := range results {
		if result.Job.ID != uint(i+1) {
			t.Fatalf("expected catalog order, got %+v", results)
		}
	}
}

func TestMatchFallbackOnRemoteError(t *testing.T) {
	stub := &stubChatClient{err: &apperrors.RemoteServiceError{StatusCode: 503, Err: errors.New("unavailable")}}
	matcher := NewMatchService(stub, testMatchingConfig())

	jobs := []models.Job{
		{ID: 1, Title: "Backend Engineer", Requirements: "Java, Spring"},
		{ID: 2, Title: "Designer", Requirements: "Figma"},
	}

	results := matcher.Match(context.Background(), testProfile("Java", "SQL"), jobs)

	if len(results) != 1 {
		t.Fatalf("expected only the Java job, got %+v", results)
	}
	if results[0].Job.ID != 1 {
		t.Fatalf("expected job 1, got job %d", results[0].Job.ID)
	}
}

func TestMatchFallbackOnMalformedOutput(t *testing.T) {
	stub := &stubChatClient{response: "I am unable to score these jobs."}
	matcher := NewMatchService(stub, testMatchingConfig())

	jobs := []models.Job{
		{ID: 1, Title: "Go Developer", Requirements: "golang, kubernetes"},
	}

	results := matcher.Match(context.Background(), testProfile("Go"), jobs)
	if len(results) != 1 {
		t.Fatalf("malformed output must engage the fallback, got %+v", results)
	}
}

func TestMatchFallbackFullStackExpansion(t *testing.T) {
	stub := &stubChatClient{err: &apperrors.RemoteServiceError{Err: errors.New("timeout")}}
	matcher := NewMatchService(stub, testMatchingConfig())

	jobs := []models.Job{
		{ID: 1, Title: "UI Engineer", Requirements: "frontend frameworks"},
		{ID: 2, Title: "Accountant", Requirements: "bookkeeping"},
	}

	results := matcher.Match(context.Background(), testProfile("Full Stack Developer"), jobs)

	if len(results) != 1 || results[0].Job.ID != 1 {
		t.Fatalf("full stack skills should match frontend postings, got %+v", results)
	}
}

func TestMatchFallbackEmptySkills(t *testing.T) {
	stub := &stubChatClient{err: &apperrors.RemoteServiceError{Err: errors.New("down")}}
	matcher := NewMatchService(stub, testMatchingConfig())

	results := matcher.Match(context.Background(), testProfile(), makeJobs(15))
	if len(results) != 10 {
		t.Fatalf("empty skill set should return the first 10 open jobs, got %d", len(results))
	}
}

func TestMatchScoringPromptContents(t *testing.T) {
	stub := &stubChatClient{response: `[]`}
	matcher := NewMatchService(stub, testMatchingConfig())

	jobs := []models.Job{{ID: 7, Title: "Data Engineer", Location: "Berlin", Requirements: "Python, Spark"}}
	matcher.Match(context.Background(), testProfile("Python"), jobs)

	for _, want := range []string{"Python", "Data Engineer", "Berlin", "Spark", "id: 7"} {
		if !strings.Contains(stub.lastUser, want) {
			t.Fatalf("scoring prompt missing %q:\n%s", want, stub.lastUser)
		}
	}
}

func TestExpandSkills(t *testing.T) {
	expanded := expandSkills(models.SkillList{" React ", "FullStack engineering"})

	joined := strings.Join(expanded, "|")
	for _, want := range []string{"react", "fullstack engineering", "frontend", "backend", "front-end", "back-end"} {
		if !strings.Contains(joined, want) {
			t.Fatalf("expected %q in expanded skills %v", want, expanded)
		}
	}
}
