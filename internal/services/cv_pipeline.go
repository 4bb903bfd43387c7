package services

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"

	"github.com/davyken/Job-Fusion/internal/apperrors"
	"github.com/davyken/Job-Fusion/internal/models"
	"github.com/davyken/Job-Fusion/internal/repositories"
)

// CVPipelineService wires the upload flow (store file → extract text →
// LLM parse → profile upsert) and the recommendation flow (profile fetch →
// open jobs → scorer). Each request runs as one sequential pipeline.
type CVPipelineService interface {
	ProcessUpload(ctx context.Context, userID, filename, mimeType string, data []byte) (*models.UserCV, error)
	Recommend(ctx context.Context, userID string) ([]models.MatchResult, error)
}

type cvPipelineService struct {
	profileRepo repositories.ProfileRepository
	jobRepo     repositories.JobRepository
	extractor   DocumentExtractor
	parser      CVParserService
	matcher     MatchService
	storage     StorageService
}

func NewCVPipelineService(
	profileRepo repositories.ProfileRepository,
	jobRepo repositories.JobRepository,
	extractor DocumentExtractor,
	parser CVParserService,
	matcher MatchService,
	storage StorageService,
) CVPipelineService {
	return &cvPipelineService{
		profileRepo: profileRepo,
		jobRepo:     jobRepo,
		extractor:   extractor,
		parser:      parser,
		matcher:     matcher,
		storage:     storage,
	}
}

// ProcessUpload implements CVPipelineService. Any stage failure is terminal
// for the request and wrapped with the stage it came from.
func (p *cvPipelineService) ProcessUpload(ctx context.Context, userID, filename, mimeType string, data []byte) (*models.UserCV, error) {
	log.Printf("📄 Processing CV upload for user %s (%s)", userID, filename)

	objectName := fmt.Sprintf("cv-%s-%s", uuid.New().String()[:8], userID)
	cvURL, err := p.storage.Put(objectName, data)
	if err != nil {
		return nil, fmt.Errorf("cv upload: %w", err)
	}

	text, err := p.extractor.ExtractText(data, mimeType)
	if err != nil {
		return nil, fmt.Errorf("cv text extraction: %w", err)
	}
	text = CleanText(text)

	parsed, err := p.parser.ParseProfile(ctx, text)
	if err != nil {
		return nil, fmt.Errorf("cv field extraction: %w", err)
	}

	profile := &models.UserCV{
		UserID:     userID,
		Skills:     parsed.Skills,
		Experience: parsed.Experience,
		Education:  parsed.Education,
		CVURL:      cvURL,
	}

	if err := p.profileRepo.Upsert(profile); err != nil {
		return nil, fmt.Errorf("profile persistence: %w", err)
	}

	log.Printf("✅ CV parsed and stored for user %s (%d skills)", userID, len(profile.Skills))
	return profile, nil
}

// Recommend implements CVPipelineService. A missing profile is not an
// error; the scorer degrades to an unpersonalized catalog slice. Only an
// unreachable job catalog is terminal.
func (p *cvPipelineService) Recommend(ctx context.Context, userID string) ([]models.MatchResult, error) {
	profile, err := p.profileRepo.FindLatestByUser(userID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("profile lookup: %w", err)
		}
		profile = nil
	}

	jobs, err := p.jobRepo.FindOpen()
	if err != nil {
		return nil, fmt.Errorf("open jobs lookup: %w", err)
	}

	return p.matcher.Match(ctx, profile, jobs), nil
}
