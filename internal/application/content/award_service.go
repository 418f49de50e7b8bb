package content

import (
	"context"

	"github.com/CRT1223/tech13-garage/internal/application/media"
	"github.com/CRT1223/tech13-garage/internal/domain/content"
	"github.com/samber/lo"
	"go.uber.org/zap"
)

// AwardService manages the awards shown on the home page
type AwardService struct {
	repo   content.AwardRepository
	media  *media.Service
	logger *zap.Logger
}

// NewAwardService creates a new AwardService
func NewAwardService(repo content.AwardRepository, mediaSvc *media.Service, logger *zap.Logger) *AwardService {
	return &AwardService{repo: repo, media: mediaSvc, logger: logger}
}

// List returns awards; activeOnly hides inactive ones
func (s *AwardService) List(ctx context.Context, activeOnly bool) ([]AwardResponse, error) {
	awards, err := s.repo.FindAll(ctx, activeOnly)
	if err != nil {
		return nil, err
	}
	return lo.Map(awards, func(a content.Award, _ int) AwardResponse {
		return ToAwardResponse(&a, s.media)
	}), nil
}

// GetByID retrieves an award
func (s *AwardService) GetByID(ctx context.Context, id int64) (*AwardResponse, error) {
	a, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := ToAwardResponse(a, s.media)
	return &resp, nil
}

// Create adds an award with an optional image
func (s *AwardService) Create(ctx context.Context, req AwardRequest, image *media.File) (*AwardResponse, error) {
	a, err := content.NewAward(req.details())
	if err != nil {
		return nil, err
	}
	if image != nil {
		name, err := s.media.Store(ctx, *image)
		if err != nil {
			return nil, err
		}
		a.SetImage(name)
	}
	if err := s.repo.Save(ctx, a); err != nil {
		s.media.Remove(ctx, a.Image)
		return nil, err
	}
	s.logger.Info("Award created", zap.Int64("id", a.ID), zap.String("title", a.Title), zap.Int("year", a.Year))
	resp := ToAwardResponse(a, s.media)
	return &resp, nil
}

// Update changes an award, keeping the image unless a new one is given
func (s *AwardService) Update(ctx context.Context, id int64, req AwardRequest, image *media.File) (*AwardResponse, error) {
	a, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := a.Update(req.details()); err != nil {
		return nil, err
	}
	if image != nil {
		name, err := s.media.Replace(ctx, a.Image, *image)
		if err != nil {
			return nil, err
		}
		a.SetImage(name)
	}
	if err := s.repo.Save(ctx, a); err != nil {
		return nil, err
	}
	resp := ToAwardResponse(a, s.media)
	return &resp, nil
}

// UpdateImage swaps an award's image
func (s *AwardService) UpdateImage(ctx context.Context, id int64, image *media.File) (*ImageResult, error) {
	if image == nil {
		return nil, ErrNoImage
	}
	a, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	name, err := s.media.Replace(ctx, a.Image, *image)
	if err != nil {
		return nil, err
	}
	a.SetImage(name)
	if err := s.repo.Save(ctx, a); err != nil {
		return nil, err
	}
	return &ImageResult{Image: name, ImageURL: s.media.URL(name)}, nil
}

// Delete removes an award and its image
func (s *AwardService) Delete(ctx context.Context, id int64) error {
	a, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.media.Remove(ctx, a.Image)
	s.logger.Info("Award deleted", zap.Int64("id", id))
	return nil
}
