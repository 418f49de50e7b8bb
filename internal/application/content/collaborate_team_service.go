package content

import (
	"context"

	"github.com/CRT1223/tech13-garage/internal/application/media"
	"github.com/CRT1223/tech13-garage/internal/domain/content"
	"github.com/samber/lo"
	"go.uber.org/zap"
)

// CollaborateTeamService manages the partner teams shown on the about page
type CollaborateTeamService struct {
	repo   content.CollaborateTeamRepository
	media  *media.Service
	logger *zap.Logger
}

// NewCollaborateTeamService creates a new CollaborateTeamService
func NewCollaborateTeamService(repo content.CollaborateTeamRepository, mediaSvc *media.Service, logger *zap.Logger) *CollaborateTeamService {
	return &CollaborateTeamService{repo: repo, media: mediaSvc, logger: logger}
}

// List returns partner teams; activeOnly hides inactive ones
func (s *CollaborateTeamService) List(ctx context.Context, activeOnly bool) ([]CollaborateTeamResponse, error) {
	teams, err := s.repo.FindAll(ctx, activeOnly)
	if err != nil {
		return nil, err
	}
	return lo.Map(teams, func(t content.CollaborateTeam, _ int) CollaborateTeamResponse {
		return ToCollaborateTeamResponse(&t, s.media)
	}), nil
}

// GetByID retrieves a partner team
func (s *CollaborateTeamService) GetByID(ctx context.Context, id int64) (*CollaborateTeamResponse, error) {
	t, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := ToCollaborateTeamResponse(t, s.media)
	return &resp, nil
}

// Create adds a partner team with an optional logo
func (s *CollaborateTeamService) Create(ctx context.Context, req CollaborateTeamRequest, logo *media.File) (*CollaborateTeamResponse, error) {
	t, err := content.NewCollaborateTeam(req.details())
	if err != nil {
		return nil, err
	}
	if logo != nil {
		name, err := s.media.Store(ctx, *logo)
		if err != nil {
			return nil, err
		}
		t.SetLogo(name)
	}
	if err := s.repo.Save(ctx, t); err != nil {
		s.media.Remove(ctx, t.Logo)
		return nil, err
	}
	s.logger.Info("Collaborate team created", zap.Int64("id", t.ID), zap.String("team_name", t.TeamName))
	resp := ToCollaborateTeamResponse(t, s.media)
	return &resp, nil
}

// Update changes a partner team, keeping the logo unless a new one is given
func (s *CollaborateTeamService) Update(ctx context.Context, id int64, req CollaborateTeamRequest, logo *media.File) (*CollaborateTeamResponse, error) {
	t, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := t.Update(req.details()); err != nil {
		return nil, err
	}
	if logo != nil {
		name, err := s.media.Replace(ctx, t.Logo, *logo)
		if err != nil {
			return nil, err
		}
		t.SetLogo(name)
	}
	if err := s.repo.Save(ctx, t); err != nil {
		return nil, err
	}
	resp := ToCollaborateTeamResponse(t, s.media)
	return &resp, nil
}

// UpdateLogo swaps a partner team's logo
func (s *CollaborateTeamService) UpdateLogo(ctx context.Context, id int64, logo *media.File) (*ImageResult, error) {
	if logo == nil {
		return nil, ErrNoLogo
	}
	t, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	name, err := s.media.Replace(ctx, t.Logo, *logo)
	if err != nil {
		return nil, err
	}
	t.SetLogo(name)
	if err := s.repo.Save(ctx, t); err != nil {
		return nil, err
	}
	return &ImageResult{Image: name, ImageURL: s.media.URL(name)}, nil
}

// Delete removes a partner team and its logo
func (s *CollaborateTeamService) Delete(ctx context.Context, id int64) error {
	t, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.media.Remove(ctx, t.Logo)
	s.logger.Info("Collaborate team deleted", zap.Int64("id", id))
	return nil
}
