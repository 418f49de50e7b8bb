package content

import (
	"context"

	"github.com/CRT1223/tech13-garage/internal/application/media"
	"github.com/CRT1223/tech13-garage/internal/domain/content"
	"github.com/CRT1223/tech13-garage/internal/domain/shared"
	"github.com/samber/lo"
	"go.uber.org/zap"
)

var (
	// ErrNoImage is returned by image updates without a file
	ErrNoImage = shared.InvalidInput("No image file provided")
	// ErrNoLogo is returned by logo updates without a file
	ErrNoLogo = shared.InvalidInput("No logo file provided")
)

// TeamService manages the team members shown on the about page
type TeamService struct {
	repo   content.TeamMemberRepository
	media  *media.Service
	logger *zap.Logger
}

// NewTeamService creates a new TeamService
func NewTeamService(repo content.TeamMemberRepository, mediaSvc *media.Service, logger *zap.Logger) *TeamService {
	return &TeamService{repo: repo, media: mediaSvc, logger: logger}
}

// List returns team members; activeOnly hides inactive ones
func (s *TeamService) List(ctx context.Context, activeOnly bool) ([]TeamMemberResponse, error) {
	members, err := s.repo.FindAll(ctx, activeOnly)
	if err != nil {
		return nil, err
	}
	return lo.Map(members, func(m content.TeamMember, _ int) TeamMemberResponse {
		return ToTeamMemberResponse(&m, s.media)
	}), nil
}

// GetByID retrieves a team member
func (s *TeamService) GetByID(ctx context.Context, id int64) (*TeamMemberResponse, error) {
	m, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := ToTeamMemberResponse(m, s.media)
	return &resp, nil
}

// Create adds a team member with an optional photo
func (s *TeamService) Create(ctx context.Context, req TeamMemberRequest, image *media.File) (*TeamMemberResponse, error) {
	m, err := content.NewTeamMember(req.details())
	if err != nil {
		return nil, err
	}
	if image != nil {
		name, err := s.media.Store(ctx, *image)
		if err != nil {
			return nil, err
		}
		m.SetImage(name)
	}
	if err := s.repo.Save(ctx, m); err != nil {
		s.media.Remove(ctx, m.Image)
		return nil, err
	}
	s.logger.Info("Team member created", zap.Int64("id", m.ID), zap.String("name", m.Name))
	resp := ToTeamMemberResponse(m, s.media)
	return &resp, nil
}

// Update changes a team member, keeping the photo unless a new one is given
func (s *TeamService) Update(ctx context.Context, id int64, req TeamMemberRequest, image *media.File) (*TeamMemberResponse, error) {
	m, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := m.Update(req.details()); err != nil {
		return nil, err
	}
	if image != nil {
		name, err := s.media.Replace(ctx, m.Image, *image)
		if err != nil {
			return nil, err
		}
		m.SetImage(name)
	}
	if err := s.repo.Save(ctx, m); err != nil {
		return nil, err
	}
	resp := ToTeamMemberResponse(m, s.media)
	return &resp, nil
}

// UpdateImage swaps a team member's photo
func (s *TeamService) UpdateImage(ctx context.Context, id int64, image *media.File) (*ImageResult, error) {
	if image == nil {
		return nil, ErrNoImage
	}
	m, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	name, err := s.media.Replace(ctx, m.Image, *image)
	if err != nil {
		return nil, err
	}
	m.SetImage(name)
	if err := s.repo.Save(ctx, m); err != nil {
		return nil, err
	}
	return &ImageResult{Image: name, ImageURL: s.media.URL(name)}, nil
}

// Delete removes a team member and the photo
func (s *TeamService) Delete(ctx context.Context, id int64) error {
	m, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.media.Remove(ctx, m.Image)
	s.logger.Info("Team member deleted", zap.Int64("id", id))
	return nil
}
