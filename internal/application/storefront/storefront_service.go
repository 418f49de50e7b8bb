// Package storefront composes the read models behind the public home and about pages.
package storefront

import (
	"context"

	appcatalog "github.com/CRT1223/tech13-garage/internal/application/catalog"
	appcontent "github.com/CRT1223/tech13-garage/internal/application/content"
	"golang.org/x/sync/errgroup"
)

type productLister interface {
	Featured(ctx context.Context) ([]appcatalog.ProductResponse, error)
}

type categoryLister interface {
	List(ctx context.Context) ([]appcatalog.CategoryResponse, error)
}

type serviceLister interface {
	Browse(ctx context.Context, usage string) ([]appcatalog.ServiceResponse, error)
}

type awardLister interface {
	List(ctx context.Context, activeOnly bool) ([]appcontent.AwardResponse, error)
}

type teamLister interface {
	List(ctx context.Context, activeOnly bool) ([]appcontent.TeamMemberResponse, error)
}

type collaborateTeamLister interface {
	List(ctx context.Context, activeOnly bool) ([]appcontent.CollaborateTeamResponse, error)
}

// HomeResponse is everything the home page shows
type HomeResponse struct {
	FeaturedProducts []appcatalog.ProductResponse  `json:"featured_products"`
	Categories       []appcatalog.CategoryResponse `json:"categories"`
	Services         []appcatalog.ServiceResponse  `json:"services"`
	Awards           []appcontent.AwardResponse    `json:"awards"`
}

// AboutResponse is everything the about page shows
type AboutResponse struct {
	TeamMembers      []appcontent.TeamMemberResponse      `json:"team_members"`
	CollaborateTeams []appcontent.CollaborateTeamResponse `json:"collaborate_teams"`
}

// Service builds the storefront pages
type Service struct {
	products         productLister
	categories       categoryLister
	services         serviceLister
	awards           awardLister
	team             teamLister
	collaborateTeams collaborateTeamLister
}

// NewService creates a new storefront Service
func NewService(
	products productLister,
	categories categoryLister,
	services serviceLister,
	awards awardLister,
	team teamLister,
	collaborateTeams collaborateTeamLister,
) *Service {
	return &Service{
		products:         products,
		categories:       categories,
		services:         services,
		awards:           awards,
		team:             team,
		collaborateTeams: collaborateTeams,
	}
}

// Home returns featured products, all categories, all services and active awards
func (s *Service) Home(ctx context.Context) (*HomeResponse, error) {
	var resp HomeResponse
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		resp.FeaturedProducts, err = s.products.Featured(gctx)
		return err
	})
	g.Go(func() (err error) {
		resp.Categories, err = s.categories.List(gctx)
		return err
	})
	g.Go(func() (err error) {
		resp.Services, err = s.services.Browse(gctx, "")
		return err
	})
	g.Go(func() (err error) {
		resp.Awards, err = s.awards.List(gctx, true)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &resp, nil
}

// About returns the active team members and partner teams
func (s *Service) About(ctx context.Context) (*AboutResponse, error) {
	team, err := s.team.List(ctx, true)
	if err != nil {
		return nil, err
	}
	teams, err := s.collaborateTeams.List(ctx, true)
	if err != nil {
		return nil, err
	}
	return &AboutResponse{TeamMembers: team, CollaborateTeams: teams}, nil
}
