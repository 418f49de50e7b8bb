package content

import "context"

// TeamMemberRepository persists team members.
// Lists are ordered by display_order, then name.
type TeamMemberRepository interface {
	FindByID(ctx context.Context, id int64) (*TeamMember, error)
	FindAll(ctx context.Context, activeOnly bool) ([]TeamMember, error)
	Save(ctx context.Context, m *TeamMember) error
	Delete(ctx context.Context, id int64) error
}

// CollaborateTeamRepository persists partner teams.
// Lists are ordered by display_order, then team_name.
type CollaborateTeamRepository interface {
	FindByID(ctx context.Context, id int64) (*CollaborateTeam, error)
	FindAll(ctx context.Context, activeOnly bool) ([]CollaborateTeam, error)
	Save(ctx context.Context, t *CollaborateTeam) error
	Delete(ctx context.Context, id int64) error
}

// AwardRepository persists awards.
// Lists are ordered by display_order, year descending, then title.
type AwardRepository interface {
	FindByID(ctx context.Context, id int64) (*Award, error)
	FindAll(ctx context.Context, activeOnly bool) ([]Award, error)
	Save(ctx context.Context, a *Award) error
	Delete(ctx context.Context, id int64) error
}
