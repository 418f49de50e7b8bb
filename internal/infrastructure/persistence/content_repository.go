package persistence

import (
	"context"

	"github.com/CRT1223/tech13-garage/internal/domain/content"
	"github.com/CRT1223/tech13-garage/internal/domain/shared"
	"github.com/CRT1223/tech13-garage/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// listing applies the active filter shared by the content tables
func listing(db *gorm.DB, activeOnly bool) *gorm.DB {
	if activeOnly {
		return db.Where("is_active = ?", true)
	}
	return db
}

// deleteByID removes a row and reports NOT_FOUND when nothing matched
func deleteByID(db *gorm.DB, model any, id int64, message string) error {
	result := db.Delete(model, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.NotFound(message)
	}
	return nil
}

// GormTeamMemberRepository implements content.TeamMemberRepository using GORM
type GormTeamMemberRepository struct {
	db *gorm.DB
}

// NewGormTeamMemberRepository creates a new GormTeamMemberRepository
func NewGormTeamMemberRepository(db *gorm.DB) *GormTeamMemberRepository {
	return &GormTeamMemberRepository{db: db}
}

// FindByID finds a team member by ID
func (r *GormTeamMemberRepository) FindByID(ctx context.Context, id int64) (*content.TeamMember, error) {
	var model models.TeamMemberModel
	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		return nil, notFound(err, "Team member not found")
	}
	return model.ToDomain(), nil
}

// FindAll lists team members by display order, then name
func (r *GormTeamMemberRepository) FindAll(ctx context.Context, activeOnly bool) ([]content.TeamMember, error) {
	var rows []models.TeamMemberModel
	if err := listing(r.db.WithContext(ctx), activeOnly).
		Order("display_order ASC").Order("name ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]content.TeamMember, len(rows))
	for i := range rows {
		out[i] = *rows[i].ToDomain()
	}
	return out, nil
}

// Save creates or updates a team member
func (r *GormTeamMemberRepository) Save(ctx context.Context, m *content.TeamMember) error {
	model := models.TeamMemberModelFromDomain(m)
	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		return err
	}
	m.BaseEntity = model.BaseModel.ToDomain()
	return nil
}

// Delete deletes a team member
func (r *GormTeamMemberRepository) Delete(ctx context.Context, id int64) error {
	return deleteByID(r.db.WithContext(ctx), &models.TeamMemberModel{}, id, "Team member not found")
}

// GormCollaborateTeamRepository implements content.CollaborateTeamRepository using GORM
type GormCollaborateTeamRepository struct {
	db *gorm.DB
}

// NewGormCollaborateTeamRepository creates a new GormCollaborateTeamRepository
func NewGormCollaborateTeamRepository(db *gorm.DB) *GormCollaborateTeamRepository {
	return &GormCollaborateTeamRepository{db: db}
}

// FindByID finds a partner team by ID
func (r *GormCollaborateTeamRepository) FindByID(ctx context.Context, id int64) (*content.CollaborateTeam, error) {
	var model models.CollaborateTeamModel
	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		return nil, notFound(err, "Collaborate team not found")
	}
	return model.ToDomain(), nil
}

// FindAll lists partner teams by display order, then team name
func (r *GormCollaborateTeamRepository) FindAll(ctx context.Context, activeOnly bool) ([]content.CollaborateTeam, error) {
	var rows []models.CollaborateTeamModel
	if err := listing(r.db.WithContext(ctx), activeOnly).
		Order("display_order ASC").Order("team_name ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]content.CollaborateTeam, len(rows))
	for i := range rows {
		out[i] = *rows[i].ToDomain()
	}
	return out, nil
}

// Save creates or updates a partner team
func (r *GormCollaborateTeamRepository) Save(ctx context.Context, t *content.CollaborateTeam) error {
	model := models.CollaborateTeamModelFromDomain(t)
	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		return err
	}
	t.BaseEntity = model.BaseModel.ToDomain()
	return nil
}

// Delete deletes a partner team
func (r *GormCollaborateTeamRepository) Delete(ctx context.Context, id int64) error {
	return deleteByID(r.db.WithContext(ctx), &models.CollaborateTeamModel{}, id, "Collaborate team not found")
}

// GormAwardRepository implements content.AwardRepository using GORM
type GormAwardRepository struct {
	db *gorm.DB
}

// NewGormAwardRepository creates a new GormAwardRepository
func NewGormAwardRepository(db *gorm.DB) *GormAwardRepository {
	return &GormAwardRepository{db: db}
}

// FindByID finds an award by ID
func (r *GormAwardRepository) FindByID(ctx context.Context, id int64) (*content.Award, error) {
	var model models.AwardModel
	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		return nil, notFound(err, "Award not found")
	}
	return model.ToDomain(), nil
}

// FindAll lists awards by display order, newest year first, then title
func (r *GormAwardRepository) FindAll(ctx context.Context, activeOnly bool) ([]content.Award, error) {
	var rows []models.AwardModel
	if err := listing(r.db.WithContext(ctx), activeOnly).
		Order("display_order ASC").Order("year DESC").Order("title ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]content.Award, len(rows))
	for i := range rows {
		out[i] = *rows[i].ToDomain()
	}
	return out, nil
}

// Save creates or updates an award
func (r *GormAwardRepository) Save(ctx context.Context, a *content.Award) error {
	model := models.AwardModelFromDomain(a)
	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		return err
	}
	a.BaseEntity = model.BaseModel.ToDomain()
	return nil
}

// Delete deletes an award
func (r *GormAwardRepository) Delete(ctx context.Context, id int64) error {
	return deleteByID(r.db.WithContext(ctx), &models.AwardModel{}, id, "Award not found")
}

var (
	_ content.TeamMemberRepository      = (*GormTeamMemberRepository)(nil)
	_ content.CollaborateTeamRepository = (*GormCollaborateTeamRepository)(nil)
	_ content.AwardRepository           = (*GormAwardRepository)(nil)
)
