package catalog

import (
	"context"
	"errors"

	"github.com/CRT1223/tech13-garage/internal/domain/catalog"
	"github.com/CRT1223/tech13-garage/internal/domain/shared"
	"github.com/samber/lo"
)

// ErrCategoryHasProducts is returned when deleting a category still in use
var ErrCategoryHasProducts = shared.Conflict("Cannot delete category that has products. Please move or delete products first.")

// CategoryService handles category-related business operations
type CategoryService struct {
	categoryRepo catalog.CategoryRepository
}

// NewCategoryService creates a new CategoryService
func NewCategoryService(categoryRepo catalog.CategoryRepository) *CategoryService {
	return &CategoryService{categoryRepo: categoryRepo}
}

// List returns all categories ordered by name
func (s *CategoryService) List(ctx context.Context) ([]CategoryResponse, error) {
	categories, err := s.categoryRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return lo.Map(categories, func(c catalog.Category, _ int) CategoryResponse {
		return ToCategoryResponse(&c)
	}), nil
}

// GetByID retrieves a category by ID
func (s *CategoryService) GetByID(ctx context.Context, id int64) (*CategoryResponse, error) {
	category, err := s.categoryRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := ToCategoryResponse(category)
	return &resp, nil
}

// Create creates a new category
func (s *CategoryService) Create(ctx context.Context, req CategoryRequest) (*CategoryResponse, error) {
	if err := s.ensureNameFree(ctx, req.Name, 0); err != nil {
		return nil, err
	}
	category, err := catalog.NewCategory(req.Name, req.Description)
	if err != nil {
		return nil, err
	}
	if err := s.categoryRepo.Save(ctx, category); err != nil {
		return nil, err
	}
	resp := ToCategoryResponse(category)
	return &resp, nil
}

// Update changes a category's name and description
func (s *CategoryService) Update(ctx context.Context, id int64, req CategoryRequest) (*CategoryResponse, error) {
	category, err := s.categoryRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.ensureNameFree(ctx, req.Name, id); err != nil {
		return nil, err
	}
	if err := category.Update(req.Name, req.Description); err != nil {
		return nil, err
	}
	if err := s.categoryRepo.Save(ctx, category); err != nil {
		return nil, err
	}
	resp := ToCategoryResponse(category)
	return &resp, nil
}

// Delete removes a category that no product references
func (s *CategoryService) Delete(ctx context.Context, id int64) error {
	if _, err := s.categoryRepo.FindByID(ctx, id); err != nil {
		return err
	}
	hasProducts, err := s.categoryRepo.HasProducts(ctx, id)
	if err != nil {
		return err
	}
	if hasProducts {
		return ErrCategoryHasProducts
	}
	return s.categoryRepo.Delete(ctx, id)
}

func (s *CategoryService) ensureNameFree(ctx context.Context, name string, selfID int64) error {
	existing, err := s.categoryRepo.FindByName(ctx, name)
	switch {
	case errors.Is(err, shared.ErrNotFound):
		return nil
	case err != nil:
		return err
	case existing.ID != selfID:
		return shared.NewDomainError(shared.ErrAlreadyExists.Code, "Category name already exists")
	}
	return nil
}
