package identity

import (
	"context"
	"errors"

	"github.com/CRT1223/tech13-garage/internal/domain/identity"
	"github.com/CRT1223/tech13-garage/internal/domain/shared"
	"github.com/samber/lo"
	"go.uber.org/zap"
)

// Default back-office account created on first start
const (
	DefaultAdminUsername = "admin"
	DefaultAdminEmail    = "admin@tech13garage.com"
	DefaultAdminPassword = "admin123"
)

// UserService handles account administration
type UserService struct {
	userRepo identity.UserRepository
	logger   *zap.Logger
}

// NewUserService creates a new user service
func NewUserService(userRepo identity.UserRepository, logger *zap.Logger) *UserService {
	return &UserService{userRepo: userRepo, logger: logger}
}

// EnsureAdmin creates the default admin when no admin account exists.
// It reports whether an account was created.
func (s *UserService) EnsureAdmin(ctx context.Context) (bool, error) {
	count, err := s.userRepo.CountByRole(ctx, identity.RoleAdmin)
	if err != nil {
		return false, err
	}
	if count > 0 {
		return false, nil
	}

	admin, err := newDefaultAdmin()
	if err != nil {
		return false, err
	}
	if err := s.userRepo.Create(ctx, admin); err != nil {
		return false, err
	}
	s.logger.Info("Default admin account created", zap.String("username", admin.Username))
	return true, nil
}

// ResetAdmin restores the default admin password, creating the account if needed
func (s *UserService) ResetAdmin(ctx context.Context) (*UserInfo, error) {
	user, err := s.userRepo.FindByLogin(ctx, DefaultAdminUsername)
	switch {
	case errors.Is(err, shared.ErrNotFound):
		if user, err = newDefaultAdmin(); err != nil {
			return nil, err
		}
		if err := s.userRepo.Create(ctx, user); err != nil {
			return nil, err
		}
	case err != nil:
		return nil, err
	default:
		if err := user.SetPassword(DefaultAdminPassword); err != nil {
			return nil, err
		}
		user.Role = identity.RoleAdmin
		user.Touch()
		if err := s.userRepo.Update(ctx, user); err != nil {
			return nil, err
		}
	}

	s.logger.Info("Admin account reset", zap.Int64("user_id", user.ID))
	info := ToUserInfo(user)
	return &info, nil
}

// ListCustomers pages through customer accounts, newest first
func (s *UserService) ListCustomers(ctx context.Context, input CustomerListInput) (*shared.Paginated[UserInfo], error) {
	filter := shared.DefaultFilter()
	if input.Page > 0 {
		filter.Page = input.Page
	}
	if input.PageSize > 0 && input.PageSize <= 100 {
		filter.PageSize = input.PageSize
	}
	filter.Search = input.Search

	users, total, err := s.userRepo.FindByRole(ctx, identity.RoleCustomer, filter)
	if err != nil {
		return nil, err
	}
	items := lo.Map(users, func(u identity.User, _ int) UserInfo { return ToUserInfo(&u) })
	page := shared.NewPaginated(items, total, filter.Page, filter.PageSize)
	return &page, nil
}

func newDefaultAdmin() (*identity.User, error) {
	admin, err := identity.NewAdmin(DefaultAdminUsername, DefaultAdminEmail, DefaultAdminPassword)
	if err != nil {
		return nil, err
	}
	if err := admin.SetProfile("Admin", "User", "", ""); err != nil {
		return nil, err
	}
	return admin, nil
}
