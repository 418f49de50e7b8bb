// Package seed loads the starter catalog and, on request, demo content.
// Every step checks for existing rows first, so running it again is harmless.
package seed

import (
	"context"
	"errors"
	"fmt"

	"github.com/CRT1223/tech13-garage/internal/domain/catalog"
	"github.com/CRT1223/tech13-garage/internal/domain/content"
	"github.com/CRT1223/tech13-garage/internal/domain/identity"
	"github.com/CRT1223/tech13-garage/internal/domain/shared"
	"github.com/brianvoe/gofakeit/v7"
	"go.uber.org/zap"
)

// DemoPassword is the password of every generated demo customer
const DemoPassword = "demo1234"

// Repositories groups the repositories the seeder writes to
type Repositories struct {
	Users      identity.UserRepository
	Categories catalog.CategoryRepository
	Products   catalog.ProductRepository
	Services   catalog.ServiceRepository
	Reviews    catalog.ReviewRepository
	Team       content.TeamMemberRepository
	Awards     content.AwardRepository
}

// Options controls what gets seeded
type Options struct {
	// Demo adds team members, awards, fake customers and reviews
	Demo bool
	// Customers is the number of fake customers for the demo
	Customers int
	// RandSeed makes the fake data reproducible; 0 picks a random seed
	RandSeed uint64
}

// Result counts the rows created by a run
type Result struct {
	Categories  int
	Products    int
	Services    int
	TeamMembers int
	Awards      int
	Customers   int
	Reviews     int
}

// Seeder writes seed data through the domain repositories
type Seeder struct {
	repos  Repositories
	logger *zap.Logger
}

// New creates a Seeder
func New(repos Repositories, logger *zap.Logger) *Seeder {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Seeder{repos: repos, logger: logger}
}

// Run seeds the catalog and, with opts.Demo, the demo content
func (s *Seeder) Run(ctx context.Context, opts Options) (*Result, error) {
	res := &Result{}

	categoryIDs, err := s.seedCategories(ctx, res)
	if err != nil {
		return nil, fmt.Errorf("seed categories: %w", err)
	}
	if err := s.seedProducts(ctx, categoryIDs, res); err != nil {
		return nil, fmt.Errorf("seed products: %w", err)
	}
	if err := s.seedServices(ctx, res); err != nil {
		return nil, fmt.Errorf("seed services: %w", err)
	}

	if opts.Demo {
		if err := s.seedTeam(ctx, res); err != nil {
			return nil, fmt.Errorf("seed team: %w", err)
		}
		if err := s.seedAwards(ctx, res); err != nil {
			return nil, fmt.Errorf("seed awards: %w", err)
		}
		if err := s.seedCustomers(ctx, opts, res); err != nil {
			return nil, fmt.Errorf("seed customers: %w", err)
		}
	}

	s.logger.Info("Seed complete",
		zap.Int("categories", res.Categories),
		zap.Int("products", res.Products),
		zap.Int("services", res.Services),
		zap.Int("team_members", res.TeamMembers),
		zap.Int("awards", res.Awards),
		zap.Int("customers", res.Customers),
		zap.Int("reviews", res.Reviews),
	)
	return res, nil
}

func (s *Seeder) seedCategories(ctx context.Context, res *Result) (map[string]int64, error) {
	ids := make(map[string]int64, len(categories))
	for _, c := range categories {
		existing, err := s.repos.Categories.FindByName(ctx, c.name)
		if err == nil {
			ids[c.name] = existing.ID
			continue
		}
		if !errors.Is(err, shared.ErrNotFound) {
			return nil, err
		}

		category, err := catalog.NewCategory(c.name, c.description)
		if err != nil {
			return nil, err
		}
		if err := s.repos.Categories.Save(ctx, category); err != nil {
			return nil, err
		}
		ids[c.name] = category.ID
		res.Categories++
	}
	return ids, nil
}

func (s *Seeder) seedProducts(ctx context.Context, categoryIDs map[string]int64, res *Result) error {
	for _, p := range products {
		exists, err := found(s.repos.Products.FindByName(ctx, p.name))
		if err != nil {
			return err
		}
		if exists {
			continue
		}

		var categoryID *int64
		if id, ok := categoryIDs[p.category]; ok {
			categoryID = &id
		}
		product, err := catalog.NewProduct(catalog.ProductDetails{
			Name:          p.name,
			Description:   p.description,
			Price:         p.priceDecimal(),
			CategoryID:    categoryID,
			Brand:         p.brand,
			Model:         p.model,
			YearRange:     p.yearRange,
			StockQuantity: p.stock,
			IsRacing:      p.racing,
			IsDaily:       !p.racing,
		})
		if err != nil {
			return err
		}
		if err := s.repos.Products.Save(ctx, product); err != nil {
			return err
		}
		res.Products++
	}
	return nil
}

func (s *Seeder) seedServices(ctx context.Context, res *Result) error {
	for _, sv := range services {
		exists, err := found(s.repos.Services.FindByName(ctx, sv.name))
		if err != nil {
			return err
		}
		if exists {
			continue
		}

		service, err := catalog.NewService(catalog.ServiceDetails{
			Name:          sv.name,
			Description:   sv.description,
			Price:         decimalFromInt(sv.price),
			DurationHours: sv.hours,
			IsRacing:      sv.racing,
			IsDaily:       !sv.racing,
		})
		if err != nil {
			return err
		}
		if err := s.repos.Services.Save(ctx, service); err != nil {
			return err
		}
		res.Services++
	}
	return nil
}

func (s *Seeder) seedTeam(ctx context.Context, res *Result) error {
	existing, err := s.repos.Team.FindAll(ctx, false)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}
	for i, m := range teamMembers {
		member, err := content.NewTeamMember(content.TeamMemberDetails{
			Listing:      content.Listing{DisplayOrder: i + 1, IsActive: true},
			Name:         m.name,
			Role:         m.role,
			Description:  m.description,
			LinkedInURL:  "https://linkedin.com/in/" + m.handle,
			TwitterURL:   "https://twitter.com/" + underscore(m.handle),
			InstagramURL: "https://instagram.com/" + underscore(m.handle),
		})
		if err != nil {
			return err
		}
		if err := s.repos.Team.Save(ctx, member); err != nil {
			return err
		}
		res.TeamMembers++
	}
	return nil
}

func (s *Seeder) seedAwards(ctx context.Context, res *Result) error {
	existing, err := s.repos.Awards.FindAll(ctx, false)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}
	for i, a := range awards {
		award, err := content.NewAward(content.AwardDetails{
			Listing:     content.Listing{DisplayOrder: i + 1, IsActive: true},
			Title:       a.title,
			Subtitle:    a.subtitle,
			Year:        a.year,
			Category:    a.category,
			Description: a.description,
		})
		if err != nil {
			return err
		}
		if err := s.repos.Awards.Save(ctx, award); err != nil {
			return err
		}
		res.Awards++
	}
	return nil
}

// seedCustomers creates demo_customer_N accounts with fake profiles.
// Each new customer reviews one part and one service.
func (s *Seeder) seedCustomers(ctx context.Context, opts Options, res *Result) error {
	if opts.Customers <= 0 {
		return nil
	}
	faker := gofakeit.New(opts.RandSeed)

	products, err := s.repos.Products.FindInStockByName(ctx)
	if err != nil {
		return err
	}
	svcs, err := s.repos.Services.Browse(ctx, "")
	if err != nil {
		return err
	}

	for i := 1; i <= opts.Customers; i++ {
		username := fmt.Sprintf("demo_customer_%d", i)
		email := username + "@example.com"
		exists, err := s.repos.Users.ExistsByUsernameOrEmail(ctx, username, email)
		if err != nil {
			return err
		}
		if exists {
			continue
		}

		user, err := identity.NewCustomer(username, email, DemoPassword)
		if err != nil {
			return err
		}
		if err := user.SetProfile(faker.FirstName(), faker.LastName(), faker.Phone(), faker.Street()+", "+faker.City()); err != nil {
			return err
		}
		if err := s.repos.Users.Create(ctx, user); err != nil {
			return err
		}
		res.Customers++

		if len(products) > 0 {
			p := products[faker.Number(0, len(products)-1)]
			if err := s.review(ctx, faker, user.ID, &p.ID, nil); err != nil {
				return err
			}
			res.Reviews++
		}
		if len(svcs) > 0 {
			sv := svcs[faker.Number(0, len(svcs)-1)]
			if err := s.review(ctx, faker, user.ID, nil, &sv.ID); err != nil {
				return err
			}
			res.Reviews++
		}
	}
	return nil
}

func (s *Seeder) review(ctx context.Context, faker *gofakeit.Faker, customerID int64, productID, serviceID *int64) error {
	review, err := catalog.NewReview(customerID, productID, serviceID, faker.Number(3, 5), faker.Phrase())
	if err != nil {
		return err
	}
	return s.repos.Reviews.Create(ctx, review)
}

// found turns a repository lookup into an existence check
func found[T any](_ *T, err error) (bool, error) {
	if err == nil {
		return true, nil
	}
	if errors.Is(err, shared.ErrNotFound) {
		return false, nil
	}
	return false, err
}
