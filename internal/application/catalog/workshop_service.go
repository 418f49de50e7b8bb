package catalog

import (
	"context"

	"github.com/CRT1223/tech13-garage/internal/application/media"
	"github.com/CRT1223/tech13-garage/internal/domain/catalog"
	"github.com/CRT1223/tech13-garage/internal/domain/shared"
	"github.com/samber/lo"
	"go.uber.org/zap"
)

// ErrServiceOrdered is returned when deleting a service that appears on an order
var ErrServiceOrdered = shared.Conflict("Cannot delete service that has been ordered.")

// WorkshopService manages the garage's workshop services
type WorkshopService struct {
	serviceRepo catalog.ServiceRepository
	reviewRepo  catalog.ReviewRepository
	media       *media.Service
	logger      *zap.Logger
}

// NewWorkshopService creates a new WorkshopService
func NewWorkshopService(
	serviceRepo catalog.ServiceRepository,
	reviewRepo catalog.ReviewRepository,
	mediaSvc *media.Service,
	logger *zap.Logger,
) *WorkshopService {
	return &WorkshopService{
		serviceRepo: serviceRepo,
		reviewRepo:  reviewRepo,
		media:       mediaSvc,
		logger:      logger,
	}
}

// Create creates a workshop service
func (s *WorkshopService) Create(ctx context.Context, req ServiceRequest, image *media.File) (*ServiceResponse, error) {
	svc, err := catalog.NewService(req.details())
	if err != nil {
		return nil, err
	}
	if image != nil {
		name, err := s.media.Store(ctx, *image)
		if err != nil {
			return nil, err
		}
		svc.SetImage(name)
	}
	if err := s.serviceRepo.Save(ctx, svc); err != nil {
		s.media.Remove(ctx, svc.Image)
		return nil, err
	}

	s.logger.Info("Service created", zap.Int64("service_id", svc.ID), zap.String("name", svc.Name))
	resp := ToServiceResponse(svc, s.media)
	return &resp, nil
}

// Update changes a workshop service, keeping its image unless a new one is given
func (s *WorkshopService) Update(ctx context.Context, id int64, req ServiceRequest, image *media.File) (*ServiceResponse, error) {
	svc, err := s.serviceRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := svc.Update(req.details()); err != nil {
		return nil, err
	}
	if image != nil {
		name, err := s.media.Replace(ctx, svc.Image, *image)
		if err != nil {
			return nil, err
		}
		svc.SetImage(name)
	}
	if err := s.serviceRepo.Save(ctx, svc); err != nil {
		return nil, err
	}
	resp := ToServiceResponse(svc, s.media)
	return &resp, nil
}

// UpdateImage swaps the image of a service
func (s *WorkshopService) UpdateImage(ctx context.Context, id int64, image media.File) (*ImageResponse, error) {
	svc, err := s.serviceRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	name, err := s.media.Replace(ctx, svc.Image, image)
	if err != nil {
		return nil, err
	}
	svc.SetImage(name)
	if err := s.serviceRepo.Save(ctx, svc); err != nil {
		return nil, err
	}
	return &ImageResponse{Image: name, ImageURL: s.media.URL(name)}, nil
}

// GetByID retrieves a service by ID
func (s *WorkshopService) GetByID(ctx context.Context, id int64) (*ServiceResponse, error) {
	svc, err := s.serviceRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := ToServiceResponse(svc, s.media)
	return &resp, nil
}

// Detail returns a service with its reviews
func (s *WorkshopService) Detail(ctx context.Context, id int64) (*ServiceDetailResponse, error) {
	svc, err := s.serviceRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	reviews, err := s.reviewRepo.FindByService(ctx, id)
	if err != nil {
		return nil, err
	}
	return &ServiceDetailResponse{
		Service: ToServiceResponse(svc, s.media),
		Reviews: lo.Map(reviews, func(r catalog.ReviewWithAuthor, _ int) ReviewResponse {
			return ToReviewResponse(r)
		}),
	}, nil
}

// Browse lists services ordered by name; type is racing, daily or empty for all
func (s *WorkshopService) Browse(ctx context.Context, usage string) ([]ServiceResponse, error) {
	services, err := s.serviceRepo.Browse(ctx, catalog.ParseUsageType(usage))
	if err != nil {
		return nil, err
	}
	return lo.Map(services, func(svc catalog.Service, _ int) ServiceResponse {
		return ToServiceResponse(&svc, s.media)
	}), nil
}

// Delete removes a service that no order references
func (s *WorkshopService) Delete(ctx context.Context, id int64) error {
	svc, err := s.serviceRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	ordered, err := s.serviceRepo.IsOrdered(ctx, id)
	if err != nil {
		return err
	}
	if ordered {
		return ErrServiceOrdered
	}
	s.media.Remove(ctx, svc.Image)
	if err := s.serviceRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("Service deleted", zap.Int64("service_id", id))
	return nil
}
