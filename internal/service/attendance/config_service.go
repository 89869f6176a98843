package attendance

import (
	"context"

	"github.com/karyahr/ess-backend-go/internal/domain/attendance"
	"github.com/karyahr/ess-backend-go/internal/pkg/database"
)

type ConfigServiceImpl struct {
	db         *database.DB
	configRepo attendance.ConfigRepository
}

func NewConfigService(db *database.DB, configRepo attendance.ConfigRepository) attendance.ConfigService {
	return &ConfigServiceImpl{
		db:         db,
		configRepo: configRepo,
	}
}

func (s *ConfigServiceImpl) CreateConfig(ctx context.Context, req attendance.CreateConfigRequest) (attendance.ConfigResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.ConfigResponse{}, err
	}

	created, err := s.configRepo.Create(ctx, attendance.Config{
		WorkStartTime:    req.WorkStartTime,
		WorkEndTime:      req.WorkEndTime,
		LateThreshold:    req.LateThreshold,
		LocationRequired: req.LocationRequired,
		PhotoRequired:    req.PhotoRequired,
		OfficeLocations:  req.OfficeLocations,
		MaxDistanceMeter: req.MaxDistanceMeter,
		WorkingDays:      req.WorkingDays,
		IsActive:         true,
		DepartmentID:     req.DepartmentID,
	})
	if err != nil {
		return attendance.ConfigResponse{}, err
	}

	return attendance.ConfigToResponse(created), nil
}

func (s *ConfigServiceImpl) GetConfig(ctx context.Context, id string) (attendance.ConfigResponse, error) {
	cfg, err := s.configRepo.GetByID(ctx, id)
	if err != nil {
		return attendance.ConfigResponse{}, err
	}

	return attendance.ConfigToResponse(cfg), nil
}

func (s *ConfigServiceImpl) ListConfigs(ctx context.Context) ([]attendance.ConfigResponse, error) {
	configs, err := s.configRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]attendance.ConfigResponse, 0, len(configs))
	for _, cfg := range configs {
		responses = append(responses, attendance.ConfigToResponse(cfg))
	}

	return responses, nil
}

func (s *ConfigServiceImpl) UpdateConfig(ctx context.Context, req attendance.UpdateConfigRequest) (attendance.ConfigResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.ConfigResponse{}, err
	}

	cfg, err := s.configRepo.GetByID(ctx, req.ID)
	if err != nil {
		return attendance.ConfigResponse{}, err
	}

	if req.WorkStartTime != nil {
		cfg.WorkStartTime = *req.WorkStartTime
	}
	if req.WorkEndTime != nil {
		cfg.WorkEndTime = *req.WorkEndTime
	}
	if req.LateThreshold != nil {
		cfg.LateThreshold = *req.LateThreshold
	}
	if req.LocationRequired != nil {
		cfg.LocationRequired = *req.LocationRequired
	}
	if req.PhotoRequired != nil {
		cfg.PhotoRequired = *req.PhotoRequired
	}
	if req.OfficeLocations != nil {
		cfg.OfficeLocations = req.OfficeLocations
	}
	if req.MaxDistanceMeter != nil {
		cfg.MaxDistanceMeter = *req.MaxDistanceMeter
	}
	if req.WorkingDays != nil {
		cfg.WorkingDays = req.WorkingDays
	}
	if req.IsActive != nil {
		cfg.IsActive = *req.IsActive
	}

	if err := s.configRepo.Update(ctx, cfg); err != nil {
		return attendance.ConfigResponse{}, err
	}

	return attendance.ConfigToResponse(cfg), nil
}

func (s *ConfigServiceImpl) DeleteConfig(ctx context.Context, id string) error {
	return s.configRepo.Delete(ctx, id)
}
