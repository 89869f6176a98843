package permission

import (
	"context"

	"github.com/karyahr/ess-backend-go/internal/domain/permission"
	"github.com/karyahr/ess-backend-go/internal/pkg/database"
)

type ConfigServiceImpl struct {
	db         *database.DB
	configRepo permission.ConfigRepository
}

func NewConfigService(db *database.DB, configRepo permission.ConfigRepository) permission.ConfigService {
	return &ConfigServiceImpl{
		db:         db,
		configRepo: configRepo,
	}
}

func (s *ConfigServiceImpl) CreateConfig(ctx context.Context, req permission.CreateConfigRequest) (permission.ConfigResponse, error) {
	if err := req.Validate(); err != nil {
		return permission.ConfigResponse{}, err
	}

	// One active config per type.
	exists, err := s.configRepo.HasActiveByType(ctx, permission.Type(req.Type), nil)
	if err != nil {
		return permission.ConfigResponse{}, err
	}
	if exists {
		return permission.ConfigResponse{}, permission.ErrConfigTypeExists
	}

	created, err := s.configRepo.Create(ctx, permission.Config{
		Type:            permission.Type(req.Type),
		Label:           req.Label,
		MaxPerMonth:     req.MaxPerMonth,
		MaxDurationDays: req.MaxDurationDays,
		Description:     req.Description,
		IsActive:        true,
	})
	if err != nil {
		return permission.ConfigResponse{}, err
	}

	return permission.ConfigToResponse(created), nil
}

func (s *ConfigServiceImpl) GetConfig(ctx context.Context, id string) (permission.ConfigResponse, error) {
	cfg, err := s.configRepo.GetByID(ctx, id)
	if err != nil {
		return permission.ConfigResponse{}, err
	}

	return permission.ConfigToResponse(cfg), nil
}

func (s *ConfigServiceImpl) ListConfigs(ctx context.Context, activeOnly bool) ([]permission.ConfigResponse, error) {
	configs, err := s.configRepo.List(ctx, activeOnly)
	if err != nil {
		return nil, err
	}

	responses := make([]permission.ConfigResponse, 0, len(configs))
	for _, cfg := range configs {
		responses = append(responses, permission.ConfigToResponse(cfg))
	}

	return responses, nil
}

func (s *ConfigServiceImpl) UpdateConfig(ctx context.Context, req permission.UpdateConfigRequest) (permission.ConfigResponse, error) {
	if err := req.Validate(); err != nil {
		return permission.ConfigResponse{}, err
	}

	cfg, err := s.configRepo.GetByID(ctx, req.ID)
	if err != nil {
		return permission.ConfigResponse{}, err
	}

	if req.Label != nil {
		cfg.Label = *req.Label
	}
	if req.MaxPerMonth != nil {
		cfg.MaxPerMonth = *req.MaxPerMonth
	}
	if req.MaxDurationDays != nil {
		cfg.MaxDurationDays = *req.MaxDurationDays
	}
	if req.Description != nil {
		cfg.Description = req.Description
	}
	if req.IsActive != nil {
		if *req.IsActive && !cfg.IsActive {
			exists, err := s.configRepo.HasActiveByType(ctx, cfg.Type, &cfg.ID)
			if err != nil {
				return permission.ConfigResponse{}, err
			}
			if exists {
				return permission.ConfigResponse{}, permission.ErrConfigTypeExists
			}
		}
		cfg.IsActive = *req.IsActive
	}

	if err := s.configRepo.Update(ctx, cfg); err != nil {
		return permission.ConfigResponse{}, err
	}

	return permission.ConfigToResponse(cfg), nil
}

func (s *ConfigServiceImpl) DeleteConfig(ctx context.Context, id string) error {
	return s.configRepo.Delete(ctx, id)
}
