package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go-plant-shop/internal/core/cache"
	"go-plant-shop/internal/domain"
)

const (
	plantListCacheKey = "plants:all"
	plantListCacheTTL = 5 * time.Minute
)

type CatalogService struct {
	plants domain.PlantRepository
	cache  *cache.Cache // 可为 nil
}

func NewCatalogService(plants domain.PlantRepository, c *cache.Cache) *CatalogService {
	return &CatalogService{plants: plants, cache: c}
}

// List 目录页：按 name 升序，配了 redis 就走读穿缓存
func (s *CatalogService) List(ctx context.Context) ([]domain.Plant, error) {
	if s.cache == nil {
		return s.plants.List()
	}
	out, err := cache.GetOrLoadJSON(s.cache, ctx, plantListCacheKey, plantListCacheTTL,
		func(ctx context.Context) (*[]domain.Plant, error) {
			ps, e := s.plants.List()
			if e != nil {
				return nil, e
			}
			return &ps, nil
		})
	if err != nil {
		// 缓存故障不拦请求，直接回源
		return s.plants.List()
	}
	if out == nil {
		return []domain.Plant{}, nil
	}
	return *out, nil
}

func (s *CatalogService) Get(ctx context.Context, id string) (*domain.Plant, error) {
	p, err := s.plants.FindByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, fmt.Errorf("%w: plant %s", domain.ErrNotFound, id)
	}
	return p, nil
}

func (s *CatalogService) Create(ctx context.Context, p *domain.Plant) error {
	if err := validatePlant(p); err != nil {
		return err
	}
	if err := s.plants.Create(p); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *CatalogService) Update(ctx context.Context, p *domain.Plant) error {
	if err := validatePlant(p); err != nil {
		return err
	}
	cur, err := s.plants.FindByID(p.ID)
	if err != nil {
		return err
	}
	if cur == nil {
		return fmt.Errorf("%w: plant %s", domain.ErrNotFound, p.ID)
	}
	p.CreatedAt = cur.CreatedAt
	if err := s.plants.Update(p); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *CatalogService) Delete(ctx context.Context, id string) error {
	if err := s.plants.Delete(id); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *CatalogService) invalidate(ctx context.Context) {
	if s.cache != nil {
		_ = s.cache.Del(ctx, plantListCacheKey)
	}
}

func validatePlant(p *domain.Plant) error {
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if p.Price < 0 {
		return fmt.Errorf("%w: price must be >= 0", domain.ErrValidation)
	}
	if p.Stock < 0 {
		return fmt.Errorf("%w: stock must be >= 0", domain.ErrValidation)
	}
	return nil
}
