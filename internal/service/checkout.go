package service

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"go-plant-shop/internal/core/cache"
	"go-plant-shop/internal/domain"
	"go-plant-shop/internal/repo"
	"go-plant-shop/pkg/utils"
)

// CheckoutService 把购物车行转成已落库的订单。
// 整个流程跑在一个事务里：任何一行失败，订单/条目/库存全部回滚。
type CheckoutService struct {
	db    *gorm.DB
	cache *cache.Cache // 可为 nil；下单改了库存要打掉目录缓存
}

func NewCheckoutService(db *gorm.DB, c *cache.Cache) *CheckoutService {
	return &CheckoutService{db: db, cache: c}
}

func (s *CheckoutService) PlaceOrder(ctx context.Context, userID string, lines []domain.CartLine) (*domain.Order, error) {
	if len(lines) == 0 {
		return nil, fmt.Errorf("%w: empty cart", domain.ErrValidation)
	}
	for i, ln := range lines {
		if ln.PlantID == "" {
			return nil, fmt.Errorf("%w: line %d missing plant_id", domain.ErrValidation, i)
		}
		if ln.Quantity <= 0 {
			return nil, fmt.Errorf("%w: line %d quantity must be positive", domain.ErrValidation, i)
		}
	}

	order := &domain.Order{
		ID:     utils.NewID(),
		UserID: userID,
		Status: domain.StatusConfirmed,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var (
			plants domain.PlantRepository = repo.NewPlantRepo(tx)
			orders domain.OrderRepository = repo.NewOrderRepo(tx)
		)
		if err := orders.Create(order); err != nil {
			return err
		}

		var total int64
		for _, ln := range lines {
			p, err := plants.FindByID(ln.PlantID)
			if err != nil {
				return err
			}
			if p == nil {
				return fmt.Errorf("%w: plant %s", domain.ErrNotFound, ln.PlantID)
			}
			// 逐行扣库存：条件更新，不够就整单失败
			if err := plants.DecrementStock(p.ID, ln.Quantity); err != nil {
				return fmt.Errorf("%s: %w", p.Name, err)
			}
			if err := orders.CreateItems([]domain.OrderItem{{
				ID:       utils.NewID(),
				OrderID:  order.ID,
				PlantID:  p.ID,
				Quantity: ln.Quantity,
			}}); err != nil {
				return err
			}
			total += p.Price * int64(ln.Quantity)
		}

		// 全部行处理完再落 total（一次）
		order.TotalPrice = total
		return orders.Update(order)
	})
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		_ = s.cache.Del(ctx, plantListCacheKey)
	}

	placed, err := repo.NewOrderRepo(s.db.WithContext(ctx)).FindByID(order.ID)
	if err != nil {
		return nil, err
	}
	return placed, nil
}

// ListOrders 当前用户的订单，最新在前
func (s *CheckoutService) ListOrders(ctx context.Context, userID string) ([]domain.Order, error) {
	return repo.NewOrderRepo(s.db.WithContext(ctx)).ListByUser(userID)
}

// GetOrder 只允许订单归属人查看
func (s *CheckoutService) GetOrder(ctx context.Context, userID, orderID string) (*domain.Order, error) {
	o, err := repo.NewOrderRepo(s.db.WithContext(ctx)).FindByID(orderID)
	if err != nil {
		return nil, err
	}
	if o == nil || o.UserID != userID {
		return nil, fmt.Errorf("%w: order %s", domain.ErrNotFound, orderID)
	}
	return o, nil
}
