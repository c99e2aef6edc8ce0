package repo

import (
	"errors"

	"gorm.io/gorm"

	"go-plant-shop/internal/domain"
)

type OrderRepo struct{ db *gorm.DB }

func NewOrderRepo(db *gorm.DB) *OrderRepo { return &OrderRepo{db: db} }

func (r *OrderRepo) Create(o *domain.Order) error { return r.db.Create(o).Error }

func (r *OrderRepo) CreateItems(items []domain.OrderItem) error {
	return r.db.Create(&items).Error
}

func (r *OrderRepo) FindByID(id string) (*domain.Order, error) {
	var o domain.Order
	err := r.db.Preload("Items").Preload("Items.Plant").First(&o, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &o, err
}

// ListByUser 订单列表，最新的在前
func (r *OrderRepo) ListByUser(userID string) ([]domain.Order, error) {
	var orders []domain.Order
	err := r.db.Preload("Items").Preload("Items.Plant").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&orders).Error
	return orders, err
}

func (r *OrderRepo) Update(o *domain.Order) error { return r.db.Save(o).Error }
