package repo

import (
	"errors"

	"gorm.io/gorm"

	"go-plant-shop/internal/domain"
)

type PlantRepo struct{ db *gorm.DB }

func NewPlantRepo(db *gorm.DB) *PlantRepo { return &PlantRepo{db: db} }

func (r *PlantRepo) Create(p *domain.Plant) error { return r.db.Create(p).Error }

func (r *PlantRepo) FindByID(id string) (*domain.Plant, error) {
	var p domain.Plant
	err := r.db.First(&p, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &p, err
}

func (r *PlantRepo) List() ([]domain.Plant, error) {
	var plants []domain.Plant
	err := r.db.Order("name ASC").Find(&plants).Error
	return plants, err
}

func (r *PlantRepo) Update(p *domain.Plant) error { return r.db.Save(p).Error }

func (r *PlantRepo) Delete(id string) error {
	// 先清掉引用该植物的订单条目（schema 里是级联，SQLite 默认不开外键，这里显式删）
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("plant_id = ?", id).Delete(&domain.OrderItem{}).Error; err != nil {
			return err
		}
		res := tx.Where("id = ?", id).Delete(&domain.Plant{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return domain.ErrNotFound
		}
		return nil
	})
}

// DecrementStock 原子条件扣减，防止并发下单把库存扣成负数
func (r *PlantRepo) DecrementStock(plantID string, qty int) error {
	res := r.db.Model(&domain.Plant{}).
		Where("id = ? AND stock >= ?", plantID, qty).
		Update("stock", gorm.Expr("stock - ?", qty))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrInsufficientStock
	}
	return nil
}
