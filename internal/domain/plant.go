package domain

import "time"

type Plant struct {
	ID          string `gorm:"primaryKey;type:varchar(32)" json:"id"`
	Name        string `gorm:"size:100;not null" json:"name"`
	Price       int64  `gorm:"not null" json:"price"` // 货币最小单位，非负
	Description string `gorm:"type:text" json:"description"`
	Stock       int    `gorm:"not null" json:"stock"` // 不变式：任何成功操作之后 stock >= 0

	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (Plant) TableName() string { return "plants" }

type PlantRepository interface {
	Create(p *Plant) error
	FindByID(id string) (*Plant, error)
	// List 按 name 升序
	List() ([]Plant, error)
	Update(p *Plant) error
	Delete(id string) error
	// DecrementStock 条件扣减：stock >= qty 时才生效，否则返回 ErrInsufficientStock
	DecrementStock(plantID string, qty int) error
}
