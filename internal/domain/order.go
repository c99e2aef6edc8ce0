package domain

import "time"

type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusConfirmed OrderStatus = "confirmed"
	StatusShipped   OrderStatus = "shipped"
	StatusDelivered OrderStatus = "delivered"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusShipped, StatusDelivered:
		return true
	}
	return false
}

type Order struct {
	ID         string      `gorm:"primaryKey;type:varchar(32)" json:"id"`
	UserID     string      `gorm:"type:varchar(32);index;not null" json:"userId"`
	TotalPrice int64       `gorm:"not null;default:0" json:"totalPrice"`
	Status     OrderStatus `gorm:"size:10;not null" json:"status"`
	CreatedAt  time.Time   `gorm:"autoCreateTime" json:"createdAt"` // 写入后不再变更

	// Order 独占其条目，随单级联删除
	Items []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
}

func (Order) TableName() string { return "orders" }

type OrderItem struct {
	ID       string `gorm:"primaryKey;type:varchar(32)" json:"id"`
	OrderID  string `gorm:"type:varchar(32);index;not null" json:"orderId"`
	PlantID  string `gorm:"type:varchar(32);index;not null" json:"plantId"`
	Quantity int    `gorm:"not null" json:"quantity"` // 创建时必须为正

	Plant *Plant `gorm:"foreignKey:PlantID;constraint:OnDelete:CASCADE" json:"plant,omitempty"`
}

func (OrderItem) TableName() string { return "order_items" }

// CartLine 客户端提交的 (plant, quantity) 购买请求
type CartLine struct {
	PlantID  string `json:"plant_id" binding:"required"`
	Quantity int    `json:"quantity" binding:"required"`
}

type OrderRepository interface {
	Create(o *Order) error
	CreateItems(items []OrderItem) error
	// FindByID 带 items + plant 预加载
	FindByID(id string) (*Order, error)
	// ListByUser 按 created_at 倒序
	ListByUser(userID string) ([]Order, error)
	Update(o *Order) error
}
