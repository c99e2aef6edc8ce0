package domain

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	ID           string `gorm:"primaryKey;type:varchar(32)" json:"id"`
	Email        string `gorm:"uniqueIndex;size:255;not null" json:"email"`
	Name         string `gorm:"size:150" json:"name"`
	Admin        bool   `gorm:"not null;default:false" json:"admin"`
	PasswordHash string `gorm:"size:100;not null" json:"-"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (User) TableName() string { return "users" }

// Role JWT 里的角色声明由 admin 标志推导
func (u *User) Role() string {
	if u.Admin {
		return "admin"
	}
	return "user"
}

type UserRepository interface {
	Create(u *User) error
	FindByID(id string) (*User, error)
	FindByEmail(email string) (*User, error)
	// List 后台目录排序：admin 优先，再按 name 升序
	List() ([]User, error)
	Update(u *User) error
	Delete(id string) error
}
