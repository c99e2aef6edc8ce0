// Package seed 生成开发用演示数据，对应老站的 seed 脚本：
// 清库 → 管理员 → 普通用户 → 植物 → 每人一张演示订单，凭据写入 users.txt。
package seed

import (
	"fmt"
	"os"

	"github.com/brianvoe/gofakeit/v7"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"go-plant-shop/internal/domain"
	"go-plant-shop/pkg/utils"
)

type Options struct {
	Admins          int
	Users           int
	Plants          int
	CredentialsFile string // 留空则不写 users.txt
}

const seedPassword = "password"

func Run(db *gorm.DB, log *zap.Logger, o Options) error {
	log.Info("seeding started",
		zap.Int("admins", o.Admins), zap.Int("users", o.Users), zap.Int("plants", o.Plants))

	if err := reset(db); err != nil {
		return fmt.Errorf("reset: %w", err)
	}

	admins, err := createAdmins(db, o.Admins)
	if err != nil {
		return fmt.Errorf("admins: %w", err)
	}
	users, err := createUsers(db, o.Users)
	if err != nil {
		return fmt.Errorf("users: %w", err)
	}
	if o.CredentialsFile != "" {
		if err := writeCredentials(o.CredentialsFile, admins, users); err != nil {
			return fmt.Errorf("credentials: %w", err)
		}
	}
	plants, err := createPlants(db, o.Plants)
	if err != nil {
		return fmt.Errorf("plants: %w", err)
	}
	if err := createOrders(db, append(admins, users...), plants); err != nil {
		return fmt.Errorf("orders: %w", err)
	}

	log.Info("seeding done")
	return nil
}

func reset(db *gorm.DB) error {
	for _, m := range []any{
		&domain.OrderItem{}, &domain.Order{}, &domain.Plant{}, &domain.User{},
	} {
		if err := db.Unscoped().Where("1 = 1").Delete(m).Error; err != nil {
			return err
		}
	}
	return nil
}

func createAdmins(db *gorm.DB, n int) ([]domain.User, error) {
	admins := make([]domain.User, 0, n)
	for i := 0; i < n; i++ {
		u := domain.User{
			ID:           utils.NewID(),
			Email:        fmt.Sprintf("admin%d@plantshop.com", i+1),
			Name:         gofakeit.Name(),
			Admin:        true,
			PasswordHash: utils.HashPassword(seedPassword),
		}
		if err := db.Create(&u).Error; err != nil {
			return nil, err
		}
		admins = append(admins, u)
	}
	return admins, nil
}

func createUsers(db *gorm.DB, n int) ([]domain.User, error) {
	users := make([]domain.User, 0, n)
	seen := map[string]struct{}{}
	for i := 0; i < n; i++ {
		email := gofakeit.Email()
		for {
			if _, dup := seen[email]; !dup {
				break
			}
			email = gofakeit.Email()
		}
		seen[email] = struct{}{}
		u := domain.User{
			ID:           utils.NewID(),
			Email:        email,
			Name:         gofakeit.Name(),
			PasswordHash: utils.HashPassword(seedPassword),
		}
		if err := db.Create(&u).Error; err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, nil
}

func writeCredentials(path string, admins, users []domain.User) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	fmt.Fprintln(f, "Generated accounts:")
	fmt.Fprintln(f, "\nAdmins")
	for _, a := range admins {
		fmt.Fprintf(f, "%s %s\n", a.Email, seedPassword)
	}
	fmt.Fprintln(f, "\nUsers")
	for _, u := range users {
		fmt.Fprintf(f, "%s %s\n", u.Email, seedPassword)
	}
	return nil
}

func createPlants(db *gorm.DB, n int) ([]domain.Plant, error) {
	plants := make([]domain.Plant, 0, n)
	for i := 0; i < n; i++ {
		p := domain.Plant{
			ID:          utils.NewID(),
			Name:        plantName(i),
			Price:       int64(gofakeit.Number(5, 50)),
			Description: gofakeit.Sentence(10),
			Stock:       gofakeit.Number(5, 30),
		}
		if err := db.Create(&p).Error; err != nil {
			return nil, err
		}
		plants = append(plants, p)
	}
	return plants, nil
}

// createOrders 给每个账号造一张演示订单：最多两行，数量截到剩余库存
// （演示数据截断，真实下单流程是直接拒绝，两边策略故意不同）
func createOrders(db *gorm.DB, users []domain.User, plants []domain.Plant) error {
	if len(plants) == 0 {
		return nil
	}
	statuses := []domain.OrderStatus{
		domain.StatusConfirmed, domain.StatusPending, domain.StatusShipped, domain.StatusDelivered,
	}
	for _, u := range users {
		order := domain.Order{
			ID:     utils.NewID(),
			UserID: u.ID,
			Status: statuses[gofakeit.Number(0, len(statuses)-1)],
		}
		if err := db.Create(&order).Error; err != nil {
			return err
		}
		var total int64
		for range 2 {
			p := &plants[gofakeit.Number(0, len(plants)-1)]
			qty := min(gofakeit.Number(1, 5), p.Stock)
			if qty == 0 {
				continue
			}
			item := domain.OrderItem{
				ID:       utils.NewID(),
				OrderID:  order.ID,
				PlantID:  p.ID,
				Quantity: qty,
			}
			if err := db.Create(&item).Error; err != nil {
				return err
			}
			p.Stock -= qty
			if err := db.Model(&domain.Plant{}).Where("id = ?", p.ID).
				Update("stock", p.Stock).Error; err != nil {
				return err
			}
			total += p.Price * int64(qty)
		}
		if err := db.Model(&domain.Order{}).Where("id = ?", order.ID).
			Update("total_price", total).Error; err != nil {
			return err
		}
	}
	return nil
}

func plantName(i int) string {
	if i >= len(plantNames) {
		return fmt.Sprintf("%s %d", plantNames[i%len(plantNames)], i/len(plantNames)+1)
	}
	return plantNames[i%len(plantNames)]
}
