package router_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"go-plant-shop/internal/core/auth"
	"go-plant-shop/internal/domain"
	"go-plant-shop/internal/transport/http/router"
	"go-plant-shop/pkg/utils"
)

type envelope struct {
	Code int             `json:"code"`
	Msg  string          `json:"msg"`
	Data json.RawMessage `json:"data"`
}

func newJWTer() *auth.JWTer {
	return &auth.JWTer{Secret: []byte("test-secret"), Issuer: "plant-shop", TTL: time.Hour}
}

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&domain.User{}, &domain.Plant{}, &domain.Order{}, &domain.OrderItem{},
	))
	return db
}

func do(t *testing.T, e *gin.Engine, method, path, token string, body any) envelope {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	e.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env
}

func signup(t *testing.T, e *gin.Engine, email string) string {
	t.Helper()
	env := do(t, e, http.MethodPost, "/api/v1/auth/signup", "", gin.H{
		"email": email, "password": "s3cret99", "name": "Tester",
	})
	require.Equal(t, 0, env.Code, env.Msg)
	var out struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &out))
	require.NotEmpty(t, out.Token)
	return out.Token
}

func seedPlant(t *testing.T, db *gorm.DB, name string, price int64, stock int) *domain.Plant {
	t.Helper()
	p := &domain.Plant{ID: utils.NewID(), Name: name, Price: price, Description: "x", Stock: stock}
	require.NoError(t, db.Create(p).Error)
	return p
}

func TestStorefrontCheckoutFlow(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db := openTestDB(t)
	e := router.NewAPIEngine(zap.NewNop(), db, newJWTer(), nil)

	plant := seedPlant(t, db, "Rose", 10, 5)
	token := signup(t, e, "buyer@example.com")

	// 公开目录
	env := do(t, e, http.MethodGet, "/api/v1/plants", "", nil)
	require.Equal(t, 0, env.Code)
	var list struct {
		Items []domain.Plant `json:"items"`
		Total int            `json:"total"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &list))
	assert.Equal(t, 1, list.Total)

	// 下单
	env = do(t, e, http.MethodPost, "/api/v1/orders", token, gin.H{
		"items": []gin.H{{"plant_id": plant.ID, "quantity": 3}},
	})
	require.Equal(t, 0, env.Code, env.Msg)
	var placed struct {
		Order    domain.Order `json:"order"`
		Redirect string       `json:"redirect"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &placed))
	assert.Equal(t, int64(30), placed.Order.TotalPrice)
	assert.Equal(t, domain.StatusConfirmed, placed.Order.Status)
	assert.Equal(t, "/orders/?cleared=1", placed.Redirect)

	// 库存扣了
	env = do(t, e, http.MethodGet, "/api/v1/plants/"+plant.ID, "", nil)
	require.Equal(t, 0, env.Code)
	var got domain.Plant
	require.NoError(t, json.Unmarshal(env.Data, &got))
	assert.Equal(t, 2, got.Stock)

	// 订单列表能看到
	env = do(t, e, http.MethodGet, "/api/v1/orders", token, nil)
	require.Equal(t, 0, env.Code)
	var orders struct {
		Items []domain.Order `json:"items"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &orders))
	require.Len(t, orders.Items, 1)
	assert.Equal(t, placed.Order.ID, orders.Items[0].ID)
}

func TestCheckoutErrorsOverHTTP(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db := openTestDB(t)
	e := router.NewAPIEngine(zap.NewNop(), db, newJWTer(), nil)

	plant := seedPlant(t, db, "Rose", 10, 2)
	token := signup(t, e, "buyer@example.com")

	// 未登录
	env := do(t, e, http.MethodPost, "/api/v1/orders", "", gin.H{
		"items": []gin.H{{"plant_id": plant.ID, "quantity": 1}},
	})
	assert.Equal(t, 401, env.Code)

	// 不存在的植物
	env = do(t, e, http.MethodPost, "/api/v1/orders", token, gin.H{
		"items": []gin.H{{"plant_id": "missing", "quantity": 1}},
	})
	assert.Equal(t, 404, env.Code)

	// 库存不够
	env = do(t, e, http.MethodPost, "/api/v1/orders", token, gin.H{
		"items": []gin.H{{"plant_id": plant.ID, "quantity": 5}},
	})
	assert.Equal(t, 409, env.Code)

	// 空购物车
	env = do(t, e, http.MethodPost, "/api/v1/orders", token, gin.H{"items": []gin.H{}})
	assert.Equal(t, 422, env.Code)

	// 全挂了也不能留下半张订单
	var n int64
	require.NoError(t, db.Model(&domain.Order{}).Count(&n).Error)
	assert.EqualValues(t, 0, n)
}

func TestLoginAndMe(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db := openTestDB(t)
	e := router.NewAPIEngine(zap.NewNop(), db, newJWTer(), nil)

	signup(t, e, "alice@example.com")

	env := do(t, e, http.MethodPost, "/api/v1/auth/login", "", gin.H{
		"email": "alice@example.com", "password": "s3cret99",
	})
	require.Equal(t, 0, env.Code, env.Msg)
	var out struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &out))

	env = do(t, e, http.MethodGet, "/api/v1/me", out.Token, nil)
	require.Equal(t, 0, env.Code)
	var me struct {
		Email string `json:"email"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &me))
	assert.Equal(t, "alice@example.com", me.Email)

	// 密码错
	env = do(t, e, http.MethodPost, "/api/v1/auth/login", "", gin.H{
		"email": "alice@example.com", "password": "wrong",
	})
	assert.Equal(t, 401, env.Code)
}

func TestAdminGateAndCatalogManagement(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db := openTestDB(t)
	jwter := newJWTer()
	api := router.NewAPIEngine(zap.NewNop(), db, jwter, nil)
	admin := router.NewAdminEngine(zap.NewNop(), db, jwter, nil)

	userToken := signup(t, api, "user@example.com")

	// 普通用户进不了后台
	env := do(t, admin, http.MethodGet, "/admin/v1/users", userToken, nil)
	assert.Equal(t, 403, env.Code)

	// 直接造一个 admin 账号签 token
	adm := &domain.User{
		ID: utils.NewID(), Email: "root@example.com", Name: "Root",
		Admin: true, PasswordHash: utils.HashPassword("password"),
	}
	require.NoError(t, db.Create(adm).Error)
	admToken, err := jwter.Issue(adm.ID, adm.Role())
	require.NoError(t, err)

	// 建植物
	env = do(t, admin, http.MethodPost, "/admin/v1/plants", admToken, gin.H{
		"name": "Tulipe", "price": 8, "description": "bulbe", "stock": 12,
	})
	require.Equal(t, 0, env.Code, env.Msg)
	var created domain.Plant
	require.NoError(t, json.Unmarshal(env.Data, &created))

	// 校验失败（空名字）
	env = do(t, admin, http.MethodPost, "/admin/v1/plants", admToken, gin.H{
		"name": "   ", "price": 8, "stock": 12,
	})
	assert.NotEqual(t, 0, env.Code)

	// 更新
	env = do(t, admin, http.MethodPut, fmt.Sprintf("/admin/v1/plants/%s", created.ID), admToken, gin.H{
		"name": "Tulipe rouge", "price": 9, "description": "bulbe", "stock": 10,
	})
	require.Equal(t, 0, env.Code, env.Msg)

	// 用户目录：admin 在前
	env = do(t, admin, http.MethodGet, "/admin/v1/users", admToken, nil)
	require.Equal(t, 0, env.Code)
	var users struct {
		Items []struct {
			Email string `json:"email"`
			Admin bool   `json:"admin"`
		} `json:"items"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &users))
	require.Len(t, users.Items, 2)
	assert.True(t, users.Items[0].Admin)

	// 后台建号不传密码 → 默认密码能登录
	env = do(t, admin, http.MethodPost, "/admin/v1/users", admToken, gin.H{
		"email": "new@example.com", "name": "Novice",
	})
	require.Equal(t, 0, env.Code, env.Msg)
	env = do(t, api, http.MethodPost, "/api/v1/auth/login", "", gin.H{
		"email": "new@example.com", "password": "password",
	})
	assert.Equal(t, 0, env.Code, env.Msg)

	// 删除
	env = do(t, admin, http.MethodDelete, fmt.Sprintf("/admin/v1/plants/%s", created.ID), admToken, nil)
	assert.Equal(t, 0, env.Code)
	env = do(t, admin, http.MethodDelete, "/admin/v1/plants/missing", admToken, nil)
	assert.Equal(t, 404, env.Code)
}
