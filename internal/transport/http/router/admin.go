package router

import (
	"net/http"
	"time"

	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"go-plant-shop/internal/core/auth"
	"go-plant-shop/internal/core/cache"
	"go-plant-shop/internal/repo"
	"go-plant-shop/internal/service"
	mdw "go-plant-shop/internal/transport/http/middleware"
)

// NewAdminEngine 后台端：整组统一要求 admin 角色
func NewAdminEngine(l *zap.Logger, db *gorm.DB, jwter *auth.JWTer, c *cache.Cache) *gin.Engine {
	r := gin.New()

	r.Use(
		mdw.RequestID(),
		mdw.RateLimit(200, 400),
		mdw.ConcurrencyLimit(300),
		mdw.MaxBodyBytes(1<<20),
		mdw.Timeout(10*time.Second),
		ginzap.RecoveryWithZap(l, true),
		mdw.Metrics(),
		mdw.AccessLog(l),
	)

	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": 1}) })

	catalog := service.NewCatalogService(repo.NewPlantRepo(db), c)
	accounts := service.NewAccountService(repo.NewUserRepo(db))

	admin := r.Group("/admin/v1")
	admin.Use(mdw.AuthJWT(jwter, "admin"))

	MountAdminPlants(admin, catalog)
	MountAdminUsers(admin, accounts)

	return r
}
