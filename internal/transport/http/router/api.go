package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"go-plant-shop/internal/core/auth"
	"go-plant-shop/internal/core/cache"
	"go-plant-shop/internal/repo"
	"go-plant-shop/internal/service"
	httpez "go-plant-shop/internal/transport/http/ez"
	mdw "go-plant-shop/internal/transport/http/middleware"
)

// NewAPIEngine 商店前台：目录浏览公开，下单/订单需要登录
func NewAPIEngine(l *zap.Logger, db *gorm.DB, jwter *auth.JWTer, c *cache.Cache) *gin.Engine {
	r := gin.New()

	r.Use(
		mdw.RequestID(),
		cors.Default(),
		mdw.RateLimit(200, 400),
		mdw.ConcurrencyLimit(300),
		mdw.MaxBodyBytes(1<<20),
		mdw.Timeout(10*time.Second),
		ginzap.RecoveryWithZap(l, true),
		mdw.Metrics(),
		mdw.AccessLog(l),
	)

	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": 1}) })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	accounts := service.NewAccountService(repo.NewUserRepo(db))
	catalog := service.NewCatalogService(repo.NewPlantRepo(db), c)
	checkout := service.NewCheckoutService(db, c)

	api := r.Group("/api/v1")

	// 鉴权分组（/me、/orders 必须挂这里才能拿到 userId）
	authed := api.Group("")
	authed.Use(mdw.AuthJWT(jwter, ""))

	mountAuthActions(api, authed, accounts, jwter)
	mountPlantActions(api, catalog)
	mountOrderActions(authed, checkout)

	return r
}

type userOut struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Admin bool   `json:"admin"`
}

// ---------- /auth/signup、/auth/login、/me ----------

func mountAuthActions(api, authed *gin.RouterGroup, accounts *service.AccountService, jwter *auth.JWTer) {
	ezPublic := httpez.New(api)

	type signupIn struct {
		Email    string `json:"email"    binding:"required,email"`
		Password string `json:"password" binding:"required,min=6"`
		Name     string `json:"name"     binding:"omitempty,max=150"`
	}
	type tokenOut struct {
		Token string  `json:"token"`
		User  userOut `json:"user"`
	}
	httpez.RegisterAction[signupIn, tokenOut](ezPublic, httpez.Action[signupIn, tokenOut]{
		Method: http.MethodPost,
		Path:   "/auth/signup",
		Binder: httpez.BindJSON,
		Handler: func(c *gin.Context, in *signupIn) (tokenOut, error) {
			u, err := accounts.Register(c, in.Email, in.Password, in.Name, false)
			if err != nil {
				return tokenOut{}, err
			}
			tok, err := jwter.Issue(u.ID, u.Role())
			if err != nil {
				return tokenOut{}, httpez.Internal("issue token failed", err)
			}
			return tokenOut{Token: tok, User: userOut{ID: u.ID, Email: u.Email, Name: u.Name, Admin: u.Admin}}, nil
		},
	})

	type loginIn struct {
		Email    string `json:"email"    binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	httpez.RegisterAction[loginIn, tokenOut](ezPublic, httpez.Action[loginIn, tokenOut]{
		Method: http.MethodPost,
		Path:   "/auth/login",
		Binder: httpez.BindJSON,
		Handler: func(c *gin.Context, in *loginIn) (tokenOut, error) {
			u, err := accounts.Authenticate(c, in.Email, in.Password)
			if err != nil {
				return tokenOut{}, err
			}
			tok, err := jwter.Issue(u.ID, u.Role())
			if err != nil {
				return tokenOut{}, httpez.Internal("issue token failed", err)
			}
			return tokenOut{Token: tok, User: userOut{ID: u.ID, Email: u.Email, Name: u.Name, Admin: u.Admin}}, nil
		},
	})

	ezAuth := httpez.New(authed)
	httpez.RegisterAction[struct{}, userOut](ezAuth, httpez.Action[struct{}, userOut]{
		Method: http.MethodGet,
		Path:   "/me",
		Binder: httpez.BindNone,
		Handler: func(c *gin.Context, _ *struct{}) (userOut, error) {
			u, err := accounts.Get(c, c.GetString("userId"))
			if err != nil {
				return userOut{}, err
			}
			return userOut{ID: u.ID, Email: u.Email, Name: u.Name, Admin: u.Admin}, nil
		},
	})
}
