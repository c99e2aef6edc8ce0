package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-plant-shop/internal/domain"
	"go-plant-shop/internal/service"
	httpez "go-plant-shop/internal/transport/http/ez"
	mdw "go-plant-shop/internal/transport/http/middleware"
)

// 订单接口全部要求登录，归属按 token 里的 userId 收口
func mountOrderActions(authed *gin.RouterGroup, checkout *service.CheckoutService) {
	ez := httpez.New(authed)

	type listOut struct {
		Items []domain.Order `json:"items"`
		Total int            `json:"total"`
	}
	httpez.RegisterAction[struct{}, listOut](ez, httpez.Action[struct{}, listOut]{
		Method: http.MethodGet,
		Path:   "/orders",
		Binder: httpez.BindNone,
		Handler: func(c *gin.Context, _ *struct{}) (listOut, error) {
			orders, err := checkout.ListOrders(c, c.GetString("userId"))
			if err != nil {
				return listOut{}, httpez.Internal("list orders failed", err)
			}
			return listOut{Items: orders, Total: len(orders)}, nil
		},
	})

	httpez.RegisterAction[struct{}, *domain.Order](ez, httpez.Action[struct{}, *domain.Order]{
		Method: http.MethodGet,
		Path:   "/orders/:id",
		Binder: httpez.BindNone,
		Handler: func(c *gin.Context, _ *struct{}) (*domain.Order, error) {
			return checkout.GetOrder(c, c.GetString("userId"), c.Param("id"))
		},
	})

	// 结账：购物车行 → 订单；成功后前端拿 redirect 刷新订单列表
	type checkoutIn struct {
		Items []domain.CartLine `json:"items" binding:"required"`
	}
	type checkoutOut struct {
		Order    *domain.Order `json:"order"`
		Redirect string        `json:"redirect"`
	}
	httpez.RegisterAction[checkoutIn, checkoutOut](ez, httpez.Action[checkoutIn, checkoutOut]{
		Method: http.MethodPost,
		Path:   "/orders",
		Binder: httpez.BindJSON,
		Handler: func(c *gin.Context, in *checkoutIn) (checkoutOut, error) {
			o, err := checkout.PlaceOrder(c, c.GetString("userId"), in.Items)
			if err != nil {
				return checkoutOut{}, err
			}
			mdw.OrdersPlaced.Inc()
			return checkoutOut{Order: o, Redirect: "/orders/?cleared=1"}, nil
		},
	})
}
