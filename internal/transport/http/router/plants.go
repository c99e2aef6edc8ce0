package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-plant-shop/internal/domain"
	"go-plant-shop/internal/service"
	httpez "go-plant-shop/internal/transport/http/ez"
)

// 目录浏览是公开页面，不挂鉴权
func mountPlantActions(api *gin.RouterGroup, catalog *service.CatalogService) {
	ez := httpez.New(api)

	type listOut struct {
		Items []domain.Plant `json:"items"`
		Total int            `json:"total"`
	}
	httpez.RegisterAction[struct{}, listOut](ez, httpez.Action[struct{}, listOut]{
		Method: http.MethodGet,
		Path:   "/plants",
		Binder: httpez.BindNone,
		Handler: func(c *gin.Context, _ *struct{}) (listOut, error) {
			plants, err := catalog.List(c)
			if err != nil {
				return listOut{}, httpez.Internal("list plants failed", err)
			}
			return listOut{Items: plants, Total: len(plants)}, nil
		},
	})

	httpez.RegisterAction[struct{}, *domain.Plant](ez, httpez.Action[struct{}, *domain.Plant]{
		Method: http.MethodGet,
		Path:   "/plants/:id",
		Binder: httpez.BindNone,
		Handler: func(c *gin.Context, _ *struct{}) (*domain.Plant, error) {
			return catalog.Get(c, c.Param("id"))
		},
	})
}
