package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-plant-shop/internal/domain"
	"go-plant-shop/internal/service"
	httpez "go-plant-shop/internal/transport/http/ez"
	"go-plant-shop/pkg/utils"
)

// MountAdminPlants 目录管理（分组已走 AuthJWT("admin")）
func MountAdminPlants(admin *gin.RouterGroup, catalog *service.CatalogService) {
	ez := httpez.New(admin)

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

	type plantIn struct {
		Name        string `json:"name"        binding:"required,max=100"`
		Price       int64  `json:"price"       binding:"min=0"`
		Description string `json:"description"`
		Stock       int    `json:"stock"       binding:"min=0"`
	}
	httpez.RegisterAction[plantIn, *domain.Plant](ez, httpez.Action[plantIn, *domain.Plant]{
		Method: http.MethodPost,
		Path:   "/plants",
		Binder: httpez.BindJSON,
		Handler: func(c *gin.Context, in *plantIn) (*domain.Plant, error) {
			p := &domain.Plant{
				ID:          utils.NewID(),
				Name:        in.Name,
				Price:       in.Price,
				Description: in.Description,
				Stock:       in.Stock,
			}
			if err := catalog.Create(c, p); err != nil {
				return nil, err
			}
			return p, nil
		},
	})

	httpez.RegisterAction[plantIn, *domain.Plant](ez, httpez.Action[plantIn, *domain.Plant]{
		Method: http.MethodPut,
		Path:   "/plants/:id",
		Binder: httpez.BindJSON,
		Handler: func(c *gin.Context, in *plantIn) (*domain.Plant, error) {
			p := &domain.Plant{
				ID:          c.Param("id"),
				Name:        in.Name,
				Price:       in.Price,
				Description: in.Description,
				Stock:       in.Stock,
			}
			if err := catalog.Update(c, p); err != nil {
				return nil, err
			}
			return p, nil
		},
	})

	httpez.RegisterAction[struct{}, gin.H](ez, httpez.Action[struct{}, gin.H]{
		Method: http.MethodDelete,
		Path:   "/plants/:id",
		Binder: httpez.BindNone,
		Handler: func(c *gin.Context, _ *struct{}) (gin.H, error) {
			id := c.Param("id")
			if err := catalog.Delete(c, id); err != nil {
				return nil, err
			}
			return gin.H{"id": id}, nil
		},
	})
}
