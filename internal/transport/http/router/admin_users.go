package router

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"go-plant-shop/internal/service"
	httpez "go-plant-shop/internal/transport/http/ez"
)

// 后台建号不传密码时的默认值，和老站行为一致
const defaultAdminCreatedPassword = "password"

// MountAdminUsers 用户目录管理（分组已走 AuthJWT("admin")）
func MountAdminUsers(admin *gin.RouterGroup, accounts *service.AccountService) {
	ez := httpez.New(admin)

	type row struct {
		ID        string    `json:"id"`
		Email     string    `json:"email"`
		Name      string    `json:"name"`
		Admin     bool      `json:"admin"`
		CreatedAt time.Time `json:"createdAt"`
	}
	type listOut struct {
		Items []row `json:"items"`
		Total int   `json:"total"`
	}

	httpez.RegisterAction[struct{}, listOut](ez, httpez.Action[struct{}, listOut]{
		Method: http.MethodGet,
		Path:   "/users",
		Binder: httpez.BindNone,
		Handler: func(c *gin.Context, _ *struct{}) (listOut, error) {
			us, err := accounts.List(c)
			if err != nil {
				return listOut{}, httpez.Internal("list users failed", err)
			}
			out := listOut{Total: len(us), Items: make([]row, 0, len(us))}
			for _, u := range us {
				out.Items = append(out.Items, row{
					ID: u.ID, Email: u.Email, Name: u.Name, Admin: u.Admin, CreatedAt: u.CreatedAt,
				})
			}
			return out, nil
		},
	})

	httpez.RegisterAction[struct{}, row](ez, httpez.Action[struct{}, row]{
		Method: http.MethodGet,
		Path:   "/users/:id",
		Binder: httpez.BindNone,
		Handler: func(c *gin.Context, _ *struct{}) (row, error) {
			u, err := accounts.Get(c, c.Param("id"))
			if err != nil {
				return row{}, err
			}
			return row{ID: u.ID, Email: u.Email, Name: u.Name, Admin: u.Admin, CreatedAt: u.CreatedAt}, nil
		},
	})

	type createIn struct {
		Email    string `json:"email"    binding:"required,email"`
		Name     string `json:"name"     binding:"omitempty,max=150"`
		Admin    bool   `json:"admin"`
		Password string `json:"password" binding:"omitempty,min=6"`
	}
	httpez.RegisterAction[createIn, row](ez, httpez.Action[createIn, row]{
		Method: http.MethodPost,
		Path:   "/users",
		Binder: httpez.BindJSON,
		Handler: func(c *gin.Context, in *createIn) (row, error) {
			pw := in.Password
			if pw == "" {
				pw = defaultAdminCreatedPassword
			}
			u, err := accounts.Register(c, in.Email, pw, in.Name, in.Admin)
			if err != nil {
				return row{}, err
			}
			return row{ID: u.ID, Email: u.Email, Name: u.Name, Admin: u.Admin, CreatedAt: u.CreatedAt}, nil
		},
	})

	type updateIn struct {
		Email string `json:"email" binding:"required,email"`
		Name  string `json:"name"  binding:"omitempty,max=150"`
		Admin bool   `json:"admin"`
	}
	httpez.RegisterAction[updateIn, row](ez, httpez.Action[updateIn, row]{
		Method: http.MethodPut,
		Path:   "/users/:id",
		Binder: httpez.BindJSON,
		Handler: func(c *gin.Context, in *updateIn) (row, error) {
			u, err := accounts.UpdateProfile(c, c.Param("id"), in.Email, in.Name, in.Admin)
			if err != nil {
				return row{}, err
			}
			return row{ID: u.ID, Email: u.Email, Name: u.Name, Admin: u.Admin, CreatedAt: u.CreatedAt}, nil
		},
	})

	httpez.RegisterAction[struct{}, gin.H](ez, httpez.Action[struct{}, gin.H]{
		Method: http.MethodDelete,
		Path:   "/users/:id",
		Binder: httpez.BindNone,
		Handler: func(c *gin.Context, _ *struct{}) (gin.H, error) {
			id := c.Param("id")
			if err := accounts.Delete(c, id); err != nil {
				return nil, err
			}
			return gin.H{"id": id}, nil
		},
	})
}
