package service

import (
	"context"
	"fmt"
	"strings"

	"go-plant-shop/internal/domain"
	"go-plant-shop/pkg/utils"
)

type AccountService struct {
	users domain.UserRepository
}

func NewAccountService(users domain.UserRepository) *AccountService {
	return &AccountService{users: users}
}

// Register 建号：密码只存 bcrypt 哈希，邮箱冲突返回 ErrDuplicateEmail
func (s *AccountService) Register(ctx context.Context, email, password, name string, admin bool) (*domain.User, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" {
		return nil, fmt.Errorf("%w: email is required", domain.ErrValidation)
	}
	if password == "" {
		return nil, fmt.Errorf("%w: password is required", domain.ErrValidation)
	}
	u := &domain.User{
		ID:           utils.NewID(),
		Email:        email,
		Name:         strings.TrimSpace(name),
		Admin:        admin,
		PasswordHash: utils.HashPassword(password),
	}
	if err := s.users.Create(u); err != nil {
		return nil, err
	}
	return u, nil
}

// Authenticate 登录校验；查无此人和密码不对统一报 ErrAuthFailure，不泄露哪个错了
func (s *AccountService) Authenticate(ctx context.Context, email, password string) (*domain.User, error) {
	u, err := s.users.FindByEmail(strings.TrimSpace(strings.ToLower(email)))
	if err != nil {
		return nil, err
	}
	if u == nil || !utils.CheckPassword(password, u.PasswordHash) {
		return nil, domain.ErrAuthFailure
	}
	return u, nil
}

func (s *AccountService) Get(ctx context.Context, id string) (*domain.User, error) {
	u, err := s.users.FindByID(id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, fmt.Errorf("%w: user %s", domain.ErrNotFound, id)
	}
	return u, nil
}

// List 后台目录排序：admin 优先，再按 name
func (s *AccountService) List(ctx context.Context) ([]domain.User, error) {
	return s.users.List()
}

// UpdateProfile 后台编辑 email/name/admin，不碰密码
func (s *AccountService) UpdateProfile(ctx context.Context, id, email, name string, admin bool) (*domain.User, error) {
	u, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" {
		return nil, fmt.Errorf("%w: email is required", domain.ErrValidation)
	}
	u.Email = email
	u.Name = strings.TrimSpace(name)
	u.Admin = admin
	if err := s.users.Update(u); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *AccountService) Delete(ctx context.Context, id string) error {
	return s.users.Delete(id)
}
