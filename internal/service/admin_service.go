package service

import (
	"context"
	"errors"

	"backoffice/internal/domain"
	"backoffice/internal/platform"
)

var (
	ErrPasswordMismatch     = errors.New("passwords do not match")
	ErrConfirmationRequired = errors.New("confirmation required")
)

// AdminService управление учётными записями администраторов. Пароль никогда
// не возвращается платформой, поэтому при редактировании пустой пароль
// означает «оставить прежний» и ключ password в payload не появляется вовсе.
type AdminService struct {
	client *platform.Client
	cache  collection[domain.Principal]
}

func NewAdminService(client *platform.Client) *AdminService {
	s := &AdminService{client: client}
	s.cache.fetch = client.ListAdmins
	return s
}

func (s *AdminService) List(ctx context.Context, force bool) ([]domain.Principal, error) {
	return s.cache.load(ctx, force)
}

// Create проверяет поля и совпадение паролей до любого сетевого вызова;
// после успеха коллекция перечитывается целиком.
func (s *AdminService) Create(ctx context.Context, email, username, password, confirm string) error {
	if email == "" || username == "" || password == "" {
		return ErrInvalidInput
	}
	if password != confirm {
		return ErrPasswordMismatch
	}
	err := s.client.CreateAdmin(ctx, platform.AdminCreate{
		Email:    email,
		Username: username,
		Password: password,
		Role:     domain.RoleAdmin,
	})
	if err != nil {
		return err
	}
	return s.cache.refresh(ctx)
}

// Update отправляет частичный payload: password попадает в него только когда
// задан новый пароль и подтверждение совпало
func (s *AdminService) Update(ctx context.Context, id, email, username, password, confirm string) error {
	if id == "" || email == "" || username == "" {
		return ErrInvalidInput
	}
	fields := map[string]any{
		"email":    email,
		"username": username,
	}
	if password != "" {
		if password != confirm {
			return ErrPasswordMismatch
		}
		fields["password"] = password
	}
	if err := s.client.UpdateAdmin(ctx, id, fields); err != nil {
		return err
	}
	return s.cache.refresh(ctx)
}

// Delete требует явного подтверждения до разрушительного вызова
func (s *AdminService) Delete(ctx context.Context, id string, confirmed bool) error {
	if id == "" {
		return ErrInvalidInput
	}
	if !confirmed {
		return ErrConfirmationRequired
	}
	if err := s.client.DeleteAdmin(ctx, id); err != nil {
		return err
	}
	return s.cache.refresh(ctx)
}
