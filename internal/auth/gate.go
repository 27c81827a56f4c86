package auth

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"backoffice/internal/domain"
	"backoffice/internal/platform"
	"backoffice/internal/session"
)

// Gate единственный владелец сессионного состояния: выдаёт и гасит сессии,
// остальной код получает только read-only проекцию через Principal.
type Gate struct {
	client   *platform.Client
	sessions session.Store
}

func NewGate(client *platform.Client, sessions session.Store) *Gate {
	return &Gate{client: client, sessions: sessions}
}

// ErrRoleNotPermitted вход разрешён только ролям Admin и SuperAdmin
var ErrRoleNotPermitted = errors.New("account is not permitted to access the back-office")

// Login аутентифицирует на платформе и открывает сессию. Любая ошибка —
// транспортная, серверная или отказ по роли — не трогает уже открытые сессии.
func (g *Gate) Login(ctx context.Context, email, password string) (string, *domain.Principal, error) {
	p, err := g.client.Login(ctx, email, password)
	if err != nil {
		return "", nil, err
	}
	if !p.Role.AtLeast(domain.RoleAdmin) {
		return "", nil, ErrRoleNotPermitted
	}
	token := uuid.NewString()
	if err := g.sessions.Put(token, *p); err != nil {
		return "", nil, err
	}
	return token, p, nil
}

// Logout гасит сессию; повторный вызов с тем же токеном безвреден
func (g *Gate) Logout(token string) error {
	return g.sessions.Delete(token)
}

// Principal восстанавливает учётную запись по токену без похода на платформу
func (g *Gate) Principal(token string) (domain.Principal, bool) {
	return g.sessions.Get(token)
}
