package service

import (
	"context"
	"errors"
	"sync"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrInvalidState = errors.New("invalid state")
	ErrNotFound     = errors.New("not found")
)

// collection локальная копия коллекции платформы. Контракт кэширования:
// каждая мутация после подтверждения либо точечно патчит копию, либо
// сбрасывает её и перечитывает целиком; при ошибке копия не меняется.
type collection[T any] struct {
	mu     sync.Mutex
	loaded bool
	items  []T
	fetch  func(ctx context.Context) ([]T, error)
}

// load возвращает копию элементов, подгружая коллекцию при первом обращении
// или принудительно при force
func (c *collection[T]) load(ctx context.Context, force bool) ([]T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.loaded || force {
		items, err := c.fetch(ctx)
		if err != nil {
			return nil, err
		}
		c.items = items
		c.loaded = true
	}
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out, nil
}

// refresh полная перечитка после успешной мутации
func (c *collection[T]) refresh(ctx context.Context) error {
	_, err := c.load(ctx, true)
	return err
}

// patch точечная правка уже загруженной копии
func (c *collection[T]) patch(fn func(items []T)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.loaded {
		fn(c.items)
	}
}
