package service

import (
	"context"

	"backoffice/internal/domain"
	"backoffice/internal/platform"
)

// OrderService реализует рабочий процесс заказов: просмотр, карточка заказа
// и продвижение статуса строго на один шаг вперёд по цепочке
// pending -> processing -> shipped -> delivered.
type OrderService struct {
	client *platform.Client
	cache  collection[domain.Order]
}

func NewOrderService(client *platform.Client) *OrderService {
	s := &OrderService{client: client}
	s.cache.fetch = client.ListOrders
	return s
}

// OrderSummary строка списка заказов. NextStatus — единственный допустимый
// следующий статус; для терминальных заказов поле пустое.
type OrderSummary struct {
	domain.Order
	NextStatus domain.OrderStatus `json:"next_status,omitempty"`
}

// OrderLine строка карточки заказа с посчитанной суммой позиции
type OrderLine struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	Image     string  `json:"image,omitempty"`
	Price     float64 `json:"price"`
	Quantity  int64   `json:"quantity"`
	LineTotal float64 `json:"line_total"`
}

// OrderDetail неизменяемый снимок одного заказа; путей мутации у карточки нет
type OrderDetail struct {
	ID              string             `json:"_id"`
	Customer        string             `json:"customer"`
	Date            string             `json:"date"`
	Status          domain.OrderStatus `json:"status"`
	PaymentMethod   string             `json:"payment_method"`
	PaymentStatus   string             `json:"payment_status"`
	ShippingAddress string             `json:"shipping_address,omitempty"`
	Lines           []OrderLine        `json:"lines"`
	Total           float64            `json:"total"`
}

func summarize(o domain.Order) OrderSummary {
	s := OrderSummary{Order: o}
	if next, ok := domain.NextStatus(o.Status); ok {
		s.NextStatus = next
	}
	return s
}

// List возвращает заказы, опционально отфильтрованные по статусу
func (s *OrderService) List(ctx context.Context, force bool, status domain.OrderStatus) ([]OrderSummary, error) {
	orders, err := s.cache.load(ctx, force)
	if err != nil {
		return nil, err
	}
	out := make([]OrderSummary, 0, len(orders))
	for _, o := range orders {
		if status != "" && o.Status != status {
			continue
		}
		out = append(out, summarize(o))
	}
	return out, nil
}

// Orders сырая коллекция для проекций статистики
func (s *OrderService) Orders(ctx context.Context) ([]domain.Order, error) {
	return s.cache.load(ctx, false)
}

// Detail строит снимок заказа с посуммированными позициями
func (s *OrderService) Detail(ctx context.Context, id string) (*OrderDetail, error) {
	if id == "" {
		return nil, ErrInvalidInput
	}
	orders, err := s.cache.load(ctx, false)
	if err != nil {
		return nil, err
	}
	for _, o := range orders {
		if o.ID != id {
			continue
		}
		d := &OrderDetail{
			ID:              o.ID,
			Customer:        o.User.Name,
			Date:            o.Date.Format("2006-01-02"),
			Status:          o.Status,
			PaymentMethod:   o.PaymentMethod,
			PaymentStatus:   o.PaymentStatus,
			ShippingAddress: o.ShippingAddress,
			Total:           o.Total,
			Lines:           make([]OrderLine, 0, len(o.Products)),
		}
		for _, p := range o.Products {
			d.Lines = append(d.Lines, OrderLine{
				ProductID: p.ID,
				Name:      p.Name,
				Image:     p.Image,
				Price:     p.Price,
				Quantity:  p.Quantity,
				LineTotal: p.Price * float64(p.Quantity),
			})
		}
		return d, nil
	}
	return nil, ErrNotFound
}

// AdvanceStatus продвигает статус заказа. Допустим ровно один переход —
// на следующий статус цепочки; терминальные заказы не трогаются.
// Локальная копия патчится только после подтверждения платформой, поэтому
// неудачный вызов оставляет отображаемый статус прежним.
func (s *OrderService) AdvanceStatus(ctx context.Context, id string, to domain.OrderStatus) (*OrderSummary, error) {
	if id == "" || to == "" {
		return nil, ErrInvalidInput
	}
	orders, err := s.cache.load(ctx, false)
	if err != nil {
		return nil, err
	}
	var current *domain.Order
	for i := range orders {
		if orders[i].ID == id {
			current = &orders[i]
			break
		}
	}
	if current == nil {
		return nil, ErrNotFound
	}
	next, ok := domain.NextStatus(current.Status)
	if !ok || to != next {
		return nil, ErrInvalidState
	}
	if err := s.client.UpdateOrderStatus(ctx, id, to); err != nil {
		return nil, err
	}
	s.cache.patch(func(items []domain.Order) {
		for i := range items {
			if items[i].ID == id {
				items[i].Status = to
			}
		}
	})
	updated := *current
	updated.Status = to
	out := summarize(updated)
	return &out, nil
}
