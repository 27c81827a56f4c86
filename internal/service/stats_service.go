package service

import (
	"context"
	"time"

	"backoffice/internal/domain"
)

// StatsService чистая проекция над уже загруженными коллекциями заказов и
// покупателей: ничего не пишет и пересчитывается при каждом обращении.
type StatsService struct {
	orders  *OrderService
	catalog *CatalogService
	now     func() time.Time
}

func NewStatsService(orders *OrderService, catalog *CatalogService) *StatsService {
	return &StatsService{orders: orders, catalog: catalog, now: time.Now}
}

// Summary сводные карточки дашборда
type Summary struct {
	TotalRevenue      float64 `json:"total_revenue"`
	MonthlyGrowthRate float64 `json:"monthly_growth_rate"`
	DeliveredOrders   int     `json:"delivered_orders"`
	Customers         int     `json:"customers"`
}

// SeriesPoint точка графика выручки
type SeriesPoint struct {
	Label   string  `json:"label"`
	Revenue float64 `json:"revenue"`
}

// В выручку входят только доставленные заказы

// TotalRevenue сумма total по доставленным заказам
func TotalRevenue(orders []domain.Order) float64 {
	var sum float64
	for _, o := range orders {
		if o.Status == domain.OrderStatusDelivered {
			sum += o.Total
		}
	}
	return sum
}

// RevenueForMonth выручка за конкретный календарный месяц
func RevenueForMonth(orders []domain.Order, year int, month time.Month) float64 {
	var sum float64
	for _, o := range orders {
		if o.Status != domain.OrderStatusDelivered {
			continue
		}
		if o.Date.Year() == year && o.Date.Month() == month {
			sum += o.Total
		}
	}
	return sum
}

// GrowthRate процент роста к прошлому месяцу; при нулевой базе — 0,
// а не деление на ноль
func GrowthRate(current, previous float64) float64 {
	if previous == 0 {
		return 0
	}
	return (current - previous) / previous * 100
}

// DeliveredCount число доставленных заказов
func DeliveredCount(orders []domain.Order) int {
	n := 0
	for _, o := range orders {
		if o.Status == domain.OrderStatusDelivered {
			n++
		}
	}
	return n
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// DailyRevenue выручка по дням за последние 7 дней включая сегодняшний,
// от старых к новым
func DailyRevenue(orders []domain.Order, now time.Time) []SeriesPoint {
	out := make([]SeriesPoint, 0, 7)
	for i := 6; i >= 0; i-- {
		day := now.AddDate(0, 0, -i)
		var sum float64
		for _, o := range orders {
			if o.Status == domain.OrderStatusDelivered && sameDay(o.Date, day) {
				sum += o.Total
			}
		}
		out = append(out, SeriesPoint{Label: day.Format("Jan 02"), Revenue: sum})
	}
	return out
}

// MonthlyRevenue выручка по месяцам текущего года, январь — декабрь;
// месяцы без доставленных заказов дают 0
func MonthlyRevenue(orders []domain.Order, year int) []SeriesPoint {
	out := make([]SeriesPoint, 0, 12)
	for m := time.January; m <= time.December; m++ {
		out = append(out, SeriesPoint{
			Label:   m.String()[:3],
			Revenue: RevenueForMonth(orders, year, m),
		})
	}
	return out
}

func (s *StatsService) Summary(ctx context.Context) (*Summary, error) {
	orders, err := s.orders.Orders(ctx)
	if err != nil {
		return nil, err
	}
	customers, err := s.catalog.Customers(ctx, false)
	if err != nil {
		return nil, err
	}
	now := s.now()
	curYear, curMonth := now.Year(), now.Month()
	prevYear, prevMonth := curYear, curMonth-1
	if curMonth == time.January {
		prevYear, prevMonth = curYear-1, time.December
	}
	current := RevenueForMonth(orders, curYear, curMonth)
	previous := RevenueForMonth(orders, prevYear, prevMonth)
	return &Summary{
		TotalRevenue:      TotalRevenue(orders),
		MonthlyGrowthRate: GrowthRate(current, previous),
		DeliveredOrders:   DeliveredCount(orders),
		Customers:         len(customers),
	}, nil
}

func (s *StatsService) Daily(ctx context.Context) ([]SeriesPoint, error) {
	orders, err := s.orders.Orders(ctx)
	if err != nil {
		return nil, err
	}
	return DailyRevenue(orders, s.now()), nil
}

func (s *StatsService) Monthly(ctx context.Context) ([]SeriesPoint, error) {
	orders, err := s.orders.Orders(ctx)
	if err != nil {
		return nil, err
	}
	return MonthlyRevenue(orders, s.now().Year()), nil
}
