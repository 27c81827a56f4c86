package service

import (
	"context"
	"testing"
	"time"

	"backoffice/internal/domain"
)

func TestTotalRevenue_DeliveredOnly(t *testing.T) {
	orders := []domain.Order{
		{Total: 100, Status: domain.OrderStatusDelivered},
		{Total: 50, Status: domain.OrderStatusPending},
		{Total: 70, Status: domain.OrderStatusCancelled},
	}
	if got := TotalRevenue(orders); got != 100 {
		t.Fatalf("total revenue = %v, want 100", got)
	}
}

func TestGrowthRate_ZeroBase(t *testing.T) {
	if got := GrowthRate(500, 0); got != 0 {
		t.Fatalf("zero base must yield 0, got %v", got)
	}
	if got := GrowthRate(150, 100); got != 50 {
		t.Fatalf("growth = %v, want 50", got)
	}
	if got := GrowthRate(50, 100); got != -50 {
		t.Fatalf("growth = %v, want -50", got)
	}
}

func TestRevenueForMonth(t *testing.T) {
	orders := []domain.Order{
		{Total: 100, Status: domain.OrderStatusDelivered, Date: day(2025, time.March, 5)},
		{Total: 30, Status: domain.OrderStatusDelivered, Date: day(2025, time.March, 20)},
		{Total: 999, Status: domain.OrderStatusPending, Date: day(2025, time.March, 21)},
		{Total: 40, Status: domain.OrderStatusDelivered, Date: day(2024, time.March, 5)},
	}
	if got := RevenueForMonth(orders, 2025, time.March); got != 130 {
		t.Fatalf("march 2025 revenue = %v, want 130", got)
	}
	if got := RevenueForMonth(orders, 2025, time.April); got != 0 {
		t.Fatalf("empty month must be 0, got %v", got)
	}
}

func TestDailyRevenue_TrailingWeekOldestFirst(t *testing.T) {
	now := day(2025, time.March, 10)
	orders := []domain.Order{
		{Total: 10, Status: domain.OrderStatusDelivered, Date: day(2025, time.March, 10)},
		{Total: 20, Status: domain.OrderStatusDelivered, Date: day(2025, time.March, 4)},
		{Total: 99, Status: domain.OrderStatusDelivered, Date: day(2025, time.March, 3)}, // за пределами окна
		{Total: 7, Status: domain.OrderStatusPending, Date: day(2025, time.March, 10)},
	}
	points := DailyRevenue(orders, now)
	if len(points) != 7 {
		t.Fatalf("expected 7 points, got %d", len(points))
	}
	if points[0].Revenue != 20 {
		t.Fatalf("oldest day (Mar 04) = %v, want 20", points[0].Revenue)
	}
	if points[6].Revenue != 10 {
		t.Fatalf("today = %v, want 10", points[6].Revenue)
	}
	for i := 1; i < 6; i++ {
		if points[i].Revenue != 0 {
			t.Fatalf("day %d must be 0, got %v", i, points[i].Revenue)
		}
	}
	if points[0].Label != "Mar 04" {
		t.Fatalf("unexpected label %q", points[0].Label)
	}
}

func TestMonthlyRevenue_FullYear(t *testing.T) {
	orders := []domain.Order{
		{Total: 100, Status: domain.OrderStatusDelivered, Date: day(2025, time.January, 15)},
		{Total: 50, Status: domain.OrderStatusDelivered, Date: day(2025, time.June, 1)},
		{Total: 77, Status: domain.OrderStatusDelivered, Date: day(2024, time.June, 1)}, // прошлый год
	}
	points := MonthlyRevenue(orders, 2025)
	if len(points) != 12 {
		t.Fatalf("expected 12 points, got %d", len(points))
	}
	if points[0].Revenue != 100 || points[5].Revenue != 50 {
		t.Fatalf("unexpected buckets: jan=%v jun=%v", points[0].Revenue, points[5].Revenue)
	}
	for _, i := range []int{1, 2, 3, 4, 6, 7, 8, 9, 10, 11} {
		if points[i].Revenue != 0 {
			t.Fatalf("month %d must report 0, got %v", i, points[i].Revenue)
		}
	}
	if points[0].Label != "Jan" || points[11].Label != "Dec" {
		t.Fatalf("unexpected labels %q %q", points[0].Label, points[11].Label)
	}
}

func TestSummary_FromLoadedCollections(t *testing.T) {
	ctx := context.Background()
	f := newFakePlatform(t)
	f.orders = []domain.Order{
		{ID: "o1", Total: 200, Status: domain.OrderStatusDelivered, Date: day(2025, time.March, 8)},
		{ID: "o2", Total: 100, Status: domain.OrderStatusDelivered, Date: day(2025, time.February, 20)},
		{ID: "o3", Total: 55, Status: domain.OrderStatusPending, Date: day(2025, time.March, 9)},
	}
	f.customers = []domain.Principal{
		{ID: "c1", Role: domain.RoleCustomer}, {ID: "c2", Role: domain.RoleCustomer},
	}
	orders := NewOrderService(f.client())
	catalog := NewCatalogService(f.client())
	stats := NewStatsService(orders, catalog)
	stats.now = func() time.Time { return day(2025, time.March, 10) }

	sum, err := stats.Summary(ctx)
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	if sum.TotalRevenue != 300 {
		t.Fatalf("total revenue = %v, want 300", sum.TotalRevenue)
	}
	if sum.MonthlyGrowthRate != 100 {
		t.Fatalf("growth = %v, want 100", sum.MonthlyGrowthRate)
	}
	if sum.DeliveredOrders != 2 || sum.Customers != 2 {
		t.Fatalf("unexpected counts: %+v", sum)
	}
}

func TestSummary_JanuaryLooksAtDecember(t *testing.T) {
	ctx := context.Background()
	f := newFakePlatform(t)
	f.orders = []domain.Order{
		{ID: "o1", Total: 100, Status: domain.OrderStatusDelivered, Date: day(2026, time.January, 5)},
		{ID: "o2", Total: 50, Status: domain.OrderStatusDelivered, Date: day(2025, time.December, 28)},
	}
	orders := NewOrderService(f.client())
	catalog := NewCatalogService(f.client())
	stats := NewStatsService(orders, catalog)
	stats.now = func() time.Time { return day(2026, time.January, 10) }

	sum, err := stats.Summary(ctx)
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	if sum.MonthlyGrowthRate != 100 {
		t.Fatalf("growth across year boundary = %v, want 100", sum.MonthlyGrowthRate)
	}
}
