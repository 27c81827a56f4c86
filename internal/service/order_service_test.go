package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"backoffice/internal/domain"
)

func ordersFixture() []domain.Order {
	return []domain.Order{
		{ID: "o1", User: domain.OrderCustomer{ID: "c1", Name: "Anna"}, Total: 100, Status: domain.OrderStatusPending, Date: day(2025, time.March, 1), PaymentMethod: "cod", PaymentStatus: "pending",
			Products: []domain.OrderProduct{{ID: "p1", Name: "Tea", Price: 25, Quantity: 2}, {ID: "p2", Name: "Cup", Price: 50, Quantity: 1}}},
		{ID: "o2", Status: domain.OrderStatusProcessing, Total: 40, Date: day(2025, time.March, 2)},
		{ID: "o3", Status: domain.OrderStatusShipped, Total: 60, Date: day(2025, time.March, 3)},
		{ID: "o4", Status: domain.OrderStatusDelivered, Total: 80, Date: day(2025, time.March, 4)},
		{ID: "o5", Status: domain.OrderStatusCancelled, Total: 20, Date: day(2025, time.March, 5)},
	}
}

func setupOrders(t *testing.T) (*OrderService, *fakePlatform) {
	t.Helper()
	f := newFakePlatform(t)
	f.orders = ordersFixture()
	return NewOrderService(f.client()), f
}

func TestList_ComputesSingleNextStatus(t *testing.T) {
	ctx := context.Background()
	svc, _ := setupOrders(t)
	list, err := svc.List(ctx, false, "")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	want := map[string]domain.OrderStatus{
		"o1": domain.OrderStatusProcessing,
		"o2": domain.OrderStatusShipped,
		"o3": domain.OrderStatusDelivered,
		"o4": "",
		"o5": "",
	}
	for _, o := range list {
		if o.NextStatus != want[o.ID] {
			t.Fatalf("order %s: next %q, want %q", o.ID, o.NextStatus, want[o.ID])
		}
	}
}

func TestList_FilterByStatus(t *testing.T) {
	ctx := context.Background()
	svc, _ := setupOrders(t)
	list, err := svc.List(ctx, false, domain.OrderStatusDelivered)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 1 || list[0].ID != "o4" {
		t.Fatalf("unexpected filter result: %v", list)
	}
}

func TestAdvanceStatus_OneStepForward(t *testing.T) {
	ctx := context.Background()
	svc, f := setupOrders(t)
	o, err := svc.AdvanceStatus(ctx, "o1", domain.OrderStatusProcessing)
	if err != nil {
		t.Fatalf("advance: %v", err)
	}
	if o.Status != domain.OrderStatusProcessing || o.NextStatus != domain.OrderStatusShipped {
		t.Fatalf("unexpected summary: %+v", o)
	}
	// локальная копия пропатчена без повторной загрузки
	list, _ := svc.List(ctx, false, "")
	for _, it := range list {
		if it.ID == "o1" && it.Status != domain.OrderStatusProcessing {
			t.Fatalf("cache not patched: %v", it.Status)
		}
	}
	if n := f.countRequests("GET", "/orders"); n != 1 {
		t.Fatalf("expected single fetch, got %d", n)
	}
}

func TestAdvanceStatus_SkippingRejected(t *testing.T) {
	ctx := context.Background()
	svc, f := setupOrders(t)
	if _, err := svc.AdvanceStatus(ctx, "o1", domain.OrderStatusShipped); !errors.Is(err, ErrInvalidState) {
		t.Fatalf("expected invalid state, got %v", err)
	}
	if n := f.countRequests("PUT", "/orders/o1/status"); n != 0 {
		t.Fatalf("no platform call expected, got %d", n)
	}
}

func TestAdvanceStatus_TerminalRejected(t *testing.T) {
	ctx := context.Background()
	svc, _ := setupOrders(t)
	if _, err := svc.AdvanceStatus(ctx, "o4", domain.OrderStatusDelivered); !errors.Is(err, ErrInvalidState) {
		t.Fatalf("delivered is terminal, got %v", err)
	}
	if _, err := svc.AdvanceStatus(ctx, "o5", domain.OrderStatusPending); !errors.Is(err, ErrInvalidState) {
		t.Fatalf("cancelled is terminal, got %v", err)
	}
	// отмена не предлагается как цель перехода
	if _, err := svc.AdvanceStatus(ctx, "o1", domain.OrderStatusCancelled); !errors.Is(err, ErrInvalidState) {
		t.Fatalf("cancellation is not reachable from here, got %v", err)
	}
}

func TestAdvanceStatus_FailureKeepsDisplayedStatus(t *testing.T) {
	ctx := context.Background()
	svc, f := setupOrders(t)
	if _, err := svc.List(ctx, false, ""); err != nil {
		t.Fatalf("warm cache: %v", err)
	}
	f.failStatusUpdate = true
	if _, err := svc.AdvanceStatus(ctx, "o1", domain.OrderStatusProcessing); err == nil {
		t.Fatal("expected error")
	}
	list, _ := svc.List(ctx, false, "")
	for _, it := range list {
		if it.ID == "o1" && it.Status != domain.OrderStatusPending {
			t.Fatalf("status must stay pending, got %v", it.Status)
		}
	}
}

func TestAdvanceStatus_UnknownOrder(t *testing.T) {
	ctx := context.Background()
	svc, _ := setupOrders(t)
	if _, err := svc.AdvanceStatus(ctx, "nope", domain.OrderStatusProcessing); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestDetail_SnapshotWithLineTotals(t *testing.T) {
	ctx := context.Background()
	svc, _ := setupOrders(t)
	d, err := svc.Detail(ctx, "o1")
	if err != nil {
		t.Fatalf("detail: %v", err)
	}
	if d.Customer != "Anna" || len(d.Lines) != 2 {
		t.Fatalf("unexpected detail: %+v", d)
	}
	if d.Lines[0].LineTotal != 50 || d.Lines[1].LineTotal != 50 {
		t.Fatalf("line totals wrong: %+v", d.Lines)
	}
	if _, err := svc.Detail(ctx, "nope"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}
