package service

import (
	"context"

	"backoffice/internal/domain"
	"backoffice/internal/platform"
)

// CatalogService простые коллекции витрины: товары, покупатели, промокоды,
// категории, поставщики и отзывы. Каждая мутация после подтверждения
// платформой перечитывает свою коллекцию целиком.
type CatalogService struct {
	client     *platform.Client
	products   collection[domain.Product]
	customers  collection[domain.Principal]
	vouchers   collection[domain.Voucher]
	categories collection[domain.Category]
	suppliers  collection[domain.Supplier]
	feedback   collection[domain.Feedback]
}

func NewCatalogService(client *platform.Client) *CatalogService {
	s := &CatalogService{client: client}
	s.products.fetch = client.ListProducts
	s.customers.fetch = client.ListCustomers
	s.vouchers.fetch = client.ListVouchers
	s.categories.fetch = client.ListCategories
	s.suppliers.fetch = client.ListSuppliers
	s.feedback.fetch = client.ListFeedback
	return s
}

// Products

func (s *CatalogService) Products(ctx context.Context, force bool) ([]domain.Product, error) {
	return s.products.load(ctx, force)
}

func (s *CatalogService) CreateProduct(ctx context.Context, p domain.Product) error {
	if p.Name == "" || p.Price < 0 || p.Quantity < 0 {
		return ErrInvalidInput
	}
	if err := s.client.CreateProduct(ctx, p); err != nil {
		return err
	}
	return s.products.refresh(ctx)
}

func (s *CatalogService) UpdateProduct(ctx context.Context, id string, p domain.Product) error {
	if id == "" || p.Name == "" || p.Price < 0 || p.Quantity < 0 {
		return ErrInvalidInput
	}
	if err := s.client.UpdateProduct(ctx, id, p); err != nil {
		return err
	}
	return s.products.refresh(ctx)
}

func (s *CatalogService) DeleteProduct(ctx context.Context, id string) error {
	if id == "" {
		return ErrInvalidInput
	}
	if err := s.client.DeleteProduct(ctx, id); err != nil {
		return err
	}
	return s.products.refresh(ctx)
}

// Customers: создаются витриной, здесь только чтение и удаление

func (s *CatalogService) Customers(ctx context.Context, force bool) ([]domain.Principal, error) {
	return s.customers.load(ctx, force)
}

func (s *CatalogService) DeleteCustomer(ctx context.Context, id string) error {
	if id == "" {
		return ErrInvalidInput
	}
	if err := s.client.DeleteCustomer(ctx, id); err != nil {
		return err
	}
	return s.customers.refresh(ctx)
}

// Vouchers

func (s *CatalogService) Vouchers(ctx context.Context, force bool) ([]domain.Voucher, error) {
	return s.vouchers.load(ctx, force)
}

func validVoucher(v domain.Voucher) bool {
	if v.Code == "" || v.DiscountValue < 0 || v.MinimumOrder < 0 || v.UsageLimit < 0 {
		return false
	}
	return !v.EndDate.Before(v.StartDate)
}

func (s *CatalogService) CreateVoucher(ctx context.Context, v domain.Voucher) error {
	if !validVoucher(v) {
		return ErrInvalidInput
	}
	if err := s.client.CreateVoucher(ctx, v); err != nil {
		return err
	}
	return s.vouchers.refresh(ctx)
}

func (s *CatalogService) UpdateVoucher(ctx context.Context, id string, v domain.Voucher) error {
	if id == "" || !validVoucher(v) {
		return ErrInvalidInput
	}
	if err := s.client.UpdateVoucher(ctx, id, v); err != nil {
		return err
	}
	return s.vouchers.refresh(ctx)
}

func (s *CatalogService) DeleteVoucher(ctx context.Context, id string) error {
	if id == "" {
		return ErrInvalidInput
	}
	if err := s.client.DeleteVoucher(ctx, id); err != nil {
		return err
	}
	return s.vouchers.refresh(ctx)
}

// Categories and suppliers

func (s *CatalogService) Categories(ctx context.Context, force bool) ([]domain.Category, error) {
	return s.categories.load(ctx, force)
}

func (s *CatalogService) CreateCategory(ctx context.Context, c domain.Category) error {
	if c.Name == "" {
		return ErrInvalidInput
	}
	if err := s.client.CreateCategory(ctx, c); err != nil {
		return err
	}
	return s.categories.refresh(ctx)
}

func (s *CatalogService) UpdateCategory(ctx context.Context, id string, c domain.Category) error {
	if id == "" || c.Name == "" {
		return ErrInvalidInput
	}
	if err := s.client.UpdateCategory(ctx, id, c); err != nil {
		return err
	}
	return s.categories.refresh(ctx)
}

func (s *CatalogService) DeleteCategory(ctx context.Context, id string) error {
	if id == "" {
		return ErrInvalidInput
	}
	if err := s.client.DeleteCategory(ctx, id); err != nil {
		return err
	}
	return s.categories.refresh(ctx)
}

func (s *CatalogService) Suppliers(ctx context.Context, force bool) ([]domain.Supplier, error) {
	return s.suppliers.load(ctx, force)
}

func (s *CatalogService) CreateSupplier(ctx context.Context, sp domain.Supplier) error {
	if sp.Name == "" {
		return ErrInvalidInput
	}
	if err := s.client.CreateSupplier(ctx, sp); err != nil {
		return err
	}
	return s.suppliers.refresh(ctx)
}

func (s *CatalogService) UpdateSupplier(ctx context.Context, id string, sp domain.Supplier) error {
	if id == "" || sp.Name == "" {
		return ErrInvalidInput
	}
	if err := s.client.UpdateSupplier(ctx, id, sp); err != nil {
		return err
	}
	return s.suppliers.refresh(ctx)
}

func (s *CatalogService) DeleteSupplier(ctx context.Context, id string) error {
	if id == "" {
		return ErrInvalidInput
	}
	if err := s.client.DeleteSupplier(ctx, id); err != nil {
		return err
	}
	return s.suppliers.refresh(ctx)
}

// Feedback: оставляется покупателями, здесь только чтение и удаление

func (s *CatalogService) Feedback(ctx context.Context, force bool) ([]domain.Feedback, error) {
	return s.feedback.load(ctx, force)
}

func (s *CatalogService) DeleteFeedback(ctx context.Context, id string) error {
	if id == "" {
		return ErrInvalidInput
	}
	if err := s.client.DeleteFeedback(ctx, id); err != nil {
		return err
	}
	return s.feedback.refresh(ctx)
}
