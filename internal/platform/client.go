package platform

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"backoffice/internal/domain"
)

// Client клиент удалённого API платформы. Всё каноническое состояние живёт
// там; клиент только читает и мутирует его.
type Client struct {
	baseURL string
	httpc   *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		httpc:   &http.Client{Timeout: timeout},
	}
}

// Error ошибка, о которой сообщил сервер платформы. Message берётся из поля
// data тела ответа, если оно есть.
type Error struct {
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	return fmt.Sprintf("platform: %s (status %d)", e.Message, e.StatusCode)
}

// AsError извлекает *Error из цепочки ошибок
func AsError(err error) (*Error, bool) {
	var pe *Error
	if errors.As(err, &pe) {
		return pe, true
	}
	return nil, false
}

// do выполняет запрос и распаковывает конверт {"data": ...}.
// Ответы со статусом >= 400 превращаются в *Error.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var buf io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("platform: encode request: %w", err)
		}
		buf = bytes.NewReader(raw)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, buf)
	if err != nil {
		return fmt.Errorf("platform: build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("platform: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("platform: read response: %w", err)
	}
	if resp.StatusCode >= 400 {
		return &Error{StatusCode: resp.StatusCode, Message: serverMessage(raw)}
	}
	if out == nil {
		return nil
	}
	var env struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(raw, &env); err != nil || env.Data == nil {
		return fmt.Errorf("platform: malformed response for %s %s", method, path)
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("platform: decode response: %w", err)
	}
	return nil
}

// serverMessage достаёт человекочитаемое сообщение из тела ошибки
func serverMessage(raw []byte) string {
	var env struct {
		Data string `json:"data"`
	}
	if err := json.Unmarshal(raw, &env); err == nil && env.Data != "" {
		return env.Data
	}
	return "unknown error occurred"
}

// Login аутентификация по email и паролю
func (c *Client) Login(ctx context.Context, email, password string) (*domain.Principal, error) {
	var p domain.Principal
	body := map[string]string{"email": email, "password": password}
	if err := c.do(ctx, http.MethodPost, "/auth/login", body, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// AdminCreate поля создания администратора. Пароль присутствует всегда —
// обязательность проверяет сервис до сетевого вызова.
type AdminCreate struct {
	Email    string      `json:"email"`
	Username string      `json:"username"`
	Password string      `json:"password"`
	Role     domain.Role `json:"role"`
}

func (c *Client) ListAdmins(ctx context.Context) ([]domain.Principal, error) {
	var out []domain.Principal
	if err := c.do(ctx, http.MethodGet, "/admins", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateAdmin(ctx context.Context, a AdminCreate) error {
	return c.do(ctx, http.MethodPost, "/admins", a, nil)
}

// UpdateAdmin принимает частичный payload: отсутствующий ключ password
// означает «пароль не менять», поэтому тело — map, а не структура.
func (c *Client) UpdateAdmin(ctx context.Context, id string, fields map[string]any) error {
	return c.do(ctx, http.MethodPut, "/admins/"+id, fields, nil)
}

func (c *Client) DeleteAdmin(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/admins/"+id, nil, nil)
}

func (c *Client) ListOrders(ctx context.Context) ([]domain.Order, error) {
	var out []domain.Order
	if err := c.do(ctx, http.MethodGet, "/orders", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) UpdateOrderStatus(ctx context.Context, id string, status domain.OrderStatus) error {
	body := map[string]domain.OrderStatus{"status": status}
	return c.do(ctx, http.MethodPut, "/orders/"+id+"/status", body, nil)
}

func (c *Client) ListProducts(ctx context.Context) ([]domain.Product, error) {
	var out []domain.Product
	if err := c.do(ctx, http.MethodGet, "/products", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateProduct(ctx context.Context, p domain.Product) error {
	return c.do(ctx, http.MethodPost, "/products", p, nil)
}

func (c *Client) UpdateProduct(ctx context.Context, id string, p domain.Product) error {
	return c.do(ctx, http.MethodPut, "/products/"+id, p, nil)
}

func (c *Client) DeleteProduct(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/products/"+id, nil, nil)
}

// Покупатели создаются витриной; бэк-офису доступны чтение и удаление
func (c *Client) ListCustomers(ctx context.Context) ([]domain.Principal, error) {
	var out []domain.Principal
	if err := c.do(ctx, http.MethodGet, "/customers", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) DeleteCustomer(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/customers/"+id, nil, nil)
}

func (c *Client) ListVouchers(ctx context.Context) ([]domain.Voucher, error) {
	var out []domain.Voucher
	if err := c.do(ctx, http.MethodGet, "/vouchers", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateVoucher(ctx context.Context, v domain.Voucher) error {
	return c.do(ctx, http.MethodPost, "/vouchers", v, nil)
}

func (c *Client) UpdateVoucher(ctx context.Context, id string, v domain.Voucher) error {
	return c.do(ctx, http.MethodPut, "/vouchers/"+id, v, nil)
}

func (c *Client) DeleteVoucher(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/vouchers/"+id, nil, nil)
}

func (c *Client) ListCategories(ctx context.Context) ([]domain.Category, error) {
	var out []domain.Category
	if err := c.do(ctx, http.MethodGet, "/categories", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateCategory(ctx context.Context, cat domain.Category) error {
	return c.do(ctx, http.MethodPost, "/categories", cat, nil)
}

func (c *Client) UpdateCategory(ctx context.Context, id string, cat domain.Category) error {
	return c.do(ctx, http.MethodPut, "/categories/"+id, cat, nil)
}

func (c *Client) DeleteCategory(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/categories/"+id, nil, nil)
}

func (c *Client) ListSuppliers(ctx context.Context) ([]domain.Supplier, error) {
	var out []domain.Supplier
	if err := c.do(ctx, http.MethodGet, "/suppliers", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateSupplier(ctx context.Context, s domain.Supplier) error {
	return c.do(ctx, http.MethodPost, "/suppliers", s, nil)
}

func (c *Client) UpdateSupplier(ctx context.Context, id string, s domain.Supplier) error {
	return c.do(ctx, http.MethodPut, "/suppliers/"+id, s, nil)
}

func (c *Client) DeleteSupplier(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/suppliers/"+id, nil, nil)
}

func (c *Client) ListFeedback(ctx context.Context) ([]domain.Feedback, error) {
	var out []domain.Feedback
	if err := c.do(ctx, http.MethodGet, "/feedback", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) DeleteFeedback(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/feedback/"+id, nil, nil)
}
