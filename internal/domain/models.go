package domain

import "time"

// Role роль учётной записи на платформе
type Role string

const (
	RoleCustomer   Role = "Customer"
	RoleAdmin      Role = "Admin"
	RoleSuperAdmin Role = "SuperAdmin"
)

var roleRank = map[Role]int{
	RoleCustomer:   0,
	RoleAdmin:      1,
	RoleSuperAdmin: 2,
}

// AtLeast сравнивает роли по уровню доступа. Неизвестная роль ниже любой известной.
func (r Role) AtLeast(min Role) bool {
	rr, ok := roleRank[r]
	if !ok {
		return false
	}
	return rr >= roleRank[min]
}

// Principal аутентифицированная учётная запись. Ключ createAt повторяет
// написание поля в ответах платформы.
type Principal struct {
	ID          string     `json:"_id"`
	Email       string     `json:"email"`
	Username    string     `json:"username"`
	PhoneNumber string     `json:"phonenumber,omitempty"`
	Address     string     `json:"address,omitempty"`
	Role        Role       `json:"role"`
	CreatedAt   time.Time  `json:"createAt"`
	LastLogin   *time.Time `json:"lastLogin,omitempty"`
}

// OrderStatus статус заказа
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// NextStatus возвращает единственный допустимый следующий статус.
// Для терминальных статусов (delivered, cancelled) перехода нет.
func NextStatus(s OrderStatus) (OrderStatus, bool) {
	switch s {
	case OrderStatusPending:
		return OrderStatusProcessing, true
	case OrderStatusProcessing:
		return OrderStatusShipped, true
	case OrderStatusShipped:
		return OrderStatusDelivered, true
	default:
		return "", false
	}
}

// Terminal признак терминального статуса
func Terminal(s OrderStatus) bool {
	return s == OrderStatusDelivered || s == OrderStatusCancelled
}

// OrderCustomer ссылка на покупателя внутри заказа
type OrderCustomer struct {
	ID   string `json:"_id"`
	Name string `json:"name"`
}

// OrderProduct позиция заказа
type OrderProduct struct {
	ID       string  `json:"_id"`
	Name     string  `json:"name"`
	Image    string  `json:"image,omitempty"`
	Price    float64 `json:"price"`
	Quantity int64   `json:"quantity"`
}

// Order заказ, созданный витриной; бэк-офис только продвигает статус
type Order struct {
	ID              string         `json:"_id"`
	User            OrderCustomer  `json:"user"`
	Products        []OrderProduct `json:"products"`
	Total           float64        `json:"total"`
	Status          OrderStatus    `json:"status"`
	Date            time.Time      `json:"date"`
	ShippingAddress string         `json:"shippingAddress,omitempty"`
	PaymentMethod   string         `json:"paymentMethod"`
	PaymentStatus   string         `json:"paymentStatus"`
}

// Product товар каталога
type Product struct {
	ID          string   `json:"_id"`
	Name        string   `json:"name"`
	Price       float64  `json:"price"`
	Quantity    int64    `json:"quantity"`
	Images      []string `json:"images"`
	Category    string   `json:"category"`
	Supplier    string   `json:"supplier"`
	Description string   `json:"description"`
	Discount    float64  `json:"discount"`
}

// Category категория товаров
type Category struct {
	ID    string   `json:"_id"`
	Name  string   `json:"name"`
	Brand string   `json:"brand"`
	Image []string `json:"image"`
}

// Supplier поставщик
type Supplier struct {
	ID   string `json:"_id"`
	Name string `json:"name"`
}

// Voucher промокод с окном действия и лимитом использования
type Voucher struct {
	ID            string    `json:"_id"`
	Code          string    `json:"code"`
	Description   string    `json:"description"`
	DiscountValue float64   `json:"discountValue"`
	MinimumOrder  float64   `json:"minimumOrder"`
	UsageLimit    int64     `json:"usageLimit"`
	UsedCount     int64     `json:"usedCount"`
	StartDate     time.Time `json:"startDate"`
	EndDate       time.Time `json:"endDate"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// Feedback отзыв покупателя о товаре
type Feedback struct {
	ID           string    `json:"id"`
	ProductID    string    `json:"productId"`
	ProductName  string    `json:"productName"`
	CustomerName string    `json:"customerName"`
	Rating       int       `json:"rating"`
	Comment      string    `json:"comment"`
	Date         time.Time `json:"date"`
	Avatar       string    `json:"avatar,omitempty"`
}
