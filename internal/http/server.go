package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"backoffice/internal/auth"
	"backoffice/internal/domain"
	"backoffice/internal/service"
)

// section идентификатор раздела бэк-офиса
type section string

const (
	sectionDashboard          section = "dashboard"
	sectionAdmins             section = "admins"
	sectionCustomers          section = "customers"
	sectionProducts           section = "products"
	sectionFeedback           section = "feedback"
	sectionOrders             section = "orders"
	sectionVouchers           section = "vouchers"
	sectionCategoriesSupplier section = "categories-suppliers"
)

// sectionRoles декларативная таблица доступа: раздел -> минимальная роль.
// Проверяется один раз middleware-ом группы маршрутов, а не в каждом хендлере.
var sectionRoles = map[section]domain.Role{
	sectionDashboard:          domain.RoleAdmin,
	sectionAdmins:             domain.RoleSuperAdmin,
	sectionCustomers:          domain.RoleAdmin,
	sectionProducts:           domain.RoleAdmin,
	sectionFeedback:           domain.RoleAdmin,
	sectionOrders:             domain.RoleAdmin,
	sectionVouchers:           domain.RoleAdmin,
	sectionCategoriesSupplier: domain.RoleAdmin,
}

type navEntry struct {
	ID    section `json:"id"`
	Label string  `json:"label"`
}

// navigationEntries порядок пунктов повторяет боковое меню
var navigationEntries = []navEntry{
	{sectionDashboard, "Dashboard"},
	{sectionAdmins, "Admin Management"},
	{sectionCustomers, "Customers"},
	{sectionProducts, "Products"},
	{sectionFeedback, "Feedback"},
	{sectionOrders, "Orders"},
	{sectionVouchers, "Vouchers"},
	{sectionCategoriesSupplier, "Categories & Suppliers"},
}

type Server struct {
	engine  *gin.Engine
	gate    *auth.Gate
	orders  *service.OrderService
	admins  *service.AdminService
	catalog *service.CatalogService
	stats   *service.StatsService
}

func NewServer(gate *auth.Gate, orders *service.OrderService, admins *service.AdminService, catalog *service.CatalogService, stats *service.StatsService) *Server {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())
	s := &Server{engine: r, gate: gate, orders: orders, admins: admins, catalog: catalog, stats: stats}
	s.registerRoutes()
	return s
}

func (s *Server) Engine() *gin.Engine { return s.engine }

func (s *Server) registerRoutes() {
	// Swagger UI
	s.engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := s.engine.Group("/api/v1")
	v1.POST("/auth/login", s.login)

	authed := v1.Group("", s.authRequired())
	{
		authed.POST("/auth/logout", s.logout)
		authed.GET("/auth/me", s.me)
		authed.GET("/navigation", s.navigation)

		stats := authed.Group("/stats", s.requireSection(sectionDashboard))
		stats.GET("/summary", s.statsSummary)
		stats.GET("/revenue/daily", s.statsDaily)
		stats.GET("/revenue/monthly", s.statsMonthly)

		orders := authed.Group("/orders", s.requireSection(sectionOrders))
		orders.GET("", s.listOrders)
		orders.GET(":id", s.getOrder)
		orders.PUT(":id/status", s.updateOrderStatus)

		admins := authed.Group("/admins", s.requireSection(sectionAdmins))
		admins.GET("", s.listAdmins)
		admins.POST("", s.createAdmin)
		admins.PUT(":id", s.updateAdmin)
		admins.DELETE(":id", s.deleteAdmin)

		customers := authed.Group("/customers", s.requireSection(sectionCustomers))
		customers.GET("", s.listCustomers)
		customers.DELETE(":id", s.deleteCustomer)

		products := authed.Group("/products", s.requireSection(sectionProducts))
		products.GET("", s.listProducts)
		products.POST("", s.createProduct)
		products.PUT(":id", s.updateProduct)
		products.DELETE(":id", s.deleteProduct)

		vouchers := authed.Group("/vouchers", s.requireSection(sectionVouchers))
		vouchers.GET("", s.listVouchers)
		vouchers.POST("", s.createVoucher)
		vouchers.PUT(":id", s.updateVoucher)
		vouchers.DELETE(":id", s.deleteVoucher)

		categories := authed.Group("/categories", s.requireSection(sectionCategoriesSupplier))
		categories.GET("", s.listCategories)
		categories.POST("", s.createCategory)
		categories.PUT(":id", s.updateCategory)
		categories.DELETE(":id", s.deleteCategory)

		suppliers := authed.Group("/suppliers", s.requireSection(sectionCategoriesSupplier))
		suppliers.GET("", s.listSuppliers)
		suppliers.POST("", s.createSupplier)
		suppliers.PUT(":id", s.updateSupplier)
		suppliers.DELETE(":id", s.deleteSupplier)

		feedback := authed.Group("/feedback", s.requireSection(sectionFeedback))
		feedback.GET("", s.listFeedback)
		feedback.DELETE(":id", s.deleteFeedback)
	}
}

// @Summary Navigation entries for the current principal
// @Tags navigation
// @Produce json
// @Success 200 {array} navEntry
// @Router /navigation [get]
func (s *Server) navigation(c *gin.Context) {
	p := principalFrom(c)
	out := make([]navEntry, 0, len(navigationEntries))
	for _, e := range navigationEntries {
		if p.Role.AtLeast(sectionRoles[e.ID]) {
			out = append(out, e)
		}
	}
	c.JSON(http.StatusOK, out)
}
