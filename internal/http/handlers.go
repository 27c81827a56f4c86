package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"backoffice/internal/auth"
	"backoffice/internal/domain"
	"backoffice/internal/platform"
	"backoffice/internal/service"
)

// Auth handlers

type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResp struct {
	Token string           `json:"token"`
	User  domain.Principal `json:"user"`
}

// @Summary Log in with platform credentials
// @Tags auth
// @Accept json
// @Produce json
// @Param input body loginReq true "Credentials"
// @Success 200 {object} loginResp
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /auth/login [post]
func (s *Server) login(c *gin.Context) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	if req.Email == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email and password are required"})
		return
	}
	token, p, err := s.gate.Login(c, req.Email, req.Password)
	if err != nil {
		c.JSON(mapErrorToStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, loginResp{Token: token, User: *p})
}

// @Summary Log out
// @Tags auth
// @Success 204
// @Router /auth/logout [post]
func (s *Server) logout(c *gin.Context) {
	if err := s.gate.Logout(sessionToken(c)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Current principal
// @Tags auth
// @Produce json
// @Success 200 {object} domain.Principal
// @Router /auth/me [get]
func (s *Server) me(c *gin.Context) {
	c.JSON(http.StatusOK, principalFrom(c))
}

// Stats handlers

// @Summary Dashboard summary cards
// @Tags stats
// @Produce json
// @Success 200 {object} service.Summary
// @Router /stats/summary [get]
func (s *Server) statsSummary(c *gin.Context) {
	out, err := s.stats.Summary(c)
	if err != nil {
		c.JSON(mapErrorToStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, out)
}

// @Summary Delivered revenue per day, trailing 7 days
// @Tags stats
// @Produce json
// @Success 200 {array} service.SeriesPoint
// @Router /stats/revenue/daily [get]
func (s *Server) statsDaily(c *gin.Context) {
	out, err := s.stats.Daily(c)
	if err != nil {
		c.JSON(mapErrorToStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, out)
}

// @Summary Delivered revenue per month of the current year
// @Tags stats
// @Produce json
// @Success 200 {array} service.SeriesPoint
// @Router /stats/revenue/monthly [get]
func (s *Server) statsMonthly(c *gin.Context) {
	out, err := s.stats.Monthly(c)
	if err != nil {
		c.JSON(mapErrorToStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, out)
}

// Order handlers

// @Summary List orders
// @Tags orders
// @Produce json
// @Param status query string false "Filter by status"
// @Param refresh query bool false "Force refetch from the platform"
// @Success 200 {array} service.OrderSummary
// @Router /orders [get]
func (s *Server) listOrders(c *gin.Context) {
	force := c.Query("refresh") == "true"
	status := domain.OrderStatus(c.Query("status"))
	list, err := s.orders.List(c, force, status)
	if err != nil {
		c.JSON(mapErrorToStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, list)
}

// @Summary Order detail snapshot
// @Tags orders
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} service.OrderDetail
// @Failure 404 {object} map[string]string
// @Router /orders/{id} [get]
func (s *Server) getOrder(c *gin.Context) {
	d, err := s.orders.Detail(c, c.Param("id"))
	if err != nil {
		c.JSON(mapErrorToStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, d)
}

type updateOrderStatusReq struct {
	Status domain.OrderStatus `json:"status"`
}

// @Summary Advance order status by one step
// @Tags orders
// @Accept json
// @Produce json
// @Param id path string true "Order ID"
// @Param input body updateOrderStatusReq true "Target status"
// @Success 200 {object} service.OrderSummary
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /orders/{id}/status [put]
func (s *Server) updateOrderStatus(c *gin.Context) {
	var req updateOrderStatusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	o, err := s.orders.AdvanceStatus(c, c.Param("id"), req.Status)
	if err != nil {
		c.JSON(mapErrorToStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, o)
}

// Admin handlers (SuperAdmin only, enforced by the section table)

// @Summary List administrator accounts
// @Tags admins
// @Produce json
// @Success 200 {array} domain.Principal
// @Failure 403 {object} map[string]string
// @Router /admins [get]
func (s *Server) listAdmins(c *gin.Context) {
	force := c.Query("refresh") == "true"
	list, err := s.admins.List(c, force)
	if err != nil {
		c.JSON(mapErrorToStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, list)
}

type createAdminReq struct {
	Email           string `json:"email"`
	Username        string `json:"username"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
}

// @Summary Create administrator account
// @Tags admins
// @Accept json
// @Produce json
// @Param input body createAdminReq true "Admin"
// @Success 201
// @Failure 400 {object} map[string]string
// @Router /admins [post]
func (s *Server) createAdmin(c *gin.Context) {
	var req createAdminReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	if err := s.admins.Create(c, req.Email, req.Username, req.Password, req.ConfirmPassword); err != nil {
		c.JSON(mapErrorToStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusCreated)
}

// @Summary Update administrator account
// @Tags admins
// @Accept json
// @Produce json
// @Param id path string true "Admin ID"
// @Param input body createAdminReq true "Fields; blank password keeps the current one"
// @Success 204
// @Failure 400 {object} map[string]string
// @Router /admins/{id} [put]
func (s *Server) updateAdmin(c *gin.Context) {
	var req createAdminReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	if err := s.admins.Update(c, c.Param("id"), req.Email, req.Username, req.Password, req.ConfirmPassword); err != nil {
		c.JSON(mapErrorToStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Delete administrator account
// @Tags admins
// @Param id path string true "Admin ID"
// @Param confirm query bool true "Explicit confirmation"
// @Success 204
// @Failure 400 {object} map[string]string
// @Router /admins/{id} [delete]
func (s *Server) deleteAdmin(c *gin.Context) {
	confirmed := c.Query("confirm") == "true"
	if err := s.admins.Delete(c, c.Param("id"), confirmed); err != nil {
		c.JSON(mapErrorToStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

// Catalog handlers

// @Summary List customers
// @Tags customers
// @Produce json
// @Success 200 {array} domain.Principal
// @Router /customers [get]
func (s *Server) listCustomers(c *gin.Context) {
	list, err := s.catalog.Customers(c, c.Query("refresh") == "true")
	if err != nil {
		c.JSON(mapErrorToStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, list)
}

// @Summary Delete customer
// @Tags customers
// @Param id path string true "Customer ID"
// @Success 204
// @Router /customers/{id} [delete]
func (s *Server) deleteCustomer(c *gin.Context) {
	if err := s.catalog.DeleteCustomer(c, c.Param("id")); err != nil {
		c.JSON(mapErrorToStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary List products
// @Tags products
// @Produce json
// @Success 200 {array} domain.Product
// @Router /products [get]
func (s *Server) listProducts(c *gin.Context) {
	list, err := s.catalog.Products(c, c.Query("refresh") == "true")
	if err != nil {
		c.JSON(mapErrorToStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, list)
}

// @Summary Create product
// @Tags products
// @Accept json
// @Success 201
// @Failure 400 {object} map[string]string
// @Router /products [post]
func (s *Server) createProduct(c *gin.Context) {
	var p domain.Product
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	if err := s.catalog.CreateProduct(c, p); err != nil {
		c.JSON(mapErrorToStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusCreated)
}

// @Summary Update product
// @Tags products
// @Accept json
// @Param id path string true "Product ID"
// @Success 204
// @Failure 400 {object} map[string]string
// @Router /products/{id} [put]
func (s *Server) updateProduct(c *gin.Context) {
	var p domain.Product
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	if err := s.catalog.UpdateProduct(c, c.Param("id"), p); err != nil {
		c.JSON(mapErrorToStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Delete product
// @Tags products
// @Param id path string true "Product ID"
// @Success 204
// @Router /products/{id} [delete]
func (s *Server) deleteProduct(c *gin.Context) {
	if err := s.catalog.DeleteProduct(c, c.Param("id")); err != nil {
		c.JSON(mapErrorToStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary List vouchers
// @Tags vouchers
// @Produce json
// @Success 200 {array} domain.Voucher
// @Router /vouchers [get]
func (s *Server) listVouchers(c *gin.Context) {
	list, err := s.catalog.Vouchers(c, c.Query("refresh") == "true")
	if err != nil {
		c.JSON(mapErrorToStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, list)
}

// @Summary Create voucher
// @Tags vouchers
// @Accept json
// @Success 201
// @Failure 400 {object} map[string]string
// @Router /vouchers [post]
func (s *Server) createVoucher(c *gin.Context) {
	var v domain.Voucher
	if err := c.ShouldBindJSON(&v); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	if err := s.catalog.CreateVoucher(c, v); err != nil {
		c.JSON(mapErrorToStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusCreated)
}

// @Summary Update voucher
// @Tags vouchers
// @Accept json
// @Param id path string true "Voucher ID"
// @Success 204
// @Failure 400 {object} map[string]string
// @Router /vouchers/{id} [put]
func (s *Server) updateVoucher(c *gin.Context) {
	var v domain.Voucher
	if err := c.ShouldBindJSON(&v); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	if err := s.catalog.UpdateVoucher(c, c.Param("id"), v); err != nil {
		c.JSON(mapErrorToStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Delete voucher
// @Tags vouchers
// @Param id path string true "Voucher ID"
// @Success 204
// @Router /vouchers/{id} [delete]
func (s *Server) deleteVoucher(c *gin.Context) {
	if err := s.catalog.DeleteVoucher(c, c.Param("id")); err != nil {
		c.JSON(mapErrorToStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary List categories
// @Tags categories-suppliers
// @Produce json
// @Success 200 {array} domain.Category
// @Router /categories [get]
func (s *Server) listCategories(c *gin.Context) {
	list, err := s.catalog.Categories(c, c.Query("refresh") == "true")
	if err != nil {
		c.JSON(mapErrorToStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, list)
}

func (s *Server) createCategory(c *gin.Context) {
	var cat domain.Category
	if err := c.ShouldBindJSON(&cat); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	if err := s.catalog.CreateCategory(c, cat); err != nil {
		c.JSON(mapErrorToStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusCreated)
}

func (s *Server) updateCategory(c *gin.Context) {
	var cat domain.Category
	if err := c.ShouldBindJSON(&cat); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	if err := s.catalog.UpdateCategory(c, c.Param("id"), cat); err != nil {
		c.JSON(mapErrorToStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) deleteCategory(c *gin.Context) {
	if err := s.catalog.DeleteCategory(c, c.Param("id")); err != nil {
		c.JSON(mapErrorToStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary List suppliers
// @Tags categories-suppliers
// @Produce json
// @Success 200 {array} domain.Supplier
// @Router /suppliers [get]
func (s *Server) listSuppliers(c *gin.Context) {
	list, err := s.catalog.Suppliers(c, c.Query("refresh") == "true")
	if err != nil {
		c.JSON(mapErrorToStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, list)
}

func (s *Server) createSupplier(c *gin.Context) {
	var sp domain.Supplier
	if err := c.ShouldBindJSON(&sp); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	if err := s.catalog.CreateSupplier(c, sp); err != nil {
		c.JSON(mapErrorToStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusCreated)
}

func (s *Server) updateSupplier(c *gin.Context) {
	var sp domain.Supplier
	if err := c.ShouldBindJSON(&sp); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	if err := s.catalog.UpdateSupplier(c, c.Param("id"), sp); err != nil {
		c.JSON(mapErrorToStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) deleteSupplier(c *gin.Context) {
	if err := s.catalog.DeleteSupplier(c, c.Param("id")); err != nil {
		c.JSON(mapErrorToStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary List customer feedback
// @Tags feedback
// @Produce json
// @Success 200 {array} domain.Feedback
// @Router /feedback [get]
func (s *Server) listFeedback(c *gin.Context) {
	list, err := s.catalog.Feedback(c, c.Query("refresh") == "true")
	if err != nil {
		c.JSON(mapErrorToStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, list)
}

// @Summary Delete feedback entry
// @Tags feedback
// @Param id path string true "Feedback ID"
// @Success 204
// @Router /feedback/{id} [delete]
func (s *Server) deleteFeedback(c *gin.Context) {
	if err := s.catalog.DeleteFeedback(c, c.Param("id")); err != nil {
		c.JSON(mapErrorToStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

// mapErrorToStatus сводит ошибки сервисов и платформы к HTTP-статусам.
// Ошибка платформы проносит свой статус и сообщение как есть; транспортная
// ошибка до платформы — 502.
func mapErrorToStatus(err error) int {
	switch {
	case errors.Is(err, service.ErrInvalidInput),
		errors.Is(err, service.ErrPasswordMismatch),
		errors.Is(err, service.ErrConfirmationRequired):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrInvalidState):
		return http.StatusConflict
	case errors.Is(err, auth.ErrRoleNotPermitted):
		return http.StatusUnauthorized
	}
	if pe, ok := platform.AsError(err); ok {
		return pe.StatusCode
	}
	return http.StatusBadGateway
}
