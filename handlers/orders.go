package handlers

import (
	"log"
	"math"
	"net/http"
	"strings"

	"cloud-kitchen-api/lifecycle"
	"cloud-kitchen-api/middleware"
	"cloud-kitchen-api/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type OrderLineRequest struct {
	MenuItemID uint     `json:"item_id" binding:"required"`
	Name       string   `json:"name" binding:"required"`
	Quantity   int      `json:"quantity" binding:"required,min=1"`
	UnitPrice  *float64 `json:"unit_price" binding:"required,gte=0"`
}

type CreateOrderRequest struct {
	Items []OrderLineRequest `json:"items" binding:"required,min=1,dive"`
	Total *float64           `json:"total" binding:"required,gte=0"`
	Notes string             `json:"notes"`
}

// totalsMatch compares two money amounts to the cent.
func totalsMatch(a, b float64) bool {
	return math.Abs(a-b) < 0.005
}

// CreateOrder places a new order for the caller. The declared total is
// recomputed from the lines and rejected on mismatch; the header and
// every line are inserted as a single transaction so a failing line
// insert leaves no partial order behind.
func (h *Handler) CreateOrder(c *gin.Context) {
	ident := middleware.CurrentUser(c)

	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var lines []models.OrderItem
	var sum float64
	for _, reqItem := range req.Items {
		subtotal := float64(reqItem.Quantity) * *reqItem.UnitPrice
		sum += subtotal
		lines = append(lines, models.OrderItem{
			MenuItemID: reqItem.MenuItemID,
			Name:       reqItem.Name,
			Quantity:   reqItem.Quantity,
			UnitPrice:  *reqItem.UnitPrice,
			Subtotal:   subtotal,
		})
	}
	if !totalsMatch(sum, *req.Total) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Order total does not match line subtotals"})
		return
	}

	order := models.Order{
		CustomerID: ident.UserID,
		Username:   ident.Username,
		Total:      sum,
		Status:     models.StatusPending,
		Notes:      req.Notes,
		Items:      lines,
	}
	err := h.DB.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&order).Error
	})
	if err != nil {
		log.Printf("orders: create: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to place order"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":  "Order placed successfully",
		"order_id": order.ID,
		"status":   order.Status,
	})
}

// ListOrders returns orders scoped by the caller's role: admin/chef see
// everything, a rider sees orders assigned to them, a customer sees
// their own. The scoping lives in the query, never on the client.
func (h *Handler) ListOrders(c *gin.Context) {
	ident := middleware.CurrentUser(c)

	query := h.DB.Preload("Items")
	switch ident.Role {
	case models.RoleAdmin, models.RoleChef:
		// unscoped
	case models.RoleRider:
		query = query.Where("rider = ?", ident.Username)
	default:
		query = query.Where("username = ?", ident.Username)
	}

	var orders []models.Order
	if err := query.Order("created_at desc").Find(&orders).Error; err != nil {
		log.Printf("orders: list: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
		return
	}
	c.JSON(http.StatusOK, orders)
}

// GetOrder returns a single order with its lines. Visible to the owner,
// the assigned rider, and admin/chef; anyone else gets 403.
func (h *Handler) GetOrder(c *gin.Context) {
	ident := middleware.CurrentUser(c)

	var order models.Order
	if err := h.DB.Preload("Items").First(&order, c.Param("id")).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			return
		}
		log.Printf("orders: get: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch order"})
		return
	}

	allowed := ident.Role == models.RoleAdmin || ident.Role == models.RoleChef ||
		order.Username == ident.Username ||
		(order.Rider != nil && *order.Rider == ident.Username)
	if !allowed {
		c.JSON(http.StatusForbidden, gin.H{"error": "This order does not belong to you"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"order": order})
}

type AssignRiderRequest struct {
	Rider string `json:"rider" binding:"required"`
}

// AssignRider sets the rider and moves the order to assigned (admin/chef)
func (h *Handler) AssignRider(c *gin.Context) {
	var req AssignRiderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Rider username required"})
		return
	}

	result := h.DB.Model(&models.Order{}).
		Where("id = ?", c.Param("id")).
		Updates(map[string]interface{}{
			"rider":  req.Rider,
			"status": models.StatusAssigned,
		})
	if result.Error != nil {
		log.Printf("orders: assign: %v", result.Error)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to assign rider"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Rider assigned successfully"})
}

type StatusUpdateRequest struct {
	Status string `json:"status" binding:"required"`
}

// UpdateRiderStatus moves an order through the rider-owned statuses.
// The UPDATE is guarded by the rider column, so zero rows affected means
// the order is not the caller's to touch (403, not 404).
func (h *Handler) UpdateRiderStatus(c *gin.Context) {
	ident := middleware.CurrentUser(c)

	var req StatusUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status"})
		return
	}
	status := models.OrderStatus(strings.ToLower(req.Status))
	if !lifecycle.RiderCanSet(status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status"})
		return
	}

	result := h.DB.Model(&models.Order{}).
		Where("id = ? AND rider = ?", c.Param("id"), ident.Username).
		Update("status", status)
	if result.Error != nil {
		log.Printf("orders: rider status: %v", result.Error)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update status"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusForbidden, gin.H{"error": "Not allowed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Status updated", "status": status})
}

// UpdateOrderStatus sets one of the kitchen-owned statuses (admin/chef)
func (h *Handler) UpdateOrderStatus(c *gin.Context) {
	var req StatusUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status"})
		return
	}
	status := models.OrderStatus(strings.ToLower(req.Status))
	if !lifecycle.KitchenCanSet(status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status"})
		return
	}

	result := h.DB.Model(&models.Order{}).
		Where("id = ?", c.Param("id")).
		Update("status", status)
	if result.Error != nil {
		log.Printf("orders: status: %v", result.Error)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update status"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Status updated", "status": status})
}

// DeleteOrder removes an order and its lines (admin only)
func (h *Handler) DeleteOrder(c *gin.Context) {
	orderID := c.Param("id")
	err := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("order_id = ?", orderID).Delete(&models.OrderItem{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.Order{}, orderID)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
	if err == gorm.ErrRecordNotFound {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}
	if err != nil {
		log.Printf("orders: delete: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete order"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Order deleted successfully"})
}
