package handlers

import (
	"log"
	"net/http"

	"cloud-kitchen-api/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type MenuItemRequest struct {
	Name        string   `json:"name" binding:"required"`
	Description string   `json:"description"`
	Price       *float64 `json:"price" binding:"required,gte=0"`
	Available   *bool    `json:"available"`
	Category    string   `json:"category"`
}

// ListMenu returns all menu items, grouped for the menu screen
func (h *Handler) ListMenu(c *gin.Context) {
	var items []models.MenuItem
	if err := h.DB.Order("category, name").Find(&items).Error; err != nil {
		log.Printf("menu: list: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load menu items"})
		return
	}
	c.JSON(http.StatusOK, items)
}

// GetMenuItem returns a single menu item
func (h *Handler) GetMenuItem(c *gin.Context) {
	var item models.MenuItem
	if err := h.DB.First(&item, c.Param("id")).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
			return
		}
		log.Printf("menu: get: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load menu item"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"item": item})
}

// CreateMenuItem adds a new item to the menu (admin/chef)
func (h *Handler) CreateMenuItem(c *gin.Context) {
	var req MenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	available := true
	if req.Available != nil {
		available = *req.Available
	}
	item := models.MenuItem{
		Name:        req.Name,
		Description: req.Description,
		Price:       *req.Price,
		Available:   available,
		Category:    req.Category,
	}
	if err := h.DB.Create(&item).Error; err != nil {
		log.Printf("menu: create: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add menu item"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Item added successfully", "item": item})
}

// UpdateMenuItem replaces a menu item's fields (admin/chef)
func (h *Handler) UpdateMenuItem(c *gin.Context) {
	var item models.MenuItem
	if err := h.DB.First(&item, c.Param("id")).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
			return
		}
		log.Printf("menu: update: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update menu item"})
		return
	}

	var req MenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item.Name = req.Name
	item.Description = req.Description
	item.Price = *req.Price
	if req.Available != nil {
		item.Available = *req.Available
	}
	item.Category = req.Category
	if err := h.DB.Save(&item).Error; err != nil {
		log.Printf("menu: update: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update menu item"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Item updated successfully", "item": item})
}

// DeleteMenuItem removes a menu item (admin only)
func (h *Handler) DeleteMenuItem(c *gin.Context) {
	result := h.DB.Delete(&models.MenuItem{}, c.Param("id"))
	if result.Error != nil {
		log.Printf("menu: delete: %v", result.Error)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete item"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Item deleted successfully"})
}
