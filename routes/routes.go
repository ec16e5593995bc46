package routes

import (
	"time"

	"cloud-kitchen-api/handlers"
	"cloud-kitchen-api/middleware"
	"cloud-kitchen-api/models"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

func SetupRoutes(r *gin.Engine, h *handlers.Handler) {
	// 30 attempts per 15 minutes per client
	authLimiter := middleware.RateLimit(rate.Every(30*time.Second), 30)

	// ── Public routes ──────────────────────────────────────────────
	public := r.Group("/api")
	{
		public.POST("/auth/register", authLimiter, h.Register)
		public.POST("/auth/login", authLimiter, h.Login)
		public.GET("/lifecycle", handlers.LifecycleInfo)
	}

	// ── Authenticated routes ───────────────────────────────────────
	auth := r.Group("/api")
	auth.Use(middleware.AuthRequired(h.JWTSecret))
	{
		auth.POST("/auth/logout", h.Logout)
		auth.GET("/auth/me", h.Me)

		auth.GET("/menu", h.ListMenu)
		auth.GET("/menu/:id", h.GetMenuItem)

		auth.GET("/orders", h.ListOrders)
		auth.GET("/orders/:id", h.GetOrder)
		auth.POST("/orders", h.CreateOrder)
	}

	// ── Kitchen routes (admin/chef) ────────────────────────────────
	kitchen := r.Group("/api")
	kitchen.Use(middleware.AuthRequired(h.JWTSecret), middleware.RoleRequired(models.RoleAdmin, models.RoleChef))
	{
		kitchen.GET("/auth/riders", h.ListRiders)

		kitchen.POST("/menu", h.CreateMenuItem)
		kitchen.PUT("/menu/:id", h.UpdateMenuItem)

		kitchen.PUT("/orders/:id/assign", h.AssignRider)
		kitchen.PUT("/orders/:id/status", h.UpdateOrderStatus)
	}

	// ── Rider routes ───────────────────────────────────────────────
	rider := r.Group("/api")
	rider.Use(middleware.AuthRequired(h.JWTSecret), middleware.RoleRequired(models.RoleRider))
	{
		rider.PUT("/orders/:id/rider-status", h.UpdateRiderStatus)
	}

	// ── Admin routes ───────────────────────────────────────────────
	admin := r.Group("/api")
	admin.Use(middleware.AuthRequired(h.JWTSecret), middleware.RoleRequired(models.RoleAdmin))
	{
		admin.DELETE("/menu/:id", h.DeleteMenuItem)
		admin.DELETE("/orders/:id", h.DeleteOrder)
	}
}
