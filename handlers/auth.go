package handlers

import (
	"log"
	"net/http"
	"strings"

	"cloud-kitchen-api/middleware"
	"cloud-kitchen-api/models"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type RegisterRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
	Email    string `json:"email" binding:"omitempty,email"`
	Role     string `json:"role"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Register creates a new user account. Role defaults to customer.
func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	role := models.RoleCustomer
	if req.Role != "" {
		parsed, ok := models.ParseRole(req.Role)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid role. Must be: admin, chef, customer, or rider"})
			return
		}
		role = parsed
	}

	var existing models.User
	if err := h.DB.Where("username = ?", req.Username).First(&existing).Error; err == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Username already taken"})
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("register: hash password: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
		return
	}

	user := models.User{
		Username:     req.Username,
		PasswordHash: string(hash),
		Role:         role,
		Email:        req.Email,
	}
	if err := h.DB.Create(&user).Error; err != nil {
		log.Printf("register: create user: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Account created successfully",
		"user": gin.H{
			"id":       user.ID,
			"username": user.Username,
			"role":     user.Role,
			"email":    user.Email,
		},
	})
}

// Login authenticates a user and returns a JWT. Unknown username and
// wrong password produce the identical response so user existence
// never leaks.
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var user models.User
	if err := h.DB.Where("username = ?", req.Username).First(&user).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	if !h.verifyPassword(&user, req.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	token, err := middleware.GenerateToken(&user, h.JWTSecret, h.TokenTTL)
	if err != nil {
		log.Printf("login: sign token: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Login failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"token":   token,
		"user": gin.H{
			"username": user.Username,
			"role":     user.Role,
			"email":    user.Email,
		},
	})
}

// verifyPassword checks the submitted password against the stored
// credential. Legacy rows hold a plaintext password instead of a bcrypt
// hash; those are accepted once and re-hashed in place so the plaintext
// never survives a successful login.
func (h *Handler) verifyPassword(user *models.User, password string) bool {
	if strings.HasPrefix(user.PasswordHash, "$2") {
		return bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) == nil
	}
	if user.PasswordHash != password {
		return false
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err == nil {
		if err := h.DB.Model(user).Update("password_hash", string(hash)).Error; err != nil {
			log.Printf("login: migrate legacy credential for %q: %v", user.Username, err)
		}
	}
	return true
}

// Logout exists for the client's sake only: tokens are stateless, so a
// logged-out token stays valid until it expires. There is no server-side
// revocation.
func (h *Handler) Logout(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

// Me returns the authenticated user's profile
func (h *Handler) Me(c *gin.Context) {
	ident := middleware.CurrentUser(c)
	var user models.User
	if err := h.DB.First(&user, ident.UserID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		log.Printf("me: load user: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load profile"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}

// ListRiders returns all rider accounts (admin/chef)
func (h *Handler) ListRiders(c *gin.Context) {
	var riders []models.User
	if err := h.DB.Where("role = ?", models.RoleRider).Order("username").Find(&riders).Error; err != nil {
		log.Printf("riders: list: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load riders"})
		return
	}
	c.JSON(http.StatusOK, riders)
}
