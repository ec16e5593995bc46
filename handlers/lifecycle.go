package handlers

import (
	"net/http"

	"cloud-kitchen-api/lifecycle"

	"github.com/gin-gonic/gin"
)

// LifecycleInfo returns the documented order lifecycle (public, for docs)
func LifecycleInfo(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"transitions":     lifecycle.AllTransitions(),
		"terminal_states": lifecycle.TerminalStatuses(),
		"description":     "Cloud Kitchen Order Lifecycle",
	})
}
