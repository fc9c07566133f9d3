package utils

import "github.com/gin-gonic/gin"

// JSONError writes a single-message error payload.
func JSONError(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"error": message})
}

// JSONFieldErrors writes a structured field → message error payload, the
// shape used for validation and uniqueness failures.
func JSONFieldErrors(c *gin.Context, code int, fields map[string]string) {
	c.JSON(code, gin.H{"errors": fields})
}
