package utils

import "github.com/gin-gonic/gin"

// Success writes the standard success envelope.
func Success(c *gin.Context, data gin.H) {
	c.JSON(200, gin.H{
		"success": true,
		"data":    data,
	})
}

// Error writes the standard error envelope with the given status code.
func Error(c *gin.Context, code int, msg string) {
	c.JSON(code, gin.H{
		"success": false,
		"error":   msg,
	})
}
