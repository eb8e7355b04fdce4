package controllers

import (
	"net/http"

	"github.com/DerekRojGar/awa-AquaReminder/utils"

	"github.com/gin-gonic/gin"
)

// Pair issues the bearer token the local UI uses on every data route. The
// server only listens on loopback, so reaching this endpoint is the pairing.
func Pair(c *gin.Context) {
	token, err := utils.GenerateSessionToken()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not generate token"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token})
}
