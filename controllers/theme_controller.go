package controllers

import (
	"net/http"

	"github.com/DerekRojGar/awa-AquaReminder/services"

	"github.com/gin-gonic/gin"
)

type ThemeController struct {
	Theme *services.ThemeService
}

func NewThemeController(theme *services.ThemeService) *ThemeController {
	return &ThemeController{Theme: theme}
}

func (tc *ThemeController) Get(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"dark_mode": tc.Theme.Load()})
}

func (tc *ThemeController) Save(c *gin.Context) {
	var input struct {
		DarkMode *bool `json:"dark_mode" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := tc.Theme.Save(*input.DarkMode); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"dark_mode": *input.DarkMode})
}

func (tc *ThemeController) Toggle(c *gin.Context) {
	darkMode, err := tc.Theme.Toggle()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"dark_mode": darkMode})
}
