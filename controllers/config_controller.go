package controllers

import (
	"net/http"

	"github.com/DerekRojGar/awa-AquaReminder/config"

	"github.com/gin-gonic/gin"
)

// AppConfig serves the client constants the UI renders its quick-add buttons
// and defaults from.
func AppConfig(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"default_daily_goal_ml": config.DefaultDailyGoalML,
		"quick_amounts_ml":      config.QuickAmountsML,
		"avatar_count":          config.AvatarCount,
	})
}
