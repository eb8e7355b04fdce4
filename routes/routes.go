package routes

import (
	"github.com/DerekRojGar/awa-AquaReminder/controllers"
	"github.com/DerekRojGar/awa-AquaReminder/middlewares"

	"github.com/gin-gonic/gin"
)

type Controllers struct {
	Intake   *controllers.IntakeController
	Profile  *controllers.ProfileController
	Theme    *controllers.ThemeController
	Realtime *controllers.RealtimeController
}

func SetupRouter(r *gin.Engine, ctl Controllers) {
	// Public pairing and client constants
	r.POST("/session", controllers.Pair)
	r.GET("/config", controllers.AppConfig)

	// Everything the paired UI reads and writes
	api := r.Group("/")
	api.Use(middlewares.AuthMiddleware())
	{
		intake := api.Group("/intake")
		{
			intake.POST("", ctl.Intake.Record)
			intake.GET("/today", ctl.Intake.TodayTotal)
			intake.GET("/progress", ctl.Intake.Progress)
			intake.GET("/recent", ctl.Intake.Recent)
			intake.GET("/range", ctl.Intake.Range)
			intake.GET("/daily", ctl.Intake.DailyTotals)
			intake.DELETE("/last", ctl.Intake.UndoLast)
			intake.DELETE("", ctl.Intake.Reset)
		}

		profile := api.Group("/profile")
		{
			profile.GET("", ctl.Profile.Get)
			profile.PUT("", ctl.Profile.Save)
			profile.DELETE("", ctl.Profile.Delete)
			profile.GET("/complete", ctl.Profile.Complete)
			profile.POST("/preview", ctl.Profile.Preview)
		}

		theme := api.Group("/theme")
		{
			theme.GET("", ctl.Theme.Get)
			theme.PUT("", ctl.Theme.Save)
			theme.POST("/toggle", ctl.Theme.Toggle)
		}

		api.POST("/reset", ctl.Profile.ResetAll)
		api.GET("/ws", ctl.Realtime.ProgressWS)
	}
}
