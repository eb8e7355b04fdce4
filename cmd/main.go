package main

import (
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/DerekRojGar/awa-AquaReminder/config"
	"github.com/DerekRojGar/awa-AquaReminder/controllers"
	"github.com/DerekRojGar/awa-AquaReminder/routes"
	"github.com/DerekRojGar/awa-AquaReminder/services"
	"github.com/DerekRojGar/awa-AquaReminder/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// ensureJWTSecret keeps a per-install signing secret in the data directory so
// a fresh install works without any configuration.
func ensureJWTSecret() {
	if os.Getenv("JWT_SECRET") != "" {
		return
	}
	path := filepath.Join(config.DataDir(), "session.key")
	if data, err := os.ReadFile(path); err == nil && len(data) > 0 {
		os.Setenv("JWT_SECRET", string(data))
		return
	}
	secret, err := utils.GenerateRandomToken(48)
	if err != nil {
		log.Fatalf("Failed to generate session key: %v", err)
	}
	if err := os.WriteFile(path, []byte(secret), 0o600); err != nil {
		log.Fatalf("Failed to persist session key: %v", err)
	}
	os.Setenv("JWT_SECRET", secret)
}

func main() {
	config.InitDB()
	ensureJWTSecret()

	dataDir := config.DataDir()
	intakeSvc := services.NewIntakeService(config.DB)
	profileSvc := services.NewProfileService(dataDir)
	themeSvc := services.NewThemeService(dataDir)

	hub := services.NewRealtimeHub()
	services.InitProgressDeps(hub)

	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{config.UIOrigin()},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.Static("/avatars", "./assets/avatars")

	routes.SetupRouter(r, routes.Controllers{
		Intake:   controllers.NewIntakeController(intakeSvc, profileSvc),
		Profile:  controllers.NewProfileController(profileSvc, intakeSvc),
		Theme:    controllers.NewThemeController(themeSvc),
		Realtime: controllers.NewRealtimeController(hub),
	})

	if err := r.Run(config.Addr()); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
