package main

import (
	"fmt"
	"log"

	"menuqr/configs"
	"menuqr/controllers"
	"menuqr/pkg/events"
	"menuqr/repository"
	"menuqr/routes"
	"menuqr/services"
	"menuqr/ws"

	"github.com/gin-gonic/gin"

	"menuqr/middlewares"
)

func main() {
	cfg := configs.LoadConfig()

	// Pick the store once at startup: the real database, or the in-memory
	// substitute when running in demo mode.
	var (
		vendorRepo repository.VendorRepository
		menuRepo   repository.MenuRepository
		viewRepo   repository.ViewRepository
	)
	if cfg.DemoMode {
		log.Println("running in DEMO MODE: in-memory store, any credentials sign in")
		store := repository.NewMemoryStore()
		vendorRepo = store.Vendors()
		menuRepo = store.Menus()
		viewRepo = store.Views()
		if err := configs.SeedDemo(vendorRepo, menuRepo); err != nil {
			log.Fatalf("seed demo data failed: %v", err)
		}
	} else {
		configs.ConnectionDB(cfg.DBSource)
		configs.SetupDatabase()
		db := configs.DB()
		vendorRepo = repository.NewVendorRepository(db)
		menuRepo = repository.NewMenuRepository(db)
		viewRepo = repository.NewViewRepository(db)
	}

	// Services
	emitter := events.NewViewEmitter()
	authSvc := services.NewAuthService(vendorRepo, cfg.JWTSecret, cfg.JWTTTL, cfg.DemoMode)
	menuSvc := services.NewMenuService(menuRepo)
	trackSvc := services.NewTrackingService(menuRepo, viewRepo, emitter)
	analyticsSvc := services.NewAnalyticsService(viewRepo)
	cartSvc := services.NewCartService()
	qrSvc := services.NewQRService(cfg.PublicBaseURL)

	// Live feed
	hub := ws.NewViewsHub(emitter)
	go hub.Run()

	// HTTP
	r := gin.Default()
	r.Use(middlewares.CORSMiddleware())

	routes.RegisterRoutes(r, cfg, &routes.Controllers{
		Auth:      controllers.NewAuthController(authSvc, services.NewGoogleHandoff()),
		Menu:      controllers.NewMenuController(menuSvc),
		Public:    controllers.NewPublicController(menuSvc, trackSvc, cartSvc),
		QR:        controllers.NewQRController(menuSvc, qrSvc),
		Analytics: controllers.NewAnalyticsController(menuSvc, analyticsSvc),
		Hub:       hub,
	})

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Println("server running at", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
