package routes

import (
	"menuqr/configs"
	"menuqr/controllers"
	"menuqr/middlewares"
	"menuqr/ws"

	"github.com/gin-gonic/gin"
)

type Controllers struct {
	Auth      *controllers.AuthController
	Menu      *controllers.MenuController
	Public    *controllers.PublicController
	QR        *controllers.QRController
	Analytics *controllers.AnalyticsController
	Hub       *ws.ViewsHub
}

func RegisterRoutes(r *gin.Engine, cfg *configs.Config, ctl *Controllers) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Auth (public)
	a := r.Group("/auth")
	{
		a.POST("/register", ctl.Auth.Register)
		a.POST("/login", ctl.Auth.Login)
		a.POST("/google/start", ctl.Auth.GoogleStart)
		a.POST("/google/callback", ctl.Auth.GoogleCallback)
	}

	// Auth (protected)
	aAuth := a.Group("", middlewares.AuthMiddleware(cfg.JWTSecret))
	{
		aAuth.GET("/me", ctl.Auth.Me)
	}

	// Public menu page: read-only, records a view
	r.GET("/menu/:id", ctl.Public.Show)
	r.GET("/menu/:id/cart", ctl.Public.GetCart)
	r.POST("/menu/:id/cart", ctl.Public.AddToCart)
	r.PATCH("/menu/:id/cart", ctl.Public.UpdateCart)
	r.POST("/menu/:id/order", ctl.Public.PlaceOrder)

	// Dashboard (vendor only)
	dash := r.Group("/dashboard", middlewares.AuthMiddleware(cfg.JWTSecret))
	{
		dash.GET("/menus", ctl.Menu.List)
		dash.POST("/menus", ctl.Menu.Create)
		dash.GET("/menus/:id", ctl.Menu.Get)
		dash.PUT("/menus/:id", ctl.Menu.Update)
		dash.DELETE("/menus/:id", ctl.Menu.Delete)

		dash.GET("/menus/:id/summary", ctl.Analytics.Summary)
		dash.GET("/menus/:id/scans", ctl.Analytics.Scans)
		dash.GET("/menus/:id/scans/export", ctl.Analytics.Export)

		dash.GET("/menus/:id/qr", ctl.QR.Image)
		dash.GET("/menus/:id/qr/poster", ctl.QR.Poster)
	}

	// Live view feed
	r.GET("/ws/views", middlewares.AuthMiddleware(cfg.JWTSecret), ctl.Hub.HandleWebSocket)
}
