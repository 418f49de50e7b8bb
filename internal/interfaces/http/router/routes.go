package router

import (
	"github.com/CRT1223/tech13-garage/internal/interfaces/http/handler"
	"github.com/gin-gonic/gin"
)

// Handlers are the HTTP handlers mounted by MountAPI
type Handlers struct {
	Auth       *handler.AuthHandler
	Storefront *handler.StorefrontHandler
	Cart       *handler.CartHandler
	Order      *handler.OrderHandler
	Review     *handler.ReviewHandler
	Product    *handler.ProductHandler
	Category   *handler.CategoryHandler
	Service    *handler.ServiceHandler
	Content    *handler.ContentHandler
	Customer   *handler.CustomerHandler
	Dashboard  *handler.DashboardHandler
	Inventory  *handler.InventoryHandler
	WalkIn     *handler.WalkInHandler
}

// Guards are the access-control middleware applied per route group
type Guards struct {
	// Authenticated rejects requests without a valid access token
	Authenticated gin.HandlerFunc
	// Admin requires the admin role; it runs after Authenticated
	Admin gin.HandlerFunc
	// AuthRateLimit throttles register and login; nil disables it
	AuthRateLimit gin.HandlerFunc
}

// MountAPI registers the public, customer and admin route groups
func (r *Router) MountAPI(h Handlers, g Guards) *Router {
	return r.Register(
		publicRoutes(h),
		authRoutes(h, g),
		customerRoutes(h, g),
		adminRoutes(h, g),
	)
}

func publicRoutes(h Handlers) *DomainGroup {
	public := NewDomainGroup("storefront", "")
	public.GET("/home", h.Storefront.Home)
	public.GET("/about", h.Storefront.About)
	public.GET("/categories", h.Storefront.Categories)
	public.GET("/products", h.Storefront.Products)
	public.GET("/products/:id", h.Storefront.ProductDetail)
	public.GET("/products/:id/reviews", h.Review.ListForProduct)
	public.GET("/services", h.Storefront.Services)
	public.GET("/services/:id", h.Storefront.ServiceDetail)
	return public
}

func authRoutes(h Handlers, g Guards) *DomainGroup {
	auth := NewDomainGroup("auth", "/auth")
	limited := []gin.HandlerFunc{}
	if g.AuthRateLimit != nil {
		limited = append(limited, g.AuthRateLimit)
	}
	auth.POST("/register", append(limited, h.Auth.Register)...)
	auth.POST("/login", append(limited, h.Auth.Login)...)
	auth.POST("/refresh", h.Auth.RefreshToken)
	auth.POST("/logout", g.Authenticated, h.Auth.Logout)
	auth.GET("/me", g.Authenticated, h.Auth.GetCurrentUser)
	return auth
}

func customerRoutes(h Handlers, g Guards) *DomainGroup {
	customer := NewDomainGroup("customer", "").Use(g.Authenticated)

	customer.GET("/cart", h.Cart.View)
	customer.POST("/cart/items", h.Cart.Add)
	customer.PUT("/cart/items/:id", h.Cart.Update)
	customer.DELETE("/cart/items/:id", h.Cart.Remove)

	customer.GET("/checkout", h.Order.CheckoutDefaults)
	customer.POST("/checkout", h.Order.Checkout)
	customer.GET("/orders", h.Order.History)
	customer.GET("/orders/:id", h.Order.Detail)

	customer.POST("/reviews", h.Review.Create)
	return customer
}

func adminRoutes(h Handlers, g Guards) *DomainGroup {
	admin := NewDomainGroup("admin", "/admin").Use(g.Authenticated, g.Admin)
	admin.GET("/dashboard", h.Dashboard.Get)
	admin.GET("/customers", h.Customer.List)

	admin.Group("admin.products", "/products").
		CRUD(h.Product.List, h.Product.Create, h.Product.Get, h.Product.Update, h.Product.Delete)
	admin.Group("admin.categories", "/categories").
		CRUD(h.Category.List, h.Category.Create, h.Category.Get, h.Category.Update, h.Category.Delete)
	admin.Group("admin.services", "/services").
		CRUD(h.Service.List, h.Service.Create, h.Service.Get, h.Service.Update, h.Service.Delete).
		POST("/:id/image", h.Service.UpdateImage)

	c := h.Content
	admin.Group("admin.team", "/team").
		CRUD(c.ListTeam, c.CreateTeamMember, c.GetTeamMember, c.UpdateTeamMember, c.DeleteTeamMember).
		POST("/:id/image", c.UpdateTeamMemberImage)
	admin.Group("admin.collaborate_teams", "/collaborate-teams").
		CRUD(c.ListCollaborateTeams, c.CreateCollaborateTeam, c.GetCollaborateTeam, c.UpdateCollaborateTeam, c.DeleteCollaborateTeam).
		POST("/:id/logo", c.UpdateCollaborateTeamLogo)
	admin.Group("admin.awards", "/awards").
		CRUD(c.ListAwards, c.CreateAward, c.GetAward, c.UpdateAward, c.DeleteAward).
		POST("/:id/image", c.UpdateAwardImage)

	admin.Group("admin.orders", "/orders").
		GET("", h.Order.AdminList).
		PUT("/:id/status", h.Order.UpdateStatus)

	admin.Group("admin.inventory", "/inventory").
		GET("", h.Inventory.Summary).
		POST("/restock", h.Inventory.Restock).
		POST("/adjust", h.Inventory.Adjust).
		GET("/transactions", h.Inventory.Transactions)

	admin.Group("admin.walkin_sales", "/walkin-sales").
		GET("", h.WalkIn.List).
		POST("", h.WalkIn.Create).
		GET("/products", h.WalkIn.Products).
		GET("/:id", h.WalkIn.Detail)

	return admin
}
