// Package routes wires the HTTP handlers onto the chi router. Reads on
// portfolio content and the contact form are public; everything that
// mutates data (and the HR surface) sits behind the bearer-token
// middleware.
package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/mahin-rahman/greenbasket/internal/auth"
	"github.com/mahin-rahman/greenbasket/internal/handlers"
	"github.com/mahin-rahman/greenbasket/internal/middleware"
)

// Handlers collects every resource handler the router mounts.
type Handlers struct {
	Auth                 *handlers.AuthHandler
	Users                *handlers.UserHandler
	ProductCategories    *handlers.ProductCategoryHandler
	ProductSubCategories *handlers.ProductSubCategoryHandler
	Products             *handlers.ProductHandler
	Shops                *handlers.ShopHandler
	SalesPoints          *handlers.SalesPointHandler
	ProductSalePoints    *handlers.ProductSalePointHandler
	Orders               *handlers.OrderHandler
	OrderProducts        *handlers.OrderProductHandler
	PromoBanners         *handlers.PromoBannerHandler
	PromoBannerProducts  *handlers.PromoBannerProductHandler
	Recipes              *handlers.RecipeHandler
	Testimonials         *handlers.TestimonialHandler
	Contact              *handlers.ContactHandler
}

// crudHandler is the shape every uuid-keyed resource handler shares.
type crudHandler interface {
	List(http.ResponseWriter, *http.Request)
	Get(http.ResponseWriter, *http.Request)
	Create(http.ResponseWriter, *http.Request)
	Update(http.ResponseWriter, *http.Request)
	Delete(http.ResponseWriter, *http.Request)
}

// RegisterRoutes registers all application routes under /v1.
func RegisterRoutes(router chi.Router, h Handlers, tokenManager *auth.TokenManager) {
	authLimit := middleware.AuthRateLimit(5)
	requireAuth := auth.Middleware(tokenManager)

	router.Route("/v1", func(r chi.Router) {
		// Auth endpoints, rate limited per client IP
		r.With(authLimit).Post("/user-signin", h.Auth.SignIn)
		r.Get("/auth/login/google", h.Auth.GoogleLogin)
		r.With(authLimit).Get("/auth/google/callback", h.Auth.GoogleCallback)

		// Registration is open; the rest of the HR surface needs a token
		r.Post("/hr/users", h.Users.Create)
		r.Group(func(r chi.Router) {
			r.Use(requireAuth)
			r.Get("/hr/users", h.Users.List)
			r.Get("/hr/users/{uuid}", h.Users.Get)
			r.Patch("/hr/users/{uuid}", h.Users.Update)
			r.Delete("/hr/users/{uuid}", h.Users.Delete)
			r.Patch("/hr/users/password/{uuid}", h.Auth.ChangePassword)
		})

		// The contact form is public; reading the inbox is not
		r.Post("/contact-us", h.Contact.Create)
		r.Group(func(r chi.Router) {
			r.Use(requireAuth)
			r.Get("/contact-us", h.Contact.List)
			r.Get("/contact-us/{id}", h.Contact.Get)
			r.Delete("/contact-us/{id}", h.Contact.Delete)
		})

		r.Route("/portfolio", func(r chi.Router) {
			resources := []struct {
				path    string
				handler crudHandler
			}{
				{"/product-categories", h.ProductCategories},
				{"/product-sub-categories", h.ProductSubCategories},
				{"/products", h.Products},
				{"/shops", h.Shops},
				{"/sales-points", h.SalesPoints},
				{"/product-sale-points", h.ProductSalePoints},
				{"/orders", h.Orders},
				{"/order-products", h.OrderProducts},
				{"/promo-banners", h.PromoBanners},
				{"/promo-banner-products", h.PromoBannerProducts},
				{"/recipes", h.Recipes},
				{"/testimonials", h.Testimonials},
			}

			protected := r.With(requireAuth)
			for _, res := range resources {
				r.Get(res.path, res.handler.List)
				r.Get(res.path+"/{uuid}", res.handler.Get)
				protected.Post(res.path, res.handler.Create)
				protected.Patch(res.path+"/{uuid}", res.handler.Update)
				protected.Delete(res.path+"/{uuid}", res.handler.Delete)
			}
		})
	})
}
