package router

import (
	"net/http"
	"strings"

	"shopzone/internal/handler"
	"shopzone/internal/middleware"

	"github.com/rs/zerolog"
)

// Handlers bundles every HTTP handler the router dispatches to.
type Handlers struct {
	Product  *handler.ProductHandler
	Category *handler.CategoryHandler
	Auth     *handler.AuthHandler
	Cart     *handler.CartHandler
	Order    *handler.OrderHandler
	Admin    *handler.AdminHandler
	Wishlist *handler.WishlistHandler
}

// New creates a new HTTP router with all routes and middleware configured.
// Storefront routes are open; the admin dashboard and catalog mutations
// require the admin API key.
func New(h Handlers, apiKey string, logger zerolog.Logger) http.Handler {
	mux := http.NewServeMux()
	adminAuth := middleware.AdminAuth(apiKey, logger)

	// Health check endpoint (no authentication required)
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "healthy"}`))
	})

	// Product handler function
	productRouteHandler := func(w http.ResponseWriter, r *http.Request) {
		id := pathSuffix(r.URL.Path, "/api/products")

		switch {
		case r.Method == http.MethodGet && id == "":
			h.Product.GetAll(w, r)
		case r.Method == http.MethodGet:
			h.Product.GetByID(w, r, id)
		case r.Method == http.MethodPost && id == "":
			adminAuth(http.HandlerFunc(h.Product.Create)).ServeHTTP(w, r)
		case r.Method == http.MethodPut && id != "":
			adminAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				h.Product.Update(w, r, id)
			})).ServeHTTP(w, r)
		case r.Method == http.MethodDelete && id != "":
			adminAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				h.Product.Delete(w, r, id)
			})).ServeHTTP(w, r)
		default:
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		}
	}

	// Register product routes (both with and without trailing slash)
	mux.HandleFunc("/api/products", productRouteHandler)
	mux.HandleFunc("/api/products/", productRouteHandler)

	// Category handler function
	categoryRouteHandler := func(w http.ResponseWriter, r *http.Request) {
		id := pathSuffix(r.URL.Path, "/api/categories")

		switch {
		case r.Method == http.MethodGet && id == "":
			h.Category.GetAll(w, r)
		case r.Method == http.MethodPost && id == "":
			adminAuth(http.HandlerFunc(h.Category.Create)).ServeHTTP(w, r)
		case r.Method == http.MethodPut && id != "":
			adminAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				h.Category.Update(w, r, id)
			})).ServeHTTP(w, r)
		case r.Method == http.MethodDelete && id != "":
			adminAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				h.Category.Delete(w, r, id)
			})).ServeHTTP(w, r)
		default:
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		}
	}

	mux.HandleFunc("/api/categories", categoryRouteHandler)
	mux.HandleFunc("/api/categories/", categoryRouteHandler)

	// Auth routes
	mux.HandleFunc("/api/auth/signup", requireMethod(http.MethodPost, h.Auth.SignUp))
	mux.HandleFunc("/api/auth/login", requireMethod(http.MethodPost, h.Auth.Login))
	mux.HandleFunc("/api/auth/logout", requireMethod(http.MethodPost, h.Auth.Logout))
	mux.HandleFunc("/api/auth/me", requireMethod(http.MethodGet, h.Auth.Me))

	// Cart routes
	mux.HandleFunc("/api/cart", requireMethod(http.MethodGet, h.Cart.Get))
	mux.HandleFunc("/api/cart/clear", requireMethod(http.MethodPost, h.Cart.Clear))

	cartItemRouteHandler := func(w http.ResponseWriter, r *http.Request) {
		id := pathSuffix(r.URL.Path, "/api/cart/items")

		switch {
		case r.Method == http.MethodPost && id == "":
			h.Cart.AddItem(w, r)
		case r.Method == http.MethodPut && id != "":
			h.Cart.UpdateItem(w, r, id)
		case r.Method == http.MethodDelete && id != "":
			h.Cart.RemoveItem(w, r, id)
		default:
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		}
	}

	mux.HandleFunc("/api/cart/items", cartItemRouteHandler)
	mux.HandleFunc("/api/cart/items/", cartItemRouteHandler)

	// Checkout
	mux.HandleFunc("/api/checkout", requireMethod(http.MethodPost, h.Order.Checkout))

	// Order handler function
	orderRouteHandler := func(w http.ResponseWriter, r *http.Request) {
		id := pathSuffix(r.URL.Path, "/api/orders")

		switch {
		case r.Method == http.MethodGet && id == "":
			h.Order.GetAll(w, r)
		case r.Method == http.MethodGet:
			h.Order.GetByID(w, r, id)
		default:
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		}
	}

	mux.HandleFunc("/api/orders", orderRouteHandler)
	mux.HandleFunc("/api/orders/", orderRouteHandler)

	// Wishlist routes
	wishlistRouteHandler := func(w http.ResponseWriter, r *http.Request) {
		id := pathSuffix(r.URL.Path, "/api/wishlist")

		switch {
		case r.Method == http.MethodGet && id == "":
			h.Wishlist.List(w, r)
		case r.Method == http.MethodPost && id == "":
			h.Wishlist.Add(w, r)
		case r.Method == http.MethodDelete && id != "":
			h.Wishlist.Remove(w, r, id)
		default:
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		}
	}

	mux.HandleFunc("/api/wishlist", wishlistRouteHandler)
	mux.HandleFunc("/api/wishlist/", wishlistRouteHandler)

	// Admin routes (API key required)
	adminRouteHandler := func(w http.ResponseWriter, r *http.Request) {
		path := strings.TrimSuffix(r.URL.Path, "/")

		switch {
		case r.Method == http.MethodGet && path == "/api/admin/stats":
			h.Admin.Stats(w, r)
		case r.Method == http.MethodPut &&
			strings.HasPrefix(path, "/api/admin/orders/") &&
			strings.HasSuffix(path, "/status"):
			id := strings.TrimSuffix(strings.TrimPrefix(path, "/api/admin/orders/"), "/status")
			if id == "" {
				http.Error(w, "not found", http.StatusNotFound)
				return
			}
			h.Admin.UpdateOrderStatus(w, r, id)
		default:
			http.Error(w, "not found", http.StatusNotFound)
		}
	}

	mux.Handle("/api/admin/", adminAuth(http.HandlerFunc(adminRouteHandler)))

	// Apply middleware in order: Recovery -> Logging -> CORS
	var root http.Handler = mux
	root = middleware.CORS(root)
	root = middleware.Logging(logger)(root)
	root = middleware.Recovery(logger)(root)

	return root
}

// pathSuffix extracts the trailing id segment after a collection prefix.
// It returns "" for the bare collection path.
func pathSuffix(path, prefix string) string {
	rest := strings.TrimPrefix(path, prefix)
	return strings.Trim(rest, "/")
}

// requireMethod rejects requests whose method does not match.
func requireMethod(method string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != method {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		next(w, r)
	}
}
