// routes/routes.go
package routes

import (
	"net/http"

	"shinmen-coffee/controllers"
	"shinmen-coffee/middleware"

	"github.com/gorilla/mux"
)

// Controllers groups every handler the router serves
type Controllers struct {
	Page    http.Handler
	Menu    *controllers.MenuController
	Cart    *controllers.CartController
	Order   *controllers.OrderController
	User    *controllers.UserController
	UI      *controllers.UIController
	Contact *controllers.ContactController
}

// RegisterRoutes sets up all the routes for the application
func RegisterRoutes(router *mux.Router, c Controllers) {
	router.Use(middleware.LogMiddleware)
	router.Use(middleware.SessionMiddleware)

	// Marketing page
	router.Handle("/", c.Page).Methods("GET")

	// Menu routes
	router.HandleFunc("/menu", c.Menu.GetMenu).Methods("GET")
	router.HandleFunc("/menu/categories", c.Menu.GetCategories).Methods("GET")
	router.HandleFunc("/menu/{id}", c.Menu.GetItem).Methods("GET")

	// Cart routes
	router.HandleFunc("/cart", c.Cart.GetCart).Methods("GET")
	router.HandleFunc("/cart", c.Cart.AddToCart).Methods("POST")
	router.HandleFunc("/cart", c.Cart.ClearCart).Methods("DELETE")
	router.HandleFunc("/cart/{item_id}", c.Cart.UpdateCartItem).Methods("PATCH")
	router.HandleFunc("/cart/{item_id}", c.Cart.RemoveFromCart).Methods("DELETE")

	// Order routes
	router.HandleFunc("/orders", c.Order.GetOrders).Methods("GET")
	router.HandleFunc("/orders", c.Order.CreateOrder).Methods("POST")
	router.HandleFunc("/orders/current", c.Order.GetCurrentOrder).Methods("GET")
	router.HandleFunc("/orders/{id}/status", c.Order.UpdateOrderStatus).Methods("PATCH")

	// Account routes
	router.HandleFunc("/register", c.User.Register).Methods("POST")
	router.HandleFunc("/login", c.User.Login).Methods("POST")
	router.HandleFunc("/logout", c.User.Logout).Methods("POST")
	router.HandleFunc("/favorites", c.User.GetFavorites).Methods("GET")
	router.HandleFunc("/recommendations", c.User.GetRecommendations).Methods("GET")
	router.HandleFunc("/recommendations", c.User.SetRecommendations).Methods("PUT")

	// Protected routes
	protected := router.PathPrefix("/profile").Subrouter()
	protected.Use(middleware.AuthMiddleware)
	protected.HandleFunc("", c.User.GetProfile).Methods("GET")
	protected.HandleFunc("/preferences", c.User.UpdatePreferences).Methods("PUT")

	// UI state routes
	router.HandleFunc("/ui", c.UI.GetUI).Methods("GET")
	router.HandleFunc("/ui", c.UI.UpdateUI).Methods("PATCH")
	router.HandleFunc("/ui/animations", c.UI.UpdateAnimations).Methods("PATCH")
	router.HandleFunc("/ui/animations/queue", c.UI.QueueAnimation).Methods("POST")

	// Contact form
	router.HandleFunc("/contact", c.Contact.Submit).Methods("POST")
}
