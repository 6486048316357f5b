package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"
	qrcode "github.com/skip2/go-qrcode"

	"github.com/quickbite/quickbite/internal/models"
	"github.com/quickbite/quickbite/internal/repositories"
	"github.com/quickbite/quickbite/internal/services"
)

const (
	deliveryFee = 40
	taxRate     = 0.05
	qrImageSize = 256
)

type Handler struct {
	Restaurants     *services.RestaurantService
	MenuItems       *services.MenuItemService
	Cart            *services.CartService
	Addresses       *services.AddressService
	Orders          *services.OrderService
	TrackingBaseURL string
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/api/restaurants", h.searchRestaurants).Methods("GET")
	r.HandleFunc("/api/restaurants/featured", h.featuredRestaurants).Methods("GET")
	r.HandleFunc("/api/restaurants/{id}", h.getRestaurant).Methods("GET")
	r.HandleFunc("/api/restaurants/{id}/menu", h.getMenu).Methods("GET")
	r.HandleFunc("/api/menu-items", h.searchMenuItems).Methods("GET")
	r.HandleFunc("/api/menu-items/{id}", h.getMenuItem).Methods("GET")

	r.HandleFunc("/api/cart", h.getCart).Methods("GET")
	r.HandleFunc("/api/cart", h.clearCart).Methods("DELETE")
	r.HandleFunc("/api/cart/items", h.addCartItem).Methods("POST")
	r.HandleFunc("/api/cart/items/{id}", h.updateCartItem).Methods("PUT")
	r.HandleFunc("/api/cart/items/{id}", h.removeCartItem).Methods("DELETE")

	r.HandleFunc("/api/addresses", h.listAddresses).Methods("GET")
	r.HandleFunc("/api/addresses", h.createAddress).Methods("POST")
	r.HandleFunc("/api/addresses/{id}", h.getAddress).Methods("GET")
	r.HandleFunc("/api/addresses/{id}", h.updateAddress).Methods("PATCH")
	r.HandleFunc("/api/addresses/{id}", h.deleteAddress).Methods("DELETE")
	r.HandleFunc("/api/addresses/{id}/default", h.setDefaultAddress).Methods("POST")

	r.HandleFunc("/api/checkout", h.checkout).Methods("POST")
	r.HandleFunc("/api/orders", h.listOrders).Methods("GET")
	r.HandleFunc("/api/orders/{id}", h.getOrder).Methods("GET")
	r.HandleFunc("/api/orders/{id}/status", h.updateOrderStatus).Methods("PUT")
	r.HandleFunc("/api/orders/{id}/reorder", h.reorder).Methods("POST")
	r.HandleFunc("/api/orders/{id}/qr", h.orderQR).Methods("GET")
}

func (h *Handler) searchRestaurants(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filters := models.RestaurantFilters{}
	if cuisine := q.Get("cuisine"); cuisine != "" {
		filters.Cuisine = strings.Split(cuisine, ",")
	}
	if rating := q.Get("min_rating"); rating != "" {
		filters.MinRating, _ = strconv.ParseFloat(rating, 64)
	}
	if deliveryTime := q.Get("max_delivery_time"); deliveryTime != "" {
		filters.MaxDeliveryTime, _ = strconv.Atoi(deliveryTime)
	}

	restaurants, err := h.Restaurants.Search(r.Context(), q.Get("q"), filters)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, restaurants)
}

func (h *Handler) featuredRestaurants(w http.ResponseWriter, r *http.Request) {
	restaurants, err := h.Restaurants.Featured(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, restaurants)
}

func (h *Handler) getRestaurant(w http.ResponseWriter, r *http.Request) {
	restaurant, err := h.Restaurants.GetByID(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, restaurant)
}

func (h *Handler) getMenu(w http.ResponseWriter, r *http.Request) {
	restaurantID := mux.Vars(r)["id"]
	if category := r.URL.Query().Get("category"); category != "" {
		items, err := h.MenuItems.ByCategory(r.Context(), restaurantID, category)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, items)
		return
	}
	items, err := h.MenuItems.ByRestaurant(r.Context(), restaurantID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *Handler) searchMenuItems(w http.ResponseWriter, r *http.Request) {
	items, err := h.MenuItems.Search(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *Handler) getMenuItem(w http.ResponseWriter, r *http.Request) {
	item, err := h.MenuItems.GetByID(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

type cartResponse struct {
	Items []models.CartItem `json:"items"`
	Total float64           `json:"total"`
}

func (h *Handler) getCart(w http.ResponseWriter, r *http.Request) {
	items, err := h.Cart.Items(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	total, err := h.Cart.Total(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, cartResponse{Items: items, Total: total})
}

func (h *Handler) addCartItem(w http.ResponseWriter, r *http.Request) {
	var item models.CartItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if item.MenuItemID == "" || item.Quantity < 1 {
		http.Error(w, "menu_item_id and a positive quantity are required", http.StatusBadRequest)
		return
	}
	items, err := h.Cart.AddItem(r.Context(), item)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *Handler) updateCartItem(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Quantity int `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	items, err := h.Cart.UpdateQuantity(r.Context(), mux.Vars(r)["id"], payload.Quantity)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *Handler) removeCartItem(w http.ResponseWriter, r *http.Request) {
	items, err := h.Cart.RemoveItem(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *Handler) clearCart(w http.ResponseWriter, r *http.Request) {
	if err := h.Cart.Clear(r.Context()); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) listAddresses(w http.ResponseWriter, r *http.Request) {
	addresses, err := h.Addresses.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, addresses)
}

func (h *Handler) createAddress(w http.ResponseWriter, r *http.Request) {
	var address models.Address
	if err := json.NewDecoder(r.Body).Decode(&address); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if address.Line1 == "" {
		http.Error(w, "line1 is required", http.StatusBadRequest)
		return
	}
	created, err := h.Addresses.Create(r.Context(), address)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *Handler) getAddress(w http.ResponseWriter, r *http.Request) {
	address, err := h.Addresses.GetByID(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, address)
}

func (h *Handler) updateAddress(w http.ResponseWriter, r *http.Request) {
	var fields models.AddressUpdate
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	address, err := h.Addresses.Update(r.Context(), mux.Vars(r)["id"], fields)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, address)
}

func (h *Handler) deleteAddress(w http.ResponseWriter, r *http.Request) {
	if err := h.Addresses.Delete(r.Context(), mux.Vars(r)["id"]); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) setDefaultAddress(w http.ResponseWriter, r *http.Request) {
	addresses, err := h.Addresses.SetDefault(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, addresses)
}

// checkout builds an order draft from the current cart, the chosen address
// and payment method. The address requirement lives here, not in the order
// service. The grand total adds the delivery fee and tax to the cart
// subtotal, and the cart is cleared once the order is placed.
func (h *Handler) checkout(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		RestaurantID  string `json:"restaurant_id"`
		AddressID     string `json:"address_id"`
		PaymentMethod string `json:"payment_method"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if payload.AddressID == "" {
		http.Error(w, "a delivery address must be selected", http.StatusUnprocessableEntity)
		return
	}

	address, err := h.Addresses.GetByID(r.Context(), payload.AddressID)
	if err != nil {
		writeError(w, err)
		return
	}
	items, err := h.Cart.Items(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	if len(items) == 0 {
		http.Error(w, "cart is empty", http.StatusUnprocessableEntity)
		return
	}
	subtotal, err := h.Cart.Total(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	order, err := h.Orders.Create(r.Context(), models.OrderDraft{
		RestaurantID:  payload.RestaurantID,
		Items:         items,
		Total:         subtotal + deliveryFee + math.Round(subtotal*taxRate),
		Address:       address,
		PaymentMethod: payload.PaymentMethod,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	if err := h.Cart.Clear(r.Context()); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, order)
}

func (h *Handler) listOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.Orders.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, orders)
}

func (h *Handler) getOrder(w http.ResponseWriter, r *http.Request) {
	order, err := h.Orders.GetByID(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

func (h *Handler) updateOrderStatus(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if payload.Status == "" {
		http.Error(w, "status is required", http.StatusBadRequest)
		return
	}
	order, err := h.Orders.UpdateStatus(r.Context(), mux.Vars(r)["id"], payload.Status)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

func (h *Handler) reorder(w http.ResponseWriter, r *http.Request) {
	order, err := h.Orders.Reorder(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, order)
}

// orderQR renders a QR code pointing at the order tracking page.
func (h *Handler) orderQR(w http.ResponseWriter, r *http.Request) {
	order, err := h.Orders.GetByID(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	png, err := qrcode.Encode(fmt.Sprintf("%s/%s", h.TrackingBaseURL, order.ID), qrcode.Medium, qrImageSize)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Write(png)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, err error) {
	if errors.Is(err, repositories.ErrNotFound) {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	http.Error(w, err.Error(), http.StatusInternalServerError)
}
