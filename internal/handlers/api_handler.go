package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"brew_co/internal/models"
	"brew_co/internal/repository"
	"brew_co/internal/services"
	"brew_co/internal/store"

	"github.com/gin-gonic/gin"
)

// APIHandler exposes the application store to the UI over JSON.
type APIHandler struct {
	store       *store.Store
	menuService services.MenuService
	userService services.UserService
}

func NewAPIHandler(appStore *store.Store, menuService services.MenuService, userService services.UserService) *APIHandler {
	return &APIHandler{
		store:       appStore,
		menuService: menuService,
		userService: userService,
	}
}

func (h *APIHandler) RegisterRoutes(router gin.IRouter) {
	api := router.Group("/api")
	{
		api.GET("/state", h.GetState)
		api.POST("/mode/toggle", h.ToggleAdminMode)

		api.GET("/products", h.GetProducts)
		api.GET("/stores", h.GetStores)
		api.GET("/rewards", h.GetRewards)
		api.GET("/orders", h.GetOrderHistory)

		api.GET("/cart", h.GetCart)
		api.POST("/cart", h.AddToCart)
		api.PATCH("/cart/:index", h.UpdateCartQuantity)
		api.DELETE("/cart/:index", h.RemoveFromCart)
		api.DELETE("/cart", h.ClearCart)
		api.POST("/cart/checkout", h.SubmitCartOrder)
	}

	admin := api.Group("/admin")
	{
		admin.POST("/refresh", h.RefreshAdminData)

		admin.GET("/queue", h.GetQueue)
		admin.POST("/queue/:id/:action", h.TransitionQueueOrder)
		admin.GET("/analytics", h.GetAnalytics)

		admin.GET("/feedback", h.GetFeedback)
		admin.POST("/feedback/:id/reply", h.ReplyToFeedback)

		admin.GET("/staff/performance", h.GetStaffPerformance)

		admin.GET("/inventory", h.GetInventory)
		admin.PATCH("/inventory/:id", h.UpdateInventoryItem)

		admin.GET("/campaigns", h.GetCampaigns)
		admin.POST("/campaigns", h.SaveCampaign)
		admin.PUT("/campaigns/:id", h.SaveCampaign)
		admin.DELETE("/campaigns/:id", h.DeleteCampaign)

		admin.GET("/notifications", h.GetNotificationHistory)
		admin.POST("/notifications", h.SendNotification)

		admin.GET("/menu", h.GetMenuItems)
		admin.POST("/menu", h.CreateMenuItem)
		admin.PATCH("/menu/:id", h.UpdateMenuItem)
		admin.DELETE("/menu/:id", h.DeleteMenuItem)
	}
}

// respondError maps a failed action to an HTTP status.
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, repository.ErrNotFound):
		status = http.StatusNotFound
	case services.IsValidation(err):
		status = http.StatusBadRequest
	}

	body := gin.H{"error": err.Error()}
	var verr *services.ValidationError
	if errors.As(err, &verr) {
		body["field"] = verr.Field
	}
	c.JSON(status, body)
}

func indexParam(c *gin.Context) (int, bool) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid cart index"})
		return 0, false
	}
	return index, true
}

func (h *APIHandler) GetState(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.Snapshot())
}

func (h *APIHandler) ToggleAdminMode(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"is_admin_mode": h.store.ToggleAdminMode(c.Request.Context())})
}

func (h *APIHandler) GetProducts(c *gin.Context) {
	products, err := h.menuService.GetAvailableProducts(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, products)
}

func (h *APIHandler) GetStores(c *gin.Context) {
	if err := h.store.LoadStores(c.Request.Context()); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.store.Snapshot().Stores)
}

func (h *APIHandler) GetRewards(c *gin.Context) {
	rewards, err := h.userService.GetRewards(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rewards)
}

func (h *APIHandler) GetOrderHistory(c *gin.Context) {
	if err := h.store.LoadOrderHistory(c.Request.Context(), c.Query("user_id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.store.Snapshot().OrderHistory)
}

// Cart endpoints
func (h *APIHandler) cartResponse(c *gin.Context, status int) {
	c.JSON(status, gin.H{
		"items": h.store.Cart(),
		"total": h.store.CartTotal(),
	})
}

func (h *APIHandler) GetCart(c *gin.Context) {
	h.cartResponse(c, http.StatusOK)
}

func (h *APIHandler) AddToCart(c *gin.Context) {
	var req struct {
		ProductID      string      `json:"product_id" binding:"required"`
		Quantity       *int        `json:"quantity"`
		Size           models.Size `json:"size"`
		Customizations []string    `json:"customizations"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	ctx := c.Request.Context()
	product, err := h.menuService.GetProductByID(ctx, req.ProductID)
	if err != nil {
		respondError(c, err)
		return
	}
	quantity := 1
	if req.Quantity != nil {
		quantity = *req.Quantity
	}
	if err := h.store.AddToCart(ctx, *product, quantity, req.Size, req.Customizations); err != nil {
		respondError(c, err)
		return
	}
	h.cartResponse(c, http.StatusOK)
}

func (h *APIHandler) UpdateCartQuantity(c *gin.Context) {
	index, ok := indexParam(c)
	if !ok {
		return
	}
	var req struct {
		Delta int `json:"delta"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}
	h.store.UpdateQuantity(c.Request.Context(), index, req.Delta)
	h.cartResponse(c, http.StatusOK)
}

func (h *APIHandler) RemoveFromCart(c *gin.Context) {
	index, ok := indexParam(c)
	if !ok {
		return
	}
	h.store.RemoveFromCart(c.Request.Context(), index)
	h.cartResponse(c, http.StatusOK)
}

func (h *APIHandler) ClearCart(c *gin.Context) {
	h.store.ClearCart(c.Request.Context())
	h.cartResponse(c, http.StatusOK)
}

func (h *APIHandler) SubmitCartOrder(c *gin.Context) {
	var req struct {
		CustomerName string `json:"customer_name"`
	}
	// an empty body checks out as Guest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
			return
		}
	}

	orderID, err := h.store.SubmitCartOrder(c.Request.Context(), req.CustomerName)
	if err != nil && orderID == "" {
		respondError(c, err)
		return
	}
	body := gin.H{"order_id": orderID}
	if err != nil {
		body["warning"] = err.Error()
	}
	c.JSON(http.StatusCreated, body)
}
