package handlers

import (
	"net/http"

	"brew_co/internal/models"
	"brew_co/internal/services"

	"github.com/gin-gonic/gin"
)

func (h *APIHandler) RefreshAdminData(c *gin.Context) {
	if err := h.store.RefreshAdminData(c.Request.Context()); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.store.Snapshot())
}

// Order queue endpoints
func (h *APIHandler) GetQueue(c *gin.Context) {
	if err := h.store.LoadQueue(c.Request.Context()); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.store.Snapshot().OrderQueue)
}

func (h *APIHandler) TransitionQueueOrder(c *gin.Context) {
	action := models.QueueAction(c.Param("action"))
	if err := h.store.TransitionQueueOrder(c.Request.Context(), c.Param("id"), action); err != nil {
		respondError(c, err)
		return
	}
	st := h.store.Snapshot()
	c.JSON(http.StatusOK, gin.H{
		"order_queue": st.OrderQueue,
		"analytics":   st.Analytics,
	})
}

func (h *APIHandler) GetAnalytics(c *gin.Context) {
	if err := h.store.LoadAnalytics(c.Request.Context()); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.store.Snapshot().Analytics)
}

// Feedback endpoints
func (h *APIHandler) GetFeedback(c *gin.Context) {
	if err := h.store.LoadFeedback(c.Request.Context()); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.store.Snapshot().Feedback)
}

func (h *APIHandler) ReplyToFeedback(c *gin.Context) {
	var req struct {
		ReplyText string `json:"reply_text"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}
	if err := h.store.ReplyToFeedback(c.Request.Context(), c.Param("id"), req.ReplyText); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.store.Snapshot().Feedback)
}

func (h *APIHandler) GetStaffPerformance(c *gin.Context) {
	if err := h.store.LoadStaffPerformance(c.Request.Context()); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.store.Snapshot().StaffPerformance)
}

// Inventory endpoints
func (h *APIHandler) GetInventory(c *gin.Context) {
	if err := h.store.LoadInventory(c.Request.Context(), c.Query("store_id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.store.Snapshot().Inventory)
}

func (h *APIHandler) UpdateInventoryItem(c *gin.Context) {
	var update models.InventoryUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}
	item, err := h.store.UpdateInventoryItem(c.Request.Context(), c.Param("id"), update)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

// Campaign endpoints
func (h *APIHandler) GetCampaigns(c *gin.Context) {
	if err := h.store.LoadCampaigns(c.Request.Context()); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.store.Snapshot().Campaigns)
}

func (h *APIHandler) SaveCampaign(c *gin.Context) {
	var campaign models.Campaign
	if err := c.ShouldBindJSON(&campaign); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}
	status := http.StatusCreated
	if id := c.Param("id"); id != "" {
		campaign.ID = id
		status = http.StatusOK
	}

	saved, err := h.store.SaveCampaign(c.Request.Context(), campaign)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(status, saved)
}

func (h *APIHandler) DeleteCampaign(c *gin.Context) {
	if err := h.store.DeleteCampaign(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Notification endpoints
func (h *APIHandler) GetNotificationHistory(c *gin.Context) {
	if err := h.store.LoadNotificationHistory(c.Request.Context()); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.store.Snapshot().NotificationHistory)
}

func (h *APIHandler) SendNotification(c *gin.Context) {
	var input services.NotificationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}
	item, err := h.store.SendNotification(c.Request.Context(), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

// Menu endpoints
func (h *APIHandler) GetMenuItems(c *gin.Context) {
	if err := h.store.LoadMenuItems(c.Request.Context()); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.store.Snapshot().MenuItems)
}

func (h *APIHandler) CreateMenuItem(c *gin.Context) {
	var product models.Product
	if err := c.ShouldBindJSON(&product); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}
	created, err := h.store.CreateMenuItem(c.Request.Context(), product)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *APIHandler) UpdateMenuItem(c *gin.Context) {
	var update models.ProductUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}
	product, err := h.store.UpdateMenuItem(c.Request.Context(), c.Param("id"), update)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, product)
}

func (h *APIHandler) DeleteMenuItem(c *gin.Context) {
	if err := h.store.DeleteMenuItem(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
