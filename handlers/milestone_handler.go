package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"soullink-tracker/realtime"
	"soullink-tracker/services"
)

type MilestoneHandler struct {
	milestones *services.MilestoneService
	hub        *realtime.Hub
}

func NewMilestoneHandler(milestones *services.MilestoneService, hub *realtime.Hub) *MilestoneHandler {
	return &MilestoneHandler{milestones: milestones, hub: hub}
}

// Toggle flips the shared obtained flag of one milestone.
func (h *MilestoneHandler) Toggle(c *gin.Context) {
	number, err := strconv.Atoi(c.Param("number"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order number"})
		return
	}

	obtained, err := h.milestones.Toggle(number)
	if err != nil {
		respondError(c, err)
		return
	}

	h.hub.Broadcast(realtime.EventGlobalOrderToggled, gin.H{
		"order_number": number,
		"is_obtained":  obtained,
	})
	c.JSON(http.StatusOK, gin.H{"message": "Global order updated", "is_obtained": obtained})
}
