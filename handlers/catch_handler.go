package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"soullink-tracker/models"
	"soullink-tracker/realtime"
	"soullink-tracker/services"
)

type CatchHandler struct {
	catches *services.CatchService
	hub     *realtime.Hub
}

func NewCatchHandler(catches *services.CatchService, hub *realtime.Hub) *CatchHandler {
	return &CatchHandler{catches: catches, hub: hub}
}

// UpdateCatch upserts the (player, route) slot; a null pokemon_name
// marks the slot uncaught again.
func (h *CatchHandler) UpdateCatch(c *gin.Context) {
	var req models.UpdateCatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Player ID and route ID are required"})
		return
	}

	if err := h.catches.UpdateCatch(req.PlayerID, req.RouteID, req.PokemonName); err != nil {
		respondError(c, err)
		return
	}

	h.hub.Broadcast(realtime.EventCatchUpdated, gin.H{
		"player_id":    req.PlayerID,
		"route_id":     req.RouteID,
		"pokemon_name": req.PokemonName,
	})
	c.JSON(http.StatusOK, gin.H{"message": "Catch updated"})
}

// ResetAll nulls every catch and clears every route status. Players
// and routes stay.
func (h *CatchHandler) ResetAll(c *gin.Context) {
	if err := h.catches.ResetAll(); err != nil {
		respondError(c, err)
		return
	}

	h.hub.Broadcast(realtime.EventAllDataReset, nil)
	c.JSON(http.StatusOK, gin.H{"message": "All catches and route statuses reset"})
}
