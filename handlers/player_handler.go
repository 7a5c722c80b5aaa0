package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"soullink-tracker/models"
	"soullink-tracker/realtime"
	"soullink-tracker/services"
)

type PlayerHandler struct {
	players *services.PlayerService
	hub     *realtime.Hub
}

func NewPlayerHandler(players *services.PlayerService, hub *realtime.Hub) *PlayerHandler {
	return &PlayerHandler{players: players, hub: hub}
}

// AddPlayer creates a player together with one empty catch slot per
// existing route.
func (h *PlayerHandler) AddPlayer(c *gin.Context) {
	var req models.CreatePlayerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Player name is required"})
		return
	}

	player, err := h.players.AddPlayer(req.Name)
	if err != nil {
		respondError(c, err)
		return
	}

	h.hub.Broadcast(realtime.EventPlayerAdded, player)
	c.JSON(http.StatusCreated, gin.H{"message": "Player added", "player": player})
}
