package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"soullink-tracker/models"
	"soullink-tracker/realtime"
	"soullink-tracker/services"
)

type RouteHandler struct {
	routes *services.RouteService
	hub    *realtime.Hub
}

func NewRouteHandler(routes *services.RouteService, hub *realtime.Hub) *RouteHandler {
	return &RouteHandler{routes: routes, hub: hub}
}

func routeIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid route ID"})
		return 0, false
	}
	return uint(id), true
}

// AddRoute creates a route together with one empty catch slot per
// existing player.
func (h *RouteHandler) AddRoute(c *gin.Context) {
	var req models.CreateRouteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Route name is required"})
		return
	}

	route, err := h.routes.AddRoute(req.Name)
	if err != nil {
		respondError(c, err)
		return
	}

	h.hub.Broadcast(realtime.EventRouteAdded, route)
	c.JSON(http.StatusCreated, gin.H{"message": "Route added", "route": route})
}

// UpdateStatus overwrites the route's free-text annotation.
func (h *RouteHandler) UpdateStatus(c *gin.Context) {
	id, ok := routeIDParam(c)
	if !ok {
		return
	}

	var req models.UpdateRouteStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	status := ""
	if req.StatusText != nil {
		status = *req.StatusText
	}

	if err := h.routes.UpdateStatus(id, status); err != nil {
		respondError(c, err)
		return
	}

	h.hub.Broadcast(realtime.EventRouteStatusUpdated, gin.H{
		"route_id":    id,
		"status_text": status,
	})
	c.JSON(http.StatusOK, gin.H{"message": "Route status updated", "route_id": id, "status_text": status})
}

// SoftClear wipes the route's status and catches but keeps the route.
func (h *RouteHandler) SoftClear(c *gin.Context) {
	id, ok := routeIDParam(c)
	if !ok {
		return
	}

	if err := h.routes.SoftClear(id); err != nil {
		respondError(c, err)
		return
	}

	h.hub.Broadcast(realtime.EventRouteDataCleared, gin.H{"route_id": id})
	c.JSON(http.StatusOK, gin.H{"message": "Route data cleared", "route_id": id})
}

// Delete removes the route and every catch referencing it.
func (h *RouteHandler) Delete(c *gin.Context) {
	id, ok := routeIDParam(c)
	if !ok {
		return
	}

	if err := h.routes.Delete(id); err != nil {
		respondError(c, err)
		return
	}

	h.hub.Broadcast(realtime.EventRouteDeleted, gin.H{"route_id": id})
	c.JSON(http.StatusOK, gin.H{"message": "Route deleted", "route_id": id})
}
