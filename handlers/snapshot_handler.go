package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"soullink-tracker/services"
)

type SnapshotHandler struct {
	snapshots *services.SnapshotService
}

func NewSnapshotHandler(snapshots *services.SnapshotService) *SnapshotHandler {
	return &SnapshotHandler{snapshots: snapshots}
}

// GetData returns the full state for initial load or reconciliation.
func (h *SnapshotHandler) GetData(c *gin.Context) {
	snap, err := h.snapshots.Snapshot()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, snap)
}
