package handlers

import (
	"errors"
	"io"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"soullink-tracker/realtime"
	"soullink-tracker/reference"
)

type ReferenceHandler struct {
	cache *reference.Cache
	hub   *realtime.Hub
}

func NewReferenceHandler(cache *reference.Cache, hub *realtime.Hub) *ReferenceHandler {
	return &ReferenceHandler{cache: cache, hub: hub}
}

// GetConfigFile returns the raw contents of one reference file.
func (h *ReferenceHandler) GetConfigFile(c *gin.Context) {
	name := c.Param("name")

	data, err := h.cache.ReadFile(name)
	if errors.Is(err, reference.ErrUnknownFile) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown config file"})
		return
	}
	if os.IsNotExist(err) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Config file not found"})
		return
	}
	if err != nil {
		respondError(c, err)
		return
	}

	c.Data(http.StatusOK, "application/json", data)
}

// SaveConfigFile validates and overwrites one reference file, then
// reloads the cache so pickers see the new lists immediately.
func (h *ReferenceHandler) SaveConfigFile(c *gin.Context) {
	name := c.Param("name")

	content, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Could not read request body"})
		return
	}

	err = h.cache.SaveFile(name, content)
	switch {
	case errors.Is(err, reference.ErrUnknownFile):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown config file"})
		return
	case errors.Is(err, reference.ErrInvalidContent):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON for " + name})
		return
	case err != nil:
		respondError(c, err)
		return
	}

	h.cache.Reload()
	h.hub.Broadcast(realtime.EventConfigSaved, gin.H{"file": name})
	c.JSON(http.StatusOK, gin.H{"message": "Config saved", "file": name})
}

// ReloadConfigs re-reads all reference files.
func (h *ReferenceHandler) ReloadConfigs(c *gin.Context) {
	h.cache.Reload()

	h.hub.Broadcast(realtime.EventConfigsReloaded, nil)
	c.JSON(http.StatusOK, gin.H{"message": "Configs reloaded"})
}
