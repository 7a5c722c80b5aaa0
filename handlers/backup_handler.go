package handlers

import (
	"archive/zip"
	"bytes"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"soullink-tracker/realtime"
	"soullink-tracker/services"
)

// BackupHandler groups the destructive/administrative endpoints:
// archive backup and restore, text export and import, full reset.
type BackupHandler struct {
	backups *services.BackupService
	dumps   *services.DumpService
	resets  *services.ResetService
	hub     *realtime.Hub
}

func NewBackupHandler(backups *services.BackupService, dumps *services.DumpService, resets *services.ResetService, hub *realtime.Hub) *BackupHandler {
	return &BackupHandler{backups: backups, dumps: dumps, resets: resets, hub: hub}
}

// Backup streams the ZIP bundle. The archive is assembled in memory
// first so an assembly failure can still produce a 500 instead of a
// truncated download.
func (h *BackupHandler) Backup(c *gin.Context) {
	var buf bytes.Buffer
	if err := h.backups.WriteArchive(&buf); err != nil {
		respondError(c, err)
		return
	}

	filename := fmt.Sprintf("soullink-backup-%s.zip", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/zip", buf.Bytes())
}

// Restore accepts an uploaded archive and overwrites the on-disk
// state with its allow-listed entries.
func (h *BackupHandler) Restore(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file uploaded"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		respondError(c, err)
		return
	}
	defer file.Close()

	zr, err := zip.NewReader(file, fileHeader.Size)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Uploaded file is not a valid ZIP archive"})
		return
	}

	if err := h.backups.Restore(zr); err != nil {
		respondError(c, err)
		return
	}

	h.hub.Broadcast(realtime.EventRestoreCompleted, nil)
	c.JSON(http.StatusOK, gin.H{"message": "Restore completed"})
}

// FullReset drops and recreates the whole schema.
func (h *BackupHandler) FullReset(c *gin.Context) {
	if err := h.resets.FullReset(); err != nil {
		respondError(c, err)
		return
	}

	h.hub.Broadcast(realtime.EventFullDBReset, nil)
	c.JSON(http.StatusOK, gin.H{"message": "Database fully reset"})
}

// Export returns the text form of a backup.
func (h *BackupHandler) Export(c *gin.Context) {
	bundle, err := h.dumps.Export()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, bundle)
}

// Import rebuilds the store from a text bundle. Password-gated; the
// check happens before any write.
func (h *BackupHandler) Import(c *gin.Context) {
	var req services.ImportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Malformed import payload"})
		return
	}

	if err := h.dumps.Import(req.Password, &req.Bundle); err != nil {
		respondError(c, err)
		return
	}

	h.hub.Broadcast(realtime.EventImportCompleted, nil)
	c.JSON(http.StatusOK, gin.H{"message": "Import completed"})
}
