package handlers

import (
	"github.com/gin-gonic/gin"

	"soullink-tracker/config"
	"soullink-tracker/database"
	"soullink-tracker/realtime"
	"soullink-tracker/reference"
	"soullink-tracker/services"
)

// Module wires services, handlers and the broadcast hub together.
type Module struct {
	PlayerHandler    *PlayerHandler
	RouteHandler     *RouteHandler
	CatchHandler     *CatchHandler
	MilestoneHandler *MilestoneHandler
	SnapshotHandler  *SnapshotHandler
	BackupHandler    *BackupHandler
	ReferenceHandler *ReferenceHandler

	Hub *realtime.Hub
}

func NewModule(cfg *config.Config, db *database.Manager, cache *reference.Cache, hub *realtime.Hub) *Module {
	playerService := services.NewPlayerService(db)
	routeService := services.NewRouteService(db)
	catchService := services.NewCatchService(db)
	milestoneService := services.NewMilestoneService(db)
	snapshotService := services.NewSnapshotService(db, cache)
	resetService := services.NewResetService(db, cache)
	backupService := services.NewBackupService(cfg, db, cache)
	dumpService := services.NewDumpService(cfg, db, cache)

	return &Module{
		PlayerHandler:    NewPlayerHandler(playerService, hub),
		RouteHandler:     NewRouteHandler(routeService, hub),
		CatchHandler:     NewCatchHandler(catchService, hub),
		MilestoneHandler: NewMilestoneHandler(milestoneService, hub),
		SnapshotHandler:  NewSnapshotHandler(snapshotService),
		BackupHandler:    NewBackupHandler(backupService, dumpService, resetService, hub),
		ReferenceHandler: NewReferenceHandler(cache, hub),
		Hub:              hub,
	}
}

func (m *Module) SetupRoutes(r *gin.Engine) {
	api := r.Group("/api")
	{
		api.GET("/data", m.SnapshotHandler.GetData)

		api.POST("/players", m.PlayerHandler.AddPlayer)

		api.POST("/routes", m.RouteHandler.AddRoute)
		api.PUT("/routes/:id/status", m.RouteHandler.UpdateStatus)
		api.POST("/routes/:id/clear", m.RouteHandler.SoftClear)
		api.DELETE("/routes/:id", m.RouteHandler.Delete)

		api.PUT("/catches", m.CatchHandler.UpdateCatch)

		api.POST("/orders/:number/toggle", m.MilestoneHandler.Toggle)

		api.POST("/reset", m.CatchHandler.ResetAll)
		api.POST("/reset/full", m.BackupHandler.FullReset)

		api.GET("/configs/:name", m.ReferenceHandler.GetConfigFile)
		api.PUT("/configs/:name", m.ReferenceHandler.SaveConfigFile)
		api.POST("/configs/reload", m.ReferenceHandler.ReloadConfigs)

		api.GET("/backup", m.BackupHandler.Backup)
		api.POST("/restore", m.BackupHandler.Restore)
		api.GET("/export", m.BackupHandler.Export)
		api.POST("/import", m.BackupHandler.Import)
	}

	r.GET("/ws", func(c *gin.Context) {
		realtime.ServeWS(m.Hub, c.Writer, c.Request)
	})
}
