// Package router provides league module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/festy23/league_manager/internal/league/handler"
	"github.com/festy23/league_manager/internal/league/repository"
	"github.com/festy23/league_manager/internal/league/service"
)

// RegisterRoutes registers league module routes.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, logger *zap.SugaredLogger) {
	RegisterRoutesWithClock(r, db, logger, clockwork.NewRealClock())
}

// RegisterRoutesWithClock registers league module routes with the store
// stamping records from clock.
func RegisterRoutesWithClock(r *gin.Engine, db *gorm.DB, logger *zap.SugaredLogger, clock clockwork.Clock) {
	repo := repository.New(db, clock)
	svc := service.New(repo, logger)
	h := handler.New(svc, logger)

	r.GET("/", h.Welcome)

	leagues := r.Group("/leagues")
	leagues.GET("", h.List)
	leagues.POST("", h.Create)
	leagues.GET("/:id", h.Get)
	leagues.PUT("/:id", h.Update)
	leagues.DELETE("/:id", h.Delete)
	leagues.POST("/invite/:id", h.Invite)
}
