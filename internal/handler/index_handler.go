package handler

import (
	"context"
	"net/http"
	"time"

	"fitness-club/internal/model"
	"fitness-club/internal/service"
	"fitness-club/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Pinger is satisfied by *pgxpool.Pool.
type Pinger interface {
	Ping(ctx context.Context) error
}

type IndexHandler struct {
	activity service.ActivityService
	db       Pinger
}

func NewIndexHandler(activity service.ActivityService, db Pinger) *IndexHandler {
	return &IndexHandler{activity: activity, db: db}
}

func (h *IndexHandler) RegisterRoutes(r *gin.Engine) {
	r.GET("/", h.Index)
	r.GET("/healthz", h.Health)
}

// Index shows the landing page. A failing activity feed degrades to an empty list.
func (h *IndexHandler) Index(c *gin.Context) {
	entries, err := h.activity.Recent(c, service.DefaultRecentActivity)
	if err != nil {
		logger.WithComponent("handler").Warn("failed to load recent activity", zap.Error(err))
		entries = []*model.ActivityEntry{}
	}
	render(c, http.StatusOK, "index", gin.H{
		"Title":    "Fitness club",
		"Activity": entries,
	})
}

func (h *IndexHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c, 2*time.Second)
	defer cancel()
	if err := h.db.Ping(ctx); err != nil {
		logger.WithComponent("handler").Error("health check failed", zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
