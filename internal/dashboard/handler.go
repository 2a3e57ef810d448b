package dashboard

import (
	"log/slog"
	"net/http"

	httperr "github.com/aevon-lab/retail-insights/internal/core/errors"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers the dashboard route on the given router.
func (s *Service) RegisterRoutes(r gin.IRouter) {
	r.GET("/v1/dashboard", s.HandleSnapshot)
}

// HandleSnapshot handles GET /v1/dashboard
func (s *Service) HandleSnapshot(c *gin.Context) {
	snap, err := s.Snapshot(c.Request.Context())
	if err != nil {
		slog.Error("[Dashboard] Failed to build snapshot", "error", err)
		status, errType := httperr.StatusFor(err)
		c.JSON(status, httperr.ErrorResponse{
			ErrorType: errType,
			Message:   "Failed to build dashboard",
			Details:   err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, snap)
}
