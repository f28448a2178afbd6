package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"weekly-agenda/internal/middleware"
	scheduleHTTP "weekly-agenda/internal/schedule/delivery/http"
)

// setupScheduleDomain initializes the schedule domain and registers its routes.
//
// Pattern to follow when adding a new domain:
//  1. Create UseCase:      uc := mydomainUC.New(...)  (done in main, injected here)
//  2. Create HTTP Handler: h := mydomainHTTP.New(srv.l, uc)
//  3. Register Routes:     mydomainHTTP.RegisterRoutes(api, h, mw)
func (srv HTTPServer) setupScheduleDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	h := scheduleHTTP.New(srv.l, srv.scheduleUC)

	// Registers /api/v1/schedule/...
	scheduleHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Schedule domain registered")
	return nil
}
