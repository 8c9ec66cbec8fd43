package httpserver

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	familyHTTP "viegrand-care/internal/family/delivery/http"
	"viegrand-care/internal/model"
	premiumHTTP "viegrand-care/internal/premium/delivery/http"
	reminderHTTP "viegrand-care/internal/reminder/delivery/http"
	vitalsHTTP "viegrand-care/internal/vitals/delivery/http"
	"viegrand-care/pkg/response"
)

// Handler exposes the router, mainly for tests.
func (srv HTTPServer) Handler() http.Handler {
	return srv.gin
}

func (srv HTTPServer) mapHandlers() {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()
	srv.registerDomainRoutes()
}

func (srv HTTPServer) registerMiddlewares() {
	srv.gin.Use(gin.CustomRecovery(srv.recoverPanic))
	srv.gin.Use(srv.mw.RequestID())
	srv.gin.Use(srv.accessLog())

	ctx := context.Background()
	if srv.environment == string(model.EnvironmentProduction) {
		srv.l.Infof(ctx, "HTTP mode: production")
	} else {
		srv.l.Infof(ctx, "HTTP mode: %s", srv.environment)
	}
}

func (srv HTTPServer) recoverPanic(c *gin.Context, recovered any) {
	srv.l.Errorf(c.Request.Context(), "httpserver: panic on %s %s: %v", c.Request.Method, c.Request.URL.Path, recovered)
	response.InternalError(c, fmt.Errorf("panic: %v", recovered))
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes registers all domain routes under /api/v1.
func (srv HTTPServer) registerDomainRoutes() {
	ctx := context.Background()
	api := srv.gin.Group("/api/v1", srv.mw.RateLimit())

	reminderHTTP.RegisterRoutes(api, reminderHTTP.New(srv.l, srv.reminderUC), srv.mw)
	srv.l.Infof(ctx, "Reminder domain registered")

	if srv.premiumUC != nil {
		premiumHTTP.RegisterRoutes(api, premiumHTTP.New(srv.l, srv.premiumUC), srv.mw)
		srv.l.Infof(ctx, "Premium domain registered")
	}

	if srv.familyUC != nil {
		familyHTTP.RegisterRoutes(api, familyHTTP.New(srv.l, srv.familyUC), srv.mw)
		srv.l.Infof(ctx, "Family domain registered")
	}

	if srv.vitalsUC != nil {
		vitalsHTTP.RegisterRoutes(api, vitalsHTTP.New(srv.l, srv.vitalsUC))
		srv.l.Infof(ctx, "Vitals domain registered")
	}
}
