package httpserver

import (
	"github.com/gin-gonic/gin"

	"viegrand-care/pkg/response"
)

// Health response constants (single source for version and service identity).
const (
	HealthMessage = "VieGrand Care API"
	HealthVersion = "1.0.0"
	ServiceName   = "viegrand-care"
)

func healthBody(status string) gin.H {
	return gin.H{
		"status":  status,
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	}
}

// healthCheck handles health check requests
// @Summary Health Check
// @Description Check if the API is healthy
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is healthy"
// @Router /health [get]
func (srv HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, healthBody("healthy"))
}

// readyCheck reports which domains are being served.
// @Summary Readiness Check
// @Description Check if the API is ready to serve traffic
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is ready"
// @Router /ready [get]
func (srv HTTPServer) readyCheck(c *gin.Context) {
	body := healthBody("ready")
	body["domains"] = gin.H{
		"reminder": srv.reminderUC != nil,
		"premium":  srv.premiumUC != nil,
		"family":   srv.familyUC != nil,
		"vitals":   srv.vitalsUC != nil,
	}
	response.OK(c, body)
}

// liveCheck handles liveness check requests
// @Summary Liveness Check
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is alive"
// @Router /live [get]
func (srv HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, healthBody("alive"))
}
