package controllers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	battery "gitlab.com/immunai1/jba.battery_alert/src/production/JBA.ApiService/implementation/battery"
	logger "gitlab.com/immunai1/jba.battery_alert/src/production/JBA.Logger"
)

// BatteryChecker runs a full battery check
type BatteryChecker interface {
	RunCheck(ctx context.Context) (*battery.CheckResult, error)
}

// CheckController handles battery check requests
type CheckController struct {
	service BatteryChecker
	logger  *logger.Logger
}

// NewCheckController creates a new check controller
func NewCheckController(service BatteryChecker, logger *logger.Logger) *CheckController {
	return &CheckController{
		service: service,
		logger:  logger,
	}
}

// RegisterRoutes registers the check routes with Gin
func (c *CheckController) RegisterRoutes(router *gin.Engine) {
	router.GET("/", c.RunCheck)
}

func (c *CheckController) RunCheck(ctx *gin.Context) {
	result, err := c.service.RunCheck(ctx.Request.Context())
	if err != nil {
		c.logger.ErrorWithError(err, "Error during battery check")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if !result.AlertSent {
		ctx.JSON(http.StatusOK, gin.H{"message": result.Message})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message": "Alert sent successfully",
		"details": result.Message,
	})
}
