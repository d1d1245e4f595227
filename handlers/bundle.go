package handlers

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"
)

// HandlerBundle aggregates all endpoint handlers for route registration.
type HandlerBundle struct {
	// Schedule configuration endpoints.
	GetScheduleHandler gin.HandlerFunc
	SetScheduleHandler gin.HandlerFunc

	// Slot-picker and reservation endpoints.
	GetAvailableSlotsHandler gin.HandlerFunc
	ReserveHandler           gin.HandlerFunc
	CancelCommitmentHandler  gin.HandlerFunc
	ListCommitmentsHandler   gin.HandlerFunc
}

func bindIntQuery(c *gin.Context, name string, out *int) error {
	raw := c.Query(name)
	if raw == "" {
		return fmt.Errorf("query parameter %q is required", name)
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fmt.Errorf("query parameter %q must be an integer", name)
	}
	*out = v
	return nil
}
