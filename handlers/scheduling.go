package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"worklink/config"
	"worklink/models"
	"worklink/services/scheduling"
	"worklink/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SchedulingHandler exposes the availability and reservation core over HTTP.
type SchedulingHandler struct {
	Service scheduling.SchedulingService
	Cache   *redis.Client
	Logger  *zap.Logger
}

func NewSchedulingHandler(svc scheduling.SchedulingService, cache *redis.Client, logger *zap.Logger) *SchedulingHandler {
	return &SchedulingHandler{Service: svc, Cache: cache, Logger: logger}
}

// GetScheduleHandler returns the professional's weekly schedule, creating the
// platform default on first access.
func (h *SchedulingHandler) GetScheduleHandler(c *gin.Context) {
	professionalID := c.Param("id")
	schedule, err := h.Service.GetSchedule(c.Request.Context(), professionalID)
	if err != nil {
		respondSchedulingError(c, err)
		return
	}
	c.JSON(http.StatusOK, schedule)
}

// SetScheduleHandler replaces the professional's weekly schedule wholesale.
func (h *SchedulingHandler) SetScheduleHandler(c *gin.Context) {
	professionalID := c.Param("id")
	var schedule models.WeeklySchedule
	if err := c.ShouldBindJSON(&schedule); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	schedule.ProfessionalID = professionalID

	if err := h.Service.SetSchedule(c.Request.Context(), &schedule); err != nil {
		respondSchedulingError(c, err)
		return
	}
	c.JSON(http.StatusOK, schedule)
}

// GetAvailableSlotsHandler computes bookable slots for (professional, date,
// duration) and caches the result under a session ID for the confirm step.
func (h *SchedulingHandler) GetAvailableSlotsHandler(c *gin.Context) {
	professionalID := c.Query("professionalId")
	dateStr := c.Query("date")
	date, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date", "details": "expected YYYY-MM-DD"})
		return
	}
	var duration int
	if err := bindIntQuery(c, "duration", &duration); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid duration", "details": err.Error()})
		return
	}

	slots, err := h.Service.GetAvailableSlots(c.Request.Context(), professionalID, date, duration)
	if err != nil {
		respondSchedulingError(c, err)
		return
	}

	sessionID := uuid.New().String()
	session := models.SlotSession{
		ProfessionalID:  professionalID,
		Date:            dateStr,
		DurationMinutes: duration,
		Slots:           slots,
	}
	if data, err := json.Marshal(session); err == nil {
		ttl := time.Duration(config.AppConfig.SlotSessionTTLMinutes) * time.Minute
		if err := h.Cache.Set(c.Request.Context(), slotSessionKey(sessionID), data, ttl).Err(); err != nil {
			h.Logger.Warn("failed to cache slot session", zap.Error(err))
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"sessionID": sessionID,
		"slots":     slots,
	})
}

type reserveRequest struct {
	SessionID      string    `json:"sessionID,omitempty"`
	ProfessionalID string    `json:"professionalId"`
	ClientID       string    `json:"clientId"`
	StartTime      time.Time `json:"startTime"`
	EndTime        time.Time `json:"endTime"`
	Note           string    `json:"note,omitempty"`
}

// ReserveHandler claims a slot. On conflict the client gets a 409 with the
// reason and should re-fetch availability rather than retry the same window.
func (h *SchedulingHandler) ReserveHandler(c *gin.Context) {
	var input reserveRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	commitment, err := h.Service.Reserve(c.Request.Context(), scheduling.ReservationRequest{
		ProfessionalID: input.ProfessionalID,
		ClientID:       input.ClientID,
		StartTime:      input.StartTime,
		EndTime:        input.EndTime,
		Note:           input.Note,
	})
	if err != nil {
		respondSchedulingError(c, err)
		return
	}

	// The slot-picker session is spent once its slot is claimed.
	if input.SessionID != "" {
		h.Cache.Del(context.Background(), slotSessionKey(input.SessionID))
	}

	c.JSON(http.StatusCreated, gin.H{"commitment": commitment})
}

// CancelCommitmentHandler transitions an active commitment to cancelled.
func (h *SchedulingHandler) CancelCommitmentHandler(c *gin.Context) {
	commitment, err := h.Service.CancelReservation(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondSchedulingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"commitment": commitment})
}

// ListCommitmentsHandler returns the professional's commitments in a window.
func (h *SchedulingHandler) ListCommitmentsHandler(c *gin.Context) {
	professionalID := c.Query("professionalId")
	from, err := time.Parse(time.RFC3339, c.Query("from"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid from", "details": "expected RFC3339 timestamp"})
		return
	}
	to, err := time.Parse(time.RFC3339, c.Query("to"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid to", "details": "expected RFC3339 timestamp"})
		return
	}

	commitments, err := h.Service.ListCommitments(c.Request.Context(), professionalID, from, to)
	if err != nil {
		respondSchedulingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"commitments": commitments})
}

func slotSessionKey(sessionID string) string {
	return "slotsession:" + sessionID
}

// respondSchedulingError maps the scheduling error taxonomy onto HTTP. The
// split matters to clients: 409 means "this slot is gone, choose another",
// 503 means "transient, try again shortly".
func respondSchedulingError(c *gin.Context, err error) {
	var validationErr *scheduling.ValidationError
	var conflictErr *scheduling.ConflictError
	var timeoutErr *scheduling.TimeoutError
	var storageErr *scheduling.StorageError

	switch {
	case errors.As(err, &validationErr):
		utils.JSONError(c, http.StatusBadRequest, "invalid request", validationErr.Message)
	case errors.As(err, &conflictErr):
		c.JSON(http.StatusConflict, utils.ErrorResponse{
			Message: "slot no longer available; please pick another time",
			Reason:  conflictErr.Reason,
		})
	case errors.As(err, &timeoutErr):
		utils.JSONError(c, http.StatusServiceUnavailable, "calendar is busy; try again shortly", timeoutErr.Error())
	case errors.As(err, &storageErr):
		utils.JSONError(c, http.StatusInternalServerError, "storage unavailable", storageErr.Error())
	default:
		utils.JSONError(c, http.StatusInternalServerError, "internal error", err.Error())
	}
}
