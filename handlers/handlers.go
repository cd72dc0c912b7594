package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"cropwatch/cropdata"
	"cropwatch/models"
	"cropwatch/service"
)

const defaultListLimit = 20

// Handlers represents the HTTP handlers
type Handlers struct {
	svc     *service.Service
	catalog *cropdata.Catalog
}

// NewHandlers creates new HTTP handlers
func NewHandlers(svc *service.Service, catalog *cropdata.Catalog) *Handlers {
	return &Handlers{svc: svc, catalog: catalog}
}

// HealthCheck handles health check requests
func (h *Handlers) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, models.HealthResponse{
		Status:    "healthy",
		Service:   "cropwatch",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

// SubmitCheckIn runs the weighted assessment for a weekly check-in
func (h *Handlers) SubmitCheckIn(c *gin.Context) {
	var req models.CheckInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request body: " + err.Error(),
		})
		return
	}

	checkIn, err := h.svc.ProcessCheckIn(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to process check-in",
		})
		return
	}

	c.JSON(http.StatusOK, checkIn)
}

// GetCheckIns returns recent check-ins for a farmer
func (h *Handlers) GetCheckIns(c *gin.Context) {
	farmerID := c.Query("farmer_id")
	if farmerID == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "farmer_id is required",
		})
		return
	}

	checkIns, err := h.svc.GetCheckIns(c.Request.Context(), farmerID, listLimit(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to get check-ins",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"check_ins": checkIns,
		"count":     len(checkIns),
	})
}

// SubmitWeeklyRecord runs the simple field assessment for a weekly record
func (h *Handlers) SubmitWeeklyRecord(c *gin.Context) {
	var req models.WeeklyRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request body: " + err.Error(),
		})
		return
	}

	record, err := h.svc.ProcessWeeklyRecord(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to process weekly record",
		})
		return
	}

	c.JSON(http.StatusOK, record)
}

// GetWeeklyRecords returns recent weekly records for a farmer
func (h *Handlers) GetWeeklyRecords(c *gin.Context) {
	farmerID := c.Query("farmer_id")
	if farmerID == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "farmer_id is required",
		})
		return
	}

	records, err := h.svc.GetWeeklyRecords(c.Request.Context(), farmerID, listLimit(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to get weekly records",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"records": records,
		"count":   len(records),
	})
}

// SaveFarmProfile registers or updates a farm profile
func (h *Handlers) SaveFarmProfile(c *gin.Context) {
	var profile models.FarmProfile
	if err := c.ShouldBindJSON(&profile); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request body: " + err.Error(),
		})
		return
	}

	saved, err := h.svc.SaveFarmProfile(c.Request.Context(), &profile)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, saved)
}

// GetFarmProfile returns a farm profile by id
func (h *Handlers) GetFarmProfile(c *gin.Context) {
	profile, err := h.svc.GetFarmProfile(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Farm profile not found",
		})
		return
	}

	c.JSON(http.StatusOK, profile)
}

// GetCrops returns the supported crop types
func (h *Handlers) GetCrops(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"crops": h.catalog.CropTypes(),
	})
}

// GetCropQuestions returns the check-in questions for a crop type
func (h *Handlers) GetCropQuestions(c *gin.Context) {
	cropType := c.Param("type")
	questions := h.catalog.Questions(cropType)
	if len(questions) == 0 {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Unsupported crop type",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"crop_type": cropType,
		"questions": questions,
		"field":     h.catalog.FieldQuestions(cropType),
	})
}

// GetCropStages returns the growth stages for a crop type
func (h *Handlers) GetCropStages(c *gin.Context) {
	cropType := c.Param("type")
	stages := h.catalog.Stages(cropType)
	if len(stages) == 0 {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Unsupported crop type",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"crop_type": cropType,
		"stages":    stages,
	})
}

// GetCropNotes returns the qualitative risk notes for a crop type
func (h *Handlers) GetCropNotes(c *gin.Context) {
	cropType := c.Param("type")
	profile, ok := h.catalog.RiskProfile(cropType)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Unsupported crop type",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"crop_type":    cropType,
		"common_risks": profile.CommonRisks,
		"analysis":     profile.Analysis,
	})
}

func listLimit(c *gin.Context) int {
	limit := defaultListLimit
	if raw := c.Query("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 && parsed <= 100 {
			limit = parsed
		}
	}
	return limit
}
