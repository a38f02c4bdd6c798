package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sensorgrid-api/dto"
	"github.com/sensorgrid-api/services"
)

var readingService = services.NewSensorReadingService()

// CreateReading records a measurement for a device the user owns
func CreateReading(c *gin.Context) {
	userID, ok := principal(c)
	if !ok {
		return
	}

	deviceID, ok := pathID(c, "deviceId")
	if !ok {
		return
	}

	var req dto.CreateReadingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data: " + err.Error(),
		})
		return
	}

	reading, err := readingService.CreateReading(userID, deviceID, req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status": "success",
		"data":   reading,
	})
}

// ListReadings lists a device's readings, optionally narrowed to a single
// day (?date=) or a closed range (?start_date=&end_date=), dates in
// YYYY-MM-DD form.
func ListReadings(c *gin.Context) {
	userID, ok := principal(c)
	if !ok {
		return
	}

	deviceID, ok := pathID(c, "deviceId")
	if !ok {
		return
	}

	filter, err := parseReadingFilter(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": err.Error(),
		})
		return
	}

	readings, err := readingService.ListReadings(userID, deviceID, filter)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   readings,
	})
}

func parseReadingFilter(c *gin.Context) (dto.ReadingFilter, error) {
	var filter dto.ReadingFilter

	if raw := c.Query("date"); raw != "" {
		day, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return filter, err
		}
		filter.Date = day
		return filter, nil
	}

	start := c.Query("start_date")
	end := c.Query("end_date")
	if start != "" && end != "" {
		startDate, err := time.Parse("2006-01-02", start)
		if err != nil {
			return filter, err
		}
		endDate, err := time.Parse("2006-01-02", end)
		if err != nil {
			return filter, err
		}
		filter.StartDate = startDate
		filter.EndDate = endDate
	}
	return filter, nil
}
