package api

import (
	"errors"
	"net/http"
	"time"

	resdto "estatebook/internal/handler/dto/response"
	"estatebook/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const dateLayout = "2006-01-02"

type ResourceHandler struct {
	bookingQueries      queries.BookingQueries
	availabilityQueries queries.AvailabilityQueries
}

func NewResourceHandler(bookingQueries queries.BookingQueries, availabilityQueries queries.AvailabilityQueries) *ResourceHandler {
	return &ResourceHandler{
		bookingQueries:      bookingQueries,
		availabilityQueries: availabilityQueries,
	}
}

// @Summary Get resource
// @Description Get resource details by ID
// @Tags resources
// @Produce json
// @Param id path string true "Resource ID"
// @Success 200 {object} resdto.ResourceResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /resources/{id} [get]
func (h *ResourceHandler) GetResource(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid resource ID format",
		})
		return
	}

	view, err := h.bookingQueries.GetResource(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrResourceNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Resource not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromResourceView(view))
}

// @Summary Availability calendar
// @Description Per-day availability and nightly price over a date range
// @Tags resources
// @Produce json
// @Param id path string true "Resource ID"
// @Param from query string true "Range start (YYYY-MM-DD, inclusive)"
// @Param to query string true "Range end (YYYY-MM-DD, exclusive)"
// @Success 200 {array} resdto.CalendarDayResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /resources/{id}/calendar [get]
func (h *ResourceHandler) GetCalendar(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid resource ID format",
		})
		return
	}

	from, err := time.Parse(dateLayout, c.Query("from"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid 'from' date, expected YYYY-MM-DD",
		})
		return
	}
	to, err := time.Parse(dateLayout, c.Query("to"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid 'to' date, expected YYYY-MM-DD",
		})
		return
	}

	days, err := h.availabilityQueries.Calendar(c.Request.Context(), id, from, to)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrInvalidCalendarRange):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid calendar range",
			})
		case errors.Is(err, queries.ErrResourceNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Resource not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromCalendar(days))
}
