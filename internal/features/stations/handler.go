package stations

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/elyebdri/maurifind/internal/pkg/response"
)

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

// List godoc
// @Summary List police stations
// @Description Get police stations, ordered by distance to the given position when lat/lng are provided, alphabetically otherwise
// @Tags stations
// @Produce json
// @Param lat query number false "User latitude (requires lng)"
// @Param lng query number false "User longitude (requires lat)"
// @Success 200 {object} response.SuccessResponse{data=[]Station}
// @Failure 422 {object} response.ErrorResponse
// @Router /stations [get]
func (h *Handler) List(c *gin.Context) {
	latStr := c.Query("lat")
	lngStr := c.Query("lng")

	// A half pair is a client mistake, not an absent position.
	if (latStr == "") != (lngStr == "") {
		response.ValidationFailed(c, "lat and lng must be provided together")
		return
	}

	var user *Coordinate
	if latStr != "" {
		lat, errLat := strconv.ParseFloat(latStr, 64)
		lng, errLng := strconv.ParseFloat(lngStr, 64)
		if errLat != nil || errLng != nil {
			response.ValidationFailed(c, "lat and lng must be decimal degrees")
			return
		}
		// Phrased positively so NaN (which ParseFloat accepts and which
		// compares false against every bound) is rejected too.
		if !(lat >= -90 && lat <= 90) || !(lng >= -180 && lng <= 180) {
			response.ValidationFailed(c, "lat/lng out of range")
			return
		}
		user = &Coordinate{Latitude: lat, Longitude: lng}
	}

	response.Success(c, SortByProximity(All, user))
}
