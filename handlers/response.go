package handlers

import (
	"net/http"
	"strconv"

	"campusconnect-api/models"
	"campusconnect-api/services"

	"github.com/gin-gonic/gin"
)

// respondData writes the standard envelope. A failed load is reported in
// "notices" while the fallback content is still returned.
func respondData(c *gin.Context, data any, results ...services.LoadResult) {
	body := gin.H{
		"data":   data,
		"cached": len(results) > 0,
	}
	notices := make([]models.Notice, 0)
	for _, res := range results {
		if !res.Cached {
			body["cached"] = false
		}
		if res.Notice != nil {
			notices = append(notices, *res.Notice)
		}
	}
	if len(notices) > 0 {
		body["notices"] = notices
	}
	c.JSON(http.StatusOK, body)
}

func respondError(c *gin.Context, status int, message string, err error) {
	resp := models.ErrorResponse{Error: message}
	if err != nil {
		resp.Message = err.Error()
		_ = c.Error(err)
	}
	c.AbortWithStatusJSON(status, resp)
}

func paramID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "id must be an integer", err)
		return 0, false
	}
	return id, true
}
