package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"hotel-booking/services"
	"hotel-booking/utils"

	"github.com/gin-gonic/gin"
)

// respondServiceError maps service-layer failures onto HTTP statuses:
// validation → 400 with a field map, duplicates → 409, missing → 404,
// everything else → 500 with the detail kept server-side.
func respondServiceError(c *gin.Context, err error) {
	var validationErr *services.ValidationError
	if errors.As(err, &validationErr) {
		utils.JSONFieldErrors(c, http.StatusBadRequest, validationErr.Fields)
		return
	}

	var duplicateErr *services.DuplicateError
	if errors.As(err, &duplicateErr) {
		utils.JSONFieldErrors(c, http.StatusConflict, map[string]string{
			duplicateErr.Field: duplicateErr.Message,
		})
		return
	}

	if errors.Is(err, services.ErrNotFound) {
		utils.JSONError(c, http.StatusNotFound, err.Error())
		return
	}

	log.Printf("internal error: %v", err)
	utils.JSONError(c, http.StatusInternalServerError, "internal server error")
}

func respondBindingError(c *gin.Context, err error) {
	utils.JSONError(c, http.StatusBadRequest, "invalid request payload: "+err.Error())
}

func parseIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid id")
		return 0, false
	}
	return uint(id), true
}
