package controllers

import (
	"net/http"

	"hotel-booking/models"
	"hotel-booking/services"
	"hotel-booking/utils"

	"github.com/gin-gonic/gin"
)

type BookingController struct {
	BookingSvc *services.BookingService
}

func NewBookingController(svc *services.BookingService) *BookingController {
	return &BookingController{BookingSvc: svc}
}

// Dates travel as "YYYY-MM-DD" strings and are parsed explicitly so a
// malformed date comes back as a field error instead of a bind failure.
type CreateBookingRequest struct {
	CustomerID uint   `json:"customer_id" binding:"required"`
	RoomID     uint   `json:"room_id" binding:"required"`
	FromDate   string `json:"from_date" binding:"required"`
	ToDate     string `json:"to_date" binding:"required"`
}

type UpdateBookingRequest struct {
	FromDate *string `json:"from_date"`
	ToDate   *string `json:"to_date"`
	RoomID   *uint   `json:"room_id"`
}

// GET /api/bookings
func (ctrl *BookingController) GetBookings(c *gin.Context) {
	bookings, err := ctrl.BookingSvc.GetAll()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// GET /api/bookings/:id
func (ctrl *BookingController) GetBookingByID(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	booking, err := ctrl.BookingSvc.GetByID(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, booking)
}

// POST /api/bookings
func (ctrl *BookingController) CreateBooking(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	fromDate, err := models.ParseDate(req.FromDate)
	if err != nil {
		utils.JSONFieldErrors(c, http.StatusBadRequest, map[string]string{"from_date": err.Error()})
		return
	}
	toDate, err := models.ParseDate(req.ToDate)
	if err != nil {
		utils.JSONFieldErrors(c, http.StatusBadRequest, map[string]string{"to_date": err.Error()})
		return
	}

	booking, err := ctrl.BookingSvc.Create(services.CreateBookingInput{
		CustomerID: req.CustomerID,
		RoomID:     req.RoomID,
		FromDate:   fromDate,
		ToDate:     toDate,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, booking)
}

// PUT/PATCH /api/bookings/:id
func (ctrl *BookingController) UpdateBooking(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req UpdateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	input := services.UpdateBookingInput{RoomID: req.RoomID}
	if req.FromDate != nil {
		fromDate, err := models.ParseDate(*req.FromDate)
		if err != nil {
			utils.JSONFieldErrors(c, http.StatusBadRequest, map[string]string{"from_date": err.Error()})
			return
		}
		input.FromDate = &fromDate
	}
	if req.ToDate != nil {
		toDate, err := models.ParseDate(*req.ToDate)
		if err != nil {
			utils.JSONFieldErrors(c, http.StatusBadRequest, map[string]string{"to_date": err.Error()})
			return
		}
		input.ToDate = &toDate
	}

	booking, err := ctrl.BookingSvc.Update(id, input)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, booking)
}

// DELETE /api/bookings/:id
func (ctrl *BookingController) DeleteBooking(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := ctrl.BookingSvc.Delete(id); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "booking deleted"})
}
