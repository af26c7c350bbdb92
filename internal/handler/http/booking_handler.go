package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mikiasgoitom/HomeStay/internal/domain/entity"
	"github.com/mikiasgoitom/HomeStay/internal/handler/http/dto"
	usecasecontract "github.com/mikiasgoitom/HomeStay/internal/usecase/contract"
)

type BookingHandler struct {
	bookingUsecase usecasecontract.IBookingUseCase
}

func NewBookingHandler(bookingUsecase usecasecontract.IBookingUseCase) *BookingHandler {
	return &BookingHandler{bookingUsecase: bookingUsecase}
}

// withWarning adds the notification warning to a payload when there is one.
func withWarning(payload gin.H, result *usecasecontract.BookingResult) gin.H {
	if result.PartialSuccess() {
		payload["warning"] = result.Warning
	}
	return payload
}

// CreateBooking is public. A failed confirmation email still answers 201 with a warning.
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var req dto.CreateBookingRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}
	input, err := req.ToInput()
	if err != nil {
		DomainErrorHandler(c, err)
		return
	}

	result, err := h.bookingUsecase.CreateBooking(c.Request.Context(), input)
	if err != nil {
		DomainErrorHandler(c, err)
		return
	}
	SuccessHandler(c, http.StatusCreated, "Booking created successfully", withWarning(gin.H{"booking": result.Booking}, result))
}

func bookingFilter(c *gin.Context) entity.BookingFilter {
	homeID := c.Query("homeId")
	if homeID == "" {
		homeID = c.Query("home_id")
	}
	return entity.BookingFilter{HomeID: homeID}
}

func (h *BookingHandler) ListBookings(c *gin.Context) {
	bookings, err := h.bookingUsecase.ListBookings(c.Request.Context(), bookingFilter(c))
	if err != nil {
		DomainErrorHandler(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, "Bookings retrieved successfully", gin.H{"bookings": bookings, "count": len(bookings)})
}

// ListHomeBookings handles GET /homes/:id/bookings.
func (h *BookingHandler) ListHomeBookings(c *gin.Context) {
	bookings, err := h.bookingUsecase.ListBookings(c.Request.Context(), entity.BookingFilter{HomeID: c.Param("id")})
	if err != nil {
		DomainErrorHandler(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, "Bookings retrieved successfully", gin.H{"bookings": bookings, "count": len(bookings)})
}

func (h *BookingHandler) ListBookingSummaries(c *gin.Context) {
	summaries, err := h.bookingUsecase.ListBookingSummaries(c.Request.Context(), bookingFilter(c))
	if err != nil {
		DomainErrorHandler(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, "Booking summaries retrieved successfully", gin.H{"bookings": summaries, "count": len(summaries)})
}

func (h *BookingHandler) GetBooking(c *gin.Context) {
	booking, err := h.bookingUsecase.GetBooking(c.Request.Context(), c.Param("id"))
	if err != nil {
		DomainErrorHandler(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, "Booking retrieved successfully", gin.H{"booking": booking})
}

func (h *BookingHandler) CreateReviewLink(c *gin.Context) {
	link, err := h.bookingUsecase.CreateReviewLink(c.Request.Context(), c.Param("id"))
	if err != nil {
		DomainErrorHandler(c, err)
		return
	}
	SuccessHandler(c, http.StatusCreated, "Review link created successfully", gin.H{"review_link": link})
}

func (h *BookingHandler) SendReviewLink(c *gin.Context) {
	result, err := h.bookingUsecase.SendReviewLink(c.Request.Context(), c.Param("id"))
	if err != nil {
		DomainErrorHandler(c, err)
		return
	}
	message := "Review link sent successfully"
	if result.PartialSuccess() {
		message = "Review link could not be sent"
	}
	SuccessHandler(c, http.StatusOK, message, withWarning(gin.H{"booking": result.Booking}, result))
}
