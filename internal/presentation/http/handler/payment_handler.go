package handler

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/nftpro1212/frons-pos/internal/application/receipt"
	"github.com/nftpro1212/frons-pos/internal/application/service"
	"github.com/nftpro1212/frons-pos/internal/domain/enum"
	"github.com/nftpro1212/frons-pos/internal/domain/repository"
	"github.com/nftpro1212/frons-pos/internal/presentation/http/dto/request"
	"github.com/nftpro1212/frons-pos/internal/presentation/http/dto/response"
	"github.com/nftpro1212/frons-pos/pkg/pagination"
)

// PaymentHandler handles payment-related HTTP requests
type PaymentHandler struct {
	paymentService *service.PaymentService
}

// NewPaymentHandler creates a new payment handler
func NewPaymentHandler(paymentService *service.PaymentService) *PaymentHandler {
	return &PaymentHandler{paymentService: paymentService}
}

// Submit settles an order and dispatches its receipt
// @Summary Submit Payment
// @Description Settle an order; printer failures surface as a warning, never an error
// @Tags payments
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body request.SubmitPaymentRequest true "Payment data"
// @Success 201 {object} response.APIResponse
// @Failure 400 {object} response.APIResponse
// @Failure 409 {object} response.APIResponse
// @Router /payments [post]
func (h *PaymentHandler) Submit(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req request.SubmitPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	orderID, err := uuid.Parse(req.OrderID)
	if err != nil {
		response.BadRequest(c, "Invalid order ID")
		return
	}

	input := &service.SubmitPaymentInput{
		OrderID:   orderID,
		UserID:    *userID,
		Method:    enum.PaymentMethod(req.Method),
		Discount:  req.Discount,
		Amount:    req.Amount,
		Reference: req.Reference,
	}
	for _, part := range req.Parts {
		input.Parts = append(input.Parts, service.PaymentPartInput{
			Method: enum.PaymentMethod(part.Method),
			Amount: part.Amount,
		})
	}

	result, err := h.paymentService.Submit(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, result.Message, gin.H{
		"payment": result.Payment,
		"order":   result.Order,
		"warning": result.Warning,
	})
}

// List handles listing payments
func (h *PaymentHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "15"))

	params := &repository.PaymentFilterParams{
		Pagination: &pagination.PaginationParams{
			Page:    page,
			PerPage: perPage,
		},
	}

	if methodStr := c.Query("method"); methodStr != "" {
		method := enum.PaymentMethod(methodStr)
		if method.Valid() {
			params.Method = &method
		}
	}

	if orderIDStr := c.Query("order_id"); orderIDStr != "" {
		if orderID, err := uuid.Parse(orderIDStr); err == nil {
			params.OrderID = &orderID
		}
	}

	if startDateStr := c.Query("start_date"); startDateStr != "" {
		if startDate, err := time.Parse("2006-01-02", startDateStr); err == nil {
			params.StartDate = &startDate
		}
	}

	if endDateStr := c.Query("end_date"); endDateStr != "" {
		if endDate, err := time.Parse("2006-01-02", endDateStr); err == nil {
			params.EndDate = &endDate
		}
	}

	result, err := h.paymentService.ListPayments(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Payments retrieved successfully", result)
}

// Get handles retrieving one payment with its parts
func (h *PaymentHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid payment ID")
		return
	}

	payment, err := h.paymentService.GetPayment(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Payment retrieved successfully", payment)
}

// GetReceipt returns the receipt document for a payment
func (h *PaymentHandler) GetReceipt(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid payment ID")
		return
	}

	rcpt, err := h.paymentService.BuildReceipt(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Receipt composed successfully", rcpt)
}

// DownloadReceipt streams the receipt as a standalone HTML document
func (h *PaymentHandler) DownloadReceipt(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid payment ID")
		return
	}

	rcpt, err := h.paymentService.BuildReceipt(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	html, err := receipt.RenderHTML(rcpt)
	if err != nil {
		response.Error(c, err)
		return
	}

	filename := receipt.Filename(rcpt, time.Now())
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(200, "text/html; charset=utf-8", []byte(html))
}

// Print re-dispatches a payment's receipt to the venue's printers
func (h *PaymentHandler) Print(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid payment ID")
		return
	}

	var req request.PrintReceiptRequest
	if err := c.ShouldBindJSON(&req); err != nil && err.Error() != "EOF" {
		response.BadRequest(c, "Invalid request body")
		return
	}

	var printerID *uuid.UUID
	if req.PrinterID != nil {
		if pid, err := uuid.Parse(*req.PrinterID); err == nil {
			printerID = &pid
		}
	}

	result, err := h.paymentService.PrintReceipt(c.Request.Context(), id, printerID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, result.Message, gin.H{
		"report":  result.Payment.PrintReport,
		"warning": result.Warning,
	})
}

// Email sends a payment's receipt to an email address
func (h *PaymentHandler) Email(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid payment ID")
		return
	}

	var req request.EmailReceiptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	if err := h.paymentService.EmailReceipt(c.Request.Context(), id, req.Email); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Receipt emailed successfully", nil)
}
