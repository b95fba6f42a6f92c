package handler

import (
	"time"

	"github.com/cratetracker/cratetracker-api/internal/application/service"
	"github.com/cratetracker/cratetracker-api/internal/domain/enum"
	"github.com/cratetracker/cratetracker-api/internal/domain/repository"
	"github.com/cratetracker/cratetracker-api/internal/presentation/http/dto/request"
	"github.com/cratetracker/cratetracker-api/internal/presentation/http/dto/response"
	"github.com/cratetracker/cratetracker-api/pkg/pagination"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SaleHandler handles sale-related HTTP requests
type SaleHandler struct {
	saleService *service.SaleService
}

// NewSaleHandler creates a new sale handler
func NewSaleHandler(saleService *service.SaleService) *SaleHandler {
	return &SaleHandler{saleService: saleService}
}

// List handles listing sales with filters
func (h *SaleHandler) List(c *gin.Context) {
	var req request.SaleFilterRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "Invalid filter parameters")
		return
	}

	params := &repository.SaleFilterParams{
		Pagination: &pagination.PaginationParams{
			Page:    req.Page,
			PerPage: req.PerPage,
		},
		SortBy:    req.SortBy,
		SortOrder: req.SortOrder,
	}

	if req.VendorID != "" {
		vendorID, err := uuid.Parse(req.VendorID)
		if err != nil {
			response.BadRequest(c, "Invalid vendor ID")
			return
		}
		params.VendorID = &vendorID
	}

	if req.Status != "" {
		status, ok := parseSaleStatus(req.Status)
		if !ok {
			response.BadRequest(c, "Invalid status filter")
			return
		}
		params.Status = &status
	}

	if req.StartDate != "" {
		start, err := time.Parse("2006-01-02", req.StartDate)
		if err != nil {
			response.BadRequest(c, "Invalid start date")
			return
		}
		params.StartDate = &start
	}

	if req.EndDate != "" {
		end, err := time.Parse("2006-01-02", req.EndDate)
		if err != nil {
			response.BadRequest(c, "Invalid end date")
			return
		}
		params.EndDate = &end
	}

	result, err := h.saleService.ListSales(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Sales retrieved successfully", result)
}

// Create handles recording a sale
func (h *SaleHandler) Create(c *gin.Context) {
	var req request.CreateSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	input := &service.CreateSaleInput{
		VendorID:      req.VendorID,
		CratesSold:    req.CratesSold,
		PricePerCrate: req.PricePerCrate,
		AmountPaid:    req.AmountPaid,
	}
	if req.SaleDate != nil {
		input.SaleDate = *req.SaleDate
	}

	sale, err := h.saleService.CreateSale(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Sale recorded successfully", sale)
}

// Get handles getting a single sale
func (h *SaleHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid sale ID")
		return
	}

	sale, err := h.saleService.GetSale(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Sale retrieved successfully", sale)
}

// Update handles editing a sale
func (h *SaleHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid sale ID")
		return
	}

	var req request.UpdateSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	sale, err := h.saleService.UpdateSale(c.Request.Context(), &service.UpdateSaleInput{
		ID:            id,
		SaleDate:      req.SaleDate,
		CratesSold:    req.CratesSold,
		PricePerCrate: req.PricePerCrate,
		AmountPaid:    req.AmountPaid,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Sale updated successfully", sale)
}

// Delete handles deleting a sale
func (h *SaleHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid sale ID")
		return
	}

	if err := h.saleService.DeleteSale(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// RecordPayment handles applying a payment to a sale
func (h *SaleHandler) RecordPayment(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid sale ID")
		return
	}

	var req request.RecordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	var paidAt time.Time
	if req.Date != nil {
		paidAt = *req.Date
	}

	sale, err := h.saleService.ApplyPayment(c.Request.Context(), id, req.Amount, paidAt)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Payment recorded successfully", sale)
}

// ListPayments handles listing a sale's payment history
func (h *SaleHandler) ListPayments(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid sale ID")
		return
	}

	payments, err := h.saleService.ListPayments(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Payments retrieved successfully", payments)
}

func parseSaleStatus(s string) (enum.SaleStatus, bool) {
	switch s {
	case "unpaid":
		return enum.SaleStatusUnpaid, true
	case "partial":
		return enum.SaleStatusPartial, true
	case "paid":
		return enum.SaleStatusPaid, true
	}
	return 0, false
}
