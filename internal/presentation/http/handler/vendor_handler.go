package handler

import (
	"strconv"

	"github.com/cratetracker/cratetracker-api/internal/application/service"
	"github.com/cratetracker/cratetracker-api/internal/presentation/http/dto/request"
	"github.com/cratetracker/cratetracker-api/internal/presentation/http/dto/response"
	"github.com/cratetracker/cratetracker-api/pkg/pagination"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// VendorHandler handles vendor-related HTTP requests
type VendorHandler struct {
	vendorService *service.VendorService
}

// NewVendorHandler creates a new vendor handler
func NewVendorHandler(vendorService *service.VendorService) *VendorHandler {
	return &VendorHandler{vendorService: vendorService}
}

// List handles listing vendors
func (h *VendorHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "15"))
	search := c.Query("search")

	params := &pagination.PaginationParams{
		Page:    page,
		PerPage: perPage,
	}

	result, err := h.vendorService.ListVendors(c.Request.Context(), params, search)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Vendors retrieved successfully", result)
}

// Create handles registering a vendor
func (h *VendorHandler) Create(c *gin.Context) {
	var req request.CreateVendorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	vendor, err := h.vendorService.CreateVendor(c.Request.Context(), &service.CreateVendorInput{
		Name:    req.Name,
		Phone:   req.Phone,
		Address: req.Address,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Vendor created successfully", vendor)
}

// Get handles getting a single vendor
func (h *VendorHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid vendor ID")
		return
	}

	vendor, err := h.vendorService.GetVendor(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Vendor retrieved successfully", vendor)
}

// Update handles updating a vendor
func (h *VendorHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid vendor ID")
		return
	}

	var req request.UpdateVendorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	vendor, err := h.vendorService.UpdateVendor(c.Request.Context(), &service.UpdateVendorInput{
		ID:      id,
		Name:    req.Name,
		Phone:   req.Phone,
		Address: req.Address,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Vendor updated successfully", vendor)
}

// Delete handles deleting a vendor
func (h *VendorHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid vendor ID")
		return
	}

	if err := h.vendorService.DeleteVendor(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}
