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

// CrateReturnHandler handles crate return HTTP requests
type CrateReturnHandler struct {
	returnService *service.CrateReturnService
}

// NewCrateReturnHandler creates a new crate return handler
func NewCrateReturnHandler(returnService *service.CrateReturnService) *CrateReturnHandler {
	return &CrateReturnHandler{returnService: returnService}
}

// List handles listing crate returns
func (h *CrateReturnHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "15"))

	params := &pagination.PaginationParams{
		Page:    page,
		PerPage: perPage,
	}

	var vendorID *uuid.UUID
	if vendorIDStr := c.Query("vendor_id"); vendorIDStr != "" {
		id, err := uuid.Parse(vendorIDStr)
		if err != nil {
			response.BadRequest(c, "Invalid vendor ID")
			return
		}
		vendorID = &id
	}

	result, err := h.returnService.ListCrateReturns(c.Request.Context(), params, vendorID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Crate returns retrieved successfully", result)
}

// Create handles recording a crate return
func (h *CrateReturnHandler) Create(c *gin.Context) {
	var req request.CreateCrateReturnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	input := &service.CreateCrateReturnInput{
		VendorID:       req.VendorID,
		CratesReturned: req.CratesReturned,
	}
	if req.Date != nil {
		input.Date = *req.Date
	}

	ret, err := h.returnService.CreateCrateReturn(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Crate return recorded successfully", ret)
}

// Get handles getting a single crate return
func (h *CrateReturnHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid crate return ID")
		return
	}

	ret, err := h.returnService.GetCrateReturn(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Crate return retrieved successfully", ret)
}

// Delete handles deleting a crate return
func (h *CrateReturnHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid crate return ID")
		return
	}

	if err := h.returnService.DeleteCrateReturn(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}
