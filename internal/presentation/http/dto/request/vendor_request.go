package request

// CreateVendorRequest represents a vendor registration request
type CreateVendorRequest struct {
	Name    string `json:"name" binding:"required,min=1,max=255"`
	Phone   string `json:"phone" binding:"required,max=50"`
	Address string `json:"address" binding:"required"`
}

// UpdateVendorRequest represents a vendor update request. Crate counts are
// deliberately absent: they move only through sale and return operations.
type UpdateVendorRequest struct {
	Name    *string `json:"name" binding:"omitempty,min=1,max=255"`
	Phone   *string `json:"phone" binding:"omitempty,max=50"`
	Address *string `json:"address"`
}
