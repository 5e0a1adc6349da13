package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	directoryapp "github.com/udhaar/backend/internal/application/directory"
)

// ShopkeeperHandler handles shopkeeper directory API endpoints
type ShopkeeperHandler struct {
	BaseHandler
	shopkeeperService *directoryapp.ShopkeeperService
}

// NewShopkeeperHandler creates a new ShopkeeperHandler
func NewShopkeeperHandler(shopkeeperService *directoryapp.ShopkeeperService) *ShopkeeperHandler {
	return &ShopkeeperHandler{
		shopkeeperService: shopkeeperService,
	}
}

// Create adds a shopkeeper to the directory
func (h *ShopkeeperHandler) Create(c *gin.Context) {
	var req directoryapp.CreateShopkeeperRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	shopkeeper, err := h.shopkeeperService.Add(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, shopkeeper)
}

// GetByID retrieves a shopkeeper by ID
func (h *ShopkeeperHandler) GetByID(c *gin.Context) {
	shopkeeperID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid shopkeeper ID format")
		return
	}

	shopkeeper, err := h.shopkeeperService.Get(c.Request.Context(), shopkeeperID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, shopkeeper)
}

// List searches the directory. An empty query returns every shopkeeper
// in the order they were added.
func (h *ShopkeeperHandler) List(c *gin.Context) {
	var filter directoryapp.ShopkeeperListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 50
	}

	shopkeepers, total, err := h.shopkeeperService.Search(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, shopkeepers, total, filter.Page, filter.PageSize)
}

// Update edits an existing shopkeeper's details
func (h *ShopkeeperHandler) Update(c *gin.Context) {
	shopkeeperID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid shopkeeper ID format")
		return
	}

	var req directoryapp.UpdateShopkeeperRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	shopkeeper, err := h.shopkeeperService.Edit(c.Request.Context(), shopkeeperID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, shopkeeper)
}

// Delete removes a shopkeeper from the directory
func (h *ShopkeeperHandler) Delete(c *gin.Context) {
	shopkeeperID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid shopkeeper ID format")
		return
	}

	if err := h.shopkeeperService.Remove(c.Request.Context(), shopkeeperID); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// Activate marks a shopkeeper as active
func (h *ShopkeeperHandler) Activate(c *gin.Context) {
	shopkeeperID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid shopkeeper ID format")
		return
	}

	shopkeeper, err := h.shopkeeperService.Activate(c.Request.Context(), shopkeeperID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, shopkeeper)
}

// Deactivate marks a shopkeeper as inactive
func (h *ShopkeeperHandler) Deactivate(c *gin.Context) {
	shopkeeperID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid shopkeeper ID format")
		return
	}

	shopkeeper, err := h.shopkeeperService.Deactivate(c.Request.Context(), shopkeeperID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, shopkeeper)
}
