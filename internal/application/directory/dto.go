package directory

import (
	"time"

	"github.com/google/uuid"

	"github.com/udhaar/backend/internal/domain/directory"
)

// CreateShopkeeperRequest represents a request to add a shopkeeper.
// Required-field and length checks live in the domain layer so a bad
// form reports every failing field at once.
type CreateShopkeeperRequest struct {
	Name    string `json:"name" binding:"max=200"`
	City    string `json:"city" binding:"max=100"`
	Contact string `json:"contact" binding:"max=64"`
	Notes   string `json:"notes" binding:"max=2000"`
}

// UpdateShopkeeperRequest represents a request to edit a shopkeeper.
// Nil fields keep their current value.
type UpdateShopkeeperRequest struct {
	Name    *string `json:"name" binding:"omitempty,max=200"`
	City    *string `json:"city" binding:"omitempty,max=100"`
	Contact *string `json:"contact" binding:"omitempty,max=64"`
	Notes   *string `json:"notes" binding:"omitempty,max=2000"`
}

// ShopkeeperListFilter holds search and pagination options
type ShopkeeperListFilter struct {
	Query    string `form:"q"`
	Page     int    `form:"page"`
	PageSize int    `form:"page_size"`
}

// ShopkeeperResponse represents a shopkeeper in API responses
type ShopkeeperResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	City      string    `json:"city"`
	Contact   string    `json:"contact"`
	Notes     string    `json:"notes"`
	Status    string    `json:"status"`
	Version   int       `json:"version"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ToShopkeeperResponse maps a domain shopkeeper to its response DTO
func ToShopkeeperResponse(s *directory.Shopkeeper) ShopkeeperResponse {
	return ShopkeeperResponse{
		ID:        s.ID,
		Name:      s.Name,
		City:      s.City,
		Contact:   s.Contact,
		Notes:     s.Notes,
		Status:    string(s.Status),
		Version:   s.GetVersion(),
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}
