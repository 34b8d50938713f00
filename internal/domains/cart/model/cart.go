package model

import (
	"errors"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidQuantity  = errors.New("quantity must be at least 1")
	ErrProductNotFound  = errors.New("product not found")
	ErrLineNotFound     = errors.New("cart item not found")
	ErrStoreUnavailable = errors.New("cart store unavailable")
)

// CartItem is the persisted line: a (user, product) pair with a quantity.
// Price is never stored here; it is read from the catalog at view time.
type CartItem struct {
	ID        uuid.UUID `json:"id"`
	UserID    string    `json:"user_id"`
	ProductID uuid.UUID `json:"product_id"`
	Quantity  int       `json:"quantity"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CartLine is a priced line as returned to the client.
type CartLine struct {
	ID              uuid.UUID       `json:"id"`
	ProductID       uuid.UUID       `json:"product_id"`
	ProductName     string          `json:"product_name"`
	ProductPrice    decimal.Decimal `json:"product_price"`
	ProductImageURL string          `json:"product_image_url"`
	Quantity        int             `json:"quantity"`
	SubTotal        decimal.Decimal `json:"sub_total"`
}

type CartSnapshot struct {
	Items []CartLine      `json:"items"`
	Total decimal.Decimal `json:"total"`
}

type AddToCartRequest struct {
	ProductID uuid.UUID `json:"product_id"`
	Quantity  int       `json:"quantity"`
}

func (r AddToCartRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.ProductID, validation.Required, validation.By(validateUUID)),
		validation.Field(&r.Quantity, validation.Required, validation.Min(1)),
	)
}

type UpdateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

func (r UpdateQuantityRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Quantity, validation.Required, validation.Min(1)),
	)
}

func validateUUID(value interface{}) error {
	id, ok := value.(uuid.UUID)
	if !ok || id == uuid.Nil {
		return errors.New("must be a valid uuid")
	}
	return nil
}
