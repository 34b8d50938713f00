package model

import (
	"errors"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var ErrProductNotFound = errors.New("product not found")

type Product struct {
	ID            uuid.UUID       `json:"id"`
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	Price         decimal.Decimal `json:"price"`
	StockQuantity int             `json:"stock_quantity"`
	ImageURL      string          `json:"image_url"`
	CategoryID    uuid.UUID       `json:"category_id"`
	IsActive      bool            `json:"is_active"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

type CreateProductRequest struct {
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	Price         decimal.Decimal `json:"price"`
	StockQuantity int             `json:"stock_quantity"`
	ImageURL      string          `json:"image_url"`
	CategoryID    uuid.UUID       `json:"category_id"`
}

func (r CreateProductRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required, validation.Length(2, 200)),
		validation.Field(&r.Description, validation.Length(0, 2000)),
		validation.Field(&r.Price, validation.By(validatePrice)),
		validation.Field(&r.StockQuantity, validation.Min(0)),
		validation.Field(&r.CategoryID, validation.Required, validation.By(validateUUID)),
	)
}

type UpdateProductRequest struct {
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	Price         decimal.Decimal `json:"price"`
	StockQuantity int             `json:"stock_quantity"`
	ImageURL      string          `json:"image_url"`
	CategoryID    uuid.UUID       `json:"category_id"`
}

func (r UpdateProductRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required, validation.Length(2, 200)),
		validation.Field(&r.Description, validation.Length(0, 2000)),
		validation.Field(&r.Price, validation.By(validatePrice)),
		validation.Field(&r.StockQuantity, validation.Min(0)),
		validation.Field(&r.CategoryID, validation.Required, validation.By(validateUUID)),
	)
}

func validatePrice(value interface{}) error {
	price, ok := value.(decimal.Decimal)
	if !ok {
		return errors.New("must be a decimal number")
	}
	if price.IsNegative() {
		return errors.New("must not be negative")
	}
	return nil
}

func validateUUID(value interface{}) error {
	id, ok := value.(uuid.UUID)
	if !ok || id == uuid.Nil {
		return errors.New("must be a valid uuid")
	}
	return nil
}
