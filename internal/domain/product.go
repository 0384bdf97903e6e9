package domain

import (
	"io"
	"time"

	"github.com/shopspring/decimal"
)

type Product struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	UnitPrice     decimal.Decimal `json:"unit_price"`
	StockQuantity int             `json:"stock_quantity"`
	AddedDate     time.Time       `json:"added_date"`
	Image         string          `json:"image,omitempty"`
	ImageURL      string          `json:"image_url,omitempty"`
}

// ProductFields são os campos editáveis de um produto
type ProductFields struct {
	Name          string          `json:"name"`
	UnitPrice     decimal.Decimal `json:"unit_price"`
	StockQuantity int             `json:"stock_quantity"`
	AddedDate     time.Time       `json:"added_date"`
}

// ImageUpload é uma imagem opcional enviada junto com o produto
type ImageUpload struct {
	Filename string
	Content  io.Reader
}
