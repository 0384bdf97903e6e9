package catalog

import (
	"regexp"
	"strings"

	"github.com/vfg2006/shop-manager-api/internal/domain"
)

// Apenas letras (com acentos e ñ) e espaços
var namePattern = regexp.MustCompile(`^[A-Za-zÁÉÍÓÚáéíóúÑñ\s]+$`)

func validateProduct(fields domain.ProductFields) error {
	name := strings.TrimSpace(fields.Name)
	if name == "" {
		return &ValidationError{Field: "name", Message: "é obrigatório"}
	}
	if !namePattern.MatchString(name) {
		return &ValidationError{Field: "name", Message: "deve conter apenas letras e espaços"}
	}
	if fields.UnitPrice.IsNegative() {
		return &ValidationError{Field: "unit_price", Message: "não pode ser negativo"}
	}
	if fields.StockQuantity < 0 {
		return &ValidationError{Field: "stock_quantity", Message: "não pode ser negativo"}
	}
	if fields.AddedDate.IsZero() {
		return &ValidationError{Field: "added_date", Message: "é obrigatória"}
	}
	return nil
}

func validateCustomerName(name string) error {
	if strings.TrimSpace(name) == "" {
		return &ValidationError{Field: "name", Message: "é obrigatório"}
	}
	return nil
}
