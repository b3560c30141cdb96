package http

import (
	"time"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Request and response bodies of the HTTP API, see api/openapi.yml.

type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type NewItem struct {
	Name  string `json:"name"`
	Price string `json:"price"`
}

type OrderNumber struct {
	Number int `json:"number"`
}

type OrderItem struct {
	Position    int    `json:"position"`
	Description string `json:"description"`
	Price       string `json:"price"`
}

type Order struct {
	Number           int         `json:"number"`
	Items            []OrderItem `json:"items"`
	ItemDescriptions []string    `json:"itemDescriptions"`
	Subtotal         string      `json:"subtotal"`
	SalesTax         string      `json:"salesTax"`
	Total            string      `json:"total"`
	Receipt          string      `json:"receipt"`
}

type PlacedOrderRef struct {
	Id openapi_types.UUID `json:"id"` //nolint:revive // matches the generated client naming
}

type PlacedOrder struct {
	Id        openapi_types.UUID `json:"id"` //nolint:revive // matches the generated client naming
	Number    int                `json:"number"`
	ItemCount int                `json:"itemCount"`
	Subtotal  string             `json:"subtotal"`
	SalesTax  string             `json:"salesTax"`
	Total     string             `json:"total"`
	PlacedAt  time.Time          `json:"placedAt"`
}
