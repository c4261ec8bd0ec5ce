package dto

import "github.com/kiranadev/inventory-billing-service/internal/model"

type SaveProfileInput struct {
	StoreName string            `json:"storeName" binding:"required"`
	LogoURL   string            `json:"logoUrl"`
	Address   string            `json:"address"`
	Terms     string            `json:"terms"`
	Contacts  model.ContactList `json:"contacts"`
}
