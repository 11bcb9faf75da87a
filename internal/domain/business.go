package domain

import (
	"time"
)

type BusinessStatus string

const (
	BusinessStatusActive   BusinessStatus = "ACTIVE"
	BusinessStatusInactive BusinessStatus = "INACTIVE"
)

// Business é a empresa cujos números diários são analisados
type Business struct {
	ID        string         `json:"id"`
	Name      string         `json:"name"`
	Segment   *string        `json:"segment"`
	CNPJ      *string        `json:"cnpj"`
	Status    BusinessStatus `json:"status"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt *time.Time     `json:"updated_at"`
}

type CreateBusinessRequest struct {
	Name    string  `json:"name"`
	Segment *string `json:"segment,omitempty"`
	CNPJ    *string `json:"cnpj,omitempty"`
}

type UpdateBusinessRequest struct {
	ID      string  `json:"id"`
	Name    *string `json:"name,omitempty"`
	Segment *string `json:"segment,omitempty"`
	CNPJ    *string `json:"cnpj,omitempty"`
	Status  *string `json:"status,omitempty"`
}
