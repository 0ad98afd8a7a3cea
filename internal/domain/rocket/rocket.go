package rocket

import (
	"time"

	"github.com/google/uuid"
)

type Specifications struct {
	Height       string `json:"height"`
	Diameter     string `json:"diameter"`
	Mass         string `json:"mass"`
	PayloadToLEO string `json:"payloadToLEO"`
}

type Rocket struct {
	ID             string         `json:"id"`
	Name           string         `json:"name"`
	Type           string         `json:"type"`
	Specifications Specifications `json:"specifications"`
	Status         string         `json:"status"`
	CreatedAt      time.Time      `json:"createdAt"`
}

type CreateRocketRequest struct {
	Name           string         `json:"name" binding:"required,min=2,max=120"`
	Type           string         `json:"type" binding:"required,max=120"`
	Specifications Specifications `json:"specifications"`
	Status         string         `json:"status" binding:"required,oneof=active development retired"`
}

func NewFromCreateRequest(req CreateRocketRequest) Rocket {
	return Rocket{
		ID:             uuid.NewString(),
		Name:           req.Name,
		Type:           req.Type,
		Specifications: req.Specifications,
		Status:         req.Status,
		CreatedAt:      time.Now().UTC(),
	}
}
