package team

import (
	"time"

	"github.com/google/uuid"
)

type Member struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Position   string    `json:"position"`
	Department string    `json:"department,omitempty"`
	Bio        string    `json:"bio,omitempty"`
	Experience string    `json:"experience,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}

type CreateMemberRequest struct {
	Name       string `json:"name" binding:"required,min=2,max=120"`
	Position   string `json:"position" binding:"required,max=120"`
	Department string `json:"department" binding:"omitempty,max=120"`
	Bio        string `json:"bio" binding:"omitempty,max=2000"`
	Experience string `json:"experience" binding:"omitempty,max=120"`
}

func NewFromCreateRequest(req CreateMemberRequest) Member {
	return Member{
		ID:         uuid.NewString(),
		Name:       req.Name,
		Position:   req.Position,
		Department: req.Department,
		Bio:        req.Bio,
		Experience: req.Experience,
		CreatedAt:  time.Now().UTC(),
	}
}
