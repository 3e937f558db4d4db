package result

import (
	"github.com/google/uuid"
	util "github.com/saulo-duarte/devops-exam/internal/utils"
)

type ResultResponse struct {
	ID        uuid.UUID          `json:"id"`
	Username  string             `json:"username"`
	Gender    string             `json:"gender"`
	Email     string             `json:"email"`
	Score     int                `json:"score"`
	CreatedAt util.LocalDateTime `json:"created_at"`
}

func toResponse(r *Result) ResultResponse {
	return ResultResponse{
		ID:        r.ID,
		Username:  r.Username,
		Gender:    r.Gender,
		Email:     r.Email,
		Score:     r.Score,
		CreatedAt: util.NewLocalDateTime(r.CreatedAt),
	}
}
