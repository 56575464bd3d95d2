package gdto

import "github.com/savioruz/kickmatch/pkg/constant"

type PaginationRequest struct {
	Page   int    `json:"page" query:"page" validate:"omitempty,numeric,min=1"`
	Limit  int    `json:"limit" query:"limit" validate:"omitempty,numeric,min=1,max=100"`
	Filter string `json:"filter" query:"filter" validate:"omitempty,min=3"`
}

// Actor is the authenticated caller as read from the bearer token.
type Actor struct {
	UserID string
	Role   string
}

func (a Actor) IsAdmin() bool {
	return a.Role == constant.UserRoleAdmin
}

// CanManage reports whether the actor may modify a resource owned by ownerID.
func (a Actor) CanManage(ownerID string) bool {
	return a.IsAdmin() || (a.UserID != "" && a.UserID == ownerID)
}
