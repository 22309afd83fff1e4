package v1

import (
	"github.com/unicsmcr/hs_members/routers/api/models"
	"github.com/unicsmcr/hs_members/table"
)

type getTableRes struct {
	models.Response
	Table                 table.State `json:"table"`
	PageCount             int         `json:"pageCount"`
	Window                []int       `json:"window"`
	AllSelected           bool        `json:"allSelected"`
	AnySelected           bool        `json:"anySelected"`
	CanSlideWindowBack    bool        `json:"canSlideWindowBack"`
	CanSlideWindowForward bool        `json:"canSlideWindowForward"`
}
