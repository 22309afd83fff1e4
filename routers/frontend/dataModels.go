package frontend

import (
	"github.com/unicsmcr/hs_members/config"
	"github.com/unicsmcr/hs_members/entities"
)

type pageDataModel struct {
	Cfg        config.AppConfig
	Alert      string
	Components map[string]interface{}
}

type headerDataModel struct {
	UserCount             int
	DeleteSelectedEnabled bool
}

type teamBadgeDataModel struct {
	Name  string
	Color string
}

type memberRowDataModel struct {
	ID       string
	Name     string
	UserName string
	Email    string
	Avatar   string
	Role     string
	IsActive bool
	Selected bool
	Teams    []teamBadgeDataModel
}

type membersTableDataModel struct {
	AllSelected bool
	Messages    []string
	Rows        []memberRowDataModel
}

type pageLinkDataModel struct {
	Number  int
	Current bool
}

type paginatorDataModel struct {
	Visible               bool
	Pages                 []pageLinkDataModel
	HasPrevious           bool
	HasNext               bool
	PreviousPage          int
	NextPage              int
	CanSlideWindowBack    bool
	CanSlideWindowForward bool
}

type roleOptionDataModel struct {
	Name     string
	Selected bool
}

type modalDataModel struct {
	Open            bool
	Title           string
	IsEdit          bool
	IsConfirmDelete bool
	IsSuccess       bool
	Draft           entities.MemberDraft
	Roles           []roleOptionDataModel
}
