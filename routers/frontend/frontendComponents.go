package frontend

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/unicsmcr/hs_members/table"
)

const (
	loadingMessage   = "Loading..."
	errorMessage     = "Something went wrong! Please try again"
	noMembersMessage = "No members"

	maxTeamBadges     = 4
	overflowTeamColor = "gray"
)

var teamColors = []string{"blue", "pink", "sky", "purple", "orange", "violet"}

var (
	header = frontendComponent{
		name:         "Header",
		dataProvider: headerDataProvider,
	}

	membersTable = frontendComponent{
		name:         "MembersTable",
		dataProvider: membersTableDataProvider,
	}

	paginator = frontendComponent{
		name:         "Paginator",
		dataProvider: paginatorDataProvider,
	}

	modal = frontendComponent{
		name:         "Modal",
		dataProvider: modalDataProvider,
	}
)

func headerDataProvider(state table.State, _ *frontendRouter) (interface{}, error) {
	return headerDataModel{
		UserCount:             state.Pagination.TotalCount,
		DeleteSelectedEnabled: state.IsAnySelected(),
	}, nil
}

func membersTableDataProvider(state table.State, _ *frontendRouter) (interface{}, error) {
	model := membersTableDataModel{
		AllSelected: state.IsAllSelected(),
		Messages:    []string{},
		Rows:        []memberRowDataModel{},
	}

	if state.Status == table.Loading {
		model.Messages = append(model.Messages, loadingMessage)
		return model, nil
	}

	if state.Err != "" {
		model.Messages = append(model.Messages, errorMessage)
	}
	if state.Pagination.TotalCount == 0 {
		model.Messages = append(model.Messages, noMembersMessage)
	}

	for _, member := range state.Members {
		model.Rows = append(model.Rows, memberRowDataModel{
			ID:       member.ID.String(),
			Name:     member.Name,
			UserName: member.UserName,
			Email:    member.Email,
			Avatar:   member.Avatar,
			Role:     member.Role,
			IsActive: member.IsActive,
			Selected: state.Selection.IsSelected(member.ID),
			Teams:    teamBadges(member.Teams),
		})
	}

	return model, nil
}

func paginatorDataProvider(state table.State, _ *frontendRouter) (interface{}, error) {
	p := state.Pagination

	pages := make([]pageLinkDataModel, 0, p.WindowSize)
	for _, page := range p.Window() {
		pages = append(pages, pageLinkDataModel{
			Number:  page,
			Current: page == p.Page,
		})
	}

	return paginatorDataModel{
		Visible:               len(state.Members) > 0,
		Pages:                 pages,
		HasPrevious:           p.HasPrevious(),
		HasNext:               p.HasNext(),
		PreviousPage:          p.Page - 1,
		NextPage:              p.Page + 1,
		CanSlideWindowBack:    p.CanSlideWindowBack(),
		CanSlideWindowForward: p.CanSlideWindowForward(),
	}, nil
}

func modalDataProvider(state table.State, r *frontendRouter) (interface{}, error) {
	m := state.Modal
	model := modalDataModel{
		Open:            m.IsOpen(),
		Title:           m.Title,
		IsEdit:          m.Kind == table.ModalEdit,
		IsConfirmDelete: m.Kind == table.ModalConfirmDelete,
		IsSuccess:       m.Kind == table.ModalSuccess,
	}

	if !model.IsEdit {
		return model, nil
	}
	if m.Draft == nil {
		return nil, errors.New("edit modal has no draft")
	}

	model.Draft = *m.Draft
	selected := r.cfg.Roles.SelectedOrFirst(m.Draft.Role)
	for _, role := range r.cfg.Roles {
		model.Roles = append(model.Roles, roleOptionDataModel{
			Name:     role.Name,
			Selected: role.Name == selected.Name,
		})
	}

	return model, nil
}

// teamBadges returns a badge for each of the first teams, followed by
// an overflow badge counting the teams left out
func teamBadges(teams []string) []teamBadgeDataModel {
	shown := teams
	if len(shown) > maxTeamBadges {
		shown = shown[:maxTeamBadges]
	}

	badges := make([]teamBadgeDataModel, 0, len(shown))
	for i, team := range shown {
		badges = append(badges, teamBadgeDataModel{
			Name:  team,
			Color: teamColor(i),
		})
	}

	if hidden := len(teams) - len(shown); hidden > 0 {
		badges = append(badges, overflowBadge(hidden))
	}
	return badges
}

func teamColor(i int) string {
	return teamColors[i%len(teamColors)]
}

func overflowBadge(hidden int) teamBadgeDataModel {
	return teamBadgeDataModel{
		Name:  fmt.Sprintf("+%d", hidden),
		Color: overflowTeamColor,
	}
}

type frontendComponent struct {
	name         string
	dataProvider frontendComponentDataProvider
}

type frontendComponents []frontendComponent

type frontendComponentDataProvider func(table.State, *frontendRouter) (interface{}, error)
