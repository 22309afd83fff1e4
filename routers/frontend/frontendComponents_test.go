package frontend

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/unicsmcr/hs_members/entities"
	"github.com/unicsmcr/hs_members/table"
	"github.com/unicsmcr/hs_members/testutils"
)

func loadedState(members []entities.Member, totalCount int) table.State {
	state := table.NewState(10, 6)
	fetch := state.Mount().(table.FetchEffect)
	state.ReceivePage(fetch.Seq, members, totalCount)
	return state
}

func Test_headerDataProvider__returns_correct_model(t *testing.T) {
	setup := setupTest(t)
	defer setup.ctrl.Finish()

	state := loadedState(testutils.MakeMembers(1, 10), 25)
	state.ToggleMember("3")

	dataModel, err := headerDataProvider(state, &setup.router)

	assert.NoError(t, err)
	assert.Equal(t, headerDataModel{UserCount: 25, DeleteSelectedEnabled: true}, dataModel)
}

func Test_membersTableDataProvider(t *testing.T) {
	tests := []struct {
		name         string
		state        func() table.State
		wantMessages []string
		wantRows     int
	}{
		{
			name: "should only show loading message while loading",
			state: func() table.State {
				state := loadedState(testutils.MakeMembers(1, 10), 25)
				state.Invalidate()
				return state
			},
			wantMessages: []string{loadingMessage},
		},
		{
			name: "should show error and no members message when first fetch fails",
			state: func() table.State {
				state := table.NewState(10, 6)
				fetch := state.Mount().(table.FetchEffect)
				state.FailPage(fetch.Seq)
				return state
			},
			wantMessages: []string{errorMessage, noMembersMessage},
		},
		{
			name: "should show no members message for empty roster",
			state: func() table.State {
				return loadedState(nil, 0)
			},
			wantMessages: []string{noMembersMessage},
		},
		{
			name: "should show rows of loaded page",
			state: func() table.State {
				return loadedState(testutils.MakeMembers(1, 10), 25)
			},
			wantMessages: []string{},
			wantRows:     10,
		},
		{
			name: "should keep rows and show error when a mutation fails",
			state: func() table.State {
				state := loadedState(testutils.MakeMembers(1, 10), 25)
				state.FailMutation()
				return state
			},
			wantMessages: []string{errorMessage},
			wantRows:     10,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setup := setupTest(t)
			defer setup.ctrl.Finish()

			dataModel, err := membersTableDataProvider(tt.state(), &setup.router)

			assert.NoError(t, err)
			assert.IsType(t, membersTableDataModel{}, dataModel)
			assert.Equal(t, tt.wantMessages, dataModel.(membersTableDataModel).Messages)
			assert.Len(t, dataModel.(membersTableDataModel).Rows, tt.wantRows)
		})
	}
}

func Test_membersTableDataProvider__returns_correct_row(t *testing.T) {
	setup := setupTest(t)
	defer setup.ctrl.Finish()

	members := testutils.MakeMembers(1, 2)
	members[1].Teams = []string{"A", "B", "C", "D", "E", "F", "G"}
	state := loadedState(members, 2)
	state.ToggleMember("2")

	dataModel, err := membersTableDataProvider(state, &setup.router)

	assert.NoError(t, err)
	assert.Equal(t, memberRowDataModel{
		ID:       "2",
		Name:     "Member 2",
		UserName: "member2",
		Email:    "member2@test.com",
		Avatar:   "https://avatars.test/2.png",
		Role:     "Product Designer",
		IsActive: true,
		Selected: true,
		Teams: []teamBadgeDataModel{
			{Name: "A", Color: "blue"},
			{Name: "B", Color: "pink"},
			{Name: "C", Color: "sky"},
			{Name: "D", Color: "purple"},
			{Name: "+3", Color: "gray"},
		},
	}, dataModel.(membersTableDataModel).Rows[1])
	assert.False(t, dataModel.(membersTableDataModel).AllSelected)
}

func Test_teamColor__should_cycle_through_palette(t *testing.T) {
	assert.Equal(t, "blue", teamColor(0))
	assert.Equal(t, "violet", teamColor(5))
	assert.Equal(t, "blue", teamColor(6))
	assert.Equal(t, "pink", teamColor(7))
}

func Test_teamBadges__should_not_add_overflow_badge_for_few_teams(t *testing.T) {
	badges := teamBadges([]string{"Design", "Product"})

	assert.Equal(t, []teamBadgeDataModel{
		{Name: "Design", Color: "blue"},
		{Name: "Product", Color: "pink"},
	}, badges)
}

func Test_paginatorDataProvider(t *testing.T) {
	tests := []struct {
		name    string
		state   func() table.State
		wantRes paginatorDataModel
	}{
		{
			name: "should hide paginator when page has no members",
			state: func() table.State {
				return loadedState(nil, 0)
			},
			wantRes: paginatorDataModel{
				Pages:        []pageLinkDataModel{},
				PreviousPage: 0,
				NextPage:     2,
			},
		},
		{
			name: "should disable previous on first page",
			state: func() table.State {
				return loadedState(testutils.MakeMembers(1, 10), 25)
			},
			wantRes: paginatorDataModel{
				Visible: true,
				Pages: []pageLinkDataModel{
					{Number: 1, Current: true},
					{Number: 2},
					{Number: 3},
				},
				HasNext:      true,
				PreviousPage: 0,
				NextPage:     2,
			},
		},
		{
			name: "should allow sliding window when pages exceed it",
			state: func() table.State {
				state := loadedState(testutils.MakeMembers(1, 10), 100)
				state.SlideWindowForward()
				return state
			},
			wantRes: paginatorDataModel{
				Visible: true,
				Pages: []pageLinkDataModel{
					{Number: 2}, {Number: 3}, {Number: 4}, {Number: 5}, {Number: 6}, {Number: 7},
				},
				HasNext:               true,
				PreviousPage:          0,
				NextPage:              2,
				CanSlideWindowBack:    true,
				CanSlideWindowForward: true,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setup := setupTest(t)
			defer setup.ctrl.Finish()

			dataModel, err := paginatorDataProvider(tt.state(), &setup.router)

			assert.NoError(t, err)
			assert.Equal(t, tt.wantRes, dataModel)
		})
	}
}

func Test_modalDataProvider__returns_closed_modal(t *testing.T) {
	setup := setupTest(t)
	defer setup.ctrl.Finish()

	dataModel, err := modalDataProvider(loadedState(testutils.MakeMembers(1, 10), 25), &setup.router)

	assert.NoError(t, err)
	assert.Equal(t, modalDataModel{}, dataModel)
}

func Test_modalDataProvider__should_fall_back_to_first_role(t *testing.T) {
	setup := setupTest(t)
	defer setup.ctrl.Finish()

	members := testutils.MakeMembers(1, 1)
	members[0].Role = "Astronaut"
	state := loadedState(members, 1)
	assert.NoError(t, state.OpenEdit("1"))

	dataModel, err := modalDataProvider(state, &setup.router)

	assert.NoError(t, err)
	model := dataModel.(modalDataModel)
	assert.True(t, model.Open)
	assert.True(t, model.IsEdit)
	assert.Equal(t, "Edit User Details", model.Title)
	assert.Equal(t, "Astronaut", model.Draft.Role)
	assert.Len(t, model.Roles, len(testCfg.Roles))
	assert.Equal(t, roleOptionDataModel{Name: "Product Baker", Selected: true}, model.Roles[0])
}

func Test_modalDataProvider__should_select_members_role(t *testing.T) {
	setup := setupTest(t)
	defer setup.ctrl.Finish()

	state := loadedState(testutils.MakeMembers(1, 1), 1)
	assert.NoError(t, state.OpenEdit("1"))

	dataModel, err := modalDataProvider(state, &setup.router)

	assert.NoError(t, err)
	for _, option := range dataModel.(modalDataModel).Roles {
		assert.Equal(t, option.Name == "Product Designer", option.Selected)
	}
}

func Test_modalDataProvider__should_return_error_when_edit_modal_has_no_draft(t *testing.T) {
	setup := setupTest(t)
	defer setup.ctrl.Finish()

	state := loadedState(testutils.MakeMembers(1, 1), 1)
	state.Modal = table.Modal{Kind: table.ModalEdit}

	_, err := modalDataProvider(state, &setup.router)

	assert.Error(t, err)
}
