package console

import (
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/unicsmcr/hs_members/config"
	mock_services "github.com/unicsmcr/hs_members/mocks/services"
	mock_utils "github.com/unicsmcr/hs_members/mocks/utils"
	"go.uber.org/zap"
)

var testSessionCfg = &config.AppConfig{
	Members: config.MembersConfig{
		PageSize:   10,
		WindowSize: 6,
	},
	Session: config.SessionConfig{
		TTL: 30 * time.Minute,
	},
}

func setupSessionsTest(t *testing.T) (*gomock.Controller, *mock_utils.MockTimeProvider, *Sessions) {
	ctrl := gomock.NewController(t)
	mockTimeProvider := mock_utils.NewMockTimeProvider(ctrl)
	mockMService := mock_services.NewMockMemberService(ctrl)

	return ctrl, mockTimeProvider, NewSessions(zap.NewNop(), testSessionCfg, mockMService, mockTimeProvider)
}

func Test_Get__should_start_new_session_for_unknown_id(t *testing.T) {
	ctrl, mockTimeProvider, sessions := setupSessionsTest(t)
	defer ctrl.Finish()

	mockTimeProvider.EXPECT().Now().Return(time.Unix(0, 0)).Times(1)

	id, orchestrator, created := sessions.Get(uuid.New().String())

	assert.True(t, created)
	assert.NotNil(t, orchestrator)
	_, err := uuid.Parse(id)
	assert.NoError(t, err)
	assert.Equal(t, 1, sessions.Len())
}

func Test_Get__should_start_new_session_for_malformed_id(t *testing.T) {
	ctrl, mockTimeProvider, sessions := setupSessionsTest(t)
	defer ctrl.Finish()

	mockTimeProvider.EXPECT().Now().Return(time.Unix(0, 0)).Times(1)

	id, _, created := sessions.Get("not a session")

	assert.True(t, created)
	assert.NotEqual(t, "not a session", id)
}

func Test_Get__should_return_existing_session(t *testing.T) {
	ctrl, mockTimeProvider, sessions := setupSessionsTest(t)
	defer ctrl.Finish()

	gomock.InOrder(
		mockTimeProvider.EXPECT().Now().Return(time.Unix(0, 0)).Times(1),
		mockTimeProvider.EXPECT().Now().Return(time.Unix(0, 0).Add(10*time.Minute)).Times(1),
	)

	id, orchestrator, _ := sessions.Get("")
	sameID, sameOrchestrator, created := sessions.Get(id)

	assert.False(t, created)
	assert.Equal(t, id, sameID)
	assert.True(t, orchestrator == sameOrchestrator)
}

func Test_Get__should_discard_expired_sessions(t *testing.T) {
	ctrl, mockTimeProvider, sessions := setupSessionsTest(t)
	defer ctrl.Finish()

	gomock.InOrder(
		mockTimeProvider.EXPECT().Now().Return(time.Unix(0, 0)).Times(1),
		mockTimeProvider.EXPECT().Now().Return(time.Unix(0, 0).Add(31*time.Minute)).Times(1),
	)

	id, _, _ := sessions.Get("")
	newID, _, created := sessions.Get(id)

	assert.True(t, created)
	assert.NotEqual(t, id, newID)
	assert.Equal(t, 1, sessions.Len())
}

func Test_Get__should_extend_session_on_use(t *testing.T) {
	ctrl, mockTimeProvider, sessions := setupSessionsTest(t)
	defer ctrl.Finish()

	gomock.InOrder(
		mockTimeProvider.EXPECT().Now().Return(time.Unix(0, 0)).Times(1),
		mockTimeProvider.EXPECT().Now().Return(time.Unix(0, 0).Add(20*time.Minute)).Times(1),
		mockTimeProvider.EXPECT().Now().Return(time.Unix(0, 0).Add(40*time.Minute)).Times(1),
	)

	id, _, _ := sessions.Get("")
	sessions.Get(id)
	sameID, _, created := sessions.Get(id)

	assert.False(t, created)
	assert.Equal(t, id, sameID)
}
