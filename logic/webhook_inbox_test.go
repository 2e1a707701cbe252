package logic_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"notify_relay/dal"
	"notify_relay/dto"
	"notify_relay/logic"
	"notify_relay/shared"
	"notify_relay/test/mocks"
)

type inboxHarness struct {
	cfg          *shared.Config
	mockLogger   *mocks.MockILogger
	mockMetrics  *mocks.MockIMetrics
	mockVerifier *mocks.MockIWebhookVerifier
	mockRepo     *mocks.MockIRepo
	mockTokens   *mocks.MockITokenStore
}

func setupInboxTest(t *testing.T) (*gomock.Controller, *inboxHarness, logic.IWebhookInbox) {

	ctrl := gomock.NewController(t)

	h := &inboxHarness{
		cfg:          &shared.Config{Host: testHost},
		mockLogger:   mocks.NewMockILogger(ctrl),
		mockMetrics:  mocks.NewMockIMetrics(ctrl),
		mockVerifier: mocks.NewMockIWebhookVerifier(ctrl),
		mockRepo:     mocks.NewMockIRepo(ctrl),
		mockTokens:   mocks.NewMockITokenStore(ctrl),
	}
	stubLogger(h.mockLogger)
	stubMetrics(h.mockMetrics)

	inbox := logic.NewWebhookInbox(h.cfg, h.mockLogger, h.mockMetrics, h.mockVerifier,
		h.mockRepo, h.mockTokens)

	return ctrl, h, inbox
}

func acceptEnvelope(h *inboxHarness, event string, details *dto.NotificationDetails) *dto.WebhookEnvelope {
	env := &dto.WebhookEnvelope{Header: "h", Payload: "p", Signature: "s"}
	header := &dto.WebhookHeader{Fid: 42, Type: "ed25519", Key: "aa", Username: "samuel"}
	payload := &dto.WebhookPayload{Event: event, NotificationDetails: details}
	h.mockVerifier.EXPECT().Verify(env).Return(header, payload, true).Times(1)
	return env
}

func Test_Inbox_Rejects_Bad_Envelope(t *testing.T) {
	ctrl, h, inbox := setupInboxTest(t)
	defer ctrl.Finish()

	env := &dto.WebhookEnvelope{Header: "h", Payload: "p", Signature: "bad"}
	h.mockVerifier.EXPECT().Verify(env).Return(nil, nil, false).Times(1)

	reqProblem, err := inbox.HandleEvent(env)

	assert.Nil(t, err)
	assert.NotEmpty(t, reqProblem)
}

func Test_Inbox_App_Added_Stores_Token_And_Seeds_Link(t *testing.T) {
	ctrl, h, inbox := setupInboxTest(t)
	defer ctrl.Finish()

	details := &dto.NotificationDetails{Url: "https://notify.example.com/push", Token: "tok-1"}
	env := acceptEnvelope(h, "app_added", details)

	h.mockTokens.EXPECT().
		AddOrUpdate(int64(42), "samuel", "tok-1", "https://notify.example.com/push", "samuel").
		Return(nil).Times(1)
	var seeded *dal.UserLink
	h.mockRepo.EXPECT().AddUserLinkIfNotExist(gomock.Any()).
		DoAndReturn(func(link *dal.UserLink) (bool, error) {
			seeded = link
			return true, nil
		}).Times(1)
	// Gauge refresh after the mutation
	h.mockTokens.EXPECT().GetActive().Return([]*dal.DeliveryToken{{Fid: 42}}).Times(1)

	reqProblem, err := inbox.HandleEvent(env)

	assert.Nil(t, err)
	assert.Empty(t, reqProblem)
	assert.NotNil(t, seeded)
	assert.Equal(t, "samuel", seeded.LedgerUser)
	assert.Equal(t, int64(42), seeded.Fid)
	assert.True(t, seeded.Active)
	assert.Equal(t, 5, seeded.MaxPerBatch)
	assert.True(t, seeded.VotesOn)
	assert.True(t, seeded.RepliesOn)
	assert.True(t, seeded.MentionsOn)
	assert.True(t, seeded.FollowsOn)
	assert.True(t, seeded.ReblogsOn)
	assert.True(t, seeded.TransfersOn)
	assert.False(t, seeded.Scheduled)
}

func Test_Inbox_App_Added_Reactivates_Existing_Link(t *testing.T) {
	ctrl, h, inbox := setupInboxTest(t)
	defer ctrl.Finish()

	details := &dto.NotificationDetails{Url: "https://notify.example.com/push", Token: "tok-1"}
	env := acceptEnvelope(h, "app_added", details)

	h.mockTokens.EXPECT().AddOrUpdate(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil).Times(1)
	h.mockRepo.EXPECT().AddUserLinkIfNotExist(gomock.Any()).Return(false, nil).Times(1)
	h.mockRepo.EXPECT().SetUserLinkActive(int64(42), true).Return(nil).Times(1)
	h.mockTokens.EXPECT().GetActive().Return([]*dal.DeliveryToken{{Fid: 42}}).Times(1)

	reqProblem, err := inbox.HandleEvent(env)

	assert.Nil(t, err)
	assert.Empty(t, reqProblem)
}

func Test_Inbox_App_Added_Without_Details_Is_Noop(t *testing.T) {
	ctrl, h, inbox := setupInboxTest(t)
	defer ctrl.Finish()

	env := acceptEnvelope(h, "app_added", nil)
	h.mockTokens.EXPECT().GetActive().Return([]*dal.DeliveryToken{}).Times(1)

	reqProblem, err := inbox.HandleEvent(env)

	assert.Nil(t, err)
	assert.Empty(t, reqProblem)
}

func Test_Inbox_App_Removed_Drops_Token_And_Deactivates(t *testing.T) {
	ctrl, h, inbox := setupInboxTest(t)
	defer ctrl.Finish()

	env := acceptEnvelope(h, "app_removed", nil)

	h.mockTokens.EXPECT().Remove(int64(42)).Return(nil).Times(1)
	h.mockRepo.EXPECT().SetUserLinkActive(int64(42), false).Return(nil).Times(1)
	h.mockTokens.EXPECT().GetActive().Return([]*dal.DeliveryToken{}).Times(1)

	reqProblem, err := inbox.HandleEvent(env)

	assert.Nil(t, err)
	assert.Empty(t, reqProblem)
}

func Test_Inbox_Notifications_Enabled(t *testing.T) {
	ctrl, h, inbox := setupInboxTest(t)
	defer ctrl.Finish()

	details := &dto.NotificationDetails{Url: "https://notify.example.com/push", Token: "tok-2"}
	env := acceptEnvelope(h, "notifications_enabled", details)

	h.mockTokens.EXPECT().Enable(int64(42), "tok-2", "https://notify.example.com/push").
		Return(nil).Times(1)
	h.mockTokens.EXPECT().GetActive().Return([]*dal.DeliveryToken{{Fid: 42}}).Times(1)

	reqProblem, err := inbox.HandleEvent(env)

	assert.Nil(t, err)
	assert.Empty(t, reqProblem)
}

func Test_Inbox_Notifications_Enabled_Missing_Details(t *testing.T) {
	ctrl, h, inbox := setupInboxTest(t)
	defer ctrl.Finish()

	env := acceptEnvelope(h, "notifications_enabled", nil)

	reqProblem, err := inbox.HandleEvent(env)

	assert.Nil(t, err)
	assert.NotEmpty(t, reqProblem)
}

func Test_Inbox_Notifications_Disabled(t *testing.T) {
	ctrl, h, inbox := setupInboxTest(t)
	defer ctrl.Finish()

	env := acceptEnvelope(h, "notifications_disabled", nil)

	h.mockTokens.EXPECT().Disable(int64(42)).Return(nil).Times(1)
	h.mockTokens.EXPECT().GetActive().Return([]*dal.DeliveryToken{}).Times(1)

	reqProblem, err := inbox.HandleEvent(env)

	assert.Nil(t, err)
	assert.Empty(t, reqProblem)
}

func Test_Inbox_Unknown_Event_Rejected(t *testing.T) {
	ctrl, h, inbox := setupInboxTest(t)
	defer ctrl.Finish()

	env := acceptEnvelope(h, "something_else", nil)

	reqProblem, err := inbox.HandleEvent(env)

	assert.Nil(t, err)
	assert.NotEmpty(t, reqProblem)
}
