package logic_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"notify_relay/dal"
	"notify_relay/dto"
	"notify_relay/logic"
	"notify_relay/shared"
	"notify_relay/test/mocks"
)

func Test_Continuous_Selector_Skips_Scheduled_Links(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLogger := mocks.NewMockILogger(ctrl)
	mockRepo := mocks.NewMockIRepo(ctrl)
	stubLogger(mockLogger)

	mockRepo.EXPECT().GetActiveUserLinks().Return([]*dal.UserLink{
		{LedgerUser: "alice", Scheduled: false},
		{LedgerUser: "bob", Scheduled: true},
		{LedgerUser: "carol", Scheduled: false},
	}, nil).Times(1)

	selector := logic.NewContinuousSelector(mockLogger, mockRepo)
	links := selector.SelectUsers(time.Now().UTC())

	assert.Len(t, links, 2)
	assert.Equal(t, "alice", links[0].LedgerUser)
	assert.Equal(t, "carol", links[1].LedgerUser)
}

func Test_Scheduled_Selector_Window(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLogger := mocks.NewMockILogger(ctrl)
	mockRepo := mocks.NewMockIRepo(ctrl)
	stubLogger(mockLogger)

	cfg := &shared.Config{Relay: shared.RelaySchedule{SchedWindowMin: 5}}
	now := time.Date(2026, 2, 3, 10, 0, 0, 0, time.UTC)

	mockRepo.EXPECT().GetActiveUserLinks().Return([]*dal.UserLink{
		{LedgerUser: "in-window-before", Scheduled: true, SchedHour: 9, SchedMinute: 56, SchedTz: "UTC"},
		{LedgerUser: "in-window-after", Scheduled: true, SchedHour: 10, SchedMinute: 4, SchedTz: "UTC"},
		{LedgerUser: "out-of-window", Scheduled: true, SchedHour: 10, SchedMinute: 6, SchedTz: "UTC"},
		{LedgerUser: "not-scheduled", Scheduled: false},
	}, nil).Times(1)

	selector := logic.NewScheduledSelector(cfg, mockLogger, mockRepo)
	links := selector.SelectUsers(now)

	assert.Len(t, links, 2)
	assert.Equal(t, "in-window-before", links[0].LedgerUser)
	assert.Equal(t, "in-window-after", links[1].LedgerUser)
}

func Test_Scheduled_Selector_Window_Wraps_Midnight(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLogger := mocks.NewMockILogger(ctrl)
	mockRepo := mocks.NewMockIRepo(ctrl)
	stubLogger(mockLogger)

	cfg := &shared.Config{Relay: shared.RelaySchedule{SchedWindowMin: 5}}
	now := time.Date(2026, 2, 3, 0, 1, 0, 0, time.UTC)

	mockRepo.EXPECT().GetActiveUserLinks().Return([]*dal.UserLink{
		{LedgerUser: "late-night", Scheduled: true, SchedHour: 23, SchedMinute: 58, SchedTz: "UTC"},
	}, nil).Times(1)

	selector := logic.NewScheduledSelector(cfg, mockLogger, mockRepo)
	links := selector.SelectUsers(now)

	assert.Len(t, links, 1)
}

func Test_Scheduled_Selector_Respects_Time_Zone(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLogger := mocks.NewMockILogger(ctrl)
	mockRepo := mocks.NewMockIRepo(ctrl)
	stubLogger(mockLogger)

	cfg := &shared.Config{Relay: shared.RelaySchedule{SchedWindowMin: 5}}
	// 10:00 UTC is 05:00 in New York in February
	now := time.Date(2026, 2, 3, 10, 0, 0, 0, time.UTC)

	mockRepo.EXPECT().GetActiveUserLinks().Return([]*dal.UserLink{
		{LedgerUser: "ny-morning", Scheduled: true, SchedHour: 5, SchedMinute: 0, SchedTz: "America/New_York"},
		{LedgerUser: "ny-evening", Scheduled: true, SchedHour: 17, SchedMinute: 0, SchedTz: "America/New_York"},
	}, nil).Times(1)

	selector := logic.NewScheduledSelector(cfg, mockLogger, mockRepo)
	links := selector.SelectUsers(now)

	assert.Len(t, links, 1)
	assert.Equal(t, "ny-morning", links[0].LedgerUser)
}

func Test_Signature_Watermark_Consults_Delivery_Log(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLogger := mocks.NewMockILogger(ctrl)
	mockRepo := mocks.NewMockIRepo(ctrl)
	stubLogger(mockLogger)

	link := &dal.UserLink{LedgerUser: "samuel"}
	converted := &logic.ConvertedNotification{
		Type: logic.EvVote, Title: "New Vote", Body: "b", TargetUrl: "https://x.y/p",
	}
	sig := converted.Signature()

	mockRepo.EXPECT().HasLogEntry("samuel", shared.SigHash(sig), sig).Return(true, nil).Times(1)
	mockRepo.EXPECT().HasLogEntry("samuel", shared.SigHash(sig), sig).Return(false, nil).Times(1)

	wm := logic.NewSignatureWatermark(mockLogger, mockRepo)
	assert.True(t, wm.HasBeenProcessed(link, &dto.LedgerEvent{}, converted))
	assert.False(t, wm.HasBeenProcessed(link, &dto.LedgerEvent{}, converted))
}

func Test_Signature_Watermark_Log_Error_Means_Unprocessed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLogger := mocks.NewMockILogger(ctrl)
	mockRepo := mocks.NewMockIRepo(ctrl)
	stubLogger(mockLogger)

	mockRepo.EXPECT().HasLogEntry(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(false, errors.New("db locked")).Times(1)

	wm := logic.NewSignatureWatermark(mockLogger, mockRepo)
	converted := &logic.ConvertedNotification{Type: logic.EvVote, Title: "t", Body: "b", TargetUrl: "u"}

	assert.False(t, wm.HasBeenProcessed(&dal.UserLink{LedgerUser: "samuel"}, &dto.LedgerEvent{}, converted))
}

func Test_Id_Watermark_Monotonic(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLogger := mocks.NewMockILogger(ctrl)
	mockRepo := mocks.NewMockIRepo(ctrl)
	stubLogger(mockLogger)

	wm := logic.NewIdWatermark(mockLogger, mockRepo)
	link := &dal.UserLink{LedgerUser: "samuel", LastSchedEventId: 100}

	assert.True(t, wm.HasBeenProcessed(link, &dto.LedgerEvent{Id: 99}, nil))
	assert.True(t, wm.HasBeenProcessed(link, &dto.LedgerEvent{Id: 100}, nil))
	assert.False(t, wm.HasBeenProcessed(link, &dto.LedgerEvent{Id: 101}, nil))

	mockRepo.EXPECT().UpdateLastSchedEventId("samuel", int64(101)).Return(nil).Times(1)
	assert.Nil(t, wm.MarkProcessed(link, &dto.LedgerEvent{Id: 101}))
	assert.Equal(t, int64(101), link.LastSchedEventId)

	// Lower id never regresses the mark
	assert.Nil(t, wm.MarkProcessed(link, &dto.LedgerEvent{Id: 50}))
	assert.Equal(t, int64(101), link.LastSchedEventId)
}

func Test_Id_Watermark_Idless_Event_Falls_Back_To_Delivery_Log(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLogger := mocks.NewMockILogger(ctrl)
	mockRepo := mocks.NewMockIRepo(ctrl)
	stubLogger(mockLogger)

	wm := logic.NewIdWatermark(mockLogger, mockRepo)
	link := &dal.UserLink{LedgerUser: "samuel", LastSchedEventId: 100}
	converted := &logic.ConvertedNotification{
		Type: logic.EvVote, Title: "New Vote", Body: "b", TargetUrl: "https://x.y/p",
	}
	sig := converted.Signature()

	mockRepo.EXPECT().HasLogEntry("samuel", shared.SigHash(sig), sig).Return(true, nil).Times(1)
	mockRepo.EXPECT().HasLogEntry("samuel", shared.SigHash(sig), sig).Return(false, nil).Times(1)

	// Already in the log: must not repeat on the next pass in the window
	assert.True(t, wm.HasBeenProcessed(link, &dto.LedgerEvent{Id: 0}, converted))
	assert.False(t, wm.HasBeenProcessed(link, &dto.LedgerEvent{Id: 0}, converted))

	// An id-less event never moves the high-water mark
	assert.Nil(t, wm.MarkProcessed(link, &dto.LedgerEvent{Id: 0}))
	assert.Equal(t, int64(100), link.LastSchedEventId)
}
