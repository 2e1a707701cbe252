package logic_test

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"notify_relay/dal"
	"notify_relay/dto"
	"notify_relay/logic"
	"notify_relay/shared"
	"notify_relay/test/mocks"
)

type senderHarness struct {
	cfg         *shared.Config
	mockLogger  *mocks.MockILogger
	mockMetrics *mocks.MockIMetrics
	mockRepo    *mocks.MockIRepo
	mockTokens  *mocks.MockITokenStore
}

func setupSenderTest(t *testing.T) (*gomock.Controller, *senderHarness, logic.IBatchSender) {

	ctrl := gomock.NewController(t)

	h := &senderHarness{
		cfg: &shared.Config{
			Host: testHost,
			Relay: shared.RelaySchedule{
				MaxTokensPerPush: 100,
				SendAttempts:     3,
				SendBackoffMs:    1,
			},
		},
		mockLogger:  mocks.NewMockILogger(ctrl),
		mockMetrics: mocks.NewMockIMetrics(ctrl),
		mockRepo:    mocks.NewMockIRepo(ctrl),
		mockTokens:  mocks.NewMockITokenStore(ctrl),
	}
	stubLogger(h.mockLogger)
	stubMetrics(h.mockMetrics)
	h.mockRepo.EXPECT().GetNextId().Return(uint64(4711)).AnyTimes()

	sender := logic.NewBatchSender(h.cfg, h.mockLogger, h.mockMetrics, h.mockRepo,
		h.mockTokens, shared.NewUserAgent(h.cfg))

	return ctrl, h, sender
}

func makeToken(fid int64, token, endpointUrl string) *dal.DeliveryToken {
	return &dal.DeliveryToken{
		Fid:         fid,
		Handle:      fmt.Sprintf("user-%d", fid),
		LedgerUser:  fmt.Sprintf("ledger-%d", fid),
		Token:       token,
		EndpointUrl: endpointUrl,
		IsActive:    true,
	}
}

func testNotification() *logic.ConvertedNotification {
	return &logic.ConvertedNotification{
		Type:      logic.EvVote,
		Title:     "New Vote",
		Body:      "@alice voted on your post",
		TargetUrl: "https://hive.blog/post/samuel/my-post",
	}
}

func Test_Send_Delivers_To_Endpoint(t *testing.T) {
	ctrl, h, sender := setupSenderTest(t)
	defer ctrl.Finish()

	var gotReq dto.PushRequest
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		assert.Nil(t, json.Unmarshal(body, &gotReq))
		resp := dto.PushResponse{SuccessfulTokens: gotReq.Tokens}
		respJson, _ := json.Marshal(&resp)
		w.Write(respJson)
	}))
	defer ts.Close()

	h.mockTokens.EXPECT().GetForLedgerUsers([]string{"samuel"}).
		Return([]*dal.DeliveryToken{makeToken(7, "tok-1", ts.URL)}).Times(1)

	outcome := sender.Send(testNotification(), []string{"samuel"})

	assert.True(t, outcome.Success)
	assert.Len(t, outcome.Results, 1)
	assert.Equal(t, []string{"tok-1"}, outcome.Results[0].SuccessfulTokens)
	assert.Equal(t, "New Vote", gotReq.Title)
	assert.Equal(t, "@alice voted on your post", gotReq.Body)
	assert.Equal(t, "4711", gotReq.NotificationId)
}

func Test_Send_Removes_Invalid_Tokens(t *testing.T) {
	ctrl, h, sender := setupSenderTest(t)
	defer ctrl.Finish()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		resp := dto.PushResponse{
			SuccessfulTokens: []string{"tok-1"},
			InvalidTokens:    []string{"tok-2"},
		}
		respJson, _ := json.Marshal(&resp)
		w.Write(respJson)
	}))
	defer ts.Close()

	h.mockTokens.EXPECT().GetForLedgerUsers(gomock.Any()).
		Return([]*dal.DeliveryToken{
			makeToken(7, "tok-1", ts.URL),
			makeToken(8, "tok-2", ts.URL),
		}).Times(1)
	h.mockTokens.EXPECT().GetByToken("tok-2").Return(makeToken(8, "tok-2", ts.URL), nil).Times(1)
	h.mockTokens.EXPECT().Remove(int64(8)).Return(nil).Times(1)

	outcome := sender.Send(testNotification(), []string{"samuel"})

	assert.True(t, outcome.Success)
	assert.Equal(t, []string{"tok-2"}, outcome.Results[0].InvalidTokens)
}

func Test_Send_Retries_Then_Succeeds(t *testing.T) {
	ctrl, h, sender := setupSenderTest(t)
	defer ctrl.Finish()

	var calls int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) < 3 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		resp := dto.PushResponse{SuccessfulTokens: []string{"tok-1"}}
		respJson, _ := json.Marshal(&resp)
		w.Write(respJson)
	}))
	defer ts.Close()

	h.mockTokens.EXPECT().GetForLedgerUsers(gomock.Any()).
		Return([]*dal.DeliveryToken{makeToken(7, "tok-1", ts.URL)}).Times(1)

	outcome := sender.Send(testNotification(), []string{"samuel"})

	assert.True(t, outcome.Success)
	assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
}

func Test_Send_Exhausted_Retries_Marks_Rate_Limited(t *testing.T) {
	ctrl, h, sender := setupSenderTest(t)
	defer ctrl.Finish()

	var calls int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer ts.Close()

	h.mockTokens.EXPECT().GetForLedgerUsers(gomock.Any()).
		Return([]*dal.DeliveryToken{makeToken(7, "tok-1", ts.URL)}).Times(1)

	outcome := sender.Send(testNotification(), []string{"samuel"})

	assert.False(t, outcome.Success)
	assert.Len(t, outcome.Results, 1)
	assert.False(t, outcome.Results[0].Success)
	assert.Equal(t, []string{"tok-1"}, outcome.Results[0].RateLimitedTokens)
	assert.NotEmpty(t, outcome.Results[0].Error)
	assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
}

func Test_Send_Splits_Large_Batches(t *testing.T) {
	ctrl, h, sender := setupSenderTest(t)
	defer ctrl.Finish()

	var batchSizes []int
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req dto.PushRequest
		body, _ := io.ReadAll(r.Body)
		json.Unmarshal(body, &req)
		batchSizes = append(batchSizes, len(req.Tokens))
		resp := dto.PushResponse{SuccessfulTokens: req.Tokens}
		respJson, _ := json.Marshal(&resp)
		w.Write(respJson)
	}))
	defer ts.Close()

	tokens := make([]*dal.DeliveryToken, 0, 150)
	for i := 0; i < 150; i++ {
		tokens = append(tokens, makeToken(int64(i), fmt.Sprintf("tok-%d", i), ts.URL))
	}
	h.mockTokens.EXPECT().GetActive().Return(tokens).Times(1)

	outcome := sender.Send(testNotification(), nil)

	assert.True(t, outcome.Success)
	assert.Len(t, outcome.Results, 2)
	assert.ElementsMatch(t, []int{100, 50}, batchSizes)
}

func Test_Send_No_Tokens_No_Requests(t *testing.T) {
	ctrl, h, sender := setupSenderTest(t)
	defer ctrl.Finish()

	h.mockTokens.EXPECT().GetForLedgerUsers(gomock.Any()).Return([]*dal.DeliveryToken{}).Times(1)

	outcome := sender.Send(testNotification(), []string{"samuel"})

	assert.False(t, outcome.Success)
	assert.Empty(t, outcome.Results)
}
