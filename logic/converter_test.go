package logic_test

import (
	"errors"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"notify_relay/dto"
	"notify_relay/logic"
	"notify_relay/shared"
	"notify_relay/test/mocks"
	"notify_relay/texts"
)

const testHost = "hive.blog"
const testUser = "samuel"

type converterHarness struct {
	cfg         *shared.Config
	mockLogger  *mocks.MockILogger
	mockMetrics *mocks.MockIMetrics
	mockLedger  *mocks.MockILedgerClient
	cache       logic.IEnrichCache
}

func setupConverterTest(t *testing.T, randVal float64) (*gomock.Controller, *converterHarness, logic.IConverter) {

	ctrl := gomock.NewController(t)

	h := &converterHarness{
		cfg:         &shared.Config{Host: testHost},
		mockLogger:  mocks.NewMockILogger(ctrl),
		mockMetrics: mocks.NewMockIMetrics(ctrl),
		mockLedger:  mocks.NewMockILedgerClient(ctrl),
	}
	stubLogger(h.mockLogger)
	stubMetrics(h.mockMetrics)
	h.cache = logic.NewEnrichCache(h.cfg, h.mockLogger, h.mockMetrics)

	conv := logic.NewConverter(h.cfg, h.mockLogger, texts.NewTexts(), h.cache, h.mockLedger,
		func() float64 { return randVal })

	return ctrl, h, conv
}

func Test_Convert_Unknown_Type_Dropped(t *testing.T) {
	ctrl, _, conv := setupConverterTest(t, 0.9)
	defer ctrl.Finish()

	ev := &dto.LedgerEvent{Id: 1, Type: "power_up", Message: "something happened", Url: "@samuel"}
	assert.Nil(t, conv.Convert(ev, testUser))
}

func Test_Convert_Follow_Uses_Fallback_Body(t *testing.T) {
	ctrl, _, conv := setupConverterTest(t, 0.0)
	defer ctrl.Finish()

	ev := &dto.LedgerEvent{Id: 2, Type: "follow", Message: "@bob followed you", Url: "@bob"}
	res := conv.Convert(ev, testUser)

	assert.NotNil(t, res)
	assert.Equal(t, logic.EvFollow, res.Type)
	assert.Equal(t, "New Follower", res.Title)
	assert.Equal(t, "@bob followed you", res.Body)
	assert.Equal(t, "https://hive.blog/profile/bob", res.TargetUrl)
}

func Test_Convert_Transfer_Targets_Wallet(t *testing.T) {
	ctrl, _, conv := setupConverterTest(t, 0.0)
	defer ctrl.Finish()

	ev := &dto.LedgerEvent{Id: 3, Type: "transfer", Message: "@carol transferred 5.000 HIVE", Url: "@carol"}
	res := conv.Convert(ev, testUser)

	assert.NotNil(t, res)
	assert.Equal(t, "Transfer Received", res.Title)
	assert.Equal(t, "https://hive.blog/wallet", res.TargetUrl)
}

func Test_Convert_Vote_Skips_Enrichment_Above_Probability(t *testing.T) {
	ctrl, _, conv := setupConverterTest(t, 0.9)
	defer ctrl.Finish()

	// No ledger expectations: enrichment must not fetch anything
	ev := &dto.LedgerEvent{Id: 4, Type: "vote", Message: "@alice voted on your post ($0.05)", Url: "@samuel/my-post"}
	res := conv.Convert(ev, testUser)

	assert.NotNil(t, res)
	assert.Equal(t, "New Vote", res.Title)
	assert.Equal(t, "@alice voted on your post ($0.05)", res.Body)
	assert.Equal(t, "https://hive.blog/post/samuel/my-post", res.TargetUrl)
}

func Test_Convert_Vote_Enriched_Below_Probability(t *testing.T) {
	ctrl, h, conv := setupConverterTest(t, 0.1)
	defer ctrl.Finish()

	h.mockLedger.EXPECT().GetContent("samuel", "my-post").
		Return(&dto.LedgerPost{Author: "samuel", Permlink: "my-post", Title: "My wonderful post"}, nil).
		Times(1)

	ev := &dto.LedgerEvent{Id: 5, Type: "vote", Message: "@alice voted on your post", Url: "@samuel/my-post"}
	res := conv.Convert(ev, testUser)

	assert.NotNil(t, res)
	assert.Equal(t, `@alice voted on "My wonderful post"`, res.Body)
}

func Test_Convert_Reply_Second_Chance_Page_Metas(t *testing.T) {
	ctrl, h, conv := setupConverterTest(t, 0.9)
	defer ctrl.Finish()

	h.mockLedger.EXPECT().GetContent("alice", "re-my-post").
		Return(nil, errors.New("timeout")).Times(1)
	h.mockLedger.EXPECT().GetPageMetas("https://hive.blog/post/alice/re-my-post").
		Return("", "Thanks for sharing, this was a great read", nil).Times(1)

	ev := &dto.LedgerEvent{Id: 6, Type: "reply", Message: "@alice replied to your post", Url: "@alice/re-my-post"}
	res := conv.Convert(ev, testUser)

	assert.NotNil(t, res)
	assert.Equal(t, "New Comment", res.Title)
	assert.Equal(t, `@alice: "Thanks for sharing, this was a great read"`, res.Body)
}

func Test_Convert_Short_Content_Falls_Back_And_Caches_Miss(t *testing.T) {
	ctrl, h, conv := setupConverterTest(t, 0.9)
	defer ctrl.Finish()

	h.mockLedger.EXPECT().GetContent("alice", "re-short").
		Return(&dto.LedgerPost{Author: "alice", Permlink: "re-short", Body: "hi"}, nil).Times(1)
	h.mockLedger.EXPECT().GetPageMetas(gomock.Any()).Return("", "", nil).Times(1)

	ev := &dto.LedgerEvent{Id: 7, Type: "reply", Message: "@alice replied to your post", Url: "@alice/re-short"}

	res := conv.Convert(ev, testUser)
	assert.NotNil(t, res)
	assert.Equal(t, "@alice replied to your post", res.Body)

	// Second conversion hits the cached miss: no further ledger calls
	res2 := conv.Convert(ev, testUser)
	assert.Equal(t, res.Body, res2.Body)
}

func Test_Convert_Enrichment_Served_From_Cache(t *testing.T) {
	ctrl, h, conv := setupConverterTest(t, 0.1)
	defer ctrl.Finish()

	h.mockLedger.EXPECT().GetContent("samuel", "my-post").
		Return(&dto.LedgerPost{Author: "samuel", Permlink: "my-post", Title: "My wonderful post"}, nil).
		Times(1)

	ev := &dto.LedgerEvent{Id: 8, Type: "vote", Message: "@alice voted on your post", Url: "@samuel/my-post"}
	res1 := conv.Convert(ev, testUser)
	res2 := conv.Convert(ev, testUser)

	assert.Equal(t, res1.Body, res2.Body)
	assert.Equal(t, res1.Signature(), res2.Signature())
}

func Test_Convert_Body_Truncated(t *testing.T) {
	ctrl, _, conv := setupConverterTest(t, 0.9)
	defer ctrl.Finish()

	longMsg := "@alice mentioned you in " + strings.Repeat("wordy content ", 30)
	ev := &dto.LedgerEvent{Id: 9, Type: "mention", Message: longMsg, Url: ""}
	// Mention with no content reference: enrichment is skipped entirely
	res := conv.Convert(ev, testUser)

	assert.NotNil(t, res)
	assert.LessOrEqual(t, utf8.RuneCountInString(res.Body), shared.MaxBodyLen)
	assert.LessOrEqual(t, utf8.RuneCountInString(res.Title), shared.MaxTitleLen)
	assert.True(t, strings.HasSuffix(res.Body, "…"))
}

func Test_Convert_Bad_Url_Falls_Back_To_Site(t *testing.T) {
	ctrl, _, conv := setupConverterTest(t, 0.9)
	defer ctrl.Finish()

	ev := &dto.LedgerEvent{Id: 10, Type: "vote", Message: "@alice voted on your post", Url: "not-a-reference"}
	res := conv.Convert(ev, testUser)

	assert.NotNil(t, res)
	assert.Equal(t, "https://hive.blog", res.TargetUrl)
}

func Test_Convert_Strips_Markup_From_Message(t *testing.T) {
	ctrl, _, conv := setupConverterTest(t, 0.9)
	defer ctrl.Finish()

	ev := &dto.LedgerEvent{Id: 11, Type: "follow", Message: "<b>@bob</b> *followed* you", Url: "@bob"}
	res := conv.Convert(ev, testUser)

	assert.NotNil(t, res)
	assert.Equal(t, "@bob followed you", res.Body)
}

func Test_Convert_Signature_Stable(t *testing.T) {
	ctrl, _, conv := setupConverterTest(t, 0.9)
	defer ctrl.Finish()

	ev := &dto.LedgerEvent{Id: 12, Type: "vote", Message: "@alice voted on your post", Url: "@samuel/my-post"}
	res1 := conv.Convert(ev, testUser)
	res2 := conv.Convert(ev, testUser)

	assert.Equal(t, res1.Signature(), res2.Signature())
	assert.Equal(t, res1.SigHash(), res2.SigHash())
}
