package logic_test

import (
	"go.uber.org/mock/gomock"

	"notify_relay/test/mocks"
)

type nopObserver struct{}

func (o *nopObserver) Finish() {}

func stubLogger(mockLogger *mocks.MockILogger) {
	mockLogger.EXPECT().Error(gomock.Any(), gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Errorf(gomock.Any(), gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Warn(gomock.Any(), gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Warnf(gomock.Any(), gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Info(gomock.Any(), gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Infof(gomock.Any(), gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Debug(gomock.Any(), gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Debugf(gomock.Any(), gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Printf(gomock.Any(), gomock.Any()).AnyTimes()
}

func stubMetrics(mockMetrics *mocks.MockIMetrics) {
	obs := &nopObserver{}
	mockMetrics.EXPECT().StartWebRequestIn(gomock.Any()).Return(obs).AnyTimes()
	mockMetrics.EXPECT().StartPushRequestOut(gomock.Any()).Return(obs).AnyTimes()
	mockMetrics.EXPECT().RelayRunStarted(gomock.Any()).AnyTimes()
	mockMetrics.EXPECT().NotificationSent().AnyTimes()
	mockMetrics.EXPECT().NotificationFailed().AnyTimes()
	mockMetrics.EXPECT().WebhookEvent(gomock.Any()).AnyTimes()
	mockMetrics.EXPECT().EnrichLookup(gomock.Any()).AnyTimes()
	mockMetrics.EXPECT().CacheEntryCount(gomock.Any()).AnyTimes()
	mockMetrics.EXPECT().InvalidTokenRemoved().AnyTimes()
	mockMetrics.EXPECT().ActiveTokenCount(gomock.Any()).AnyTimes()
	mockMetrics.EXPECT().ServiceStarted().AnyTimes()
}
