package logic

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/codeGROOVE-dev/retry"

	"notify_relay/dal"
	"notify_relay/dto"
	"notify_relay/shared"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_batch_sender.go -package mocks notify_relay/logic IBatchSender

const (
	pushRequestTimeoutSec = 10
	defaultMaxTokensPush  = 100
	defaultSendAttempts   = 3
	defaultSendBackoffMs  = 1000
)

// SendResult is the outcome of the POSTs made to one delivery endpoint.
type SendResult struct {
	EndpointUrl       string
	Success           bool
	SuccessfulTokens  []string
	InvalidTokens     []string
	RateLimitedTokens []string
	Error             string
}

type SendOutcome struct {
	// Success means at least one token accepted the notification.
	Success bool
	Results []*SendResult
}

// IBatchSender pushes one converted notification to delivery endpoints.
// A nil targetUsers means all users with an active token.
type IBatchSender interface {
	Send(notification *ConvertedNotification, targetUsers []string) *SendOutcome
}

type batchSender struct {
	cfg        *shared.Config
	logger     shared.ILogger
	metrics    IMetrics
	repo       dal.IRepo
	tokenStore dal.ITokenStore
	userAgent  shared.IUserAgent
	client     *http.Client
}

func NewBatchSender(cfg *shared.Config, logger shared.ILogger, metrics IMetrics,
	repo dal.IRepo, tokenStore dal.ITokenStore, userAgent shared.IUserAgent) IBatchSender {

	return &batchSender{
		cfg:        cfg,
		logger:     logger,
		metrics:    metrics,
		repo:       repo,
		tokenStore: tokenStore,
		userAgent:  userAgent,
		client:     &http.Client{Timeout: pushRequestTimeoutSec * time.Second},
	}
}

func (bs *batchSender) Send(notification *ConvertedNotification, targetUsers []string) *SendOutcome {

	var tokens []*dal.DeliveryToken
	if targetUsers == nil {
		tokens = bs.tokenStore.GetActive()
	} else {
		tokens = bs.tokenStore.GetForLedgerUsers(targetUsers)
	}
	outcome := &SendOutcome{Results: make([]*SendResult, 0, 1)}
	if len(tokens) == 0 {
		return outcome
	}

	// One endpoint can serve many clients; group so each gets a single
	// request with all of its tokens
	byEndpoint := make(map[string][]string)
	for _, token := range tokens {
		byEndpoint[token.EndpointUrl] = append(byEndpoint[token.EndpointUrl], token.Token)
	}

	maxTokens := bs.cfg.Relay.MaxTokensPerPush
	if maxTokens <= 0 {
		maxTokens = defaultMaxTokensPush
	}
	for endpointUrl, endpointTokens := range byEndpoint {
		for len(endpointTokens) != 0 {
			chunk := endpointTokens
			if len(chunk) > maxTokens {
				chunk = chunk[:maxTokens]
			}
			endpointTokens = endpointTokens[len(chunk):]
			res := bs.sendToEndpoint(notification, endpointUrl, chunk)
			outcome.Results = append(outcome.Results, res)
			if res.Success && len(res.SuccessfulTokens) != 0 {
				outcome.Success = true
			}
		}
	}
	return outcome
}

func (bs *batchSender) sendToEndpoint(notification *ConvertedNotification,
	endpointUrl string, tokens []string) *SendResult {

	res := &SendResult{EndpointUrl: endpointUrl}

	pushReq := dto.PushRequest{
		NotificationId: strconv.FormatUint(bs.repo.GetNextId(), 10),
		Title:          notification.Title,
		Body:           notification.Body,
		TargetUrl:      notification.TargetUrl,
		Tokens:         tokens,
	}

	attempts := bs.cfg.Relay.SendAttempts
	if attempts <= 0 {
		attempts = defaultSendAttempts
	}
	backoffMs := bs.cfg.Relay.SendBackoffMs
	if backoffMs <= 0 {
		backoffMs = defaultSendBackoffMs
	}
	baseDelay := time.Duration(backoffMs) * time.Millisecond

	var pushResp *dto.PushResponse
	err := retry.Do(
		func() error {
			var attemptErr error
			pushResp, attemptErr = bs.postPush(endpointUrl, &pushReq)
			return attemptErr
		},
		retry.Attempts(uint(attempts)),
		retry.Delay(baseDelay),
		retry.DelayType(func(n uint, err error, config *retry.Config) time.Duration {
			// Linear: attempt number times the base delay
			return time.Duration(n+1) * baseDelay
		}),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			bs.logger.Infof("Push to %s failed (attempt %d): %v", endpointUrl, n+1, err)
		}),
	)
	if err != nil {
		// Exhausted retries: assume tokens are still good but throttled, so
		// the same notification may be retried on a later run
		bs.logger.Warnf("Giving up on push to %s after %d attempts: %v", endpointUrl, attempts, err)
		res.Error = err.Error()
		res.RateLimitedTokens = tokens
		return res
	}

	res.Success = true
	res.SuccessfulTokens = pushResp.SuccessfulTokens
	res.InvalidTokens = pushResp.InvalidTokens
	res.RateLimitedTokens = pushResp.RateLimitedTokens
	bs.removeInvalidTokens(pushResp.InvalidTokens)
	return res
}

func (bs *batchSender) postPush(endpointUrl string, pushReq *dto.PushRequest) (*dto.PushResponse, error) {

	bodyBytes, err := json.Marshal(pushReq)
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequest("POST", endpointUrl, bytes.NewReader(bodyBytes))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	bs.userAgent.AddUserAgent(req)

	obs := bs.metrics.StartPushRequestOut("push_notification")
	resp, err := bs.client.Do(req)
	obs.Finish()
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("endpoint returned status %d", resp.StatusCode)
	}

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	var pushResp dto.PushResponse
	if err = json.Unmarshal(respBytes, &pushResp); err != nil {
		return nil, err
	}
	return &pushResp, nil
}

// removeInvalidTokens drops tokens the endpoint reported as dead, so we stop
// pushing to uninstalled clients.
func (bs *batchSender) removeInvalidTokens(invalidTokens []string) {
	for _, tokenVal := range invalidTokens {
		token, err := bs.tokenStore.GetByToken(tokenVal)
		if err != nil || token == nil {
			continue
		}
		if err = bs.tokenStore.Remove(token.Fid); err != nil {
			bs.logger.Warnf("Failed to remove invalid token for fid %d: %v", token.Fid, err)
			continue
		}
		bs.logger.Infof("Removed invalid token for fid %d (%s)", token.Fid, token.Handle)
		bs.metrics.InvalidTokenRemoved()
	}
}
