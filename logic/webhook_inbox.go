package logic

import (
	"fmt"
	"time"

	"notify_relay/dal"
	"notify_relay/dto"
	"notify_relay/shared"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_webhook_inbox.go -package mocks notify_relay/logic IWebhookInbox

const (
	eventAppAdded       = "app_added"
	eventAppRemoved     = "app_removed"
	eventNotifsEnabled  = "notifications_enabled"
	eventNotifsDisabled = "notifications_disabled"
)

const defaultMaxPerBatch = 5

// IWebhookInbox handles one verified lifecycle event from the delivery
// network: token registration, removal, and notification toggles.
type IWebhookInbox interface {
	// HandleEvent verifies and dispatches one envelope. A non-empty reqProblem
	// describes a client error; err is an internal failure.
	HandleEvent(env *dto.WebhookEnvelope) (reqProblem string, err error)
}

type webhookInbox struct {
	cfg        *shared.Config
	logger     shared.ILogger
	metrics    IMetrics
	verifier   IWebhookVerifier
	repo       dal.IRepo
	tokenStore dal.ITokenStore
}

func NewWebhookInbox(cfg *shared.Config, logger shared.ILogger, metrics IMetrics,
	verifier IWebhookVerifier, repo dal.IRepo, tokenStore dal.ITokenStore) IWebhookInbox {

	return &webhookInbox{
		cfg:        cfg,
		logger:     logger,
		metrics:    metrics,
		verifier:   verifier,
		repo:       repo,
		tokenStore: tokenStore,
	}
}

func (wi *webhookInbox) HandleEvent(env *dto.WebhookEnvelope) (reqProblem string, err error) {

	reqProblem = ""
	err = nil

	header, payload, ok := wi.verifier.Verify(env)
	if !ok {
		wi.metrics.WebhookEvent("rejected")
		reqProblem = "Invalid signature envelope"
		return
	}

	wi.logger.Infof("Webhook event %q from fid %d (%s)", payload.Event, header.Fid, header.Username)

	switch payload.Event {
	case eventAppAdded:
		reqProblem, err = wi.handleAppAdded(header, payload)
	case eventAppRemoved:
		err = wi.handleAppRemoved(header)
	case eventNotifsEnabled:
		reqProblem, err = wi.handleNotifsEnabled(header, payload)
	case eventNotifsDisabled:
		err = wi.tokenStore.Disable(header.Fid)
	default:
		wi.metrics.WebhookEvent("unknown")
		reqProblem = fmt.Sprintf("Unknown event %q", payload.Event)
		return
	}
	if reqProblem == "" && err == nil {
		wi.metrics.WebhookEvent(payload.Event)
		wi.metrics.ActiveTokenCount(len(wi.tokenStore.GetActive()))
	}
	return
}

// handleAppAdded stores the fresh token and, for a fid we've never seen,
// seeds a link with default preferences. The delivery-network handle doubles
// as the ledger account name until the user explicitly re-links.
func (wi *webhookInbox) handleAppAdded(header *dto.WebhookHeader, payload *dto.WebhookPayload) (string, error) {

	if payload.NotificationDetails == nil {
		// Client added without enabling notifications; nothing to store yet
		return "", nil
	}
	details := payload.NotificationDetails
	if details.Token == "" || details.Url == "" {
		return "Incomplete notification details", nil
	}

	ledgerUser := header.Username
	if err := wi.tokenStore.AddOrUpdate(header.Fid, header.Username, details.Token, details.Url, ledgerUser); err != nil {
		return "", err
	}

	if ledgerUser == "" {
		wi.logger.Infof("No username in webhook header for fid %d; not seeding a user link", header.Fid)
		return "", nil
	}
	link := &dal.UserLink{
		LedgerUser:  ledgerUser,
		Fid:         header.Fid,
		Handle:      header.Username,
		Active:      true,
		LinkedAt:    time.Now().UTC(),
		MaxPerBatch: defaultMaxPerBatch,
		VotesOn:     true,
		RepliesOn:   true,
		MentionsOn:  true,
		FollowsOn:   true,
		ReblogsOn:   true,
		TransfersOn: true,
	}
	isNew, err := wi.repo.AddUserLinkIfNotExist(link)
	if err != nil {
		return "", err
	}
	if isNew {
		wi.logger.Infof("Seeded default link for %s (fid %d)", ledgerUser, header.Fid)
	} else if err = wi.repo.SetUserLinkActive(header.Fid, true); err != nil {
		return "", err
	}
	return "", nil
}

func (wi *webhookInbox) handleAppRemoved(header *dto.WebhookHeader) error {
	if err := wi.tokenStore.Remove(header.Fid); err != nil {
		return err
	}
	return wi.repo.SetUserLinkActive(header.Fid, false)
}

func (wi *webhookInbox) handleNotifsEnabled(header *dto.WebhookHeader, payload *dto.WebhookPayload) (string, error) {
	if payload.NotificationDetails == nil || payload.NotificationDetails.Token == "" ||
		payload.NotificationDetails.Url == "" {
		return "Missing notification details", nil
	}
	details := payload.NotificationDetails
	return "", wi.tokenStore.Enable(header.Fid, details.Token, details.Url)
}
