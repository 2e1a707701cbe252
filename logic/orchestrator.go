package logic

import (
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"notify_relay/dal"
	"notify_relay/dto"
	"notify_relay/shared"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_relay.go -package mocks notify_relay/logic IRelay

const (
	defaultRelayIntervalSec = 60
	defaultRelayWorkers     = 5
	defaultSendDelayMs      = 500
	eventFetchLimit         = 100
)

const (
	relayModeContinuous = "continuous"
	relayModeScheduled  = "scheduled"
)

// IRelay is the polling pipeline: select users, fetch their ledger events,
// convert, dedup, deliver, log. Runs on its own schedule from the moment the
// service starts; RunNow triggers one continuous pass on demand.
type IRelay interface {
	RunNow() *dto.RunResult
}

type relay struct {
	cfg           *shared.Config
	logger        shared.ILogger
	metrics       IMetrics
	repo          dal.IRepo
	ledger        ILedgerClient
	converter     IConverter
	sender        IBatchSender
	cache         IEnrichCache
	contSelector  IUserSelector
	schedSelector IUserSelector
	sigWatermark  IWatermark
	idWatermark   IWatermark
}

func NewRelay(cfg *shared.Config, logger shared.ILogger, metrics IMetrics,
	repo dal.IRepo, ledger ILedgerClient, converter IConverter,
	sender IBatchSender, cache IEnrichCache) IRelay {

	res := relay{
		cfg:           cfg,
		logger:        logger,
		metrics:       metrics,
		repo:          repo,
		ledger:        ledger,
		converter:     converter,
		sender:        sender,
		cache:         cache,
		contSelector:  NewContinuousSelector(logger, repo),
		schedSelector: NewScheduledSelector(cfg, logger, repo),
		sigWatermark:  NewSignatureWatermark(logger, repo),
		idWatermark:   NewIdWatermark(logger, repo),
	}
	go res.relayLoop()
	return &res
}

func (r *relay) relayLoop() {

	intervalSec := r.cfg.Relay.IntervalSec
	if intervalSec <= 0 {
		intervalSec = defaultRelayIntervalSec
	}
	for {
		time.Sleep(time.Duration(intervalSec) * time.Second)
		r.safeRunAll()
	}
}

func (r *relay) safeRunAll() {

	defer func() {
		if rec := recover(); rec != nil {
			r.logger.Errorf("Relay pass panicked; recovered: %v", rec)
		}
	}()

	now := time.Now().UTC()
	r.runPass(relayModeContinuous, r.contSelector, r.sigWatermark, now)
	r.runPass(relayModeScheduled, r.schedSelector, r.idWatermark, now)
}

func (r *relay) RunNow() *dto.RunResult {
	return r.runPass(relayModeContinuous, r.contSelector, r.sigWatermark, time.Now().UTC())
}

// runPass processes the selected links through a small worker pool. Each
// link is one unit of work with its own error boundary: a failure for one
// user never stops the others.
func (r *relay) runPass(mode string, selector IUserSelector, watermark IWatermark,
	now time.Time) *dto.RunResult {

	r.metrics.RelayRunStarted(mode)
	links := selector.SelectUsers(now)
	res := &dto.RunResult{UsersProcessed: len(links)}
	if len(links) == 0 {
		return res
	}
	r.logger.Infof("Starting %s relay pass for %d user(s)", mode, len(links))

	workerCount := r.cfg.Relay.Workers
	if workerCount <= 0 {
		workerCount = defaultRelayWorkers
	}
	if workerCount > len(links) {
		workerCount = len(links)
	}

	var sent, failed int64
	linkCh := make(chan *dal.UserLink)
	var wg sync.WaitGroup
	for i := 0; i < workerCount; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for link := range linkCh {
				userSent, userFailed := r.safeProcessUser(link, watermark)
				atomic.AddInt64(&sent, int64(userSent))
				atomic.AddInt64(&failed, int64(userFailed))
			}
		}()
	}
	for _, link := range links {
		linkCh <- link
	}
	close(linkCh)
	wg.Wait()

	res.Sent = int(sent)
	res.Failed = int(failed)
	r.logger.Infof("Finished %s relay pass: %d sent, %d failed", mode, res.Sent, res.Failed)
	return res
}

func (r *relay) safeProcessUser(link *dal.UserLink, watermark IWatermark) (sent, failed int) {

	defer func() {
		if rec := recover(); rec != nil {
			r.logger.Errorf("Processing panicked for %s; recovered: %v", link.LedgerUser, rec)
		}
	}()
	return r.processUser(link, watermark)
}

func (r *relay) processUser(link *dal.UserLink, watermark IWatermark) (sent, failed int) {

	events, err := r.ledger.GetNotifications(link.LedgerUser, eventFetchLimit)
	if err != nil {
		r.logger.Warnf("Skipping %s this pass: %v", link.LedgerUser, err)
		return 0, 0
	}
	r.cache.Maintain()

	// Oldest first, so the batch cap favors the events a user has waited
	// longest for, and the id watermark only ever moves forward
	kept := make([]*dto.LedgerEvent, 0, len(events))
	for _, ev := range events {
		if ev.Timestamp.Before(link.LinkedAt) {
			continue
		}
		if !eventTypeEnabled(link, ParseEventType(ev.Type)) {
			continue
		}
		kept = append(kept, ev)
	}
	sort.Slice(kept, func(i, j int) bool {
		if !kept[i].Timestamp.Equal(kept[j].Timestamp) {
			return kept[i].Timestamp.Before(kept[j].Timestamp)
		}
		return kept[i].Id < kept[j].Id
	})

	maxPerBatch := link.MaxPerBatch
	if maxPerBatch <= 0 {
		maxPerBatch = defaultMaxPerBatch
	}
	sendDelayMs := r.cfg.Relay.SendDelayMs
	if sendDelayMs <= 0 {
		sendDelayMs = defaultSendDelayMs
	}
	sendDelay := time.Duration(sendDelayMs) * time.Millisecond

	for _, ev := range kept {
		if sent+failed >= maxPerBatch {
			break
		}
		converted := r.converter.Convert(ev, link.LedgerUser)
		if converted == nil {
			continue
		}
		if watermark.HasBeenProcessed(link, ev, converted) {
			continue
		}

		if sent+failed > 0 && sendDelay > 0 {
			time.Sleep(sendDelay)
		}
		outcome := r.sender.Send(converted, []string{link.LedgerUser})
		if outcome.Success {
			sent++
			r.metrics.NotificationSent()
		} else {
			failed++
			r.metrics.NotificationFailed()
			r.logger.Warnf("Failed to deliver %s notification to %s", converted.Type, link.LedgerUser)
		}

		r.writeLogEntry(link, converted, outcome)
		if err = watermark.MarkProcessed(link, ev); err != nil {
			r.logger.Errorf("Failed to advance watermark for %s: %v", link.LedgerUser, err)
		}
	}
	return
}

// writeLogEntry records the attempt. The entry is also the dedup record for
// continuous mode, so a failed write is an error, not a warning.
func (r *relay) writeLogEntry(link *dal.UserLink, converted *ConvertedNotification, outcome *SendOutcome) {

	entry := &dal.LogEntry{
		LedgerUser: link.LedgerUser,
		Fid:        link.Fid,
		EventType:  converted.Type.String(),
		Title:      converted.Title,
		Body:       converted.Body,
		TargetUrl:  converted.TargetUrl,
		SigHash:    converted.SigHash(),
		Signature:  converted.Signature(),
		Success:    outcome.Success,
		SentAt:     time.Now().UTC(),
	}
	for _, sendRes := range outcome.Results {
		if sendRes.Error != "" {
			entry.ErrorMsg = sendRes.Error
			break
		}
	}
	if err := r.repo.AddLogEntry(entry); err != nil {
		r.logger.Errorf("Failed to write delivery log entry for %s: %v", link.LedgerUser, err)
	}
}

func eventTypeEnabled(link *dal.UserLink, evType EventType) bool {
	switch evType {
	case EvVote:
		return link.VotesOn
	case EvReply:
		return link.RepliesOn
	case EvMention:
		return link.MentionsOn
	case EvFollow:
		return link.FollowsOn
	case EvReblog:
		return link.ReblogsOn
	case EvTransfer:
		return link.TransfersOn
	}
	return false
}
