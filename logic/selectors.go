package logic

import (
	"time"

	"notify_relay/dal"
	"notify_relay/dto"
	"notify_relay/shared"
)

const defaultSchedWindowMin = 5

// IUserSelector picks the links a relay pass should process.
type IUserSelector interface {
	SelectUsers(now time.Time) []*dal.UserLink
}

// IWatermark decides whether an event has already been delivered to a user,
// and records progress after a send. The two relay modes track this
// differently: continuous runs consult the delivery log by signature, while
// scheduled runs keep a monotonic event id per link.
type IWatermark interface {
	HasBeenProcessed(link *dal.UserLink, event *dto.LedgerEvent, converted *ConvertedNotification) bool
	MarkProcessed(link *dal.UserLink, event *dto.LedgerEvent) error
}

// === Continuous mode ===

type continuousSelector struct {
	logger shared.ILogger
	repo   dal.IRepo
}

func NewContinuousSelector(logger shared.ILogger, repo dal.IRepo) IUserSelector {
	return &continuousSelector{logger: logger, repo: repo}
}

func (cs *continuousSelector) SelectUsers(now time.Time) []*dal.UserLink {
	links, err := cs.repo.GetActiveUserLinks()
	if err != nil {
		cs.logger.Errorf("Failed to retrieve active user links: %v", err)
		return nil
	}
	res := make([]*dal.UserLink, 0, len(links))
	for _, link := range links {
		if !link.Scheduled {
			res = append(res, link)
		}
	}
	return res
}

// signatureWatermark answers from the delivery log. A log that cannot be read
// errs on the side of re-delivery: a duplicate notification beats a silently
// swallowed one.
type signatureWatermark struct {
	logger shared.ILogger
	repo   dal.IRepo
}

func NewSignatureWatermark(logger shared.ILogger, repo dal.IRepo) IWatermark {
	return &signatureWatermark{logger: logger, repo: repo}
}

func (sw *signatureWatermark) HasBeenProcessed(link *dal.UserLink, event *dto.LedgerEvent,
	converted *ConvertedNotification) bool {

	sig := converted.Signature()
	seen, err := sw.repo.HasLogEntry(link.LedgerUser, shared.SigHash(sig), sig)
	if err != nil {
		sw.logger.Errorf("Failed to check delivery log for %s; treating event as unprocessed: %v",
			link.LedgerUser, err)
		return false
	}
	return seen
}

func (sw *signatureWatermark) MarkProcessed(link *dal.UserLink, event *dto.LedgerEvent) error {
	// The delivery log entry written after the send is the record
	if event.Id > link.LastEventId {
		link.LastEventId = event.Id
		return sw.repo.UpdateLastEventId(link.LedgerUser, event.Id)
	}
	return nil
}

// === Scheduled mode ===

type scheduledSelector struct {
	cfg    *shared.Config
	logger shared.ILogger
	repo   dal.IRepo
}

func NewScheduledSelector(cfg *shared.Config, logger shared.ILogger, repo dal.IRepo) IUserSelector {
	return &scheduledSelector{cfg: cfg, logger: logger, repo: repo}
}

func (ss *scheduledSelector) SelectUsers(now time.Time) []*dal.UserLink {
	links, err := ss.repo.GetActiveUserLinks()
	if err != nil {
		ss.logger.Errorf("Failed to retrieve active user links: %v", err)
		return nil
	}
	windowMin := ss.cfg.Relay.SchedWindowMin
	if windowMin <= 0 {
		windowMin = defaultSchedWindowMin
	}
	res := make([]*dal.UserLink, 0)
	for _, link := range links {
		if !link.Scheduled {
			continue
		}
		if withinScheduleWindow(link, now, windowMin) {
			res = append(res, link)
		}
	}
	return res
}

// withinScheduleWindow is true when now falls within the window around the
// link's preferred daily delivery time, in the link's own time zone. The
// distance wraps around midnight.
func withinScheduleWindow(link *dal.UserLink, now time.Time, windowMin int) bool {
	loc, err := time.LoadLocation(link.SchedTz)
	if err != nil {
		loc = time.UTC
	}
	nowLocal := now.In(loc)
	nowMins := nowLocal.Hour()*60 + nowLocal.Minute()
	schedMins := link.SchedHour*60 + link.SchedMinute
	dist := nowMins - schedMins
	if dist < 0 {
		dist = -dist
	}
	if wrapped := 24*60 - dist; wrapped < dist {
		dist = wrapped
	}
	return dist <= windowMin
}

// idWatermark tracks a per-link high-water mark over provider-assigned event
// ids. Works because scheduled runs deliver in ascending id order. Events
// without an id cannot move the mark; those fall back to the delivery log so
// they don't repeat on every pass inside the window.
type idWatermark struct {
	logger shared.ILogger
	repo   dal.IRepo
	bySig  IWatermark
}

func NewIdWatermark(logger shared.ILogger, repo dal.IRepo) IWatermark {
	return &idWatermark{
		logger: logger,
		repo:   repo,
		bySig:  NewSignatureWatermark(logger, repo),
	}
}

func (iw *idWatermark) HasBeenProcessed(link *dal.UserLink, event *dto.LedgerEvent,
	converted *ConvertedNotification) bool {

	if event.Id == 0 {
		return iw.bySig.HasBeenProcessed(link, event, converted)
	}
	return event.Id <= link.LastSchedEventId
}

func (iw *idWatermark) MarkProcessed(link *dal.UserLink, event *dto.LedgerEvent) error {
	if event.Id <= link.LastSchedEventId {
		return nil
	}
	link.LastSchedEventId = event.Id
	return iw.repo.UpdateLastSchedEventId(link.LedgerUser, event.Id)
}
