package dal

import (
	"time"
)

// UserLink binds a source-ledger account to a delivery-network user.
// Never hard-deleted, only deactivated, so the delivery log's dedup history
// survives a re-link.
type UserLink struct {
	Id               int
	LedgerUser       string // account name on the source ledger
	Fid              int64  // numeric user id on the delivery network
	Handle           string // handle on the delivery network
	Active           bool
	LinkedAt         time.Time
	MaxPerBatch      int // 1..20
	VotesOn          bool
	RepliesOn        bool
	MentionsOn       bool
	FollowsOn        bool
	ReblogsOn        bool
	TransfersOn      bool
	Scheduled        bool // false: continuous polling; true: fixed daily delivery time
	SchedHour        int  // 0..23, UTC-relative to SchedTz
	SchedMinute      int  // 0..59
	SchedTz          string
	LastEventId      int64 // provider-assigned id of newest event seen by continuous runs
	LastSchedEventId int64 // high-water mark for the scheduled mode
}

// DeliveryToken is the single live push credential of one fid.
type DeliveryToken struct {
	Fid         int64
	Handle      string
	LedgerUser  string
	Token       string
	EndpointUrl string
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// LogEntry records one delivery attempt, success or failure. Append-only; the
// (LedgerUser, SigHash) pair doubles as the dedup oracle.
type LogEntry struct {
	Id         int64
	LedgerUser string
	Fid        int64
	EventType  string
	Title      string
	Body       string
	TargetUrl  string
	SigHash    int64
	Signature  string
	Success    bool
	ErrorMsg   string
	SentAt     time.Time
}
