package dal

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"notify_relay/shared"
	"strings"
	"sync"
	"time"

	"github.com/mattn/go-sqlite3"
)

const schemaVer = 1

//go:embed scripts/*
var scripts embed.FS

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_repo.go -package mocks notify_relay/dal IRepo

type IRepo interface {
	InitUpdateDb()
	GetNextId() uint64
	AddUserLinkIfNotExist(link *UserLink) (isNew bool, err error)
	GetUserLink(ledgerUser string) (*UserLink, error)
	GetUserLinkByFid(fid int64) (*UserLink, error)
	GetActiveUserLinks() ([]*UserLink, error)
	UpdateUserLinkPrefs(link *UserLink) error
	SetUserLinkActive(fid int64, active bool) error
	UpdateLastEventId(ledgerUser string, id int64) error
	UpdateLastSchedEventId(ledgerUser string, id int64) error
	AddLogEntry(entry *LogEntry) error
	HasLogEntry(ledgerUser string, sigHash int64, signature string) (bool, error)
}

type Repo struct {
	cfg    *shared.Config
	logger shared.ILogger
	db     *sql.DB
	muDb   sync.RWMutex
	muId   sync.Mutex
	nextId uint64
}

func NewRepo(cfg *shared.Config, logger shared.ILogger) *Repo {

	var err error
	var db *sql.DB

	// https://phiresky.github.io/blog/2020/sqlite-performance-tuning/
	// _synchronous=1 is "normal"
	cstr := "file:%s?cache=shared&mode=rwc&_journal_mode=WAL&_synchronous=1&_busy_timeout=5000"
	db, err = sql.Open("sqlite3", fmt.Sprintf(cstr, cfg.DbFile))
	if err != nil {
		logger.Errorf("Failed to open/create DB file: %s: %v", cfg.DbFile, err)
		panic(err)
	}

	repo := Repo{
		cfg:    cfg,
		logger: logger,
		db:     db,
		nextId: uint64(time.Now().UnixNano()),
	}

	return &repo
}

// GetNextId hands out process-unique ids for outbound notification sends.
func (repo *Repo) GetNextId() uint64 {
	repo.muId.Lock()
	res := repo.nextId + 1
	repo.nextId = res
	repo.muId.Unlock()
	return res
}

func (repo *Repo) InitUpdateDb() {

	dbVer := 0
	sysParamsExists := false
	var err error
	var rows *sql.Rows

	rows, err = repo.db.Query("SELECT name FROM sqlite_master WHERE type='table' AND name='sys_params'")
	if err != nil {
		repo.logger.Errorf("Failed to check if 'sys_params' table exists: %v", err)
		panic(err)
	}
	for rows.Next() {
		sysParamsExists = true
	}
	_ = rows.Close()
	if !sysParamsExists {
		repo.logger.Printf("Database appears to be empty; current schema version is %d", schemaVer)
	} else {
		row := repo.db.QueryRow("SELECT val FROM sys_params WHERE name='schema_ver'")
		if err = row.Scan(&dbVer); err != nil {
			repo.logger.Errorf("Failed to query schema version: %v", err)
			panic(err)
		}
		repo.logger.Printf("Database is at version %d; current schema version is %d", dbVer, schemaVer)
	}
	for i := dbVer; i < schemaVer; i += 1 {
		nextVer := i + 1
		fn := fmt.Sprintf("scripts/create-%02d.sql", nextVer)
		repo.logger.Printf("Running %s", fn)
		var sqlBytes []byte
		if sqlBytes, err = scripts.ReadFile(fn); err != nil {
			repo.logger.Errorf("Failed to read init script %s: %v", fn, err)
			panic(err)
		}
		sqlStr := string(sqlBytes)
		if _, err = repo.db.Exec(sqlStr); err != nil {
			repo.logger.Errorf("Failed to execute init script %s: %v", fn, err)
			panic(err)
		}
		_, err = repo.db.Exec("UPDATE sys_params SET val=? WHERE name='schema_ver'", nextVer)
		if err != nil {
			repo.logger.Errorf("Failed to update schema_ver to %d: %v", nextVer, err)
			panic(err)
		}
	}
}

// clampBatchSize keeps maxNotificationsPerBatch within [1, 20].
func clampBatchSize(val int) int {
	if val < 1 {
		return 1
	}
	if val > 20 {
		return 20
	}
	return val
}

func validateSchedule(link *UserLink) error {
	if !link.Scheduled {
		return nil
	}
	if link.SchedHour < 0 || link.SchedHour > 23 {
		return fmt.Errorf("schedule hour out of range: %d", link.SchedHour)
	}
	if link.SchedMinute < 0 || link.SchedMinute > 59 {
		return fmt.Errorf("schedule minute out of range: %d", link.SchedMinute)
	}
	return nil
}

func (repo *Repo) AddUserLinkIfNotExist(link *UserLink) (isNew bool, err error) {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	if err = validateSchedule(link); err != nil {
		return false, err
	}

	isNew = true
	_, err = repo.db.Exec(`INSERT INTO user_links
    	(ledger_user, fid, handle, active, linked_at, max_per_batch,
    	 votes_on, replies_on, mentions_on, follows_on, reblogs_on, transfers_on,
    	 scheduled, sched_hour, sched_minute, sched_tz, last_event_id, last_sched_event_id)
		VALUES(?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		link.LedgerUser, link.Fid, link.Handle, link.Active, link.LinkedAt, clampBatchSize(link.MaxPerBatch),
		link.VotesOn, link.RepliesOn, link.MentionsOn, link.FollowsOn, link.ReblogsOn, link.TransfersOn,
		link.Scheduled, link.SchedHour, link.SchedMinute, link.SchedTz, link.LastEventId, link.LastSchedEventId)
	if err == nil {
		return
	}
	if sqliteErr, ok := err.(sqlite3.Error); ok {
		// Duplicate key: link for this ledger user already exists
		if sqliteErr.Code == 19 && sqliteErr.ExtendedCode == 2067 {
			isNew = false
			err = nil
			return
		}
	}
	return
}

const userLinkCols = `id, ledger_user, fid, handle, active, linked_at, max_per_batch,
	votes_on, replies_on, mentions_on, follows_on, reblogs_on, transfers_on,
	scheduled, sched_hour, sched_minute, sched_tz, last_event_id, last_sched_event_id`

func scanUserLink(row interface{ Scan(...interface{}) error }) (*UserLink, error) {
	var res UserLink
	err := row.Scan(&res.Id, &res.LedgerUser, &res.Fid, &res.Handle, &res.Active, &res.LinkedAt,
		&res.MaxPerBatch, &res.VotesOn, &res.RepliesOn, &res.MentionsOn, &res.FollowsOn,
		&res.ReblogsOn, &res.TransfersOn, &res.Scheduled, &res.SchedHour, &res.SchedMinute,
		&res.SchedTz, &res.LastEventId, &res.LastSchedEventId)
	if err != nil {
		return nil, err
	}
	return &res, nil
}

func (repo *Repo) GetUserLink(ledgerUser string) (*UserLink, error) {

	repo.muDb.RLock()
	defer repo.muDb.RUnlock()

	row := repo.db.QueryRow(`SELECT `+userLinkCols+` FROM user_links WHERE ledger_user=?`, ledgerUser)
	res, err := scanUserLink(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return res, nil
}

func (repo *Repo) GetUserLinkByFid(fid int64) (*UserLink, error) {

	repo.muDb.RLock()
	defer repo.muDb.RUnlock()

	row := repo.db.QueryRow(`SELECT `+userLinkCols+` FROM user_links WHERE fid=?`, fid)
	res, err := scanUserLink(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return res, nil
}

func (repo *Repo) GetActiveUserLinks() ([]*UserLink, error) {

	repo.muDb.RLock()
	defer repo.muDb.RUnlock()

	rows, err := repo.db.Query(`SELECT ` + userLinkCols + ` FROM user_links WHERE active=1`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	res := make([]*UserLink, 0)
	for rows.Next() {
		link, scanErr := scanUserLink(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		res = append(res, link)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return res, nil
}

func (repo *Repo) UpdateUserLinkPrefs(link *UserLink) error {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	if err := validateSchedule(link); err != nil {
		return err
	}

	_, err := repo.db.Exec(`UPDATE user_links SET max_per_batch=?,
		votes_on=?, replies_on=?, mentions_on=?, follows_on=?, reblogs_on=?, transfers_on=?,
		scheduled=?, sched_hour=?, sched_minute=?, sched_tz=?
		WHERE ledger_user=?`,
		clampBatchSize(link.MaxPerBatch),
		link.VotesOn, link.RepliesOn, link.MentionsOn, link.FollowsOn, link.ReblogsOn, link.TransfersOn,
		link.Scheduled, link.SchedHour, link.SchedMinute, link.SchedTz,
		link.LedgerUser)
	return err
}

func (repo *Repo) SetUserLinkActive(fid int64, active bool) error {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	_, err := repo.db.Exec(`UPDATE user_links SET active=? WHERE fid=?`, active, fid)
	return err
}

func (repo *Repo) UpdateLastEventId(ledgerUser string, id int64) error {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	_, err := repo.db.Exec(`UPDATE user_links SET last_event_id=? WHERE ledger_user=?`, id, ledgerUser)
	return err
}

func (repo *Repo) UpdateLastSchedEventId(ledgerUser string, id int64) error {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	_, err := repo.db.Exec(`UPDATE user_links SET last_sched_event_id=? WHERE ledger_user=?`, id, ledgerUser)
	return err
}

func (repo *Repo) AddLogEntry(entry *LogEntry) error {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	_, err := repo.db.Exec(`INSERT INTO delivery_log
    	(ledger_user, fid, event_type, title, body, target_url, sig_hash, signature, success, error_msg, sent_at)
		VALUES(?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		entry.LedgerUser, entry.Fid, entry.EventType, entry.Title, entry.Body, entry.TargetUrl,
		entry.SigHash, entry.Signature, entry.Success, entry.ErrorMsg, entry.SentAt)
	return err
}

func (repo *Repo) HasLogEntry(ledgerUser string, sigHash int64, signature string) (bool, error) {

	repo.muDb.RLock()
	defer repo.muDb.RUnlock()

	// sig_hash narrows via the index; the full signature settles collisions
	row := repo.db.QueryRow(`SELECT COUNT(*) FROM delivery_log
		WHERE ledger_user=? AND sig_hash=? AND signature=?`, ledgerUser, sigHash, signature)
	var count int
	if err := row.Scan(&count); err != nil {
		return false, err
	}
	return count != 0, nil
}

// ----- ITokenStore: durable backend -----

func (repo *Repo) AddOrUpdate(fid int64, handle, token, endpointUrl, ledgerUser string) error {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	now := time.Now().UTC()
	_, err := repo.db.Exec(`INSERT INTO delivery_tokens
    	(fid, handle, ledger_user, token, endpoint_url, is_active, created_at, updated_at)
		VALUES(?, ?, ?, ?, ?, 1, ?, ?)
		ON CONFLICT(fid) DO UPDATE SET handle=excluded.handle, ledger_user=excluded.ledger_user,
			token=excluded.token, endpoint_url=excluded.endpoint_url, is_active=1, updated_at=excluded.updated_at`,
		fid, handle, ledgerUser, token, endpointUrl, now, now)
	return err
}

func (repo *Repo) Remove(fid int64) error {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	_, err := repo.db.Exec(`DELETE FROM delivery_tokens WHERE fid=?`, fid)
	return err
}

func (repo *Repo) Disable(fid int64) error {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	_, err := repo.db.Exec(`UPDATE delivery_tokens SET is_active=0, updated_at=? WHERE fid=?`,
		time.Now().UTC(), fid)
	return err
}

func (repo *Repo) Enable(fid int64, token, endpointUrl string) error {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	now := time.Now().UTC()
	_, err := repo.db.Exec(`INSERT INTO delivery_tokens
    	(fid, handle, ledger_user, token, endpoint_url, is_active, created_at, updated_at)
		VALUES(?, '', '', ?, ?, 1, ?, ?)
		ON CONFLICT(fid) DO UPDATE SET token=excluded.token, endpoint_url=excluded.endpoint_url,
			is_active=1, updated_at=excluded.updated_at`,
		fid, token, endpointUrl, now, now)
	return err
}

const tokenCols = `fid, handle, ledger_user, token, endpoint_url, is_active, created_at, updated_at`

func scanToken(row interface{ Scan(...interface{}) error }) (*DeliveryToken, error) {
	var res DeliveryToken
	err := row.Scan(&res.Fid, &res.Handle, &res.LedgerUser, &res.Token, &res.EndpointUrl,
		&res.IsActive, &res.CreatedAt, &res.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &res, nil
}

func (repo *Repo) GetActive() []*DeliveryToken {
	return repo.queryTokens(`SELECT `+tokenCols+` FROM delivery_tokens WHERE is_active=1`)
}

func (repo *Repo) GetAll() []*DeliveryToken {
	return repo.queryTokens(`SELECT ` + tokenCols + ` FROM delivery_tokens`)
}

func (repo *Repo) GetForLedgerUsers(users []string) []*DeliveryToken {
	if len(users) == 0 {
		return make([]*DeliveryToken, 0)
	}
	placeholders := strings.TrimRight(strings.Repeat("?,", len(users)), ",")
	args := make([]interface{}, len(users))
	for i, u := range users {
		args[i] = u
	}
	query := `SELECT ` + tokenCols + ` FROM delivery_tokens WHERE is_active=1 AND ledger_user IN (` +
		placeholders + `)`
	return repo.queryTokens(query, args...)
}

func (repo *Repo) queryTokens(query string, args ...interface{}) []*DeliveryToken {

	repo.muDb.RLock()
	defer repo.muDb.RUnlock()

	res := make([]*DeliveryToken, 0)
	rows, err := repo.db.Query(query, args...)
	if err != nil {
		repo.logger.Errorf("Failed to query delivery tokens: %v", err)
		return res
	}
	defer rows.Close()
	for rows.Next() {
		token, scanErr := scanToken(rows)
		if scanErr != nil {
			repo.logger.Errorf("Failed to scan delivery token: %v", scanErr)
			return make([]*DeliveryToken, 0)
		}
		res = append(res, token)
	}
	if err = rows.Err(); err != nil {
		repo.logger.Errorf("Failed to read delivery tokens: %v", err)
		return make([]*DeliveryToken, 0)
	}
	return res
}

func (repo *Repo) GetByFid(fid int64) (*DeliveryToken, error) {

	repo.muDb.RLock()
	defer repo.muDb.RUnlock()

	row := repo.db.QueryRow(`SELECT `+tokenCols+` FROM delivery_tokens WHERE fid=?`, fid)
	res, err := scanToken(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return res, nil
}

func (repo *Repo) GetByToken(token string) (*DeliveryToken, error) {

	repo.muDb.RLock()
	defer repo.muDb.RUnlock()

	row := repo.db.QueryRow(`SELECT `+tokenCols+` FROM delivery_tokens WHERE token=?`, token)
	res, err := scanToken(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return res, nil
}
