package dal

import (
	"notify_relay/shared"
	"sync"
	"time"
)

// memTokenStore is the development-only token backend. It keeps everything in
// a process-local map: every registration is lost on restart. Selecting it is
// an explicit config choice and it announces itself loudly at startup so it
// can never be mistaken for a working production deployment.
type memTokenStore struct {
	logger shared.ILogger
	mu     sync.RWMutex
	byFid  map[int64]*DeliveryToken
}

func NewMemTokenStore(logger shared.ILogger) ITokenStore {
	logger.Warnf("Using in-memory token store; tokens will NOT survive a restart")
	return &memTokenStore{
		logger: logger,
		byFid:  make(map[int64]*DeliveryToken),
	}
}

func (ts *memTokenStore) AddOrUpdate(fid int64, handle, token, endpointUrl, ledgerUser string) error {

	ts.mu.Lock()
	defer ts.mu.Unlock()

	now := time.Now().UTC()
	existing := ts.byFid[fid]
	createdAt := now
	if existing != nil {
		createdAt = existing.CreatedAt
	}
	ts.byFid[fid] = &DeliveryToken{
		Fid:         fid,
		Handle:      handle,
		LedgerUser:  ledgerUser,
		Token:       token,
		EndpointUrl: endpointUrl,
		IsActive:    true,
		CreatedAt:   createdAt,
		UpdatedAt:   now,
	}
	return nil
}

func (ts *memTokenStore) Remove(fid int64) error {

	ts.mu.Lock()
	defer ts.mu.Unlock()

	delete(ts.byFid, fid)
	return nil
}

func (ts *memTokenStore) Disable(fid int64) error {

	ts.mu.Lock()
	defer ts.mu.Unlock()

	if token := ts.byFid[fid]; token != nil {
		token.IsActive = false
		token.UpdatedAt = time.Now().UTC()
	}
	return nil
}

func (ts *memTokenStore) Enable(fid int64, token, endpointUrl string) error {

	ts.mu.Lock()
	defer ts.mu.Unlock()

	now := time.Now().UTC()
	existing := ts.byFid[fid]
	if existing == nil {
		ts.byFid[fid] = &DeliveryToken{
			Fid:         fid,
			Token:       token,
			EndpointUrl: endpointUrl,
			IsActive:    true,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		return nil
	}
	existing.Token = token
	existing.EndpointUrl = endpointUrl
	existing.IsActive = true
	existing.UpdatedAt = now
	return nil
}

func (ts *memTokenStore) GetActive() []*DeliveryToken {

	ts.mu.RLock()
	defer ts.mu.RUnlock()

	res := make([]*DeliveryToken, 0)
	for _, token := range ts.byFid {
		if token.IsActive {
			res = append(res, copyToken(token))
		}
	}
	return res
}

func (ts *memTokenStore) GetForLedgerUsers(users []string) []*DeliveryToken {

	ts.mu.RLock()
	defer ts.mu.RUnlock()

	wanted := make(map[string]struct{}, len(users))
	for _, u := range users {
		wanted[u] = struct{}{}
	}
	res := make([]*DeliveryToken, 0)
	for _, token := range ts.byFid {
		if !token.IsActive {
			continue
		}
		if _, ok := wanted[token.LedgerUser]; ok {
			res = append(res, copyToken(token))
		}
	}
	return res
}

func (ts *memTokenStore) GetByFid(fid int64) (*DeliveryToken, error) {

	ts.mu.RLock()
	defer ts.mu.RUnlock()

	token := ts.byFid[fid]
	if token == nil {
		return nil, nil
	}
	return copyToken(token), nil
}

func (ts *memTokenStore) GetByToken(tokenVal string) (*DeliveryToken, error) {

	ts.mu.RLock()
	defer ts.mu.RUnlock()

	for _, token := range ts.byFid {
		if token.Token == tokenVal {
			return copyToken(token), nil
		}
	}
	return nil, nil
}

func (ts *memTokenStore) GetAll() []*DeliveryToken {

	ts.mu.RLock()
	defer ts.mu.RUnlock()

	res := make([]*DeliveryToken, 0, len(ts.byFid))
	for _, token := range ts.byFid {
		res = append(res, copyToken(token))
	}
	return res
}

func copyToken(token *DeliveryToken) *DeliveryToken {
	cp := *token
	return &cp
}
