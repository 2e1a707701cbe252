package dal

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_token_store.go -package mocks notify_relay/dal ITokenStore

// ITokenStore is the registry of delivery-network push credentials, keyed by
// fid. Two backends exist: the sqlite repo (production) and an in-memory map
// (development only). Both must behave identically.
//
// Collection reads never fail into the caller: on a store error they log and
// return an empty slice, so a broken query degrades to "no users processed
// this run" instead of aborting the batch job.
type ITokenStore interface {
	AddOrUpdate(fid int64, handle, token, endpointUrl, ledgerUser string) error
	Remove(fid int64) error
	Disable(fid int64) error
	Enable(fid int64, token, endpointUrl string) error
	GetActive() []*DeliveryToken
	GetForLedgerUsers(users []string) []*DeliveryToken
	GetByFid(fid int64) (*DeliveryToken, error)
	GetByToken(token string) (*DeliveryToken, error)
	GetAll() []*DeliveryToken
}
