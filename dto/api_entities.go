package dto

import "time"

type LinkInfo struct {
	LedgerUser  string    `json:"ledgerUser"`
	Fid         int64     `json:"fid"`
	Handle      string    `json:"handle"`
	Active      bool      `json:"active"`
	LinkedAt    time.Time `json:"linkedAt"`
	MaxPerBatch int       `json:"maxPerBatch"`
	Scheduled   bool      `json:"scheduled"`
}

type TokenInfo struct {
	Fid         int64     `json:"fid"`
	Handle      string    `json:"handle"`
	LedgerUser  string    `json:"ledgerUser"`
	EndpointUrl string    `json:"endpointUrl"`
	IsActive    bool      `json:"isActive"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type RunResult struct {
	UsersProcessed int `json:"usersProcessed"`
	Sent           int `json:"sent"`
	Failed         int `json:"failed"`
}
