package logic

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"notify_relay/shared"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_registry_client.go -package mocks notify_relay/logic IRegistryClient

const registryRequestTimeoutSec = 10

// IRegistryClient looks up signer keys in the delivery network's on-chain
// key registry. Used to cross-check the key a webhook envelope claims.
type IRegistryClient interface {
	// GetKeyForFid returns the registered signer key for an account id, as a
	// 0x-prefixed hex string. Empty string if the registry knows no key.
	GetKeyForFid(fid int64) (string, error)
}

type registryClient struct {
	cfg       *shared.Config
	logger    shared.ILogger
	userAgent shared.IUserAgent
	client    *http.Client
}

func NewRegistryClient(cfg *shared.Config, logger shared.ILogger, userAgent shared.IUserAgent) IRegistryClient {
	return &registryClient{
		cfg:       cfg,
		logger:    logger,
		userAgent: userAgent,
		client:    &http.Client{Timeout: registryRequestTimeoutSec * time.Second},
	}
}

type registryKeyResponse struct {
	Fid int64  `json:"fid"`
	Key string `json:"key"`
}

func (rc *registryClient) GetKeyForFid(fid int64) (string, error) {

	url := fmt.Sprintf("%s/v1/signerKey?fid=%d", strings.TrimSuffix(rc.cfg.RegistryApiUrl, "/"), fid)
	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		return "", err
	}
	rc.userAgent.AddUserAgent(req)

	resp, err := rc.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode == http.StatusNotFound {
		return "", nil
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("registry returned status %d for fid %d", resp.StatusCode, fid)
	}

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	var keyResp registryKeyResponse
	if err = json.Unmarshal(bodyBytes, &keyResp); err != nil {
		return "", err
	}
	return keyResp.Key, nil
}
