package logic

import (
	"bytes"
	"crypto/ed25519"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	secpecdsa "github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"
	"golang.org/x/crypto/sha3"

	"notify_relay/dto"
	"notify_relay/shared"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_webhook_verifier.go -package mocks notify_relay/logic IWebhookVerifier

const (
	defaultMaxTimestampAgeSec = 300
	keyTypeCustody            = "custody"
	keyTypeApp                = "app"
	keyTypeEd25519            = "ed25519"
)

// IWebhookVerifier authenticates inbound lifecycle envelopes. The signed
// message is the raw base64url header and payload joined by a dot, so
// verification happens before any JSON deserialization of the payload
// is trusted.
type IWebhookVerifier interface {
	Verify(env *dto.WebhookEnvelope) (header *dto.WebhookHeader, payload *dto.WebhookPayload, ok bool)
}

type webhookVerifier struct {
	cfg      *shared.Config
	logger   shared.ILogger
	registry IRegistryClient
	clock    func() time.Time
}

func NewWebhookVerifier(cfg *shared.Config, logger shared.ILogger, registry IRegistryClient) IWebhookVerifier {
	return NewWebhookVerifierWithClock(cfg, logger, registry, time.Now)
}

func NewWebhookVerifierWithClock(cfg *shared.Config, logger shared.ILogger, registry IRegistryClient,
	clock func() time.Time) IWebhookVerifier {

	return &webhookVerifier{
		cfg:      cfg,
		logger:   logger,
		registry: registry,
		clock:    clock,
	}
}

func (wv *webhookVerifier) Verify(env *dto.WebhookEnvelope) (*dto.WebhookHeader, *dto.WebhookPayload, bool) {

	if env.Header == "" || env.Payload == "" || env.Signature == "" {
		wv.logger.Info("Rejecting webhook envelope: missing member")
		return nil, nil, false
	}

	headerBytes, err := decodeB64Url(env.Header)
	if err != nil {
		wv.logger.Infof("Rejecting webhook envelope: bad header encoding: %v", err)
		return nil, nil, false
	}
	var header dto.WebhookHeader
	if err = json.Unmarshal(headerBytes, &header); err != nil {
		wv.logger.Infof("Rejecting webhook envelope: bad header JSON: %v", err)
		return nil, nil, false
	}
	if header.Fid <= 0 || header.Type == "" || header.Key == "" {
		wv.logger.Info("Rejecting webhook envelope: incomplete header")
		return nil, nil, false
	}

	if !wv.checkTimestamp(header.Timestamp) {
		wv.logger.Infof("Rejecting webhook envelope for fid %d: stale timestamp", header.Fid)
		return nil, nil, false
	}

	sigBytes, err := decodeB64Url(env.Signature)
	if err != nil {
		wv.logger.Infof("Rejecting webhook envelope for fid %d: bad signature encoding: %v", header.Fid, err)
		return nil, nil, false
	}
	message := []byte(env.Header + "." + env.Payload)

	var sigOk bool
	switch header.Type {
	case keyTypeCustody, keyTypeApp:
		sigOk = verifyEcdsaRecovery(message, sigBytes, header.Key)
	case keyTypeEd25519:
		sigOk = verifyEd25519(message, sigBytes, header.Key)
	default:
		wv.logger.Infof("Rejecting webhook envelope for fid %d: unknown key type %q", header.Fid, header.Type)
		return nil, nil, false
	}
	if !sigOk {
		wv.logger.Infof("Rejecting webhook envelope for fid %d: signature verification failed", header.Fid)
		return nil, nil, false
	}

	if wv.cfg.Webhook.CheckRegistryKey && !wv.checkRegistryKey(header.Fid, header.Key) {
		return nil, nil, false
	}

	payloadBytes, err := decodeB64Url(env.Payload)
	if err != nil {
		wv.logger.Infof("Rejecting webhook envelope for fid %d: bad payload encoding: %v", header.Fid, err)
		return nil, nil, false
	}
	var payload dto.WebhookPayload
	if err = json.Unmarshal(payloadBytes, &payload); err != nil {
		wv.logger.Infof("Rejecting webhook envelope for fid %d: bad payload JSON: %v", header.Fid, err)
		return nil, nil, false
	}
	if payload.Event == "" {
		wv.logger.Infof("Rejecting webhook envelope for fid %d: payload has no event", header.Fid)
		return nil, nil, false
	}

	return &header, &payload, true
}

// checkTimestamp rejects replayed envelopes. A zero timestamp is allowed:
// not all senders include one.
func (wv *webhookVerifier) checkTimestamp(timestamp int64) bool {
	if timestamp == 0 {
		return true
	}
	maxAge := wv.cfg.Webhook.MaxTimestampAgeSec
	if maxAge <= 0 {
		maxAge = defaultMaxTimestampAgeSec
	}
	age := wv.clock().Unix() - timestamp
	return age <= int64(maxAge)
}

// checkRegistryKey cross-checks the claimed key against the on-chain
// registry. Fails closed: a registry we cannot reach rejects the envelope.
func (wv *webhookVerifier) checkRegistryKey(fid int64, claimedKey string) bool {
	registeredKey, err := wv.registry.GetKeyForFid(fid)
	if err != nil {
		wv.logger.Warnf("Rejecting webhook envelope for fid %d: registry lookup failed: %v", fid, err)
		return false
	}
	if registeredKey == "" || normalizeHex(registeredKey) != normalizeHex(claimedKey) {
		wv.logger.Infof("Rejecting webhook envelope for fid %d: key not in registry", fid)
		return false
	}
	return true
}

func decodeB64Url(str string) ([]byte, error) {
	res, err := base64.RawURLEncoding.DecodeString(str)
	if err == nil {
		return res, nil
	}
	return base64.URLEncoding.DecodeString(str)
}

func normalizeHex(str string) string {
	return strings.TrimPrefix(strings.ToLower(str), "0x")
}

// verifyEcdsaRecovery checks a recoverable secp256k1 signature over the
// prefixed Keccak hash of the message, then compares the recovered key
// against the declared one. The declared key may be a 20-byte address or a
// compressed or uncompressed public key.
func verifyEcdsaRecovery(message, sigBytes []byte, declaredKey string) bool {

	if len(sigBytes) != 65 {
		return false
	}
	declaredAddr := declaredAddress(declaredKey)
	if declaredAddr == nil {
		return false
	}

	msgHash := keccak256(append([]byte("\x19Ethereum Signed Message:\n"+strconv.Itoa(len(message))), message...))
	for _, compactSig := range candidateSigs(sigBytes) {
		pubKey, _, err := secpecdsa.RecoverCompact(compactSig, msgHash)
		if err != nil {
			continue
		}
		if bytes.Equal(pubKeyToAddress(pubKey), declaredAddr) {
			return true
		}
	}
	return false
}

// candidateSigs enumerates the plausible layouts of a 65-byte signature.
// Recovery-code-first is what RecoverCompact wants; wallet-style signatures
// put the recovery byte last, sometimes without the 27 offset. A stray byte
// value can make both readings look valid, so all of them are tried.
func candidateSigs(sigBytes []byte) [][]byte {

	var res [][]byte
	first := sigBytes[0]
	if first >= 27 && first <= 34 {
		res = append(res, sigBytes)
	}
	last := sigBytes[64]
	if last <= 1 || (last >= 27 && last <= 30) {
		v := last
		if v <= 1 {
			v += 27
		}
		rotated := make([]byte, 65)
		rotated[0] = v
		copy(rotated[1:], sigBytes[:64])
		res = append(res, rotated)
	}
	return res
}

func declaredAddress(declaredKey string) []byte {
	keyBytes, err := hex.DecodeString(normalizeHex(declaredKey))
	if err != nil {
		return nil
	}
	switch len(keyBytes) {
	case 20:
		return keyBytes
	case 33, 65:
		declaredPub, err := secp256k1.ParsePubKey(keyBytes)
		if err != nil {
			return nil
		}
		return pubKeyToAddress(declaredPub)
	}
	return nil
}

func verifyEd25519(message, sigBytes []byte, declaredKey string) bool {

	if len(sigBytes) != ed25519.SignatureSize {
		return false
	}
	keyBytes, err := hex.DecodeString(normalizeHex(declaredKey))
	if err != nil || len(keyBytes) != ed25519.PublicKeySize {
		return false
	}
	return ed25519.Verify(keyBytes, message, sigBytes)
}

func keccak256(data []byte) []byte {
	hasher := sha3.NewLegacyKeccak256()
	hasher.Write(data)
	return hasher.Sum(nil)
}

func pubKeyToAddress(pubKey *secp256k1.PublicKey) []byte {
	uncompressed := pubKey.SerializeUncompressed()
	return keccak256(uncompressed[1:])[12:]
}
