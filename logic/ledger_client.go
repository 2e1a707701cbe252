package logic

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"notify_relay/dto"
	"notify_relay/shared"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_ledger_client.go -package mocks notify_relay/logic ILedgerClient

const ledgerRequestTimeoutSec = 10
const ledgerDateFormat = "2006-01-02T15:04:05"

// ILedgerClient talks to the source ledger's public JSON-RPC API.
type ILedgerClient interface {
	// GetNotifications retrieves the most recent activity events for an account,
	// newest first, as the ledger returns them.
	GetNotifications(account string, limit int) ([]*dto.LedgerEvent, error)
	// GetContent retrieves a single post or comment by author and permlink.
	// Returns nil without error if the ledger has no such content.
	GetContent(author, permlink string) (*dto.LedgerPost, error)
	// GetPageMetas fetches a rendered page and extracts its title and
	// description meta tags. Second-chance enrichment when the RPC API
	// doesn't return the content.
	GetPageMetas(pageUrl string) (title, description string, err error)
}

type ledgerClient struct {
	cfg       *shared.Config
	logger    shared.ILogger
	userAgent shared.IUserAgent
	client    *http.Client
	idSeq     func() int
}

func NewLedgerClient(cfg *shared.Config, logger shared.ILogger, userAgent shared.IUserAgent) ILedgerClient {
	nextId := 0
	return &ledgerClient{
		cfg:       cfg,
		logger:    logger,
		userAgent: userAgent,
		client:    &http.Client{Timeout: ledgerRequestTimeoutSec * time.Second},
		idSeq: func() int {
			nextId++
			return nextId
		},
	}
}

func (lc *ledgerClient) rpcCall(method string, params interface{}, result interface{}) error {

	rpcReq := dto.RpcRequest{
		JsonRpc: "2.0",
		Method:  method,
		Params:  params,
		Id:      lc.idSeq(),
	}
	bodyBytes, err := json.Marshal(&rpcReq)
	if err != nil {
		return err
	}

	req, err := http.NewRequest("POST", lc.cfg.LedgerApiUrl, bytes.NewReader(bodyBytes))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	lc.userAgent.AddUserAgent(req)

	resp, err := lc.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("ledger API returned status %d for method %s", resp.StatusCode, method)
	}

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	var rpcResp dto.RpcResponse
	if err = json.Unmarshal(respBytes, &rpcResp); err != nil {
		return err
	}
	if rpcResp.Error != nil {
		return fmt.Errorf("ledger API error %d: %s", rpcResp.Error.Code, rpcResp.Error.Message)
	}
	if result != nil && rpcResp.Result != nil {
		if err = json.Unmarshal(rpcResp.Result, result); err != nil {
			return err
		}
	}
	return nil
}

func (lc *ledgerClient) GetNotifications(account string, limit int) ([]*dto.LedgerEvent, error) {

	params := map[string]interface{}{
		"account": account,
		"limit":   limit,
	}
	var events []*dto.LedgerEvent
	if err := lc.rpcCall("bridge.account_notifications", params, &events); err != nil {
		lc.logger.Warnf("Failed to fetch notifications for %s: %v", account, err)
		return nil, err
	}

	// Ledger dates come without a zone designator; they are UTC
	for _, ev := range events {
		ts, err := time.Parse(ledgerDateFormat, ev.Date)
		if err != nil {
			lc.logger.Warnf("Unparsable event date %q for %s; using zero time", ev.Date, account)
			continue
		}
		ev.Timestamp = ts.UTC()
	}
	return events, nil
}

func (lc *ledgerClient) GetContent(author, permlink string) (*dto.LedgerPost, error) {

	params := map[string]interface{}{
		"author":   author,
		"permlink": permlink,
	}
	var post dto.LedgerPost
	if err := lc.rpcCall("bridge.get_post", params, &post); err != nil {
		return nil, err
	}
	if post.Author == "" && post.Body == "" {
		return nil, nil
	}
	return &post, nil
}

func (lc *ledgerClient) GetPageMetas(pageUrl string) (title, description string, err error) {

	title = ""
	description = ""
	err = nil

	var req *http.Request
	if req, err = http.NewRequest("GET", pageUrl, nil); err != nil {
		return
	}
	lc.userAgent.AddUserAgent(req)

	var resp *http.Response
	if resp, err = lc.client.Do(req); err != nil {
		return
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		err = fmt.Errorf("got status %d for %s", resp.StatusCode, pageUrl)
		return
	}

	var doc *goquery.Document
	if doc, err = goquery.NewDocumentFromReader(resp.Body); err != nil {
		return
	}
	title = strings.TrimSpace(doc.Find("title").First().Text())
	doc.Find("meta").EachWithBreak(func(i int, s *goquery.Selection) bool {
		name, _ := s.Attr("name")
		prop, _ := s.Attr("property")
		if name == "description" || prop == "og:description" {
			description, _ = s.Attr("content")
			description = strings.TrimSpace(description)
			return false
		}
		return true
	})
	if ogTitle, ok := doc.Find("meta[property='og:title']").First().Attr("content"); ok && title == "" {
		title = strings.TrimSpace(ogTitle)
	}
	return
}
