package logic

import (
	"html"
	"net/url"
	"regexp"
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"notify_relay/dto"
	"notify_relay/shared"
	"notify_relay/texts"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_converter.go -package mocks notify_relay/logic IConverter

// EventType is the closed set of source ledger activity kinds we relay.
type EventType int

const (
	EvUnknown EventType = iota
	EvVote
	EvReply
	EvMention
	EvFollow
	EvReblog
	EvTransfer
)

func ParseEventType(str string) EventType {
	switch str {
	case "vote":
		return EvVote
	case "reply", "reply_comment", "comment":
		return EvReply
	case "mention":
		return EvMention
	case "follow":
		return EvFollow
	case "reblog":
		return EvReblog
	case "transfer":
		return EvTransfer
	}
	return EvUnknown
}

func (et EventType) String() string {
	switch et {
	case EvVote:
		return "vote"
	case EvReply:
		return "reply"
	case EvMention:
		return "mention"
	case EvFollow:
		return "follow"
	case EvReblog:
		return "reblog"
	case EvTransfer:
		return "transfer"
	}
	return "unknown"
}

const (
	titleVote     = "New Vote"
	titleReply    = "New Comment"
	titleMention  = "You were mentioned"
	titleFollow   = "New Follower"
	titleReblog   = "Post Reblogged"
	titleTransfer = "Transfer Received"
)

const (
	excerptMaxLen    = 80
	minContentLen    = 10
	enrichProbVote   = 0.2
	enrichProbReblog = 0.5
)

// ConvertedNotification is one push-ready notification. Title, Body and
// TargetUrl are already truncated and validated against the delivery
// network's limits.
type ConvertedNotification struct {
	Type      EventType
	Title     string
	Body      string
	TargetUrl string
}

func (cn *ConvertedNotification) Signature() string {
	return shared.DedupSignature(cn.Type.String(), cn.Title, cn.Body, cn.TargetUrl)
}

func (cn *ConvertedNotification) SigHash() int64 {
	return shared.SigHash(cn.Signature())
}

// IConverter turns a raw ledger event into a push-ready notification.
// A nil result means the event is dropped (unknown type, or nothing useful
// to say about it).
type IConverter interface {
	Convert(event *dto.LedgerEvent, ledgerUser string) *ConvertedNotification
}

type converter struct {
	cfg       *shared.Config
	logger    shared.ILogger
	texts     texts.ITexts
	cache     IEnrichCache
	ledger    ILedgerClient
	idb       shared.IdBuilder
	randFloat func() float64
	sanitizer *bluemonday.Policy
}

var (
	reMdImage  = regexp.MustCompile(`!\[[^]]*]\([^)]*\)`)
	reMdLink   = regexp.MustCompile(`\[([^]]*)]\([^)]*\)`)
	reBareUrl  = regexp.MustCompile(`https?://\S+`)
	reMdSymbol = regexp.MustCompile("[*_~#>`|]+")
	reSpaces   = regexp.MustCompile(`\s+`)
	reMention  = regexp.MustCompile(`@[a-z0-9][a-z0-9.-]*`)
)

func firstMention(message string) string {
	return strings.TrimPrefix(reMention.FindString(message), "@")
}

func NewConverter(cfg *shared.Config, logger shared.ILogger, txt texts.ITexts,
	cache IEnrichCache, ledger ILedgerClient, randFloat func() float64) IConverter {

	return &converter{
		cfg:       cfg,
		logger:    logger,
		texts:     txt,
		cache:     cache,
		ledger:    ledger,
		idb:       shared.IdBuilder{Host: cfg.Host},
		randFloat: randFloat,
		sanitizer: bluemonday.StrictPolicy(),
	}
}

func (c *converter) Convert(event *dto.LedgerEvent, ledgerUser string) *ConvertedNotification {

	evType := ParseEventType(event.Type)
	if evType == EvUnknown {
		c.logger.Debugf("Dropping event %d of unhandled type %q for %s", event.Id, event.Type, ledgerUser)
		return nil
	}

	author, permlink := parseAuthorPermlink(event.Url)

	res := &ConvertedNotification{Type: evType}
	switch evType {
	case EvVote:
		res.Title = titleVote
		res.TargetUrl = c.contentUrl(author, permlink)
	case EvReply:
		res.Title = titleReply
		res.TargetUrl = c.contentUrl(author, permlink)
	case EvMention:
		res.Title = titleMention
		res.TargetUrl = c.contentUrl(author, permlink)
	case EvFollow:
		res.Title = titleFollow
		res.TargetUrl = c.profileUrl(author)
	case EvReblog:
		res.Title = titleReblog
		res.TargetUrl = c.contentUrl(author, permlink)
	case EvTransfer:
		res.Title = titleTransfer
		res.TargetUrl = c.idb.WalletUrl()
	}

	res.Body = c.buildBody(evType, event, author, permlink)
	if res.Body == "" {
		c.logger.Debugf("Dropping event %d for %s: empty body after conversion", event.Id, ledgerUser)
		return nil
	}

	res.Title = shared.TruncateWithEllipsis(res.Title, shared.MaxTitleLen)
	res.Body = shared.TruncateWithEllipsis(res.Body, shared.MaxBodyLen)
	if !isValidTargetUrl(res.TargetUrl) {
		res.TargetUrl = c.idb.SiteUrl()
	}
	return res
}

// buildBody decides between the enriched body (with a content excerpt fetched
// from the ledger) and the plain fallback built from the event's own message.
// Enrichment is probabilistic for high-volume event types so a popular post
// doesn't turn every vote into a content fetch.
func (c *converter) buildBody(evType EventType, event *dto.LedgerEvent, author, permlink string) string {

	fallback := c.fallbackBody(event)

	var snippetId string
	switch evType {
	case EvVote:
		snippetId = "body_vote_enriched.txt"
	case EvReply:
		snippetId = "body_comment_enriched.txt"
	case EvMention:
		snippetId = "body_mention_enriched.txt"
	case EvReblog:
		snippetId = "body_reblog_enriched.txt"
	default:
		// Follows and transfers carry no content to excerpt
		return fallback
	}

	var prob float64
	switch evType {
	case EvVote:
		prob = enrichProbVote
	case EvReblog:
		prob = enrichProbReblog
	default:
		prob = 1
	}
	if prob < 1 && c.randFloat() >= prob {
		return fallback
	}
	if author == "" || permlink == "" {
		return fallback
	}

	excerpt := c.getExcerpt(evType, author, permlink)
	if excerpt == "" {
		return fallback
	}
	// The acting user (voter, commenter) is named in the event message;
	// the URL only identifies the content
	actor := firstMention(event.Message)
	if actor == "" {
		actor = author
	}
	return c.texts.WithVals(snippetId, map[string]string{
		"author":  actor,
		"excerpt": excerpt,
	})
}

func (c *converter) fallbackBody(event *dto.LedgerEvent) string {
	msg := c.stripMarkup(event.Message)
	if msg == "" {
		return ""
	}
	return c.texts.WithVals("body_generic.txt", map[string]string{"message": msg})
}

// getExcerpt returns a short plain-text excerpt of the content an event
// refers to, going through the cache. Failed lookups are cached too.
func (c *converter) getExcerpt(evType EventType, author, permlink string) string {

	if entry := c.cache.Get(author, permlink); entry != nil {
		if entry.Missing {
			return ""
		}
		return entry.Excerpt
	}

	excerpt := c.fetchExcerpt(evType, author, permlink)
	if excerpt == "" {
		c.cache.SetMissing(author, permlink)
		return ""
	}
	c.cache.Set(author, permlink, excerpt)
	return excerpt
}

func (c *converter) fetchExcerpt(evType EventType, author, permlink string) string {

	post, err := c.ledger.GetContent(author, permlink)
	if err != nil {
		c.logger.Infof("Failed to fetch content @%s/%s: %v", author, permlink, err)
		post = nil
	}
	if post != nil {
		raw := post.Title
		if raw == "" {
			raw = post.Body
		}
		plain := c.stripMarkup(raw)
		if len(plain) >= minContentLen {
			return shared.TruncateWithEllipsis(plain, excerptMaxLen)
		}
	}

	// Second chance for the always-enriched types: scrape the rendered page
	if evType != EvReply && evType != EvMention {
		return ""
	}
	pageTitle, pageDesc, err := c.ledger.GetPageMetas(c.idb.PostUrl(author, permlink))
	if err != nil {
		c.logger.Infof("Failed to scrape page metas for @%s/%s: %v", author, permlink, err)
		return ""
	}
	raw := pageDesc
	if raw == "" {
		raw = pageTitle
	}
	plain := c.stripMarkup(raw)
	if len(plain) < minContentLen {
		return ""
	}
	return shared.TruncateWithEllipsis(plain, excerptMaxLen)
}

// stripMarkup reduces HTML and markdown source to plain text.
func (c *converter) stripMarkup(text string) string {
	res := c.sanitizer.Sanitize(text)
	res = html.UnescapeString(res)
	res = reMdImage.ReplaceAllString(res, "")
	res = reMdLink.ReplaceAllString(res, "$1")
	res = reBareUrl.ReplaceAllString(res, "")
	res = reMdSymbol.ReplaceAllString(res, "")
	res = reSpaces.ReplaceAllString(res, " ")
	return strings.TrimSpace(res)
}

func (c *converter) contentUrl(author, permlink string) string {
	if author == "" || permlink == "" {
		return c.idb.SiteUrl()
	}
	return c.idb.PostUrl(author, permlink)
}

func (c *converter) profileUrl(author string) string {
	if author == "" {
		return c.idb.SiteUrl()
	}
	return c.idb.ProfileUrl(author)
}

// parseAuthorPermlink unpacks an event's "@author/permlink" reference.
// Follow events only carry "@author"; permlink comes back empty then.
func parseAuthorPermlink(eventUrl string) (author, permlink string) {
	str := strings.TrimPrefix(eventUrl, "/")
	if !strings.HasPrefix(str, "@") {
		return "", ""
	}
	str = str[1:]
	slashIx := strings.IndexByte(str, '/')
	if slashIx == -1 {
		return str, ""
	}
	return str[:slashIx], str[slashIx+1:]
}

func isValidTargetUrl(rawUrl string) bool {
	if rawUrl == "" || len(rawUrl) > shared.MaxTargetUrlLen {
		return false
	}
	parsed, err := url.ParseRequestURI(rawUrl)
	if err != nil {
		return false
	}
	return parsed.IsAbs() && parsed.Host != ""
}
