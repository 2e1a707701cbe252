package server

import (
	"net/http"

	"notify_relay/dal"
	"notify_relay/dto"
	"notify_relay/logic"
	"notify_relay/shared"
)

type apiHandlerGroup struct {
	cfg        *shared.Config
	logger     shared.ILogger
	metrics    logic.IMetrics
	repo       dal.IRepo
	tokenStore dal.ITokenStore
	relay      logic.IRelay
}

func NewApiHandlerGroup(
	cfg *shared.Config,
	logger shared.ILogger,
	metrics logic.IMetrics,
	repo dal.IRepo,
	tokenStore dal.ITokenStore,
	relay logic.IRelay,
) IHandlerGroup {
	res := apiHandlerGroup{
		cfg:        cfg,
		logger:     logger,
		metrics:    metrics,
		repo:       repo,
		tokenStore: tokenStore,
		relay:      relay,
	}
	return &res
}

func (hg *apiHandlerGroup) Prefix() string {
	return "/api"
}

func (hg *apiHandlerGroup) GroupDefs() []handlerDef {
	return []handlerDef{
		{"GET", "/links", func(w http.ResponseWriter, r *http.Request) { hg.getLinks(w, r) }},
		{"GET", "/tokens", func(w http.ResponseWriter, r *http.Request) { hg.getTokens(w, r) }},
		{"POST", "/run", func(w http.ResponseWriter, r *http.Request) { hg.postRun(w, r) }},
	}
}

func (hg *apiHandlerGroup) AuthMW() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return hg.authMW(next)
	}
}

func (hg *apiHandlerGroup) authMW(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var apiKey = r.Header.Get(apiKeyHeader)
		found := false
		for _, key := range hg.cfg.Secrets.ApiKeys {
			if apiKey == key {
				found = true
			}
		}
		if !found {
			keyPart := apiKey
			if len(apiKey) > 4 {
				keyPart = apiKey[:4] + "..."
			}
			hg.logger.Warnf("API request with missing or invalid key '%s': %s", keyPart, r.URL.Path)
			writeErrorResponse(w, badApiKeyStr, http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (hg *apiHandlerGroup) getLinks(w http.ResponseWriter, r *http.Request) {

	obs := hg.metrics.StartWebRequestIn("get_api_links")
	defer obs.Finish()

	links, err := hg.repo.GetActiveUserLinks()
	if err != nil {
		hg.logger.Errorf("Failed to retrieve user links: %v", err)
		writeErrorResponse(w, internalErrorStr, http.StatusInternalServerError)
		return
	}
	resp := make([]*dto.LinkInfo, 0, len(links))
	for _, link := range links {
		resp = append(resp, &dto.LinkInfo{
			LedgerUser:  link.LedgerUser,
			Fid:         link.Fid,
			Handle:      link.Handle,
			Active:      link.Active,
			LinkedAt:    link.LinkedAt,
			MaxPerBatch: link.MaxPerBatch,
			Scheduled:   link.Scheduled,
		})
	}
	writeJsonResponse(hg.logger, w, resp)
}

func (hg *apiHandlerGroup) getTokens(w http.ResponseWriter, r *http.Request) {

	obs := hg.metrics.StartWebRequestIn("get_api_tokens")
	defer obs.Finish()

	tokens := hg.tokenStore.GetAll()
	resp := make([]*dto.TokenInfo, 0, len(tokens))
	for _, token := range tokens {
		// Token values stay server-side
		resp = append(resp, &dto.TokenInfo{
			Fid:         token.Fid,
			Handle:      token.Handle,
			LedgerUser:  token.LedgerUser,
			EndpointUrl: token.EndpointUrl,
			IsActive:    token.IsActive,
			UpdatedAt:   token.UpdatedAt,
		})
	}
	writeJsonResponse(hg.logger, w, resp)
}

func (hg *apiHandlerGroup) postRun(w http.ResponseWriter, r *http.Request) {

	obs := hg.metrics.StartWebRequestIn("post_api_run")
	defer obs.Finish()

	hg.logger.Info("POST /api/run: triggering relay pass")
	res := hg.relay.RunNow()
	writeJsonResponse(hg.logger, w, res)
}
