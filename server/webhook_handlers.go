package server

import (
	"encoding/json"
	"net/http"

	"notify_relay/dto"
	"notify_relay/logic"
	"notify_relay/shared"
)

// webhookHandlerGroup receives the delivery network's lifecycle events.
// Authentication happens inside: envelopes carry their own signature.
type webhookHandlerGroup struct {
	cfg     *shared.Config
	logger  shared.ILogger
	metrics logic.IMetrics
	inbox   logic.IWebhookInbox
}

func NewWebhookHandlerGroup(
	cfg *shared.Config,
	logger shared.ILogger,
	metrics logic.IMetrics,
	inbox logic.IWebhookInbox,
) IHandlerGroup {
	res := webhookHandlerGroup{
		cfg:     cfg,
		logger:  logger,
		metrics: metrics,
		inbox:   inbox,
	}
	return &res
}

func (hg *webhookHandlerGroup) Prefix() string {
	return "/webhook"
}

func (hg *webhookHandlerGroup) GroupDefs() []handlerDef {
	return []handlerDef{
		{"POST", "", func(w http.ResponseWriter, r *http.Request) { hg.postWebhook(w, r) }},
	}
}

func (hg *webhookHandlerGroup) AuthMW() func(next http.Handler) http.Handler {
	return emptyMW
}

func (hg *webhookHandlerGroup) postWebhook(w http.ResponseWriter, r *http.Request) {

	obs := hg.metrics.StartWebRequestIn("post_webhook")
	defer obs.Finish()

	body := readBody(hg.logger, w, r)
	if body == nil {
		return
	}
	var env dto.WebhookEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		hg.logger.Infof("Invalid JSON in webhook request body")
		writeErrorResponse(w, badRequestStr, http.StatusBadRequest)
		return
	}

	reqProblem, err := hg.inbox.HandleEvent(&env)
	if err != nil {
		hg.logger.Errorf("Failed to handle webhook event: %v", err)
		writeErrorResponse(w, internalErrorStr, http.StatusInternalServerError)
		return
	}
	if reqProblem != "" {
		hg.logger.Infof("Webhook request rejected: %s", reqProblem)
		writeErrorResponse(w, reqProblem, http.StatusUnauthorized)
		return
	}
	writeJsonResponse(hg.logger, w, map[string]bool{"success": true})
}
