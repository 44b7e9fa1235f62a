package httpserver

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	campaignservice "clipops/contexts/campaign-ops/campaign-service"
	campaignerrors "clipops/contexts/campaign-ops/campaign-service/domain/errors"
	campaignhttp "clipops/contexts/campaign-ops/campaign-service/transport/http"
	reviewservice "clipops/contexts/campaign-ops/review-service"
	"clipops/contexts/campaign-ops/review-service/application/queries"
	reviewerrors "clipops/contexts/campaign-ops/review-service/domain/errors"
	reviewhttp "clipops/contexts/campaign-ops/review-service/transport/http"
	contentservice "clipops/contexts/engagement/content-service"
	contentdomain "clipops/contexts/engagement/content-service/domain"
	contenthttp "clipops/contexts/engagement/content-service/transport/http"
	payoutengine "clipops/contexts/finance-core/payout-engine"
	payouterrors "clipops/contexts/finance-core/payout-engine/domain/errors"
	payouthttp "clipops/contexts/finance-core/payout-engine/transport/http"
	"clipops/internal/platform/webhooks"

	httpSwagger "github.com/swaggo/http-swagger"
	_ "clipops/internal/platform/httpserver/docs"
)

const maxWebhookBody = 1 << 20

type Server struct {
	mux       *http.ServeMux
	logger    *slog.Logger
	addr      string
	review    reviewservice.Module
	payouts   payoutengine.Module
	campaigns campaignservice.Module
	content   contentservice.Module
	verifier  webhooks.Verifier
	webhooks  *webhooks.Dispatcher
	swagger   bool
}

func New(
	review reviewservice.Module,
	payouts payoutengine.Module,
	campaigns campaignservice.Module,
	content contentservice.Module,
	verifier webhooks.Verifier,
	dispatcher *webhooks.Dispatcher,
	logger *slog.Logger,
	addr string,
	swagger bool,
) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	if addr == "" {
		addr = ":8080"
	}

	s := &Server{
		mux:       http.NewServeMux(),
		logger:    logger,
		addr:      addr,
		review:    review,
		payouts:   payouts,
		campaigns: campaigns,
		content:   content,
		verifier:  verifier,
		webhooks:  dispatcher,
		swagger:   swagger,
	}
	s.registerRoutes()
	return s
}

func (s *Server) Start() error {
	s.logger.Info("http server starting",
		"event", "http_server_starting",
		"module", "internal/platform/httpserver",
		"layer", "platform",
		"addr", s.addr,
	)
	return http.ListenAndServe(s.addr, s.mux)
}

// Handler exposes the mux, mainly for httptest.
func (s *Server) Handler() http.Handler {
	return s.mux
}

func (s *Server) registerRoutes() {
	if s.swagger {
		s.mux.Handle("/swagger/", httpSwagger.Handler(
			httpSwagger.URL("/swagger/doc.json"),
		))
	}

	s.mux.HandleFunc("GET /v1/submissions", s.handleListSubmissions)
	s.mux.HandleFunc("GET /v1/submissions/stats", s.handleSubmissionStats)
	s.mux.HandleFunc("GET /v1/submissions/{submission_id}", s.handleGetSubmission)
	s.mux.HandleFunc("POST /v1/submissions/{submission_id}/approve", s.handleApproveSubmission)
	s.mux.HandleFunc("POST /v1/submissions/{submission_id}/reject", s.handleRejectSubmission)
	s.mux.HandleFunc("POST /v1/sweeps/run", s.handleRunSweep)

	s.mux.HandleFunc("POST /v1/payouts/quote", s.handleQuotePayout)

	s.mux.HandleFunc("POST /v1/campaigns", s.handleCreateCampaign)
	s.mux.HandleFunc("GET /v1/campaigns", s.handleListCampaigns)
	s.mux.HandleFunc("GET /v1/campaigns/{campaign_id}", s.handleGetCampaign)
	s.mux.HandleFunc("PATCH /v1/campaigns/{campaign_id}", s.handleUpdateCampaign)
	s.mux.HandleFunc("POST /v1/promo-codes", s.handleCreatePromoCode)
	s.mux.HandleFunc("POST /v1/plans", s.handleCreatePlan)

	s.mux.HandleFunc("POST /v1/content/generate", s.handleGenerateContent)
	s.mux.HandleFunc("GET /v1/content", s.handleListContent)
	s.mux.HandleFunc("GET /v1/content/templates", s.handleListTemplates)

	s.mux.HandleFunc("POST /webhooks/platform", s.handlePlatformWebhook)
}

func (s *Server) handleListSubmissions(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	listQuery := queries.ListSubmissionsQuery{
		CampaignID:  query.Get("campaign_id"),
		SubmitterID: query.Get("submitter_id"),
		Status:      query.Get("status"),
		Platform:    query.Get("platform"),
		Cursor:      query.Get("cursor"),
	}
	if limitRaw := query.Get("limit"); limitRaw != "" {
		limit, err := strconv.Atoi(limitRaw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid_limit", "limit must be an integer")
			return
		}
		listQuery.Limit = limit
	}

	resp, err := s.review.Handler.ListSubmissionsHandler(r.Context(), listQuery)
	if err != nil {
		writeReviewDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleSubmissionStats(w http.ResponseWriter, r *http.Request) {
	resp, err := s.review.Handler.StatsHandler(r.Context(), r.URL.Query().Get("campaign_id"))
	if err != nil {
		writeReviewDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGetSubmission(w http.ResponseWriter, r *http.Request) {
	resp, err := s.review.Handler.GetSubmissionHandler(r.Context(), r.PathValue("submission_id"))
	if err != nil {
		writeReviewDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleApproveSubmission(w http.ResponseWriter, r *http.Request) {
	var req reviewhttp.ApproveSubmissionRequest
	if r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
			return
		}
	}

	resp, err := s.review.Handler.ApproveSubmissionHandler(r.Context(), r.PathValue("submission_id"), req)
	if err != nil {
		writeReviewDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleRejectSubmission(w http.ResponseWriter, r *http.Request) {
	var req reviewhttp.RejectSubmissionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	resp, err := s.review.Handler.RejectSubmissionHandler(r.Context(), r.PathValue("submission_id"), req)
	if err != nil {
		writeReviewDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleRunSweep(w http.ResponseWriter, r *http.Request) {
	if s.review.Sweeper == nil {
		writeError(w, http.StatusServiceUnavailable, "sweeper_disabled", "auto-approve sweeper is not configured")
		return
	}
	result, err := s.review.Sweeper.RunOnce(r.Context())
	if err != nil {
		writeReviewDomainError(w, err)
		return
	}

	resp := reviewhttp.SweepResponse{
		SweepID:     result.SweepID,
		CampaignID:  result.CampaignID,
		Approved:    result.Approved,
		Skipped:     result.Skipped,
		TotalPayout: result.TotalPayout,
	}
	for _, sweepErr := range result.Errors {
		resp.Errors = append(resp.Errors, reviewhttp.SweepErrorDTO{
			SubmissionID: sweepErr.SubmissionID,
			Message:      sweepErr.Message,
		})
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleQuotePayout(w http.ResponseWriter, r *http.Request) {
	var req payouthttp.QuoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	resp, err := s.payouts.Handler.QuoteHandler(req)
	if err != nil {
		writePayoutDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleCreateCampaign(w http.ResponseWriter, r *http.Request) {
	var req campaignhttp.CreateCampaignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	resp, err := s.campaigns.Handler.CreateCampaignHandler(r.Context(), req)
	if err != nil {
		writeCampaignDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleListCampaigns(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	limit := 0
	if limitRaw := query.Get("limit"); limitRaw != "" {
		parsed, err := strconv.Atoi(limitRaw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid_limit", "limit must be an integer")
			return
		}
		limit = parsed
	}

	resp, err := s.campaigns.Handler.ListCampaignsHandler(r.Context(), query.Get("cursor"), limit)
	if err != nil {
		writeCampaignDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGetCampaign(w http.ResponseWriter, r *http.Request) {
	resp, err := s.campaigns.Handler.GetCampaignHandler(r.Context(), r.PathValue("campaign_id"))
	if err != nil {
		writeCampaignDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleUpdateCampaign(w http.ResponseWriter, r *http.Request) {
	var req campaignhttp.UpdateCampaignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	resp, err := s.campaigns.Handler.UpdateCampaignHandler(r.Context(), r.PathValue("campaign_id"), req)
	if err != nil {
		writeCampaignDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleCreatePromoCode(w http.ResponseWriter, r *http.Request) {
	var req campaignhttp.CreatePromoCodeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	resp, err := s.campaigns.Handler.CreatePromoCodeHandler(r.Context(), req)
	if err != nil {
		writeCampaignDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleCreatePlan(w http.ResponseWriter, r *http.Request) {
	var req campaignhttp.CreatePlanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	resp, err := s.campaigns.Handler.CreatePlanHandler(r.Context(), req)
	if err != nil {
		writeCampaignDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleGenerateContent(w http.ResponseWriter, r *http.Request) {
	var req contenthttp.GenerateContentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	resp, err := s.content.Handler.GenerateContentHandler(r.Context(), req)
	if err != nil {
		writeContentDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleListContent(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if limitRaw := r.URL.Query().Get("limit"); limitRaw != "" {
		parsed, err := strconv.Atoi(limitRaw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid_limit", "limit must be an integer")
			return
		}
		limit = parsed
	}

	resp, err := s.content.Handler.ListContentHandler(r.Context(), limit)
	if err != nil {
		writeContentDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleListTemplates(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.content.Handler.ListTemplatesHandler(r.Context()))
}

func (s *Server) handlePlatformWebhook(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxWebhookBody))
	if err != nil {
		writeError(w, http.StatusBadRequest, "unreadable_body", "could not read request body")
		return
	}

	if err := s.verifier.Verify(body, r.Header.Get("X-Platform-Signature")); err != nil {
		s.logger.Warn("webhook rejected",
			"event", "webhook_rejected",
			"module", "internal/platform/httpserver",
			"layer", "platform",
			"error", err.Error(),
		)
		writeError(w, http.StatusUnauthorized, "invalid_signature", "webhook signature verification failed")
		return
	}

	if err := s.webhooks.Dispatch(body); err != nil {
		if errors.Is(err, webhooks.ErrBadPayload) {
			writeError(w, http.StatusBadRequest, "invalid_payload", err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, "handler_failed", "webhook handler failed")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func writeReviewDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, reviewerrors.ErrSubmissionNotFound):
		writeError(w, http.StatusNotFound, "submission_not_found", err.Error())
	case errors.Is(err, reviewerrors.ErrStateConflict):
		writeError(w, http.StatusConflict, "state_conflict", err.Error())
	case errors.Is(err, reviewerrors.ErrSweepInProgress):
		writeError(w, http.StatusConflict, "sweep_in_progress", err.Error())
	case errors.Is(err, reviewerrors.ErrEmptyRejectionReason),
		errors.Is(err, reviewerrors.ErrNegativeViewCount),
		errors.Is(err, reviewerrors.ErrInvalidReviewInput):
		writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
	case errors.Is(err, payouterrors.ErrInvalidRateConfig):
		writeError(w, http.StatusUnprocessableEntity, "invalid_rate_config", err.Error())
	case errors.Is(err, reviewerrors.ErrRepository):
		writeError(w, http.StatusBadGateway, "platform_unavailable", err.Error())
	default:
		writeError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func writePayoutDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, payouterrors.ErrInvalidRateConfig):
		writeError(w, http.StatusUnprocessableEntity, "invalid_rate_config", err.Error())
	case errors.Is(err, payouterrors.ErrNegativeViewCount):
		writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
	default:
		writeError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func writeCampaignDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, campaignerrors.ErrCampaignNotFound):
		writeError(w, http.StatusNotFound, "campaign_not_found", err.Error())
	case errors.Is(err, campaignerrors.ErrInvalidCampaignData),
		errors.Is(err, campaignerrors.ErrInvalidPromoCode),
		errors.Is(err, campaignerrors.ErrInvalidPricingPlan):
		writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
	case errors.Is(err, campaignerrors.ErrPlatform):
		writeError(w, http.StatusBadGateway, "platform_unavailable", err.Error())
	default:
		writeError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func writeContentDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, contentdomain.ErrUnknownTemplate):
		writeError(w, http.StatusNotFound, "unknown_template", err.Error())
	case errors.Is(err, contentdomain.ErrMissingField):
		writeError(w, http.StatusBadRequest, "missing_field", err.Error())
	default:
		writeError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func writeError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, reviewhttp.ErrorResponse{
		Code:    code,
		Message: message,
	})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
