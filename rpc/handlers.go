package rpc

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/neptune-labs/neptune-intents-hub/huberr"
	"github.com/neptune-labs/neptune-intents-hub/router"
	"github.com/shopspring/decimal"
)

// HubHandler exposes the routing service over JSON HTTP.
type HubHandler struct {
	svc *router.Service
}

// NewHubHandler wraps the routing service for HTTP serving.
func NewHubHandler(svc *router.Service) *HubHandler {
	return &HubHandler{svc: svc}
}

// Mount registers the API routes on the router.
func (h *HubHandler) Mount(mux chi.Router) {
	mux.Route("/v1", func(r chi.Router) {
		r.Get("/tokens", h.handleTokens)
		r.Get("/tokens/{symbol}/chains", h.handleTokenChains)
		r.Post("/quote", h.handleQuote)
		r.Post("/confirm", h.handleConfirm)
		r.Post("/deposit", h.handleDeposit)
	})
}

// quoteRequest is the wire form of a quote request. Amount is a
// decimal string, wallet addresses are keyed by chain name.
type quoteRequest struct {
	SessionID          string            `json:"sessionId"`
	TokenIn            string            `json:"tokenIn"`
	TokenOut           string            `json:"tokenOut"`
	Amount             string            `json:"amount"`
	AccountID          string            `json:"accountId"`
	ConnectedChains    []string          `json:"connectedChains,omitempty"`
	WalletAddresses    map[string]string `json:"walletAddresses,omitempty"`
	DestinationAddress string            `json:"destinationAddress,omitempty"`
	DestinationChain   string            `json:"destinationChain,omitempty"`
	SourceChain        string            `json:"sourceChain,omitempty"`
}

type sessionRequest struct {
	SessionID string `json:"sessionId"`
}

type depositRequest struct {
	SessionID string `json:"sessionId"`
	TxHash    string `json:"txHash"`
}

type errorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func (h *HubHandler) handleTokens(w http.ResponseWriter, r *http.Request) {
	snap, err := h.svc.Tokens(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"tokens":  snap.Tokens(),
		"symbols": snap.Symbols(),
	})
}

func (h *HubHandler) handleTokenChains(w http.ResponseWriter, r *http.Request) {
	symbol := chi.URLParam(r, "symbol")
	snap, err := h.svc.Tokens(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	chains := snap.ChainsFor(symbol)
	if len(chains) == 0 {
		writeError(w, huberr.Newf(huberr.CodeTokenNotFound, "token %q not found", symbol))
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"symbol": strings.ToUpper(symbol),
		"chains": chains,
	})
}

func (h *HubHandler) handleQuote(w http.ResponseWriter, r *http.Request) {
	var req quoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid JSON body")
		return
	}

	amount, err := decimal.NewFromString(strings.TrimSpace(req.Amount))
	if err != nil {
		writeBadRequest(w, "amount must be a decimal string")
		return
	}
	if !amount.IsPositive() {
		writeBadRequest(w, "amount must be positive")
		return
	}

	q, err := h.svc.QuoteSwap(r.Context(), router.RouteRequest{
		SessionID:          req.SessionID,
		TokenIn:            req.TokenIn,
		TokenOut:           req.TokenOut,
		Amount:             amount,
		AccountID:          req.AccountID,
		ConnectedChains:    req.ConnectedChains,
		WalletAddresses:    req.WalletAddresses,
		DestinationAddress: req.DestinationAddress,
		DestinationChain:   req.DestinationChain,
		SourceChain:        req.SourceChain,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, q)
}

func (h *HubHandler) handleConfirm(w http.ResponseWriter, r *http.Request) {
	var req sessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid JSON body")
		return
	}
	plan, err := h.svc.ConfirmSwap(r.Context(), req.SessionID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, plan)
}

func (h *HubHandler) handleDeposit(w http.ResponseWriter, r *http.Request) {
	var req depositRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid JSON body")
		return
	}
	if strings.TrimSpace(req.TxHash) == "" {
		writeBadRequest(w, "txHash is required")
		return
	}
	if err := h.svc.NotifyDeposit(r.Context(), req.SessionID, req.TxHash); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "submitted"})
}

// statusFor maps failure classes to HTTP status codes. Upstream
// outages map to 502, everything caller triggered maps to 4xx.
func statusFor(code huberr.Code) int {
	switch code {
	case huberr.CodeTokenNotFound, huberr.CodeNoPendingQuote:
		return http.StatusNotFound
	case huberr.CodeSourceWalletRequired,
		huberr.CodeInvalidDestinationAddr,
		huberr.CodeDestinationAddrRequired,
		huberr.CodeChainAddressMismatch,
		huberr.CodeMissingRecipient,
		huberr.CodeUnknownEvmChain:
		return http.StatusBadRequest
	case huberr.CodeQuoteUnavailable, huberr.CodeNoDepositAddress, huberr.CodeCatalogUnavailable:
		return http.StatusBadGateway
	case huberr.CodeSafetyCheckFailed:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

func writeError(w http.ResponseWriter, err error) {
	code := huberr.CodeOf(err)
	status := statusFor(code)

	message := err.Error()
	var hubErr *huberr.Error
	if errors.As(err, &hubErr) {
		message = hubErr.Message()
	}

	if status >= http.StatusInternalServerError {
		Logger.Error().Err(err).Str("code", string(code)).Msg("request failed")
	} else {
		Logger.Warn().Str("code", string(code)).Str("reason", message).Msg("request rejected")
	}

	writeJSON(w, status, errorBody{Error: string(code), Message: message})
}

func writeBadRequest(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusBadRequest, errorBody{Error: "BAD_REQUEST", Message: message})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		Logger.Error().Err(err).Msg("Failed to encode response")
	}
}
