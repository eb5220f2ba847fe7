package router

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/neptune-labs/neptune-intents-hub/catalog"
	"github.com/neptune-labs/neptune-intents-hub/chains"
	"github.com/neptune-labs/neptune-intents-hub/huberr"
	"github.com/neptune-labs/neptune-intents-hub/quote"
	"github.com/neptune-labs/neptune-intents-hub/safety"
	"github.com/neptune-labs/neptune-intents-hub/txbuilder"
)

var Logger zerolog.Logger

func init() {
	Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
}

// SetLogger overrides the package logger.
func SetLogger(logger zerolog.Logger) {
	Logger = logger
}

// minOutFactor applies the displayed 1% slippage allowance.
var minOutFactor = decimal.RequireFromString("0.99")

// CatalogSource supplies the current token snapshot.
type CatalogSource interface {
	Tokens(ctx context.Context) (catalog.Snapshot, error)
}

// QuoteClient fetches quotes and submits deposit notices.
type QuoteClient interface {
	GetQuote(ctx context.Context, req quote.Request) (quote.Body, error)
	SubmitDeposit(ctx context.Context, notice quote.DepositNotice) error
}

// SwapPlan is a confirmed swap ready for signing: the deposit payload
// plus the wallet action hint the frontend routes on.
type SwapPlan struct {
	Quote      SwapQuote         `json:"quote"`
	Payload    txbuilder.Payload `json:"payload"`
	SignAction string            `json:"signAction"`
	Safety     safety.Result     `json:"safety"`
}

// Service is the hub's routing core. One instance serves all
// sessions, pending quotes are isolated per session.
type Service struct {
	tokens  CatalogSource
	quotes  QuoteClient
	pending *PendingStore
	now     func() time.Time
}

// NewService wires the routing service.
func NewService(tokens CatalogSource, quotes QuoteClient, pendingTTL time.Duration) *Service {
	return &Service{
		tokens:  tokens,
		quotes:  quotes,
		pending: NewPendingStore(pendingTTL),
		now:     time.Now,
	}
}

// Tokens exposes the current catalog snapshot.
func (s *Service) Tokens(ctx context.Context) (catalog.Snapshot, error) {
	return s.tokens.Tokens(ctx)
}

// QuoteSwap resolves the route, fetches a firm quote and stores it
// for the session pending confirmation.
func (s *Service) QuoteSwap(ctx context.Context, req RouteRequest) (SwapQuote, error) {
	snap, err := s.tokens.Tokens(ctx)
	if err != nil {
		return SwapQuote{}, err
	}

	rc, err := Resolve(snap, req)
	if err != nil {
		return SwapQuote{}, err
	}
	if rc.Recipient == "" {
		return SwapQuote{}, huberr.New(huberr.CodeMissingRecipient,
			"wallet must be connected to fetch a quote")
	}

	atomic := rc.SourceToken.AtomicAmount(req.Amount)
	deadline := s.now().UTC().Add(5 * time.Minute).Format(time.RFC3339)

	depositType := quote.PlacementIntents
	if chains.IsEVM(rc.SourceChain) {
		depositType = quote.PlacementOriginChain
	}
	recipientType := quote.PlacementIntents
	if rc.CrossChain {
		recipientType = quote.PlacementDestinationChain
	}

	body, err := s.quotes.GetQuote(ctx, quote.Request{
		SwapType:           quote.SwapTypeExactInput,
		OriginAsset:        rc.SourceToken.AssetID,
		DestinationAsset:   rc.DestToken.AssetID,
		Amount:             atomic.String(),
		DepositType:        depositType,
		RefundType:         depositType,
		Recipient:          rc.Recipient,
		RecipientType:      recipientType,
		RefundTo:           rc.RefundTo,
		SlippageTolerance:  quote.DefaultSlippageTolerance,
		Dry:                false,
		Deadline:           deadline,
		QuoteWaitingTimeMs: 0,
	})
	if err != nil {
		return SwapQuote{}, err
	}

	amountOutAtomic, err := decimal.NewFromString(body.AmountOut)
	if err != nil {
		return SwapQuote{}, fmt.Errorf("parse quoted amountOut %q: %w", body.AmountOut, err)
	}
	amountOut := rc.DestToken.FromAtomic(amountOutAtomic)

	var rate decimal.Decimal
	if req.Amount.IsPositive() {
		rate = amountOut.DivRound(req.Amount, 8)
	}

	q := SwapQuote{
		ID:             uuid.NewString(),
		TokenIn:        rc.SourceToken.Symbol,
		TokenOut:       rc.DestToken.Symbol,
		AmountIn:       req.Amount,
		AmountInAtomic: atomic,
		AmountOut:      amountOut,
		MinAmountOut:   amountOut.Mul(minOutFactor),
		Rate:           rate,
		DepositAddress: body.DepositAddress,
		Recipient:      rc.Recipient,
		SourceChain:    rc.SourceChain,
		DestChain:      rc.DestChain,
		CrossChain:     rc.CrossChain,
		AutoFilled:     rc.AutoFilled,
		AccountID:      req.AccountID,
		SourceToken:    rc.SourceToken,
		CreatedAt:      s.now(),
	}
	s.pending.Put(req.SessionID, q)

	Logger.Info().
		Str("quote", q.ID).
		Str("session", req.SessionID).
		Str("source", rc.SourceChain).
		Str("dest", rc.DestChain).
		Bool("crossChain", rc.CrossChain).
		Msg("swap quoted")

	return q, nil
}

// ConfirmSwap builds the deposit payload for the session's pending
// quote and validates it before it goes anywhere near a wallet.
func (s *Service) ConfirmSwap(ctx context.Context, sessionID string) (SwapPlan, error) {
	q, ok := s.pending.Get(sessionID)
	if !ok {
		return SwapPlan{}, huberr.New(huberr.CodeNoPendingQuote,
			"no pending quote to confirm, request a quote first")
	}

	payload, err := txbuilder.ForChain(q.SourceChain).Build(txbuilder.Input{
		SourceChain:    q.SourceChain,
		Sender:         q.AccountID,
		Token:          q.SourceToken,
		DepositAddress: q.DepositAddress,
		Amount:         q.AmountIn,
	})
	if err != nil {
		return SwapPlan{}, err
	}

	res := safety.Check(payload, q.DepositAddress, q.AmountIn)
	if !res.Valid {
		return SwapPlan{}, huberr.Newf(huberr.CodeSafetyCheckFailed,
			"transaction safety check failed: %s", res.Summary())
	}

	Logger.Info().Str("quote", q.ID).Str("session", sessionID).Msg("swap confirmed")

	return SwapPlan{
		Quote:      q,
		Payload:    payload,
		SignAction: chains.SignAction(q.SourceChain),
		Safety:     res,
	}, nil
}

// NotifyDeposit forwards the sent deposit transaction hash upstream
// so verification starts early. Submission is best effort, the swap
// settles from the on-chain deposit either way. The session's pending
// quote is released once the deposit is reported.
func (s *Service) NotifyDeposit(ctx context.Context, sessionID, txHash string) error {
	q, ok := s.pending.Get(sessionID)
	if !ok {
		return huberr.New(huberr.CodeNoPendingQuote,
			"no pending quote for this session")
	}

	notice := quote.DepositNotice{
		TxHash:         txHash,
		DepositAddress: q.DepositAddress,
	}
	if q.SourceChain == "near" {
		notice.NearSenderAccount = q.AccountID
	}
	if err := s.quotes.SubmitDeposit(ctx, notice); err != nil {
		Logger.Warn().Err(err).
			Str("session", sessionID).
			Str("txHash", txHash).
			Msg("deposit submission failed upstream")
	}
	s.pending.Delete(sessionID)
	return nil
}
