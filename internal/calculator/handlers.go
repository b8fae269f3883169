package calculator

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"
	"strconv"
	"time"

	"tip-time/internal/handlers"
	"tip-time/internal/money"
	"tip-time/internal/observability"
	"tip-time/internal/tip"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// tracer is the calculator's dedicated OpenTelemetry tracer.
var tracer = otel.Tracer("calculator")

// maxBatchInputs caps a single batch request.
const maxBatchInputs = 100

// maxBodyBytes caps the size of any request body.
const maxBodyBytes = 64 << 10

// decodeBody reads a size-limited JSON body into v and reports the HTTP
// status to answer with when it fails.
func decodeBody(w http.ResponseWriter, r *http.Request, v any) (int, string, error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return http.StatusRequestEntityTooLarge, "request body too large", err
		}
		return http.StatusBadRequest, "invalid request body", err
	}
	return 0, "", nil
}

// ---------------------------------------------------------------------------
// Handlers — single calculation
// ---------------------------------------------------------------------------

// Tip handles POST /calculator/tip
func Tip(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := observability.LoggerWithTrace(ctx)

	ctx, span := startSpan(ctx, "calculator.tip")
	defer span.End()

	var req TipRequest
	if status, msg, err := decodeBody(w, r, &req); err != nil {
		observability.RecordError(ctx, span, logger, errorCounter, "tip", msg, err, status, w)
		return
	}

	resp := calculate(ctx, span, logger, formatterFor(r), req.Raw())
	span.SetStatus(codes.Ok, "")

	handlers.WriteJSON(w, http.StatusOK, resp)
}

// TipQuery handles GET /calculator/tip?amount=&tip_percent=&people=&round_up=
// An unparseable round_up is treated as false.
func TipQuery(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := observability.LoggerWithTrace(ctx)

	ctx, span := startSpan(ctx, "calculator.tip")
	defer span.End()

	q := r.URL.Query()
	roundUp, _ := strconv.ParseBool(q.Get("round_up"))

	raw := tip.RawInput{
		Amount:     q.Get("amount"),
		TipPercent: q.Get("tip_percent"),
		People:     q.Get("people"),
		RoundUp:    roundUp,
	}

	resp := calculate(ctx, span, logger, formatterFor(r), raw)
	span.SetStatus(codes.Ok, "")

	handlers.WriteJSON(w, http.StatusOK, resp)
}

// ---------------------------------------------------------------------------
// Handler — batch (one child span per input)
// ---------------------------------------------------------------------------

// Batch handles POST /calculator/batch. Every input is calculated with the
// same locale and gets its own child span.
func Batch(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := observability.LoggerWithTrace(ctx)
	requestID := observability.RequestIDFromContext(ctx)

	ctx, span := startSpan(ctx, "calculator.batch")
	defer span.End()

	var req BatchRequest
	if status, msg, err := decodeBody(w, r, &req); err != nil {
		observability.RecordError(ctx, span, logger, errorCounter, "batch", msg, err, status, w)
		return
	}

	switch {
	case len(req.Inputs) == 0:
		observability.RecordError(ctx, span, logger, errorCounter, "batch", "no inputs provided", errors.New("inputs array is empty"), http.StatusBadRequest, w)
		return
	case len(req.Inputs) > maxBatchInputs:
		msg := fmt.Sprintf("too many inputs: limit is %d", maxBatchInputs)
		observability.RecordError(ctx, span, logger, errorCounter, "batch", msg, fmt.Errorf("got %d inputs", len(req.Inputs)), http.StatusBadRequest, w)
		return
	}

	span.SetAttributes(attribute.Int("batch.size", len(req.Inputs)))

	f := formatterFor(r)
	results := make([]TipResponse, 0, len(req.Inputs))

	for i, in := range req.Inputs {
		stepCtx, stepSpan := tracer.Start(ctx, fmt.Sprintf("calculator.batch.item.%d", i),
			trace.WithAttributes(attribute.Int("batch.index", i)),
		)

		results = append(results, calculate(stepCtx, stepSpan, logger, f, in.Raw()))

		stepSpan.SetStatus(codes.Ok, "")
		stepSpan.End()
	}

	span.AddEvent("batch.complete", trace.WithAttributes(
		attribute.Int("batch.size", len(results)),
	))
	span.SetStatus(codes.Ok, "")

	logger.Info("batch calculation completed",
		zap.Int("inputs", len(results)),
		zap.String("locale", f.Locale()),
		zap.String("request_id", requestID),
	)

	handlers.WriteJSON(w, http.StatusOK, BatchResponse{Results: results})
}

func startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return tracer.Start(ctx, name,
		trace.WithAttributes(
			attribute.String("request.id", observability.RequestIDFromContext(ctx)),
		),
	)
}

// calculate runs one calculation and records its span attributes, metrics
// and log line. It never fails: malformed text has already been defaulted
// by the normalizer.
func calculate(ctx context.Context, span trace.Span, logger *zap.Logger, f *money.Formatter, raw tip.RawInput) TipResponse {
	start := time.Now()
	in := tip.Normalize(raw)
	res := tip.New(f).Calculate(in)
	elapsed := float64(time.Since(start).Microseconds()) / 1000.0 // ms

	span.SetAttributes(
		attribute.Float64("tip.amount", in.Amount),
		attribute.Float64("tip.percent", in.TipPercent),
		attribute.Int("tip.people", in.People),
		attribute.Bool("tip.round_up", in.RoundUp),
		attribute.String("tip.locale", f.Locale()),
	)

	attrs := metric.WithAttributes(
		attribute.String("currency", f.Currency()),
		attribute.Bool("round_up", in.RoundUp),
	)
	calcCounter.Add(ctx, 1, attrs)
	calcHistogram.Record(ctx, elapsed, attrs)

	if in.People <= 0 {
		unguardedSplits.Add(ctx, 1, attrs)
		span.AddEvent("split.unguarded", trace.WithAttributes(
			attribute.Int("people", in.People),
		))
		logger.Warn("splitting across non-positive people count",
			zap.Int("people", in.People),
			zap.String("request_id", observability.RequestIDFromContext(ctx)),
		)
	}

	if total := res.Breakdown.TotalPerPerson; !math.IsInf(total, 0) && !math.IsNaN(total) {
		totalGauge.Record(ctx, total, attrs)
	}

	span.AddEvent("calculation.complete", trace.WithAttributes(
		attribute.String("tip_amount", res.TipAmount),
		attribute.String("total_per_person", res.TotalPerPerson),
		attribute.Float64("duration_ms", elapsed),
	))

	logger.Info("tip calculated",
		zap.Float64("amount", in.Amount),
		zap.Float64("tip_percent", in.TipPercent),
		zap.Int("people", in.People),
		zap.Bool("round_up", in.RoundUp),
		zap.String("tip_amount", res.TipAmount),
		zap.String("total_per_person", res.TotalPerPerson),
		zap.String("locale", f.Locale()),
		zap.String("request_id", observability.RequestIDFromContext(ctx)),
		zap.Float64("duration_ms", elapsed),
	)

	return newTipResponse(in, res, f.Locale(), f.Currency())
}
