package training

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"fitness-tracker/internal/handlers"
	"fitness-tracker/internal/observability"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// tracer is the training domain's dedicated OpenTelemetry tracer.
var tracer = otel.Tracer("training")

// ListTypes handles GET /trainings/types
func ListTypes(w http.ResponseWriter, r *http.Request) {
	handlers.WriteJSON(w, http.StatusOK, TypesResponse{Types: Types()})
}

// Summary handles POST /trainings/summary
func Summary(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := observability.LoggerWithTrace(ctx)
	requestID := observability.RequestIDFromContext(ctx)

	ctx, span := tracer.Start(ctx, "training.summary.request",
		trace.WithAttributes(attribute.String("request.id", requestID)),
	)
	defer span.End()

	var req PackageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		observability.RecordError(ctx, span, logger, errorCounter, "summary", "invalid request body", err, http.StatusBadRequest, w)
		return
	}

	msg, err := summarize(ctx, logger, req)
	if err != nil {
		observability.RecordError(ctx, span, logger, errorCounter, errorKind(err), err.Error(), err, http.StatusBadRequest, w)
		return
	}

	span.SetStatus(codes.Ok, "")
	handlers.WriteJSON(w, http.StatusOK, newSummaryResponse(msg))
}

// Batch handles POST /trainings/batch — computes every package in order. A
// rejected package is reported in its own result and does not stop the rest.
func Batch(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := observability.LoggerWithTrace(ctx)
	requestID := observability.RequestIDFromContext(ctx)

	ctx, span := tracer.Start(ctx, "training.batch",
		trace.WithAttributes(attribute.String("request.id", requestID)),
	)
	defer span.End()

	var req BatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		observability.RecordError(ctx, span, logger, errorCounter, "batch", "invalid request body", err, http.StatusBadRequest, w)
		return
	}

	if len(req.Packages) == 0 {
		observability.RecordError(ctx, span, logger, errorCounter, "batch", "no packages provided", errors.New("packages array is empty"), http.StatusBadRequest, w)
		return
	}

	span.SetAttributes(attribute.Int("batch.packages_count", len(req.Packages)))

	resp := BatchResponse{Results: make([]BatchResult, 0, len(req.Packages))}
	for i, pkg := range req.Packages {
		result := BatchResult{Index: i, Type: pkg.Type}

		msg, err := summarize(ctx, logger, pkg)
		if err != nil {
			errorCounter.Add(ctx, 1, metric.WithAttributes(attribute.String("operation", errorKind(err))))
			logger.Warn("batch package rejected",
				zap.Int("index", i),
				zap.String("type", pkg.Type),
				zap.Error(err),
				zap.String("request_id", requestID),
			)
			result.Error = err.Error()
			resp.Failed++
		} else {
			summary := newSummaryResponse(msg)
			result.Summary = &summary
		}

		resp.Results = append(resp.Results, result)
	}

	span.AddEvent("batch.complete", trace.WithAttributes(
		attribute.Int("total", len(req.Packages)),
		attribute.Int("failed", resp.Failed),
	))
	span.SetStatus(codes.Ok, "")

	logger.Info("batch completed",
		zap.Int("packages", len(req.Packages)),
		zap.Int("failed", resp.Failed),
		zap.String("request_id", requestID),
	)

	handlers.WriteJSON(w, http.StatusOK, resp)
}

// summarize builds and summarizes one package inside its own child span,
// recording the success metrics. Errors are returned to the caller to report.
func summarize(ctx context.Context, logger *zap.Logger, req PackageRequest) (InfoMessage, error) {
	ctx, span := tracer.Start(ctx, fmt.Sprintf("training.summary.%s", req.Type),
		trace.WithAttributes(
			attribute.String("training.code", req.Type),
			attribute.Int("training.fields", len(req.Data)),
		),
	)
	defer span.End()

	start := time.Now()
	t, err := ReadPackage(req.Type, req.Data)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return InfoMessage{}, err
	}
	msg := ShowTrainingInfo(t)
	elapsed := float64(time.Since(start).Microseconds()) / 1000.0 // ms

	attrs := metric.WithAttributes(attribute.String("training.type", msg.TrainingType))
	summaryCounter.Add(ctx, 1, attrs)
	calcHistogram.Record(ctx, elapsed, attrs)
	caloriesHistogram.Record(ctx, msg.Calories, attrs)
	recordSummaryTime(time.Now())

	span.SetAttributes(
		attribute.String("training.type", msg.TrainingType),
		attribute.Float64("training.distance", msg.Distance),
		attribute.Float64("training.speed", msg.Speed),
		attribute.Float64("training.calories", msg.Calories),
	)
	span.SetStatus(codes.Ok, "")

	logger.Info("training summary computed",
		zap.String("training_type", msg.TrainingType),
		zap.Float64("duration_h", msg.Duration),
		zap.Float64("distance_km", msg.Distance),
		zap.Float64("speed_kmh", msg.Speed),
		zap.Float64("calories", msg.Calories),
		zap.Float64("duration_ms", elapsed),
	)

	return msg, nil
}

// errorKind names the failure class of a package error for metric attributes.
func errorKind(err error) string {
	switch {
	case errors.Is(err, ErrUnknownTrainingType):
		return "unknown_type"
	case errors.Is(err, ErrArityMismatch):
		return "arity_mismatch"
	case errors.Is(err, ErrInvalidField):
		return "invalid_field"
	case errors.Is(err, ErrNonFiniteResult):
		return "non_finite_result"
	}
	return "summary"
}
