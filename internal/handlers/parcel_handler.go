package handlers

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	"cadastral-lookup-api/internal/config"
	"cadastral-lookup-api/internal/models"
	"cadastral-lookup-api/internal/services"
	"cadastral-lookup-api/pkg/lambda"
)

// ParcelHandler handles cadastral parcel lookups
type ParcelHandler struct {
	parcelService services.ParcelService
	policy        config.Policy
}

// NewParcelHandler creates a new parcel handler
func NewParcelHandler(parcelService services.ParcelService, policy config.Policy) *ParcelHandler {
	if policy == "" {
		policy = config.PolicyStrict
	}
	return &ParcelHandler{
		parcelService: parcelService,
		policy:        policy,
	}
}

// Policy returns the failure policy the handler applies
func (h *ParcelHandler) Policy() config.Policy {
	return h.policy
}

// HandleLookup serves a lookup request. Every outcome, including panics in
// downstream code, is converted to a response; the returned error is always nil.
func (h *ParcelHandler) HandleLookup(ctx context.Context, req *lambda.Request) (resp *lambda.Response, err error) {
	start := time.Now()
	query := models.NewLookupQuery(req.QueryParams)
	fields := logrus.Fields{
		"request_id":       req.RequestID,
		"method":           req.Method,
		"cadastral_number": query.CadastralNumber,
		"policy":           h.policy,
	}

	defer func() {
		if r := recover(); r != nil {
			logrus.WithFields(fields).WithField("panic", r).Error("Lookup panicked")
			resp = h.failureResponse(query.CadastralNumber, &LookupError{
				Kind:       KindUnexpectedFailure,
				StatusCode: http.StatusInternalServerError,
				Err:        fmt.Errorf("internal error: %v", r),
			})
			err = nil
		}
		if resp != nil {
			fields["status_code"] = resp.StatusCode
			fields["latency_ms"] = float64(time.Since(start).Nanoseconds()) / 1000000
			logrus.WithFields(fields).Info("Lookup completed")
		}
	}()

	switch req.NormalizedMethod() {
	case http.MethodOptions:
		return preflightResponse(), nil
	case http.MethodGet:
	default:
		return h.errorResponse(&LookupError{
			Kind:       KindMethodNotAllowed,
			StatusCode: http.StatusMethodNotAllowed,
			Err:        fmt.Errorf("method %s not allowed", req.Method),
		}, ""), nil
	}

	if validationErr := query.Validate(); validationErr != nil {
		return h.errorResponse(classifyError(validationErr), ""), nil
	}

	record, lookupErr := h.parcelService.LookupParcel(ctx, query.CadastralNumber)
	if lookupErr != nil {
		classified := classifyError(lookupErr)
		fields["error_kind"] = classified.Kind
		fields["error"] = lookupErr.Error()
		return h.failureResponse(query.CadastralNumber, classified), nil
	}

	if !record.HasGeometry() && h.policy.IsBestEffort() {
		record = record.WithEstimatedPoints(services.EstimatePointsCount(query.CadastralNumber))
	}
	fields["estimated"] = record.Estimated
	fields["points_count"] = record.PointsCount

	return jsonResponse(http.StatusOK, models.ParcelBody{ParcelRecord: record}), nil
}

// failureResponse applies the configured policy to a failed lookup
func (h *ParcelHandler) failureResponse(cadastralNumber string, lookupErr *LookupError) *lambda.Response {
	if !h.policy.IsBestEffort() {
		return h.errorResponse(lookupErr, cadastralNumber)
	}

	logrus.WithFields(logrus.Fields{
		"cadastral_number": cadastralNumber,
		"error_kind":       lookupErr.Kind,
		"error":            lookupErr.Error(),
	}).Warn("Returning estimated parcel")

	body := models.ParcelBody{ParcelRecord: services.EstimateParcel(cadastralNumber)}
	// Only unexpected failures carry a diagnostic message
	if lookupErr.Kind == KindUnexpectedFailure {
		body.Error = lookupErr.Error()
	}
	return jsonResponse(http.StatusOK, body)
}

func (h *ParcelHandler) errorResponse(lookupErr *LookupError, cadastralNumber string) *lambda.Response {
	return jsonResponse(lookupErr.StatusCode, models.ErrorBody{
		Error:           lookupErr.clientMessage(),
		CadastralNumber: cadastralNumber,
	})
}
