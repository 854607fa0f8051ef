package http

import (
	"context"
	"encoding/json"
	"errors"
	"io/ioutil"
	"net/http"
	"time"

	"github.com/ATenderholt/rainbow-copy/internal/service"
	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambdacontext"
	"github.com/go-chi/chi/v5"
)

const (
	invocationTypeHeader = "X-Amz-Invocation-Type"
	functionErrorHeader  = "X-Amz-Function-Error"
	executedVersion      = "X-Amz-Executed-Version"

	invocationTypeEvent  = "Event"
	invocationTypeDryRun = "DryRun"
)

type CopyHandler interface {
	Handle(ctx context.Context, event *events.S3Event) (string, error)
}

type invokeError struct {
	ErrorMessage string `json:"errorMessage"`
	ErrorType    string `json:"errorType"`
}

type InvokeHandler struct {
	handler    CopyHandler
	dispatcher *Dispatcher
	metrics    *Metrics
}

func NewInvokeHandler(handler CopyHandler, dispatcher *Dispatcher, metrics *Metrics) InvokeHandler {
	return InvokeHandler{
		handler:    handler,
		dispatcher: dispatcher,
		metrics:    metrics,
	}
}

func (h InvokeHandler) Invoke(w http.ResponseWriter, r *http.Request) {
	function := chi.URLParam(r, "function")

	body, err := ioutil.ReadAll(r.Body)
	if err != nil {
		logger.Errorf("Unable to read invocation of %s: %v", function, err)
		writeError(w, http.StatusBadRequest, "unable to read request body")
		return
	}

	var event *events.S3Event
	if err := json.Unmarshal(body, &event); err != nil {
		logger.Errorf("Unable to decode invocation of %s: %v", function, err)
		writeError(w, http.StatusBadRequest, "request body is not a valid S3 event")
		return
	}

	switch r.Header.Get(invocationTypeHeader) {
	case invocationTypeDryRun:
		w.WriteHeader(http.StatusNoContent)
		return
	case invocationTypeEvent:
		if err := h.dispatcher.Submit(r.Context(), event); err != nil {
			logger.Errorf("Unable to queue invocation of %s: %v", function, err)
			writeError(w, http.StatusServiceUnavailable, err.Error())
			return
		}
		h.metrics.Count(OutcomeQueued)
		w.WriteHeader(http.StatusAccepted)
		return
	}

	id, _ := getRequestID(r)
	ctx := lambdacontext.NewContext(r.Context(), &lambdacontext.LambdaContext{
		AwsRequestID:       id,
		InvokedFunctionArn: function,
	})

	start := time.Now()
	token, err := h.handler.Handle(ctx, event)
	h.metrics.Observe(outcome(err), time.Since(start))

	w.Header().Set(executedVersion, "$LATEST")
	if err != nil {
		w.Header().Set(functionErrorHeader, "Unhandled")
		writeJSON(w, http.StatusOK, invokeError{
			ErrorMessage: err.Error(),
			ErrorType:    errorType(err),
		})
		return
	}

	writeJSON(w, http.StatusOK, token)
}

func errorType(err error) string {
	var emptyErr service.EmptyNotificationError
	if errors.As(err, &emptyErr) {
		return "EmptyNotificationError"
	}

	var copyErr service.CopyError
	if errors.As(err, &copyErr) {
		return "CopyError"
	}

	return "Unhandled"
}

func outcome(err error) string {
	switch errorType(err) {
	case "EmptyNotificationError":
		return OutcomeEmptyNotification
	case "CopyError":
		return OutcomeCopyError
	}

	if err != nil {
		return OutcomeCopyError
	}

	return OutcomeSuccess
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.Errorf("Unable to encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{
		"message": msg,
	})
}
