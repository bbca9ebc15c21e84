package optionvalues

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/goliatone/go-crmkit/pkg/optionvalue"
)

type HTTPError interface {
	error
	StatusCode() int
}

type StatusError struct {
	Code int
	Err  error
}

func (e StatusError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return http.StatusText(e.Code)
}

func (e StatusError) Unwrap() error { return e.Err }

func (e StatusError) StatusCode() int {
	if e.Code <= 0 {
		return http.StatusInternalServerError
	}
	return e.Code
}

// Result pairs a label with its option value.
type Result struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// LabelError describes a label that could not be converted.
type LabelError struct {
	Index   int    `json:"index"`
	Label   string `json:"label"`
	Message string `json:"message"`
}

type singleResponse struct {
	Data Result `json:"data"`
}

type batchRequest struct {
	Labels []string `json:"labels"`
}

type batchResponse struct {
	Data []Result `json:"data"`
}

type errorResponse struct {
	Errors []LabelError `json:"errors"`
}

// Handler builds a net/http handler with default options plus any overrides.
func Handler(fns ...OptionFn) http.Handler {
	return NewHandler(fns...)
}

func NewHandler(fns ...OptionFn) http.Handler {
	return HandlerWithOptions(NewOptions(fns...))
}

// HandlerWithOptions builds a net/http handler from a pre-constructed Options
// value.
func HandlerWithOptions(opts Options) http.Handler {
	opts = NewOptions(func(o *Options) { *o = opts })
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r == nil {
			http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
			return
		}

		switch r.Method {
		case http.MethodGet, http.MethodHead, http.MethodPost:
		default:
			w.Header().Set("Allow", http.MethodGet+", "+http.MethodHead+", "+http.MethodPost)
			http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
			return
		}

		if opts.Guard != nil {
			if err := opts.Guard(r); err != nil {
				writeGuardError(w, err)
				return
			}
		}

		if r.Method == http.MethodPost {
			serveBatch(w, r, opts)
			return
		}
		serveSingle(w, r, opts)
	})
}

func serveSingle(w http.ResponseWriter, r *http.Request, opts Options) {
	label := r.URL.Query().Get(opts.LabelParam)
	value, err := optionvalue.ComputeFromLabel(label)
	if err != nil {
		opts.Logger.Debug("option value rejected", zap.String("label", label), zap.Error(err))
		writeJSON(w, r, http.StatusUnprocessableEntity, errorResponse{
			Errors: []LabelError{labelError(0, label, err)},
		})
		return
	}
	writeJSON(w, r, http.StatusOK, singleResponse{Data: Result{Label: label, Value: value}})
}

func serveBatch(w http.ResponseWriter, r *http.Request, opts Options) {
	var req batchRequest
	body := http.MaxBytesReader(w, r.Body, opts.MaxBodyBytes)
	if err := json.NewDecoder(body).Decode(&req); err != nil {
		opts.Logger.Debug("option value batch decode failed", zap.Error(err))
		code := http.StatusBadRequest
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			code = http.StatusRequestEntityTooLarge
		}
		http.Error(w, http.StatusText(code), code)
		return
	}
	if len(req.Labels) > opts.MaxBatch {
		http.Error(w, http.StatusText(http.StatusRequestEntityTooLarge), http.StatusRequestEntityTooLarge)
		return
	}

	results := make([]Result, 0, len(req.Labels))
	var failures []LabelError
	for index, label := range req.Labels {
		value, err := optionvalue.ComputeFromLabel(label)
		if err != nil {
			failures = append(failures, labelError(index, label, err))
			continue
		}
		results = append(results, Result{Label: label, Value: value})
	}

	if len(failures) > 0 {
		opts.Logger.Debug("option value batch rejected", zap.Int("labels", len(req.Labels)), zap.Int("failures", len(failures)))
		writeJSON(w, r, http.StatusUnprocessableEntity, errorResponse{Errors: failures})
		return
	}
	writeJSON(w, r, http.StatusOK, batchResponse{Data: results})
}

func labelError(index int, label string, err error) LabelError {
	message := "label cannot be converted to an option value"
	if label == "" {
		message = "label is required"
	} else if !errors.Is(err, optionvalue.ErrInvalidLabel) {
		message = err.Error()
	}
	return LabelError{Index: index, Label: label, Message: message}
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, payload any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if r.Method == http.MethodHead {
		return
	}
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(true)
	_ = enc.Encode(payload)
}

func writeGuardError(w http.ResponseWriter, err error) {
	if w == nil {
		return
	}
	if err == nil {
		http.Error(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
		return
	}
	code := http.StatusForbidden
	var httpErr HTTPError
	if errors.As(err, &httpErr) && httpErr != nil {
		code = httpErr.StatusCode()
		if code <= 0 {
			code = http.StatusForbidden
		}
	}
	http.Error(w, http.StatusText(code), code)
}
