package numcheck

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/numcheck/pkg/logger"
	"github.com/dmitrymomot/numcheck/pkg/numformat"
	"github.com/dmitrymomot/numcheck/pkg/validator"
)

// ValidateRequest is the body of POST /validate. Exactly one of Format and
// Name must be set. A null entry in Values is treated as an absent value.
// NonNegative applies to both; with Name it can only add the restriction.
type ValidateRequest struct {
	Format      string    `json:"format"`
	Name        string    `json:"name"`
	NonNegative bool      `json:"non_negative"`
	Values      []*string `json:"values"`
}

func (h *handlers) validateBatch(w http.ResponseWriter, r *http.Request) {
	var req ValidateRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, defaultMaxBodyBytes))
	dec.DisallowUnknownFields()
	err := dec.Decode(&req)
	if err == nil && dec.Decode(&struct{}{}) != io.EOF {
		err = errors.New("unexpected data after request body")
	}
	if err != nil {
		h.log.DebugContext(r.Context(), "decode validate request", logger.Error(err))
		writeError(w, http.StatusBadRequest, "invalid_request", ErrInvalidRequest.Error(), nil)
		return
	}

	if err := validator.Apply(
		validator.RequiredEither("format", req.Format, "name", req.Name),
		validator.RequiredSlice("values", req.Values),
		validator.MaxLenSlice("values", req.Values, h.maxValues),
	); err != nil {
		verrs := validator.ExtractValidationErrors(err)
		writeError(w, http.StatusUnprocessableEntity, "validation_error", err.Error(), verrs.Messages())
		return
	}

	name, v, err := h.resolve(req)
	if err != nil {
		status, code := http.StatusBadRequest, "invalid_format"
		if errors.Is(err, ErrUnknownFormat) {
			code = "unknown_format"
		}
		writeError(w, status, code, err.Error(), nil)
		return
	}

	resp := ValidateResponse{
		Format:  formatInfo(name, v.Format()),
		Results: make([]Result, 0, len(req.Values)),
	}
	rejected := 0
	for _, value := range req.Values {
		res, _ := check(v, value)
		if !res.Valid {
			rejected++
		}
		resp.Results = append(resp.Results, res)
	}

	h.log.DebugContext(r.Context(), "values checked",
		logger.Notation(v.String()),
		logger.Count(len(req.Values)),
		slog.Int("rejected", rejected),
	)
	writeData(w, resp)
}

func (h *handlers) validateOne(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	v, ok := h.catalog.Lookup(name)
	if !ok {
		writeError(w, http.StatusNotFound, "unknown_format", fmt.Sprintf("%s: %q", ErrUnknownFormat, name), nil)
		return
	}

	var value *string
	if values, present := r.URL.Query()["value"]; present && len(values) > 0 {
		value = &values[0]
	}

	res, reason := check(v, value)
	if reason != nil && value != nil {
		h.log.DebugContext(r.Context(), "value rejected",
			logger.Notation(v.String()),
			logger.Value(*value),
			logger.Reason(reason),
		)
	}

	writeData(w, ValidateResponse{
		Format:  formatInfo(name, v.Format()),
		Results: []Result{res},
	})
}

// resolve picks the validator named by a request. NonNegative can only
// tighten a catalog entry, never relax it.
func (h *handlers) resolve(req ValidateRequest) (string, *numformat.Validator, error) {
	if req.Name != "" {
		v, ok := h.catalog.Lookup(req.Name)
		if !ok {
			return "", nil, fmt.Errorf("%w: %q", ErrUnknownFormat, req.Name)
		}
		if !req.NonNegative || v.Format().NonNegative {
			return req.Name, v, nil
		}
		f := v.Format()
		f.NonNegative = true
		v, err := numformat.NewFromFormat(f)
		if err != nil {
			return "", nil, err
		}
		return req.Name, v, nil
	}

	f, err := numformat.ParseFormat(req.Format)
	if err != nil {
		return "", nil, err
	}
	f.NonNegative = req.NonNegative
	v, err := numformat.NewFromFormat(f)
	if err != nil {
		return "", nil, err
	}
	return "", v, nil
}

func check(v *numformat.Validator, value *string) (Result, error) {
	if value == nil {
		return Result{Reason: numformat.ErrEmpty.Error()}, numformat.ErrEmpty
	}
	if err := v.Check(*value); err != nil {
		return Result{Value: value, Reason: err.Error()}, err
	}
	return Result{Value: value, Valid: true}, nil
}
