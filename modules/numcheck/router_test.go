package numcheck_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/numcheck/modules/numcheck"
	"github.com/dmitrymomot/numcheck/pkg/numformat"
)

type envelope struct {
	Data  json.RawMessage       `json:"data"`
	Error *numcheck.ErrorDetail `json:"error"`
}

func newRouter(t *testing.T) http.Handler {
	t.Helper()
	catalog, err := numformat.LoadCatalog(context.Background(), strings.NewReader(`
formats:
  amount:
    format: N(17.2)
    non_negative: true
  delta: N(4.2)
`))
	require.NoError(t, err)
	return numcheck.Router(numcheck.RouterOptions{Catalog: catalog, MaxValues: 3})
}

func do(t *testing.T, h http.Handler, method, target, body string) (int, envelope) {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))
	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return rec.Code, env
}

func decodeValidate(t *testing.T, env envelope) numcheck.ValidateResponse {
	t.Helper()
	var resp numcheck.ValidateResponse
	require.NoError(t, json.Unmarshal(env.Data, &resp))
	return resp
}

func TestListFormats(t *testing.T) {
	t.Parallel()

	code, env := do(t, newRouter(t), http.MethodGet, "/formats", "")
	require.Equal(t, http.StatusOK, code)

	var data struct {
		Formats []numcheck.FormatInfo `json:"formats"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, []numcheck.FormatInfo{
		{Name: "amount", Format: "N(17.2)", Precision: 17, Scale: 2, NonNegative: true},
		{Name: "delta", Format: "N(4.2)", Precision: 4, Scale: 2},
	}, data.Formats)
}

func TestListFormats_EmptyCatalog(t *testing.T) {
	t.Parallel()

	code, env := do(t, numcheck.Router(numcheck.RouterOptions{}), http.MethodGet, "/formats", "")
	require.Equal(t, http.StatusOK, code)
	assert.JSONEq(t, `{"formats":[]}`, string(env.Data))
}

func TestValidateBatch_ByNotation(t *testing.T) {
	t.Parallel()

	code, env := do(t, newRouter(t), http.MethodPost, "/validate",
		`{"format":"N(4.2)","values":["-1.23","12,0",null]}`)
	require.Equal(t, http.StatusOK, code)
	require.Nil(t, env.Error)

	resp := decodeValidate(t, env)
	assert.Equal(t, "N(4.2)", resp.Format.Format)
	assert.False(t, resp.Format.NonNegative)
	require.Len(t, resp.Results, 3)

	assert.True(t, resp.Results[0].Valid)
	assert.Empty(t, resp.Results[0].Reason)
	assert.True(t, resp.Results[1].Valid)
	assert.False(t, resp.Results[2].Valid)
	assert.Nil(t, resp.Results[2].Value)
	assert.Equal(t, numformat.ErrEmpty.Error(), resp.Results[2].Reason)
}

func TestValidateBatch_NonNegative(t *testing.T) {
	t.Parallel()

	code, env := do(t, newRouter(t), http.MethodPost, "/validate",
		`{"format":"N(17,2)","non_negative":true,"values":["-1.23"]}`)
	require.Equal(t, http.StatusOK, code)

	resp := decodeValidate(t, env)
	assert.True(t, resp.Format.NonNegative)
	require.Len(t, resp.Results, 1)
	assert.False(t, resp.Results[0].Valid)
	assert.Equal(t, numformat.ErrNegative.Error(), resp.Results[0].Reason)
}

func TestValidateBatch_ByNameNonNegative(t *testing.T) {
	t.Parallel()

	code, env := do(t, newRouter(t), http.MethodPost, "/validate",
		`{"name":"delta","non_negative":true,"values":["-1.23","1.23"]}`)
	require.Equal(t, http.StatusOK, code)

	resp := decodeValidate(t, env)
	assert.Equal(t, "delta", resp.Format.Name)
	assert.True(t, resp.Format.NonNegative)
	require.Len(t, resp.Results, 2)
	assert.False(t, resp.Results[0].Valid)
	assert.Equal(t, numformat.ErrNegative.Error(), resp.Results[0].Reason)
	assert.True(t, resp.Results[1].Valid)

	t.Run("does not relax catalog entry", func(t *testing.T) {
		t.Parallel()
		code, env := do(t, newRouter(t), http.MethodPost, "/validate",
			`{"name":"amount","non_negative":false,"values":["-1.23"]}`)
		require.Equal(t, http.StatusOK, code)
		resp := decodeValidate(t, env)
		assert.True(t, resp.Format.NonNegative)
		assert.False(t, resp.Results[0].Valid)
	})
}

func TestValidateBatch_ByName(t *testing.T) {
	t.Parallel()

	code, env := do(t, newRouter(t), http.MethodPost, "/validate",
		`{"name":"amount","values":["0.0","+0.0","a.sd"]}`)
	require.Equal(t, http.StatusOK, code)

	resp := decodeValidate(t, env)
	assert.Equal(t, "amount", resp.Format.Name)
	require.Len(t, resp.Results, 3)
	assert.True(t, resp.Results[0].Valid)
	assert.True(t, resp.Results[1].Valid)
	assert.False(t, resp.Results[2].Valid)
	assert.Equal(t, numformat.ErrMalformed.Error(), resp.Results[2].Reason)
}

func TestValidateBatch_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		body   string
		status int
		code   string
	}{
		{"malformed json", `{"format":`, http.StatusBadRequest, "invalid_request"},
		{"unknown field", `{"format":"N(4)","values":["1"],"extra":1}`, http.StatusBadRequest, "invalid_request"},
		{"trailing data", `{"format":"N(4.2)","values":["1"]} {"junk":true}`, http.StatusBadRequest, "invalid_request"},
		{"missing format and name", `{"values":["1"]}`, http.StatusUnprocessableEntity, "validation_error"},
		{"both format and name", `{"format":"N(4)","name":"delta","values":["1"]}`, http.StatusUnprocessableEntity, "validation_error"},
		{"no values", `{"format":"N(4)","values":[]}`, http.StatusUnprocessableEntity, "validation_error"},
		{"too many values", `{"format":"N(4)","values":["1","2","3","4"]}`, http.StatusUnprocessableEntity, "validation_error"},
		{"bad notation", `{"format":"17.2","values":["1"]}`, http.StatusBadRequest, "invalid_format"},
		{"bad configuration", `{"format":"N(2.2)","values":["1"]}`, http.StatusBadRequest, "invalid_format"},
		{"unknown name", `{"name":"price","values":["1"]}`, http.StatusBadRequest, "unknown_format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			code, env := do(t, newRouter(t), http.MethodPost, "/validate", tt.body)
			assert.Equal(t, tt.status, code)
			require.NotNil(t, env.Error)
			assert.Equal(t, tt.code, env.Error.Code)
		})
	}
}

func TestValidateBatch_ValidationDetails(t *testing.T) {
	t.Parallel()

	_, env := do(t, newRouter(t), http.MethodPost, "/validate", `{"values":[]}`)
	require.NotNil(t, env.Error)
	assert.Equal(t, map[string][]string{
		"format": {"exactly one of format or name is required"},
		"values": {"field is required"},
	}, env.Error.Details)
}

func TestValidateOne(t *testing.T) {
	t.Parallel()

	h := newRouter(t)

	t.Run("valid value", func(t *testing.T) {
		code, env := do(t, h, http.MethodGet, "/validate/delta?value=-1.23", "")
		require.Equal(t, http.StatusOK, code)
		resp := decodeValidate(t, env)
		require.Len(t, resp.Results, 1)
		assert.True(t, resp.Results[0].Valid)
		require.NotNil(t, resp.Results[0].Value)
		assert.Equal(t, "-1.23", *resp.Results[0].Value)
	})

	t.Run("value with spaces", func(t *testing.T) {
		code, env := do(t, h, http.MethodGet, "/validate/delta?value=%2012.0", "")
		require.Equal(t, http.StatusOK, code)
		resp := decodeValidate(t, env)
		assert.False(t, resp.Results[0].Valid)
		assert.Equal(t, numformat.ErrMalformed.Error(), resp.Results[0].Reason)
	})

	t.Run("missing value", func(t *testing.T) {
		code, env := do(t, h, http.MethodGet, "/validate/delta", "")
		require.Equal(t, http.StatusOK, code)
		resp := decodeValidate(t, env)
		assert.False(t, resp.Results[0].Valid)
		assert.Nil(t, resp.Results[0].Value)
	})

	t.Run("empty value", func(t *testing.T) {
		code, env := do(t, h, http.MethodGet, "/validate/delta?value=", "")
		require.Equal(t, http.StatusOK, code)
		resp := decodeValidate(t, env)
		assert.False(t, resp.Results[0].Valid)
		assert.Equal(t, numformat.ErrEmpty.Error(), resp.Results[0].Reason)
	})

	t.Run("unknown format", func(t *testing.T) {
		code, env := do(t, h, http.MethodGet, "/validate/price?value=1", "")
		assert.Equal(t, http.StatusNotFound, code)
		require.NotNil(t, env.Error)
		assert.Equal(t, "unknown_format", env.Error.Code)
	})
}
