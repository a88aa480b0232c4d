package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tsumitate/nisa-calculator/internal/calculation"
	"github.com/tsumitate/nisa-calculator/internal/domain"
)

func doRequest(t *testing.T, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	srv := New(calculation.NewEngine())
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)
	return rec
}

func TestHealthz(t *testing.T) {
	rec := doRequest(t, http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGetPresets(t *testing.T) {
	rec := doRequest(t, http.MethodGet, "/api/presets", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var presets []domain.Preset
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &presets))
	require.Len(t, presets, 4)
	assert.Equal(t, "nisa_standard", presets[0].ID)
}

func TestPostProject(t *testing.T) {
	rec := doRequest(t, http.MethodPost, "/api/project",
		`{"monthly_amount": 10000, "years": 10, "annual_return": 0}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var result domain.SimulationResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Len(t, result.YearlyData, 10)
	assert.Equal(t, "1200000", result.FinalAmount.String())
	assert.Equal(t, "0", result.TotalEarnings.String())
}

func TestPostProject_InvalidParams(t *testing.T) {
	rec := doRequest(t, http.MethodPost, "/api/project",
		`{"monthly_amount": 0, "years": 10, "annual_return": 5}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "monthly amount")
}

func TestPostProject_MalformedBody(t *testing.T) {
	rec := doRequest(t, http.MethodPost, "/api/project", `{"monthly_amount":`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPostScenarios(t *testing.T) {
	rec := doRequest(t, http.MethodPost, "/api/scenarios",
		`{"monthly_amount": 30000, "years": 20, "annual_return": 5}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var scenario domain.RiskScenario
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &scenario))
	require.NotNil(t, scenario.Base)
	assert.True(t, scenario.Optimistic.FinalAmount.GreaterThanOrEqual(scenario.Base.FinalAmount))
	assert.True(t, scenario.Base.FinalAmount.GreaterThanOrEqual(scenario.Pessimistic.FinalAmount))
}

func TestPostIncome(t *testing.T) {
	rec := doRequest(t, http.MethodPost, "/api/income",
		`{"gross_income": 600, "bonus": 100, "monthly_expense": 20, "years": 3}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		NetIncome   decimal.Decimal           `json:"net_income"`
		SavingsRate decimal.Decimal           `json:"savings_rate"`
		YearlyData  []domain.YearlyIncomeData `json:"yearly_data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "468", resp.NetIncome.String())
	assert.Equal(t, "58", resp.SavingsRate.String())
	require.Len(t, resp.YearlyData, 3)
	assert.Equal(t, "984", resp.YearlyData[2].Savings.String())
}

func TestPostIncome_InvalidYears(t *testing.T) {
	rec := doRequest(t, http.MethodPost, "/api/income",
		`{"gross_income": 600, "years": 0}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
