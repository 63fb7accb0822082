package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/finwell/finance-service/internal/cache"
	"github.com/finwell/finance-service/internal/config"
	"github.com/finwell/finance-service/internal/service"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testHandler() *Handler {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	svc := service.NewService(nil, cache.NewMemory(0), log, &config.Config{})
	return NewHandler(svc)
}

func TestCompoundInterestEndpoint(t *testing.T) {
	h := testHandler()
	body := `{"principal":1000,"annual_rate":5,"years":10,"contribution":100,"frequency":"yearly"}`
	req := httptest.NewRequest(http.MethodPost, "/calculators/compound-interest", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.CompoundInterest(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp map[string]float64
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.InDelta(t, 2886.68, resp["final_balance"], 0.01)
}

func TestCompoundInterestEndpointRejectsBadBody(t *testing.T) {
	h := testHandler()
	req := httptest.NewRequest(http.MethodPost, "/calculators/compound-interest", strings.NewReader(`{`))
	rec := httptest.NewRecorder()

	h.CompoundInterest(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLoanPaymentEndpointZeroRate(t *testing.T) {
	h := testHandler()
	body := `{"principal":12000,"annual_rate":0,"years":10}`
	req := httptest.NewRequest(http.MethodPost, "/calculators/loan-payment", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.LoanPayment(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp map[string]float64
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 100.0, resp["monthly_payment"])
}

func TestQuickSimulateEndpoint(t *testing.T) {
	h := testHandler()
	body := `{"name":"quick","income_growth":3,"expense_reduction":5,"savings_rate":40,"investment_return":7,"inflation_rate":2,"years":10}`
	req := httptest.NewRequest(http.MethodPost, "/simulations/quick", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.QuickSimulate(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp struct {
		Years    []int     `json:"years"`
		NetWorth []float64 `json:"net_worth"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp.Years, 10)
	assert.Len(t, resp.NetWorth, 10)
}

func TestQuickSimulateEndpointZeroYears(t *testing.T) {
	h := testHandler()
	req := httptest.NewRequest(http.MethodPost, "/simulations/quick", strings.NewReader(`{"years":0}`))
	rec := httptest.NewRecorder()

	h.QuickSimulate(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp struct {
		Years []int `json:"years"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotNil(t, resp.Years)
	assert.Empty(t, resp.Years)
}

func TestQuickSimulateEndpointRejectsExcessiveYears(t *testing.T) {
	h := testHandler()
	req := httptest.NewRequest(http.MethodPost, "/simulations/quick", strings.NewReader(`{"years":5000}`))
	rec := httptest.NewRecorder()

	h.QuickSimulate(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
