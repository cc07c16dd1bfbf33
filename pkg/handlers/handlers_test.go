package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/coinkrazygaming/social-coin-sub000/pkg/api"
	"github.com/coinkrazygaming/social-coin-sub000/pkg/catalog"
	"github.com/coinkrazygaming/social-coin-sub000/pkg/models"
	"github.com/coinkrazygaming/social-coin-sub000/pkg/slots"
	"github.com/coinkrazygaming/social-coin-sub000/pkg/stats"
	"github.com/coinkrazygaming/social-coin-sub000/pkg/storage"
	"github.com/coinkrazygaming/social-coin-sub000/pkg/storage/mocks"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// MockSpinner is a mock engine for handler tests.
type MockSpinner struct {
	mock.Mock
}

func (m *MockSpinner) Spin(ctx context.Context, req models.SpinRequest) (*models.SpinResult, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.SpinResult), args.Error(1)
}

func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	cat, err := catalog.New([]*models.Machine{{
		ID:     "demo",
		Name:   "Demo",
		Active: true,
		Rows:   3,
		Reels: []models.Reel{
			{Symbols: []string{"A"}},
			{Symbols: []string{"A"}},
			{Symbols: []string{"A"}},
		},
		Paylines: []models.Payline{{ID: 1, Active: true, Cells: []models.Cell{
			{Reel: 0, Row: 1}, {Reel: 1, Row: 1}, {Reel: 2, Row: 1},
		}}},
		Symbols:    []models.Symbol{{ID: "A", Name: "Ace", Multiplier: decimal.NewFromInt(1)}},
		MinBet:     dec("0.25"),
		MaxBet:     dec("100"),
		TargetRTP:  0.95,
		Volatility: models.VolatilityMedium,
	}})
	require.NoError(t, err)
	return cat
}

type testServer struct {
	router  chi.Router
	spinner *MockSpinner
	store   *mocks.Storage
	tracker *stats.Tracker
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	ts := &testServer{
		router:  chi.NewRouter(),
		spinner: &MockSpinner{},
		store:   mocks.NewStorage(t),
		tracker: stats.NewTracker(),
	}
	NewApiHandler(testCatalog(t), ts.spinner, ts.store, ts.tracker).Mount(ts.router)
	return ts
}

func (ts *testServer) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	rr := httptest.NewRecorder()
	ts.router.ServeHTTP(rr, req)
	return rr
}

func TestListMachines(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.do(t, http.MethodGet, "/machines", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var machines []api.Machine
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &machines))
	require.Len(t, machines, 1)
	assert.Equal(t, "demo", machines[0].Id)
	assert.Equal(t, 3, machines[0].Reels)
	assert.Equal(t, 1, machines[0].Paylines)
	assert.True(t, machines[0].MinBet.Equal(dec("0.25")))
}

func TestGetMachineStats(t *testing.T) {
	t.Run("returns counters", func(t *testing.T) {
		ts := newTestServer(t)
		ts.tracker.Record("demo", dec("10"), dec("50"))

		rr := ts.do(t, http.MethodGet, "/machines/demo/stats", nil)
		require.Equal(t, http.StatusOK, rr.Code)

		var got api.MachineStats
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
		assert.Equal(t, "demo", got.MachineId)
		assert.Equal(t, int64(1), got.TotalSpins)
		assert.True(t, got.TotalWagered.Equal(dec("10")))
		assert.True(t, got.Rtp.Equal(dec("5")))
	})

	t.Run("unknown machine is 404", func(t *testing.T) {
		ts := newTestServer(t)
		rr := ts.do(t, http.MethodGet, "/machines/nope/stats", nil)
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestExecuteSpin(t *testing.T) {
	newSpin := api.NewSpin{
		UserId:    "u1",
		MachineId: "demo",
		Currency:  "GC",
		BetAmount: dec("2"),
	}
	wantReq := models.SpinRequest{
		UserID:    "u1",
		MachineID: "demo",
		Currency:  models.CurrencyGold,
		Bet:       dec("2"),
	}

	t.Run("settled spin", func(t *testing.T) {
		ts := newTestServer(t)
		ts.spinner.On("Spin", mock.Anything, wantReq).Return(&models.SpinResult{
			RecordID:    "spin-1",
			Grid:        models.Grid{{"A"}, {"A"}, {"A"}},
			WinLines:    []models.WinLine{{PaylineID: 1, SymbolID: "A", Count: 3, Payout: dec("10")}},
			TotalPayout: dec("10"),
			Balance:     dec("108"),
		}, nil).Once()

		rr := ts.do(t, http.MethodPost, "/spins", newSpin)
		require.Equal(t, http.StatusOK, rr.Code)

		var got api.SpinResult
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
		assert.Equal(t, "spin-1", got.SpinId)
		assert.True(t, got.TotalPayout.Equal(dec("10")))
		assert.True(t, got.Balance.Equal(dec("108")))
		require.Len(t, got.WinLines, 1)
		assert.Equal(t, "A", got.WinLines[0].SymbolId)
		ts.spinner.AssertExpectations(t)
	})

	t.Run("malformed body", func(t *testing.T) {
		ts := newTestServer(t)
		req := httptest.NewRequest(http.MethodPost, "/spins", bytes.NewBufferString("{not json"))
		rr := httptest.NewRecorder()
		ts.router.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("engine rejections map to statuses", func(t *testing.T) {
		cases := []struct {
			err  error
			code int
		}{
			{fmt.Errorf("%w: nope", slots.ErrMachineNotFound), http.StatusNotFound},
			{fmt.Errorf("%w: demo", slots.ErrMachineInactive), http.StatusConflict},
			{fmt.Errorf("%w: bet 0.01", slots.ErrBetOutOfRange), http.StatusBadRequest},
			{fmt.Errorf("%w: %q", slots.ErrInvalidCurrency, "USD"), http.StatusBadRequest},
			{fmt.Errorf("settling: %w", storage.ErrInsufficientFunds), http.StatusUnprocessableEntity},
			{fmt.Errorf("%w: table down", slots.ErrSettlementFailed), http.StatusInternalServerError},
		}
		for _, tc := range cases {
			ts := newTestServer(t)
			ts.spinner.On("Spin", mock.Anything, wantReq).Return(nil, tc.err).Once()

			rr := ts.do(t, http.MethodPost, "/spins", newSpin)
			assert.Equal(t, tc.code, rr.Code, "error %v", tc.err)
		}
	})
}

func TestListWallets(t *testing.T) {
	t.Run("returns balances", func(t *testing.T) {
		ts := newTestServer(t)
		ts.store.On("ListWallets", mock.Anything, "u1").Return([]models.Wallet{
			{UserID: "u1", Currency: models.CurrencyGold, Balance: dec("50000")},
			{UserID: "u1", Currency: models.CurrencySweeps, Balance: dec("25")},
		}, nil).Once()

		rr := ts.do(t, http.MethodGet, "/users/u1/wallets", nil)
		require.Equal(t, http.StatusOK, rr.Code)

		var wallets []api.Wallet
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &wallets))
		require.Len(t, wallets, 2)
		assert.Equal(t, "GC", wallets[0].Currency)
		assert.True(t, wallets[0].Balance.Equal(dec("50000")))
	})

	t.Run("store failure is 500", func(t *testing.T) {
		ts := newTestServer(t)
		ts.store.On("ListWallets", mock.Anything, "u1").
			Return(nil, errors.New("table down")).Once()

		rr := ts.do(t, http.MethodGet, "/users/u1/wallets", nil)
		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})
}

func TestListSpins(t *testing.T) {
	t.Run("returns history", func(t *testing.T) {
		ts := newTestServer(t)
		ts.store.On("ListSpins", mock.Anything, "u1", int32(20)).Return([]models.SpinRecord{{
			ID:        "spin-1",
			UserID:    "u1",
			MachineID: "demo",
			Currency:  models.CurrencyGold,
			Bet:       dec("2"),
			Payout:    dec("10"),
			CreatedAt: time.Now().UTC(),
		}}, nil).Once()

		rr := ts.do(t, http.MethodGet, "/users/u1/spins", nil)
		require.Equal(t, http.StatusOK, rr.Code)

		var records []api.SpinRecord
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &records))
		require.Len(t, records, 1)
		assert.Equal(t, "spin-1", records[0].Id)
		assert.True(t, records[0].Payout.Equal(dec("10")))
	})

	t.Run("custom limit", func(t *testing.T) {
		ts := newTestServer(t)
		ts.store.On("ListSpins", mock.Anything, "u1", int32(5)).
			Return([]models.SpinRecord{}, nil).Once()

		rr := ts.do(t, http.MethodGet, "/users/u1/spins?limit=5", nil)
		assert.Equal(t, http.StatusOK, rr.Code)
		ts.store.AssertExpectations(t)
	})

	t.Run("invalid limit is 400", func(t *testing.T) {
		ts := newTestServer(t)
		rr := ts.do(t, http.MethodGet, "/users/u1/spins?limit=zero", nil)
		assert.Equal(t, http.StatusBadRequest, rr.Code)

		rr = ts.do(t, http.MethodGet, "/users/u1/spins?limit=-1", nil)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}
