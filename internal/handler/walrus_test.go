package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/WolfJourney_Go/internal/domain"
	"github.com/osse101/WolfJourney_Go/internal/remotesync"
)

const testReceipt = `{"blobObject":{"blobId":"blob-1"},"storageCost":5}`

func TestHandleSyncLatest(t *testing.T) {
	t.Run("Receipt Fields Are Flattened", func(t *testing.T) {
		svc := &MockSyncService{}
		svc.On("SyncLatest", mock.Anything).Return(&remotesync.Result{
			Variant: domain.ReceiptNewlyCreated,
			Receipt: []byte(testReceipt),
		}, nil)

		w := httptest.NewRecorder()
		HandleSyncLatest(svc).ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/walrus/latest", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"success":true,"message":"Latest game state synced to Walrus","blobObject":{"blobId":"blob-1"},"storageCost":5}`, w.Body.String())
	})

	t.Run("No Game State", func(t *testing.T) {
		svc := &MockSyncService{}
		svc.On("SyncLatest", mock.Anything).Return(nil, domain.ErrNoGameState)

		w := httptest.NewRecorder()
		HandleSyncLatest(svc).ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/walrus/latest", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"success":false`)
	})

	t.Run("Publisher Failure", func(t *testing.T) {
		svc := &MockSyncService{}
		svc.On("SyncLatest", mock.Anything).Return(nil, fmt.Errorf("%w: status 502", domain.ErrUpstream))

		w := httptest.NewRecorder()
		HandleSyncLatest(svc).ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/walrus/latest", nil))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.NotContains(t, w.Body.String(), "status 502")
	})
}

func TestHandleSyncAll(t *testing.T) {
	svc := &MockSyncService{}
	svc.On("SyncAll", mock.Anything).Return(&remotesync.SyncSummary{Synced: 2, Total: 3}, nil)

	w := httptest.NewRecorder()
	HandleSyncAll(svc).ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/walrus/sync", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true,"message":"Synced 2 of 3 game states","synced":2,"total":3}`, w.Body.String())
}

func TestHandleStorePayload(t *testing.T) {
	t.Run("Publishes Data Field", func(t *testing.T) {
		svc := &MockSyncService{}
		svc.On("Store", mock.Anything, json.RawMessage(`{"score":10}`)).Return(&remotesync.Result{
			Variant: domain.ReceiptAlreadyCertified,
			Receipt: []byte(`{"blobId":"blob-2"}`),
		}, nil)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/walrus", strings.NewReader(`{"data":{"score":10}}`))
		HandleStorePayload(svc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"success":true,"blobId":"blob-2"}`, w.Body.String())
		svc.AssertExpectations(t)
	})

	t.Run("Missing Data", func(t *testing.T) {
		svc := &MockSyncService{}

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/walrus", strings.NewReader(`{}`))
		HandleStorePayload(svc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		svc.AssertNotCalled(t, "Store", mock.Anything, mock.Anything)
	})
}

func TestHandleListTransactions(t *testing.T) {
	svc := &MockSyncService{}
	svc.On("ListTransactions", mock.Anything).Return([]domain.Transaction{
		*domain.NewTransaction([]byte(testReceipt), time.Date(2024, 5, 6, 7, 8, 9, 0, time.UTC)),
	}, nil)

	w := httptest.NewRecorder()
	HandleListTransactions(svc).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/walrus/transactions", nil))

	var resp struct {
		Transactions []map[string]interface{} `json:"transactions"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Transactions, 1)
	assert.Equal(t, "2024-05-06T07:08:09Z", resp.Transactions[0]["timestamp"])
	assert.Equal(t, float64(5), resp.Transactions[0]["storageCost"])
}
