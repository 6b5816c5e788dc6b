package http

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vparshin/go-note-keeper/internal/utils"
)

func executeWithCallerID(h *Handler, headerValue string) (*httptest.ResponseRecorder, *http.Request) {
	var capturedReq *http.Request
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		capturedReq = r
		w.WriteHeader(http.StatusOK)
	})

	middleware := h.withCallerID(next)
	req := httptest.NewRequest(http.MethodGet, "/api/notes", nil)
	if headerValue != "" {
		req.Header.Set("X-User-Id", headerValue)
	}

	rr := httptest.NewRecorder()
	middleware.ServeHTTP(rr, req)
	return rr, capturedReq
}

func TestWithCallerID_TableTest(t *testing.T) {
	tests := []struct {
		name           string
		headerValue    string
		wantCallerID   string
		wantNextCalled bool
		wantStatus     int
		ensureOwnerErr error
	}{
		{
			name:           "caller id from header is used",
			headerValue:    "alice",
			wantCallerID:   "alice",
			wantNextCalled: true,
			wantStatus:     http.StatusOK,
		},
		{
			name:           "absent header falls back to default",
			headerValue:    "",
			wantCallerID:   "demo-user",
			wantNextCalled: true,
			wantStatus:     http.StatusOK,
		},
		{
			name:           "failed owner bootstrap rejects request",
			headerValue:    "alice",
			ensureOwnerErr: errors.New("db down"),
			wantNextCalled: false,
			wantStatus:     http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var ensuredCallerID string
			identitySvc := &mockIdentitySvc{
				ensureOwnerFn: func(ctx context.Context, callerID string) error {
					ensuredCallerID = callerID
					return tt.ensureOwnerErr
				},
			}
			h := newTestHandler(&mockNoteSvc{}, identitySvc)

			rr, capturedReq := executeWithCallerID(h, tt.headerValue)

			assert.Equal(t, tt.wantStatus, rr.Code)

			if !tt.wantNextCalled {
				assert.Nil(t, capturedReq)
				return
			}

			require.NotNil(t, capturedReq)
			assert.Equal(t, tt.wantCallerID, ensuredCallerID)

			callerID, found := utils.GetCallerIDFromContext(capturedReq.Context())
			require.True(t, found)
			assert.Equal(t, tt.wantCallerID, callerID)
		})
	}
}

func TestWithCallerID_BootstrapRunsBeforeNext(t *testing.T) {
	order := make([]string, 0, 2)

	identitySvc := &mockIdentitySvc{
		ensureOwnerFn: func(ctx context.Context, callerID string) error {
			order = append(order, "ensure")
			return nil
		},
	}
	h := newTestHandler(&mockNoteSvc{}, identitySvc)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		order = append(order, "next")
	})

	req := httptest.NewRequest(http.MethodGet, "/api/notes", nil)
	h.withCallerID(next).ServeHTTP(httptest.NewRecorder(), req)

	assert.Equal(t, []string{"ensure", "next"}, order)
}
