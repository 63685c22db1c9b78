package health

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Server(t *testing.T) {
	tests := []struct {
		name              string
		tokenErr          error
		apiErr            error
		wantStatus        int
		wantIsReady       bool
		wantMessageSubstr string
	}{
		{
			"returns 200 with isReady if no systems report errors",
			nil,
			nil,
			http.StatusOK,
			true,
			"fully operational",
		},
		{
			"returns 200 with !isReady if the token endpoint is down",
			fmt.Errorf("connection refused"),
			nil,
			http.StatusOK,
			false,
			"not issuing grants. (Error: connection refused)",
		},
		{
			"returns 200 with !isReady if the API is not answering",
			nil,
			fmt.Errorf("mock api error"),
			http.StatusOK,
			false,
			"not answering. (Error: mock api error)",
		},
	}
	for _, tt := range tests {
		s := &Server{
			getTokenStatus: func(ctx context.Context) error {
				return tt.tokenErr
			},
			getApiStatus: func(ctx context.Context) error {
				return tt.apiErr
			},
		}
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		res := httptest.NewRecorder()
		s.ServeHTTP(res, req)

		r := res.Result()
		assert.Equal(t, tt.wantStatus, r.StatusCode)

		var status Status
		err := json.NewDecoder(r.Body).Decode(&status)
		assert.NoError(t, err)
		assert.Equal(t, tt.wantIsReady, status.IsReady)
		assert.Contains(t, status.Message, tt.wantMessageSubstr)
	}
}
