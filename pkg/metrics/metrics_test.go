package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObserveRequest(t *testing.T) {
	before := testutil.ToFloat64(HTTPRequests.WithLabelValues(http.MethodGet, "200"))

	ObserveRequest(http.MethodGet, http.StatusOK, 15*time.Millisecond)

	after := testutil.ToFloat64(HTTPRequests.WithLabelValues(http.MethodGet, "200"))
	assert.Equal(t, before+1, after)
}

func TestHandler(t *testing.T) {
	LLMRequests.WithLabelValues(OutcomeRateLimited).Inc()

	w := httptest.NewRecorder()
	Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "marketing_insights_llm_requests_total")
	assert.Contains(t, w.Body.String(), `outcome="rate_limited"`)
}
