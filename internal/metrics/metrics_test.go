package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestVoteOperationsCounter(t *testing.T) {
	before := testutil.ToFloat64(VoteOperationsTotal.WithLabelValues(OperationIncrement))

	VoteOperationsTotal.WithLabelValues(OperationIncrement).Inc()
	VoteOperationsTotal.WithLabelValues(OperationIncrement).Inc()

	after := testutil.ToFloat64(VoteOperationsTotal.WithLabelValues(OperationIncrement))
	assert.Equal(t, before+2, after)
}

func TestHandlerExposesMetrics(t *testing.T) {
	EventsCreatedTotal.Inc()

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	w := httptest.NewRecorder()
	Handler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "voting_events_created_total")
}
