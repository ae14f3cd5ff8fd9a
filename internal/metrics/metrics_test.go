package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCountersIncrement(t *testing.T) {
	before := testutil.ToFloat64(LinksCreated.WithLabelValues("public"))
	LinksCreated.WithLabelValues("public").Inc()
	assert.Equal(t, before+1, testutil.ToFloat64(LinksCreated.WithLabelValues("public")))

	beforeTokens := testutil.ToFloat64(BonusTokensAwarded.WithLabelValues("public_referral_bonus"))
	BonusTokensAwarded.WithLabelValues("public_referral_bonus").Add(10)
	assert.Equal(t, beforeTokens+10, testutil.ToFloat64(BonusTokensAwarded.WithLabelValues("public_referral_bonus")))
}

func TestHandlerExposesMetrics(t *testing.T) {
	EventsLogged.WithLabelValues("clicked").Inc()

	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "sharing_link_events_total")
}
