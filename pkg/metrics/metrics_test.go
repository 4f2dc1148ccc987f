package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRecordQueryError(t *testing.T) {
	before := testutil.ToFloat64(DBQueryErrors.WithLabelValues("exec"))

	RecordQueryError("exec", nil)
	RecordQueryError("exec", errors.New("boom"))

	after := testutil.ToFloat64(DBQueryErrors.WithLabelValues("exec"))
	if after-before != 1 {
		t.Errorf("Expected exactly one recorded error, got %v", after-before)
	}
}

func TestObserveQuery(t *testing.T) {
	ObserveQuery("query", time.Now().Add(-10*time.Millisecond))

	if n := testutil.CollectAndCount(DBQueryDuration); n == 0 {
		t.Error("Expected db_query_duration_seconds to have samples")
	}
}
