package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestCounters(t *testing.T) {
	before := testutil.ToFloat64(entriesIngested.WithLabelValues("test-vocab"))
	IncIngested("test-vocab")
	IncIngested("test-vocab")
	assert.Equal(t, before+2, testutil.ToFloat64(entriesIngested.WithLabelValues("test-vocab")))

	before = testutil.ToFloat64(entriesDropped.WithLabelValues("test-vocab"))
	IncNotMapped("test-vocab")
	assert.Equal(t, before+1, testutil.ToFloat64(entriesDropped.WithLabelValues("test-vocab")))

	before = testutil.ToFloat64(shapeMismatches.WithLabelValues("track"))
	IncShapeMismatch("track")
	assert.Equal(t, before+1, testutil.ToFloat64(shapeMismatches.WithLabelValues("track")))

	before = testutil.ToFloat64(filesParsed.WithLabelValues("flac", "ok"))
	IncParsed("flac", "ok")
	assert.Equal(t, before+1, testutil.ToFloat64(filesParsed.WithLabelValues("flac", "ok")))
}

func TestObserveParse(t *testing.T) {
	ObserveParse("mpeg", 3*time.Millisecond)
	assert.Equal(t, 1, testutil.CollectAndCount(parseDuration))
}

func TestRegister_Idempotent(t *testing.T) {
	assert.NotPanics(t, func() {
		Register()
		Register()
	})
}
