package gdacs

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventData_QueryParameters(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "/api/events/geteventdata", r.URL.Path)
		assert.Equal(t, "1012428", q.Get("eventid"))
		assert.Equal(t, "DR", q.Get("eventtype"))
		assert.False(t, q.Has("source"), "empty source is omitted")
		_, _ = w.Write([]byte(emptyCollectionBody))
	}))
	defer srv.Close()
	c := newTestClient(t, srv.URL)

	_, err := c.EventData(context.Background(), 1012428, EventTypeDrought, "")
	require.NoError(t, err)
}

func TestEventData_SourcePassedThrough(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "GDACS", r.URL.Query().Get("source"))
		_, _ = w.Write([]byte(emptyCollectionBody))
	}))
	defer srv.Close()
	c := newTestClient(t, srv.URL)

	_, err := c.EventData(context.Background(), 1000132, EventTypeTropicalCyclone, "GDACS")
	require.NoError(t, err)
}

func TestEventData_MissingEventType(t *testing.T) {
	srv, calls := countingServer(t, http.StatusOK, emptyCollectionBody)
	c := newTestClient(t, srv.URL)

	_, err := c.EventData(context.Background(), 1000132, EventTypeUnset, "")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidParameter)
	assert.Equal(t, int64(0), calls.Load())
}

func TestEventData_InvalidEventType(t *testing.T) {
	srv, calls := countingServer(t, http.StatusOK, emptyCollectionBody)
	c := newTestClient(t, srv.URL)

	_, err := c.EventData(context.Background(), 1000132, EventType("XX"), "")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidParameter)
	assert.Equal(t, int64(0), calls.Load())
}

func TestEventData_NotFound(t *testing.T) {
	srv, _ := countingServer(t, http.StatusNotFound, `{"error":"no such event"}`)
	c := newTestClient(t, srv.URL)

	_, err := c.EventData(context.Background(), 999999999, EventTypeEarthquake, "")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrEventNotFound, "404 maps to the not-found kind")
	assert.ErrorIs(t, err, ErrAPIUnavailable, "not-found is still an upstream failure")
}

func TestEventData_GenericUpstreamFailureIsNotNotFound(t *testing.T) {
	srv, _ := countingServer(t, http.StatusInternalServerError, "boom")
	c := newTestClient(t, srv.URL)

	_, err := c.EventData(context.Background(), 1000132, EventTypeEarthquake, "")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrAPIUnavailable)
	assert.NotErrorIs(t, err, ErrEventNotFound)
}

func TestEventData_Success(t *testing.T) {
	const body = `{"type":"FeatureCollection","features":[{"properties":{"eventtype":"EQ","eventid":1000132}}]}`
	srv, _ := countingServer(t, http.StatusOK, body)
	c := newTestClient(t, srv.URL)

	fc, err := c.EventData(context.Background(), 1000132, EventTypeEarthquake, "")
	require.NoError(t, err)
	require.Equal(t, 1, fc.Len())
	assert.Equal(t, int64(1000132), fc.Features[0].EventID())
}
