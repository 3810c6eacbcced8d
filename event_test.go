package gdacs

import (
	"archive/zip"
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	geoJSONResourceBody = `{"type":"FeatureCollection","features":[
		{"type":"Feature","geometry":{"type":"Point","coordinates":[121.0,14.5]},"properties":{"eventtype":"DR"}}
	]}`

	capResourceBody = `<?xml version="1.0" encoding="UTF-8"?>
<alert xmlns="urn:oasis:names:tc:emergency:cap:1.2">
	<identifier>GDACS_TC_1000132_8</identifier>
	<sender>info@gdacs.org</sender>
	<sent>2020-11-01T12:00:00-00:00</sent>
	<status>Actual</status>
	<msgType>Alert</msgType>
	<scope>Public</scope>
	<info>
		<category>Met</category>
		<event>Tropical Cyclone</event>
		<urgency>Past</urgency>
		<severity>Severe</severity>
		<certainty>Observed</certainty>
		<headline>Tropical Cyclone GONI-20</headline>
		<area><areaDesc>Philippines</areaDesc></area>
	</info>
</alert>`

	rssResourceBody = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
	<channel>
		<title>GDACS event 1000132</title>
		<link>https://www.gdacs.org</link>
		<description>Episode feed</description>
		<item><title>Episode 8</title><pubDate>Sun, 01 Nov 2020 12:00:00 GMT</pubDate></item>
	</channel>
</rss>`
)

// resourceServer serves fixtures by exact resource path and records requests.
func resourceServer(t *testing.T, files map[string][]byte) (*httptest.Server, *[]string) {
	t.Helper()
	var paths []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.Path)
		body, ok := files[r.URL.Path]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_, _ = w.Write(body)
	}))
	t.Cleanup(srv.Close)
	return srv, &paths
}

func shapeZip(t *testing.T, members ...string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, name := range members {
		f, err := zw.Create(name)
		require.NoError(t, err)
		_, err = f.Write([]byte("shapefile bytes"))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func TestGetEvent_XMLWithoutEpisode(t *testing.T) {
	srv, paths := resourceServer(t, map[string][]byte{
		"/resources/TC/1000132/rss_1000132.xml": []byte(rssResourceBody),
	})
	c := newTestClient(t, srv.URL)

	rec, err := c.GetEvent(context.Background(), EventRequest{
		EventType: EventTypeTropicalCyclone,
		EventID:   "1000132",
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"/resources/TC/1000132/rss_1000132.xml"}, *paths)
	assert.Equal(t, FormatXML, rec.Format)
	require.NotNil(t, rec.Feed)
	assert.Equal(t, "GDACS event 1000132", rec.Feed.Channel.Title)
	require.Len(t, rec.Feed.Channel.Items, 1)
	assert.Equal(t, "Episode 8", rec.Feed.Channel.Items[0].Title)
}

func TestGetEvent_XMLWithEpisode(t *testing.T) {
	srv, paths := resourceServer(t, map[string][]byte{
		"/resources/TC/1000132/rss_1000132_8.xml": []byte(rssResourceBody),
	})
	c := newTestClient(t, srv.URL)

	rec, err := c.GetEvent(context.Background(), EventRequest{
		EventType: EventTypeTropicalCyclone,
		EventID:   "1000132",
		EpisodeID: "8",
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"/resources/TC/1000132/rss_1000132_8.xml"}, *paths)
	assert.NotNil(t, rec.Feed)
}

func TestGetEvent_CAPFile(t *testing.T) {
	srv, paths := resourceServer(t, map[string][]byte{
		"/resources/TC/1000132/cap_1000132.xml": []byte(capResourceBody),
	})
	c := newTestClient(t, srv.URL)

	rec, err := c.GetEvent(context.Background(), EventRequest{
		EventType: EventTypeTropicalCyclone,
		EventID:   "1000132",
		EpisodeID: "8", // CAP filenames never carry the episode
		CAPFile:   true,
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"/resources/TC/1000132/cap_1000132.xml"}, *paths)
	require.NotNil(t, rec.Alert)
	assert.Equal(t, "GDACS_TC_1000132_8", rec.Alert.Identifier)
	require.Len(t, rec.Alert.Info, 1)
	assert.Equal(t, "Tropical Cyclone GONI-20", rec.Alert.Info[0].Headline)
	assert.Equal(t, "Severe", rec.Alert.Info[0].Severity)
	require.Len(t, rec.Alert.Info[0].Areas, 1)
	assert.Equal(t, "Philippines", rec.Alert.Info[0].Areas[0].Description)
}

func TestGetEvent_GeoJSON(t *testing.T) {
	srv, paths := resourceServer(t, map[string][]byte{
		"/resources/DR/1012428/geojson_1012428_10.geojson": []byte(geoJSONResourceBody),
	})
	c := newTestClient(t, srv.URL)

	rec, err := c.GetEvent(context.Background(), EventRequest{
		EventType:    EventTypeDrought,
		EventID:      "1012428",
		EpisodeID:    "10",
		SourceFormat: FormatGeoJSON,
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"/resources/DR/1012428/geojson_1012428_10.geojson"}, *paths)
	assert.Equal(t, FormatGeoJSON, rec.Format)
	require.NotNil(t, rec.Collection)
	assert.Len(t, rec.Collection.Features, 1)
}

func TestGetEvent_GeoJSONMissingResource(t *testing.T) {
	srv, _ := resourceServer(t, nil)
	c := newTestClient(t, srv.URL)

	_, err := c.GetEvent(context.Background(), EventRequest{
		EventType:    EventTypeDrought,
		EventID:      "1012428",
		SourceFormat: FormatGeoJSON,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrAPIUnavailable)
}

func TestGetEvent_Shapefile(t *testing.T) {
	archive := shapeZip(t, "Shape_1000132_8.shp", "Shape_1000132_8.dbf")
	srv, paths := resourceServer(t, map[string][]byte{
		"/resources/TC/1000132/Shape_1000132_8.zip": archive,
	})
	dir := t.TempDir()
	c := newTestClient(t, srv.URL, WithDownloadDir(dir))

	rec, err := c.GetEvent(context.Background(), EventRequest{
		EventType:    EventTypeTropicalCyclone,
		EventID:      "1000132",
		EpisodeID:    "8",
		SourceFormat: FormatShapefile,
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"/resources/TC/1000132/Shape_1000132_8.zip"}, *paths)
	assert.Equal(t, FormatShapefile, rec.Format)
	assert.Equal(t, "Downloaded Shape_1000132_8.zip in directory.", rec.Confirmation)

	for _, name := range []string{"Shape_1000132_8.zip", "Shape_1000132_8.shp", "Shape_1000132_8.dbf"} {
		_, err := os.Stat(filepath.Join(dir, name))
		assert.NoError(t, err, "%s should exist in the download directory", name)
	}
}

func TestGetEvent_ShapefileRejectsEscapingMember(t *testing.T) {
	archive := shapeZip(t, "../escape.shp")
	srv, _ := resourceServer(t, map[string][]byte{
		"/resources/TC/1000132/Shape_1000132_8.zip": archive,
	})
	dir := t.TempDir()
	c := newTestClient(t, srv.URL, WithDownloadDir(dir))

	_, err := c.GetEvent(context.Background(), EventRequest{
		EventType:    EventTypeTropicalCyclone,
		EventID:      "1000132",
		EpisodeID:    "8",
		SourceFormat: FormatShapefile,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "illegal member path")
}

func TestGetEvent_InvalidArguments_NoNetworkCall(t *testing.T) {
	srv, paths := resourceServer(t, nil)
	c := newTestClient(t, srv.URL)

	_, err := c.GetEvent(context.Background(), EventRequest{
		EventType: EventType("DH"),
		EventID:   "1012428",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidParameter)

	_, err = c.GetEvent(context.Background(), EventRequest{
		EventType:    EventTypeTropicalCyclone,
		EventID:      "1000132",
		SourceFormat: DataFormat("csv"),
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidParameter)

	assert.Empty(t, *paths)
}

func TestGetEvent_ResultIsCached(t *testing.T) {
	srv, paths := resourceServer(t, map[string][]byte{
		"/resources/TC/1000132/rss_1000132.xml": []byte(rssResourceBody),
	})
	c := newTestClient(t, srv.URL)

	req := EventRequest{EventType: EventTypeTropicalCyclone, EventID: "1000132"}
	_, err := c.GetEvent(context.Background(), req)
	require.NoError(t, err)
	_, err = c.GetEvent(context.Background(), req)
	require.NoError(t, err)

	assert.Len(t, *paths, 1, "identical requests within the TTL fetch once")
}
