package gdacs

import (
	"context"
	"fmt"
	"net/http"
	"strings"
)

// resourceURL joins the static-resource base URL with the event type, event
// ID, and filename. Separators are forward slashes on every platform.
func (c *Client) resourceURL(eventType EventType, eventID, filename string) string {
	return strings.Join([]string{
		strings.TrimRight(c.resourceBaseURL, "/"),
		string(eventType),
		eventID,
		filename,
	}, "/")
}

// fetchResource GETs one static per-event document. Anything but a 200 is an
// upstream failure; a missing document surfaces the same way.
func (c *Client) fetchResource(ctx context.Context, eventType EventType, eventID, filename string) ([]byte, error) {
	u := c.resourceURL(eventType, eventID, filename)

	start := c.clock.Now()
	resp, err := c.http.R().SetContext(ctx).Get(u)
	c.metrics.RequestDuration.WithLabelValues(opGetEvent).Observe(c.clock.Since(start).Seconds())
	if err != nil {
		c.metrics.APIRequests.WithLabelValues(opGetEvent, "error").Inc()
		return nil, fmt.Errorf("%s: %w: %v", opGetEvent, ErrAPIUnavailable, err)
	}
	if resp.StatusCode() != http.StatusOK {
		c.metrics.APIRequests.WithLabelValues(opGetEvent, "error").Inc()
		return nil, fmt.Errorf("%s: %w: %s: status %d", opGetEvent, ErrAPIUnavailable, filename, resp.StatusCode())
	}

	c.metrics.APIRequests.WithLabelValues(opGetEvent, "success").Inc()
	c.logger.Debug("gdacs resource fetched", "url", u, "bytes", len(resp.Body()))
	return resp.Body(), nil
}
