package discord

import (
	"io"
	"net/http"
)

// isTransient reports whether a status is a server-side failure worth
// surfacing as unavailable rather than a terminal authorization outcome
func isTransient(status int) bool {
	return status >= 500
}

// logStatus logs a truncated body snippet for diagnostics
// provider bodies are never forwarded to clients
func (c *Client) logStatus(resp *http.Response, path string) {
	b, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
	c.log.Warn().
		Str("path", path).
		Int("status", resp.StatusCode).
		Str("body", string(b)).
		Msg("discord non-success response")
}

func (c *Client) closeBody(resp *http.Response, path string) {
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 512))
	if err := resp.Body.Close(); err != nil {
		c.log.Error().Err(err).Str("path", path).Msg("discord close body failed")
	}
}
