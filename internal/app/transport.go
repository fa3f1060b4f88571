package app

import "context"

// Transports through which component events arrive.
const (
	TransportHTML = "html"
	TransportAPI  = "api"
	TransportLive = "live"
)

type transportKey struct{}

// WithTransport tags ctx with the transport an event arrived on. The tag is
// recorded as a metric attribute.
func WithTransport(ctx context.Context, transport string) context.Context {
	return context.WithValue(ctx, transportKey{}, transport)
}

// TransportFromContext returns the transport tag, or "unknown" when none was
// set.
func TransportFromContext(ctx context.Context) string {
	if t, ok := ctx.Value(transportKey{}).(string); ok && t != "" {
		return t
	}
	return "unknown"
}
