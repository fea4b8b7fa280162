package middleware

import (
	"barber/shared/constant"
	"context"
	"net"
	"net/http"
	"strings"
)

type clientContextKey struct{}

// ClientInfo describes the caller as seen through the configured proxy trust.
type ClientInfo struct {
	IP        string
	UserAgent string
	Secure    bool
}

func WithClient(ctx context.Context, client ClientInfo) context.Context {
	return context.WithValue(ctx, clientContextKey{}, client)
}

// ClientFromContext returns the client stored by the Client middleware, or the
// zero value.
func ClientFromContext(ctx context.Context) ClientInfo {
	client, _ := ctx.Value(clientContextKey{}).(ClientInfo)

	return client
}

// Client resolves the caller's address and transport. Forwarding headers are
// only honoured when the service runs behind a trusted proxy, otherwise any
// visitor could pick its own rate limit key.
func (a *appMiddleware) Client(next http.Handler) http.Handler {
	trustProxy := a.config.App.PublicBooking.TrustProxy
	hops := max(a.config.App.PublicBooking.TrustedProxyHops, 1)

	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		client := ClientInfo{
			IP:        getClientIP(request, trustProxy, hops),
			UserAgent: getUA(request),
			Secure:    isSecure(request, trustProxy),
		}

		next.ServeHTTP(writer, request.WithContext(WithClient(request.Context(), client)))
	})
}

func getUA(request *http.Request) string {
	if ua := request.Header.Get(constant.RequestHeaderUserAgent); ua != "" {
		return ua
	}

	return constant.Unknown
}

// getClientIP reads X-Forwarded-For from the right. Each trusted proxy appends
// the address it saw, so the entry hops positions from the end is the last one
// written by infrastructure; anything left of it is client supplied.
func getClientIP(request *http.Request, trustProxy bool, hops int) string {
	if trustProxy {
		if ip := forwardedFor(request.Header.Values(constant.RequestHeaderForwardedFor), hops); ip != "" {
			return ip
		}

		if realIP := strings.TrimSpace(request.Header.Get(constant.RequestHeaderRealIP)); realIP != "" {
			return realIP
		}
	}

	host, _, err := net.SplitHostPort(request.RemoteAddr)
	if err != nil {
		return request.RemoteAddr
	}

	return host
}

func forwardedFor(headers []string, hops int) string {
	var entries []string

	for _, header := range headers {
		for _, entry := range strings.Split(header, ",") {
			if entry = strings.TrimSpace(entry); entry != "" {
				entries = append(entries, entry)
			}
		}
	}

	if len(entries) == 0 {
		return ""
	}

	return entries[max(len(entries)-hops, 0)]
}

func isSecure(request *http.Request, trustProxy bool) bool {
	if request.TLS != nil {
		return true
	}

	return trustProxy && strings.EqualFold(request.Header.Get(constant.RequestHeaderForwardedProto), "https")
}
