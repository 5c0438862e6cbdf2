package middleware

import (
	"context"
	"net"
	"net/http"
	"strings"
)

const ClientIPKey contextKey = "client_ip"

// Checked in order; the first header that yields a usable address wins.
var clientIPHeaders = []string{
	"X-Client-IP",
	"X-Forwarded-For",
	"X-Forwarded",
	"X-Cluster-Client-IP",
	"Forwarded-For",
	"Forwarded",
}

// ClientIP stores the resolved client address for audit entries.
func ClientIP(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := context.WithValue(r.Context(), ClientIPKey, ResolveClientIP(r))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// ResolveClientIP prefers the first public address found in the proxy
// headers and falls back to the connection's remote address.
func ResolveClientIP(r *http.Request) string {
	var firstPrivate string
	for _, header := range clientIPHeaders {
		value := r.Header.Get(header)
		if value == "" {
			continue
		}
		for _, candidate := range strings.Split(value, ",") {
			ip := parseCandidate(candidate)
			if ip == nil {
				continue
			}
			if !ip.IsPrivate() && !ip.IsLoopback() && !ip.IsUnspecified() {
				return ip.String()
			}
			if firstPrivate == "" {
				firstPrivate = ip.String()
			}
		}
	}
	if firstPrivate != "" {
		return firstPrivate
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		host = r.RemoteAddr
	}
	if host == "" {
		return "Unknown"
	}
	return host
}

// parseCandidate accepts plain addresses and the "for=" element of a
// Forwarded header.
func parseCandidate(candidate string) net.IP {
	candidate = strings.TrimSpace(candidate)
	for _, part := range strings.Split(candidate, ";") {
		part = strings.TrimSpace(part)
		if strings.HasPrefix(strings.ToLower(part), "for=") {
			candidate = strings.Trim(part[4:], `"`)
			break
		}
	}
	if host, _, err := net.SplitHostPort(candidate); err == nil {
		candidate = host
	}
	candidate = strings.TrimSuffix(strings.TrimPrefix(candidate, "["), "]")
	return net.ParseIP(candidate)
}

// GetClientIPFromContext extracts the client address from context
func GetClientIPFromContext(ctx context.Context) string {
	ip, _ := ctx.Value(ClientIPKey).(string)
	return ip
}
