package security

import (
	"net"
	"net/http"
	"strings"
)

// ClientIP extracts the client address that rate limiting and the blocklist
// key on. The first entry of X-Forwarded-For is honored only when
// trustProxy is set, meaning the server sits behind a proxy that overwrites
// the header; otherwise any direct client could forge the header and dodge
// both checks, so the transport peer address is used with its port
// stripped.
func ClientIP(r *http.Request, trustProxy bool) string {
	if trustProxy {
		if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
			ip, _, _ := strings.Cut(fwd, ",")
			if ip = strings.TrimSpace(ip); ip != "" {
				return ip
			}
		}
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
