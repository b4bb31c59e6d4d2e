package clientip

import (
	"net"
	"net/http"
	"net/netip"
	"strings"
)

// FromRequest returns the client IP of r. The first header in trusted holding
// a valid address wins; X-Forwarded-For style lists yield their first valid
// entry. RemoteAddr is the fallback. An empty string means no valid address.
func FromRequest(r *http.Request, trusted ...string) string {
	for _, header := range trusted {
		for value := range strings.SplitSeq(r.Header.Get(header), ",") {
			if ip := normalize(value); ip != "" {
				return ip
			}
		}
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		host = r.RemoteAddr
	}
	return normalize(host)
}

// normalize parses s as an IP address and returns its canonical text form.
// IPv4-mapped IPv6 addresses are reported as IPv4.
func normalize(s string) string {
	addr, err := netip.ParseAddr(strings.TrimSpace(s))
	if err != nil {
		return ""
	}
	return addr.Unmap().String()
}
