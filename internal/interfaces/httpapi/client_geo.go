package httpapi

import (
	"net/http"
	"net/netip"
	"strings"
)

const unknownCountry = "ZZ"

// Proxy headers checked in order before falling back to RemoteAddr.
var (
	clientIPHeaders      = []string{"Fly-Client-IP", "X-Forwarded-For", "X-Real-IP"}
	clientCountryHeaders = []string{
		"Fly-Client-Country",
		"CF-IPCountry",
		"X-Vercel-IP-Country",
		"CloudFront-Viewer-Country",
	}
)

// requestOrigin is where a dashboard request came from, for the access log.
type requestOrigin struct {
	IP      string
	Country string
}

func resolveRequestOrigin(r *http.Request) requestOrigin {
	origin := requestOrigin{Country: unknownCountry}

	for _, header := range clientIPHeaders {
		if ip, ok := parseClientIP(r.Header.Get(header)); ok {
			origin.IP = ip
			break
		}
	}
	if origin.IP == "" {
		if ip, ok := parseClientIP(r.RemoteAddr); ok {
			origin.IP = ip
		}
	}

	for _, header := range clientCountryHeaders {
		if code, ok := parseCountryCode(r.Header.Get(header)); ok {
			origin.Country = code
			break
		}
	}

	return origin
}

// parseClientIP accepts a bare address, host:port, or the first entry of a
// forwarded-for list.
func parseClientIP(raw string) (string, bool) {
	value, _, _ := strings.Cut(raw, ",")
	value = strings.TrimSpace(value)
	if value == "" {
		return "", false
	}

	if addrPort, err := netip.ParseAddrPort(value); err == nil {
		return addrPort.Addr().Unmap().String(), true
	}
	addr, err := netip.ParseAddr(value)
	if err != nil {
		return "", false
	}
	return addr.Unmap().String(), true
}

func parseCountryCode(raw string) (string, bool) {
	code := strings.ToUpper(strings.TrimSpace(raw))
	if len(code) != 2 {
		return "", false
	}
	for _, r := range code {
		if r < 'A' || r > 'Z' {
			return "", false
		}
	}
	return code, true
}
