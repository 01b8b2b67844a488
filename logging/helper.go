package logging

import (
	"math"
	"net"
	"net/http"
	"strings"
	"time"
)

type Fields map[string]interface{}

// filterHeader picks the listed keys out of the given header set, joining
// multiple values per key. Keys without a value are dropped.
func filterHeader(keys []string, src http.Header) map[string]string {
	filtered := make(map[string]string, len(keys))
	for _, key := range keys {
		values := src.Values(key)
		if len(values) == 0 || values[0] == "" {
			continue
		}
		filtered[strings.ToLower(key)] = strings.Join(values, "|")
	}
	return filtered
}

func splitHostPort(hostport string) (string, string) {
	host, port, err := net.SplitHostPort(hostport)
	if err != nil {
		return hostport, ""
	}
	return host, port
}

// RoundMS converts the duration into milliseconds with microsecond precision.
func RoundMS(d time.Duration) float64 {
	return math.Round(float64(d)/float64(time.Millisecond)*1000) / 1000
}
