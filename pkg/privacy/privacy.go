// Package privacy provides the IP anonymization primitive shared by the
// contact intake pipeline and page-view logging.
package privacy

import "strings"

// anonymizedFallback is stored when the input does not look like an IP at all.
const anonymizedFallback = "anonymized"

// AnonymizeIP zeroes the host-identifying suffix of an IP address.
//
// IPv4 addresses keep their first three octets ("192.168.1.100" becomes
// "192.168.1.0"); IPv6 addresses keep their first four hextets with the rest
// zeroed. Anything that does not match either shape collapses to the literal
// "anonymized". The function is total: it never fails, whatever the input.
func AnonymizeIP(ip string) string {
	if strings.Contains(ip, ":") {
		parts := strings.Split(ip, ":")
		if len(parts) >= 4 {
			return strings.Join(parts[:4], ":") + ":0000:0000:0000:0000"
		}
		return anonymizedFallback
	}

	parts := strings.Split(ip, ".")
	if len(parts) == 4 {
		return strings.Join(parts[:3], ".") + ".0"
	}
	return anonymizedFallback
}
