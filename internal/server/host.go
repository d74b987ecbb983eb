package server

import (
	"net"
	"strings"
)

// subdomains returns the host's subdomain labels ordered most-specific
// last, the order args.ParseSubdomain expects. The registrable domain
// (last two labels) is dropped, so for us.termnews.example the result
// is ["us"] and for tobi.ferrets.example.com it is ["ferrets", "tobi"].
// Bare hosts like localhost or IP literals yield nil.
func subdomains(host string) []string {
	if h, _, err := net.SplitHostPort(host); err == nil {
		host = h
	}
	if net.ParseIP(host) != nil {
		return nil
	}
	labels := strings.Split(host, ".")
	if len(labels) <= 2 {
		return nil
	}
	labels = labels[:len(labels)-2]
	for i, j := 0, len(labels)-1; i < j; i, j = i+1, j-1 {
		labels[i], labels[j] = labels[j], labels[i]
	}
	return labels
}
