// Package quantizer reduces raw trace names (operation names, pod and
// container names, trace labels) to the canonical forms used as model
// element names and identity keys.
package quantizer

import (
	"regexp"
	"strings"
)

var (
	httpVerbRe   = regexp.MustCompile(`^(GET|POST|PUT|DELETE|PATCH|HEAD|OPTIONS)\s+`)
	specialsRe   = regexp.MustCompile(`[^A-Za-z0-9_\-/.]`)
	hashSuffixRe = regexp.MustCompile(`-[a-f0-9]{8,}(-[a-z0-9]{5})?$`)
)

// tracePrefixes are stripped from trace labels, case-insensitively.
// The misspelled Italian variants show up in real exports.
var tracePrefixes = []string{
	"traccia_", "traccia-",
	"taccia_", "taccia-",
	"trace_", "trace-",
}

// CleanOperationName reduces a raw operation name to the form used for
// element naming and identity: the leading HTTP verb token is dropped,
// characters outside [A-Za-z0-9_\-/.] become underscores and leading or
// trailing underscores are trimmed. Empty results collapse to
// "unknown". The function is idempotent.
func CleanOperationName(name string) string {
	if name == "" {
		return "unknown"
	}
	cleaned := httpVerbRe.ReplaceAllString(name, "")
	cleaned = specialsRe.ReplaceAllString(cleaned, "_")
	cleaned = strings.Trim(cleaned, "_")
	if cleaned == "" {
		return "unknown"
	}
	return cleaned
}

// SimpleOperationName reduces an operation name to its final segment:
// the name is cleaned, then cut after the last "/", then after the last
// ".". "hipstershop.CartService/EmptyCart" becomes "EmptyCart" and
// "GET /api/users" becomes "users".
func SimpleOperationName(name string) string {
	if name == "" {
		return "unknown"
	}
	simple := CleanOperationName(name)
	if i := strings.LastIndex(simple, "/"); i >= 0 {
		simple = simple[i+1:]
	}
	if i := strings.LastIndex(simple, "."); i >= 0 {
		simple = simple[i+1:]
	}
	if simple == "" {
		return "unknown"
	}
	return simple
}

// BaseName strips the trailing orchestrator-generated hash segments
// from pod and container names:
// "recommendationservice-7d5c8f9b8-xk7pt" -> "recommendationservice".
func BaseName(name string) string {
	if name == "" {
		return name
	}
	return hashSuffixRe.ReplaceAllString(name, "")
}

// CleanTraceName strips common trace-label prefixes. The original name
// is kept when stripping would leave nothing.
func CleanTraceName(name string) string {
	if name == "" {
		return name
	}
	lower := strings.ToLower(name)
	for _, prefix := range tracePrefixes {
		if strings.HasPrefix(lower, prefix) {
			cleaned := name[len(prefix):]
			if cleaned == "" {
				return name
			}
			return cleaned
		}
	}
	return name
}

// PascalCase converts a service name to PascalCase for interface
// naming. "service" suffixes are dropped first so "cart-service" maps
// to "Cart".
func PascalCase(name string) string {
	clean := strings.ReplaceAll(name, "Service", "")
	clean = strings.ReplaceAll(clean, "service", "")
	clean = strings.ReplaceAll(clean, "-", " ")
	clean = strings.ReplaceAll(clean, "_", " ")

	parts := strings.Fields(clean)
	if len(parts) == 0 {
		if name == "" {
			return ""
		}
		return strings.ToUpper(name[:1]) + strings.ToLower(name[1:])
	}
	var b strings.Builder
	for _, part := range parts {
		b.WriteString(strings.ToUpper(part[:1]))
		b.WriteString(strings.ToLower(part[1:]))
	}
	return b.String()
}
