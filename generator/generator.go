// Package generator turns traces into UML model documents. Each
// generator variant consumes the aggregated service summary (plus the
// raw per-trace span sequences where needed) and materializes a typed
// element tree through the xmi package.
package generator

import (
	"fmt"
	"hash/fnv"
	"sort"
	"strings"

	"github.com/HiImLuxifer/UML-Generator/model"
	"github.com/HiImLuxifer/UML-Generator/quantizer"
)

// Generator is the capability contract shared by all diagram
// generators: produce one document from a list of traces. A generator
// holds no per-request state; every GenerateXMI call owns its own
// identity registry and deduplication sets.
type Generator interface {
	// DiagramType names the kind of diagram produced, e.g. "component".
	DiagramType() string
	// GenerateXMI produces the document text. Zero traces yield an
	// empty string and no error.
	GenerateXMI(traces []*model.Trace) (string, error)
}

// modelName derives the document model name from the first trace's
// source label, falling back to the given default.
func modelName(traces []*model.Trace, suffix, fallback string) string {
	if len(traces) > 0 && traces[0].SourceName != "" {
		return traces[0].SourceName + "_" + suffix
	}
	return fallback
}

// Metadata keys consulted for deployment node resolution, in priority
// order.
const (
	tagPodName       = "pod.name"
	tagK8sPodName    = "k8s.pod.name"
	tagContainerName = "container.name"
	tagContainerID   = "container.id"
	tagHostname      = "hostname"
	tagInstanceID    = "instance.id"
	tagHostName      = "host.name"
	tagNodeName      = "node.name"
	tagHostIP        = "host.ip"
)

// nodeNameFor maps service metadata to a deployment node name. The
// first non-empty key in priority order wins; pod and container names
// are stripped of orchestrator hash suffixes. Services with no usable
// metadata get a deterministic fallback derived from the map contents.
func nodeNameFor(meta model.Tags) string {
	if len(meta) == 0 {
		return "Node-Unknown"
	}

	if pod := firstTag(meta, tagPodName, tagK8sPodName); pod != "" {
		return quantizer.BaseName(pod)
	}
	if name := meta.GetString(tagContainerName); name != "" {
		return quantizer.BaseName(name)
	}
	if id := meta.GetString(tagContainerID); id != "" {
		if len(id) > 12 {
			id = id[:12]
		}
		return "Container-" + id
	}
	if host := firstTag(meta, tagHostname, tagInstanceID, tagHostName, tagNodeName); host != "" {
		return host
	}
	if ip := meta.GetString(tagHostIP); ip != "" {
		return "Host-" + ip
	}

	return fmt.Sprintf("Node-%d", metaFingerprint(meta))
}

func firstTag(meta model.Tags, keys ...string) string {
	for _, key := range keys {
		if v := meta.GetString(key); v != "" {
			return v
		}
	}
	return ""
}

// metaFingerprint hashes the sorted key=value pairs so the fallback
// node name is stable across runs for identical metadata.
func metaFingerprint(meta model.Tags) uint32 {
	keys := make([]string, 0, len(meta))
	for k := range meta {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	h := fnv.New32a()
	for _, k := range keys {
		h.Write([]byte(k))
		h.Write([]byte("="))
		h.Write([]byte(meta.GetString(k)))
		h.Write([]byte(";"))
	}
	return h.Sum32() % 10000
}

// Service categories for package organization in the interface-based
// component view. Keyword order matters: the first match wins.
var serviceCategories = []struct {
	keyword  string
	category string
}{
	{"frontend", "Presentation"},
	{"ui", "Presentation"},
	{"web", "Presentation"},
	{"client", "Presentation"},
	{"gateway", "Presentation"},
	{"database", "DataLayer"},
	{"db", "DataLayer"},
	{"mongo", "DataLayer"},
	{"postgres", "DataLayer"},
	{"mysql", "DataLayer"},
	{"redis", "DataLayer"},
	{"cache", "DataLayer"},
	{"memcache", "DataLayer"},
}

var categoryOrder = []string{"Presentation", "Services", "DataLayer"}

// categorizeServices buckets services into presentation, generic and
// data-layer packages by naming convention. Only non-empty categories
// are returned, in fixed order.
func categorizeServices(services []string) map[string][]string {
	categories := make(map[string][]string)
	for _, service := range services {
		lower := strings.ToLower(service)
		category := "Services"
		for _, c := range serviceCategories {
			if strings.Contains(lower, c.keyword) {
				category = c.category
				break
			}
		}
		categories[category] = append(categories[category], service)
	}
	return categories
}

// detectServiceStereotype guesses a component stereotype from the
// service name and, for RPC detection, its metadata.
func detectServiceStereotype(service string, meta model.Tags) string {
	if service == "" {
		return ""
	}
	lower := strings.ToLower(service)

	if containsAny(lower, "frontend", "ui", "web", "client") {
		return "WebUI"
	}
	if containsAny(lower, "gateway", "api-gateway", "ingress") {
		return "Gateway"
	}
	if containsAny(lower, "database", "db", "mongo", "postgres", "mysql") {
		return "Database"
	}
	if containsAny(lower, "cache", "redis", "memcache") {
		return "Cache"
	}
	if meta != nil {
		if rpc := meta.GetString("rpc.system"); strings.Contains(strings.ToLower(rpc), "grpc") {
			return "gRPC Service"
		}
	}
	if strings.HasSuffix(lower, "service") {
		return "Microservice"
	}
	return "Component"
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

// simpleOperationNames maps raw operation names (already sorted) to
// their ordered distinct simple forms. Raw names colliding on the same
// simple name merge into one entry; downstream identity allocation
// relies on this merge.
func simpleOperationNames(rawOps []string) []string {
	seen := make(map[string]struct{}, len(rawOps))
	var out []string
	for _, raw := range rawOps {
		simple := quantizer.SimpleOperationName(raw)
		if _, ok := seen[simple]; ok {
			continue
		}
		seen[simple] = struct{}{}
		out = append(out, simple)
	}
	return out
}
