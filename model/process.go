package model

// Process is the service instance that produced a span. It carries the
// service name and the process-level tags (hostname, pod name, rpc
// system and the like).
type Process struct {
	ServiceName string
	Tags        Tags
}

// Tag returns the string rendering of the tag under key, or "" if the
// process carries no such tag.
func (p *Process) Tag(key string) string {
	return p.Tags.GetString(key)
}
