package claude

// Document is a parsed Claude Desktop configuration.
// The values of mcpServers are opaque: they are kept as decoded, never interpreted.
type Document struct {
	raw     []byte
	data    map[string]any
	servers []string
}

// Data returns the decoded top-level object.
func (d *Document) Data() map[string]any {
	return d.data
}

// Servers returns the registered MCP server names in file order.
func (d *Document) Servers() []string {
	return append([]string(nil), d.servers...)
}

// Server returns the configuration registered for name.
func (d *Document) Server(name string) (any, bool) {
	servers, ok := d.data[ServersKey].(map[string]any)
	if !ok {
		return nil, false
	}

	v, ok := servers[name]
	return v, ok
}

// HasServer reports whether name is registered under mcpServers.
func (d *Document) HasServer(name string) bool {
	_, ok := d.Server(name)
	return ok
}

// MarshalJSON returns the document as standard JSON, preserving the file's key order.
func (d *Document) MarshalJSON() ([]byte, error) {
	return append([]byte(nil), d.raw...), nil
}

// MarshalYAML implements yaml.Marshaler.
func (d *Document) MarshalYAML() (any, error) {
	return d.data, nil
}
