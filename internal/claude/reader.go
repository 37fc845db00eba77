// Package claude reads the Claude Desktop configuration file.
//
// The file must be standard JSON, since that is all Claude Desktop accepts: comments and
// trailing commas are reported as malformed. A missing file is a normal state ("not configured yet") and is not an error.
package claude

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/afero"
	"github.com/tailscale/hujson"
	"github.com/xeipuuv/gojsonschema"

	"github.com/devboot-cli/devboot/internal/errors"
	"github.com/devboot-cli/devboot/internal/files"
)

// ServersKey is the top-level key holding MCP server registrations.
const ServersKey = "mcpServers"

//go:embed schema.json
var schema []byte

// Reader loads the Claude Desktop configuration from a single path.
type Reader struct {
	fs   afero.Fs
	path string
}

// NewReader returns a Reader for the config at path.
func NewReader(fs afero.Fs, path string) (*Reader, error) {
	if fs == nil {
		return nil, fmt.Errorf("filesystem cannot be nil")
	}
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("config path cannot be empty")
	}

	return &Reader{fs: fs, path: path}, nil
}

// Path returns the location of the config file.
func (r *Reader) Path() string {
	return r.path
}

// Read loads and parses the config file.
// It returns (nil, nil) when the file does not exist, and an error wrapping ErrConfigMalformed
// when the file cannot be parsed or its top-level shape is wrong.
func (r *Reader) Read() (*Document, error) {
	ok, err := files.Exists(r.fs, r.path)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}

	raw, err := afero.ReadFile(r.fs, r.path)
	if err != nil {
		return nil, fmt.Errorf("could not read Claude config '%s': %w", r.path, err)
	}

	doc, err := Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid Claude config '%s': %w", r.path, err)
	}

	return doc, nil
}

// Parse parses the content of a Claude Desktop config file.
func Parse(raw []byte) (*Document, error) {
	root, err := hujson.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errors.ErrConfigMalformed, err)
	}

	if !root.IsStandard() {
		return nil, fmt.Errorf("%w: comments and trailing commas are not allowed", errors.ErrConfigMalformed)
	}
	standard := root.Pack()

	if err := validate(standard); err != nil {
		return nil, err
	}

	var data map[string]any
	if err := json.Unmarshal(standard, &data); err != nil {
		return nil, fmt.Errorf("%w: %w", errors.ErrConfigMalformed, err)
	}

	names, err := serverNames(&root)
	if err != nil {
		return nil, err
	}

	return &Document{raw: standard, data: data, servers: names}, nil
}

func validate(doc []byte) error {
	result, err := gojsonschema.Validate(gojsonschema.NewBytesLoader(schema), gojsonschema.NewBytesLoader(doc))
	if err != nil {
		return fmt.Errorf("%w: %w", errors.ErrConfigMalformed, err)
	}
	if result.Valid() {
		return nil
	}

	problems := make([]string, 0, len(result.Errors()))
	for _, e := range result.Errors() {
		problems = append(problems, fmt.Sprintf("%s: %s", e.Field(), e.Description()))
	}

	return fmt.Errorf("%w: %s", errors.ErrConfigMalformed, strings.Join(problems, "; "))
}

// serverNames returns the mcpServers keys in file order, dropping repeats.
func serverNames(root *hujson.Value) ([]string, error) {
	v := root.Find("/" + ServersKey)
	if v == nil {
		return nil, nil
	}

	obj, ok := v.Value.(*hujson.Object)
	if !ok {
		return nil, fmt.Errorf("%w: '%s' must be an object", errors.ErrConfigMalformed, ServersKey)
	}

	names := make([]string, 0, len(obj.Members))
	seen := make(map[string]struct{}, len(obj.Members))
	for _, m := range obj.Members {
		lit, ok := m.Name.Value.(hujson.Literal)
		if !ok {
			return nil, fmt.Errorf("%w: invalid key in '%s'", errors.ErrConfigMalformed, ServersKey)
		}

		var name string
		if err := json.Unmarshal(lit, &name); err != nil {
			return nil, fmt.Errorf("%w: invalid key in '%s': %w", errors.ErrConfigMalformed, ServersKey, err)
		}

		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}

	return names, nil
}
