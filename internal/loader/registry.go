package loader

import (
	"os"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// ImportRegistry backs dep.Registry with imports.json, a flat map of
// "Namespace.Name" -> header filename (SPEC_FULL.md §6). Reads use
// gjson for path-based lookups without unmarshaling the whole document;
// Add uses sjson so appending one mapping never requires re-marshaling
// the rest (the `imports add` CLI subcommand's main reason to exist).
type ImportRegistry struct {
	Path string
	raw  string
}

// LoadImportRegistry reads path's current contents (an empty registry,
// "{}", if the file does not yet exist).
func LoadImportRegistry(path string) (*ImportRegistry, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &ImportRegistry{Path: path, raw: "{}"}, nil
	}
	if err != nil {
		return nil, err
	}
	return &ImportRegistry{Path: path, raw: string(data)}, nil
}

// Lookup implements dep.Registry.
func (r *ImportRegistry) Lookup(key string) (string, bool) {
	result := gjson.Get(r.raw, gjsonEscape(key))
	if !result.Exists() {
		return "", false
	}
	return result.String(), true
}

// Add inserts or overwrites key -> headerFile and persists the registry
// to disk.
func (r *ImportRegistry) Add(key, headerFile string) error {
	updated, err := sjson.Set(r.raw, gjsonEscape(key), headerFile)
	if err != nil {
		return err
	}
	r.raw = updated
	return os.WriteFile(r.Path, []byte(r.raw), 0o644)
}

// List returns every key currently registered, for the `imports list`
// CLI subcommand.
func (r *ImportRegistry) List() map[string]string {
	out := make(map[string]string)
	gjson.Parse(r.raw).ForEach(func(key, value gjson.Result) bool {
		out[key.String()] = value.String()
		return true
	})
	return out
}

// gjsonEscape escapes the "." that legitimately appears inside a
// "Namespace.Name" key so gjson/sjson don't treat it as a path
// separator.
func gjsonEscape(key string) string {
	escaped := make([]byte, 0, len(key)+2)
	for i := 0; i < len(key); i++ {
		if key[i] == '.' {
			escaped = append(escaped, '\\')
		}
		escaped = append(escaped, key[i])
	}
	return string(escaped)
}
