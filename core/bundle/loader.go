package bundle

import (
	"fmt"
	"io/fs"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// ParseTOML loads messages from TOML data into the bundle. Two entry shapes
// are accepted:
//
//	save = "Save"                    # shorthand: value-only message
//
//	[greeting]
//	value = "Hello, {$name}!"
//	[greeting.attributes]
//	title = "Greeting tooltip"
//
// Entries replace existing messages with the same id.
func (b *Bundle) ParseTOML(data []byte) error {
	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("bundle: parse messages: %w", err)
	}

	for id, entry := range raw {
		msg, err := messageFromEntry(id, entry)
		if err != nil {
			return err
		}
		if err := b.AddMessage(msg); err != nil {
			return err
		}
	}
	return nil
}

// LoadMessageFile loads messages from a TOML file on disk.
func (b *Bundle) LoadMessageFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("bundle: read %s: %w", path, err)
	}
	if err := b.ParseTOML(data); err != nil {
		return fmt.Errorf("%w (file %s)", err, path)
	}
	return nil
}

// LoadMessageFileFS loads messages from a TOML file in the given fs.FS,
// typically an embed.FS shipped with the application.
func (b *Bundle) LoadMessageFileFS(fsys fs.FS, path string) error {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return fmt.Errorf("bundle: read %s: %w", path, err)
	}
	if err := b.ParseTOML(data); err != nil {
		return fmt.Errorf("%w (file %s)", err, path)
	}
	return nil
}

func messageFromEntry(id string, entry any) (*Message, error) {
	switch v := entry.(type) {
	case string:
		return NewMessage(id, v, nil), nil
	case map[string]any:
		value := ""
		if raw, ok := v["value"]; ok {
			s, ok := raw.(string)
			if !ok {
				return nil, fmt.Errorf("%w: %s.value must be a string", ErrInvalidMessage, id)
			}
			value = s
		}
		var attrs map[string]string
		if raw, ok := v["attributes"]; ok {
			table, ok := raw.(map[string]any)
			if !ok {
				return nil, fmt.Errorf("%w: %s.attributes must be a table", ErrInvalidMessage, id)
			}
			attrs = make(map[string]string, len(table))
			for name, av := range table {
				s, ok := av.(string)
				if !ok {
					return nil, fmt.Errorf("%w: %s.attributes.%s must be a string", ErrInvalidMessage, id, name)
				}
				attrs[name] = s
			}
		}
		return NewMessage(id, value, attrs), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrInvalidMessage, id)
	}
}
