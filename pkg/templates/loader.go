package templates

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-formbuilder/pkg/model"
)

type packFile struct {
	Templates []templateFile `json:"templates" yaml:"templates"`
}

type templateFile struct {
	Type        string                `json:"type" yaml:"type"`
	Label       string                `json:"label" yaml:"label"`
	Icon        string                `json:"icon" yaml:"icon"`
	Name        string                `json:"name" yaml:"name"`
	Title       model.LocalizedString `json:"title" yaml:"title"`
	Placeholder model.LocalizedString `json:"placeholder" yaml:"placeholder"`
	IsRequired  bool                  `json:"isRequired" yaml:"isRequired"`
	Choices     []choiceFile          `json:"choices" yaml:"choices"`
	Rows        *int                  `json:"rows" yaml:"rows"`
	Extra       map[string]any        `json:"extra" yaml:"extra"`
}

type choiceFile struct {
	Value string                `json:"value" yaml:"value"`
	Text  model.LocalizedString `json:"text" yaml:"text"`
}

// LoadFS walks fsys and parses every JSON/YAML template pack it finds. Files
// are visited in lexical order so registration order is deterministic. A nil
// filesystem yields no templates.
func LoadFS(fsys fs.FS) ([]Template, error) {
	if fsys == nil {
		return nil, nil
	}

	var paths []string
	err := fs.WalkDir(fsys, ".", func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() || !isPackFile(path) {
			return nil
		}
		paths = append(paths, path)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("templates: walk packs: %w", err)
	}
	sort.Strings(paths)

	var out []Template
	for _, path := range paths {
		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return nil, fmt.Errorf("templates: read %s: %w", path, err)
		}
		pack, err := parsePack(data, path)
		if err != nil {
			return nil, err
		}
		for idx, raw := range pack.Templates {
			tpl, err := raw.template()
			if err != nil {
				return nil, fmt.Errorf("templates: %s entry %d: %w", path, idx, err)
			}
			out = append(out, tpl)
		}
	}
	return out, nil
}

func parsePack(data []byte, source string) (packFile, error) {
	var pack packFile
	if len(strings.TrimSpace(string(data))) == 0 {
		return packFile{}, fmt.Errorf("%w: file %s is empty", ErrInvalidTemplate, source)
	}
	if err := json.Unmarshal(data, &pack); err == nil {
		return pack, nil
	}
	pack = packFile{}
	if err := yaml.Unmarshal(data, &pack); err == nil {
		return pack, nil
	}
	return packFile{}, fmt.Errorf("%w: parse %s: invalid JSON or YAML", ErrInvalidTemplate, source)
}

func (raw templateFile) template() (Template, error) {
	kind := strings.TrimSpace(raw.Type)
	if kind == "" {
		return Template{}, fmt.Errorf("%w: type is required", ErrInvalidTemplate)
	}
	field := model.Field{
		Name:        strings.TrimSpace(raw.Name),
		Type:        model.FieldType(kind),
		Title:       raw.Title.Clone(),
		Placeholder: raw.Placeholder.Clone(),
		IsRequired:  raw.IsRequired,
		Rows:        raw.Rows,
		Extra:       raw.Extra,
	}
	if raw.Choices != nil {
		field.Choices = make([]model.Choice, 0, len(raw.Choices))
		seen := make(map[string]struct{}, len(raw.Choices))
		for _, choice := range raw.Choices {
			value := strings.TrimSpace(choice.Value)
			if value == "" {
				return Template{}, fmt.Errorf("%w: choice value is required", ErrInvalidTemplate)
			}
			if _, dup := seen[value]; dup {
				return Template{}, fmt.Errorf("%w: duplicate choice value %q", ErrInvalidTemplate, value)
			}
			seen[value] = struct{}{}
			text := choice.Text.Clone()
			if _, ok := text[model.LocaleDefault]; !ok {
				text = text.Set(model.LocaleDefault, value)
			}
			field.Choices = append(field.Choices, model.Choice{Value: value, Text: text})
		}
	}
	return Template{
		Type:  model.FieldType(kind),
		Label: raw.Label,
		Icon:  raw.Icon,
		Field: field,
	}, nil
}

func isPackFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".yaml", ".yml":
		return true
	default:
		return false
	}
}
