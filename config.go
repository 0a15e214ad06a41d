package sitesearch

import (
	"context"
	"encoding/json"
)

// Names of the static artifacts the search client loads.
const (
	IndexArtifact        = "search-index.json"
	SynonymsArtifact     = "synonyms.json"
	TranslationsArtifact = "translations.json"
	MetadataArtifact     = "metadata.json"
	IconsArtifact        = "icons.json"
)

// ArtifactSource loads static JSON artifacts by name.
type ArtifactSource interface {
	// Load returns the raw artifact contents.
	// Returns ENOTFOUND if the artifact does not exist.
	Load(ctx context.Context, name string) ([]byte, error)
}

// Synonyms maps a canonical intent key (e.g. "aged_care") to phrases
// considered equivalent to it.
type Synonyms map[string][]string

// Translations maps an intent key to localized phrases keyed by locale.
type Translations map[string]map[string]string

// Phrase returns the phrase for intent in lang, or "" when missing.
func (t Translations) Phrase(intent, lang string) string {
	return t[intent][lang]
}

// Icons maps keys to icon identifiers. Loaded with the other artifacts but
// not consulted by ranking.
type Icons map[string]string

// ServiceMeta holds editorial ranking knobs for a route.
type ServiceMeta struct {
	Intent   string   `json:"intent,omitempty"`
	Category string   `json:"category,omitempty"`
	Priority *float64 `json:"priority,omitempty"`
	Tags     []string `json:"tags,omitempty"`
}

// UnmarshalJSON decodes a metadata entry, discarding a priority that is not
// a JSON number.
func (m *ServiceMeta) UnmarshalJSON(data []byte) error {
	var raw struct {
		Intent   string          `json:"intent"`
		Category string          `json:"category"`
		Priority json.RawMessage `json:"priority"`
		Tags     []string        `json:"tags"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	m.Intent, m.Category, m.Tags, m.Priority = raw.Intent, raw.Category, raw.Tags, nil
	if len(raw.Priority) > 0 {
		var p float64
		if err := json.Unmarshal(raw.Priority, &p); err == nil {
			m.Priority = &p
		}
	}
	return nil
}

// Metadata maps route paths to their editorial metadata.
type Metadata map[string]*ServiceMeta

// DecodeMetadata parses a metadata artifact. Entries that fail to decode
// are dropped rather than failing the whole artifact.
func DecodeMetadata(data []byte) (Metadata, error) {
	var entries map[string]json.RawMessage
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, Errorf(EINVALID, "invalid metadata: %v", err)
	}
	md := make(Metadata, len(entries))
	for path, raw := range entries {
		var m ServiceMeta
		if err := json.Unmarshal(raw, &m); err != nil {
			continue
		}
		md[path] = &m
	}
	return md, nil
}
