package catalog

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// RawRecord represents one entry of plugin_details.json as published.
// Field names drift between entries, so both the legacy top-level fields
// and the nested manifest fields are kept.
type RawRecord struct {
	ID                 Text         `json:"id"`
	Manifest           *RawManifest `json:"manifest,omitempty"`
	RepositoryURLSnake Text         `json:"repository_url"`
	RepositoryURLCamel Text         `json:"repositoryUrl"`
	Repository         Text         `json:"repository"`
	CreatedAt          Text         `json:"createdAt"`
}

// RawManifest is the nested manifest object of a RawRecord
type RawManifest struct {
	Name               Text `json:"name"`
	Version            Text `json:"version"`
	Description        Text `json:"description"`
	Author             Text `json:"author"`
	License            Text `json:"license"`
	Categories         List `json:"categories"`
	Keywords           List `json:"keywords"`
	RepositoryURLSnake Text `json:"repository_url"`
	RepositoryURLCamel Text `json:"repositoryUrl"`
	Repository         Text `json:"repository"`
	HomepageURLSnake   Text `json:"homepage_url"`
	HomepageURLCamel   Text `json:"homepageUrl"`
}

// UnmarshalJSON implements json.Unmarshaler. A record that is not a JSON
// object decodes as an empty record.
func (r *RawRecord) UnmarshalJSON(data []byte) error {
	type plain RawRecord
	var v plain
	if err := decodeObject(data, &v); err != nil {
		return err
	}
	*r = RawRecord(v)
	return nil
}

// UnmarshalJSON implements json.Unmarshaler. A manifest that is not a JSON
// object decodes as an empty manifest.
func (m *RawManifest) UnmarshalJSON(data []byte) error {
	type plain RawManifest
	var v plain
	if err := decodeObject(data, &v); err != nil {
		return err
	}
	*m = RawManifest(v)
	return nil
}

// decodeObject decodes data into v only when data holds a JSON object
func decodeObject(data []byte, v any) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || data[0] != '{' {
		return nil
	}
	return json.Unmarshal(data, v)
}

// Plugin is a normalized catalogue entry
type Plugin struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Version       string   `json:"version"`
	Description   string   `json:"description"`
	Author        string   `json:"author"`
	AuthorURL     string   `json:"authorUrl"`
	License       string   `json:"license"`
	Categories    []string `json:"categories"`
	Keywords      []string `json:"keywords"`
	RepositoryURL string   `json:"repositoryUrl"`
	HomepageURL   string   `json:"homepageUrl"`
	Tags          []string `json:"tags"`
	Downloads     int      `json:"downloads"`
	Featured      bool     `json:"featured"`
	Icon          string   `json:"icon"`
	CreatedAt     string   `json:"createdAt"`
}

// HasRepository reports whether the plugin links to a source repository
func (p Plugin) HasRepository() bool {
	return p.RepositoryURL != ""
}

// Text is a lenient JSON scalar. Strings decode as-is, numbers and booleans
// decode to their literal text, and anything else decodes to "".
type Text string

// UnmarshalJSON implements json.Unmarshaler
func (t *Text) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		*t = ""
		return nil
	}

	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*t = Text(s)
	case 't', 'f':
		b, err := strconv.ParseBool(string(data))
		if err != nil {
			*t = ""
			return nil
		}
		*t = Text(strconv.FormatBool(b))
	case '-', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		*t = Text(data)
	default:
		// null, objects and arrays carry no usable text
		*t = ""
	}
	return nil
}

// String returns the decoded text
func (t Text) String() string {
	return string(t)
}

// List is a lenient JSON string list. Non-string elements are skipped and
// a bare string decodes as a single-element list.
type List []string

// UnmarshalJSON implements json.Unmarshaler
func (l *List) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		*l = nil
		return nil
	}

	switch data[0] {
	case '[':
		var items []json.RawMessage
		if err := json.Unmarshal(data, &items); err != nil {
			return err
		}
		out := make([]string, 0, len(items))
		for _, item := range items {
			if len(item) == 0 || item[0] != '"' {
				continue
			}
			var s string
			if err := json.Unmarshal(item, &s); err == nil {
				out = append(out, s)
			}
		}
		*l = out
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*l = []string{s}
	default:
		*l = nil
	}
	return nil
}
