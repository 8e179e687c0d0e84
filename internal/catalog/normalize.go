package catalog

const (
	// DefaultAuthor is shown when a manifest names no author
	DefaultAuthor = "未知作者"
	// DefaultLicense is shown when a manifest names no license
	DefaultLicense = "Unknown"
	// DefaultIcon is used for unknown or missing categories
	DefaultIcon = "mdi:puzzle"
	// MaxTags is the number of display tags kept per plugin
	MaxTags = 5
)

var categoryIcons = map[string]string{
	"Moderation":         "mdi:shield-check",
	"Group Management":   "mdi:account-group",
	"Admin Tools":        "mdi:tools",
	"Entertainment":      "mdi:gamepad-variant",
	"Game":               "mdi:controller-classic",
	"AI Tools":           "mdi:robot",
	"Search":             "mdi:magnify",
	"Content Retrieval":  "mdi:download",
	"Image Processing":   "mdi:image-edit",
	"Content Generation": "mdi:creation",
	"music":              "mdi:music",
	"娱乐":                 "mdi:emoticon-happy",
	"音乐":                 "mdi:music-note",
	"图片":                 "mdi:image",
	"API":                "mdi:api",
	"工具":                 "mdi:wrench",
	"网络":                 "mdi:web",
	"AI功能":               "mdi:brain",
	"Management":         "mdi:cog",
	"Expression":         "mdi:emoticon",
	"Picture":            "mdi:camera",
	"语音":                 "mdi:microphone",
	"聊天增强":               "mdi:chat",
	"Developer Tools":    "mdi:code-braces",
}

// IconForCategory returns the icon identifier for a category label
func IconForCategory(category string) string {
	if icon, ok := categoryIcons[category]; ok {
		return icon
	}
	return DefaultIcon
}

// Normalize converts a raw record into a Plugin. It never fails: missing
// fields fall back to their documented defaults.
func Normalize(raw RawRecord, scorer Scorer) Plugin {
	manifest := raw.Manifest
	if manifest == nil {
		manifest = &RawManifest{}
	}

	categories := nonNil(manifest.Categories)
	keywords := nonNil(manifest.Keywords)

	icon := DefaultIcon
	if len(categories) > 0 {
		icon = IconForCategory(categories[0])
	}

	p := Plugin{
		ID:            raw.ID.String(),
		Name:          manifest.Name.String(),
		Version:       manifest.Version.String(),
		Description:   manifest.Description.String(),
		Author:        firstNonEmpty(manifest.Author.String(), DefaultAuthor),
		AuthorURL:     "",
		License:       firstNonEmpty(manifest.License.String(), DefaultLicense),
		Categories:    categories,
		Keywords:      keywords,
		RepositoryURL: ResolveRepositoryURL(raw),
		HomepageURL:   firstNonEmpty(manifest.HomepageURLSnake.String(), manifest.HomepageURLCamel.String()),
		Tags:          buildTags(categories, keywords),
		Icon:          icon,
		CreatedAt:     raw.CreatedAt.String(),
	}

	if scorer != nil {
		p.Downloads = scorer.Downloads(raw)
		p.Featured = scorer.Featured(raw)
	}

	return p
}

// NormalizeAll normalizes every record in order
func NormalizeAll(records []RawRecord, scorer Scorer) []Plugin {
	plugins := make([]Plugin, 0, len(records))
	for _, raw := range records {
		plugins = append(plugins, Normalize(raw, scorer))
	}
	return plugins
}

// ResolveRepositoryURL returns the first non-empty repository field, checking
// the manifest fields before the legacy top-level ones.
func ResolveRepositoryURL(raw RawRecord) string {
	var candidates []Text
	if m := raw.Manifest; m != nil {
		candidates = append(candidates, m.RepositoryURLSnake, m.RepositoryURLCamel, m.Repository)
	}
	candidates = append(candidates, raw.RepositoryURLSnake, raw.RepositoryURLCamel, raw.Repository)

	for _, c := range candidates {
		if c != "" {
			return c.String()
		}
	}
	return ""
}

func buildTags(categories, keywords []string) []string {
	tags := make([]string, 0, MaxTags)
	for _, group := range [][]string{categories, keywords} {
		for _, t := range group {
			if len(tags) == MaxTags {
				return tags
			}
			tags = append(tags, t)
		}
	}
	return tags
}

func nonNil(l List) []string {
	if l == nil {
		return []string{}
	}
	out := make([]string, len(l))
	copy(out, l)
	return out
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
