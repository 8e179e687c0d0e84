package catalog

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeRecord(t *testing.T, src string) RawRecord {
	t.Helper()
	var raw RawRecord
	require.NoError(t, json.Unmarshal([]byte(src), &raw))
	return raw
}

func TestNormalize_Defaults(t *testing.T) {
	t.Parallel()

	raw := decodeRecord(t, `{"id":1,"manifest":{"name":"Foo","categories":["music"]},"createdAt":"2024-01-01"}`)
	p := Normalize(raw, FixedScorer{DownloadCount: 500})

	assert.Equal(t, "1", p.ID)
	assert.Equal(t, "Foo", p.Name)
	assert.Equal(t, "mdi:music", p.Icon)
	assert.Equal(t, "未知作者", p.Author)
	assert.Equal(t, "Unknown", p.License)
	assert.Equal(t, "", p.RepositoryURL)
	assert.Equal(t, "", p.HomepageURL)
	assert.Equal(t, "2024-01-01", p.CreatedAt)
	assert.Equal(t, []string{"music"}, p.Categories)
	assert.Equal(t, []string{}, p.Keywords)
	assert.Equal(t, []string{"music"}, p.Tags)
	assert.Equal(t, 500, p.Downloads)
	assert.False(t, p.Featured)
}

func TestNormalize_MissingManifest(t *testing.T) {
	t.Parallel()

	p := Normalize(decodeRecord(t, `{"id":"x","repository":"someone/thing"}`), nil)

	assert.Equal(t, "x", p.ID)
	assert.Empty(t, p.Name)
	assert.Equal(t, DefaultAuthor, p.Author)
	assert.Equal(t, DefaultLicense, p.License)
	assert.Equal(t, DefaultIcon, p.Icon)
	assert.NotNil(t, p.Categories)
	assert.NotNil(t, p.Keywords)
	assert.NotNil(t, p.Tags)
	assert.Equal(t, "someone/thing", p.RepositoryURL)
}

func TestNormalize_LenientFields(t *testing.T) {
	t.Parallel()

	raw := decodeRecord(t, `{
		"id": null,
		"manifest": {
			"name": "Bar",
			"version": 2,
			"author": {"name": "nested"},
			"license": null,
			"categories": "工具",
			"keywords": ["a", 3, "b", null]
		}
	}`)
	p := Normalize(raw, nil)

	assert.Equal(t, "", p.ID)
	assert.Equal(t, "2", p.Version)
	assert.Equal(t, DefaultAuthor, p.Author)
	assert.Equal(t, DefaultLicense, p.License)
	assert.Equal(t, []string{"工具"}, p.Categories)
	assert.Equal(t, []string{"a", "b"}, p.Keywords)
	assert.Equal(t, "mdi:wrench", p.Icon)
}

func TestNormalize_TagsTruncated(t *testing.T) {
	t.Parallel()

	raw := decodeRecord(t, `{"manifest":{"categories":["c1","c2","c3"],"keywords":["k1","k2","k3"]}}`)
	p := Normalize(raw, nil)

	assert.Equal(t, []string{"c1", "c2", "c3", "k1", "k2"}, p.Tags)
	assert.Len(t, p.Keywords, 3)
}

func TestNormalize_Homepage(t *testing.T) {
	t.Parallel()

	snake := Normalize(decodeRecord(t, `{"manifest":{"homepage_url":"https://a","homepageUrl":"https://b"}}`), nil)
	camel := Normalize(decodeRecord(t, `{"manifest":{"homepageUrl":"https://b"}}`), nil)

	assert.Equal(t, "https://a", snake.HomepageURL)
	assert.Equal(t, "https://b", camel.HomepageURL)
}

func TestResolveRepositoryURL_Priority(t *testing.T) {
	t.Parallel()

	fields := []struct {
		name string
		json string
	}{
		{"manifest.repository_url", `"manifest":{"repository_url":"m1"}`},
		{"manifest.repositoryUrl", `"manifest":{"repositoryUrl":"m2"}`},
		{"manifest.repository", `"manifest":{"repository":"m3"}`},
		{"repository_url", `"repository_url":"t1"`},
		{"repositoryUrl", `"repositoryUrl":"t2"`},
		{"repository", `"repository":"t3"`},
	}

	tests := []struct {
		name string
		json string
		want string
	}{
		{
			name: "all populated picks manifest snake case",
			json: `{"manifest":{"repository_url":"m1","repositoryUrl":"m2","repository":"m3"},"repository_url":"t1","repositoryUrl":"t2","repository":"t3"}`,
			want: "m1",
		},
		{
			name: "manifest camel before top-level",
			json: `{"manifest":{"repositoryUrl":"m2","repository":"m3"},"repository_url":"t1"}`,
			want: "m2",
		},
		{
			name: "empty manifest values are skipped",
			json: `{"manifest":{"repository_url":"","repositoryUrl":"","repository":""},"repositoryUrl":"t2","repository":"t3"}`,
			want: "t2",
		},
		{
			name: "only legacy repository",
			json: `{"repository":"t3"}`,
			want: "t3",
		},
		{
			name: "none",
			json: `{"manifest":{}}`,
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveRepositoryURL(decodeRecord(t, tt.json)))
		})
	}

	// Each field alone is picked up
	for _, f := range fields {
		t.Run("single "+f.name, func(t *testing.T) {
			raw := decodeRecord(t, "{"+f.json+"}")
			assert.NotEmpty(t, ResolveRepositoryURL(raw))
		})
	}
}

func TestIconForCategory(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "mdi:shield-check", IconForCategory("Moderation"))
	assert.Equal(t, "mdi:chat", IconForCategory("聊天增强"))
	assert.Equal(t, "mdi:code-braces", IconForCategory("Developer Tools"))
	assert.Equal(t, DefaultIcon, IconForCategory("Music"))
	assert.Equal(t, DefaultIcon, IconForCategory(""))
	assert.Len(t, categoryIcons, 24)
}

func TestRandomScorer_Range(t *testing.T) {
	t.Parallel()

	s := NewSeededScorer(7)
	featured := 0
	for i := 0; i < 2000; i++ {
		d := s.Downloads(RawRecord{})
		assert.GreaterOrEqual(t, d, 100)
		assert.Less(t, d, 10100)
		if s.Featured(RawRecord{}) {
			featured++
		}
	}
	// ~30% with generous bounds
	assert.Greater(t, featured, 400)
	assert.Less(t, featured, 800)
}

func TestSeededScorer_Deterministic(t *testing.T) {
	t.Parallel()

	a := NewSeededScorer(42)
	b := NewSeededScorer(42)
	for i := 0; i < 20; i++ {
		assert.Equal(t, a.Downloads(RawRecord{}), b.Downloads(RawRecord{}))
		assert.Equal(t, a.Featured(RawRecord{}), b.Featured(RawRecord{}))
	}
}
