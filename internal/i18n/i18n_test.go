package i18n

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testFS = fstest.MapFS{
	"locales/en-us.json": &fstest.MapFile{Data: []byte(`{
		"NoPlugins": "No plugins available.",
		"PageFooter": "Page {{.Page}} of {{.Total}}",
		"ListHeader": {"one": "{{.Count}} plugin", "other": "{{.Count}} plugins"}
	}`)},
	"locales/zh-cn.json": &fstest.MapFile{Data: []byte(`{
		"NoPlugins": "暂无插件",
		"ListHeader": {"other": "共 {{.Count}} 个插件"}
	}`)},
}

// Tests share the package-level localizer and run sequentially.

func TestT_Uninitialized(t *testing.T) {
	bundle, localizer = nil, nil
	assert.Equal(t, "NoPlugins", T("NoPlugins", nil))
	SetLocale("zh-CN")
	assert.Equal(t, "NoPlugins", T("NoPlugins", nil))
}

func TestT_English(t *testing.T) {
	require.NoError(t, Init(testFS, "en-US"))

	assert.Equal(t, "No plugins available.", T("NoPlugins", nil))
	assert.Equal(t, "Page 2 of 3", T("PageFooter", map[string]interface{}{"Page": 2, "Total": 3}))
	assert.Equal(t, "1 plugin", T("ListHeader", map[string]interface{}{"Count": 1}, 1))
	assert.Equal(t, "5 plugins", T("ListHeader", map[string]interface{}{"Count": 5}, 5))
	assert.Equal(t, "Missing", T("Missing", nil))
}

func TestT_Chinese(t *testing.T) {
	require.NoError(t, Init(testFS, "zh-CN"))

	assert.Equal(t, "暂无插件", T("NoPlugins", nil))
	assert.Equal(t, "共 5 个插件", T("ListHeader", map[string]interface{}{"Count": 5}, 5))
	// falls back to the default language
	assert.Equal(t, "Page 1 of 1", T("PageFooter", map[string]interface{}{"Page": 1, "Total": 1}))

	SetLocale("en-US")
	assert.Equal(t, "No plugins available.", T("NoPlugins", nil))
}
