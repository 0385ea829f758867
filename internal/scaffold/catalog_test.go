package scaffold

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEngine(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Engine
		wantErr bool
	}{
		{"empty defaults to Custom", "", EngineCustom, false},
		{"exact", "Unity", EngineUnity, false},
		{"case insensitive", "unreal", EngineUnreal, false},
		{"godot upper", "GODOT", EngineGodot, false},
		{"unknown", "Source2", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseEngine(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrUnknownEngine)
				var inputErr *InputError
				assert.ErrorAs(t, err, &inputErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParsePlatforms(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []Platform
		wantErr bool
	}{
		{"empty", "", nil, false},
		{"single", "Windows", []Platform{PlatformWindows}, false},
		{"multiple with spaces", "Windows, Android ,iOS", []Platform{PlatformWindows, PlatformAndroid, PlatformIOS}, false},
		{"case insensitive canonicalized", "windows,MACOS", []Platform{PlatformWindows, PlatformMacOS}, false},
		{"duplicates collapse", "Web,web,Web", []Platform{PlatformWeb}, false},
		{"trailing comma", "Linux,", []Platform{PlatformLinux}, false},
		{"unknown", "Amiga", nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePlatforms(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrUnknownPlatform)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func catalogPaths(entries []Entry) map[string]bool {
	paths := make(map[string]bool, len(entries))
	for _, e := range entries {
		paths[e.Path] = true
	}
	return paths
}

func TestMergedCatalog_CustomIsBase(t *testing.T) {
	merged, err := MergedCatalog("Demo", EngineCustom, nil)
	require.NoError(t, err)
	assert.Equal(t, BaseCatalog(), merged)
}

func TestMergedCatalog_EngineSupersets(t *testing.T) {
	base := catalogPaths(BaseCatalog())

	tests := []struct {
		engine Engine
		extra  []string
	}{
		{EngineUnity, []string{"Assets/Prefabs", "Assets/Scenes", "ProjectSettings", "Packages"}},
		{EngineUnreal, []string{"Content/Blueprints", "Content/Levels", "Source/Demo"}},
		{EngineGodot, []string{"scenes", "scripts", "assets", "addons"}},
	}
	for _, tt := range tests {
		t.Run(string(tt.engine), func(t *testing.T) {
			merged, err := MergedCatalog("Demo", tt.engine, nil)
			require.NoError(t, err)
			paths := catalogPaths(merged)

			for p := range base {
				assert.True(t, paths[p], "base path %s missing", p)
			}
			for _, p := range tt.extra {
				assert.True(t, paths[p], "engine path %s missing", p)
			}
		})
	}
}

func TestMergedCatalog_EngineEntriesDontLeak(t *testing.T) {
	merged, err := MergedCatalog("Demo", EngineUnity, nil)
	require.NoError(t, err)
	paths := catalogPaths(merged)

	assert.False(t, paths["Content/Blueprints"], "Unreal path in a Unity catalog")
	assert.False(t, paths["scenes"], "Godot path in a Unity catalog")
}

func TestMergedCatalog_PlatformBuildDirs(t *testing.T) {
	merged, err := MergedCatalog("Demo", EngineCustom, []Platform{PlatformWindows, PlatformAndroid})
	require.NoError(t, err)
	paths := catalogPaths(merged)

	assert.True(t, paths["Build/Windows"])
	assert.True(t, paths["Build/Android"])
	assert.False(t, paths["Build/Linux"], "unrequested platform present")
}

func TestMergedCatalog_DeduplicatesFirstOccurrence(t *testing.T) {
	// Unreal contributes Config/*.ini under a base Config dir; no path may
	// appear twice in the merged catalog.
	merged, err := MergedCatalog("Demo", EngineUnreal, Platforms())
	require.NoError(t, err)

	seen := make(map[string]bool, len(merged))
	for _, e := range merged {
		assert.False(t, seen[e.Path], "duplicate path %s", e.Path)
		seen[e.Path] = true
	}
}

func TestMergedCatalog_ParentsBeforeChildren(t *testing.T) {
	merged, err := MergedCatalog("Demo", EngineUnity, []Platform{PlatformWeb})
	require.NoError(t, err)

	index := make(map[string]int, len(merged))
	for i, e := range merged {
		index[e.Path] = i
	}

	assert.Less(t, index["Assets"], index["Assets/Prefabs"])
	assert.Less(t, index["Build"], index["Build/Web"])
	assert.Less(t, index["tmp"], index["tmp/Media/Images"])
}

func TestValidateRelPath(t *testing.T) {
	assert.NoError(t, validateRelPath("Assets/Models"))
	assert.Error(t, validateRelPath(""))
	assert.Error(t, validateRelPath("/etc"))
	assert.Error(t, validateRelPath("../outside"))
	assert.Error(t, validateRelPath("Assets/../../outside"))
}
