// Package scaffold implements game-project directory scaffolding and the
// tmp-directory cleanup sweep.
package scaffold

import (
	"fmt"
	"path"
	"strings"
)

// Production pipeline phases.
const (
	PreProduction  = "Pre-Production"
	Production     = "Production"
	PostProduction = "Post-Production"
)

// EntryKind distinguishes directories from seeded files in a catalog.
type EntryKind int

const (
	// EntryDir is a directory that receives a description.txt.
	EntryDir EntryKind = iota
	// EntryFile is a seeded file (engine config stubs); created only if absent.
	EntryFile
)

// Entry is one path in a directory catalog, relative to the project root.
type Entry struct {
	Path        string
	Description string
	Kind        EntryKind
}

// Engine selects the engine-specific extension of the base catalog.
type Engine string

// Supported engines.
const (
	EngineCustom Engine = "Custom"
	EngineUnity  Engine = "Unity"
	EngineUnreal Engine = "Unreal"
	EngineGodot  Engine = "Godot"
)

// Engines lists all supported engines in display order.
func Engines() []Engine {
	return []Engine{EngineCustom, EngineUnity, EngineUnreal, EngineGodot}
}

// ParseEngine matches a case-insensitive engine name.
func ParseEngine(s string) (Engine, error) {
	if s == "" {
		return EngineCustom, nil
	}
	for _, e := range Engines() {
		if strings.EqualFold(s, string(e)) {
			return e, nil
		}
	}
	return "", NewInputError("%w: %q (valid: Custom, Unity, Unreal, Godot)", ErrUnknownEngine, s)
}

// Platform is a build target platform.
type Platform string

// Supported platforms.
const (
	PlatformWindows     Platform = "Windows"
	PlatformMacOS       Platform = "MacOS"
	PlatformLinux       Platform = "Linux"
	PlatformAndroid     Platform = "Android"
	PlatformIOS         Platform = "iOS"
	PlatformPlayStation Platform = "PlayStation"
	PlatformXbox        Platform = "Xbox"
	PlatformNintendo    Platform = "Nintendo"
	PlatformWeb         Platform = "Web"
)

// Platforms lists all supported platforms in display order.
func Platforms() []Platform {
	return []Platform{
		PlatformWindows, PlatformMacOS, PlatformLinux,
		PlatformAndroid, PlatformIOS,
		PlatformPlayStation, PlatformXbox, PlatformNintendo,
		PlatformWeb,
	}
}

// ParsePlatforms parses a comma-separated platform list. Names are matched
// case-insensitively and canonicalized; duplicates collapse to one.
func ParsePlatforms(s string) ([]Platform, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}

	var out []Platform
	seen := make(map[Platform]bool)
	for _, part := range strings.Split(s, ",") {
		name := strings.TrimSpace(part)
		if name == "" {
			continue
		}
		matched := false
		for _, p := range Platforms() {
			if strings.EqualFold(name, string(p)) {
				if !seen[p] {
					seen[p] = true
					out = append(out, p)
				}
				matched = true
				break
			}
		}
		if !matched {
			return nil, NewInputError("%w: %q (valid: %s)", ErrUnknownPlatform, name, platformNames())
		}
	}
	return out, nil
}

func platformNames() string {
	names := make([]string, 0, len(Platforms()))
	for _, p := range Platforms() {
		names = append(names, string(p))
	}
	return strings.Join(names, ", ")
}

// BaseCatalog returns the fixed engine-independent catalog. Top-level roots
// come first so every parent is created (and described) before its children.
func BaseCatalog() []Entry {
	return []Entry{
		// Top-level roots.
		{Path: PreProduction, Description: "Contains all pre-production materials including concept, story, design, and planning."},
		{Path: Production, Description: "Contains all production phase materials including asset creation, animation, and implementation."},
		{Path: PostProduction, Description: "Contains all post-production materials including compositing, effects, and final polishing."},
		{Path: "Documentation", Description: "Contains all project documentation, including design documents, technical specifications, and API references."},
		{Path: "Source", Description: "Contains all source code for the game, including core systems, gameplay code, and development tools."},
		{Path: "Assets", Description: "Contains all game assets such as models, textures, animations, audio, and other resources."},
		{Path: "Build", Description: "Contains build outputs and distribution packages for the target platforms."},
		{Path: "Tests", Description: "Contains all testing code, including unit tests and integration tests."},
		{Path: "ThirdParty", Description: "Contains third-party libraries, tools, and dependencies."},
		{Path: "Scripts", Description: "Contains automation scripts for building, deployment, and development workflows."},
		{Path: "Config", Description: "Contains configuration files for both the game engine and game-specific settings."},
		{Path: "Versions", Description: "Contains or tracks different versions of the game during development."},
		{Path: "Releases", Description: "Contains organized release builds for different distribution channels."},
		{Path: "tmp", Description: "Contains all temporary files, caches, logs, and intermediate build artifacts."},

		// Production pipeline.
		{Path: PreProduction + "/Idea", Description: "Contains initial game concept documents and brainstorming materials."},
		{Path: PreProduction + "/Story", Description: "Contains narrative structure, plot outlines, and story development documents."},
		{Path: PreProduction + "/Characters", Description: "Contains character designs, backstories, and development."},
		{Path: PreProduction + "/ArtDirection", Description: "Contains art style guides, mood boards, and visual direction documents."},
		{Path: PreProduction + "/Storyboard", Description: "Contains storyboards for cutscenes and key game moments."},
		{Path: PreProduction + "/ProductPlanning", Description: "Contains project schedules, milestone planning, and production roadmaps."},
		{Path: PreProduction + "/Marketing", Description: "Contains early marketing plans, target audience analysis, and promotional strategy."},
		{Path: PreProduction + "/VocalTracks", Description: "Contains voice acting scripts, audition materials, and placeholder recordings."},
		{Path: PreProduction + "/StoryReel", Description: "Contains animatics and early visualization of game sequences."},
		{Path: PreProduction + "/RnD", Description: "Contains research and development materials for new gameplay features or technologies."},

		{Path: Production + "/Layout", Description: "Contains scene layout files and environment blocking."},
		{Path: Production + "/Modeling", Description: "Contains 3D modeling files and assets in production."},
		{Path: Production + "/Texturing", Description: "Contains texturing work files and materials in development."},
		{Path: Production + "/Rigging", Description: "Contains character and object rig files and setups."},
		{Path: Production + "/Animation", Description: "Contains animation work in progress and animation systems."},
		{Path: Production + "/Lighting", Description: "Contains lighting setups and environment illumination assets."},
		{Path: Production + "/VFX", Description: "Contains visual effects work and particle systems in development."},
		{Path: Production + "/SoundFX", Description: "Contains sound effects work files and mixing in progress."},
		{Path: Production + "/Music", Description: "Contains musical score work and soundtrack development."},
		{Path: Production + "/Rendering", Description: "Contains rendering outputs and material previews."},
		{Path: Production + "/TitleCredits", Description: "Contains title screen and credits sequence development."},
		{Path: Production + "/CharSetup", Description: "Contains character finalization and implementation."},

		{Path: PostProduction + "/Compositing", Description: "Contains scene composition work and final visual integration."},
		{Path: PostProduction + "/2DVFX", Description: "Contains 2D visual effects and motion graphics elements."},
		{Path: PostProduction + "/ColorCorrection", Description: "Contains color grading and final visual polish."},
		{Path: PostProduction + "/FinalOutput", Description: "Contains finalized game scenes ready for implementation."},

		// Development structure.
		{Path: "Documentation/Design", Description: "Contains game design documents, concept art, and gameplay specifications."},
		{Path: "Documentation/Technical", Description: "Contains technical documentation, architecture diagrams, and implementation details."},
		{Path: "Documentation/API", Description: "Contains API reference documentation for the game's programming interfaces."},

		{Path: "Source/Core", Description: "Contains core game engine systems and fundamental components."},
		{Path: "Source/Game", Description: "Contains game-specific code, gameplay mechanics, and game logic."},
		{Path: "Source/Engine", Description: "Contains engine components, rendering systems, physics, and other subsystems."},
		{Path: "Source/Tools", Description: "Contains development tools and utilities for the game development process."},
		{Path: "Source/Tools/BlenderAddons", Description: "Contains custom Blender add-ons for the game development pipeline."},

		{Path: "Assets/Models/Sources", Description: "Contains original Blender (.blend) model files."},
		{Path: "Assets/Models/Exported", Description: "Contains exported game-ready models in engine-compatible formats."},
		{Path: "Assets/Textures", Description: "Contains texture files, materials, and surface descriptions."},
		{Path: "Assets/Animations", Description: "Contains character and object animations."},
		{Path: "Assets/Audio", Description: "Contains sound effects, music, and voice recordings."},
		{Path: "Assets/Shaders", Description: "Contains shader programs for visual effects and rendering techniques."},
		{Path: "Assets/UI", Description: "Contains user interface assets, icons, and UI-specific graphics."},
		{Path: "Assets/3DAnimate", Description: "Contains 3D animation files and rigs for game characters and objects."},

		{Path: "Tests/Unit", Description: "Contains unit tests for individual components and systems."},
		{Path: "Tests/Integration", Description: "Contains integration tests for testing how components work together."},

		{Path: "ThirdParty/Libraries", Description: "Contains third-party libraries and dependencies used by the game."},
		{Path: "ThirdParty/Tools", Description: "Contains third-party tools used in the game development process."},

		{Path: "Scripts/Build", Description: "Contains scripts for automating the build process."},
		{Path: "Scripts/Deploy", Description: "Contains scripts for deploying the game to various platforms."},
		{Path: "Scripts/Tools", Description: "Contains utility scripts for development workflow automation."},
		{Path: "Scripts/Pipeline", Description: "Contains scripts for asset pipeline automation, particularly for Blender to game engine exports."},
		{Path: "Scripts/CI", Description: "Contains continuous integration scripts for automated testing, building, and deployment in CI/CD workflows."},

		{Path: "Config/Engine", Description: "Contains configuration files for the game engine."},
		{Path: "Config/Game", Description: "Contains game-specific configuration files."},

		{Path: "Versions/Current", Description: "Contains or links to the current active development version."},
		{Path: "Releases/Internal", Description: "Contains builds for internal testing and development."},
		{Path: "Releases/External", Description: "Contains builds for external testing and beta releases."},
		{Path: "Releases/Public", Description: "Contains public release builds and distribution packages."},

		// Temporary workspace.
		{Path: "tmp/Builds", Description: "Contains temporary build files and intermediate compilation results."},
		{Path: "tmp/Cache", Description: "Contains cached data for faster loading and processing."},
		{Path: "tmp/Logs", Description: "Contains log files generated during development and testing."},
		{Path: "tmp/Backups", Description: "Contains automatic backups of project files."},
		{Path: "tmp/Renders", Description: "Contains temporary rendering outputs and previews."},
		{Path: "tmp/Debug", Description: "Contains debug information and crash dumps."},
		{Path: "tmp/Testing", Description: "Contains temporary files generated during testing."},
		{Path: "tmp/Artifacts", Description: "Contains build artifacts and intermediate files."},
		{Path: "tmp/AutoSave", Description: "Contains auto-saved versions of project files."},
		{Path: "tmp/Exports", Description: "Contains temporary exported files before final placement."},
		{Path: "tmp/Media", Description: "Contains temporary media assets used during development."},
		{Path: "tmp/Media/Images", Description: "Contains temporary images, screenshots, and visual assets used during development."},
		{Path: "tmp/Media/Audio", Description: "Contains temporary audio files, voice recordings, and sound effects for testing."},
		{Path: "tmp/Media/Video", Description: "Contains temporary video files, cutscenes, and animations for review."},
		{Path: "tmp/Media/Textures", Description: "Contains in-progress and temporary textures before final implementation."},
		{Path: "tmp/Prototypes", Description: "Contains prototype assets and code for experimental features."},
		{Path: "tmp/Staging", Description: "Contains assets staged for review before moving to production assets."},
		{Path: "tmp/Review", Description: "Contains assets under review by team members or clients."},
		{Path: "tmp/Processing", Description: "Contains assets currently being processed or converted."},
		{Path: "tmp/Import", Description: "Contains recently imported assets pending proper organization."},
		{Path: "tmp/Outsourced", Description: "Contains temporary storage for assets from external partners or contractors."},
	}
}

// EngineCatalog returns the engine-specific extension entries. gameName
// replaces the [GameName] placeholder in Unreal's source directory.
func EngineCatalog(engine Engine, gameName string) []Entry {
	switch engine {
	case EngineUnity:
		return []Entry{
			{Path: "Assets/Prefabs", Description: "Contains reusable Unity prefab objects."},
			{Path: "Assets/Materials", Description: "Contains Unity material definitions."},
			{Path: "Assets/Scenes", Description: "Contains Unity scene files."},
			{Path: "Assets/Scripts", Description: "Contains C# scripts for Unity."},
			{Path: "Assets/Editor", Description: "Contains Unity editor extensions and scripts."},
			{Path: "Assets/Resources", Description: "Contains assets that need to be accessed via Resources.Load."},
			{Path: "ProjectSettings", Description: "Contains Unity project settings."},
			{Path: "Packages", Description: "Contains Unity package manager configuration."},
		}
	case EngineUnreal:
		return []Entry{
			{Path: "Content/Blueprints", Description: "Contains Unreal Blueprint assets."},
			{Path: "Content/Materials", Description: "Contains Unreal material definitions."},
			{Path: "Content/Levels", Description: "Contains Unreal level files."},
			{Path: "Content/Characters", Description: "Contains character assets and blueprints."},
			{Path: "Content/UI", Description: "Contains UI assets and widgets."},
			{Path: "Source/" + gameName, Description: "Contains C++ code for the game."},
			{Path: "Config/DefaultEngine.ini", Description: "Contains engine configuration.", Kind: EntryFile},
			{Path: "Config/DefaultGame.ini", Description: "Contains game configuration.", Kind: EntryFile},
		}
	case EngineGodot:
		return []Entry{
			{Path: "scenes", Description: "Contains Godot scene files."},
			{Path: "scripts", Description: "Contains GDScript files."},
			{Path: "assets", Description: "Contains game assets for Godot."},
			{Path: "addons", Description: "Contains Godot addons and plugins."},
			{Path: "project.godot", Description: "Godot project configuration file.", Kind: EntryFile},
			{Path: "export_presets.cfg", Description: "Godot export configurations.", Kind: EntryFile},
		}
	default:
		return nil
	}
}

// PlatformEntries returns one Build/<Platform> entry per selected platform.
func PlatformEntries(platforms []Platform) []Entry {
	entries := make([]Entry, 0, len(platforms))
	for _, p := range platforms {
		entries = append(entries, Entry{
			Path:        "Build/" + string(p),
			Description: fmt.Sprintf("Contains build outputs and packages for %s platform.", p),
		})
	}
	return entries
}

// MergedCatalog composes the full catalog for a project: base entries, then
// engine-specific entries, then platform build directories. Paths are
// deduplicated keeping the first occurrence, and validated to be clean
// relative paths with no traversal segments.
func MergedCatalog(gameName string, engine Engine, platforms []Platform) ([]Entry, error) {
	var merged []Entry
	merged = append(merged, BaseCatalog()...)
	merged = append(merged, EngineCatalog(engine, gameName)...)
	merged = append(merged, PlatformEntries(platforms)...)

	seen := make(map[string]bool, len(merged))
	out := merged[:0]
	for _, e := range merged {
		if err := validateRelPath(e.Path); err != nil {
			return nil, err
		}
		if seen[e.Path] {
			continue
		}
		seen[e.Path] = true
		out = append(out, e)
	}
	return out, nil
}

// validateRelPath rejects absolute paths and traversal segments.
func validateRelPath(p string) error {
	if p == "" {
		return NewInputError("empty catalog path")
	}
	if strings.HasPrefix(p, "/") {
		return NewInputError("catalog path must be relative: %q", p)
	}
	cleaned := path.Clean(p)
	if cleaned == ".." || strings.HasPrefix(cleaned, "../") {
		return NewInputError("catalog path escapes project root: %q", p)
	}
	return nil
}
