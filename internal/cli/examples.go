package cli

import (
	"fmt"
	"io"
)

const examplesText = `Usage Examples:

1. Basic usage (interactive):
   gamedir create

2. Basic usage with flags:
   gamedir create --game-name "My Awesome Game" --root-dir ~/Projects

3. Specify game engine:
   gamedir create --game-name "My Unity Game" --engine Unity

4. Specify target platforms:
   gamedir create --game-name "Mobile Game" --platforms Windows,Android,iOS

5. Full example with all parameters:
   gamedir create --game-name "Space Adventure" --root-dir ~/Games --engine Unreal --platforms Windows,PlayStation,Xbox

6. Create a project, then sweep its tmp directory later:
   gamedir create --game-name "My Game"
   gamedir clean --age 30

Directory Structure Overview:

1. Production pipeline directories:
   - Pre-Production: Idea, Story, Characters, Storyboard, etc.
   - Production: Modeling, Animation, Texturing, Lighting, etc.
   - Post-Production: Compositing, Color Correction, Final Output, etc.

2. Development structure:
   - Source code, assets, documentation, and other standard directories
   - Engine-specific directories based on the chosen game engine
   - Platform-specific build directories under Build/

3. Temporary files:
   - A tmp workspace for builds, caches, logs, and in-progress media
   - 'gamedir clean' (and the generated Scripts/Tools helper) sweeps it
`

// printExamples writes the example invocations shown by 'create --examples'.
func printExamples(out io.Writer) {
	fmt.Fprint(out, examplesText) //nolint:errcheck
}
