// Package guide holds the keyboard and command reference shown by the help
// overlay and the guide command.
package guide

import (
	"fmt"

	"github.com/charmbracelet/glamour"
)

const Markdown = `# trainer

A countdown you restart by clicking counters.

## Keys

| Key | Action |
| --- | --- |
| space | start or stop the countdown |
| r | reset to the full duration |
| ← → ↑ ↓ | move between buttons |
| enter | activate the selected button |
| tab | next section |
| : | command palette |
| ? | toggle this help |
| q | quit |

## Buttons

Every button starts at **5**. The first click arms it (it turns red) and
restarts the countdown. Each further click counts down and restarts the
countdown again. The click that reaches **0** halts the countdown, shows
` + "`00:00:00`" + ` and puts the button back to an unarmed 5.

## Palette commands

- ` + "`start`" + `, ` + "`stop`" + `, ` + "`reset`" + `
- ` + "`duration <seconds>`" + ` sets the countdown length
- ` + "`generate <count>`" + ` replaces the buttons of the current section
- ` + "`section:add <name> <count>`" + ` adds a section
- ` + "`section:delete [key]`" + ` removes a section (the last one stays)
- ` + "`logout`" + ` signs out and quits
`

// Render formats the guide for a terminal. style is a glamour style name such
// as "dark", "light" or "notty"; width 0 disables wrapping.
func Render(style string, width int) (string, error) {
	if style == "" {
		style = "dark"
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStylePath(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", fmt.Errorf("create markdown renderer: %w", err)
	}
	out, err := r.Render(Markdown)
	if err != nil {
		return "", fmt.Errorf("render guide: %w", err)
	}
	return out, nil
}
