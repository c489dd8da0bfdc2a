package tui

import (
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/brickbreaker/internal/core"
	"github.com/vovakirdan/brickbreaker/internal/games/brickbreaker"
)

// KeyMapper translates Bubble Tea key messages to actions.
// Game controls come from the configured bindings; screen navigation keys
// are fixed.
type KeyMapper struct {
	game brickbreaker.KeyMap
}

// NewKeyMapper creates a key mapper for the given game bindings.
func NewKeyMapper(game brickbreaker.KeyMap) *KeyMapper {
	return &KeyMapper{game: game}
}

// MapGameKey translates a key pressed on the game screen.
// Returns the action and whether it's a quit request.
func (km *KeyMapper) MapGameKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	key := msg.String()

	if key == "ctrl+c" {
		return core.ActionQuit, true
	}

	switch {
	case slices.Contains(km.game.Left, key):
		return core.ActionLeft, false
	case slices.Contains(km.game.Right, key):
		return core.ActionRight, false
	case slices.Contains(km.game.Launch, key):
		return core.ActionLaunch, false
	case slices.Contains(km.game.Pause, key):
		return core.ActionPause, false
	}

	switch key {
	case "q":
		return core.ActionQuit, true
	case "esc":
		return core.ActionBack, false
	}
	return core.ActionNone, false
}

// GameHelp renders the control hint shown under the playfield.
func (km *KeyMapper) GameHelp() string {
	parts := []string{
		keyLabel(km.game.Left) + "/" + keyLabel(km.game.Right) + " move",
		keyLabel(km.game.Launch) + " launch",
		keyLabel(km.game.Pause) + " pause",
		"ctrl+s screenshot",
		"esc menu",
		"q quit",
	}
	return strings.Join(parts, "  ")
}

// keyLabel names the first key of a binding for help text.
func keyLabel(keys []string) string {
	if len(keys) == 0 {
		return "?"
	}
	switch keys[0] {
	case " ":
		return "space"
	case "left":
		return "←"
	case "right":
		return "→"
	}
	return keys[0]
}
