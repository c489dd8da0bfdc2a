package core

// Action represents a semantic action, abstracted from physical key presses.
// The platform resolves keys to actions through the configured key bindings.
type Action int

const (
	ActionNone   Action = iota
	ActionLeft          // Left arrow, A - slide paddle left
	ActionRight         // Right arrow, D - slide paddle right
	ActionLaunch        // Space - release the ball from the paddle
	ActionPause         // P - pause/unpause the round
	ActionBack          // Escape - leave the game screen
	ActionQuit          // Q, Ctrl+C - exit
)
