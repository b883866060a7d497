package entity

const (
	ActionFree = "free"
	ActionMine = "mine"
)

// Move is one player action against the board.
type Move struct {
	Cell   Cell   `json:"cell"`
	Action string `json:"action"`
}

func IsKnownAction(action string) bool {
	return action == ActionFree || action == ActionMine
}
