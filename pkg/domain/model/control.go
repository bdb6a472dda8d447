package model

// Control is the nested control record embedded in a risk detail.
type Control struct {
	ID                 int64   `json:"id"`
	Title              string  `json:"title"`
	Description        *string `json:"description"`
	ControlType        string  `json:"control_type"`
	EffectivenessScore *int    `json:"effectiveness_score"`
}
