package components

// HighScore is one row of the title screen table.
type HighScore struct {
	Score int `json:"score"`
	Level int `json:"level"` // 1-based level reached
}
