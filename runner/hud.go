package runner

import "fmt"

// Overlay is the text hosts draw over the strip.
type Overlay struct {
	// Score lines, shown once a session has started.
	HighScore string
	Score     string

	// Headline and Detail are set on game over.
	Headline string
	Detail   string

	// Prompt is the start button label, empty while playing.
	Prompt string
}

// Overlay returns the HUD text for the current mode.
func (g *Game) Overlay() Overlay {
	var o Overlay
	if g.mode != ModeStart {
		o.HighScore = fmt.Sprintf("HI: %d", g.highScore)
		o.Score = fmt.Sprintf("%05d", g.score)
	}
	switch g.mode {
	case ModeStart:
		o.Prompt = "> PRESS START <"
	case ModeGameOver:
		o.Headline = "GAME OVER!"
		o.Detail = fmt.Sprintf("Score: %d", g.score)
		o.Prompt = "> TRY AGAIN <"
	}
	return o
}
