package racer

// Display receives the HUD values and the game-over overlay.
type Display interface {
	ShowScore(score int)
	ShowFuel(fuel int)
	ShowGameOver(score int, message string)
	HideGameOver()
}

// Audio receives fire-and-forget sound triggers.
type Audio interface {
	StartAmbient()
	StopAmbient()
	PlayCollision()
}

// NopDisplay ignores every update.
type NopDisplay struct{}

func (NopDisplay) ShowScore(int)            {}
func (NopDisplay) ShowFuel(int)             {}
func (NopDisplay) ShowGameOver(int, string) {}
func (NopDisplay) HideGameOver()            {}

// NopAudio is a silent audio collaborator.
type NopAudio struct{}

func (NopAudio) StartAmbient()  {}
func (NopAudio) StopAmbient()   {}
func (NopAudio) PlayCollision() {}
