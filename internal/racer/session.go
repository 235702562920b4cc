package racer

import "math"

// GameSession holds the score and fuel of one race.
type GameSession struct {
	Score int
	Fuel  float64
}

// Reset zeroes the score and refills the tank.
func (s *GameSession) Reset(initialFuel float64) {
	s.Score = 0
	s.Fuel = initialFuel
}

// Burn removes one tick's worth of fuel and reports whether the tank is empty.
func (s *GameSession) Burn(rate float64) bool {
	s.Fuel -= rate
	return s.Fuel <= 0
}

// FuelDisplay returns the fuel as shown to the player: floored, never negative.
func (s GameSession) FuelDisplay() int {
	return int(math.Max(0, math.Floor(s.Fuel)))
}
