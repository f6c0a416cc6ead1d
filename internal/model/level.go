// Package model holds the gameplay state of one playthrough: the level
// parameters, the entities and the world that owns them.
package model

// Level defines the tuning parameters of one street.
// Levels are built once from configuration and never mutated.
type Level struct {
	Name          string
	TotalTime     float64 // Seconds until the truck leaves the street
	TrashCount    int     // Trash items spawned at world construction
	TrashSize     float64 // Side of each (square) trash item in world units
	PlayerSpeed   float64 // Units per second
	TruckWidth    float64
	TruckHeight   float64
	BackgroundKey string // Asset key for the street backdrop; no gameplay effect
}

// TruckSpeed returns the horizontal truck speed that makes its trailing edge
// cross worldWidth exactly when the level timer expires.
func TruckSpeed(worldWidth float64, level Level) float64 {
	return (worldWidth + level.TruckWidth) / level.TotalTime
}
