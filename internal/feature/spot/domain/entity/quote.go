// Package entity defines the domain models for the spot feature.
package entity

// Quote is one live spot quote for a precious-metal instrument.
type Quote struct {
	Symbol        string  // Exchange instrument code (e.g., "Au99.99")
	Name          string  // Display name
	Price         float64 // Latest price
	Change        float64 // Change amount since previous close
	ChangePercent float64 // Change percent since previous close
	Timestamp     int64   // Snapshot time in milliseconds
}
