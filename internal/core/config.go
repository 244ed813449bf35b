package core

// RuntimeConfig carries the terminal size and seed from the command line
// into the front end.
type RuntimeConfig struct {
	ScreenW int   // Screen width in characters
	ScreenH int   // Screen height in characters
	Seed    int64 // RNG seed, 0 means derive one from the clock
}

// GameState represents the current state of a session.
// Returned by Session.State() to communicate status to the platform.
type GameState struct {
	Score     int  // Years survived
	Year      int  // Current in-game year
	Destroyed int  // Hazards shot down
	Ticks     int  // Ticks elapsed
	GameOver  bool // Whether the craft has been lost
	Paused    bool // Whether the session is paused
}
