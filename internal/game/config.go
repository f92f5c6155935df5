package game

// Tunable game parameters, centralized for easy adjustment.

// Scoring per destroyed asteroid size.
const (
	ScoreLargeAsteroid  = 20
	ScoreMediumAsteroid = 50
	ScoreSmallAsteroid  = 100
)

// Session defaults.
const (
	InitialLives = 3
	InitialLevel = 1
)

// FireInterval is the minimum time between shots, in seconds.
const FireInterval = 0.15

// FieldBaseCount is the asteroid field size before the level bonus; a
// level-n field holds FieldBaseCount + n large asteroids.
const FieldBaseCount = 4

// Logical play-area resolution. Entities live in these units; the
// renderer scales them to the terminal.
const (
	LogicalWidth  = 800.0
	LogicalHeight = 600.0
)

// MaxDeltaTime clamps the per-frame time step, in seconds. A stalled
// frame integrates one capped step instead of an arbitrarily large one.
const MaxDeltaTime = 0.25
