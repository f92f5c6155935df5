package game

import "time"

const targetFPS = 60
const targetFrameTime = time.Second / targetFPS

// Run drives the game at up to 60 ticks per second until the player
// quits or rendering fails. Each tick receives the wall-clock time since
// the previous one; Tick clamps it.
func (g *Game) Run() error {
	lastTime := time.Now()

	for g.running {
		frameStart := time.Now()
		dt := frameStart.Sub(lastTime).Seconds()
		lastTime = frameStart

		if err := g.Tick(dt); err != nil {
			return err
		}

		if elapsed := time.Since(frameStart); elapsed < targetFrameTime {
			time.Sleep(targetFrameTime - elapsed)
		}
	}
	return nil
}
