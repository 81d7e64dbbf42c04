package world

// Scoring constants.
const (
	coinScorePerLevel    = 100
	levelBonusPerLevel   = 1000
	barrierPenalty       = 10
	aiCollisionPenalty   = 50
	aiLevelSpeedIncrease = 1.1
)

// CollectCoin marks a coin collected and scores it. When every generated
// coin has been collected the level advances. Returns true on level-up.
func (w *World) CollectCoin(c *Placeable) bool {
	if !c.Alive {
		return false
	}
	c.Alive = false
	w.Progress.Coins++
	w.Progress.Score += coinScorePerLevel * w.Progress.Level

	if w.Progress.Coins >= w.Progress.TotalCoins {
		w.levelUp()
		return true
	}
	return false
}

// levelUp advances the level, awards the bonus, and makes the opponents
// faster. The per-level coin counter restarts; TotalCoins keeps growing as
// more track is generated.
func (w *World) levelUp() {
	w.Progress.Level++
	w.Progress.Score += levelBonusPerLevel * w.Progress.Level
	w.Progress.Coins = 0
	for _, car := range w.AICars {
		car.MaxSpeed *= aiLevelSpeedIncrease
	}
}

// HitBarrier bounces the player off a wall or obstacle: the car is pushed
// back along its heading and its speed reverses at half magnitude. Costs a
// small score penalty, floored at zero.
func (w *World) HitBarrier(dt float64) {
	p := w.Player
	p.Position = p.Position.Sub(p.Forward().Scale(p.Speed * dt * 2))
	p.Speed *= -0.5
	w.penalize(barrierPenalty)
}

// HitAICar slows the player after contact with an opponent and applies the
// larger penalty.
func (w *World) HitAICar() {
	w.Player.Speed *= 0.5
	w.penalize(aiCollisionPenalty)
}

func (w *World) penalize(points int) {
	w.Progress.Score -= points
	if w.Progress.Score < 0 {
		w.Progress.Score = 0
	}
}
