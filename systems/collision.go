package systems

// DetectHits resolves every traveling shot against the swarm by exact cell
// A hit removes the member and turns the shot into an explosion
// Returns the points scored this tick
func DetectHits(player *Player, swarm *Swarm) int {
	points := 0
	for _, shot := range player.shots {
		if shot.Exploding {
			continue
		}
		if hit := swarm.KillInvaderAt(shot.X, shot.Y); hit > 0 {
			points += hit
			shot.Explode()
		}
	}
	return points
}
