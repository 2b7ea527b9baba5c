package battleship

// Player identifies whose turn it is on a Board. Player1 shoots at the
// first grid, Player2 at the second.
type Player uint8

const (
	Player1 Player = iota
	Player2
)

func (p Player) String() string {
	if p == Player1 {
		return "Player 1"
	}
	return "Player 2"
}

// Other returns the opponent of p.
func (p Player) Other() Player {
	if p == Player1 {
		return Player2
	}
	return Player1
}
