package battleship

import (
	"log"
	"sync"

	cerr "github.com/saeidalz13/seabattle/internal/error"
)

type MatchManager interface {
	CreateMatch(first, second Grid) *Match
	GetMatch(matchUuid string) (*Match, error)
	EndMatch(matchUuid string)
	Count() int
}

type BattleshipMatchManager struct {
	matches map[string]*Match
	mu      sync.RWMutex
}

var _ MatchManager = (*BattleshipMatchManager)(nil)

func NewBattleshipMatchManager() *BattleshipMatchManager {
	return &BattleshipMatchManager{
		matches: make(map[string]*Match, 10),
	}
}

func (bmm *BattleshipMatchManager) CreateMatch(first, second Grid) *Match {
	match := NewMatch(first, second)

	bmm.mu.Lock()
	bmm.matches[match.Uuid] = match
	bmm.mu.Unlock()

	log.Printf("match created: %s\n", match.Uuid)
	return match
}

func (bmm *BattleshipMatchManager) GetMatch(matchUuid string) (*Match, error) {
	bmm.mu.RLock()
	match, prs := bmm.matches[matchUuid]
	bmm.mu.RUnlock()
	if !prs {
		return nil, cerr.ErrMatchNotExists(matchUuid)
	}

	return match, nil
}

func (bmm *BattleshipMatchManager) EndMatch(matchUuid string) {
	bmm.mu.Lock()
	delete(bmm.matches, matchUuid)
	bmm.mu.Unlock()

	log.Printf("match ended: %s\n", matchUuid)
}

func (bmm *BattleshipMatchManager) Count() int {
	bmm.mu.RLock()
	defer bmm.mu.RUnlock()
	return len(bmm.matches)
}
