package engine

// Status is the phase of the turn state machine.
type Status int

const (
	StatusAwaitingRoll Status = iota
	StatusFinished
)

// String returns a human-readable name for the status.
func (s Status) String() string {
	switch s {
	case StatusAwaitingRoll:
		return "awaiting roll"
	case StatusFinished:
		return "finished"
	default:
		return "unknown"
	}
}

// NoWinner is the Winner index while the game is in progress.
const NoWinner = -1

// MoveLogSize bounds State.Log.
const MoveLogSize = 3

// initialFace is shown as the last roll before anyone has rolled.
const initialFace = 1

// Player is one participant's position on the track.
type Player struct {
	Name     string
	Color    string
	Position int // 0 before entering the board, Goal when finished
	Moves    int // rolls taken
}

// State is a snapshot of a game. Values returned by Game never alias the
// game's internal storage.
type State struct {
	Players  []Player
	Current  int // index of the player whose turn it is
	Status   Status
	Winner   int // index into Players, NoWinner until finished
	LastRoll int
	Log      []string // most recent move descriptions, oldest first
}

// Finished reports whether the game has ended.
func (s State) Finished() bool {
	return s.Status == StatusFinished
}

// CurrentPlayer returns the player whose turn it is.
func (s State) CurrentPlayer() Player {
	return s.Players[s.Current]
}

// WinnerPlayer returns the winner once the game is finished.
func (s State) WinnerPlayer() (Player, bool) {
	if s.Winner == NoWinner {
		return Player{}, false
	}
	return s.Players[s.Winner], true
}

func initialState(specs []PlayerSpec) State {
	players := make([]Player, len(specs))
	for i, sp := range specs {
		players[i] = Player{Name: sp.Name, Color: sp.Color}
	}
	return State{
		Players:  players,
		Current:  0,
		Status:   StatusAwaitingRoll,
		Winner:   NoWinner,
		LastRoll: initialFace,
	}
}

func (s State) clone() State {
	c := s
	c.Players = append([]Player(nil), s.Players...)
	if s.Log != nil {
		c.Log = append([]string(nil), s.Log...)
	}
	return c
}

// appendLog adds a description, dropping the oldest past MoveLogSize.
func (s *State) appendLog(entry string) {
	s.Log = append(s.Log, entry)
	if len(s.Log) > MoveLogSize {
		s.Log = append([]string(nil), s.Log[len(s.Log)-MoveLogSize:]...)
	}
}
