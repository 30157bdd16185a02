package board

// ClassicConfig returns the reference 100-cell board.
func ClassicConfig() Config {
	return Config{
		Goal:     100,
		DieFaces: 6,
		Ladders: map[int]int{
			1: 38, 4: 14, 9: 21, 21: 42, 28: 84, 36: 44, 51: 67, 71: 91, 80: 100,
		},
		Snakes: map[int]int{
			16: 6, 47: 26, 49: 11, 56: 53, 62: 19, 64: 60, 87: 24, 93: 73, 95: 75, 98: 78,
		},
	}
}

// Classic returns the reference board.
func Classic() *Board {
	return MustNew(ClassicConfig())
}
