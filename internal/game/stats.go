package game

// Stats aggregates the rounds finished during one process lifetime.
type Stats struct {
	Played        int
	Wins          int
	CurrentStreak int
	MaxStreak     int
	// Distribution counts wins by the attempt that solved the word;
	// index 0 is a first-guess win.
	Distribution [MaxAttempts]int
}

func (s *Stats) record(won bool, attempts int) {
	s.Played++
	if !won {
		s.CurrentStreak = 0
		return
	}

	s.Wins++
	s.CurrentStreak++
	if s.CurrentStreak > s.MaxStreak {
		s.MaxStreak = s.CurrentStreak
	}
	if attempts >= 1 && attempts <= MaxAttempts {
		s.Distribution[attempts-1]++
	}
}

// WinRate returns the percentage of rounds won, 0 when none were played.
func (s Stats) WinRate() int {
	if s.Played == 0 {
		return 0
	}
	return s.Wins * 100 / s.Played
}
