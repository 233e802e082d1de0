package session

import (
	"fmt"
	"math"
)

// Score counts correct and incorrect answers.
type Score struct {
	Correct   int `json:"correct"`
	Incorrect int `json:"incorrect"`
}

// Summary is the record of a finished practice run consumed by the results
// screen. TimeSpent is in whole seconds.
type Summary struct {
	Score          Score `json:"score"`
	TotalQuestions int   `json:"totalQuestions"`
	TimeSpent      int   `json:"timeSpent"`
}

// Percentage returns the rounded share of correct answers, or 0 for an
// empty session.
func (s Summary) Percentage() int {
	if s.TotalQuestions <= 0 {
		return 0
	}
	return int(math.Round(float64(s.Score.Correct) / float64(s.TotalQuestions) * 100))
}

// Band is a performance band shown on the results screen.
type Band struct {
	Icon    string
	Title   string
	Message string
	Level   BandLevel
}

// BandLevel orders the bands from lowest to highest.
type BandLevel int

const (
	BandNeedsWork BandLevel = iota
	BandOkay
	BandGood
	BandExcellent
)

// Performance returns the band for a percentage score.
func Performance(pct int) Band {
	switch {
	case pct >= 90:
		return Band{"🌟", "Outstanding!", "You're a maths superstar! Keep up the excellent work!", BandExcellent}
	case pct >= 70:
		return Band{"🎉", "Great Job!", "You're doing really well! Keep practising to improve even more!", BandGood}
	case pct >= 50:
		return Band{"👍", "Good Effort!", "You're making progress! Try again to improve your score!", BandOkay}
	default:
		return Band{"💪", "Keep Trying!", "Practice makes perfect! Have another go and you'll do better!", BandNeedsWork}
	}
}

// FormatTimeSpent renders seconds as "45s" or "2m 5s".
func FormatTimeSpent(seconds int) string {
	if seconds < 60 {
		return fmt.Sprintf("%ds", seconds)
	}
	return fmt.Sprintf("%dm %ds", seconds/60, seconds%60)
}
