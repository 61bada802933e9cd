package ui

import (
	"github.com/danmuck/bridgectl/internal/game"
)

// ScoreSheet accumulates one row per finished deal, a column per
// partnership. A passed-out deal scores 0 for both sides.
type ScoreSheet struct {
	rows [][2]string
}

func (s *ScoreSheet) Add(result game.ScoreEntry) error {
	northSouth, eastWest, err := result.Amounts()
	if err != nil {
		return err
	}
	s.rows = append(s.rows, [2]string{northSouth, eastWest})
	return nil
}

func (s *ScoreSheet) Rows() [][2]string {
	return s.rows
}

// TableData lays the sheet out for rendering, headers first.
func (s *ScoreSheet) TableData() [][]string {
	data := [][]string{{"NS", "EW"}}
	for _, row := range s.rows {
		data = append(data, []string{row[0], row[1]})
	}
	return data
}
