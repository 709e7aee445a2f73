package core

import "time"

// CurrentPuzzleYear returns the most recent Advent of Code event year. The
// event counts as started from November 30th, so the upcoming puzzles can be
// set up the day before they unlock.
func CurrentPuzzleYear(now time.Time) int {
	if now.Month() == time.December || (now.Month() == time.November && now.Day() == 30) {
		return now.Year()
	}
	return now.Year() - 1
}
