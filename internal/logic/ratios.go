package logic

import (
	"math"
	"strconv"
)

// Every per-match and aggregated ratio goes through these helpers so each
// metric has exactly one formula.

// KDA returns (kills+assists)/deaths, or kills+assists when deaths is 0.
func KDA(kills, deaths, assists int) float64 {
	if deaths > 0 {
		return float64(kills+assists) / float64(deaths)
	}
	return float64(kills + assists)
}

// KD returns kills/deaths, or kills when deaths is 0.
func KD(kills, deaths int) float64 {
	if deaths > 0 {
		return float64(kills) / float64(deaths)
	}
	return float64(kills)
}

// ShotPercent returns part as a percentage of all registered shots, or 0
// when no shots landed.
func ShotPercent(part, headshots, bodyshots, legshots int) float64 {
	total := headshots + bodyshots + legshots
	if total <= 0 {
		return 0
	}
	return float64(part) / float64(total) * 100
}

// HeadshotPercent is ShotPercent for the headshot share.
func HeadshotPercent(headshots, bodyshots, legshots int) float64 {
	return ShotPercent(headshots, headshots, bodyshots, legshots)
}

// WinRate returns wins/games as a whole percentage, 0 when no games.
func WinRate(wins, games int) int {
	if games <= 0 {
		return 0
	}
	return RoundInt(float64(wins) / float64(games) * 100)
}

// Average returns total/count rounded to the nearest integer, 0 when count is 0.
func Average(total, count int) int {
	if count <= 0 {
		return 0
	}
	return RoundInt(float64(total) / float64(count))
}

// RoundInt rounds half up.
func RoundInt(x float64) int {
	return int(math.Floor(x + 0.5))
}

// Round1 rounds to one decimal place.
func Round1(x float64) float64 {
	return math.Floor(x*10+0.5) / 10
}

// FormatRatio renders a ratio with two decimals ("8.00").
func FormatRatio(x float64) string {
	return strconv.FormatFloat(x, 'f', 2, 64)
}

// FormatPercent renders a percentage with one decimal ("33.3").
func FormatPercent(x float64) string {
	return strconv.FormatFloat(Round1(x), 'f', 1, 64)
}
