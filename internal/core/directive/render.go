package directive

import (
	"math"
	"strconv"
	"strings"

	"navline/internal/core/provider"
)

// Kilometers converts meters to kilometers rounded to 2 decimals
func Kilometers(m float64) float64 { return math.Round(m/10) / 100 }

// Minutes converts seconds to whole minutes rounded to nearest
func Minutes(s float64) int { return int(math.Round(s / 60)) }

// spokenNumber writes a decimal without '.', which the grammar reserves
func spokenNumber(f float64) string {
	s := strconv.FormatFloat(f, 'f', -1, 64)
	whole, frac, ok := strings.Cut(s, ".")
	if !ok {
		return whole
	}
	return whole + " " + phrasePoint + " " + frac
}

// Spoken phrases for route and place readouts
const (
	phraseFrom     = "מ"
	phraseTo       = "אל"
	phraseDuration = "משך"
	phraseDistance = "מרחק"
	phraseKm       = "קילומטר"
	phraseAbout    = "בערך"
	phraseMinutes  = "דקות"
	phraseMeters   = "מטר"
	phrasePoint    = "נקודה"
	phraseStep     = "ואז"
	phrasePlaces   = "מקומות שנמצאו"
)

// RouteText reads a route aloud. Leg-shaped routes use the provider's own
// texts; summary routes are converted to km and minutes here and nowhere else
func RouteText(r provider.Route) string {
	var parts []string
	if len(r.Legs) > 0 {
		leg := r.Legs[0]
		parts = append(parts, strings.Join([]string{
			phraseFrom, leg.StartAddress, phraseTo, leg.EndAddress + ";",
			phraseDuration, leg.DurationText + ";",
		}, " "))
		for _, s := range leg.Steps {
			parts = append(parts, phraseStep+" "+strings.TrimSpace(s.DistanceText+" "+s.Instruction)+";")
		}
		return strings.Join(parts, " ")
	}

	parts = append(parts,
		phraseDistance+" "+spokenNumber(Kilometers(r.DistanceMeters))+" "+phraseKm+";",
		phraseAbout+" "+strconv.Itoa(Minutes(r.DurationSeconds))+" "+phraseMinutes+";",
	)
	for _, s := range r.Steps {
		step := s.Instruction
		if s.DistanceMeters > 0 {
			step = strconv.Itoa(int(math.Round(s.DistanceMeters))) + " " + phraseMeters + " " + step
		}
		parts = append(parts, phraseStep+" "+strings.TrimSpace(step)+";")
	}
	return strings.Join(parts, " ")
}

// PlacesText reads up to limit places as "name address" pairs
func PlacesText(places []provider.Place, limit int) string {
	if limit <= 0 || limit > len(places) {
		limit = len(places)
	}
	parts := []string{phrasePlaces + ":"}
	for _, p := range places[:limit] {
		parts = append(parts, strings.TrimSpace(p.Name+" "+p.Address)+";")
	}
	return strings.Join(parts, " ")
}
