package util

// titleTier maps a minimum point balance to a display title.
type titleTier struct {
	MinPoints int64
	Title     string
}

// titleTiers is the ascending threshold table the displayed title is derived
// from. The title is purely cosmetic and recomputed whenever points change.
var titleTiers = []titleTier{
	{0, "Wanderer"},
	{100, "Stroller"},
	{300, "Walker"},
	{600, "Explorer"},
	{1000, "Pathfinder"},
	{2000, "Voyager"},
	{3500, "Trailblazer"},
	{5000, "Legend"},
}

// TitleForPoints returns the display title for a point balance.
func TitleForPoints(points int64) string {
	title := titleTiers[0].Title
	for _, tier := range titleTiers {
		if points < tier.MinPoints {
			break
		}
		title = tier.Title
	}
	return title
}
