package consts

const (
	// CategoryRandom is the reserved category label meaning "pick from all
	// tips, any category". It is never stored on a tip.
	CategoryRandom = "random"

	// CategoryMostRecent is the pseudo-category shown first in the welcome
	// category list. It is never stored on a tip.
	CategoryMostRecent = "most recent"
)
