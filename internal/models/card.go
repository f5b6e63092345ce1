package models

// CardCategory identifies which deck a card belongs to
type CardCategory string

const (
	// CardCategoryComedy contains funny dares (selfies, dances, impressions)
	CardCategoryComedy CardCategory = "comedy"

	// CardCategorySocial contains dares involving other people
	CardCategorySocial CardCategory = "social"

	// CardCategorySkill contains timed physical or mental challenges
	CardCategorySkill CardCategory = "skill"

	// CardCategoryEnvironment contains dares about the player's surroundings
	CardCategoryEnvironment CardCategory = "environment"

	// CardCategoryPenalty contains punitive dares worth zero points
	CardCategoryPenalty CardCategory = "penalty"
)

// NormalCategories are the decks used for regular deals (hands 1-2 and swaps)
var NormalCategories = []CardCategory{
	CardCategoryComedy,
	CardCategorySocial,
	CardCategorySkill,
	CardCategoryEnvironment,
}

// Card represents one dare card in the catalog
type Card struct {
	// ID is the unique identifier for the card
	ID string

	// Category is the deck the card belongs to
	Category CardCategory

	// Title is the short name of the dare
	Title string

	// Description explains what the player has to do
	Description string

	// Difficulty ranges from 1 (easy) to 3 (hard)
	Difficulty int

	// Points awarded when a submission for this card is approved
	Points int

	// TimeLimitSeconds is an optional per-dare time limit (0 means none)
	TimeLimitSeconds int
}
