package deck

import (
	"github.com/nawal123158-wq/kartlichallenge/internal/models"
)

// CatalogEntry describes one card to seed. Seeding is keyed by
// (category, title) so repeated startups never duplicate cards.
type CatalogEntry struct {
	Category         models.CardCategory
	Title            string
	Description      string
	Difficulty       int
	Points           int
	TimeLimitSeconds int
}

// DeprecatedEntry names a card that must be removed from the catalog
type DeprecatedEntry struct {
	Category models.CardCategory
	Title    string
}

// Catalog returns the built-in card set seeded at startup
func Catalog() []CatalogEntry {
	return []CatalogEntry{
		// Comedy
		{Category: models.CardCategoryComedy, Title: "Funny Face Selfie", Description: "Take a selfie with your funniest facial expression.", Difficulty: 1, Points: 1},
		{Category: models.CardCategoryComedy, Title: "Weird Dance", Description: "Do your strangest dance move for 15 seconds.", Difficulty: 1, Points: 1},
		{Category: models.CardCategoryComedy, Title: "Speech Bubble", Description: "Write a funny quote on paper and take a photo with it.", Difficulty: 2, Points: 2},
		{Category: models.CardCategoryComedy, Title: "Baby Pose", Description: "Pose like a baby and take a photo.", Difficulty: 1, Points: 1},
		{Category: models.CardCategoryComedy, Title: "Slow Motion", Description: "Perform an everyday movement in slow motion.", Difficulty: 1, Points: 1},
		{Category: models.CardCategoryComedy, Title: "Robot Dance", Description: "Dance like a robot for 20 seconds.", Difficulty: 2, Points: 1},
		{Category: models.CardCategoryComedy, Title: "Animal Impression Photo", Description: "Strike a pose imitating an animal and take a photo.", Difficulty: 1, Points: 1},
		{Category: models.CardCategoryComedy, Title: "Food Plating", Description: "Photograph your last meal from its most flattering angle.", Difficulty: 2, Points: 2},

		// Social
		{Category: models.CardCategorySocial, Title: "Selfie Time", Description: "Take a selfie with a stranger.", Difficulty: 3, Points: 3},
		{Category: models.CardCategorySocial, Title: "Say Thanks", Description: "Send a thank-you message to a family member.", Difficulty: 1, Points: 1},
		{Category: models.CardCategorySocial, Title: "Compliment Shower", Description: "Give a sincere compliment to someone next to you.", Difficulty: 1, Points: 1},
		{Category: models.CardCategorySocial, Title: "Share a Story", Description: "Post a funny story on social media.", Difficulty: 2, Points: 1},
		{Category: models.CardCategorySocial, Title: "Old Friend", Description: "Message someone you haven't talked to in a long time.", Difficulty: 2, Points: 2},
		{Category: models.CardCategorySocial, Title: "Greet a Neighbor", Description: "Go say hello to a neighbor.", Difficulty: 2, Points: 2},
		{Category: models.CardCategorySocial, Title: "Memory Photo", Description: "Take a photo together with a friend (a selfie works).", Difficulty: 1, Points: 1},
		{Category: models.CardCategorySocial, Title: "Leave a Comment", Description: "Comment on an old photo of a friend.", Difficulty: 1, Points: 1},

		// Skill
		{Category: models.CardCategorySkill, Title: "One Leg", Description: "Stand on one leg for 30 seconds.", Difficulty: 1, Points: 1, TimeLimitSeconds: 30},
		{Category: models.CardCategorySkill, Title: "Tongue Twister", Description: "Write a tongue twister on paper and photograph it.", Difficulty: 2, Points: 2, TimeLimitSeconds: 30},
		{Category: models.CardCategorySkill, Title: "Push-up Challenge", Description: "Do 10 push-ups.", Difficulty: 2, Points: 2, TimeLimitSeconds: 60},
		{Category: models.CardCategorySkill, Title: "Spoon Balance", Description: "Balance a spoon on your nose.", Difficulty: 2, Points: 2, TimeLimitSeconds: 30},
		{Category: models.CardCategorySkill, Title: "Blind Writing", Description: "Write your name with your eyes closed.", Difficulty: 1, Points: 1, TimeLimitSeconds: 30},
		{Category: models.CardCategorySkill, Title: "Finger Countdown", Description: "Count down from 10 to 1 on your fingers as fast as you can.", Difficulty: 1, Points: 1, TimeLimitSeconds: 15},
		{Category: models.CardCategorySkill, Title: "One-Handed Fold", Description: "Fold a piece of paper using one hand.", Difficulty: 2, Points: 2, TimeLimitSeconds: 45},
		{Category: models.CardCategorySkill, Title: "Memory Game", Description: "Memorize 5 objects on the table and list them.", Difficulty: 2, Points: 2, TimeLimitSeconds: 60},

		// Environment
		{Category: models.CardCategoryEnvironment, Title: "Room Detail", Description: "Photograph 3 objects in your room in a single frame.", Difficulty: 1, Points: 1},
		{Category: models.CardCategoryEnvironment, Title: "Window View", Description: "Take a photo of the view from your window.", Difficulty: 1, Points: 1},
		{Category: models.CardCategoryEnvironment, Title: "Bookshelf Task", Description: "Show the last book you read.", Difficulty: 1, Points: 1},
		{Category: models.CardCategoryEnvironment, Title: "Fridge Check", Description: "Show the most interesting thing in your fridge.", Difficulty: 1, Points: 1},
		{Category: models.CardCategoryEnvironment, Title: "Plant Care", Description: "Water a plant in your home.", Difficulty: 1, Points: 1},
		{Category: models.CardCategoryEnvironment, Title: "Cleanup Time", Description: "Tidy your desk in 30 seconds.", Difficulty: 1, Points: 1, TimeLimitSeconds: 30},
		{Category: models.CardCategoryEnvironment, Title: "Pet Moment", Description: "Show your pet or a favorite toy.", Difficulty: 1, Points: 1},
		{Category: models.CardCategoryEnvironment, Title: "Balcony or Garden", Description: "Share a photo from your balcony or garden.", Difficulty: 1, Points: 1},

		// Penalty (worth zero points, assigned on refusals and rejections)
		{Category: models.CardCategoryPenalty, Title: "Chicken Dance", Description: "Dance like a chicken for 30 seconds.", Difficulty: 1, Points: 0},
		{Category: models.CardCategoryPenalty, Title: "Apology Note", Description: "Write an apology note on paper and share a photo of it.", Difficulty: 1, Points: 0},
		{Category: models.CardCategoryPenalty, Title: "Face of Shame", Description: "Make your most embarrassing facial expression.", Difficulty: 1, Points: 0},
		{Category: models.CardCategoryPenalty, Title: "Childhood Memory", Description: "Share a childhood photo (an old object works too).", Difficulty: 1, Points: 0},
		{Category: models.CardCategoryPenalty, Title: "On Your Knees", Description: "Kneel and beg the group for forgiveness.", Difficulty: 2, Points: 0},
		{Category: models.CardCategoryPenalty, Title: "Emoji Face", Description: "Imitate 5 different emoji expressions.", Difficulty: 1, Points: 0},
		{Category: models.CardCategoryPenalty, Title: "Confession", Description: "Make a small confession to the group.", Difficulty: 2, Points: 0},
		{Category: models.CardCategoryPenalty, Title: "Applause", Description: "Applaud yourself for 30 seconds.", Difficulty: 1, Points: 0},
	}
}

// Deprecated returns cards that older deployments seeded and that must be
// deleted on startup
func Deprecated() []DeprecatedEntry {
	return []DeprecatedEntry{
		{Category: models.CardCategoryComedy, Title: "Impression Master"},
		{Category: models.CardCategoryComedy, Title: "Song Lyrics"},
		{Category: models.CardCategoryComedy, Title: "Baby Voice"},
		{Category: models.CardCategoryComedy, Title: "Animal Sound"},
		{Category: models.CardCategoryComedy, Title: "Rap Battle"},
		{Category: models.CardCategorySocial, Title: "Phone Call"},
		{Category: models.CardCategoryEnvironment, Title: "Room Tour"},
		{Category: models.CardCategoryPenalty, Title: "Say Sorry"},
		{Category: models.CardCategoryPenalty, Title: "Nursery Rhyme"},
	}
}
