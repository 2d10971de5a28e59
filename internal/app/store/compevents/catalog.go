package compeventstore

import "github.com/chapterhub/chapterhub/internal/domain/models"

// catalog is the standard competitive-events list loaded into an empty
// collection at startup. A representative subset of the national directory.
var catalog = []models.CompetitiveEvent{
	{
		Name:        "Accounting I",
		Category:    "Finance",
		Description: "Objective test covering journalizing, account classification, and financial statements.",
		EntryType:   models.EntryIndividual,
		Levels:      []string{"region", "state", "national"},
	},
	{
		Name:        "Business Communication",
		Category:    "Business Administration",
		Description: "Objective test on grammar, written communication, and workplace etiquette.",
		EntryType:   models.EntryIndividual,
		Levels:      []string{"region", "state", "national"},
	},
	{
		Name:        "Business Plan",
		Category:    "Entrepreneurship",
		Description: "Written plan and presentation for an original business concept.",
		EntryType:   models.EntryTeam,
		Levels:      []string{"state", "national"},
	},
	{
		Name:        "Coding & Programming",
		Category:    "Technology",
		Description: "Develop a working program that solves the annual topic, with a live demo.",
		EntryType:   models.EntryIndividual,
		Levels:      []string{"state", "national"},
	},
	{
		Name:        "Community Service Project",
		Category:    "Chapter Events",
		Description: "Report and presentation on a chapter service project carried out during the year.",
		EntryType:   models.EntryChapter,
		Levels:      []string{"state", "national"},
	},
	{
		Name:        "Impromptu Speaking",
		Category:    "Public Speaking",
		Description: "Four-minute speech on a business topic drawn moments before speaking.",
		EntryType:   models.EntryIndividual,
		Levels:      []string{"region", "state", "national"},
	},
	{
		Name:        "Introduction to Business Presentation",
		Category:    "Business Administration",
		Description: "Slide presentation on the annual business topic, for first-year members.",
		EntryType:   models.EntryTeam,
		Levels:      []string{"region", "state", "national"},
	},
	{
		Name:        "Marketing",
		Category:    "Marketing",
		Description: "Objective test plus a role-play case on marketing strategy.",
		EntryType:   models.EntryTeam,
		Levels:      []string{"region", "state", "national"},
	},
	{
		Name:        "Mobile Application Development",
		Category:    "Technology",
		Description: "Design and build a mobile app addressing the annual prompt.",
		EntryType:   models.EntryTeam,
		Levels:      []string{"state", "national"},
	},
	{
		Name:        "Public Speaking",
		Category:    "Public Speaking",
		Description: "Five-minute prepared speech on a business-related topic.",
		EntryType:   models.EntryIndividual,
		Levels:      []string{"region", "state", "national"},
	},
}
