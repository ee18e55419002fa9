package dimension

// Tablas declarativas del sistema de 5 puntos. Los textos son de cara al
// usuario y se mantienen en inglés.

var scales = map[string]*Scale{
	"serotonin": {
		Name:        "Serotonin",
		Description: "How much joy and happiness does this bring you?",
		Icon:        "😊",
		Levels: []Level{
			{Value: 1, Label: "Soul-crushing", Description: "Deeply depressing, emotionally devastating",
				Examples: []string{"Requiem for a Dream", "Grave of the Fireflies", "Manchester by the Sea"}, Color: "#dc2626"},
			{Value: 2, Label: "Heavy", Description: "Serious and somber, but not devastating",
				Examples: []string{"There Will Be Blood", "No Country for Old Men", "The Road"}, Color: "#ea580c"},
			{Value: 3, Label: "Neutral", Description: "Balanced emotional tone",
				Examples: []string{"The Social Network", "Blade Runner 2049", "Arrival"}, Color: "#64748b"},
			{Value: 4, Label: "Uplifting", Description: "Feel-good and optimistic",
				Examples: []string{"The Princess Bride", "About Time", "Little Miss Sunshine"}, Color: "#16a34a"},
			{Value: 5, Label: "Pure Joy", Description: "Absolute delight and happiness",
				Examples: []string{"Paddington 2", "Studio Ghibli films", "The Grand Budapest Hotel"}, Color: "#059669"},
		},
	},
	"brainy_bonkers": {
		Name:        "Brainy Bonkers",
		Description: "How intellectually complex or mind-bending?",
		Icon:        "🧠",
		Levels: []Level{
			{Value: 1, Label: "Turn off brain", Description: "Pure entertainment, no thinking required",
				Examples: []string{"Fast & Furious franchise", "Transformers", "The Meg"}, Color: "#dc2626"},
			{Value: 2, Label: "Light thinking", Description: "Some plot to follow but straightforward",
				Examples: []string{"Marvel movies", "John Wick", "Top Gun: Maverick"}, Color: "#ea580c"},
			{Value: 3, Label: "Standard", Description: "Normal narrative complexity",
				Examples: []string{"The Dark Knight", "Knives Out", "Gone Girl"}, Color: "#64748b"},
			{Value: 4, Label: "Big brain", Description: "Complex themes and storytelling",
				Examples: []string{"Inception", "Interstellar", "The Prestige"}, Color: "#7c3aed"},
			{Value: 5, Label: "Galaxy brain", Description: "Extremely complex, requires multiple viewings",
				Examples: []string{"Primer", "Synecdoche New York", "Holy Motors"}, Color: "#5b21b6"},
		},
	},
	"camp": {
		Name:        "Camp",
		Description: "How deliberately over-the-top or absurd?",
		Icon:        "🎭",
		Levels: []Level{
			{Value: 1, Label: "Dead serious", Description: "Completely earnest and grounded",
				Examples: []string{"Manchester by the Sea", "Moonlight", "The Pianist"}, Color: "#64748b"},
			{Value: 2, Label: "Mostly serious", Description: "Some light moments but overall serious",
				Examples: []string{"The Dark Knight", "Mad Max: Fury Road", "Blade Runner 2049"}, Color: "#6b7280"},
			{Value: 3, Label: "Balanced", Description: "Mix of serious and playful elements",
				Examples: []string{"Marvel movies", "The Princess Bride", "Knives Out"}, Color: "#64748b"},
			{Value: 4, Label: "Campy fun", Description: "Deliberately theatrical and over-the-top",
				Examples: []string{"The Grand Budapest Hotel", "Kill Bill", "Scott Pilgrim"}, Color: "#ec4899"},
			{Value: 5, Label: "Pure camp", Description: "Completely absurd and self-aware",
				Examples: []string{"The Rocky Horror Picture Show", "Everything Everywhere All at Once", "The Lobster"}, Color: "#db2777"},
		},
	},
	"color": {
		Name:        "Color",
		Description: "How visually striking and aesthetically rich?",
		Icon:        "🎨",
		Levels: []Level{
			{Value: 1, Label: "Bleak", Description: "Deliberately drab and colorless",
				Examples: []string{"The Road", "Mad Max: Fury Road (desert)", "Children of Men"}, Color: "#6b7280"},
			{Value: 2, Label: "Muted", Description: "Subdued color palette",
				Examples: []string{"No Country for Old Men", "Sicario", "The Batman"}, Color: "#78716c"},
			{Value: 3, Label: "Standard", Description: "Normal cinematography",
				Examples: []string{"Most Hollywood films", "John Wick", "The Social Network"}, Color: "#64748b"},
			{Value: 4, Label: "Visually rich", Description: "Beautiful cinematography and design",
				Examples: []string{"Blade Runner 2049", "Her", "La La Land"}, Color: "#059669"},
			{Value: 5, Label: "Visual feast", Description: "Absolutely stunning visual experience",
				Examples: []string{"The Grand Budapest Hotel", "Spider-Verse", "Avatar"}, Color: "#047857"},
		},
	},
	"pace": {
		Name:        "Pace",
		Description: "How fast-moving and energetic?",
		Icon:        "⚡",
		Levels: []Level{
			{Value: 1, Label: "Glacial", Description: "Extremely slow, contemplative pacing",
				Examples: []string{"2001: A Space Odyssey", "Stalker", "The Tree of Life"}, Color: "#64748b"},
			{Value: 2, Label: "Slow burn", Description: "Deliberate, measured pacing",
				Examples: []string{"There Will Be Blood", "Blade Runner 2049", "The Godfather"}, Color: "#6b7280"},
			{Value: 3, Label: "Standard", Description: "Normal pacing for the genre",
				Examples: []string{"Most dramas and thrillers", "The Dark Knight", "Arrival"}, Color: "#64748b"},
			{Value: 4, Label: "Energetic", Description: "Quick-moving with good momentum",
				Examples: []string{"John Wick", "Baby Driver", "Edge of Tomorrow"}, Color: "#f97316"},
			{Value: 5, Label: "Breakneck", Description: "Non-stop action and energy",
				Examples: []string{"Mad Max: Fury Road", "Crank", "Speed"}, Color: "#ea580c"},
		},
	},
	"darkness": {
		Name:        "Darkness",
		Description: "How heavy, serious, or emotionally intense?",
		Icon:        "🌙",
		Levels: []Level{
			{Value: 1, Label: "Pure light", Description: "Completely upbeat and innocent",
				Examples: []string{"Paddington films", "Studio Ghibli", "The Princess Bride"}, Color: "#fbbf24"},
			{Value: 2, Label: "Mostly light", Description: "Generally upbeat with minor conflicts",
				Examples: []string{"Marvel movies", "Romantic comedies", "The Grand Budapest Hotel"}, Color: "#f59e0b"},
			{Value: 3, Label: "Balanced", Description: "Mix of light and dark elements",
				Examples: []string{"Most mainstream films", "The Social Network", "Knives Out"}, Color: "#64748b"},
			{Value: 4, Label: "Heavy", Description: "Serious themes and darker content",
				Examples: []string{"The Dark Knight", "No Country for Old Men", "Zodiac"}, Color: "#4b5563"},
			{Value: 5, Label: "Soul-crushing", Description: "Extremely dark and disturbing",
				Examples: []string{"Requiem for a Dream", "Funny Games", "Irreversible"}, Color: "#374151"},
		},
	},
	"novelty": {
		Name:        "Novelty",
		Description: "How unique, innovative, or surprising?",
		Icon:        "✨",
		Levels: []Level{
			{Value: 1, Label: "By the book", Description: "Completely formulaic and predictable",
				Examples: []string{"Generic action movies", "Typical rom-coms", "Cookie-cutter thrillers"}, Color: "#6b7280"},
			{Value: 2, Label: "Familiar", Description: "Follows known patterns with small variations",
				Examples: []string{"Most Marvel movies", "John Wick sequels", "Standard dramas"}, Color: "#78716c"},
			{Value: 3, Label: "Standard", Description: "Some original elements within familiar framework",
				Examples: []string{"Knives Out", "The Social Network", "Get Out"}, Color: "#64748b"},
			{Value: 4, Label: "Fresh", Description: "Notably original approach or concept",
				Examples: []string{"Inception", "Her", "Parasite"}, Color: "#06b6d4"},
			{Value: 5, Label: "Groundbreaking", Description: "Completely unique and innovative",
				Examples: []string{"Everything Everywhere All at Once", "Being John Malkovich", "Holy Motors"}, Color: "#0891b2"},
		},
	},
	"social_safe": {
		Name:        "Social Safe",
		Description: "How comfortable to watch with others?",
		Icon:        "👥",
		Levels: []Level{
			{Value: 1, Label: "Watch alone", Description: "Extremely uncomfortable content",
				Examples: []string{"Nymphomaniac", "Irreversible", "Salo"}, Color: "#dc2626"},
			{Value: 2, Label: "Close friends only", Description: "Graphic or controversial content",
				Examples: []string{"Pulp Fiction", "Deadpool", "The Wolf of Wall Street"}, Color: "#ea580c"},
			{Value: 3, Label: "Adult company", Description: "Some mature themes but generally okay",
				Examples: []string{"Most R-rated films", "The Dark Knight", "Inception"}, Color: "#64748b"},
			{Value: 4, Label: "Family friendly", Description: "Safe for most audiences",
				Examples: []string{"Marvel movies", "The Princess Bride", "Spider-Verse"}, Color: "#16a34a"},
			{Value: 5, Label: "Universal", Description: "Perfect for any group or family",
				Examples: []string{"Toy Story", "Studio Ghibli films", "Paddington"}, Color: "#059669"},
		},
	},
	"runtime_fit": {
		Name:        "Runtime Fit",
		Description: "How well-paced for its length?",
		Icon:        "⏱️",
		Levels: []Level{
			{Value: 1, Label: "Bloated", Description: "Way too long, poor pacing throughout",
				Examples: []string{"Justice League (4hr)", "The Irishman (dragging parts)", "Batman v Superman"}, Color: "#dc2626"},
			{Value: 2, Label: "Too long", Description: "Could have been shorter",
				Examples: []string{"Some Marvel movies", "Transformers sequels", "The Hobbit trilogy"}, Color: "#ea580c"},
			{Value: 3, Label: "Adequate", Description: "Length feels about right",
				Examples: []string{"Most Hollywood films", "Standard 90-120 min movies"}, Color: "#64748b"},
			{Value: 4, Label: "Well-paced", Description: "Every minute feels necessary",
				Examples: []string{"John Wick", "Mad Max: Fury Road", "Knives Out"}, Color: "#3b82f6"},
			{Value: 5, Label: "Perfect", Description: "Absolutely perfect pacing and length",
				Examples: []string{"Whiplash", "Parasite", "The Social Network"}, Color: "#1d4ed8"},
		},
	},
	"subs_energy": {
		Name:        "Subs Energy",
		Description: "How much mental energy do subtitles require?",
		Icon:        "💭",
		Levels: []Level{
			{Value: 1, Label: "English only", Description: "No subtitles needed",
				Examples: []string{"Most Hollywood films", "English-language indies"}, Color: "#16a34a"},
			{Value: 2, Label: "Minimal subs", Description: "Occasional foreign language",
				Examples: []string{"Kill Bill", "Star Wars (alien languages)", "Inglourious Basterds"}, Color: "#65a30d"},
			{Value: 3, Label: "Standard subs", Description: "Foreign film with normal dialogue",
				Examples: []string{"Most foreign films", "Parasite", "Roma"}, Color: "#64748b"},
			{Value: 4, Label: "Heavy reading", Description: "Fast dialogue or complex terms",
				Examples: []string{"Dense foreign dramas", "Historical epics with period language"}, Color: "#a855f7"},
			{Value: 5, Label: "Reading workout", Description: "Extremely dense or rapid subtitles",
				Examples: []string{"Dense foreign arthouse", "Films with heavy accents + subs"}, Color: "#9333ea"},
		},
	},
}
