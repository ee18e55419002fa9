package service

// Corpus curado para poblar el catálogo: películas populares con reviews
// representativas de la comunidad. En producción esto vendría de un scrape
// real; el corpus fijo mantiene el pipeline completo funcionando offline.

type seedMovie struct {
	ExternalID      string
	Title           string
	Year            int
	Director        string
	Genres          []string
	Runtime         int
	PosterURL       string
	ExternalURL     string
	CommunityRating float64 // escala 0.5-5.0
	ReviewCount     int
	Reviews         []string
}

var seedCorpus = []seedMovie{
	{
		ExternalID:      "letterboxd_1",
		Title:           "The Grand Budapest Hotel",
		Year:            2014,
		Director:        "Wes Anderson",
		Genres:          []string{"Comedy", "Drama"},
		Runtime:         99,
		PosterURL:       "https://images.unsplash.com/photo-1489599317415-3bac6e9677cf?w=300&h=450&fit=crop",
		ExternalURL:     "https://letterboxd.com/film/the-grand-budapest-hotel/",
		CommunityRating: 4.1,
		ReviewCount:     125000,
		Reviews: []string{
			"Visually stunning and whimsical. The symmetrical compositions and pastel palette make every frame a work of art. Ralph Fiennes delivers perfect comedic timing.",
			"A gorgeous, delightful confection. Pure fun from start to finish, colorful in every sense.",
		},
	},
	{
		ExternalID:      "letterboxd_2",
		Title:           "Inception",
		Year:            2010,
		Director:        "Christopher Nolan",
		Genres:          []string{"Action", "Sci-Fi", "Thriller"},
		Runtime:         148,
		PosterURL:       "https://images.unsplash.com/photo-1440404653325-ab127d49abc1?w=300&h=450&fit=crop",
		ExternalURL:     "https://letterboxd.com/film/inception/",
		CommunityRating: 4.3,
		ReviewCount:     280000,
		Reviews: []string{
			"Mind-bending masterpiece that demands multiple viewings. A labyrinthine narrative that challenges viewers while delivering spectacular action. Complex but rewarding.",
			"Intelligent, original blockbuster filmmaking. Thought-provoking on every level.",
		},
	},
	{
		ExternalID:      "letterboxd_3",
		Title:           "Parasite",
		Year:            2019,
		Director:        "Bong Joon-ho",
		Genres:          []string{"Thriller", "Drama", "Comedy"},
		Runtime:         132,
		PosterURL:       "https://images.unsplash.com/photo-1594736797933-d0401ba2fe65?w=300&h=450&fit=crop",
		ExternalURL:     "https://letterboxd.com/film/parasite/",
		CommunityRating: 4.5,
		ReviewCount:     195000,
		Reviews: []string{
			"A darkly brilliant social thriller that cuts deep. The film shifts tones seamlessly from comedy to horror, keeping you on edge. Subtitles are worth it for this incredible Korean cinema.",
			"Disturbing, intelligent and completely original. One of the most unique films of the decade.",
		},
	},
	{
		ExternalID:      "letterboxd_4",
		Title:           "Mad Max: Fury Road",
		Year:            2015,
		Director:        "George Miller",
		Genres:          []string{"Action", "Adventure", "Sci-Fi"},
		Runtime:         120,
		PosterURL:       "https://images.unsplash.com/photo-1518930259200-52d8e47b4651?w=300&h=450&fit=crop",
		ExternalURL:     "https://letterboxd.com/film/mad-max-fury-road/",
		CommunityRating: 4.2,
		ReviewCount:     165000,
		Reviews: []string{
			"Pure adrenaline from start to finish. Non-stop action with practical stunts that put CGI to shame. The chase sequences are choreographed like ballet. Minimal dialogue, maximum impact.",
			"Fast-paced, action-packed and gorgeous to look at. What a ride.",
		},
	},
	{
		ExternalID:      "letterboxd_5",
		Title:           "Everything Everywhere All at Once",
		Year:            2022,
		Director:        "Daniels",
		Genres:          []string{"Action", "Comedy", "Sci-Fi"},
		Runtime:         139,
		PosterURL:       "https://images.unsplash.com/photo-1578662996442-48f60103fc96?w=300&h=450&fit=crop",
		ExternalURL:     "https://letterboxd.com/film/everything-everywhere-all-at-once/",
		CommunityRating: 4.4,
		ReviewCount:     145000,
		Reviews: []string{
			"Absolutely bonkers in the best way possible. This multiverse madness somehow manages to be emotionally resonant while being completely unhinged. Inventive, weird, and surprisingly moving.",
			"Bizarre, original, fun and strangely uplifting. Nothing else like it.",
		},
	},
	{
		ExternalID:      "letterboxd_6",
		Title:           "The Lobster",
		Year:            2015,
		Director:        "Yorgos Lanthimos",
		Genres:          []string{"Comedy", "Drama", "Romance"},
		Runtime:         119,
		PosterURL:       "https://images.unsplash.com/photo-1489599317415-3bac6e9677cf?w=300&h=450&fit=crop",
		ExternalURL:     "https://letterboxd.com/film/the-lobster/",
		CommunityRating: 3.6,
		ReviewCount:     89000,
		Reviews: []string{
			"Absurd and bleak in equal measure. A deadpan, bizarre premise executed with total commitment. Not for everyone, but utterly unique.",
			"Weird, dark and strangely funny. Slow in places but the strangeness carries it.",
		},
	},
	{
		ExternalID:      "letterboxd_7",
		Title:           "Moonlight",
		Year:            2016,
		Director:        "Barry Jenkins",
		Genres:          []string{"Drama"},
		Runtime:         111,
		PosterURL:       "https://images.unsplash.com/photo-1536440136628-849c177e76a1?w=300&h=450&fit=crop",
		ExternalURL:     "https://letterboxd.com/film/moonlight-2016/",
		CommunityRating: 4.2,
		ReviewCount:     78000,
		Reviews: []string{
			"Beautiful and heartbreaking. Every frame is gorgeous, bathed in blues and purples. A quiet, intense character study that earns every emotion.",
			"Sad, intimate and visually stunning. Patient storytelling at its best.",
		},
	},
	{
		ExternalID:      "letterboxd_8",
		Title:           "John Wick",
		Year:            2014,
		Director:        "Chad Stahelski",
		Genres:          []string{"Action", "Thriller"},
		Runtime:         101,
		PosterURL:       "https://images.unsplash.com/photo-1518930259200-52d8e47b4651?w=300&h=450&fit=crop",
		ExternalURL:     "https://letterboxd.com/film/john-wick/",
		CommunityRating: 3.9,
		ReviewCount:     142000,
		Reviews: []string{
			"Fast-paced gun-fu ballet. The action choreography is crisp and readable, pure adrenaline with a simple revenge hook. Lean and fun.",
			"Non-stop action that never drags. Exactly what it promises.",
		},
	},
	{
		ExternalID:      "letterboxd_9",
		Title:           "Spider-Man: Into the Spider-Verse",
		Year:            2018,
		Director:        "Bob Persichetti",
		Genres:          []string{"Animation", "Action", "Adventure"},
		Runtime:         117,
		PosterURL:       "https://images.unsplash.com/photo-1578662996442-48f60103fc96?w=300&h=450&fit=crop",
		ExternalURL:     "https://letterboxd.com/film/spider-man-into-the-spider-verse/",
		CommunityRating: 4.3,
		ReviewCount:     156000,
		Reviews: []string{
			"Visually stunning animation that reinvents the form. Every frame is colorful, innovative and bursting with joy. A fresh take on a story we thought we knew.",
			"Gorgeous, fun and genuinely original. The most inventive animated film in years.",
		},
	},
	{
		ExternalID:      "letterboxd_10",
		Title:           "The Shape of Water",
		Year:            2017,
		Director:        "Guillermo del Toro",
		Genres:          []string{"Drama", "Fantasy", "Romance"},
		Runtime:         123,
		PosterURL:       "https://images.unsplash.com/photo-1536440136628-849c177e76a1?w=300&h=450&fit=crop",
		ExternalURL:     "https://letterboxd.com/film/the-shape-of-water/",
		CommunityRating: 3.8,
		ReviewCount:     98000,
		Reviews: []string{
			"A gorgeous adult fairy tale. The production design is beautiful, drenched in greens and ambers. Strange, romantic and a little dark.",
			"Weird premise, beautiful execution. A unique love story told with total sincerity.",
		},
	},
}

// fallbackCorpus es el mínimo con el que el catálogo puede arrancar si el
// poblado completo falla a mitad de camino.
var fallbackCorpus = []seedMovie{seedCorpus[0], seedCorpus[2], seedCorpus[3]}
