package catalog

// FixtureEventIDs lists every event id in the fixture catalog, in fixture
// order. The seating provider uses it to backfill default layouts.
func FixtureEventIDs() []string {
	events := mockEvents()
	ids := make([]string, len(events))
	for i, e := range events {
		ids[i] = e.ID
	}
	return ids
}

// mockEvents returns the fixture catalog. The provider hands out copies;
// the fixtures themselves are never mutated after startup.
func mockEvents() []Event {
	return []Event{
		{
			ID:          "concert-123",
			Name:        "Rock Legends Live",
			Description: "Experience the greatest hits from rock legends in an unforgettable night of music and spectacle. Featuring pyrotechnics and special guest appearances.",
			Dates: []EventDate{
				{Date: "2024-09-14", Time: "09:00", EndDate: "2024-09-15", EndTime: "18:00", Label: "Nightrain Pre-Sale", Type: DateTypePresaleNightrain},
				{Date: "2024-09-15", Time: "10:00", Label: "Public On-Sale", Type: DateTypeOnsalePublic},
				{Date: "2024-11-15", Time: "19:00", GateOpenTime: "18:00", Type: DateTypeShow},
				{Date: "2024-11-16", Time: "20:00", GateOpenTime: "19:00", Rounds: []string{"Early Bird Show", "Main Show"}, Type: DateTypeShow},
			},
			Location:          Location{Lat: 34.0522, Lng: -118.2437, Name: "Crypto.com Arena, LA"},
			Category:          CategoryConcert,
			ImageURL:          "https://picsum.photos/seed/eventposter1/400/600",
			BannerURL:         "https://picsum.photos/seed/concert1banner/1600/500",
			Tags:              []string{"Rock", "Live Music", "Stadium"},
			Organizer:         "LiveNation",
			SoldOut:           false,
			PriceRangeDisplay: []string{"VIP Package: 5,000 THB - 7,500 THB", "Regular: 2,500 THB - 4,000 THB", "Economy: 1,500 THB"},
			TicketStatus:      StatusOnSale,
		},
		{
			ID:          "sports-456",
			Name:        "Championship Finals: Lakers vs Celtics",
			Description: "The ultimate showdown! Witness basketball history as the Lakers take on the Celtics in the Championship Finals. Expect intense action and a star-studded crowd.",
			Dates: []EventDate{
				{Date: "2024-10-04", Time: "12:00", Label: "General Sale", Type: DateTypeOnsalePublic},
				{Date: "2024-12-05", Time: "18:30", GateOpenTime: "17:00", Type: DateTypeShow},
			},
			Location:          Location{Lat: 34.0430, Lng: -118.2673, Name: "Staples Center, LA"},
			Category:          CategorySport,
			ImageURL:          "https://picsum.photos/seed/eventposter2/400/600",
			BannerURL:         "https://picsum.photos/seed/sports1banner/1600/500",
			Tags:              []string{"Basketball", "NBA", "Finals"},
			Organizer:         "NBA Commisioner Office",
			SoldOut:           true,
			PriceRangeDisplay: []string{"Courtside: 15,000 THB", "Lower Bowl: 5,000 THB - 8,000 THB", "Upper Bowl: 2,000 THB"},
			TicketStatus:      StatusSoldOut,
		},
		{
			ID:          "conference-789",
			Name:        "Tech Innovators Summit 2025",
			Description: "Join industry leaders, innovators, and visionaries at the Tech Innovators Summit. Discover the latest trends in AI, Web3, and sustainable tech.",
			Dates: []EventDate{
				{Date: "2025-01-15", Time: "09:00", Label: "Early Bird Tickets", Type: DateTypePresaleGeneral},
				{Date: "2025-02-20", Time: "09:00", GateOpenTime: "08:00", Rounds: []string{"Day 1 Keynotes", "Day 1 Workshops"}, Type: DateTypeShow, Label: "Summit Day 1"},
				{Date: "2025-02-21", Time: "09:30", GateOpenTime: "08:30", Rounds: []string{"Day 2 Panels", "Day 2 Networking"}, Type: DateTypeShow, Label: "Summit Day 2"},
			},
			Location:          Location{Lat: 37.7749, Lng: -122.4194, Name: "Moscone Center, SF"},
			Category:          CategoryConference,
			ImageURL:          "https://picsum.photos/seed/eventposter3/400/600",
			BannerURL:         "https://picsum.photos/seed/conference1banner/1600/500",
			Tags:              []string{"Technology", "AI", "Networking"},
			Organizer:         "TechCon Group",
			SoldOut:           false,
			PriceRangeDisplay: []string{"All Access Pass: 12,000 THB", "Student Pass: 4,500 THB"},
			TicketStatus:      StatusComingSoon,
		},
		{
			ID:          "concert-124",
			Name:        "Pop Sensations Tour Live in Bangkok",
			Description: "Dance the night away with the biggest pop stars of today! A high-energy show with dazzling choreography and chart-topping hits.",
			Dates: []EventDate{
				{Date: "2025-03-10", Time: "10:00", Label: "Fanclub Pre-Sale", Type: DateTypePresaleGeneral},
				{Date: "2025-03-12", Time: "10:00", Label: "Public Sale", Type: DateTypeOnsalePublic},
				{Date: "2025-04-22", Time: "19:30", GateOpenTime: "18:00", Type: DateTypeShow},
			},
			Location:          Location{Lat: 13.7563, Lng: 100.5018, Name: "Rajamangala Stadium, BKK"},
			Category:          CategoryConcert,
			ImageURL:          "https://picsum.photos/seed/eventposter4/400/600",
			BannerURL:         "https://picsum.photos/seed/concert2banner/1600/500",
			Tags:              []string{"Pop", "Live Music", "Arena"},
			Organizer:         "PopStar Productions",
			SoldOut:           false,
			PriceRangeDisplay: []string{"Standing A: 4,000 THB", "Standing B: 3,000 THB", "Seated: 2,000 - 5,000 THB"},
			TicketStatus:      StatusOnSale,
		},
		{
			ID:          "sports-457",
			Name:        "Grand Slam Tennis Tournament Thailand Open",
			Description: "Witness world-class tennis as top players battle for the Grand Slam title. An event of tradition and excitement.",
			Dates: []EventDate{
				{Date: "2025-06-01", Time: "10:00", Label: "Ticket Sales Open", Type: DateTypeOnsalePublic},
				{Date: "2025-07-10", Time: "14:00", GateOpenTime: "12:00", Type: DateTypeShow, Label: "Finals Day"},
			},
			Location:          Location{Lat: 13.7308, Lng: 100.5231, Name: "Impact Arena, Muang Thong Thani"},
			Category:          CategorySport,
			ImageURL:          "https://picsum.photos/seed/eventposter5/400/600",
			BannerURL:         "https://picsum.photos/seed/sports2banner/1600/500",
			Tags:              []string{"Tennis", "Grand Slam", "Championship"},
			Organizer:         "Thailand Tennis Association",
			SoldOut:           true,
			PriceRangeDisplay: []string{"Premium Seats: 6,000 THB", "Standard Seats: 1,500 - 3,500 THB"},
			TicketStatus:      StatusSoldOut,
		},
		{
			ID:          "exhibition-101",
			Name:        "Ancient Artifacts of Siam Revealed",
			Description: "Explore a stunning collection of recently unearthed ancient artifacts, offering a glimpse into long-lost civilizations. A journey through time.",
			// An exhibition runs as a single long show window, always on sale
			Dates: []EventDate{
				{Date: "2024-12-01", Time: "10:00", EndDate: "2025-03-31", EndTime: "17:00", GateOpenTime: "10:00", Type: DateTypeShow, Label: "Exhibition Period"},
			},
			Location:          Location{Lat: 13.7461, Lng: 100.5039, Name: "National Museum, Bangkok"},
			Category:          CategoryExhibition,
			ImageURL:          "https://picsum.photos/seed/eventposter6/400/600",
			BannerURL:         "https://picsum.photos/seed/exhibit1banner/1600/500",
			Tags:              []string{"History", "Art", "Museum"},
			Organizer:         "Fine Arts Department",
			SoldOut:           false,
			PriceRangeDisplay: []string{"Adult: 200 THB", "Student: 50 THB", "Free for Children under 12"},
			TicketStatus:      StatusOnSale,
		},
		{
			ID:          "performance-202",
			Name:        "The Magical Mystery Show: Bangkok Edition",
			Description: "A breathtaking theatrical performance filled with illusions, captivating storytelling, and spectacular stage effects. Fun for the whole family!",
			Dates: []EventDate{
				{Date: "2025-02-15", Time: "10:00", Label: "Early Bird Sale", Type: DateTypePresaleGeneral},
				{Date: "2025-02-20", Time: "10:00", Label: "General Sale", Type: DateTypeOnsalePublic},
				{Date: "2025-03-25", Time: "19:00", GateOpenTime: "18:30", Type: DateTypeShow},
				{Date: "2025-03-26", Time: "14:00", GateOpenTime: "13:30", Type: DateTypeShow},
				{Date: "2025-03-26", Time: "19:00", GateOpenTime: "18:30", Type: DateTypeShow},
			},
			Location:          Location{Lat: 13.7400, Lng: 100.5373, Name: "Thailand Cultural Centre, Main Hall"},
			Category:          CategoryPerformance,
			ImageURL:          "https://picsum.photos/seed/eventposter7/400/600",
			BannerURL:         "https://picsum.photos/seed/performance1banner/1600/500",
			Tags:              []string{"Theatre", "Magic", "Family Show"},
			Organizer:         "Mysteria Productions Asia",
			SoldOut:           false,
			PriceRangeDisplay: []string{"Diamond: 3,500 THB", "Gold: 2,500 THB", "Silver: 1,500 THB"},
			TicketStatus:      StatusComingSoon,
		},
	}
}
