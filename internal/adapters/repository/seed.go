package repository

import "github.com/okian/rondo/internal/domain/model"

// SeedCatalog is the bootstrap concert listing loaded into an empty
// store at startup. Ongoing listings arrive through the external
// ingestion pipeline, not through this service.
func SeedCatalog() []model.Concert {
	return []model.Concert{
		{
			Title:       "José Luiz Martins' Brazil Project",
			Date:        "Sunday at 7:00 PM",
			Venue:       "Takoma Station Tavern",
			Price:       "From $23.18",
			Organizer:   "Jazz Kitchen Productions",
			Description: "Experience the vibrant rhythms of Brazilian jazz with internationally acclaimed pianist José Luiz Martins.",
			ImageURL:    "https://img.evbuc.com/https%3A%2F%2Fcdn.evbuc.com%2Fimages%2F1051553063%2F53596862044%2F1%2Foriginal.20250612-114654",
		},
		{
			Title:       "Harpsichordist Jory Vinikour plays Sparkling Scarlatti Sonatas",
			Date:        "Sat, Jun 28, 8:00 PM",
			Venue:       "St. Columba's Episcopal Church",
			Price:       "From $63.74",
			Organizer:   "Capriccio Baroque",
			Description: "Renowned harpsichordist Jory Vinikour brings Scarlatti's brilliant sonatas to life in an intimate baroque setting.",
			ImageURL:    "https://img.evbuc.com/https%3A%2F%2Fcdn.evbuc.com%2Fimages%2F923324233%2F226582576668%2F1%2Foriginal.20241226-115525",
		},
		{
			Title:       "Washington | 2025 Scholarship Pianists Debut Recital",
			Date:        "Fri, Jul 18, 7:30 PM",
			Venue:       "La Maison Française, Embassy of France",
			Price:       "Free",
			Organizer:   "Embassy Cultural Program",
			Description: "Young scholarship recipients showcase their exceptional talent in this debut performance at the French Embassy.",
			ImageURL:    "https://img.evbuc.com/https%3A%2F%2Fcdn.evbuc.com%2Fimages%2F1012220253%2F90224703647%2F1%2Foriginal.20250418-200017",
		},
		{
			Title:       "Fatty Liver Foundation Benefit Recital | Celimene Daudet, Piano",
			Date:        "Thu, Oct 23, 7:30 PM",
			Venue:       "La Maison Française, Embassy of France",
			Price:       "Donation",
			Organizer:   "Fatty Liver Foundation",
			Description: "Celebrated pianist Celimene Daudet performs in support of fatty liver disease research and awareness.",
			ImageURL:    "https://img.evbuc.com/https%3A%2F%2Fcdn.evbuc.com%2Fimages%2F838593109%2F90224703647%2F1%2Foriginal.20240831-144333",
		},
		{
			Title:       "DC Chamber Musicians Season Finale",
			Date:        "Saturday at 3:00 PM",
			Venue:       "St Thomas Episcopal Church",
			Price:       "From $35.00",
			Organizer:   "DC Chamber Musicians",
			Description: "The season concludes with an extraordinary chamber music performance featuring piano and strings.",
			ImageURL:    "https://img.evbuc.com/https%3A%2F%2Fcdn.evbuc.com%2Fimages%2F1034149363%2F1463811440923%2F1%2Foriginal.20250519-164932",
		},
		{
			Title:       "Considering Matthew Shepard",
			Date:        "Fri, Jul 11, 7:30 PM",
			Venue:       "Washington National Cathedral",
			Price:       "From $23.18",
			Organizer:   "Berkshire Choral",
			Description: "A powerful choral and piano performance honoring the memory of Matthew Shepard.",
			ImageURL:    "https://img.evbuc.com/https%3A%2F%2Fcdn.evbuc.com%2Fimages%2F1040576603%2F528497426627%2F1%2Foriginal.20250528-133310",
		},
	}
}
