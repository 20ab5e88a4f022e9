package ingestion

import "github.com/jonathan/movie-recommender/internal/types"

// SampleMovies returns a small built-in catalog for demos and local
// development, used by `seed --sample` when no dataset CSVs are around.
func SampleMovies() []types.Movie {
	movies := []types.Movie{
		{
			Title:       "Inception",
			Description: "A thief who steals corporate secrets through the use of dream-sharing technology is given the inverse task of planting an idea into the mind of a C.E.O.",
			Genre:       "Sci-Fi, Thriller",
			Director:    "Christopher Nolan",
			Actors:      "Leonardo DiCaprio, Joseph Gordon-Levitt, Elliot Page",
		},
		{
			Title:       "The Matrix",
			Description: "A computer hacker learns from mysterious rebels about the true nature of his reality and his role in the war against its controllers.",
			Genre:       "Sci-Fi, Action",
			Director:    "Lana Wachowski, Lilly Wachowski",
			Actors:      "Keanu Reeves, Laurence Fishburne, Carrie-Anne Moss",
		},
		{
			Title:       "Interstellar",
			Description: "A team of explorers travel through a wormhole in space in an attempt to ensure humanity's survival.",
			Genre:       "Sci-Fi, Adventure, Drama",
			Director:    "Christopher Nolan",
			Actors:      "Matthew McConaughey, Anne Hathaway, Jessica Chastain",
		},
		{
			Title:       "The Dark Knight",
			Description: "When the menace known as the Joker wreaks havoc and chaos on the people of Gotham, Batman must accept one of the greatest psychological and physical tests of his ability to fight injustice.",
			Genre:       "Action, Crime, Drama",
			Director:    "Christopher Nolan",
			Actors:      "Christian Bale, Heath Ledger, Aaron Eckhart",
		},
		{
			Title:       "Pulp Fiction",
			Description: "The lives of two mob hitmen, a boxer, a gangster and his wife, and a pair of diner bandits intertwine in four tales of violence and redemption.",
			Genre:       "Crime, Drama",
			Director:    "Quentin Tarantino",
			Actors:      "John Travolta, Uma Thurman, Samuel L. Jackson",
		},
		{
			Title:       "Forrest Gump",
			Description: "The presidencies of Kennedy and Johnson, the Vietnam War, the Watergate scandal and other historical events unfold from the perspective of an Alabama man with an IQ of 75.",
			Genre:       "Drama, Romance",
			Director:    "Robert Zemeckis",
			Actors:      "Tom Hanks, Robin Wright, Gary Sinise",
		},
		{
			Title:       "The Shawshank Redemption",
			Description: "Two imprisoned men bond over a number of years, finding solace and eventual redemption through acts of common decency.",
			Genre:       "Drama",
			Director:    "Frank Darabont",
			Actors:      "Tim Robbins, Morgan Freeman, Bob Gunton",
		},
		{
			Title:       "Toy Story",
			Description: "A cowboy doll is profoundly threatened and jealous when a new spaceman figure supplants him as top toy in a boy's room.",
			Genre:       "Animation, Adventure, Comedy",
			Director:    "John Lasseter",
			Actors:      "Tom Hanks, Tim Allen, Don Rickles",
		},
		{
			Title:       "The Lion King",
			Description: "Lion prince Simba and his father are targeted by his bitter uncle, who wants to ascend the throne himself.",
			Genre:       "Animation, Musical, Drama",
			Director:    "Roger Allers, Rob Minkoff",
			Actors:      "Matthew Broderick, Jeremy Irons, James Earl Jones",
		},
		{
			Title:       "Gladiator",
			Description: "A former Roman General sets out to exact vengeance against the corrupt emperor who murdered his family and sent him into slavery.",
			Genre:       "Action, Adventure, Drama",
			Director:    "Ridley Scott",
			Actors:      "Russell Crowe, Joaquin Phoenix, Connie Nielsen",
		},
		{
			Title:       "Saving Private Ryan",
			Description: "Following the Normandy Landings, a group of U.S. soldiers go behind enemy lines to retrieve a paratrooper whose brothers have been killed in action.",
			Genre:       "Drama, War",
			Director:    "Steven Spielberg",
			Actors:      "Tom Hanks, Matt Damon, Tom Sizemore",
		},
		{
			Title:       "The Godfather",
			Description: "The aging patriarch of an organized crime dynasty transfers control of his clandestine empire to his reluctant son.",
			Genre:       "Crime, Drama",
			Director:    "Francis Ford Coppola",
			Actors:      "Marlon Brando, Al Pacino, James Caan",
		},
	}

	for i := range movies {
		movies[i].PosterURL = PlaceholderPosterURL
	}
	return movies
}
