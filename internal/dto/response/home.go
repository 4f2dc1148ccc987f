package response

type SiteMeta struct {
	Name        string   `json:"name"`
	Title       string   `json:"title"`
	Author      string   `json:"author"`
	Description string   `json:"description"`
	Keywords    []string `json:"keywords"`
}

type HomeResponse struct {
	Site       SiteMeta      `json:"site"`
	Trending   []GameSummary `json:"trending_games"`
	Popular    []GameSummary `json:"popular_games"`
	MostViewed []GameSummary `json:"most_viewed_games"`
	New        []GameSummary `json:"new_games"`
	Carousel   []GameSummary `json:"carousel_games"`
	Featured   []GameSummary `json:"featured_games"`
}
