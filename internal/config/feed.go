package config

// FeedConfig identifies the team the feed is built for and the calendar-level
// metadata emitted on every document.
type FeedConfig struct {
	TeamID          int
	TeamName        string
	DisplayName     string
	HomeVenue       string
	ProdID          string
	Filename        string
	RefreshInterval string
}

func loadFeed() FeedConfig {
	return FeedConfig{
		TeamID:          TeamID,
		TeamName:        teamName,
		DisplayName:     feedDisplayName,
		HomeVenue:       homeVenueName,
		ProdID:          feedProdID,
		Filename:        feedFilename,
		RefreshInterval: feedRefreshInterval,
	}
}
