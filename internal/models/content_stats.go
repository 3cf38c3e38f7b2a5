package models

type ContentStats struct {
	TotalDestinations       int64            `json:"totalDestinations"`
	TotalBlogs              int64            `json:"totalBlogs"`
	TotalCountries          int64            `json:"totalCountries"`
	TotalSubscribers        int64            `json:"totalSubscribers"`
	TotalFeedback           int64            `json:"totalFeedback"`
	DestinationsByCountry   map[string]int64 `json:"destinationsByCountry"`
	DestinationsByContinent map[string]int64 `json:"destinationsByContinent"`
	RecentDestinations      []Destination    `json:"recentDestinations"`
	RecentBlogs             []Blog           `json:"recentBlogs"`
}
