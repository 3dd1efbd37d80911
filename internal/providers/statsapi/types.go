package statsapi

// Typed view of the statsapi schedule envelope. Fields the feed does not use
// are omitted; missing fields decode to zero values and are defaulted or
// dropped by the mapper.
type scheduleResponse struct {
	Dates []dateResponse `json:"dates"`
}

type dateResponse struct {
	Date  string         `json:"date"`
	Games []gameResponse `json:"games"`
}

type gameResponse struct {
	GamePk   int64          `json:"gamePk"`
	GameDate string         `json:"gameDate"`
	Status   statusResponse `json:"status"`
	Teams    teamsResponse  `json:"teams"`
}

type statusResponse struct {
	DetailedState string `json:"detailedState"`
}

type teamsResponse struct {
	Home sideResponse `json:"home"`
	Away sideResponse `json:"away"`
}

type sideResponse struct {
	Team  teamResponse  `json:"team"`
	Venue venueResponse `json:"venue"`
}

type teamResponse struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	Abbreviation string `json:"abbreviation"`
}

type venueResponse struct {
	Name string `json:"name"`
}
