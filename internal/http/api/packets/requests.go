package packets

// CitySelectedRequest is the settings UI telling us which city to track.
type CitySelectedRequest struct {
	City    string `json:"city" binding:"required"`
	Country string `json:"country"`
	Label   string `json:"label"`
}
