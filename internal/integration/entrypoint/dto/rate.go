package dto

// GetRateResponseDTO represents the response for GET /rate.
type GetRateResponseDTO struct {
	Rate      string `json:"rate"`
	FetchedAt string `json:"fetched_at"`
}
