package training

// PackageRequest is the JSON body for POST /trainings/summary and one entry
// of a batch.
type PackageRequest struct {
	Type string    `json:"type"` // "SWM", "RUN" or "WLK"
	Data []float64 `json:"data"` // positional sensor readings
}

// SummaryResponse is the JSON response for a computed training.
type SummaryResponse struct {
	TrainingType string  `json:"training_type"`
	Duration     float64 `json:"duration"`
	Distance     float64 `json:"distance"`
	Speed        float64 `json:"speed"`
	Calories     float64 `json:"calories"`
	Message      string  `json:"message"`
}

// BatchRequest is the JSON body for POST /trainings/batch.
type BatchRequest struct {
	Packages []PackageRequest `json:"packages"`
}

// BatchResponse is the JSON response for POST /trainings/batch. Results keep
// the order of the request.
type BatchResponse struct {
	Results []BatchResult `json:"results"`
	Failed  int           `json:"failed"`
}

// BatchResult is the outcome of one batch entry: either Summary or Error is set.
type BatchResult struct {
	Index   int              `json:"index"`
	Type    string           `json:"type"`
	Summary *SummaryResponse `json:"summary,omitempty"`
	Error   string           `json:"error,omitempty"`
}

// TypesResponse is the JSON response for GET /trainings/types.
type TypesResponse struct {
	Types []TypeInfo `json:"types"`
}

func newSummaryResponse(m InfoMessage) SummaryResponse {
	return SummaryResponse{
		TrainingType: m.TrainingType,
		Duration:     m.Duration,
		Distance:     m.Distance,
		Speed:        m.Speed,
		Calories:     m.Calories,
		Message:      m.Message(),
	}
}
