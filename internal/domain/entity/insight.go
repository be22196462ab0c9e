package entity

// Insight is the free-text analysis returned by the AI collaborator.
type Insight struct {
	Summary         string
	Trend           string
	Recommendations []string
}

// EmptyHistoryInsight is returned when there are no purchases to analyze.
func EmptyHistoryInsight() *Insight {
	return &Insight{
		Summary:         "No purchase history available to analyze.",
		Trend:           "Start adding purchase records to see trends.",
		Recommendations: []string{"Add your first purchase record."},
	}
}

// InsightDigestEntry is the per-purchase payload sent to the AI collaborator.
type InsightDigestEntry struct {
	Date      string  `json:"date"`
	Price     float64 `json:"price"`
	VAT       float64 `json:"vat"`
	Fee       float64 `json:"fee"`
	TotalCost float64 `json:"totalCost"`
	Units     float64 `json:"units"`
	Meter     float64 `json:"meter"`
}
