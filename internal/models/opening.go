package models

// OpeningRecord is one row of the opening statistics table.
type OpeningRecord struct {
	Name               string  `json:"name"`
	EffectivenessWhite float64 `json:"effectiveness_white"`
	EffectivenessBlack float64 `json:"effectiveness_black"`
	Aggressivity       float64 `json:"aggressivity"`
	Volatility         float64 `json:"volatility"`
	Popularity         float64 `json:"popularity"`
}

// Effectiveness returns the effectiveness score seen from the given side.
func (o OpeningRecord) Effectiveness(p Perspective) float64 {
	if p == Black {
		return o.EffectivenessBlack
	}
	return o.EffectivenessWhite
}

// RankedOpening is an opening name paired with its score under one weight configuration.
type RankedOpening struct {
	Name  string  `json:"name"`
	Score float64 `json:"score"`
}

type OpeningFilter struct {
	NameContains string
	Limit        int
}

// OpeningDetail is everything the dashboard shows for the selected opening.
type OpeningDetail struct {
	Opening    OpeningRecord `json:"opening"`
	ECOCode    string        `json:"eco_code,omitempty"`
	Moves      string        `json:"moves,omitempty"`
	LichessURL string        `json:"lichess_url"`
	Heatmaps   []Image       `json:"heatmaps"`
}
