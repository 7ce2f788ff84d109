package models

// Image is a pre-rendered chart the dashboard can display.
type Image struct {
	URL     string `json:"url"`
	Caption string `json:"caption"`
}

// PieceImages groups the visualizations for one piece and perspective.
// Absent images are left nil.
type PieceImages struct {
	Piece        string `json:"piece"`
	Perspective  string `json:"perspective"`
	Movement     *Image `json:"movement,omitempty"`
	PlayRate     *Image `json:"play_rate,omitempty"`
	WhiteHeatmap *Image `json:"white_heatmap,omitempty"`
	BlackHeatmap *Image `json:"black_heatmap,omitempty"`
}
