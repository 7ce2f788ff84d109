package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (s *Server) handlePieces(w http.ResponseWriter, r *http.Request) {
	pieces := s.PieceService.Pieces()
	names := make([]string, 0, len(pieces))
	for _, p := range pieces {
		names = append(names, p.String())
	}
	writeJSON(w, r, http.StatusOK, map[string][]string{"pieces": names})
}

func (s *Server) handlePieceImages(w http.ResponseWriter, r *http.Request) {
	piece, err := parsePiece(chi.URLParam(r, "piece"))
	if err != nil {
		handleError(w, r, err)
		return
	}
	perspective, err := parsePerspective(r.URL.Query())
	if err != nil {
		handleError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, s.PieceService.Images(perspective, piece))
}
