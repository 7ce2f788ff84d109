package services

import (
	"github.com/vytor/chessdash/internal/models"
)

// PieceService exposes the piece visualizations
type PieceService interface {
	Pieces() []models.Piece
	Images(perspective models.Perspective, piece models.Piece) models.PieceImages
}

// PieceImageSource finds the charts of one piece.
type PieceImageSource interface {
	PieceImages(perspective models.Perspective, piece models.Piece) models.PieceImages
}

type pieceService struct {
	images PieceImageSource
}

// NewPieceService creates a new PieceService
func NewPieceService(images PieceImageSource) PieceService {
	return &pieceService{images: images}
}

func (s *pieceService) Pieces() []models.Piece {
	out := make([]models.Piece, len(models.Pieces))
	copy(out, models.Pieces)
	return out
}

func (s *pieceService) Images(perspective models.Perspective, piece models.Piece) models.PieceImages {
	return s.images.PieceImages(perspective, piece)
}
