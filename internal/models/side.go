package models

import (
	"fmt"
	"strings"

	"github.com/corentings/chess/v2"
)

// Perspective is the side from whose viewpoint scores and probabilities are computed.
type Perspective chess.Color

const (
	White = Perspective(chess.White)
	Black = Perspective(chess.Black)
)

// Perspectives lists the selectable sides in display order.
var Perspectives = []Perspective{White, Black}

func (p Perspective) String() string {
	switch p {
	case White:
		return "White"
	case Black:
		return "Black"
	default:
		return "Unknown"
	}
}

// ParsePerspective accepts "white"/"black" (any case) and "w"/"b".
// An empty string selects White, matching the dashboard default.
func ParsePerspective(s string) (Perspective, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "white", "w":
		return White, nil
	case "black", "b":
		return Black, nil
	default:
		return White, fmt.Errorf("unknown perspective %q", s)
	}
}

// Piece identifies a chess piece type in the movement visualizations.
type Piece chess.PieceType

const (
	King   = Piece(chess.King)
	Queen  = Piece(chess.Queen)
	Rook   = Piece(chess.Rook)
	Bishop = Piece(chess.Bishop)
	Knight = Piece(chess.Knight)
	Pawn   = Piece(chess.Pawn)
)

var pieceNames = map[Piece]string{
	King:   "King",
	Queen:  "Queen",
	Rook:   "Rook",
	Bishop: "Bishop",
	Knight: "Knight",
	Pawn:   "Pawn",
}

// Pieces is the known piece vocabulary, sorted by name as the selector shows it.
var Pieces = []Piece{Bishop, King, Knight, Pawn, Queen, Rook}

func (p Piece) String() string {
	if name, ok := pieceNames[p]; ok {
		return name
	}
	return "Unknown"
}

// ParsePiece resolves a piece by name, case-insensitively.
func ParsePiece(s string) (Piece, error) {
	for piece, name := range pieceNames {
		if strings.EqualFold(name, strings.TrimSpace(s)) {
			return piece, nil
		}
	}
	return 0, fmt.Errorf("unknown piece %q", s)
}
