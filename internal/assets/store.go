// Package assets locates the pre-rendered charts shown by the dashboard.
// A missing chart is not an error: lookups report absence and callers skip it.
package assets

import (
	"fmt"
	"io/fs"
	"net/http"
	"net/url"
	"path"
	"sort"
	"strings"

	"github.com/vytor/chessdash/internal/models"
)

// Asset namespaces under the assets root.
const (
	HeatmapDir        = "heatmaps"
	PieceMovementDir  = "piece_movement"
	GamePhaseDir      = "game_phase_play_rate"
	OpeningHeatmapDir = "opening_heatmaps"
)

var servedDirs = []string{HeatmapDir, PieceMovementDir, GamePhaseDir, OpeningHeatmapDir}

// Store resolves image keys to files in an asset tree.
type Store struct {
	fsys      fs.FS
	urlPrefix string
}

// New creates a Store over fsys whose image URLs start with urlPrefix.
func New(fsys fs.FS, urlPrefix string) *Store {
	return &Store{fsys: fsys, urlPrefix: strings.TrimSuffix(urlPrefix, "/")}
}

// PieceMovement returns the movement diagram of piece played by perspective.
func (s *Store) PieceMovement(p models.Perspective, piece models.Piece) (models.Image, bool) {
	name := path.Join(PieceMovementDir, p.String()+piece.String()+".png")
	return s.image(name, fmt.Sprintf("Movement of %s", piece))
}

// PhasePlayRate returns the chart of how often piece moves in each game phase.
func (s *Store) PhasePlayRate(piece models.Piece) (models.Image, bool) {
	name := path.Join(GamePhaseDir, piece.String()+".png")
	return s.image(name, fmt.Sprintf("Play rate of %s by game phase", piece))
}

// PieceHeatmap returns where side's piece stands, seen from perspective.
func (s *Store) PieceHeatmap(side, p models.Perspective, piece models.Piece) (models.Image, bool) {
	name := path.Join(HeatmapDir, fmt.Sprintf("%s%s_%s_heatmap.png", side, piece, p))
	return s.image(name, fmt.Sprintf("%s %s (%s Perspective)", side, piece, p))
}

// PieceImages collects every chart available for piece and perspective.
func (s *Store) PieceImages(p models.Perspective, piece models.Piece) models.PieceImages {
	out := models.PieceImages{Piece: piece.String(), Perspective: p.String()}
	if img, ok := s.PieceMovement(p, piece); ok {
		out.Movement = &img
	}
	if img, ok := s.PhasePlayRate(piece); ok {
		out.PlayRate = &img
	}
	if img, ok := s.PieceHeatmap(models.White, p, piece); ok {
		out.WhiteHeatmap = &img
	}
	if img, ok := s.PieceHeatmap(models.Black, p, piece); ok {
		out.BlackHeatmap = &img
	}
	return out
}

// OpeningDir maps an opening name to its heatmap directory name.
func OpeningDir(name string) string {
	return strings.ReplaceAll(name, ":", "_")
}

// OpeningHeatmaps lists the heatmaps of an opening for perspective, sorted by file name.
func (s *Store) OpeningHeatmaps(name string, p models.Perspective) []models.Image {
	images := []models.Image{}
	dirName := OpeningDir(name)
	if dirName == "" || strings.Contains(dirName, "/") || dirName == "." || dirName == ".." {
		return images
	}

	dir := path.Join(OpeningHeatmapDir, dirName)
	entries, err := fs.ReadDir(s.fsys, dir)
	if err != nil {
		return images
	}

	suffix := "_" + p.String() + "_heatmap.png"
	var files []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), suffix) {
			files = append(files, e.Name())
		}
	}
	sort.Strings(files)

	for _, f := range files {
		caption := strings.ReplaceAll(strings.TrimSuffix(f, ".png"), "_", " ")
		images = append(images, models.Image{URL: s.url(path.Join(dir, f)), Caption: caption})
	}
	return images
}

func (s *Store) image(name, caption string) (models.Image, bool) {
	info, err := fs.Stat(s.fsys, name)
	if err != nil || info.IsDir() {
		return models.Image{}, false
	}
	return models.Image{URL: s.url(name), Caption: caption}, true
}

func (s *Store) url(name string) string {
	parts := strings.Split(name, "/")
	for i, p := range parts {
		parts[i] = url.PathEscape(p)
	}
	return s.urlPrefix + "/" + strings.Join(parts, "/")
}

// Handler serves PNG files from the asset namespaces. Request paths are
// relative to the store root; anything else is a 404.
func (s *Store) Handler() http.Handler {
	files := http.FileServer(http.FS(s.fsys))
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		name := strings.TrimPrefix(path.Clean("/"+r.URL.Path), "/")
		if !allowed(name) {
			http.NotFound(w, r)
			return
		}
		files.ServeHTTP(w, r)
	})
}

func allowed(name string) bool {
	if !strings.HasSuffix(strings.ToLower(name), ".png") {
		return false
	}
	top, _, ok := strings.Cut(name, "/")
	if !ok {
		return false
	}
	for _, d := range servedDirs {
		if top == d {
			return true
		}
	}
	return false
}
