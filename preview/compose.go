package preview

import (
	"fmt"
	"image"
	"image/png"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"tileforge/mapbuild"
)

// TileSource is one tileset's decoded sprite sheet, ready to be cut into
// per-gid sub-images the way the teacher's TilesetViewer cuts a CP437 sheet
// into glyph cells.
type TileSource struct {
	Image      *ebiten.Image
	TileWidth  int
	TileHeight int
}

// LoadTileSource decodes the PNG at path into an ebiten image sized for
// tileWidth x tileHeight cells.
func LoadTileSource(path string, tileWidth, tileHeight int) (*TileSource, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("preview: open tileset image %q: %w", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("preview: decode tileset image %q: %w", path, err)
	}

	return &TileSource{
		Image:      ebiten.NewImageFromImage(img),
		TileWidth:  tileWidth,
		TileHeight: tileHeight,
	}, nil
}

// SubImage cuts out the sprite for localIndex within this sheet.
func (s *TileSource) SubImage(localIndex int) *ebiten.Image {
	columns := s.Image.Bounds().Dx() / s.TileWidth
	col, row := LocalTile(localIndex, columns)
	rect := TileRect(col, row, s.TileWidth, s.TileHeight)
	return s.Image.SubImage(rect).(*ebiten.Image)
}

// Compose renders m onto a single flattened canvas, drawing every layer's
// non-zero gids bottom to top (lower layer index renders beneath higher,
// per spec §2). sources must contain a TileSource keyed by each tileset's
// Name that actually has placed cells; a gid whose tileset has no entry in
// sources is silently skipped rather than failing the whole render, since
// preview is explicitly outside the core contract (spec §4.F).
func Compose(m *mapbuild.ExportedMap, sources map[string]*TileSource) *ebiten.Image {
	canvas := ebiten.NewImage(m.Width*m.TileWidth, m.Height*m.TileHeight)

	ranges := make([]TilesetRange, len(m.Tilesets))
	for i, ts := range m.Tilesets {
		ranges[i] = TilesetRange{Name: ts.Name, FirstGID: ts.FirstGID, TileCount: ts.TileCount}
	}

	for _, layer := range m.Layers {
		for i, gid := range layer.Data {
			if gid == 0 {
				continue
			}
			tilesetRange, local, ok := ResolveTileset(ranges, gid)
			if !ok {
				continue
			}
			source, ok := sources[tilesetRange.Name]
			if !ok {
				continue
			}

			x, y := i%m.Width, i/m.Width
			px, py := ScreenPosition(x, y, m.TileWidth, m.TileHeight)

			op := &ebiten.DrawImageOptions{}
			op.GeoM.Translate(float64(px), float64(py))
			canvas.DrawImage(source.SubImage(local), op)
		}
	}

	return canvas
}

// SavePNG writes canvas to path as a PNG file. *ebiten.Image satisfies
// image.Image, so the standard encoder needs nothing ebiten-specific.
func SavePNG(canvas *ebiten.Image, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("preview: create %q: %w", path, err)
	}
	defer f.Close()

	return png.Encode(f, canvas)
}
