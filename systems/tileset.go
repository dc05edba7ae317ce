package systems

import (
	"image"
	"image/color"
	_ "image/png" // atlas format
	"io/fs"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rotisserie/eris"

	"ebiten-calendar/tilemap"
)

// Tileset handles loading and drawing a texture atlas of square tiles.
// Tiles are numbered row-major from the top-left corner.
type Tileset struct {
	Name     string
	Image    *ebiten.Image
	TileSize int
	Columns  int // Number of tiles horizontally in the atlas
	Rows     int // Number of tiles vertically in the atlas
}

// NewTileset loads a tileset from a file on disk
func NewTileset(filename string, tileSize int) (*Tileset, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, eris.Wrapf(err, "open tileset %s", filename)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, eris.Wrapf(err, "decode tileset %s", filename)
	}
	return newTilesetFromImage(filename, img, tileSize)
}

// NewTilesetFromFS loads a tileset from a file system such as an embed.FS
func NewTilesetFromFS(fsys fs.FS, name string, tileSize int) (*Tileset, error) {
	img, err := DecodeAtlas(fsys, name)
	if err != nil {
		return nil, err
	}
	return newTilesetFromImage(name, img, tileSize)
}

// DecodeAtlas reads and decodes an atlas image without uploading it.
func DecodeAtlas(fsys fs.FS, name string) (image.Image, error) {
	file, err := fsys.Open(name)
	if err != nil {
		return nil, eris.Wrapf(err, "open tileset %s", name)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, eris.Wrapf(err, "decode tileset %s", name)
	}
	return img, nil
}

func newTilesetFromImage(name string, img image.Image, tileSize int) (*Tileset, error) {
	cols, rows, err := atlasGrid(img.Bounds(), tileSize)
	if err != nil {
		return nil, eris.Wrapf(err, "tileset %s", name)
	}
	return &Tileset{
		Name:     name,
		Image:    ebiten.NewImageFromImage(img),
		TileSize: tileSize,
		Columns:  cols,
		Rows:     rows,
	}, nil
}

// atlasGrid returns how many whole tiles fit in the atlas bounds.
func atlasGrid(bounds image.Rectangle, tileSize int) (cols, rows int, err error) {
	if tileSize <= 0 {
		return 0, 0, eris.Errorf("tile size must be positive, got %d", tileSize)
	}
	cols = bounds.Dx() / tileSize
	rows = bounds.Dy() / tileSize
	if cols == 0 || rows == 0 {
		return 0, 0, eris.Errorf("atlas %dx%d is smaller than one %dpx tile", bounds.Dx(), bounds.Dy(), tileSize)
	}
	return cols, rows, nil
}

// atlasRegion returns the source rectangle of tile index in a cols x rows atlas.
func atlasRegion(index tilemap.TextureIndex, cols, rows, tileSize int) (image.Rectangle, bool) {
	if int(index) >= cols*rows {
		return image.Rectangle{}, false
	}
	sx := int(index) % cols * tileSize
	sy := int(index) / cols * tileSize
	return image.Rect(sx, sy, sx+tileSize, sy+tileSize), true
}

// Count returns the number of tiles in the atlas
func (t *Tileset) Count() int {
	return t.Columns * t.Rows
}

// Region returns the source rectangle for a texture index
func (t *Tileset) Region(index tilemap.TextureIndex) (image.Rectangle, bool) {
	return atlasRegion(index, t.Columns, t.Rows, t.TileSize)
}

// DrawTile draws a tile centred on (x, y) in screen pixels at the given
// scale, tinted by clr. Unknown indices are skipped and reported as false.
func (t *Tileset) DrawTile(target *ebiten.Image, index tilemap.TextureIndex, x, y, scale float64, clr color.Color) bool {
	rect, ok := t.Region(index)
	if !ok {
		return false
	}

	op := &ebiten.DrawImageOptions{}
	half := float64(t.TileSize) / 2
	op.GeoM.Translate(-half, -half)
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	if clr != nil {
		op.ColorScale.ScaleWithColor(clr)
	}

	target.DrawImage(t.Image.SubImage(rect).(*ebiten.Image), op)
	return true
}
