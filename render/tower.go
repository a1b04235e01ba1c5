package render

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/stacker/parameter"
	"github.com/lixenwraith/stacker/tower"
	"github.com/lixenwraith/stacker/vmath"
)

// Frame is everything the renderer needs for one draw, copied on the game goroutine
type Frame struct {
	Blocks  []tower.BlockView
	State   tower.Snapshot
	Camera  vmath.Vec3F
	MaxSize float64
	Height  float64
	Paused  bool
}

var (
	styleDefault = tcell.StyleDefault
	styleStatus  = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorSilver)
	styleFailed  = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorMaroon)
)

// VisualStyle maps a block visual tag to its cell style
func VisualStyle(v tower.Visual) tcell.Style {
	switch v {
	case tower.VisualError:
		return tcell.StyleDefault.Background(tcell.ColorRed)
	case tower.VisualGhost:
		return tcell.StyleDefault.Background(tcell.ColorGray)
	default:
		return tcell.StyleDefault.Background(tcell.ColorWhite)
	}
}

// TowerRenderer draws the tower as horizontal bars, one row per block, centered on the camera
type TowerRenderer struct {
	screen tcell.Screen
}

func NewTowerRenderer(screen tcell.Screen) *TowerRenderer {
	return &TowerRenderer{screen: screen}
}

// Draw clears the screen, draws f and shows it
func (r *TowerRenderer) Draw(f Frame) {
	s := r.screen
	s.Clear()
	w, h := s.Size()
	if w <= 0 || h <= parameter.TopMargin {
		s.Show()
		return
	}

	r.drawBlocks(f, w, h)
	r.drawStatus(f, w)
	s.Show()
}

// zoom grows as the camera pulls back along -Z
func zoom(cam vmath.Vec3F) float64 {
	return math.Max(1, (parameter.CameraBaseDistance-cam.Z)/parameter.CameraBaseDistance)
}

// BlockRow maps a block center to a screen row; rows grow downwards, the camera sits mid-area
func BlockRow(blockY, cameraY, height, zoomFactor float64, screenHeight int) int {
	area := screenHeight - parameter.TopMargin
	center := parameter.TopMargin + area/2
	stride := 2 * height * zoomFactor
	return center - int(math.Round((blockY-cameraY)/stride))
}

// BlockColumns maps a footprint to a bar width, at least one cell for any visible block
func BlockColumns(size, maxSize, zoomFactor float64) int {
	if maxSize <= 0 || size <= 0 {
		return 0
	}
	cols := int(math.Round(size / maxSize * parameter.MaxBlockColumns / zoomFactor))
	return max(cols, 1)
}

func (r *TowerRenderer) drawBlocks(f Frame, w, h int) {
	z := zoom(f.Camera)
	for _, b := range f.Blocks {
		if !b.Active {
			continue
		}
		row := BlockRow(b.Position.Y, f.Camera.Y, f.Height, z, h)
		if row < parameter.TopMargin || row >= h {
			continue
		}
		cols := min(BlockColumns(b.Scale.X, f.MaxSize, z), w)
		left := (w - cols) / 2
		style := VisualStyle(b.Visual)
		for x := left; x < left+cols; x++ {
			r.screen.SetContent(x, row, ' ', nil, style)
		}
	}
}

func (r *TowerRenderer) drawStatus(f Frame, w int) {
	label, style := parameter.StatusTextRunning, styleStatus
	if !f.State.Running {
		label, style = parameter.StatusTextFailed, styleFailed
	}
	text := fmt.Sprintf("%s height %d  perfect %d ", label, f.State.Last+1, len(f.State.Perfect))
	if f.Paused {
		text += parameter.StatusTextPaused
	}
	x := drawText(r.screen, 0, 0, text, style)
	for ; x < w; x++ {
		r.screen.SetContent(x, 0, ' ', nil, styleDefault)
	}
}

func drawText(s tcell.Screen, x, y int, text string, style tcell.Style) int {
	for _, ch := range text {
		s.SetContent(x, y, ch, nil, style)
		x++
	}
	return x
}
