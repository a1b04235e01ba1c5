package tower

import "github.com/lixenwraith/stacker/vmath"

// Visual tags the material a renderer should use for a block
type Visual uint8

const (
	VisualNeutral Visual = iota // settled block
	VisualError                 // failed placement, shown until deactivated
	VisualGhost                 // block still growing under the player's hold
)

func (v Visual) String() string {
	switch v {
	case VisualNeutral:
		return "neutral"
	case VisualError:
		return "error"
	case VisualGhost:
		return "ghost"
	default:
		return "unknown"
	}
}

// Block is one slot of the tower
// Identity is the index; position is fixed at creation, scale and flags change during play
type Block struct {
	index    int
	position vmath.Vec3F

	Scale  vmath.Vec3F
	Active bool
	Visual Visual
}

// BlockView is a read-only copy of a block for render collaborators
type BlockView struct {
	Index    int
	Position vmath.Vec3F
	Scale    vmath.Vec3F
	Active   bool
	Visual   Visual
}

func (b *Block) Index() int {
	return b.index
}

func (b *Block) Position() vmath.Vec3F {
	return b.position
}

// Size is the footprint along X, Z always matches it
func (b *Block) Size() float64 {
	return b.Scale.X
}

// SetSize snaps the footprint to size keeping the given height
func (b *Block) SetSize(size, height float64) {
	b.Scale = FootprintForSize(size, height)
}

// grow adds delta to both footprint axes, height untouched
func (b *Block) grow(delta float64) {
	b.Scale = vmath.V3FAdd(b.Scale, vmath.V3FScale(vmath.Horizontal, delta))
}

func (b *Block) view() BlockView {
	return BlockView{
		Index:    b.index,
		Position: b.position,
		Scale:    b.Scale,
		Active:   b.Active,
		Visual:   b.Visual,
	}
}
