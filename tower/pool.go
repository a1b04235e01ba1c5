package tower

import "fmt"

// Pool lazily allocates block slots and recycles them across restarts
// Storage only grows; DisableAll hides blocks instead of freeing them
type Pool struct {
	blocks []*Block
	height float64
}

// NewPool creates an empty pool for blocks of the given height
func NewPool(height float64) *Pool {
	return &Pool{
		blocks: make([]*Block, 0, 32),
		height: height,
	}
}

// Get returns the block at index, creating and positioning any missing slots up to it
func (p *Pool) Get(index int) *Block {
	if index < 0 {
		panic(fmt.Sprintf("tower pool: negative block index %d", index))
	}
	for len(p.blocks) <= index {
		i := len(p.blocks)
		p.blocks = append(p.blocks, &Block{
			index:    i,
			position: PositionForIndex(i, p.height),
		})
	}
	return p.blocks[index]
}

// DisableAll deactivates every block without discarding it
func (p *Pool) DisableAll() {
	for _, b := range p.blocks {
		b.Active = false
	}
}

// Len returns the number of allocated slots
func (p *Pool) Len() int {
	return len(p.blocks)
}

// ActiveCount returns the number of visible blocks
func (p *Pool) ActiveCount() int {
	n := 0
	for _, b := range p.blocks {
		if b.Active {
			n++
		}
	}
	return n
}

// Snapshot copies every allocated block in index order
func (p *Pool) Snapshot() []BlockView {
	out := make([]BlockView, len(p.blocks))
	for i, b := range p.blocks {
		out[i] = b.view()
	}
	return out
}
