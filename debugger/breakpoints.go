package debugger

import (
	"fmt"
	"sync"
)

// Breakpoint is a PC address the inspector stops execution at. Unlike the
// teacher's ARM debugger, there is no conditional-expression field: with no
// assembler or symbol table in this repository, an expression evaluator has
// nothing to parse against, so a breakpoint here is a bare address.
type Breakpoint struct {
	ID       int
	Address  uint32
	Enabled  bool
	HitCount int
}

// BreakpointManager tracks breakpoints keyed by address, grounded on the
// teacher's own address-keyed BreakpointManager (debugger/breakpoints.go).
type BreakpointManager struct {
	mu          sync.RWMutex
	breakpoints map[uint32]*Breakpoint
	nextID      int
}

// NewBreakpointManager returns an empty BreakpointManager.
func NewBreakpointManager() *BreakpointManager {
	return &BreakpointManager{
		breakpoints: make(map[uint32]*Breakpoint),
		nextID:      1,
	}
}

// Toggle adds a breakpoint at address if none exists there, or removes it if
// one already does. It returns the resulting breakpoint, or nil if the call
// removed one.
func (bm *BreakpointManager) Toggle(address uint32) *Breakpoint {
	bm.mu.Lock()
	defer bm.mu.Unlock()

	if _, exists := bm.breakpoints[address]; exists {
		delete(bm.breakpoints, address)
		return nil
	}

	bp := &Breakpoint{ID: bm.nextID, Address: address, Enabled: true}
	bm.breakpoints[address] = bp
	bm.nextID++
	return bp
}

// Get returns the breakpoint at address, or nil if none is set.
func (bm *BreakpointManager) Get(address uint32) *Breakpoint {
	bm.mu.RLock()
	defer bm.mu.RUnlock()
	return bm.breakpoints[address]
}

// Hit increments the hit counter for the breakpoint at address, if one
// exists and is enabled, and reports whether execution should stop there.
func (bm *BreakpointManager) Hit(address uint32) (*Breakpoint, bool) {
	bm.mu.Lock()
	defer bm.mu.Unlock()

	bp, exists := bm.breakpoints[address]
	if !exists || !bp.Enabled {
		return nil, false
	}
	bp.HitCount++
	return bp, true
}

// All returns every breakpoint, in an unspecified order.
func (bm *BreakpointManager) All() []*Breakpoint {
	bm.mu.RLock()
	defer bm.mu.RUnlock()

	result := make([]*Breakpoint, 0, len(bm.breakpoints))
	for _, bp := range bm.breakpoints {
		result = append(result, bp)
	}
	return result
}

// String renders a breakpoint for the inspector's breakpoints panel.
func (bp *Breakpoint) String() string {
	state := "enabled"
	if !bp.Enabled {
		state = "disabled"
	}
	return fmt.Sprintf("#%d 0x%08X (%s, %d hits)", bp.ID, bp.Address, state, bp.HitCount)
}
