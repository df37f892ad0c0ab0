// Package debugger implements a minimal interactive inspector for a
// running VM: a register panel, a memory hex dump, a breakpoint list, and
// a status line, driven one step (or one breakpoint) at a time. It
// is a developer-facing tool built on top of vm.VM's public surface; it
// never touches privileged state (there is none) and never changes what a
// program computes.
//
// Grounded in the teacher's tview/tcell debugger TUI: the register and
// memory panels, and the address-keyed BreakpointManager, all have a
// direct RV32IM analogue and are kept. There is no CPSR flags register, no
// symbol table, and no source-level stepping without an assembler, so
// those panels and the expression-evaluated conditional breakpoints they
// enabled are dropped rather than faked.
package debugger

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/lookbusy1344/riscv32-emu/vm"
)

// Inspector is a register/memory/breakpoint viewer over a vm.VM, stepped
// one instruction (F11) or one breakpoint (F5) at a time by the user.
type Inspector struct {
	Machine     *vm.VM
	App         *tview.Application
	Breakpoints *BreakpointManager

	layout          *tview.Flex
	registerView    *tview.TextView
	memoryView      *tview.TextView
	breakpointsView *tview.TextView
	outputView      *tview.TextView

	memoryAddr uint32
}

// New returns an Inspector over machine, with its views built and key
// bindings installed but not yet running.
func New(machine *vm.VM) *Inspector {
	insp := &Inspector{
		Machine:     machine,
		App:         tview.NewApplication(),
		Breakpoints: NewBreakpointManager(),
	}
	insp.buildViews()
	insp.setupKeyBindings()
	insp.refresh()
	return insp
}

func (insp *Inspector) buildViews() {
	insp.registerView = tview.NewTextView().SetDynamicColors(true)
	insp.registerView.SetBorder(true).SetTitle(" Registers ")

	insp.memoryView = tview.NewTextView().SetDynamicColors(true).SetWrap(false)
	insp.memoryView.SetBorder(true).SetTitle(" Memory ")

	insp.breakpointsView = tview.NewTextView().SetDynamicColors(true)
	insp.breakpointsView.SetBorder(true).SetTitle(" Breakpoints ")

	insp.outputView = tview.NewTextView().SetDynamicColors(true)
	insp.outputView.SetBorder(true).SetTitle(" Status (F9 toggle bp, F5 continue, F11 step, Ctrl-C quit) ")

	top := tview.NewFlex().
		AddItem(insp.registerView, 0, 1, false).
		AddItem(insp.memoryView, 0, 2, false).
		AddItem(insp.breakpointsView, 0, 1, false)

	insp.layout = tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(top, 0, 4, false).
		AddItem(insp.outputView, 5, 0, false)
}

func (insp *Inspector) setupKeyBindings() {
	insp.App.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyF11:
			insp.step()
			return nil
		case tcell.KeyF9:
			insp.toggleBreakpoint()
			return nil
		case tcell.KeyF5:
			insp.cont()
			return nil
		case tcell.KeyCtrlC:
			insp.App.Stop()
			return nil
		}
		return event
	})
}

func (insp *Inspector) step() {
	result, err := insp.Machine.Step()
	switch {
	case err != nil:
		insp.writeStatus(fmt.Sprintf("[red]fault:[white] %v", err))
	case result == vm.HaltClean:
		insp.writeStatus("[yellow]halted cleanly[white]")
	default:
		insp.writeStatus("[green]stepped[white]")
	}
	insp.refresh()
}

// toggleBreakpoint adds a breakpoint at the current PC, or removes it if
// one is already set there.
func (insp *Inspector) toggleBreakpoint() {
	pc := insp.Machine.PC
	if bp := insp.Breakpoints.Toggle(pc); bp != nil {
		insp.writeStatus(fmt.Sprintf("[green]breakpoint %s set[white]", bp))
	} else {
		insp.writeStatus(fmt.Sprintf("[yellow]breakpoint at 0x%08X cleared[white]", pc))
	}
	insp.refresh()
}

// cont runs the machine until it halts, faults, or hits an enabled
// breakpoint. Breakpoints are checked before every step but the first, so
// a breakpoint at the starting PC does not stop the first step. The step
// count is bounded by Machine.MaxSteps, the same host-side safety valve
// VM.Run uses, so a breakpoint-free continue on a runaway program still
// returns control to the user.
func (insp *Inspector) cont() {
	first := true
	var steps uint64

	for {
		pc := insp.Machine.PC
		if !first {
			if bp, hit := insp.Breakpoints.Hit(pc); hit {
				insp.writeStatus(fmt.Sprintf("[yellow]breakpoint %s hit[white]", bp))
				break
			}
		}
		first = false

		result, err := insp.Machine.Step()
		if err != nil {
			insp.writeStatus(fmt.Sprintf("[red]fault:[white] %v", err))
			break
		}
		if result == vm.HaltClean {
			insp.writeStatus("[yellow]halted cleanly[white]")
			break
		}

		steps++
		if insp.Machine.MaxSteps > 0 && steps >= insp.Machine.MaxSteps {
			insp.writeStatus(fmt.Sprintf("[red]step limit of %d exceeded[white]", insp.Machine.MaxSteps))
			break
		}
	}
	insp.refresh()
}

func (insp *Inspector) writeStatus(text string) {
	insp.outputView.Clear()
	fmt.Fprintln(insp.outputView, text)
}

func (insp *Inspector) refresh() {
	insp.updateRegisterView()
	insp.updateMemoryView()
	insp.updateBreakpointsView()
	insp.App.Draw()
}

func (insp *Inspector) updateRegisterView() {
	snap := insp.Machine.Registers.Snapshot()

	var lines []string
	for row := 0; row < 8; row++ {
		var cols []string
		for col := 0; col < 4; col++ {
			reg := row*4 + col
			cols = append(cols, fmt.Sprintf("x%-2d: 0x%08X", reg, snap[reg]))
		}
		lines = append(lines, strings.Join(cols, "  "))
	}
	lines = append(lines, "")
	lines = append(lines, fmt.Sprintf("PC: 0x%08X   State: %v", insp.Machine.PC, insp.Machine.State))

	insp.registerView.SetText(strings.Join(lines, "\n"))
}

func (insp *Inspector) updateMemoryView() {
	addr := insp.memoryAddr
	if addr == 0 {
		addr = insp.Machine.PC
	}

	var lines []string
	for row := 0; row < 12; row++ {
		rowAddr := addr + uint32(row*16)

		var hexBytes []string
		var asciiBytes []byte
		for col := 0; col < 16; col++ {
			b, err := insp.Machine.Memory.Read(rowAddr+uint32(col), vm.Byte)
			if err != nil {
				hexBytes = append(hexBytes, "??")
				asciiBytes = append(asciiBytes, '.')
				continue
			}
			hexBytes = append(hexBytes, fmt.Sprintf("%02X", byte(b)))
			if b >= 32 && b < 127 {
				asciiBytes = append(asciiBytes, byte(b))
			} else {
				asciiBytes = append(asciiBytes, '.')
			}
		}

		lines = append(lines, fmt.Sprintf("0x%08X: %s  %s", rowAddr, strings.Join(hexBytes, " "), string(asciiBytes)))
	}

	insp.memoryView.SetText(strings.Join(lines, "\n"))
}

func (insp *Inspector) updateBreakpointsView() {
	breakpoints := insp.Breakpoints.All()
	if len(breakpoints) == 0 {
		insp.breakpointsView.SetText("(none)")
		return
	}

	var lines []string
	for _, bp := range breakpoints {
		marker := " "
		if bp.Address == insp.Machine.PC {
			marker = ">"
		}
		lines = append(lines, fmt.Sprintf("%s%s", marker, bp))
	}
	insp.breakpointsView.SetText(strings.Join(lines, "\n"))
}

// Run starts the inspector's event loop. It blocks until the user quits
// (Ctrl-C).
func (insp *Inspector) Run() error {
	return insp.App.SetRoot(insp.layout, true).Run()
}
