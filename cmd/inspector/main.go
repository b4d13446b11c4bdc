// Command inspector is a terminal application for watching a Metronome32
// program execute one step at a time, forward or backward.
package main

import (
	"encoding/binary"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/ocornoc/metronome32/isa"
	"github.com/ocornoc/metronome32/vm"
)

func loadImage(path string) ([]uint32, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read image: %w", err)
	}
	if len(data)%4 != 0 {
		return nil, fmt.Errorf("image size %d is not a multiple of 4 bytes", len(data))
	}
	words := make([]uint32, len(data)/4)
	for i := range words {
		words[i] = binary.BigEndian.Uint32(data[i*4:])
	}
	return words, nil
}

// Inspector owns the VM and the tview widgets that mirror its state.
type Inspector struct {
	app *tview.Application
	m   *vm.VM

	regsView  *tview.Table
	stateView *tview.TextView
	memView   *tview.TextView
	logView   *tview.TextView
}

func NewInspector(m *vm.VM) *Inspector {
	app := tview.NewApplication()

	regsView := tview.NewTable().SetBorders(false)
	regsView.SetTitle("Registers").SetBorder(true)

	stateView := tview.NewTextView().SetDynamicColors(true)
	stateView.SetTitle("State").SetBorder(true)

	memView := tview.NewTextView().SetDynamicColors(true)
	memView.SetTitle("Memory").SetBorder(true)

	logView := tview.NewTextView().SetDynamicColors(true)
	logView.SetTitle("Events").SetBorder(true)
	logView.ScrollToEnd()

	rightPane := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(stateView, 0, 1, false).
		AddItem(memView, 0, 2, false).
		AddItem(logView, 0, 2, false)

	flex := tview.NewFlex().
		AddItem(regsView, 0, 1, true).
		AddItem(rightPane, 0, 2, false)

	app.SetRoot(flex, true)

	return &Inspector{app: app, m: m, regsView: regsView, stateView: stateView, memView: memView, logView: logView}
}

func (ins *Inspector) Init() {
	events := make(chan vm.Event, 64)
	ins.m.SetEvents(events)
	go func() {
		for ev := range events {
			ins.app.QueueUpdateDraw(func() {
				fmt.Fprintf(ins.logView, "pc=%d %s %s\n", ev.PC, ev.Kind, ev.Message)
			})
		}
	}()

	ins.app.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Rune() {
		case 'n':
			ins.m.Reverse(false)
			ins.m.Step()
			ins.Draw()
			return nil
		case 'p':
			ins.m.Reverse(true)
			ins.m.Step()
			ins.Draw()
			return nil
		case 'r':
			ins.m.Reverse()
			ins.Draw()
			return nil
		case 'q':
			ins.app.Stop()
			return nil
		}
		return event
	})
}

func (ins *Inspector) Draw() {
	ctx := ins.m.GetContext()

	ins.regsView.Clear()
	for i, r := range ctx.Regs {
		ins.regsView.SetCell(i, 0, tview.NewTableCell(fmt.Sprintf("r%d", i)).SetAlign(tview.AlignRight))
		ins.regsView.SetCell(i, 1, tview.NewTableCell(fmt.Sprintf("%d", r)).SetAlign(tview.AlignRight))
	}

	ins.stateView.Clear()
	fmt.Fprintf(ins.stateView, "pc: %d\n", ctx.PC)
	fmt.Fprintf(ins.stateView, "reversing: %v\n", ctx.Reversing)
	fmt.Fprintf(ins.stateView, "halted: %v\n", ctx.Halted)
	fmt.Fprintf(ins.stateView, "error: %s\n", ctx.Error)
	fmt.Fprintf(ins.stateView, "dp stack: %v\n", ctx.DP)
	fmt.Fprintf(ins.stateView, "pc stack: %v\n", ctx.PCS)

	ins.memView.Clear()
	const window = 8
	start := ctx.PC
	if start > window/2 {
		start -= window / 2
	} else {
		start = 0
	}
	for addr := start; addr < start+window; addr++ {
		marker := " "
		if addr == ctx.PC {
			marker = ">"
		}
		word := ctx.Mem.Read(addr)
		fmt.Fprintf(ins.memView, "%s%08x: %08x  %s\n", marker, addr, word, isa.Disassemble(isa.Word(word)))
	}
}

func (ins *Inspector) Run() error {
	ins.Draw()
	return ins.app.Run()
}

func main() {
	log.SetFlags(0)

	image := flag.String("image", "", "path to a big-endian uint32 word stream")
	start := flag.Uint("start", 0, "initial program counter")
	load := flag.Uint("load", 0, "address the image is loaded at")
	flag.Parse()

	if *image == "" {
		fmt.Fprintf(os.Stderr, "usage: %s -image <path> [options]\n", os.Args[0])
		fmt.Fprintln(os.Stderr, "keys: n=step forward  p=step backward  r=toggle direction  q=quit")
		flag.PrintDefaults()
		os.Exit(2)
	}

	words, err := loadImage(*image)
	if err != nil {
		log.Fatalf("fail: %s.", err)
	}

	m := vm.New(words, uint32(*start), uint32(*load))
	ins := NewInspector(m)
	ins.Init()
	if err := ins.Run(); err != nil {
		log.Fatalf("fail: %s.", err)
	}
}
