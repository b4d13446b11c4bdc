package main

import (
	"encoding/binary"
	"flag"
	"fmt"
	"log"
	"os"

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

func main() {
	log.SetFlags(0)

	image := flag.String("image", "", "path to a big-endian uint32 word stream")
	start := flag.Uint("start", 0, "initial program counter")
	load := flag.Uint("load", 0, "address the image is loaded at")
	steps := flag.Int("steps", 1, "number of steps to run")
	reverse := flag.Bool("reverse", false, "step backward instead of forward")
	verbose := flag.Bool("verbose", false, "log every event to stderr")
	flag.Parse()

	if *image == "" {
		fmt.Fprintf(os.Stderr, "usage: %s -image <path> [options]\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(2)
	}

	words, err := loadImage(*image)
	if err != nil {
		log.Fatalf("fail: %s.", err)
	}

	m := vm.New(words, uint32(*start), uint32(*load))
	if *reverse {
		m.Reverse(true)
	}
	if *verbose {
		events := make(chan vm.Event, 64)
		m.SetEvents(events)
		go func() {
			for ev := range events {
				log.Printf("pc=%d %s %s", ev.PC, ev.Kind, ev.Message)
			}
		}()
	}

	if !m.Step(*steps) {
		if m.Halted() && !m.IsErrorTrivial() {
			log.Fatalf("halted: %s", m.GetErrorName())
		}
		log.Printf("stopped early: %s", m.GetErrorName())
	}

	ctx := m.GetContext()
	fmt.Printf("pc=%d error=%s halted=%v\n", ctx.PC, ctx.Error, ctx.Halted)
	for i, r := range ctx.Regs {
		fmt.Printf("r%-2d = %d\n", i, r)
	}
}
