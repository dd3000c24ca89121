// Command srcdemo converts a 120 Hz tone sampled at 3500 Hz to 1200 Hz
// with each algorithm and lets you page through the results.
//
// Keys: 0/1/2 choose linear, lagrange or FIR; j/k or the arrow keys page
// through the samples; q quits.
package main

import (
	"flag"
	"log"

	tea "github.com/charmbracelet/bubbletea"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("srcdemo: ")

	inRate := flag.Int("fi", 3500, "input sample rate in Hz")
	outRate := flag.Int("fo", 1200, "output sample rate in Hz")
	freq := flag.Float64("freq", 120, "tone frequency in Hz")
	amp := flag.Float64("amp", 1000, "tone amplitude")
	flag.Parse()

	m, err := newModel(demoConfig{
		inRate:  *inRate,
		outRate: *outRate,
		freq:    *freq,
		amp:     *amp,
	})
	if err != nil {
		log.Fatal(err)
	}

	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		log.Fatal(err)
	}
}
