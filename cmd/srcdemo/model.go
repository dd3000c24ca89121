package main

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/cwbudde/algo-srconv/dsp/resample"
	"github.com/cwbudde/algo-srconv/dsp/signal"
	"github.com/cwbudde/algo-srconv/measure/tone"
)

const defaultPageSize = 20

type demoConfig struct {
	inRate, outRate int
	freq, amp       float64
}

// conversion holds one algorithm's output as int16 and float64.
type conversion struct {
	method   resample.Method
	ints     []int16
	floats   []float64
	analysis tone.Result
	delay    float64
}

type model struct {
	cfg         demoConfig
	inputLen    int
	conversions []conversion
	selected    int
	offset      int
	pageSize    int
}

func newModel(cfg demoConfig) (model, error) {
	x, err := signal.NewGenerator(float64(cfg.inRate)).Sine(cfg.freq, cfg.amp, cfg.inRate)
	if err != nil {
		return model{}, err
	}

	m := model{cfg: cfg, inputLen: len(x), pageSize: defaultPageSize}

	for _, method := range []resample.Method{resample.MethodLinear, resample.MethodLagrange, resample.MethodFIR} {
		rc := resample.DefaultConfig(method, cfg.inRate, cfg.outRate)

		c, err := resample.New[int16](rc)
		if err != nil {
			return model{}, fmt.Errorf("%s: %w", method, err)
		}

		ints := c.Process(signal.Quantize[int16](x))

		floats, err := resample.Resample(x, rc)
		if err != nil {
			return model{}, fmt.Errorf("%s: %w", method, err)
		}

		m.conversions = append(m.conversions, conversion{
			method:   method,
			ints:     ints,
			floats:   floats,
			analysis: tone.Analyze(signal.Float(ints), float64(cfg.outRate)),
			delay:    c.Delay(),
		})
	}

	return m, nil
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		// Header, analysis and help take ten lines.
		m.pageSize = max(1, msg.Height-10)
		m.offset = m.clamp(m.offset)
	}

	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "0", "1", "2":
		m.selected = int(msg.String()[0] - '0')
		m.offset = m.clamp(m.offset)
	case "j", "down", "pgdown", " ":
		m.offset = m.clamp(m.offset + m.pageSize)
	case "k", "up", "pgup":
		m.offset = m.clamp(m.offset - m.pageSize)
	case "g", "home":
		m.offset = 0
	case "G", "end":
		m.offset = m.clamp(len(m.current().ints))
	}

	return m, nil
}

func (m model) current() conversion {
	return m.conversions[m.selected]
}

// clamp keeps offset on a page start inside the current output.
func (m model) clamp(offset int) int {
	n := len(m.current().ints)
	if n == 0 {
		return 0
	}

	offset = min(offset, n-1)
	offset -= offset % m.pageSize

	return max(0, offset)
}

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	selectedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("86"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

func (m model) View() string {
	c := m.current()

	var b strings.Builder

	b.WriteString(titleStyle.Render(fmt.Sprintf("Sample rate conversion: %d Hz -> %d Hz, %.0f Hz tone, amplitude %.0f",
		m.cfg.inRate, m.cfg.outRate, m.cfg.freq, m.cfg.amp)))
	b.WriteString("\n")

	for i, conv := range m.conversions {
		if i == m.selected {
			b.WriteString(selectedStyle.Render(fmt.Sprintf("> %d %-9s", i, conv.method)))
			continue
		}
		fmt.Fprintf(&b, "  %d %-9s", i, conv.method)
	}

	fmt.Fprintf(&b, "\n\nin: %d samples  out: %d samples  delay: %.1f input samples\n",
		m.inputLen, len(c.ints), c.delay)
	fmt.Fprintf(&b, "%s\n\n", c.analysis)

	end := min(m.offset+m.pageSize, len(c.ints))
	for i := m.offset; i < end; i++ {
		fmt.Fprintf(&b, "%5d  int: %6d float: %10.3f\n", i, c.ints[i], c.floats[i])
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render(fmt.Sprintf("0/1/2: algorithm  j/k: page  g/G: first/last  q: quit  [%d-%d of %d]",
		m.offset, max(m.offset, end-1), len(c.ints))))
	b.WriteString("\n")

	return b.String()
}
