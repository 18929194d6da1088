// Package ui provides the interactive HJD calculator using Bubble Tea.
package ui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	sexa "github.com/soniakeys/sexagesimal"
	"github.com/soniakeys/unit"

	"github.com/litescript/ls-hjd/internal/astro"
	"github.com/litescript/ls-hjd/internal/calendar"
	"github.com/litescript/ls-hjd/internal/coords"
	"github.com/litescript/ls-hjd/internal/hjd"
	"github.com/litescript/ls-hjd/internal/version"
)

// Field identifies an input field.
type Field int

const (
	FieldJD Field = iota
	FieldRA
	FieldDec
	fieldCount
)

func (f Field) label() string {
	switch f {
	case FieldJD:
		return "JD"
	case FieldRA:
		return "RA"
	default:
		return "Dec"
	}
}

// Result is the outcome of one conversion.
type Result struct {
	HJD        float64
	Correction float64 // days
	SunRA      float64 // degrees
	SunDec     float64 // degrees
	Radius     float64 // AU
	Elongation float64 // degrees between the Sun and the target
	UTC        time.Time
	Err        error
}

// Model is the root Bubble Tea model.
type Model struct {
	inputs [fieldCount]string
	focus  Field
	epoch  coords.Epoch

	width  int
	height int

	result Result
}

// New creates a calculator model with optional initial values.
func New(epoch coords.Epoch, jd, ra, dec string) Model {
	if epoch != coords.B1950 {
		epoch = coords.J2000
	}
	m := Model{epoch: epoch}
	m.inputs[FieldJD] = jd
	m.inputs[FieldRA] = ra
	m.inputs[FieldDec] = dec
	m.recompute()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "tab", "down", "enter":
			m.focus = (m.focus + 1) % fieldCount
		case "shift+tab", "up":
			m.focus = (m.focus + fieldCount - 1) % fieldCount
		case "e":
			m = m.toggleEpoch()
		case "backspace":
			in := []rune(m.inputs[m.focus])
			if len(in) > 0 {
				m.inputs[m.focus] = string(in[:len(in)-1])
				m.recompute()
			}
		case "ctrl+u":
			m.inputs[m.focus] = ""
			m.recompute()
		case " ":
			m.inputs[m.focus] += " "
			m.recompute()
		default:
			if msg.Type == tea.KeyRunes {
				m.inputs[m.focus] += string(msg.Runes)
				m.recompute()
			}
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

func (m Model) toggleEpoch() Model {
	if m.epoch == coords.J2000 {
		m.epoch = coords.B1950
	} else {
		m.epoch = coords.J2000
	}
	m.recompute()
	return m
}

// recompute converts the current inputs.
func (m *Model) recompute() {
	m.result = Compute(m.epoch, m.inputs[FieldJD], m.inputs[FieldRA], m.inputs[FieldDec])
}

// Compute parses the calculator inputs and converts them.
func Compute(epoch coords.Epoch, jdText, raText, decText string) Result {
	conv, err := hjd.ForEpoch(epoch)
	if err != nil {
		return Result{Err: err}
	}
	jd, err := calendar.ParseJD(jdText)
	if err != nil {
		return Result{Err: fmt.Errorf("JD: %w", err)}
	}
	ra, err := coords.ParseRA(epoch, raText)
	if err != nil {
		return Result{Err: err}
	}
	dec, err := coords.ParseDec(epoch, decText)
	if err != nil {
		return Result{Err: err}
	}

	r := Result{
		Correction: conv.Correction(jd, ra, dec),
		UTC:        calendar.TimeFromJD(jd),
	}
	r.HJD = jd + r.Correction
	if sun, ok := hjd.SunAt(conv, jd); ok {
		r.SunRA = sun.RA.Deg()
		r.SunDec = sun.Dec.Deg()
		r.Radius = sun.Radius
		r.Elongation = astro.Elongation(unit.Angle(sun.RA), sun.Dec, ra.Angle(), dec.Angle()).Deg()
	}
	return r
}

// Epoch returns the selected coordinate epoch.
func (m Model) Epoch() coords.Epoch { return m.epoch }

// Focus returns the focused field.
func (m Model) Focus() Field { return m.focus }

// Input returns the text of field f.
func (m Model) Input(f Field) string { return m.inputs[f] }

// Result returns the latest conversion result.
func (m Model) Result() Result { return m.result }

var (
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("60"))
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#9D4EDD")).Bold(true)
	focusStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#D946EF")).Bold(true)
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#E84A27"))
	accentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#7B2CBF"))
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#EC4899")).Bold(true)
)

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder
	b.WriteString(renderTitle())
	b.WriteString(dimStyle.Render(fmt.Sprintf("  v%s · Heliocentric Julian Date", version.Version)))
	b.WriteString("\n\n")

	for f := Field(0); f < fieldCount; f++ {
		label := fmt.Sprintf("%-4s", f.label())
		cursor := "  "
		value := m.inputs[f]
		if f == m.focus {
			cursor = focusStyle.Render("▶ ")
			b.WriteString("  " + cursor + focusStyle.Render(label) + " " + value + accentStyle.Render("█") + "\n")
			continue
		}
		b.WriteString("  " + cursor + labelStyle.Render(label) + " " + value + "\n")
	}

	b.WriteString("\n  " + labelStyle.Render("Epoch") + " " + m.renderEpochs() + "\n\n")
	b.WriteString(m.renderResult())
	b.WriteString("\n\n")
	b.WriteString(dimStyle.Render("  tab/↑↓: field | e: epoch | ctrl+u: clear | q: quit"))
	b.WriteString("\n")
	return b.String()
}

func (m Model) renderEpochs() string {
	var parts []string
	for _, e := range []coords.Epoch{coords.J2000, coords.B1950} {
		if e == m.epoch {
			parts = append(parts, focusStyle.Render("["+e.String()+"]"))
		} else {
			parts = append(parts, dimStyle.Render(" "+e.String()+" "))
		}
	}
	return strings.Join(parts, " ")
}

func (m Model) renderResult() string {
	r := m.result
	if r.Err != nil {
		return "  " + errorStyle.Render("ERROR: "+r.Err.Error())
	}

	var b strings.Builder
	fmt.Fprintf(&b, "  %s %s\n", labelStyle.Render("UTC       "), r.UTC.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(&b, "  %s %s\n", labelStyle.Render("HJD       "), valueStyle.Render(strconv.FormatFloat(r.HJD, 'f', 8, 64)))
	fmt.Fprintf(&b, "  %s %+.8f d (%s)\n", labelStyle.Render("Correction"), r.Correction,
		astro.FormatLightTime(r.Correction*86400))
	sun := coords.RAFromDegrees(m.epoch, r.SunRA)
	sunDec := coords.DecFromDegrees(m.epoch, r.SunDec)
	fmt.Fprintf(&b, "  %s %.2s %.1s\n", labelStyle.Render("Sun       "),
		sexa.FmtRA(sun.RA()), sexa.FmtAngle(sunDec.Angle()))
	fmt.Fprintf(&b, "  %s %.6f AU (light time %s)\n", labelStyle.Render("R         "), r.Radius,
		astro.FormatLightTime(astro.LightTimeSeconds(r.Radius)))
	fmt.Fprintf(&b, "  %s %.2f°", labelStyle.Render("Elongation"), r.Elongation)
	return b.String()
}

func renderTitle() string {
	title := "  LS-HJD"
	runes := []rune(title)

	var b strings.Builder
	b.WriteString("\n")
	for col, r := range runes {
		style := lipgloss.NewStyle().Foreground(lipgloss.Color(gradientColor(col, 0, len(runes), 1))).Bold(true)
		b.WriteString(style.Render(string(r)))
	}
	b.WriteString("\n")
	return b.String()
}

// gradientColor returns a hex color for a position in a gradient running
// blue -> purple -> magenta -> pink, darker towards the bottom.
func gradientColor(col, row, width, height int) string {
	xRatio := float64(col) / float64(width)
	yRatio := float64(row) / float64(height)

	var r, g, b float64
	if xRatio < 0.33 {
		t := xRatio / 0.33
		r = 59 + t*(139-59)
		g = 130 + t*(92-130)
		b = 246
	} else if xRatio < 0.66 {
		t := (xRatio - 0.33) / 0.33
		r = 139 + t*(217-139)
		g = 92 + t*(70-92)
		b = 246 + t*(239-246)
	} else {
		t := (xRatio - 0.66) / 0.34
		r = 217 + t*(236-217)
		g = 70 + t*(72-70)
		b = 239 + t*(153-239)
	}

	brightness := 1.0 - (yRatio * 0.5)
	return fmt.Sprintf("#%02X%02X%02X", clampByte(r*brightness), clampByte(g*brightness), clampByte(b*brightness))
}

func clampByte(v float64) int {
	switch {
	case v > 255:
		return 255
	case v < 0:
		return 0
	default:
		return int(v)
	}
}
