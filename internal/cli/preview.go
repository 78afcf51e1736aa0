package cli

import (
	"context"
	"fmt"
	"math"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/matzehuels/tagcloud/pkg/cloud"
	"github.com/matzehuels/tagcloud/pkg/geom"
	"github.com/matzehuels/tagcloud/pkg/pipeline"
)

// previewFill cycles per placed rectangle so neighbours stay distinguishable.
const previewFill = "#%@*=o&x"

var (
	previewCenterStyle = lipgloss.NewStyle().Bold(true).Foreground(colorYellow)
	previewRectStyle   = lipgloss.NewStyle().Foreground(colorCyan)
)

// previewCommand creates the preview command for placing sizes interactively.
func (c *CLI) previewCommand() *cobra.Command {
	var lf layoutFlags

	cmd := &cobra.Command{
		Use:   "preview [sizes]",
		Short: "Place sizes one at a time in the terminal",
		Long: `Place sizes one at a time in the terminal.

Keys:
  space, enter   place the next size
  a              place all remaining sizes
  arrow keys     move the center by one unit
  q, esc         quit

The drawing is scaled down to fit the terminal.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := c.pipelineOptions()
			opts.Input = args[0]
			if err := lf.apply(cmd, &opts); err != nil {
				return err
			}
			if err := pipeline.Load(&opts); err != nil {
				return err
			}
			// The alternate screen owns the terminal; layouter logs would tear it.
			opts.Logger = nil
			if err := opts.ValidateForLayout(); err != nil {
				return err
			}
			return runPreview(cmd.Context(), newPreviewModel(opts))
		},
	}

	lf.register(cmd)
	return cmd
}

func runPreview(ctx context.Context, m previewModel) error {
	p := tea.NewProgram(m, tea.WithContext(ctx), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return err
	}
	if fm, ok := final.(previewModel); ok {
		printSuccess("Placed %d of %d rectangles", fm.layouter.Len(), len(fm.sizes))
	}
	return nil
}

// previewModel is the bubbletea model driving an interactive layout.
type previewModel struct {
	sizes    []geom.Size
	next     int
	layouter *cloud.Layouter
	center   geom.Point
	width    int
	height   int
	err      error
}

func newPreviewModel(opts pipeline.Options) previewModel {
	center := opts.CenterPoint()
	return previewModel{
		sizes:    opts.Sizes,
		layouter: cloud.New(center, opts.CloudOptions()...),
		center:   center,
		width:    80,
		height:   24,
	}
}

func (m previewModel) Init() tea.Cmd {
	return nil
}

func (m previewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case " ", "enter":
			m.placeNext()
		case "a":
			for m.err == nil && m.next < len(m.sizes) {
				m.placeNext()
			}
		case "up":
			m.move(0, -1)
		case "down":
			m.move(0, 1)
		case "left":
			m.move(-1, 0)
		case "right":
			m.move(1, 0)
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

func (m *previewModel) placeNext() {
	if m.next >= len(m.sizes) {
		return
	}
	if _, err := m.layouter.Place(m.sizes[m.next]); err != nil {
		m.err = fmt.Errorf("rect %d: %w", m.next, err)
		return
	}
	m.err = nil
	m.next++
}

func (m *previewModel) move(dx, dy int) {
	m.center = m.center.Add(geom.Pt(dx, dy))
	m.layouter.Recenter(m.center)
}

func (m previewModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Tagcloud Preview"))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("space place  a all  ←↑↓→ center  q quit"))
	b.WriteString("\n\n")

	gw, gh := m.width, m.height-5
	if gw < 10 {
		gw = 10
	}
	if gh < 5 {
		gh = 5
	}
	b.WriteString(m.canvas(gw, gh))
	b.WriteString("\n")

	status := fmt.Sprintf("%d/%d placed · center %s", m.next, len(m.sizes), m.center)
	if m.next < len(m.sizes) {
		status += " · next " + m.sizes[m.next].String()
	}
	b.WriteString(StyleDim.Render(status))
	if m.err != nil {
		b.WriteString("\n")
		b.WriteString(styleIconError.Render(iconError) + " " + m.err.Error())
	}
	return b.String()
}

// canvas rasterizes the layout into a w×h character grid. The view is
// centered on the layout center and scaled so every rectangle fits; each
// cell takes the rune of the rectangle covering its midpoint.
func (m previewModel) canvas(w, h int) string {
	rects := m.layouter.Rects()
	cx, cy := float64(m.center.X), float64(m.center.Y)

	// Terminal cells are roughly twice as tall as they are wide.
	const aspect = 2.0
	halfW, halfH := 1.0, 1.0
	for _, r := range rects {
		halfW = math.Max(halfW, math.Max(math.Abs(float64(r.Left())-cx), math.Abs(float64(r.Right())-cx)))
		halfH = math.Max(halfH, math.Max(math.Abs(float64(r.Top())-cy), math.Abs(float64(r.Bottom())-cy)))
	}
	scale := math.Max(2*halfW/float64(w), 2*halfH*aspect/float64(h))
	if scale < 1 {
		scale = 1
	}

	grid := make([][]rune, h)
	for y := range grid {
		grid[y] = []rune(strings.Repeat(" ", w))
	}
	fill := []rune(previewFill)
	for i, r := range rects {
		ch := fill[i%len(fill)]
		for y := 0; y < h; y++ {
			py := cy + (float64(y-h/2)+0.5)*scale/aspect
			if py < float64(r.Top()) || py >= float64(r.Bottom()) {
				continue
			}
			for x := 0; x < w; x++ {
				px := cx + (float64(x-w/2)+0.5)*scale
				if px >= float64(r.Left()) && px < float64(r.Right()) {
					grid[y][x] = ch
				}
			}
		}
	}

	var b strings.Builder
	for y, row := range grid {
		if y == h/2 {
			b.WriteString(previewRectStyle.Render(string(row[:w/2])))
			b.WriteString(previewCenterStyle.Render("+"))
			b.WriteString(previewRectStyle.Render(string(row[w/2+1:])))
		} else {
			b.WriteString(previewRectStyle.Render(string(row)))
		}
		if y < h-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}
