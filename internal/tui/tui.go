// Package tui renders an interactive window onto a procedurally
// generated world: every visible tile is derived on demand from the
// world seed via a parameterized split, so panning in any direction is
// cheap and revisited tiles are always identical.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/lox/splitrand/worldgen"
)

// Model is the Bubble Tea model for the world explorer.
type Model struct {
	world *worldgen.World
	seed  string

	// Top-left corner of the visible window in world coordinates.
	offsetX int32
	offsetY int32

	seedInput textinput.Model
	editing   bool

	width    int
	height   int
	quitting bool
}

// New creates a model seeded with the given string.
func New(seed string) *Model {
	ti := textinput.New()
	ti.Placeholder = "new seed"
	ti.CharLimit = 64
	ti.Width = 32
	ti.Prompt = "seed> "

	return &Model{
		world:     worldgen.New([]byte(seed)),
		seed:      seed,
		seedInput: ti,
	}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		if m.editing {
			switch msg.String() {
			case "enter":
				seed := strings.TrimSpace(m.seedInput.Value())
				if seed != "" {
					m.seed = seed
					m.world = worldgen.New([]byte(seed))
					m.offsetX, m.offsetY = 0, 0
				}
				m.editing = false
				m.seedInput.Blur()
				m.seedInput.SetValue("")
				return m, nil
			case "esc":
				m.editing = false
				m.seedInput.Blur()
				m.seedInput.SetValue("")
				return m, nil
			}
			var cmd tea.Cmd
			m.seedInput, cmd = m.seedInput.Update(msg)
			return m, cmd
		}

		switch msg.String() {
		case "ctrl+c", "q", "esc":
			m.quitting = true
			return m, tea.Quit
		case "up", "k":
			m.offsetY--
		case "down", "j":
			m.offsetY++
		case "left", "h":
			m.offsetX--
		case "right", "l":
			m.offsetX++
		case "s":
			m.editing = true
			m.seedInput.Focus()
			return m, textinput.Blink
		case "0":
			m.offsetX, m.offsetY = 0, 0
		}
	}

	return m, nil
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	mapWidth := m.width
	mapHeight := m.height - 3 // header, footer and trailing newline rows
	if mapWidth < 1 {
		mapWidth = 1
	}
	if mapHeight < 1 {
		mapHeight = 1
	}

	var b strings.Builder
	b.WriteString(HeaderStyle.Render(fmt.Sprintf(" world %q @ (%d, %d) ", m.seed, m.offsetX, m.offsetY)))
	b.WriteString("\n")

	for dy := 0; dy < mapHeight; dy++ {
		for dx := 0; dx < mapWidth; dx++ {
			tile := m.world.TileAt(m.offsetX+int32(dx), m.offsetY+int32(dy))
			b.WriteString(tileStyle(tile).Render(string(tile.Rune())))
		}
		b.WriteString("\n")
	}

	if m.editing {
		b.WriteString(m.seedInput.View())
	} else {
		b.WriteString(HelpStyle.Render("arrows/hjkl pan · 0 origin · s seed · q quit"))
	}
	return b.String()
}
