package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-cascade/internal/config"
	"github.com/vovakirdan/tui-cascade/internal/core"
)

// SetupSelection holds the user's choice from the difficulty screen.
type SetupSelection struct {
	Preset config.DifficultyPreset
}

// SetupModel lets users choose a difficulty preset before a game starts.
type SetupModel struct {
	title     string
	presets   []config.DifficultyPreset
	cursor    int
	width     int
	height    int
	keyMapper *KeyMapper
	selection *SetupSelection
	quitting  bool
	back      bool
}

// NewSetupModel creates a difficulty selector for the given mode title.
// The cursor starts on the normal preset.
func NewSetupModel(title string, width, height int) SetupModel {
	presets := config.Presets()
	cursor := 0
	for i, p := range presets {
		if p == config.DifficultyNormal {
			cursor = i
		}
	}

	return SetupModel{
		title:     title,
		presets:   presets,
		cursor:    cursor,
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
	}
}

// Init initializes the model.
func (m SetupModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m SetupModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}
	return m, nil
}

func (m SetupModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp, MenuActionLeft:
		m.cursor = core.Clamp(m.cursor-1, 0, len(m.presets)-1)
	case MenuActionDown, MenuActionRight:
		m.cursor = core.Clamp(m.cursor+1, 0, len(m.presets)-1)
	case MenuActionSelect:
		m.selection = &SetupSelection{Preset: m.presets[m.cursor]}
		return m, tea.Quit
	case MenuActionBack:
		m.back = true
		return m, tea.Quit
	}
	return m, nil
}

// View renders the preset list.
func (m SetupModel) View() string {
	if m.quitting || m.back || m.selection != nil {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(menuTitleStyle.Render(centerText(strings.ToUpper(m.title), m.width)))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select difficulty:", m.width))
	b.WriteString("\n\n")

	for i, p := range m.presets {
		detail := fmt.Sprintf("%d colours", config.PaletteForPreset(p))
		line := menuItemLabel(i == m.cursor, string(p), detail)
		if i == m.cursor {
			line = menuCursorStyle.Render(line)
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(menuHintStyle.Render(centerText("Enter: Start  |  Esc: Back  |  Q: Quit", m.width)))

	return b.String()
}

// Selected returns the selection, or nil if still choosing.
func (m SetupModel) Selected() *SetupSelection {
	return m.selection
}

// IsQuitting returns true if user wants to quit.
func (m SetupModel) IsQuitting() bool {
	return m.quitting
}

// WantsBack returns true if user pressed back.
func (m SetupModel) WantsBack() bool {
	return m.back
}

// RunSetup runs the difficulty selection and returns the choice, or nil when
// the user backed out.
func RunSetup(title string, cfg core.RuntimeConfig) (*SetupSelection, error) {
	p := tea.NewProgram(
		NewSetupModel(title, cfg.ScreenW, cfg.ScreenH),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return nil, err
	}

	m, ok := finalModel.(SetupModel)
	if !ok || m.IsQuitting() || m.WantsBack() {
		return nil, nil
	}
	return m.Selected(), nil
}
