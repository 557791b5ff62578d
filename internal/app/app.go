package app

import (
	"log/slog"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/anduckhmt146/leetpick/internal/countdown"
	"github.com/anduckhmt146/leetpick/internal/ledger"
	"github.com/anduckhmt146/leetpick/internal/logging"
	"github.com/anduckhmt146/leetpick/internal/pool"
	"github.com/anduckhmt146/leetpick/internal/router"
	"github.com/anduckhmt146/leetpick/internal/screen"
	"github.com/anduckhmt146/leetpick/internal/screens/history"
	"github.com/anduckhmt146/leetpick/internal/screens/picker"
	"github.com/anduckhmt146/leetpick/internal/screens/welcome"
	"github.com/anduckhmt146/leetpick/internal/selection"
	"github.com/anduckhmt146/leetpick/internal/ui/layout"
)

// Options holds dependencies for the app.
type Options struct {
	Pool      *pool.Pool
	Ledger    *ledger.Ledger
	Engine    *selection.Engine
	Countdown *countdown.Countdown
	BatchSize int
	Logger    *slog.Logger

	// SkipSplash starts directly on the picker.
	SkipSplash bool
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	width  int
	height int
}

// newAppModel creates a new AppModel starting on the splash screen.
func newAppModel(opts Options) AppModel {
	logger := logging.OrDiscard(opts.Logger)

	newHistory := func() screen.Screen {
		return history.New(opts.Pool, opts.Ledger, logger)
	}
	newPicker := func() screen.Screen {
		return picker.New(picker.Deps{
			Pool:      opts.Pool,
			Ledger:    opts.Ledger,
			Engine:    opts.Engine,
			Countdown: opts.Countdown,
			BatchSize: opts.BatchSize,
			History:   newHistory,
			Logger:    logger,
		})
	}

	var initial screen.Screen
	if opts.SkipSplash {
		initial = newPicker()
	} else {
		initial = welcome.New(newPicker)
	}
	return AppModel{
		router: router.New(initial),
	}
}

func (m AppModel) Init() tea.Cmd {
	if active := m.router.Active(); active != nil {
		return active.Init()
	}
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyPressMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView(m.render())
	v.AltScreen = true
	return v
}

// render composes the frame for the current terminal size.
func (m AppModel) render() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	active := m.router.Active()
	title := ""
	var progress layout.Progress
	if active != nil {
		title = active.Title()
		if pp, ok := active.(screen.ProgressProvider); ok {
			progress = pp.Progress()
		}
	}

	header := layout.RenderHeader(title, progress, m.width)

	var footerHints []layout.KeyHint
	if kh, ok := active.(screen.KeyHintProvider); ok {
		footerHints = kh.KeyHints()
	}
	footerHints = append(footerHints, layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	return err
}
