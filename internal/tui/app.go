package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/mabhi256/dsaviz/internal/algo"
	"github.com/mabhi256/dsaviz/internal/config"
	"github.com/mabhi256/dsaviz/internal/edgecase"
	"github.com/mabhi256/dsaviz/internal/input"
	"github.com/mabhi256/dsaviz/internal/playback"
	"github.com/mabhi256/dsaviz/utils"
)

const speedStep = 50

type Options struct {
	Config    *config.Config
	Logger    *zap.Logger
	Scheduler playback.Scheduler // nil means the wall clock
	Input     []int              // overrides the configured starting array
	Algorithm string             // overrides the configured algorithm
}

// NewModel builds the model and loads the first trace.
func NewModel(opts Options) (*Model, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	id := cfg.Algorithm
	if opts.Algorithm != "" {
		id = opts.Algorithm
	}
	a, err := algo.Lookup(id)
	if err != nil {
		return nil, err
	}

	seed := cfg.Input.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	size := cfg.Input.Size
	if size == 0 {
		size = input.DefaultSize
	}

	editor := textinput.New()
	editor.Placeholder = config.DefaultInput
	editor.Prompt = "array> "
	editor.CharLimit = 512

	m := &Model{
		events:   newMailbox(),
		logger:   logger,
		kind:     a.Kind,
		gen:      input.NewGenerator(seed),
		preset:   input.Preset(cfg.Input.Preset),
		size:     size,
		editor:   editor,
		progress: progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage()),
		help:     help.New(),
		keys:     DefaultKeyMap(),
	}

	m.ctrl = playback.New(
		playback.WithScheduler(opts.Scheduler),
		playback.WithLogger(logger.Named("playback")),
		playback.WithSpeed(cfg.Playback.Speed),
	)
	m.unsubscribe = m.ctrl.Subscribe(m.events.put)

	switch {
	case opts.Input != nil:
		m.input = opts.Input
	case cfg.Input.Default != "":
		if m.input, err = input.Parse(cfg.Input.Default); err != nil {
			m.dispose()
			return nil, err
		}
	default:
		if m.input, err = m.gen.Preset(m.preset, m.size); err != nil {
			m.dispose()
			return nil, err
		}
	}

	m.regenerate()
	return m, nil
}

func (m *Model) Init() tea.Cmd {
	return m.events.wait()
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.progress.Width = max(10, msg.Width-24)
		m.editor.Width = max(10, msg.Width-12)
		return m, nil

	case eventMsg:
		m.sync()
		return m, m.events.wait()

	case tea.KeyMsg:
		if m.editing {
			return m.handleEditorKeys(msg)
		}
		return m.handleKeys(msg)
	}

	return m, nil
}

func (m *Model) handleKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.dispose()
		return m, tea.Quit

	case key.Matches(msg, m.keys.PlayPause):
		if m.ctrl.State().Running {
			m.ctrl.Pause()
		} else {
			m.report(m.ctrl.Play())
		}
	case key.Matches(msg, m.keys.Stop):
		m.ctrl.Stop()
	case key.Matches(msg, m.keys.Prev):
		m.report(m.ctrl.StepBackward())
	case key.Matches(msg, m.keys.Next):
		m.report(m.ctrl.StepForward())
	case key.Matches(msg, m.keys.First):
		m.report(m.ctrl.Seek(0))
	case key.Matches(msg, m.keys.Last):
		m.report(m.ctrl.Seek(m.ctrl.Len() - 1))

	case key.Matches(msg, m.keys.Faster):
		m.ctrl.SetSpeed(m.ctrl.State().Speed + speedStep)
	case key.Matches(msg, m.keys.Slower):
		m.ctrl.SetSpeed(m.ctrl.State().Speed - speedStep)

	case key.Matches(msg, m.keys.NextAlgo):
		m.kind = utils.GetNextEnum(m.kind, algo.LastKind)
		m.regenerate()
	case key.Matches(msg, m.keys.PrevAlgo):
		m.kind = utils.GetPrevEnum(m.kind, algo.LastKind)
		m.regenerate()

	case key.Matches(msg, m.keys.Random):
		arr, err := m.gen.Preset(m.preset, m.size)
		if err != nil {
			m.genErr = err
			break
		}
		m.input = arr
		m.regenerate()

	case key.Matches(msg, m.keys.Edit):
		m.ctrl.Pause()
		m.editing = true
		m.inputErr = nil
		m.editor.SetValue(input.Format(m.input))
		m.editor.CursorEnd()
		m.sync()
		return m, m.editor.Focus()

	case key.Matches(msg, m.keys.Explain):
		m.showExplanation = !m.showExplanation
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}

	m.sync()
	return m, nil
}

func (m *Model) handleEditorKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Submit):
		arr, err := input.Parse(m.editor.Value())
		if err != nil {
			m.inputErr = err
			return m, nil
		}
		m.input = arr
		m.closeEditor()
		m.regenerate()
		return m, nil

	case key.Matches(msg, m.keys.Cancel):
		m.closeEditor()
		return m, nil
	}

	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	return m, cmd
}

func (m *Model) closeEditor() {
	m.editing = false
	m.inputErr = nil
	m.editor.Blur()
}

// regenerate runs the selected algorithm over the current input and loads
// the new trace, which also cancels any playback of the old one.
func (m *Model) regenerate() {
	a, _ := m.kind.Algorithm()
	m.class = edgecase.Classify(m.input)

	tr, err := a.Generate(m.input)
	if err != nil {
		m.genErr = err
		m.logger.Error("trace generation failed", zap.String("algorithm", a.ID), zap.Error(err))
		m.sync()
		return
	}
	m.genErr = nil
	m.report(m.ctrl.Load(tr))
	m.logger.Debug("trace generated",
		zap.String("algorithm", a.ID),
		zap.Int("size", len(m.input)),
		zap.Int("steps", tr.Len()),
		zap.Stringer("edgeCase", m.class))
	m.sync()
}

func (m *Model) report(err error) {
	if err != nil {
		m.genErr = err
		m.logger.Warn("playback request rejected", zap.Error(err))
	}
}

func (m *Model) sync() {
	m.state = m.ctrl.State()
	m.step, _ = m.ctrl.Current()
}

func (m *Model) dispose() {
	if m.unsubscribe != nil {
		m.unsubscribe()
	}
	m.ctrl.Dispose()
	m.events.close()
}

// Controller exposes the playback controller, mainly for tests.
func (m *Model) Controller() *playback.Controller {
	return m.ctrl
}

// Start runs the interactive visualizer until the user quits.
func Start(opts Options) error {
	model, err := NewModel(opts)
	if err != nil {
		return err
	}
	defer model.dispose()

	program := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	if _, err := program.Run(); err != nil {
		return fmt.Errorf("visualizer: %w", err)
	}
	return nil
}
