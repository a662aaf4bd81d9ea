package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/mabhi256/dsaviz/internal/algo"
	"github.com/mabhi256/dsaviz/internal/config"
	"github.com/mabhi256/dsaviz/internal/input"
	"github.com/mabhi256/dsaviz/internal/playback"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func newTestModel(t *testing.T) (*Model, *playback.ManualScheduler) {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.Input.Seed = 1

	sched := playback.NewManualScheduler()
	m, err := NewModel(Options{Config: cfg, Scheduler: sched})
	require.NoError(t, err)
	t.Cleanup(m.dispose)

	m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return m, sched
}

func TestNewModelLoadsDefaultInput(t *testing.T) {
	m, _ := newTestModel(t)

	assert.Equal(t, []int{64, 34, 25, 12, 22, 11, 90}, m.input)
	assert.Equal(t, algo.Bubble, m.kind)
	assert.Equal(t, 0, m.state.Cursor)
	assert.Positive(t, m.state.Len)
	assert.Equal(t, m.input, m.step.Array)
}

func TestNewModelRejectsUnknownAlgorithm(t *testing.T) {
	_, err := NewModel(Options{Algorithm: "bogo", Scheduler: playback.NewManualScheduler()})
	assert.ErrorIs(t, err, algo.ErrUnsupportedAlgorithm)
}

func TestSpaceTogglesPlayback(t *testing.T) {
	m, sched := newTestModel(t)

	m.Update(tea.KeyMsg{Type: tea.KeySpace})
	assert.True(t, m.state.Running)
	assert.Equal(t, 1, sched.Pending())

	sched.Advance(playback.Interval(playback.DefaultSpeed))
	m.Update(eventMsg{})
	assert.Equal(t, 1, m.state.Cursor)

	m.Update(tea.KeyMsg{Type: tea.KeySpace})
	assert.False(t, m.state.Running)
	assert.Zero(t, sched.Pending())
}

func TestStepAndSeekKeys(t *testing.T) {
	m, _ := newTestModel(t)

	m.Update(tea.KeyMsg{Type: tea.KeyRight})
	m.Update(tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, 2, m.state.Cursor)

	m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, 1, m.state.Cursor)

	m.Update(tea.KeyMsg{Type: tea.KeyEnd})
	assert.True(t, m.state.AtEnd())
	assert.Equal(t, []int{11, 12, 22, 25, 34, 64, 90}, m.step.Array)

	m.Update(tea.KeyMsg{Type: tea.KeyHome})
	assert.Equal(t, 0, m.state.Cursor)
}

func TestStopKey(t *testing.T) {
	m, sched := newTestModel(t)
	m.Update(tea.KeyMsg{Type: tea.KeySpace})
	m.Update(keyRunes("s"))

	assert.False(t, m.state.Running)
	assert.Equal(t, "Visualization stopped", m.state.Narration)
	assert.Zero(t, sched.Pending())
}

func TestSpeedKeys(t *testing.T) {
	m, _ := newTestModel(t)

	m.Update(keyRunes("+"))
	assert.Equal(t, playback.DefaultSpeed+speedStep, m.state.Speed)

	for range 20 {
		m.Update(keyRunes("-"))
	}
	assert.Equal(t, playback.MinSpeed, m.state.Speed)
}

func TestAlgorithmCycling(t *testing.T) {
	m, _ := newTestModel(t)

	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, algo.Quick, m.kind)
	assert.Equal(t, "quick", m.ctrl.Trace().Algorithm())

	m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, algo.Queue, m.kind)
	assert.Equal(t, "queue", m.ctrl.Trace().Algorithm())
}

func TestSwitchingAlgorithmCancelsPlayback(t *testing.T) {
	m, sched := newTestModel(t)
	m.Update(tea.KeyMsg{Type: tea.KeySpace})
	m.Update(tea.KeyMsg{Type: tea.KeyTab})

	assert.False(t, m.state.Running)
	assert.Equal(t, 0, m.state.Cursor)
	assert.Zero(t, sched.Pending())
}

func TestEditInput(t *testing.T) {
	m, _ := newTestModel(t)

	m.Update(keyRunes("i"))
	require.True(t, m.editing)
	assert.Equal(t, input.Format(m.input), m.editor.Value())

	m.editor.SetValue("[3, 1, 2]")
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.False(t, m.editing)
	assert.Equal(t, []int{3, 1, 2}, m.input)
	assert.Equal(t, []int{3, 1, 2}, m.ctrl.Trace().Input())
}

func TestEditRejectsInvalidInput(t *testing.T) {
	m, _ := newTestModel(t)
	before := m.input

	m.Update(keyRunes("i"))
	m.editor.SetValue("a, b")
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.True(t, m.editing)
	assert.ErrorIs(t, m.inputErr, input.ErrInvalidInput)
	assert.Equal(t, before, m.input)
	assert.Contains(t, m.View(), "please enter valid numbers")

	m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.editing)
	assert.NoError(t, m.inputErr)
}

func TestRandomKeyReplacesInput(t *testing.T) {
	m, _ := newTestModel(t)
	m.Update(keyRunes("r"))

	assert.Len(t, m.input, input.DefaultSize)
	assert.Equal(t, m.input, m.ctrl.Trace().Input())
}

func TestEdgeCaseAdviceShown(t *testing.T) {
	cfg := config.DefaultConfig()
	m, err := NewModel(Options{Config: cfg, Input: []int{5, 4, 3}, Scheduler: playback.NewManualScheduler()})
	require.NoError(t, err)
	defer m.dispose()
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})

	assert.Contains(t, m.View(), "Reverse sorted array")
}

func TestViewPanels(t *testing.T) {
	m, _ := newTestModel(t)

	view := m.View()
	assert.Contains(t, view, "Bubble Sort")
	assert.Contains(t, view, "Results")
	assert.Contains(t, view, "Comparisons")
	assert.NotContains(t, view, "Explanation")

	m.Update(keyRunes("e"))
	assert.Contains(t, m.View(), "Explanation")
}

func TestViewBeforeResize(t *testing.T) {
	cfg := config.DefaultConfig()
	m, err := NewModel(Options{Config: cfg, Scheduler: playback.NewManualScheduler()})
	require.NoError(t, err)
	defer m.dispose()

	assert.Equal(t, "Loading...", m.View())
}

func TestQuitDisposesController(t *testing.T) {
	m, sched := newTestModel(t)
	m.Update(tea.KeyMsg{Type: tea.KeySpace})

	_, cmd := m.Update(keyRunes("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
	assert.Zero(t, sched.Pending())
	assert.ErrorIs(t, m.ctrl.Play(), playback.ErrDisposed)
}

func TestMailboxKeepsNewestEvent(t *testing.T) {
	b := newMailbox()
	b.put(playback.Event{Kind: playback.EventTick, State: playback.State{Cursor: 1}})
	b.put(playback.Event{Kind: playback.EventTick, State: playback.State{Cursor: 2}})

	msg := b.wait()()
	ev, ok := msg.(eventMsg)
	require.True(t, ok)
	assert.Equal(t, 2, ev.State.Cursor)

	b.close()
	b.close()
	assert.Nil(t, b.wait()())
}

func TestInitWaitsForControllerEvents(t *testing.T) {
	m, _ := newTestModel(t)

	msg := m.Init()()
	ev, ok := msg.(eventMsg)
	require.True(t, ok)
	assert.Equal(t, playback.EventLoaded, ev.Kind)
}
