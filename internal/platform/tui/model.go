package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/match-cards/internal/core"
	"github.com/vovakirdan/match-cards/internal/games/match"
	"github.com/vovakirdan/match-cards/internal/logging"
	"github.com/vovakirdan/match-cards/internal/storage"
)

// Phase is the screen the model is showing.
type Phase int

const (
	PhaseStart Phase = iota
	PhasePlaying
	PhaseEnd
)

func (p Phase) String() string {
	switch p {
	case PhaseStart:
		return "start"
	case PhasePlaying:
		return "playing"
	case PhaseEnd:
		return "end"
	default:
		return "unknown"
	}
}

// Options configures a Model.
type Options struct {
	Game          match.GameConfig
	Runtime       core.RuntimeConfig
	Store         *storage.Store // optional results history
	Logger        *log.Logger
	Player        string // shown on screens and logged; empty for local play
	ScreenshotDir string // defaults to ~/.matchcards/screenshots
}

// Model is the Bubble Tea model for one player: start screen, game,
// end screen, and again.
type Model struct {
	game       *match.Game
	screen     *core.Screen
	store      *storage.Store
	logger     *log.Logger
	config     core.RuntimeConfig
	fixedSeed  bool
	player     string
	shotDir    string
	inputFrame core.InputFrame
	keyMapper  *KeyMapper
	help       help.Model
	gameState  core.GameState
	phase      Phase
	sessionID  string
	summary    match.Summary
	saved      bool
	notice     string
	quitting   bool
}

// NewModel creates a model and deals the first board.
func NewModel(opts Options) Model {
	cfg := opts.Runtime
	fixed := cfg.Seed != 0
	if !fixed {
		cfg.Seed = time.Now().UnixNano()
	}
	if opts.Logger == nil {
		opts.Logger = logging.Discard()
	}
	if opts.Game.Session.Logger == nil {
		opts.Game.Session.Logger = opts.Logger
	}

	m := Model{
		game:       match.New(opts.Game),
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      opts.Store,
		logger:     opts.Logger,
		config:     cfg,
		fixedSeed:  fixed,
		player:     opts.Player,
		shotDir:    opts.ScreenshotDir,
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
		help:       help.New(),
		phase:      PhaseStart,
	}
	m.help.Width = cfg.ScreenW
	m.newGame()
	return m
}

// newGame deals a fresh board under a new session id.
func (m *Model) newGame() {
	m.game.Reset(m.config)
	m.gameState = m.game.State()
	m.sessionID = uuid.NewString()
	m.summary = match.Summary{}
	m.saved = false
	m.inputFrame.Clear()
	m.logger.Debug("new game", "session", m.sessionID, "seed", m.config.Seed, "player", m.player)
}

// Init starts the frame loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keys := m.keyMapper.Keys()
	switch {
	case key.Matches(msg, keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	case key.Matches(msg, keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	switch m.phase {
	case PhaseStart, PhaseEnd:
		action, isQuit := m.keyMapper.MapKey(msg)
		if isQuit {
			m.quitting = true
			return m, tea.Quit
		}
		if action == core.ActionPick {
			m.advance()
		}
	case PhasePlaying:
		if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
			m.quitting = true
			return m, tea.Quit
		}
	}
	return m, nil
}

// handleMouse queues board clicks, or advances past the start and end
// screens.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.phase == PhasePlaying {
		m.keyMapper.MapMouseToFrame(msg, &m.inputFrame)
		return m, nil
	}
	if _, ok := m.keyMapper.MapMouse(msg); ok {
		m.advance()
	}
	return m, nil
}

// advance leaves the start or end screen for a game.
func (m *Model) advance() {
	if m.phase == PhaseEnd {
		if !m.fixedSeed {
			m.config.Seed = time.Now().UnixNano()
		}
		m.newGame()
	}
	m.phase = PhasePlaying
	m.notice = ""
}

// handleResize processes window resize events. The board keeps its state.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	m.game.Resize(msg.Width, msg.Height)
	m.help.Width = msg.Width
	return m, nil
}

// handleTick runs one frame of the game.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.phase != PhasePlaying {
		return m, tickCmd(m.config.TickRate)
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.inputFrame.Clear()

	if m.gameState.GameOver && !m.saved {
		m.finishGame()
	}

	return m, tickCmd(m.config.TickRate)
}

// finishGame records the result (once) and shows the end screen.
func (m *Model) finishGame() {
	m.summary = m.game.Session().Summary()
	m.saved = true
	m.phase = PhaseEnd

	if m.store == nil {
		return
	}
	_, err := m.store.SaveResult(storage.Result{
		SessionID:   m.sessionID,
		ElapsedSecs: m.summary.ElapsedSecs,
		Moves:       m.summary.Moves,
		Theme:       m.game.Session().Theme().Name,
		NewRecord:   m.summary.NewRecord,
	})
	if err != nil {
		m.logger.Error("could not save result", "session", m.sessionID, "error", err)
	}
}

// saveScreenshot writes the current frame as plain text.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := m.shotDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			m.logger.Warn("screenshot skipped", "error", err)
			return
		}
		dir = filepath.Join(home, ".matchcards", "screenshots")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}

	name := fmt.Sprintf("%s_%s.txt", m.game.ID(), time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "path", path, "error", err)
		return
	}
	m.notice = "saved " + path
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current screen.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	switch m.phase {
	case PhaseStart:
		return m.viewStart()
	case PhaseEnd:
		return m.viewEnd()
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

func (m Model) viewStart() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(strings.ToUpper(m.game.Title())))
	b.WriteString("\n\n")
	b.WriteString("Find all twelve pairs as fast as you can.\n")
	b.WriteString("Reveal two tiles per turn: pairs stay up,\n")
	b.WriteString("misses flip back and sometimes trade places.\n\n")
	fmt.Fprintf(&b, "Best time: %ds\n", m.game.Session().BestSecs())
	if m.player != "" {
		fmt.Fprintf(&b, "Player: %s\n", m.player)
	}
	b.WriteString("\n")
	b.WriteString(subtleStyle.Render("Click or press Enter to start, Esc/q to quit"))
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keyMapper.Keys()))
	if m.notice != "" {
		b.WriteString("\n" + subtleStyle.Render(m.notice))
	}
	return centerBlock(panelStyle.Render(b.String()), m.config.ScreenW, m.config.ScreenH)
}

func (m Model) viewEnd() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("GAME OVER"))
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "Time:  %ds\n", m.summary.ElapsedSecs)
	fmt.Fprintf(&b, "Best:  %ds\n", m.summary.BestSecs)
	fmt.Fprintf(&b, "Moves: %d\n", m.summary.Moves)
	if m.summary.NewRecord {
		b.WriteString("\n" + recordStyle.Render("NEW RECORD!") + "\n")
	}
	b.WriteString("\n")
	b.WriteString(subtleStyle.Render("Click or press Enter to play again, Esc/q to quit"))
	if m.notice != "" {
		b.WriteString("\n" + subtleStyle.Render(m.notice))
	}
	return centerBlock(panelStyle.Render(b.String()), m.config.ScreenW, m.config.ScreenH)
}

// Phase returns the current screen.
func (m Model) Phase() Phase {
	return m.phase
}

// Game returns the running game.
func (m Model) Game() *match.Game {
	return m.game
}

// Summary returns the figures of the last finished game.
func (m Model) Summary() match.Summary {
	return m.summary
}

// SessionID returns the id results of the current game are stored under.
func (m Model) SessionID() string {
	return m.sessionID
}

// Run starts the Bubble Tea program with the given options.
func Run(opts Options) error {
	p := tea.NewProgram(
		NewModel(opts),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}
