package server

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/ssh"

	"github.com/renato0307/flowpomo/internal/logging"
	"github.com/renato0307/flowpomo/internal/services"
	"github.com/renato0307/flowpomo/internal/ui"
)

// releaseOnDisconnect closes the engine once the SSH session ends.
// bubbletea consumes tea.QuitMsg itself, so the session context is the only reliable signal.
func releaseOnDisconnect(ctx context.Context, engine *services.Engine, sessionID string) {
	startTime := time.Now()
	<-ctx.Done()
	engine.Close()
	logging.Logger.Info("SSH session ended",
		"session_id", sessionID,
		"duration", time.Since(startTime).String())
}

// teaHandler creates a timer model and engine for each SSH session
func (s *Server) teaHandler(sess ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, _ := sess.Pty()
	sessionID := fmt.Sprintf("%s@%s", sess.User(), sess.RemoteAddr().String())

	logging.Logger.Info("New SSH session",
		"session_id", sessionID,
		"user", sess.User(),
		"term", pty.Term,
		"window", fmt.Sprintf("%dx%d", pty.Window.Width, pty.Window.Height))

	engine, err := s.newEngine(sess.Context(), sess.User())
	if err != nil {
		logging.Logger.Error("Failed to start engine for SSH session",
			"error", err,
			"session_id", sessionID)
		return errorModel{err}, nil
	}

	go releaseOnDisconnect(sess.Context(), engine, sessionID)

	return ui.NewModel(engine, s.keys, sess.User(), false), []tea.ProgramOption{tea.WithAltScreen()}
}

// errorModel is a simple model that displays an error
type errorModel struct {
	err error
}

func (e errorModel) Init() tea.Cmd {
	return nil
}

func (e errorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(tea.KeyMsg); ok {
		return e, tea.Quit
	}
	return e, nil
}

func (e errorModel) View() string {
	return fmt.Sprintf("Error: %v\n\nPress any key to disconnect.\n", e.err)
}
