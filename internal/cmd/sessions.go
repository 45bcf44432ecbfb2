package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/renato0307/flowpomo/internal/domain"
)

// SessionsCmd groups the session commands
type SessionsCmd struct {
	Export SessionsExportCmd `cmd:"export" help:"Export recorded sessions as JSON or YAML"`
	List   SessionsListCmd   `cmd:"list" help:"List recorded sessions, newest first" default:"1"`
}

// SessionsListCmd lists recorded sessions
type SessionsListCmd struct {
	Limit int `help:"Maximum number of sessions to show (0 = all)" default:"20"`
}

// Run executes the list command
func (s *SessionsListCmd) Run(cli *CLI) error {
	userID := cli.LocalUser()
	if userID == "" {
		return domain.ErrNoIdentity
	}

	sessions, err := cli.Container.repo.ListSessions(context.Background(), userID, s.Limit)
	if err != nil {
		return fmt.Errorf("failed to list sessions: %w", err)
	}

	if len(sessions) == 0 {
		fmt.Println("No sessions recorded yet.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "WHEN\tCATEGORY\tDURATION")
	for _, sess := range sessions {
		fmt.Fprintf(w, "%s\t%s\t%s\n",
			sess.Time().Local().Format("2006-01-02 15:04"),
			sess.Category,
			domain.FormatDuration(sess.Duration))
	}
	return w.Flush()
}

// SessionsExportCmd writes recorded sessions to a file or stdout
type SessionsExportCmd struct {
	Format string `help:"Output format: json or yaml" enum:"json,yaml" default:"json"`
	Output string `help:"Output file (default stdout)" short:"o"`
}

// exportedSession is the export shape of a session record
type exportedSession struct {
	Category  string    `json:"category" yaml:"category"`
	Duration  int       `json:"duration" yaml:"duration"`
	ID        string    `json:"id" yaml:"id"`
	Time      time.Time `json:"time" yaml:"time"`
	Timestamp int64     `json:"timestamp" yaml:"timestamp"`
	UserID    string    `json:"user_id" yaml:"user_id"`
}

// Run executes the export command
func (s *SessionsExportCmd) Run(cli *CLI) error {
	userID := cli.LocalUser()
	if userID == "" {
		return domain.ErrNoIdentity
	}

	sessions, err := cli.Container.repo.ListSessions(context.Background(), userID, 0)
	if err != nil {
		return fmt.Errorf("failed to list sessions: %w", err)
	}

	var out io.Writer = os.Stdout
	if s.Output != "" {
		file, err := os.Create(s.Output)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer file.Close()
		out = file
	}

	return writeSessions(out, s.Format, sessions)
}

// writeSessions encodes sessions in the given format
func writeSessions(w io.Writer, format string, sessions []domain.SessionRecord) error {
	exported := make([]exportedSession, 0, len(sessions))
	for _, sess := range sessions {
		exported = append(exported, exportedSession{
			Category:  sess.Category,
			Duration:  sess.Duration,
			ID:        sess.ID,
			Time:      sess.Time().UTC(),
			Timestamp: sess.Timestamp,
			UserID:    sess.UserID,
		})
	}

	switch format {
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(exported); err != nil {
			return fmt.Errorf("failed to encode YAML: %w", err)
		}
		return enc.Close()
	default:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(exported); err != nil {
			return fmt.Errorf("failed to encode JSON: %w", err)
		}
		return nil
	}
}
