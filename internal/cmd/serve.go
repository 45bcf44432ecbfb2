package cmd

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/renato0307/flowpomo/internal/config"
	"github.com/renato0307/flowpomo/internal/logging"
	"github.com/renato0307/flowpomo/internal/server"
)

// ServeCmd serves the timer over SSH
type ServeCmd struct {
	AuthorizedKeys string `help:"authorized_keys file used for public key auth" default:"~/.ssh/authorized_keys"`
	Host           string `help:"Host to listen on" default:"localhost"`
	HostKey        string `help:"SSH host key path (generated when missing, defaults to $FLOWPOMO_HOME/ssh/id_ed25519)"`
	Port           string `help:"Port to listen on" default:"23234"`
}

// Run starts the SSH server and blocks until SIGINT or SIGTERM
func (s *ServeCmd) Run(cli *CLI) error {
	keys, err := cli.keyMap()
	if err != nil {
		return err
	}

	hostKey := s.HostKey
	if hostKey == "" {
		hostKey = config.GetHostKeyPath()
	}

	srv, err := server.NewServer(server.Config{
		AuthorizedKeysPath: filepath.Clean(config.ExpandPath(s.AuthorizedKeys)),
		Host:               s.Host,
		HostKeyPath:        config.ExpandPath(hostKey),
		Port:               s.Port,
	}, keys, cli.Container.NewEngine)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logging.Logger.Info("Serving flowpomo over SSH", "address", srv.Addr())
	return srv.Start(ctx)
}
