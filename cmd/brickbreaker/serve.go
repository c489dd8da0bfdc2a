package main

import (
	"fmt"
	"net"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/brickbreaker/internal/platform/tui"
)

var (
	flagAddr    string
	flagHostKey string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the brickbreaker SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Each SSH connection gets its own home screen and its own highscore.
Finished rounds from every connection go to the same round history.

Examples:
  brickbreaker serve                        # Listen on the configured address
  brickbreaker serve --addr :2222           # Listen on port 2222
  brickbreaker serve --host-key ./host_key  # Use specific host key

Users can connect with:
  ssh localhost -p 2222`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagAddr, "addr", "", "SSH server address host:port (overrides config)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (overrides config)")
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, _, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	addr := net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port))
	if flagAddr != "" {
		addr = flagAddr
	}
	hostKey := cfg.Server.HostKeyPath
	if flagHostKey != "" {
		hostKey = flagHostKey
	}

	store, err := openStore(cfg.Storage)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open round history: %v\n", err)
	}
	if store != nil {
		defer store.Close()
	}

	server, err := tui.NewSSHServer(tui.SSHServerConfig{
		Address:     addr,
		HostKeyPath: hostKey,
		IdleTimeout: time.Duration(cfg.Server.IdleTimeout) * time.Second,
		FrameRate:   cfg.Display.FPS,
		Keys:        gameKeys(cfg.Keys),
	}, store)
	if err != nil {
		return fmt.Errorf("error creating server: %w", err)
	}

	fmt.Printf("Starting brickbreaker SSH server on %s\n", server.Addr())
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}
