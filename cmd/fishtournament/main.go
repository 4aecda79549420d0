// Command fishtournament hosts one Fish tournament: it opens a signup
// window, refereeing every round of a backtracking bracket
// (tournament.Run) against the signed-up clients, and prints the
// tournament's final win/kick tally to stdout before exiting.
//
// A lightweight admin HTTP API runs alongside the tournament for the
// duration of the process, exposing the tournament record and a
// websocket feed of its start and finish events; this command records
// no per-game records, so the game endpoints stay empty (spec.md §1: a deliberately
// different audience than in-game board-state fanout, which this
// runtime does not provide).
package main

import (
	"context"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v3"
	"golang.ngrok.com/ngrok"
	ngrokConfig "golang.ngrok.com/ngrok/config"

	"github.com/wricardo/fishtournament/adminapi"
	"github.com/wricardo/fishtournament/board"
	"github.com/wricardo/fishtournament/client"
	"github.com/wricardo/fishtournament/client/wire"
	"github.com/wricardo/fishtournament/config"
	"github.com/wricardo/fishtournament/game"
	"github.com/wricardo/fishtournament/referee"
	"github.com/wricardo/fishtournament/registry"
	"github.com/wricardo/fishtournament/signup"
	"github.com/wricardo/fishtournament/tournament"
)

const (
	AppName = "Fish Tournament Server"
	Version = "1.0.0"
)

func getConfigDirDefault() string {
	if dir := os.Getenv("CONFIG_DIR"); dir != "" {
		return dir
	}
	return "configs"
}

func main() {
	if err := godotenv.Load(); err != nil {
		if !os.IsNotExist(err) {
			log.Printf("warning: error loading .env file: %v", err)
		}
	} else {
		log.Println("loaded environment variables from .env file")
	}

	cmd := &cli.Command{
		Name:  "fishtournament",
		Usage: "run a signup window, referee the resulting bracket, and report final standings",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "host", Value: "localhost", Usage: "bind host for signup and admin listeners"},
			&cli.IntFlag{Name: "signup-port", Value: 4567, Usage: "TCP port players connect to during signup"},
			&cli.IntFlag{Name: "admin-port", Value: 8080, Usage: "HTTP port for the admin/introspection API"},
			&cli.StringFlag{Name: "config-dir", Value: getConfigDirDefault(), Usage: "directory of board preset JSON files"},
			&cli.StringFlag{Name: "board-preset", Usage: "named preset to play on (defaults to the config directory's default)"},
			&cli.BoolFlag{Name: "version", Usage: "print version information and exit"},
			&cli.BoolFlag{Name: "ngrok", Usage: "expose the admin API through an ngrok tunnel"},
			&cli.StringFlag{Name: "ngrok-auth", Usage: "ngrok auth token (or NGROK_AUTHTOKEN env var)"},
			&cli.StringFlag{Name: "ngrok-domain", Usage: "custom ngrok domain (optional)"},
		},
		Action: run,
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func run(ctx context.Context, cmd *cli.Command) error {
	if cmd.Bool("version") {
		fmt.Printf("%s v%s\n", AppName, Version)
		return nil
	}

	cfgManager, err := config.NewManager(cmd.String("config-dir"))
	if err != nil {
		return fmt.Errorf("failed to create config manager: %w", err)
	}

	b, err := loadBoard(cmd, cfgManager)
	if err != nil {
		return err
	}

	reg := registry.NewManager()
	hub := adminapi.NewHub()
	go hub.Run()
	adminSrv := adminapi.NewServer(reg, cfgManager, hub)

	runCtx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	httpServer := startAdminServer(runCtx, cmd, adminSrv)
	defer shutdownAdminServer(httpServer)

	statuses, err := playTournament(runCtx, cmd, b, reg, hub)
	if err != nil {
		return err
	}

	won, kicked := tally(statuses)
	fmt.Printf("[%d,%d]\n", won, kicked)
	return nil
}

// loadBoard resolves the --board-preset flag (or the config
// directory's default preset) into a playable board.Board.
func loadBoard(cmd *cli.Command, cfgManager *config.Manager) (*board.Board, error) {
	var err error
	presetName := cmd.String("board-preset")
	var preset *config.BoardPreset
	if presetName != "" {
		preset, err = cfgManager.LoadConfig(presetName)
		if err != nil {
			return nil, fmt.Errorf("failed to load board preset %q: %w", presetName, err)
		}
	} else {
		preset = cfgManager.GetDefault()
	}

	b, err := preset.Board()
	if err != nil {
		return nil, fmt.Errorf("failed to build board from preset %q: %w", preset.Name, err)
	}
	return b, nil
}

// startAdminServer launches the admin HTTP API (and, if requested, an
// ngrok tunnel in front of it) in the background and returns the
// *http.Server so the caller can shut it down on exit.
func startAdminServer(ctx context.Context, cmd *cli.Command, handler http.Handler) *http.Server {
	addr := fmt.Sprintf("%s:%d", cmd.String("host"), cmd.Int("admin-port"))
	httpServer := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("admin API listening on %s", addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Printf("admin server failed: %v", err)
		}
	}()

	if ngrokShouldRun(cmd) {
		go runNgrokTunnel(ctx, cmd, handler)
	}

	return httpServer
}

func shutdownAdminServer(httpServer *http.Server) {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Printf("admin server shutdown error: %v", err)
	}
}

func ngrokShouldRun(cmd *cli.Command) bool {
	if cmd.Bool("ngrok") {
		return true
	}
	enabled := os.Getenv("NGROK_ENABLED")
	return enabled == "true" || enabled == "1"
}

func runNgrokTunnel(ctx context.Context, cmd *cli.Command, handler http.Handler) {
	authToken := cmd.String("ngrok-auth")
	if authToken == "" {
		authToken = os.Getenv("NGROK_AUTHTOKEN")
	}
	if authToken == "" {
		authToken = os.Getenv("NGROK_AUTH_TOKEN")
	}
	if authToken == "" {
		log.Println("warning: ngrok enabled but no auth token provided (use --ngrok-auth, NGROK_AUTHTOKEN, or NGROK_AUTH_TOKEN)")
		return
	}

	domain := cmd.String("ngrok-domain")
	if domain == "" {
		domain = os.Getenv("NGROK_DOMAIN")
	}

	var tunnel ngrokConfig.Tunnel
	if domain != "" {
		tunnel = ngrokConfig.HTTPEndpoint(ngrokConfig.WithDomain(domain))
	} else {
		tunnel = ngrokConfig.HTTPEndpoint()
	}

	tun, err := ngrok.Listen(ctx, tunnel, ngrok.WithAuthtoken(authToken))
	if err != nil {
		log.Printf("failed to start ngrok tunnel: %v", err)
		return
	}
	defer tun.Close()

	log.Printf("admin API tunnel established: %s", tun.URL())
	if err := http.Serve(tun, handler); err != nil && err != http.ErrServerClosed {
		log.Printf("ngrok server error: %v", err)
	}
}

// playTournament runs the signup window, wraps every signed-up
// connection as a tournament participant, and runs the bracket to
// completion, recording the result in reg and broadcasting it on hub.
func playTournament(ctx context.Context, cmd *cli.Command, b *board.Board, reg *registry.Manager, hub *adminapi.Hub) ([]referee.ClientStatus, error) {
	signupAddr := fmt.Sprintf("%s:%d", cmd.String("host"), cmd.Int("signup-port"))
	ln, err := net.Listen("tcp", signupAddr)
	if err != nil {
		return nil, fmt.Errorf("failed to open signup listener: %w", err)
	}
	defer ln.Close()

	log.Printf("signup listening on %s (waiting for %d-%d players)", signupAddr, signup.MinSignup, signup.MaxSignup)
	signedUp, err := signup.Run(ctx, ln, signup.DefaultWindow)
	if err != nil {
		return nil, fmt.Errorf("signup failed: %w", err)
	}
	log.Printf("%d players signed up", len(signedUp))

	participants := make([]referee.Participant, len(signedUp))
	for i, s := range signedUp {
		remote := client.NewRemote(s.Conn, client.DefaultCallTimeout)
		participants[i] = referee.Participant{
			Id:     game.PlayerId(i),
			Handle: client.NewHandle(remote),
		}
	}

	tournamentID := reg.CreateTournament(len(participants))
	hub.Publish(&adminapi.Event{TournamentID: tournamentID, Type: "tournament_started"})

	statuses := tournament.Run(ctx, participants, b)

	if err := reg.FinishTournament(tournamentID, statuses); err != nil {
		log.Printf("failed to record tournament finish: %v", err)
	}

	var winners []game.PlayerId
	for i, s := range statuses {
		if s == referee.Won {
			winners = append(winners, game.PlayerId(i))
		}
	}
	hub.Publish(&adminapi.Event{
		TournamentID: tournamentID,
		Type:         "tournament_finished",
		Data:         wire.NewTournamentFinishedMessage(winners),
	})

	return statuses, nil
}

// tally reduces a tournament's per-player statuses to the win/kick
// counts spec.md §6 requires on the final stdout line.
func tally(statuses []referee.ClientStatus) (won, kicked int) {
	for _, s := range statuses {
		switch s {
		case referee.Won:
			won++
		case referee.Kicked:
			kicked++
		}
	}
	return won, kicked
}
