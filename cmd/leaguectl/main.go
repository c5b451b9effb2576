// Package main provides an interactive terminal client for the league API.
package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/festy23/league_manager/internal/client"
	"github.com/festy23/league_manager/internal/config"
	"github.com/festy23/league_manager/internal/console"
	"github.com/festy23/league_manager/internal/league/model"
	"github.com/festy23/league_manager/pkg/logger"
)

const help = `commands:
  list                 refresh the league list
  create               open the create form
  edit N               open the edit form for row N
  delete N             delete row N
  invite N             open the invite form for row N
  set FIELD VALUE      set title, description or members
  email VALUE          set the invite email
  save                 submit the create or edit form
  send                 send the invite
  cancel               close the form
  help                 show this help
  quit                 exit`

func main() {
	if err := config.LoadDotEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to load .env: %v\n", err)
		os.Exit(1)
	}

	cfg := config.LoadClientConfigFromEnv()
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "invalid configuration: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.NewConsole(config.GetEnv("LOG_LEVEL", "warn"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	state := console.NewState(client.New(cfg), log)
	shell := newShell(state, console.NewView(), os.Stdout, log)
	if err := shell.Run(context.Background(), os.Stdin); err != nil {
		log.Errorw("client stopped with error", "error", err)
		os.Exit(1)
	}
}

// shell reads commands line by line and drives a console.State.
type shell struct {
	state  *console.State
	view   *console.View
	out    io.Writer
	logger *zap.SugaredLogger
}

func newShell(state *console.State, view *console.View, out io.Writer, logger *zap.SugaredLogger) *shell {
	return &shell{state: state, view: view, out: out, logger: logger}
}

// Run loads the list, then executes commands from in until quit or EOF.
func (s *shell) Run(ctx context.Context, in io.Reader) error {
	s.report(s.state.Load(ctx))
	if err := s.render(); err != nil {
		return err
	}

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(s.out, "> ")
		if !scanner.Scan() {
			fmt.Fprintln(s.out)
			return scanner.Err()
		}

		quit, err := s.exec(ctx, scanner.Text())
		if quit {
			return nil
		}
		s.report(err)
		if err := s.render(); err != nil {
			return err
		}
	}
}

// exec runs one command line.
func (s *shell) exec(ctx context.Context, line string) (bool, error) {
	cmd, arg, _ := strings.Cut(strings.TrimSpace(line), " ")
	arg = strings.TrimSpace(arg)

	switch cmd {
	case "":
		return false, nil
	case "quit", "exit":
		return true, nil
	case "help":
		fmt.Fprintln(s.out, help)
		return false, nil
	case "list":
		return false, s.state.Load(ctx)
	case "create":
		s.state.OpenForm(console.ModeCreate, nil)
		return false, nil
	case "edit", "invite":
		league, err := s.row(arg)
		if err != nil {
			return false, err
		}
		mode := console.ModeEdit
		if cmd == "invite" {
			mode = console.ModeInvite
		}
		s.state.OpenForm(mode, league)
		return false, nil
	case "delete":
		league, err := s.row(arg)
		if err != nil {
			return false, err
		}
		return false, s.state.Remove(ctx, league.ID)
	case "set":
		field, value, _ := strings.Cut(arg, " ")
		return false, s.state.SetField(field, strings.TrimSpace(value))
	case "email":
		s.state.SetInviteEmail(arg)
		return false, nil
	case "save":
		return false, s.state.Save(ctx)
	case "send":
		if s.state.Active == nil {
			return false, console.ErrNoActiveForm
		}
		return false, s.state.Invite(ctx, s.state.Active.ID)
	case "cancel":
		s.state.CloseForm()
		return false, nil
	default:
		return false, fmt.Errorf("unknown command %q, type help", cmd)
	}
}

// row resolves a 1-based row number from the list.
func (s *shell) row(arg string) (*model.League, error) {
	n, err := strconv.Atoi(arg)
	if err != nil || n < 1 || n > len(s.state.Leagues) {
		return nil, fmt.Errorf("no league in row %q", arg)
	}
	league := s.state.Leagues[n-1]
	return &league, nil
}

// report shows a failed action to the user. Transport failures are
// already logged by the state.
func (s *shell) report(err error) {
	if err == nil {
		return
	}
	var terr *console.TransportError
	if errors.As(err, &terr) {
		return
	}
	fmt.Fprintf(s.out, "! %v\n", err)
}

func (s *shell) render() error {
	return s.view.Render(s.out, s.state)
}
