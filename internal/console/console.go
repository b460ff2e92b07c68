// Package console is an interactive terminal browser for the directory
// pages. Each command updates the page state and redraws the listing.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/go-andiamo/splitter"
	"github.com/meur/arena/internal/catalog"
	"github.com/meur/arena/internal/filter"
	"github.com/meur/arena/internal/models"
	"github.com/meur/arena/internal/page"
)

// ErrUnknownCommand is returned for input that names no command
var ErrUnknownCommand = errors.New("unknown command")

// View is the page the session is showing
type View string

const (
	ViewTournaments View = "tournaments"
	ViewDirectory   View = "directory"
)

// Session holds the state of one console user
type Session struct {
	out          io.Writer
	view         View
	tournaments  *page.Page[models.Tournament]
	directory    *page.Directory
	suggestLimit int
}

// New creates a session on the tournaments page
func New(set *catalog.Set, out io.Writer, suggestLimit int) *Session {
	return &Session{
		out:          out,
		view:         ViewTournaments,
		tournaments:  page.New(set.Tournaments),
		directory:    page.NewDirectory(set.Players, set.Teams),
		suggestLimit: suggestLimit,
	}
}

// View returns the active page
func (s *Session) View() View {
	return s.view
}

// State returns the filter state of the active page
func (s *Session) State() filter.State {
	if s.view == ViewDirectory {
		return s.directory.State()
	}
	return s.tournaments.State()
}

// Directory exposes the players/teams page
func (s *Session) Directory() *page.Directory {
	return s.directory
}

// Run reads commands from in until EOF or quit. Command errors are printed
// and do not end the session.
func (s *Session) Run(in io.Reader) error {
	fmt.Fprintln(s.out, "Arena directory. Type `help` for commands.")
	s.render()

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(s.out, "> ")
		if !scanner.Scan() {
			fmt.Fprintln(s.out)
			return scanner.Err()
		}
		quit, err := s.Exec(scanner.Text())
		if err != nil {
			fmt.Fprintf(s.out, "error: %v\n", err)
		}
		if quit {
			return nil
		}
	}
}

// Exec runs a single command line
func (s *Session) Exec(line string) (quit bool, err error) {
	args, err := splitArgs(line)
	if err != nil {
		return false, err
	}
	if len(args) == 0 {
		return false, nil
	}

	cmd, rest := strings.ToLower(args[0]), strings.Join(args[1:], " ")
	switch cmd {
	case "quit", "exit":
		return true, nil
	case "help":
		s.help()
		return false, nil
	case "show":
	case "view":
		if err := s.setView(rest); err != nil {
			return false, err
		}
	case "toggle":
		if s.view != ViewDirectory {
			return false, fmt.Errorf("toggle only applies to the directory view")
		}
		s.directory.Toggle()
	case "search":
		s.setSearch(rest)
	case "game":
		if err := s.setOption(filter.Game, filter.ParseOption(rest)); err != nil {
			return false, err
		}
	case "country":
		if err := s.setOption(filter.Country, filter.ParseOption(rest)); err != nil {
			return false, err
		}
	case "status":
		opt, err := models.StatusOption(rest)
		if err != nil {
			return false, err
		}
		if err := s.setOption(filter.Status, opt); err != nil {
			return false, err
		}
	case "reset":
		s.reset()
	case "open":
		return false, s.open(rest)
	default:
		return false, fmt.Errorf("%w: %s", ErrUnknownCommand, cmd)
	}

	s.render()
	return false, nil
}

func (s *Session) setView(arg string) error {
	switch strings.ToLower(arg) {
	case "tournaments":
		s.view = ViewTournaments
	case "directory", "players":
		s.view = ViewDirectory
		s.directory.SetMode(page.ModePlayers)
	case "teams":
		s.view = ViewDirectory
		s.directory.SetMode(page.ModeTeams)
	default:
		return fmt.Errorf("unknown view %q", arg)
	}
	return nil
}

func (s *Session) setSearch(text string) {
	if s.view == ViewDirectory {
		s.directory.SetSearch(text)
		return
	}
	s.tournaments.SetSearch(text)
}

// setOption rejects dimensions the page cannot filter on instead of
// leaving the page in a state that cannot be projected
func (s *Session) setOption(d filter.Dimension, o filter.Option) error {
	if s.view == ViewDirectory {
		if !s.directory.Supports(d) {
			return fmt.Errorf("%w: %s on %s", filter.ErrUnsupportedDimension, d, s.directory.Mode())
		}
		s.directory.Set(d, o)
		return nil
	}
	if !s.tournaments.Supports(d) {
		return fmt.Errorf("%w: %s on tournaments", filter.ErrUnsupportedDimension, d)
	}
	s.tournaments.Set(d, o)
	return nil
}

func (s *Session) reset() {
	if s.view == ViewDirectory {
		s.directory.Reset()
		return
	}
	s.tournaments.Reset()
}

func (s *Session) open(id string) error {
	if id == "" {
		return fmt.Errorf("open needs a record id")
	}
	if s.view == ViewTournaments {
		t, ok := s.tournaments.Find(id)
		if !ok {
			return fmt.Errorf("tournament %q not found", id)
		}
		PrintTournament(s.out, t)
		return nil
	}
	if s.directory.Mode() == page.ModeTeams {
		t, ok := s.directory.FindTeam(id)
		if !ok {
			return fmt.Errorf("team %q not found", id)
		}
		PrintTeam(s.out, t)
		return nil
	}
	p, ok := s.directory.FindPlayer(id)
	if !ok {
		return fmt.Errorf("player %q not found", id)
	}
	PrintPlayer(s.out, p)
	return nil
}

func (s *Session) render() {
	state := s.State()
	title := string(s.view)
	if s.view == ViewDirectory {
		title = s.directory.Mode().String()
	}
	fmt.Fprintf(s.out, "\n[%s] search=%q game=%s status=%s country=%s\n",
		title, state.Search, state.Game, state.Status, state.Country)

	if s.view == ViewTournaments {
		items, err := s.tournaments.View()
		if err != nil {
			fmt.Fprintf(s.out, "error: %v\n", err)
			return
		}
		PrintTournaments(s.out, items)
		if len(items) == 0 {
			s.printSuggestions(s.tournaments.Catalog().Suggest(state.Search, s.suggestLimit))
		}
		return
	}

	view, err := s.directory.View()
	if err != nil {
		fmt.Fprintf(s.out, "error: %v\n", err)
		return
	}
	if view.Mode == page.ModeTeams {
		PrintTeams(s.out, view.Teams)
	} else {
		PrintPlayers(s.out, view.Players)
	}
	if view.Len() == 0 {
		s.printSuggestions(s.directory.Suggest(s.suggestLimit))
	}
}

func (s *Session) printSuggestions(suggestions []string) {
	if len(suggestions) == 0 {
		return
	}
	fmt.Fprintf(s.out, "Did you mean: %s?\n", strings.Join(suggestions, ", "))
}

func (s *Session) help() {
	var res strings.Builder
	res.WriteString("Commands:\n")
	res.WriteString("  view tournaments|players|teams  switch page\n")
	res.WriteString("  toggle                          switch players/teams (keeps search, clears game/country)\n")
	res.WriteString("  search <text>                   case-insensitive name search, empty to clear\n")
	res.WriteString("  game <name|all>                 filter by game\n")
	res.WriteString("  status <upcoming|live|completed|all>  filter tournaments by status\n")
	res.WriteString("  country <name|all>              filter players/teams by country\n")
	res.WriteString("  reset                           clear every filter\n")
	res.WriteString("  show                            redraw the listing\n")
	res.WriteString("  open <id>                       show one record\n")
	res.WriteString("  quit                            leave\n")
	res.WriteString("Values with spaces must be quoted, e.g. game \"COD Warzone\"\n")
	fmt.Fprint(s.out, res.String())
}

// splitArgs splits on spaces while keeping double-quoted values together
func splitArgs(line string) ([]string, error) {
	spaceSplitter, err := splitter.NewSplitter(' ', splitter.DoubleQuotes, splitter.LeftRightDoubleDoubleQuotes)
	if err != nil {
		return nil, err
	}
	parts, err := spaceSplitter.Split(strings.TrimSpace(line))
	if err != nil {
		return nil, err
	}

	args := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.Trim(p, "\"“”")
		if p == "" {
			continue
		}
		args = append(args, p)
	}
	return args, nil
}
