package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	eng "tilewe-engine/tilewe"
)

var errUsage = errors.New("usage")

// session drives one board from a line-oriented command stream.
type session struct {
	out    io.Writer
	logger *zap.Logger
	rng    *rand.Rand

	id    uuid.UUID
	board *eng.Board
}

func newSession(out io.Writer, logger *zap.Logger, seed int64) *session {
	s := &session{out: out, logger: logger, rng: rand.New(rand.NewSource(seed))}
	if err := s.newGame(eng.MaxPlayers, eng.StartOwnCorner); err != nil {
		panic(err)
	}
	return s
}

// run reads commands until quit or end of input.
func (s *session) run(in io.Reader) error {
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		tokens := strings.Fields(scanner.Text())
		if len(tokens) == 0 { // ignore blank lines
			continue
		}
		if !s.handle(tokens) {
			return nil
		}
	}
	return scanner.Err()
}

// handle executes one command and reports whether to keep reading.
func (s *session) handle(tokens []string) bool {
	cmd, args := strings.ToLower(tokens[0]), tokens[1:]
	if s.logger != nil {
		s.logger.Debug("command",
			zap.String("game_id", s.id.String()),
			zap.String("cmd", cmd),
			zap.Strings("args", args),
		)
	}

	var err error
	switch cmd {
	case "quit":
		return false
	case "isready":
		s.println("readyok")
	case "newgame":
		err = s.cmdNewGame(args)
	case "moves":
		err = s.cmdMoves(args)
	case "count":
		err = s.cmdCount(args)
	case "legal":
		err = s.cmdLegal(args)
	case "push":
		err = s.cmdPush(args)
	case "pop":
		if err = s.board.Pop(); err == nil {
			s.println("ok")
		}
	case "random":
		err = s.cmdRandom()
	case "board":
		s.println(s.board.String())
	case "status":
		s.cmdStatus()
	case "history":
		s.println(joinMoves(s.board.History()))
	case "winners":
		s.println(joinColors(s.board.Winners()))
	case "geometry":
		err = s.cmdGeometry(args)
	default:
		err = fmt.Errorf("unknown command %q", cmd)
	}
	if err != nil {
		if s.logger != nil {
			s.logger.Warn("command failed",
				zap.String("game_id", s.id.String()),
				zap.String("cmd", cmd),
				zap.Error(err),
			)
		}
		s.println("error " + err.Error())
	}
	return true
}

func (s *session) println(line string) {
	fmt.Fprintln(s.out, line)
}

func (s *session) newGame(players int, rule eng.StartRule) error {
	b, err := eng.NewBoard(players, eng.WithStartRule(rule))
	if err != nil {
		return err
	}
	s.board = b
	s.id = uuid.New()
	if s.logger != nil {
		s.logger.Info("new game",
			zap.String("game_id", s.id.String()),
			zap.Int("players", players),
			zap.String("start", rule.String()),
		)
	}
	return nil
}

// newgame [players] [any]
func (s *session) cmdNewGame(args []string) error {
	players, rule := eng.MaxPlayers, eng.StartOwnCorner
	for _, a := range args {
		if strings.EqualFold(a, "any") {
			rule = eng.StartAnyCorner
			continue
		}
		n, err := strconv.Atoi(a)
		if err != nil {
			return fmt.Errorf("%w: newgame [players] [any]", errUsage)
		}
		players = n
	}
	if err := s.newGame(players, rule); err != nil {
		return err
	}
	s.println("ok " + s.id.String())
	return nil
}

// colorArg reads an optional color argument, defaulting to the color to move.
func (s *session) colorArg(args []string) (eng.Color, error) {
	if len(args) == 0 {
		return s.board.CurrentPlayer(), nil
	}
	if n, err := strconv.Atoi(args[0]); err == nil {
		return eng.Color(n), nil
	}
	for c := eng.Color(0); c < eng.MaxPlayers; c++ {
		if strings.EqualFold(args[0], c.String()) {
			return c, nil
		}
	}
	return eng.NoColor, fmt.Errorf("%w: unknown color %q", eng.ErrPlayerOutOfRange, args[0])
}

func (s *session) cmdMoves(args []string) error {
	c, err := s.colorArg(args)
	if err != nil {
		return err
	}
	moves, err := s.board.GenMovesFor(c)
	if err != nil {
		return err
	}
	s.println(joinMoves(moves))
	return nil
}

func (s *session) cmdCount(args []string) error {
	c, err := s.colorArg(args)
	if err != nil {
		return err
	}
	n, err := s.board.NumMovesFor(c)
	if err != nil {
		return err
	}
	s.println(strconv.Itoa(n))
	return nil
}

func (s *session) cmdLegal(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: legal <move>", errUsage)
	}
	m, err := eng.ParseMove(args[0])
	if err != nil {
		return err
	}
	s.println(strconv.FormatBool(s.board.IsLegal(m)))
	return nil
}

func (s *session) cmdPush(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: push <move>", errUsage)
	}
	m, err := eng.ParseMove(args[0])
	if err != nil {
		return err
	}
	if err := s.board.Push(m); err != nil {
		return err
	}
	s.afterPush(m)
	s.println("ok")
	return nil
}

func (s *session) cmdRandom() error {
	if s.board.Finished() {
		return eng.ErrGameFinished
	}
	moves := s.board.GenMoves()
	m := moves[s.rng.Intn(len(moves))]
	if err := s.board.Push(m); err != nil {
		return err
	}
	s.afterPush(m)
	s.println(m.String())
	return nil
}

func (s *session) afterPush(m eng.Move) {
	if s.logger == nil {
		return
	}
	s.logger.Debug("move played",
		zap.String("game_id", s.id.String()),
		zap.Stringer("move", m),
		zap.Int("ply", s.board.Ply()),
	)
	if s.board.Finished() {
		s.logger.Info("game finished",
			zap.String("game_id", s.id.String()),
			zap.Int("ply", s.board.Ply()),
			zap.Ints("scores", s.board.Scores()),
			zap.Stringers("winners", s.board.Winners()),
		)
	}
}

// status prints "turn <color> ply <n> finished <bool> scores <s0> ..."
func (s *session) cmdStatus() {
	var sb strings.Builder
	fmt.Fprintf(&sb, "turn %s ply %d finished %t scores", s.board.CurrentPlayer(), s.board.Ply(), s.board.Finished())
	for _, sc := range s.board.Scores() {
		sb.WriteString(" " + strconv.Itoa(sc))
	}
	s.println(sb.String())
}

// geometry <piece> [rotation]
func (s *session) cmdGeometry(args []string) error {
	if len(args) < 1 || len(args) > 2 {
		return fmt.Errorf("%w: geometry <piece> [rotation]", errUsage)
	}
	p, err := eng.ParsePiece(args[0])
	if err != nil {
		return err
	}
	r := eng.North
	if len(args) == 2 {
		if r, err = eng.ParseRotation(args[1]); err != nil {
			return err
		}
	}
	g := s.board.Geometry()
	s.println(fmt.Sprintf("piece %s%s canonical %s", p, r, g.Canonical(p, r)))
	s.println("tiles " + joinCoords(g.Tiles(p, r)))
	s.println("contacts " + joinCoords(g.Contacts(p, r)))
	s.println("corners " + joinCoords(g.Corners(p, r)))
	return nil
}

func joinMoves(moves []eng.Move) string {
	parts := make([]string, len(moves))
	for i, m := range moves {
		parts[i] = m.String()
	}
	return strings.Join(parts, " ")
}

func joinColors(colors []eng.Color) string {
	parts := make([]string, len(colors))
	for i, c := range colors {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}

func joinCoords(coords []eng.Coord) string {
	parts := make([]string, len(coords))
	for i, c := range coords {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}
