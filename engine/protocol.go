package engine

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog/log"

	"jungle/game"
)

// Protocol speaks the line-based referee protocol: whitespace-tokenized
// commands in, newline-terminated replies out, flushed per reply. The first
// token of each line is the command, the rest are arguments.
//
// Commands:
//
//	UGO              it is our turn; reply "IDO x1 y1 x2 y2"
//	HEDID <... move> apply the opponent's move (last 4 tokens), then reply
//	ONEMORE          reset for a new game
//	BYE              end the session
type Protocol struct {
	scanner *bufio.Scanner
	out     *bufio.Writer
	agent   Agent
	player  int
	state   *game.GameState
	rules   game.Rules
}

func NewProtocol(in io.Reader, out io.Writer, agent Agent, player int, rules game.Rules) *Protocol {
	p := &Protocol{
		scanner: bufio.NewScanner(in),
		out:     bufio.NewWriter(out),
		agent:   agent,
		player:  player,
		rules:   rules,
	}
	p.reset()
	return p
}

func (p *Protocol) reset() {
	p.state = game.NewGameState(game.CreateTerrain(), p.rules)
}

// Loop serves referee commands until BYE or EOF. A wrong move from the
// referee aborts the session: the move source is misbehaving.
func (p *Protocol) Loop() error {
	for p.scanner.Scan() {
		fields := strings.Fields(p.scanner.Text())
		if len(fields) == 0 {
			continue
		}
		command, args := fields[0], fields[1:]

		switch command {
		case "UGO":
			if err := p.makeMove(); err != nil {
				return err
			}
		case "HEDID":
			// Leading arguments are referee timing info; the move is the
			// last four tokens.
			if len(args) < 4 {
				return fmt.Errorf("%w: HEDID needs a move", game.ErrWrongMove)
			}
			moveString := strings.Join(args[len(args)-4:], " ")
			if _, done, err := p.state.Update(1-p.player, moveString); err != nil {
				return err
			} else if done {
				continue
			}
			if err := p.makeMove(); err != nil {
				return err
			}
		case "ONEMORE":
			p.reset()
		case "BYE":
			return nil
		default:
			log.Warn().Msgf("ignoring unknown command %q", command)
		}
	}
	return p.scanner.Err()
}

func (p *Protocol) makeMove() error {
	move, ok, _ := p.agent.FindMove(p.state, p.player)
	moveString := game.PassEncoding
	if ok {
		moveString = move.String()
	}
	if _, _, err := p.state.Update(p.player, moveString); err != nil {
		return err
	}
	return p.say("IDO " + moveString)
}

func (p *Protocol) say(line string) error {
	if _, err := fmt.Fprintln(p.out, line); err != nil {
		return err
	}
	return p.out.Flush()
}
