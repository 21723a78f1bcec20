package application

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/bnema/serverpacks/internal/domain"
	"github.com/bnema/serverpacks/internal/ports"
)

// ConsolePrefix selects the lines addressed to this console.
const ConsolePrefix = "mod serverpacks"

const consoleUsage = "" +
	"usage: mod serverpacks installpack <packid> <url>  load a server pack\n" +
	"       mod serverpacks refresh                     refresh the models\n"

// Console dispatches operator text commands to the same entry points the side
// channel uses.
type Console struct {
	installer ports.PackInstaller
	refresher ports.Refresher
	out       io.Writer
}

func NewConsole(installer ports.PackInstaller, refresher ports.Refresher, out io.Writer) *Console {
	if out == nil {
		out = io.Discard
	}

	return &Console{
		installer: installer,
		refresher: refresher,
		out:       out,
	}
}

// HandleInput reports whether line was addressed to this console. Unknown or
// incomplete commands print the usage and do nothing else.
func (c *Console) HandleInput(ctx context.Context, line string) bool {
	line = strings.TrimSpace(line)
	rest, ok := strings.CutPrefix(line, ConsolePrefix)
	if !ok || (rest != "" && !startsWithSpace(rest)) {
		return false
	}

	c.Dispatch(ctx, strings.Fields(rest))
	return true
}

// Dispatch runs one already tokenized command.
func (c *Console) Dispatch(ctx context.Context, args []string) {
	if len(args) == 0 {
		c.PrintUsage()
		return
	}

	switch strings.ToLower(args[0]) {
	case "installpack":
		if len(args) < 3 {
			c.PrintUsage()
			return
		}
		c.installer.Install(ctx, domain.PackID(args[1]), args[2])
		c.refresher.Refresh(ctx)
	case "refresh":
		c.refresher.Refresh(ctx)
	default:
		c.PrintUsage()
	}
}

func (c *Console) PrintUsage() {
	_, _ = fmt.Fprint(c.out, consoleUsage)
}

func startsWithSpace(s string) bool {
	return s[0] == ' ' || s[0] == '\t'
}
