package browser

import (
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/tonetui/tone/internal/errdef"
	"github.com/tonetui/tone/internal/resource"
)

// Op names what a parsed command asks the session to do.
type Op int

const (
	// OpNone is an empty buffer; nothing happens.
	OpNone Op = iota
	// OpSwitch pushes a view of Command.Kind onto the stack.
	OpSwitch
	// OpQuit exits the program.
	OpQuit
	// OpHelp opens the help overlay.
	OpHelp
	// OpBack pops the current view.
	OpBack
	// OpLogs opens the log overlay.
	OpLogs
)

// Command is the parsed form of a ':' buffer submission.
type Command struct {
	Op   Op
	Kind resource.Kind
}

// Interpret parses the ':' buffer. The trimmed buffer is matched whole:
// either a built-in command or a resource alias. Anything else is an
// invalid command, surfaced on the status line with no state change.
func Interpret(input string) (Command, error) {
	token := strings.TrimSpace(input)
	switch token {
	case "":
		return Command{Op: OpNone}, nil
	case "q", "quit":
		return Command{Op: OpQuit}, nil
	case "help":
		return Command{Op: OpHelp}, nil
	case "back":
		return Command{Op: OpBack}, nil
	case "logs":
		return Command{Op: OpLogs}, nil
	}
	kind, err := resource.ResolveAlias(token)
	if err != nil {
		return Command{}, errdef.New(errdef.CodeInvalidCommand, "Unknown command: %s", token)
	}
	return Command{Op: OpSwitch, Kind: kind}, nil
}

// Suggest returns completions for the ':' buffer, best match first. An
// empty buffer lists every resource alias.
func Suggest(input string) []string {
	input = strings.TrimSpace(input)
	aliases := resource.Aliases()
	if input == "" {
		return aliases
	}
	ranks := fuzzy.RankFindNormalizedFold(input, aliases)
	sort.SliceStable(ranks, func(i, j int) bool { return ranks[i].Distance < ranks[j].Distance })
	targets := make([]string, len(ranks))
	for i, rank := range ranks {
		targets[i] = rank.Target
	}
	return targets
}
