package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"memo/internal/memos/service"
)

// stdout receives command output; errors always go to os.Stderr.
var stdout io.Writer = os.Stdout

// Run executes the CLI with the given arguments and returns the exit code.
func Run(args []string, svc service.MemoService) int {
	if len(args) == 0 {
		printUsage()
		return 1
	}

	ctx := context.Background()
	command := args[0]
	cmdArgs := args[1:]

	switch command {
	case "add", "a":
		return runAdd(ctx, cmdArgs, svc)
	case "list", "ls", "l":
		return runList(ctx, cmdArgs, svc)
	case "show", "s":
		return runShow(ctx, cmdArgs, svc)
	case "search", "find":
		return runSearch(ctx, cmdArgs, svc)
	case "delete", "rm", "del":
		return runDelete(ctx, cmdArgs, svc)
	case "help", "-h", "--help":
		printUsage()
		return 0
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		return 1
	}
}

func printUsage() {
	fmt.Fprintln(stdout, `memo - colored memo list

Usage: memo [flags] [command] [arguments]

Commands:
  add, a        Add a new memo
                memo add "Buy milk"
  list, ls, l   List memos
                memo list            # one line per memo
                memo list -n 5       # only the 5 most recent
  show, s       Print a memo in full
                memo show <memo-id>
  search, find  Fuzzy search memo contents
                memo search <query>
  delete, rm    Delete a memo
                memo delete <memo-id>
  help          Show this help message

Flags:
  -d, --dir <path>   Memo directory
      --db <uri>     PostgreSQL connection URI (overrides --dir)

Running memo without arguments launches the interactive TUI.
Memo ids may be shortened to any unique prefix of 4 or more characters.`)
}
