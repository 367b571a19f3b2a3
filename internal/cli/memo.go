package cli

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"memo/internal/memos/data"
	"memo/internal/memos/service"
)

const summaryWidth = 60

func runAdd(ctx context.Context, args []string, svc service.MemoService) int {
	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, "Error: memo text required")
		fmt.Fprintln(os.Stderr, "Usage: memo add \"Memo text\"")
		return 1
	}

	memo, err := svc.Add(ctx, strings.Join(args, " "))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error adding memo: %v\n", err)
		return 1
	}

	fmt.Fprintf(stdout, "Added: %s\n", memo.Summary(summaryWidth))
	fmt.Fprintf(stdout, "ID: %s\n", memo.ID)
	fmt.Fprintf(stdout, "Color: %s  Date: %s\n", memo.ColorHex, memo.DateString())
	return 0
}

func runList(ctx context.Context, args []string, svc service.MemoService) int {
	fs := flag.NewFlagSet("list", flag.ContinueOnError)
	limit := fs.Int("n", 0, "Show only the N most recent memos")

	if err := fs.Parse(args); err != nil {
		return 1
	}

	memos, err := svc.List(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading memos: %v\n", err)
		return 1
	}

	if *limit > 0 && len(memos) > *limit {
		memos = memos[len(memos)-*limit:]
	}

	return printMemos(memos)
}

func runShow(ctx context.Context, args []string, svc service.MemoService) int {
	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, "Error: memo ID required")
		fmt.Fprintln(os.Stderr, "Usage: memo show <memo-id>")
		return 1
	}

	memo, err := svc.Get(ctx, args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	r, g, b := memo.RGB()
	fmt.Fprintf(stdout, "ID:    %s\n", memo.ID)
	fmt.Fprintf(stdout, "Date:  %s\n", memo.DateString())
	fmt.Fprintf(stdout, "Color: %s (rgb %d, %d, %d)\n", memo.ColorHex, r, g, b)
	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, memo.Content)
	return 0
}

func runSearch(ctx context.Context, args []string, svc service.MemoService) int {
	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, "Error: search query required")
		fmt.Fprintln(os.Stderr, "Usage: memo search <query>")
		return 1
	}

	memos, err := svc.Search(ctx, strings.Join(args, " "))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error searching memos: %v\n", err)
		return 1
	}
	return printMemos(memos)
}

func runDelete(ctx context.Context, args []string, svc service.MemoService) int {
	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, "Error: memo ID required")
		fmt.Fprintln(os.Stderr, "Usage: memo delete <memo-id>")
		return 1
	}

	memo, err := svc.Get(ctx, args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	if err := svc.Delete(ctx, memo.ID); err != nil {
		fmt.Fprintf(os.Stderr, "Error deleting memo: %v\n", err)
		return 1
	}

	fmt.Fprintf(stdout, "Deleted: %s\n", memo.Summary(summaryWidth))
	return 0
}

func printMemos(memos []data.Memo) int {
	if len(memos) == 0 {
		fmt.Fprintln(stdout, "No memos found.")
		return 0
	}

	for _, m := range memos {
		fmt.Fprintf(stdout, "[%s] %s %s  %s\n", m.ShortID(), m.DateString(), m.ColorHex, m.Summary(summaryWidth))
	}

	fmt.Fprintf(stdout, "\n%d memo(s)\n", len(memos))
	return 0
}
