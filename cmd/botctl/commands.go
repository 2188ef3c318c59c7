package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dshills/offsettree/internal/config"
	"github.com/dshills/offsettree/internal/inspect"
	"github.com/dshills/offsettree/internal/script"
	"github.com/dshills/offsettree/internal/snapshot"
	"github.com/dshills/offsettree/internal/watch"
	"github.com/dshills/offsettree/offsettree"
)

// buildTree loads cfg (falling back to built-in defaults when cfgPath is
// empty) and constructs a Tree for path, using cfg.ScriptPath's Lua
// break-predicate instead of offsettree's own UTF-8/newline scan when one
// is configured.
func buildTree(cfgPath, path string) (*offsettree.Tree, *config.Config, error) {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, nil, fmt.Errorf("loading config: %w", err)
	}

	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var opts []offsettree.Option
	if cfg.DebugInvariants {
		opts = append(opts, offsettree.WithDebugInvariants())
	}
	if cfg.UseNodePool {
		opts = append(opts, offsettree.WithPool(offsettree.NewNodePool()))
	}

	if cfg.ScriptPath != "" {
		tok, err := script.Load(cfg.ScriptPath)
		if err != nil {
			return nil, nil, fmt.Errorf("loading break script: %w", err)
		}
		defer tok.Close()

		offsets, err := tok.ScanLineStarts(buf)
		if err != nil {
			return nil, nil, fmt.Errorf("running break script: %w", err)
		}
		tree, err := offsettree.NewFromOffsets(offsets, opts...)
		if err != nil {
			return nil, nil, fmt.Errorf("building tree: %w", err)
		}
		return tree, cfg, nil
	}

	tree, err := offsettree.New(buf, opts...)
	if err != nil {
		return nil, nil, fmt.Errorf("building tree: %w", err)
	}
	return tree, cfg, nil
}

func runInspect(args []string) int {
	fs := flag.NewFlagSet("inspect", flag.ContinueOnError)
	cfgPath := fs.String("config", "", "path to botctl config file")
	themeName := fs.String("theme", "", "balance-factor color theme (overrides config)")
	noTTY := fs.Bool("no-tty", false, "print a one-shot ASCII layout instead of an interactive screen")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: botctl inspect [options] <file>")
		return 2
	}

	tree, cfg, err := buildTree(*cfgPath, fs.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "botctl: %v\n", err)
		return 1
	}

	theme := inspect.Theme(cfg.InspectTheme)
	if *themeName != "" {
		theme = inspect.Theme(*themeName)
	}

	if *noTTY {
		if err := inspect.Render(os.Stdout, tree, inspect.TerminalWidth(int(os.Stdout.Fd()))); err != nil {
			fmt.Fprintf(os.Stderr, "botctl: %v\n", err)
			return 1
		}
		return 0
	}

	if err := inspect.Run(tree, inspect.Config{Theme: theme}); err != nil {
		fmt.Fprintf(os.Stderr, "botctl: %v\n", err)
		return 1
	}
	return 0
}

func runDump(args []string) int {
	fs := flag.NewFlagSet("dump", flag.ContinueOnError)
	cfgPath := fs.String("config", "", "path to botctl config file")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: botctl dump [options] <file>")
		return 2
	}

	tree, _, err := buildTree(*cfgPath, fs.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "botctl: %v\n", err)
		return 1
	}

	data, err := snapshot.Dump(tree)
	if err != nil {
		fmt.Fprintf(os.Stderr, "botctl: %v\n", err)
		return 1
	}
	fmt.Println(string(data))
	return 0
}

func runDiff(args []string) int {
	fs := flag.NewFlagSet("diff", flag.ContinueOnError)
	cfgPath := fs.String("config", "", "path to botctl config file")
	pattern := fs.String("pattern", "", "restrict the diff to JSON paths matching this glob (e.g. lines.3)")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 2 {
		fmt.Fprintln(os.Stderr, "usage: botctl diff [options] <fileA> <fileB>")
		return 2
	}

	treeA, _, err := buildTree(*cfgPath, fs.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "botctl: %v\n", err)
		return 1
	}
	treeB, _, err := buildTree(*cfgPath, fs.Arg(1))
	if err != nil {
		fmt.Fprintf(os.Stderr, "botctl: %v\n", err)
		return 1
	}

	dumpA, err := snapshot.Dump(treeA)
	if err != nil {
		fmt.Fprintf(os.Stderr, "botctl: %v\n", err)
		return 1
	}
	dumpB, err := snapshot.Dump(treeB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "botctl: %v\n", err)
		return 1
	}

	changes := snapshot.Diff(dumpA, dumpB, *pattern)
	if len(changes) == 0 {
		fmt.Println("no line offsets changed")
		return 0
	}
	for _, c := range changes {
		fmt.Printf("line %d: %d -> %d\n", c.Line, c.OldOffset, c.NewOffset)
	}
	return 0
}

func runWatch(args []string) int {
	fs := flag.NewFlagSet("watch", flag.ContinueOnError)
	cfgPath := fs.String("config", "", "path to botctl config file")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: botctl watch [options] <file>")
		return 2
	}
	path := fs.Arg(0)

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "botctl: loading config: %v\n", err)
		return 1
	}

	reg, err := watch.NewRegistry()
	if err != nil {
		fmt.Fprintf(os.Stderr, "botctl: %v\n", err)
		return 1
	}
	defer reg.Close()

	if err := reg.Watch(path); err != nil {
		fmt.Fprintf(os.Stderr, "botctl: %v\n", err)
		return 1
	}

	_, tree, _ := reg.Lookup(path)
	lastDump, err := snapshot.Dump(tree)
	if err != nil {
		fmt.Fprintf(os.Stderr, "botctl: %v\n", err)
		return 1
	}

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)

	debounce := time.Duration(cfg.WatchDebounce) * time.Millisecond
	ticker := time.NewTicker(debounce + 10*time.Millisecond)
	defer ticker.Stop()

	fmt.Printf("watching %s (%d lines)\n", path, tree.Len())

	for {
		select {
		case <-sigs:
			return 0
		case err := <-reg.Errors():
			fmt.Fprintf(os.Stderr, "botctl: watch: %v\n", err)
		case <-ticker.C:
			_, tree, ok := reg.Lookup(path)
			if !ok {
				continue
			}
			curDump, err := snapshot.Dump(tree)
			if err != nil {
				fmt.Fprintf(os.Stderr, "botctl: %v\n", err)
				continue
			}
			changes := snapshot.Diff(lastDump, curDump, "")
			if len(changes) > 0 {
				fmt.Printf("%s changed: %d line(s) moved, now %d lines\n", path, len(changes), tree.Len())
			}
			lastDump = curDump
		}
	}
}
