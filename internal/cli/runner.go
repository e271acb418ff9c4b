package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/lungarella-raffaele/marc/internal/model"
	"github.com/lungarella-raffaele/marc/internal/store/jsonstore"
	"github.com/lungarella-raffaele/marc/internal/tags"
	"github.com/lungarella-raffaele/marc/internal/tui"
	"github.com/lungarella-raffaele/marc/internal/ui"
)

// Options carry what the command layer needs from main: the store
// (explicit path, no ambient state) and build metadata.
type Options struct {
	Store   *jsonstore.Store
	Version string
}

// Run dispatches subcommands and returns an exit code (0 ok, 1 error, 2 usage).
func Run(args []string, opt Options) int {
	if len(args) == 0 {
		PrintHelp()
		return 2
	}
	cmd, a := args[0], args[1:]

	switch strings.ToLower(cmd) {
	case "help", "-h", "--help":
		PrintHelp()
		return 0

	case "version", "-v", "--version":
		fmt.Printf("marc version %s\n", opt.Version)
		return 0

	case "add":
		return runWith(a, addSpecs, "usage: marc add <text>... [-t|--tag <name>]", func(p *parsedArgs) int {
			return doAdd(opt.Store, p)
		})

	case "log":
		return runWith(a, logSpecs, "usage: marc log [-t|--tag <name>] [-d|--done] [-u|--undone]", func(p *parsedArgs) int {
			return doLog(opt.Store, p)
		})

	case "done":
		return runWith(a, nil, "usage: marc done <selector>", func(p *parsedArgs) int {
			return doDone(opt.Store, p)
		})

	case "rm":
		return runWith(a, rmSpecs, "usage: marc rm <selector> | -d|--done", func(p *parsedArgs) int {
			return doRemove(opt.Store, p)
		})

	case "tag":
		return runWith(a, tagSpecs, "usage: marc tag [-c|--create <name>] [-p|--prune]", func(p *parsedArgs) int {
			return doTag(opt.Store, p)
		})

	case "edit":
		return runWith(a, editSpecs, "usage: marc edit", func(p *parsedArgs) int {
			return doEdit(opt.Store)
		})
	}

	ui.Fail("unknown subcommand: " + cmd)
	fmt.Fprintln(os.Stderr)
	PrintHelp()
	return 2
}

// runWith parses subcommand args, handles -h/--help, and calls fn.
func runWith(args []string, specs []argSpec, usage string, fn func(*parsedArgs) int) int {
	p, err := parseArgs(args, specs)
	if err != nil {
		ui.Fail(err.Error())
		fmt.Fprintln(os.Stderr, ui.C(ui.Current().Muted, usage))
		return 2
	}
	if p.flag("help") {
		fmt.Println(usage)
		return 0
	}
	return fn(p)
}

func PrintHelp() {
	fmt.Printf(`marc - a tiny TODO annotation CLI

Usage:
  marc <subcommand> [args]

Subcommands:
  add <text>... [-t|--tag <name>]       Add one record per argument
  log [-t|--tag <name>] [-d] [-u]       List records, optionally filtered
  done <selector>                       Mark a record done
  rm <selector> | -d|--done             Remove a record, or all done records
  tag [-c|--create <name>] [-p|--prune] List tags / manage the vocabulary
  edit                                  Interactive editor
  version                               Print version

A selector is a 1-based index, a record-id prefix, or a unique
content match. Lines piped to 'marc add' become one record each.

Examples:
  marc add "buy milk" --tag errand
  marc log --tag errand
  marc done 2
  marc rm --done
`)
}

// -------------- subcommand impls ----------------

func doAdd(st *jsonstore.Store, p *parsedArgs) int {
	tag, _ := p.option("tag")
	contents := append(p.values, stdinLines()...)
	if len(contents) == 0 {
		ui.Fail("add: nothing to add")
		return 2
	}

	f, err := st.Load()
	if err != nil {
		ui.Fail("load: " + err.Error())
		return 1
	}
	for _, c := range contents {
		rec := model.New(c, tag)
		if !rec.Valid() {
			ui.Fail("add: empty content")
			return 2
		}
		f.Records = append(f.Records, rec)
	}
	f.Tags = tags.Merge(f.Tags, strings.TrimSpace(tag))
	if err := st.Save(f); err != nil {
		ui.Fail("save: " + err.Error())
		return 1
	}
	ui.OK(fmt.Sprintf("added %d record(s)", len(contents)))
	return 0
}

func doLog(st *jsonstore.Store, p *parsedArgs) int {
	if p.flag("done") && p.flag("undone") {
		ui.Fail("log: --done and --undone exclude each other")
		return 2
	}
	f, err := st.Load()
	if err != nil {
		ui.Fail("load: " + err.Error())
		return 1
	}

	filter := logFilter{done: p.flag("done"), undone: p.flag("undone")}
	filter.tag, filter.hasTag = p.option("tag")

	d, _ := stats(f.Records)
	lines := []string{
		headerLine(f.Records),
		ui.C(ui.Current().Muted, ui.ProgressBar(d, len(f.Records), 28)),
		"",
	}
	lines = append(lines, flatLines(filterRecords(f.Records, filter))...)
	lines = append(lines, "")
	lines = append(lines, ui.C(ui.Current().Muted, "Tip: add with `marc add \"buy milk\" --tag errand`"))
	ui.Panel(lines)
	return 0
}

func doDone(st *jsonstore.Store, p *parsedArgs) int {
	if len(p.values) != 1 {
		ui.Fail("usage: marc done <selector>")
		return 2
	}
	f, err := st.Load()
	if err != nil {
		ui.Fail("load: " + err.Error())
		return 1
	}
	idx, err := resolveSelector(f.Records, p.values[0])
	if err != nil {
		ui.Fail("done: " + err.Error())
		fmt.Fprintln(os.Stderr, ui.C(ui.Current().Muted, "Hint: run `marc log` to see valid indexes"))
		return 1
	}
	f.Records[idx].Done = true
	if err := st.Save(f); err != nil {
		ui.Fail("save: " + err.Error())
		return 1
	}
	ui.OK("done: " + f.Records[idx].Content)
	return 0
}

func doRemove(st *jsonstore.Store, p *parsedArgs) int {
	bulk := p.flag("done")
	if bulk == (len(p.values) == 1) { // exactly one of flag / selector
		ui.Fail("usage: marc rm <selector> | -d|--done")
		return 2
	}

	f, err := st.Load()
	if err != nil {
		ui.Fail("load: " + err.Error())
		return 1
	}

	if bulk {
		kept := f.Records[:0:0]
		for _, r := range f.Records {
			if !r.Done {
				kept = append(kept, r)
			}
		}
		removed := len(f.Records) - len(kept)
		if removed == 0 {
			ui.OK("nothing to remove")
			return 0
		}
		f.Records = kept
		if err := st.Save(f); err != nil {
			ui.Fail("save: " + err.Error())
			return 1
		}
		ui.OK(fmt.Sprintf("removed %d done record(s)", removed))
		return 0
	}

	idx, err := resolveSelector(f.Records, p.values[0])
	if err != nil {
		ui.Fail("rm: " + err.Error())
		fmt.Fprintln(os.Stderr, ui.C(ui.Current().Muted, "Hint: run `marc log` to see valid indexes"))
		return 1
	}
	content := f.Records[idx].Content
	f.Records = append(f.Records[:idx], f.Records[idx+1:]...)
	if err := st.Save(f); err != nil {
		ui.Fail("save: " + err.Error())
		return 1
	}
	ui.OK("removed: " + content)
	return 0
}

func doTag(st *jsonstore.Store, p *parsedArgs) int {
	name, create := p.option("create")
	prune := p.flag("prune")
	if create && prune {
		ui.Fail("tag: choose one of --create / --prune")
		return 2
	}

	f, err := st.Load()
	if err != nil {
		ui.Fail("load: " + err.Error())
		return 1
	}

	switch {
	case create:
		name = strings.TrimSpace(name)
		if name == "" {
			ui.Fail("tag: empty tag name")
			return 2
		}
		before := len(f.Tags)
		f.Tags = tags.Merge(f.Tags, name)
		if len(f.Tags) == before {
			ui.OK("tag already exists: " + name)
			return 0
		}
		if err := st.Save(f); err != nil {
			ui.Fail("save: " + err.Error())
			return 1
		}
		ui.OK("created tag: " + name)
		return 0

	case prune:
		kept, removed := tags.Prune(f.Tags, f.Records)
		if len(removed) == 0 {
			ui.OK("nothing to prune")
			return 0
		}
		f.Tags = kept
		if err := st.Save(f); err != nil {
			ui.Fail("save: " + err.Error())
			return 1
		}
		ui.OK(fmt.Sprintf("pruned %d tag(s): %s", len(removed), strings.Join(removed, ", ")))
		return 0
	}

	lines := []string{ui.C(ui.Current().Title, "Tags"), ""}
	lines = append(lines, tagLines(tags.View(f.Tags, f.Records))...)
	ui.Panel(lines)
	return 0
}

func doEdit(st *jsonstore.Store) int {
	f, err := st.Load()
	if err != nil {
		ui.Fail("load: " + err.Error())
		return 1
	}
	if err := tui.Run(st, f); err != nil {
		ui.Fail("edit: " + err.Error())
		return 1
	}
	return 0
}
