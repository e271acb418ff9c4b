package cli

import (
	"fmt"

	"github.com/lungarella-raffaele/marc/internal/model"
	"github.com/lungarella-raffaele/marc/internal/tags"
	"github.com/lungarella-raffaele/marc/internal/ui"
)

// indexed carries a record with its 1-based position in the full list,
// so printed indexes stay valid selectors even on filtered output.
type indexed struct {
	n   int
	rec model.Record
}

type logFilter struct {
	tag    string
	hasTag bool
	done   bool
	undone bool
}

func filterRecords(records []model.Record, f logFilter) []indexed {
	out := make([]indexed, 0, len(records))
	for i, r := range records {
		// untagged records never match a tag filter
		if f.hasTag && (r.Tag == "" || r.Tag != f.tag) {
			continue
		}
		if f.done && !r.Done {
			continue
		}
		if f.undone && r.Done {
			continue
		}
		out = append(out, indexed{n: i + 1, rec: r})
	}
	return out
}

// -------------- rendering helpers --------------

func stats(records []model.Record) (done, pending int) {
	for _, r := range records {
		if r.Done {
			done++
		} else {
			pending++
		}
	}
	return
}

func headerLine(records []model.Record) string {
	d, p := stats(records)
	return fmt.Sprintf("%s  %s %d  %s %d  %s %d",
		ui.C(ui.Current().Title, "Marc"),
		ui.C(ui.Current().Success, ui.Current().SymDone), d,
		ui.C(ui.Current().Pending, ui.Current().SymUnchecked), p,
		ui.C(ui.Current().Accent, "Total"), len(records),
	)
}

func flatLines(items []indexed) []string {
	if len(items) == 0 {
		return []string{ui.C(ui.Current().Muted, "no records")}
	}
	out := make([]string, 0, len(items))
	for _, it := range items {
		idx := fmt.Sprintf("%2d.", it.n)
		box := ui.Current().BoxUnchecked
		color := ui.Current().Muted
		if it.rec.Done {
			box, color = ui.Current().BoxChecked, ui.Current().Success
		}
		content := it.rec.Content
		if r := []rune(content); len(r) > 80 {
			content = string(r[:77]) + "..."
		}
		line := fmt.Sprintf("%s %s %s", ui.Dim(idx), ui.C(color, box), content)
		if it.rec.Tag != "" {
			line += " " + ui.Badge(it.rec.Tag)
		}
		out = append(out, line)
	}
	return out
}

func tagLines(counts []tags.Count) []string {
	if len(counts) == 0 {
		return []string{ui.C(ui.Current().Muted, "no tags")}
	}
	out := make([]string, 0, len(counts))
	for _, c := range counts {
		n := fmt.Sprintf("%d record(s)", c.N)
		if c.N == 0 {
			n = "unused"
		}
		out = append(out, fmt.Sprintf("%s  %s", ui.Badge(c.Name), ui.C(ui.Current().Muted, n)))
	}
	return out
}
