package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"
	"github.com/xvzc/ordtree/internal/datastruct/tree"
	"github.com/xvzc/ordtree/internal/workload"
)

// Result is everything a renderer may print about a finished run.
type Result struct {
	Comparator string
	Descending bool
	Set        tree.OrderedSet[string]
	Compare    tree.Comparator[string]
	Report     workload.Report
}

const emptyText = "(empty)"

// Keys prints the keys in order as a bullet list.
func Keys(w io.Writer, set tree.OrderedSet[string]) error {
	if set.Empty() {
		_, err := fmt.Fprintln(w, emptyText)
		return err
	}

	items := make([]pterm.BulletListItem, 0, set.Size())
	for k := range set.All() {
		items = append(items, pterm.BulletListItem{Level: 0, Text: k})
	}

	s, err := pterm.DefaultBulletList.WithItems(items).Srender()
	if err != nil {
		return err
	}

	_, err = io.WriteString(w, s)
	return err
}

// Shape prints the structure of the tree. Each child is tagged with the
// side it hangs on, found by comparing it with its parent.
func Shape(w io.Writer, set tree.OrderedSet[string], cmp tree.Comparator[string]) error {
	if set.Empty() {
		_, err := fmt.Fprintln(w, emptyText)
		return err
	}

	var (
		list pterm.LeveledList
		path []string
	)
	set.Levels(func(depth int, key string) {
		path = append(path[:depth], key)

		text := key
		if depth > 0 {
			if tree.OrderingOf(cmp(key, path[depth-1])) == tree.Less {
				text = "L " + key
			} else {
				text = "R " + key
			}
		}

		list = append(list, pterm.LeveledListItem{Level: depth, Text: text})
	})

	s, err := pterm.DefaultTree.WithRoot(putils.TreeFromLeveledList(list)).Srender()
	if err != nil {
		return err
	}

	_, err = io.WriteString(w, s)
	return err
}

type jsonResult struct {
	Comparator string          `json:"comparator"`
	Descending bool            `json:"descending"`
	Keys       []string        `json:"keys"`
	Size       int             `json:"size"`
	Height     int             `json:"height"`
	Report     workload.Report `json:"report"`
}

// JSON writes the result as a single indented JSON document.
func JSON(w io.Writer, res Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(jsonResult{
		Comparator: res.Comparator,
		Descending: res.Descending,
		Keys:       res.Set.Snapshot(),
		Size:       res.Set.Size(),
		Height:     res.Set.Height(),
		Report:     res.Report,
	})
}

// Summary prints the tree statistics and operation counts.
func Summary(w io.Writer, res Result) error {
	order := res.Comparator
	if res.Descending {
		order += " (descending)"
	}

	items := []pterm.BulletListItem{
		{Level: 0, Text: "COMPARATOR : " + order},
		{Level: 0, Text: "SIZE       : " + strconv.Itoa(res.Set.Size())},
		{Level: 0, Text: "HEIGHT     : " + strconv.Itoa(res.Set.Height())},
		{Level: 0, Text: fmt.Sprintf(
			"OPS        : %d inserted, %d duplicate, %d removed, %d missing",
			res.Report.Inserted,
			res.Report.Duplicates,
			res.Report.Removed,
			res.Report.Missing,
		)},
	}

	if res.Report.Hits+res.Report.Misses > 0 {
		items = append(items, pterm.BulletListItem{
			Level: 0,
			Text:  fmt.Sprintf("LOOKUPS    : %d found, %d not found", res.Report.Hits, res.Report.Misses),
		})
	}

	s, err := pterm.DefaultBulletList.WithItems(items).Srender()
	if err != nil {
		return err
	}

	_, err = io.WriteString(w, s)
	return err
}
