package workload

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"
)

type OpKind int

const (
	OpInsert OpKind = iota
	OpRemove
	OpContains
)

var opKindNames = []string{"insert", "remove", "contains"}

func (k OpKind) String() string {
	return opKindNames[k]
}

// Op is a single operation against a tree.
type Op struct {
	Kind OpKind
	Key  string
	// Line is the 1-based source line, or 0 when the op did not come from a file.
	Line int
}

// FromKeys inserts every key of inserts and then removes every key of removes.
func FromKeys(inserts, removes []string) []Op {
	ops := make([]Op, 0, len(inserts)+len(removes))
	for _, k := range inserts {
		ops = append(ops, Op{Kind: OpInsert, Key: k})
	}
	for _, k := range removes {
		ops = append(ops, Op{Kind: OpRemove, Key: k})
	}

	return ops
}

// ParseOps reads one operation per line. A line is either "VERB KEY" with
// VERB one of insert, remove or contains, or a bare KEY meaning insert.
// VERB and KEY may be separated by any run of whitespace.
// Blank lines and lines starting with '#' are skipped.
func ParseOps(r io.Reader) ([]Op, error) {
	var ops []Op

	scanner := bufio.NewScanner(r)
	for n := 1; scanner.Scan(); n++ {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		op := Op{Kind: OpInsert, Key: line, Line: n}
		if i := strings.IndexFunc(line, unicode.IsSpace); i > 0 {
			verb, rest := line[:i], line[i:]
			for k, name := range opKindNames {
				if strings.EqualFold(verb, name) {
					op.Kind = OpKind(k)
					op.Key = strings.TrimSpace(rest)
					break
				}
			}
		}

		ops = append(ops, op)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read ops: %w", err)
	}

	return ops, nil
}

func ReadOpsFile(path string) ([]Op, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open ops file: %w", err)
	}
	defer f.Close()

	ops, err := ParseOps(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return ops, nil
}
