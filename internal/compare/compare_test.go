package compare

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xvzc/ordtree/internal/datastruct/tree"
)

func snapshot(t *testing.T, s *Strategy, keys ...string) []string {
	t.Helper()

	tr := tree.New(s.Compare)
	for _, k := range keys {
		tr.Insert(k)
	}

	return tr.Snapshot()
}

func TestLookup(t *testing.T) {
	tcs := []struct {
		name    string
		opts    Options
		keys    []string
		wantErr error
		expect  []string
	}{
		{
			name:   "natural",
			keys:   []string{"b", "B", "a", "b"},
			expect: []string{"B", "a", "b"},
		},
		{
			name:   "NATURAL",
			opts:   Options{Descending: true},
			keys:   []string{"b", "c", "a"},
			expect: []string{"c", "b", "a"},
		},
		{
			name:   "numeric",
			keys:   []string{"10", "9", "-1.5", "1e2", "100", "9.0"},
			expect: []string{"-1.5", "9", "10", "1e2"},
		},
		{
			name:   "domain",
			keys:   []string{"b.example.com", "example.com", "a.example.com", "EXAMPLE.com.", "example.org", "z.example"},
			expect: []string{"example.com", "a.example.com", "b.example.com", "z.example", "example.org"},
		},
		{
			name:   "collate",
			opts:   Options{Locale: "en"},
			keys:   []string{"b", "a", "B", "é", "e"},
			expect: []string{"a", "b", "B", "e", "é"},
		},
		{
			name:   "expr",
			opts:   Options{Expr: "len(a) - len(b)"},
			keys:   []string{"pear", "fig", "banana", "kiwi"},
			expect: []string{"fig", "pear", "banana"},
		},
		{
			name: "expr",
			opts: Options{},
		},
		{
			name:    "unknown",
			wantErr: ErrUnknownComparator,
		},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			s, err := Lookup(tc.name, tc.opts)
			if tc.expect == nil {
				assert.Error(t, err)
				if tc.wantErr != nil {
					assert.ErrorIs(t, err, tc.wantErr)
				}
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.expect, snapshot(t, s, tc.keys...))
			assert.NoError(t, s.Err())
		})
	}
}

func TestLookup_InvalidOptions(t *testing.T) {
	tcs := []struct {
		name string
		comp string
		opts Options
	}{
		{name: "bad locale", comp: NameCollate, opts: Options{Locale: "not a locale!"}},
		{name: "expr does not compile", comp: NameExpr, opts: Options{Expr: "a +"}},
		{name: "expr is not an int", comp: NameExpr, opts: Options{Expr: "a + b"}},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			s, err := Lookup(tc.comp, tc.opts)
			assert.Error(t, err)
			assert.Nil(t, s)
		})
	}
}

func TestStrategy_Validate(t *testing.T) {
	tcs := []struct {
		name    string
		comp    string
		keys    []string
		wantErr bool
	}{
		{name: "natural accepts anything", comp: NameNatural, keys: []string{"", "x y"}},
		{name: "numeric ok", comp: NameNumeric, keys: []string{"1", " 2.5", "-3e4"}},
		{name: "numeric rejects words", comp: NameNumeric, keys: []string{"1", "two"}, wantErr: true},
		{name: "numeric rejects NaN", comp: NameNumeric, keys: []string{"NaN"}, wantErr: true},
		{name: "domain ok", comp: NameDomain, keys: []string{"example.com", "a.b.c."}},
		{name: "domain rejects empty", comp: NameDomain, keys: []string{""}, wantErr: true},
		{name: "domain rejects empty label", comp: NameDomain, keys: []string{"a..b"}, wantErr: true},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			s, err := Lookup(tc.comp, Options{})
			require.NoError(t, err)

			err = s.ValidateAll(tc.keys)
			if tc.wantErr {
				assert.ErrorIs(t, err, ErrInvalidKey)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCompareNumeric_NonNumbersSortLast(t *testing.T) {
	assert.Negative(t, compareNumeric("5", "abc"))
	assert.Positive(t, compareNumeric("abc", "5"))
	assert.Negative(t, compareNumeric("abc", "abd"))
	assert.Zero(t, compareNumeric("1", "1.0"))
}

func TestNames(t *testing.T) {
	assert.Equal(t,
		[]string{NameCollate, NameDomain, NameExpr, NameNatural, NameNumeric},
		Names(),
	)
}

func TestExpr_RuntimeErrorIsRecorded(t *testing.T) {
	s, err := Lookup(NameExpr, Options{Expr: "int(a) - int(b)"})
	require.NoError(t, err)

	assert.Negative(t, s.Compare("1", "2"))
	assert.NoError(t, s.Err())

	assert.Equal(t, strings.Compare("x", "1"), s.Compare("x", "1"))
	require.Error(t, s.Err())
	assert.Contains(t, s.Err().Error(), "int(a) - int(b)")

	first := s.Err()
	s.Compare("y", "z")
	assert.Equal(t, first, s.Err())
}

func TestCompareDomain(t *testing.T) {
	tcs := []struct {
		name   string
		a, b   string
		assert func(t *testing.T, c int)
	}{
		{
			name:   "decimal escape equals the plain label",
			a:      `\065.com`,
			b:      "a.com",
			assert: func(t *testing.T, c int) { assert.Zero(t, c) },
		},
		{
			name:   "case and trailing dot are ignored",
			a:      "Example.COM.",
			b:      "example.com",
			assert: func(t *testing.T, c int) { assert.Zero(t, c) },
		},
		{
			name:   "escaped dot stays inside the label",
			a:      `a\.b.com`,
			b:      "a.b.com",
			assert: func(t *testing.T, c int) { assert.Negative(t, c) },
		},
		{
			name:   "parent before subdomain",
			a:      "example.com",
			b:      "a.example.com",
			assert: func(t *testing.T, c int) { assert.Negative(t, c) },
		},
		{
			name:   "rightmost label decides first",
			a:      "z.example",
			b:      "a.example.org",
			assert: func(t *testing.T, c int) { assert.Negative(t, c) },
		},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			tc.assert(t, compareDomain(tc.a, tc.b))
		})
	}

	s, err := Lookup(NameDomain, Options{})
	require.NoError(t, err)
	assert.Equal(t, []string{"a.com"}, snapshot(t, s, "a.com", `\065.com`, "A.com."))
}
