package compare

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/xvzc/ordtree/internal/datastruct/tree"
)

var (
	ErrUnknownComparator = errors.New("unknown comparator")
	ErrInvalidKey        = errors.New("invalid key")
)

const (
	NameNatural = "natural"
	NameNumeric = "numeric"
	NameDomain  = "domain"
	NameCollate = "collate"
	NameExpr    = "expr"
)

// Options carries the settings some strategies need.
type Options struct {
	// Locale is a BCP 47 tag used by the collate strategy.
	Locale string
	// Expr is the expression source used by the expr strategy.
	Expr string
	// Descending reverses the resulting order.
	Descending bool
}

// Strategy is a named ordering over string keys.
type Strategy struct {
	Name    string
	Compare tree.Comparator[string]

	validate func(key string) error

	mu     sync.Mutex
	runErr error
}

type builder func(opts Options) (*Strategy, error)

var builders = map[string]builder{
	NameNatural: func(Options) (*Strategy, error) {
		return &Strategy{Name: NameNatural, Compare: strings.Compare}, nil
	},
	NameNumeric: newNumeric,
	NameDomain:  newDomain,
	NameCollate: newCollate,
	NameExpr:    newExpr,
}

// Names lists the available strategies in alphabetical order.
func Names() []string {
	names := make([]string, 0, len(builders))
	for name := range builders {
		names = append(names, name)
	}
	slices.Sort(names)

	return names
}

// Lookup builds the strategy called name.
func Lookup(name string, opts Options) (*Strategy, error) {
	b, ok := builders[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("%w: %q (available: %s)",
			ErrUnknownComparator, name, strings.Join(Names(), ", "))
	}

	s, err := b(opts)
	if err != nil {
		return nil, fmt.Errorf("%s comparator: %w", name, err)
	}

	if opts.Descending {
		s.Compare = tree.Reverse(s.Compare)
	}

	return s, nil
}

// Validate reports whether key can be ordered by s.
func (s *Strategy) Validate(key string) error {
	if s.validate == nil {
		return nil
	}

	if err := s.validate(key); err != nil {
		return fmt.Errorf("%w %q: %w", ErrInvalidKey, key, err)
	}

	return nil
}

// ValidateAll checks every key and joins the failures.
func (s *Strategy) ValidateAll(keys []string) error {
	var errs []error
	for _, k := range keys {
		if err := s.Validate(k); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

// Err returns the first error raised while comparing keys, if any.
func (s *Strategy) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.runErr
}

func (s *Strategy) fail(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.runErr == nil {
		s.runErr = err
	}
}
