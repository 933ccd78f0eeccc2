package compare

import (
	"fmt"
	"sync"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

func newCollate(opts Options) (*Strategy, error) {
	locale := opts.Locale
	if locale == "" {
		locale = "und"
	}

	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("invalid locale %q: %w", locale, err)
	}

	// A Collator keeps internal buffers and must not be shared unguarded.
	var mu sync.Mutex
	c := collate.New(tag)

	return &Strategy{
		Name: NameCollate,
		Compare: func(a, b string) int {
			mu.Lock()
			defer mu.Unlock()

			return c.CompareString(a, b)
		},
	}, nil
}
