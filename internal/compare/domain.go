package compare

import (
	"bytes"
	"cmp"
	"errors"

	"github.com/miekg/dns"
)

// compareDomain orders names the way DNSSEC canonical ordering does:
// labels are compared right to left as case-folded octet strings, and a
// name sorts before any of its subdomains. Escapes such as \065 are
// decoded first, so `\065.com` and `a.com` are the same name.
func compareDomain(a, b string) int {
	la, lb := domainLabels(a), domainLabels(b)

	for i, j := len(la)-1, len(lb)-1; i >= 0 && j >= 0; i, j = i-1, j-1 {
		if c := bytes.Compare(la[i], lb[j]); c != 0 {
			return c
		}
	}

	return cmp.Compare(len(la), len(lb))
}

// domainLabels returns the lower-cased wire labels of name, leftmost first.
// Names that cannot be packed fall back to their presentation labels.
func domainLabels(name string) [][]byte {
	buf := make([]byte, 256)
	end, err := dns.PackDomainName(dns.Fqdn(name), buf, 0, nil, false)
	if err != nil {
		var labels [][]byte
		for _, l := range dns.SplitDomainName(dns.CanonicalName(name)) {
			labels = append(labels, []byte(l))
		}
		return labels
	}

	var labels [][]byte
	for off := 0; off < end && buf[off] != 0; off += int(buf[off]) + 1 {
		label := buf[off+1 : off+1+int(buf[off])]
		labels = append(labels, asciiLower(label))
	}

	return labels
}

// asciiLower folds A-Z only; other octets are compared as is.
func asciiLower(b []byte) []byte {
	out := make([]byte, len(b))
	for i, c := range b {
		if 'A' <= c && c <= 'Z' {
			c += 'a' - 'A'
		}
		out[i] = c
	}

	return out
}

func newDomain(Options) (*Strategy, error) {
	return &Strategy{
		Name:    NameDomain,
		Compare: compareDomain,
		validate: func(key string) error {
			if _, ok := dns.IsDomainName(key); !ok || key == "" {
				return errors.New("not a domain name")
			}
			return nil
		},
	}, nil
}
