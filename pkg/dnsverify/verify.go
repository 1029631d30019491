package dnsverify

import (
	"context"
	"errors"
	"fmt"
	"net"
	"slices"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"
)

var (
	ErrDNSLookupFailed = errors.New("dns lookup failed")
	ErrNoMailServer    = errors.New("domain has no mail server")
	ErrInvalidInput    = errors.New("invalid domain")
)

// DefaultConcurrency bounds parallel lookups in CheckAddresses.
const DefaultConcurrency = 8

// Resolver looks up MX and host records. *net.Resolver implements it.
type Resolver interface {
	LookupMX(ctx context.Context, name string) ([]*net.MX, error)
	LookupHost(ctx context.Context, host string) ([]string, error)
}

// CheckDomain reports whether domain can receive mail: it needs an MX record
// other than the null MX ".", or an address record to fall back to.
func CheckDomain(ctx context.Context, r Resolver, domain string) error {
	domain = strings.ToLower(strings.TrimSpace(domain))
	if domain == "" {
		return ErrInvalidInput
	}
	if r == nil {
		r = net.DefaultResolver
	}

	records, err := r.LookupMX(ctx, domain)
	if err == nil && len(records) > 0 {
		if len(records) == 1 && records[0].Host == "." {
			return fmt.Errorf("%w: %s publishes a null MX", ErrNoMailServer, domain)
		}
		return nil
	}
	if err != nil && !isNotFound(err) {
		return fmt.Errorf("%w: %v", ErrDNSLookupFailed, err)
	}

	// No MX: mail falls back to the domain's own address records.
	if _, err := r.LookupHost(ctx, domain); err != nil {
		if isNotFound(err) {
			return fmt.Errorf("%w: %s", ErrNoMailServer, domain)
		}
		return fmt.Errorf("%w: %v", ErrDNSLookupFailed, err)
	}
	return nil
}

// CheckAddresses checks the domain of every address once and returns the
// failing domains with their error. Lookups run concurrently, at most
// concurrency at a time.
func CheckAddresses(ctx context.Context, r Resolver, addresses []string, concurrency int) map[string]error {
	domains := make([]string, 0, len(addresses))
	for _, a := range addresses {
		if _, domain, ok := strings.Cut(a, "@"); ok && domain != "" {
			domains = append(domains, strings.ToLower(domain))
		}
	}
	slices.Sort(domains)
	domains = slices.Compact(domains)

	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	var (
		mu     sync.Mutex
		failed = make(map[string]error)
	)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)
	for _, domain := range domains {
		g.Go(func() error {
			if err := CheckDomain(ctx, r, domain); err != nil {
				mu.Lock()
				failed[domain] = err
				mu.Unlock()
			}
			return nil
		})
	}
	_ = g.Wait()
	return failed
}

func isNotFound(err error) bool {
	var dnsErr *net.DNSError
	return errors.As(err, &dnsErr) && dnsErr.IsNotFound
}
