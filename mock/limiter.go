package mock

import (
	"context"

	"github.com/fwojciec/tldr"
)

var _ tldr.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter is a mock implementation of tldr.DomainLimiter.
type DomainLimiter struct {
	WaitFn func(ctx context.Context, domain string) error
}

func (l *DomainLimiter) Wait(ctx context.Context, domain string) error {
	return l.WaitFn(ctx, domain)
}

var _ tldr.URLSet = (*URLSet)(nil)

// URLSet is a mock implementation of tldr.URLSet.
type URLSet struct {
	AddFn  func(url string)
	TestFn func(url string) bool
}

func (s *URLSet) Add(url string) {
	s.AddFn(url)
}

func (s *URLSet) Test(url string) bool {
	return s.TestFn(url)
}
