package simpledb

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"
)

type mockListDomainsClient struct {
	pages [][]string
	calls int

	// call at which the domain starts being listed
	listedAt int
	err      error
}

func (m *mockListDomainsClient) ListDomains(_ context.Context, params *ListDomainsInput, _ ...func(*Options)) (*ListDomainsOutput, error) {
	m.calls++
	if m.err != nil {
		return nil, m.err
	}

	page := 0
	if params.NextToken != nil {
		page = int((*params.NextToken)[0] - '0')
	}

	out := &ListDomainsOutput{DomainNames: m.pages[page]}
	if m.calls >= m.listedAt && page == len(m.pages)-1 {
		out.DomainNames = append(out.DomainNames, "mydomain")
	}
	if page < len(m.pages)-1 {
		next := string(rune('0' + page + 1))
		out.NextToken = &next
	}
	return out, nil
}

func TestDomainExistsWaiter(t *testing.T) {
	cases := map[string]struct {
		client      *mockListDomainsClient
		maxWait     time.Duration
		expectErr   string
		expectCalls int
	}{
		"listed on first call": {
			client:      &mockListDomainsClient{pages: [][]string{{"a"}}, listedAt: 1},
			maxWait:     time.Second,
			expectCalls: 1,
		},
		"listed on second page": {
			client:      &mockListDomainsClient{pages: [][]string{{"a"}, {"b"}}, listedAt: 1},
			maxWait:     time.Second,
			expectCalls: 2,
		},
		"listed after retries": {
			client:      &mockListDomainsClient{pages: [][]string{{"a"}}, listedAt: 3},
			maxWait:     5 * time.Second,
			expectCalls: 3,
		},
		"never listed": {
			client:    &mockListDomainsClient{pages: [][]string{{"a"}}, listedAt: 1000},
			maxWait:   100 * time.Millisecond,
			expectErr: "exceeded max wait time",
		},
		"list error": {
			client:      &mockListDomainsClient{err: errors.New("boom")},
			maxWait:     time.Second,
			expectErr:   "boom",
			expectCalls: 1,
		},
	}

	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			w := NewDomainExistsWaiter(c.client, func(o *DomainExistsWaiterOptions) {
				o.MinDelay = 10 * time.Millisecond
				o.MaxDelay = 20 * time.Millisecond
			})

			err := w.Wait(context.Background(), "mydomain", c.maxWait)
			if len(c.expectErr) != 0 {
				if err == nil || !strings.Contains(err.Error(), c.expectErr) {
					t.Fatalf("expect error containing %q, got %v", c.expectErr, err)
				}
			} else if err != nil {
				t.Fatalf("expect no error, got %v", err)
			}

			if c.expectCalls != 0 {
				if e, a := c.expectCalls, c.client.calls; e != a {
					t.Errorf("expect %v calls, got %v", e, a)
				}
			}
		})
	}
}

func TestDomainExistsWaiterInvalidOptions(t *testing.T) {
	w := NewDomainExistsWaiter(&mockListDomainsClient{}, func(o *DomainExistsWaiterOptions) {
		o.MinDelay = time.Minute
		o.MaxDelay = time.Second
	})

	if err := w.Wait(context.Background(), "mydomain", time.Second); err == nil {
		t.Errorf("expect error, got none")
	}
	if err := w.Wait(context.Background(), "mydomain", 0); err == nil {
		t.Errorf("expect error, got none")
	}
}

func TestDomainExistsWaiterFakeService(t *testing.T) {
	ctx := context.Background()
	client, _ := newTestClient(t)

	if _, err := client.CreateDomain(ctx, &CreateDomainInput{DomainName: ptrString("mydomain")}); err != nil {
		t.Fatalf("expect no error, got %v", err)
	}

	w := NewDomainExistsWaiter(client)
	if err := w.Wait(ctx, "mydomain", time.Second); err != nil {
		t.Fatalf("expect no error, got %v", err)
	}
}
