package simpledb

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/awslabs/aws-query-go/logging"
	smithytime "github.com/awslabs/aws-query-go/time"
	"github.com/awslabs/aws-query-go/waiter"
)

// ListDomainsAPIClient is a client that implements the ListDomains operation.
type ListDomainsAPIClient interface {
	ListDomains(context.Context, *ListDomainsInput, ...func(*Options)) (*ListDomainsOutput, error)
}

var _ ListDomainsAPIClient = (*Client)(nil)

// DomainExistsWaiterOptions are the waiter options for DomainExistsWaiter
type DomainExistsWaiterOptions struct {
	// Functional options passed to every ListDomains call.
	APIOptions []func(*Options)

	// MinDelay is the minimum amount of time to delay between retries. Defaults
	// to 5 seconds.
	MinDelay time.Duration

	// MaxDelay is the maximum amount of time to delay between retries. Defaults
	// to 120 seconds.
	MaxDelay time.Duration

	// LogWaitAttempts enables logging of each attempt with Logger.
	LogWaitAttempts bool
	Logger          logging.Logger
}

// DomainExistsWaiter polls ListDomains until a domain is listed. SimpleDB
// domains are eventually consistent, a created domain may not be listed
// right away.
type DomainExistsWaiter struct {
	client  ListDomainsAPIClient
	options DomainExistsWaiterOptions
}

// NewDomainExistsWaiter constructs a DomainExistsWaiter.
func NewDomainExistsWaiter(client ListDomainsAPIClient, optFns ...func(*DomainExistsWaiterOptions)) *DomainExistsWaiter {
	options := DomainExistsWaiterOptions{
		MinDelay: 5 * time.Second,
		MaxDelay: 120 * time.Second,
	}
	for _, fn := range optFns {
		fn(&options)
	}
	return &DomainExistsWaiter{client: client, options: options}
}

// Wait calls ListDomains until domainName is listed, or maxWaitDur elapses.
// ListDomains failures end the wait.
func (w *DomainExistsWaiter) Wait(ctx context.Context, domainName string, maxWaitDur time.Duration, optFns ...func(*DomainExistsWaiterOptions)) error {
	if maxWaitDur <= 0 {
		return fmt.Errorf("maximum wait time for waiter must be greater than zero")
	}

	options := w.options
	for _, fn := range optFns {
		fn(&options)
	}
	if options.MinDelay <= 0 {
		options.MinDelay = 5 * time.Second
	}
	if options.MaxDelay <= 0 {
		options.MaxDelay = 120 * time.Second
	}
	if options.MinDelay > options.MaxDelay {
		return fmt.Errorf("minimum waiter delay %v must be lesser than or equal to maximum waiter delay of %v", options.MinDelay, options.MaxDelay)
	}
	logger := options.Logger
	if logger == nil {
		logger = logging.Noop{}
	}

	ctx, cancelFn := context.WithTimeout(ctx, maxWaitDur)
	defer cancelFn()

	matcher := waiter.PathMatcher{
		Path:       fmt.Sprintf("contains(DomainNames[*], '%s')", strings.ReplaceAll(domainName, "'", `\'`)),
		Expected:   "true",
		Comparator: waiter.BooleanEquals,
	}

	deadline := time.Now().Add(maxWaitDur)
	var attempt int64
	for {
		attempt++

		if options.LogWaitAttempts {
			logger.Logf(logging.Debug, "attempting waiter request, attempt count: %d", attempt)
		}

		found, err := w.listed(ctx, matcher, options.APIOptions)
		if err != nil {
			return err
		}
		if found {
			return nil
		}

		remainingTime := time.Until(deadline)
		if remainingTime < options.MinDelay || remainingTime <= 0 {
			break
		}

		delay, err := waiter.ComputeDelay(attempt, options.MinDelay, options.MaxDelay, remainingTime)
		if err != nil {
			return fmt.Errorf("error computing waiter delay, %w", err)
		}

		if err := smithytime.SleepWithContext(ctx, delay); err != nil {
			return fmt.Errorf("request cancelled while waiting, %w", err)
		}
	}
	return fmt.Errorf("exceeded max wait time for DomainExists waiter")
}

// listed pages through ListDomains until a page matches.
func (w *DomainExistsWaiter) listed(ctx context.Context, matcher waiter.PathMatcher, optFns []func(*Options)) (bool, error) {
	input := &ListDomainsInput{}
	for {
		out, err := w.client.ListDomains(ctx, input, optFns...)
		if err != nil {
			return false, err
		}

		ok, err := matcher.Match(out)
		if err != nil || ok {
			return ok, err
		}

		if out.NextToken == nil || len(*out.NextToken) == 0 {
			return false, nil
		}
		input = &ListDomainsInput{NextToken: out.NextToken}
	}
}
