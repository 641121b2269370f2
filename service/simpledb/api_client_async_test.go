package simpledb

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	smithy "github.com/awslabs/aws-query-go"
	"github.com/awslabs/aws-query-go/async"
	"github.com/awslabs/aws-query-go/auth"
	"github.com/awslabs/aws-query-go/service/simpledb/simpledbtest"
	"github.com/awslabs/aws-query-go/service/simpledb/types"
)

func newTestAsyncClient(t *testing.T, exec async.Executor, optFns ...func(*simpledbtest.Options)) *AsyncClient {
	t.Helper()
	server := simpledbtest.New(optFns...)
	t.Cleanup(server.Close)

	return NewAsyncWithOptions(auth.NewStaticCredentialsProvider("AKID", "SECRET", ""), Options{
		BaseEndpoint: server.URL,
		HTTPClient:   server.Client(),
	}, exec)
}

func TestAsyncClient(t *testing.T) {
	ctx := context.Background()
	pool := async.NewPool(4)
	client := newTestAsyncClient(t, pool)

	if _, err := client.CreateDomainAsync(ctx, &CreateDomainInput{DomainName: ptrString("mydomain")}).Get(ctx); err != nil {
		t.Fatalf("expect no error, got %v", err)
	}

	var futures []*async.Future[async.Void]
	for _, name := range []string{"item1", "item2", "item3"} {
		futures = append(futures, client.PutAttributesAsync(ctx, &PutAttributesInput{
			DomainName: ptrString("mydomain"),
			ItemName:   ptrString(name),
			Attributes: []types.ReplaceableAttribute{{Name: ptrString("color"), Value: ptrString("blue")}},
		}))
	}
	for _, f := range futures {
		if _, err := f.Get(ctx); err != nil {
			t.Fatalf("expect no error, got %v", err)
		}
	}

	sel, err := client.SelectAsync(ctx, &SelectInput{SelectExpression: ptrString("select * from `mydomain`")}).Get(ctx)
	if err != nil {
		t.Fatalf("expect no error, got %v", err)
	}
	if e, a := 3, len(sel.Items); e != a {
		t.Errorf("expect %v items, got %v", e, a)
	}

	attrs, err := client.GetAttributesAsync(ctx, &GetAttributesInput{
		DomainName: ptrString("mydomain"), ItemName: ptrString("item2"),
	}).Get(ctx)
	if err != nil {
		t.Fatalf("expect no error, got %v", err)
	}
	if e, a := 1, len(attrs.Attributes); e != a {
		t.Errorf("expect %v attributes, got %v", e, a)
	}

	if _, err := client.BatchPutAttributesAsync(ctx, &BatchPutAttributesInput{
		DomainName: ptrString("mydomain"),
		Items: []types.ReplaceableItem{
			{Name: ptrString("item4"), Attributes: []types.ReplaceableAttribute{{Name: ptrString("size"), Value: ptrString("1")}}},
		},
	}).Get(ctx); err != nil {
		t.Fatalf("expect no error, got %v", err)
	}

	if _, err := client.DeleteAttributesAsync(ctx, &DeleteAttributesInput{
		DomainName: ptrString("mydomain"), ItemName: ptrString("item1"),
	}).Get(ctx); err != nil {
		t.Fatalf("expect no error, got %v", err)
	}

	meta, err := client.DomainMetadataAsync(ctx, &DomainMetadataInput{DomainName: ptrString("mydomain")}).Get(ctx)
	if err != nil {
		t.Fatalf("expect no error, got %v", err)
	}
	if e, a := int32(3), *meta.ItemCount; e != a {
		t.Errorf("expect %v items, got %v", e, a)
	}

	list, err := client.ListDomainsAsync(ctx, &ListDomainsInput{}).Get(ctx)
	if err != nil {
		t.Fatalf("expect no error, got %v", err)
	}
	if e, a := 1, len(list.DomainNames); e != a {
		t.Errorf("expect %v domains, got %v", e, a)
	}

	if _, err := client.DeleteDomainAsync(ctx, &DeleteDomainInput{DomainName: ptrString("mydomain")}).Get(ctx); err != nil {
		t.Fatalf("expect no error, got %v", err)
	}

	if client.Executor() != async.Executor(pool) {
		t.Errorf("expect executor to be the pool")
	}
}

func TestAsyncClientFailure(t *testing.T) {
	ctx := context.Background()
	client := newTestAsyncClient(t, async.NewCachedPool())

	f := client.DomainMetadataAsync(ctx, &DomainMetadataInput{DomainName: ptrString("missing")})
	out, err := f.Get(ctx)
	if out != nil {
		t.Errorf("expect no output, got %v", out)
	}
	var apiErr smithy.APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expect api error, got %v", err)
	}
	if e, a := "NoSuchDomain", apiErr.ErrorCode(); e != a {
		t.Errorf("expect %v code, got %v", e, a)
	}

	_, ok, tryErr := f.TryGet()
	if !ok || tryErr != err {
		t.Errorf("expect resolved future to keep its outcome, got %v, %v", ok, tryErr)
	}
}

func TestAsyncClientCancelBeforeStart(t *testing.T) {
	ctx := context.Background()
	pool := async.NewPool(1)
	client := newTestAsyncClient(t, pool)

	release := make(chan struct{})
	started := make(chan struct{})
	if err := pool.Go(func() {
		close(started)
		<-release
	}); err != nil {
		t.Fatalf("expect no error, got %v", err)
	}
	<-started

	f := client.CreateDomainAsync(ctx, &CreateDomainInput{DomainName: ptrString("mydomain")})
	if !f.Cancel() {
		t.Fatalf("expect cancel of pending future to succeed")
	}
	close(release)

	_, err := f.Get(ctx)
	var canceled *smithy.CanceledError
	if !errors.As(err, &canceled) {
		t.Fatalf("expect canceled error, got %v", err)
	}

	pool.Shutdown()
	if err := pool.Wait(ctx); err != nil {
		t.Fatalf("expect no error, got %v", err)
	}
	list, err := client.Client().ListDomains(ctx, &ListDomainsInput{})
	if err != nil {
		t.Fatalf("expect no error, got %v", err)
	}
	if len(list.DomainNames) != 0 {
		t.Errorf("expect canceled operation not to run, got %v", list.DomainNames)
	}
}

func TestAsyncClientCancelRunning(t *testing.T) {
	ctx := context.Background()
	client := newTestAsyncClient(t, async.NewCachedPool(), func(o *simpledbtest.Options) {
		o.Latency = time.Minute
	})

	f := client.ListDomainsAsync(ctx, &ListDomainsInput{})
	time.Sleep(50 * time.Millisecond)
	f.Cancel()

	waitCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	_, err := f.Get(waitCtx)
	if err == nil {
		t.Fatalf("expect error, got none")
	}
	if errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expect canceled operation to return, got %v", err)
	}
}

func TestAsyncClientShutdownPool(t *testing.T) {
	ctx := context.Background()
	pool := async.NewCachedPool()
	client := newTestAsyncClient(t, pool)
	pool.Shutdown()

	_, err := client.CreateDomainAsync(ctx, &CreateDomainInput{DomainName: ptrString("mydomain")}).Get(ctx)
	if !errors.Is(err, async.ErrPoolShutdown) {
		t.Errorf("expect pool shutdown error, got %v", err)
	}
}

func TestAsyncClientClose(t *testing.T) {
	owned := NewAsyncFromCredentials(auth.AnonymousCredentials{})
	owned.Close()
	if !owned.Executor().(*async.Pool).IsShutdown() {
		t.Errorf("expect owned pool to be shut down")
	}

	pool := async.NewCachedPool()
	shared := NewAsyncWithExecutor(auth.AnonymousCredentials{}, pool)
	shared.Close()
	if pool.IsShutdown() {
		t.Errorf("expect caller's pool to be left running")
	}
}

func TestAsyncClientNilInput(t *testing.T) {
	client := NewAsyncWithExecutor(auth.AnonymousCredentials{}, async.NewCachedPool())

	cases := map[string]func(){
		"Select":             func() { client.SelectAsync(context.Background(), nil) },
		"PutAttributes":      func() { client.PutAttributesAsync(context.Background(), nil) },
		"DeleteDomain":       func() { client.DeleteDomainAsync(context.Background(), nil) },
		"CreateDomain":       func() { client.CreateDomainAsync(context.Background(), nil) },
		"DeleteAttributes":   func() { client.DeleteAttributesAsync(context.Background(), nil) },
		"ListDomains":        func() { client.ListDomainsAsync(context.Background(), nil) },
		"GetAttributes":      func() { client.GetAttributesAsync(context.Background(), nil) },
		"BatchPutAttributes": func() { client.BatchPutAttributesAsync(context.Background(), nil) },
		"DomainMetadata":     func() { client.DomainMetadataAsync(context.Background(), nil) },
	}

	for name, fn := range cases {
		t.Run(name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Errorf("expect panic")
				}
			}()
			fn()
		})
	}
}

func TestAsyncClientConcurrent(t *testing.T) {
	ctx := context.Background()
	client := newTestAsyncClient(t, async.NewPool(2))

	if _, err := client.CreateDomainAsync(ctx, &CreateDomainInput{DomainName: ptrString("dom")}).Get(ctx); err != nil {
		t.Fatalf("expect no error, got %v", err)
	}

	var wg sync.WaitGroup
	errs := make(chan error, 20)
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := client.DomainMetadataAsync(ctx, &DomainMetadataInput{DomainName: ptrString("dom")}).Get(ctx)
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		if err != nil {
			t.Errorf("expect no error, got %v", err)
		}
	}
}
