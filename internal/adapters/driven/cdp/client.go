package cdp

import (
	"context"
	"fmt"
	"sync"

	"github.com/chromedp/cdproto/cdp"
	"github.com/chromedp/cdproto/target"
	"github.com/chromedp/chromedp"

	"github.com/custodia-labs/quickswitch/internal/logger"
)

// TargetAPI is the subset of the DevTools target domain the adapters use.
type TargetAPI interface {
	// Targets lists every target of the browser.
	Targets(ctx context.Context) ([]*target.Info, error)

	// Activate brings a target to the front.
	Activate(ctx context.Context, id target.ID) error

	// Create opens url in a new tab, or a new window when newWindow is set.
	Create(ctx context.Context, url string, newWindow bool) (target.ID, error)

	// Navigate loads url in an existing target.
	Navigate(ctx context.Context, id target.ID, url string) error
}

// Ensure Client implements the interface.
var _ TargetAPI = (*Client)(nil)

// Client is a DevTools connection to a running browser.
// The connection is made lazily on the first call.
type Client struct {
	mu          sync.Mutex
	url         string
	limiter     *RateLimiter
	allocCtx    context.Context
	browserCtx  context.Context
	cancelAlloc context.CancelFunc
	cancel      context.CancelFunc
	closed      bool
	dial        *dialAttempt
}

// dialAttempt is one attach to the browser shared by concurrent callers.
// err is set before done is closed.
type dialAttempt struct {
	done chan struct{}
	err  error
}

// NewClient creates a client for the DevTools endpoint at url, e.g.
// http://127.0.0.1:9222. A nil limiter uses the default rate.
func NewClient(url string, limiter *RateLimiter) *Client {
	if limiter == nil {
		limiter = NewRateLimiter(0, 0)
	}
	allocCtx, cancelAlloc := chromedp.NewRemoteAllocator(context.Background(), url)
	browserCtx, cancel := chromedp.NewContext(allocCtx)
	return &Client{
		url:         url,
		limiter:     limiter,
		allocCtx:    allocCtx,
		browserCtx:  browserCtx,
		cancelAlloc: cancelAlloc,
		cancel:      cancel,
	}
}

// URL returns the DevTools endpoint.
func (c *Client) URL() string {
	return c.url
}

// Targets lists every target of the browser.
func (c *Client) Targets(ctx context.Context) ([]*target.Info, error) {
	exec, err := c.executor(ctx)
	if err != nil {
		return nil, err
	}
	infos, err := target.GetTargets().Do(exec)
	if err != nil {
		return nil, unavailable("list targets", err)
	}
	logger.Debug("CDP: %d targets", len(infos))
	return infos, nil
}

// Activate brings a target to the front.
func (c *Client) Activate(ctx context.Context, id target.ID) error {
	exec, err := c.executor(ctx)
	if err != nil {
		return err
	}
	if err := target.ActivateTarget(id).Do(exec); err != nil {
		return fmt.Errorf("cdp: activate target %s: %w", id, err)
	}
	return nil
}

// Create opens url in a new tab or window and returns its target ID.
func (c *Client) Create(ctx context.Context, url string, newWindow bool) (target.ID, error) {
	exec, err := c.executor(ctx)
	if err != nil {
		return "", err
	}
	id, err := target.CreateTarget(url).WithNewWindow(newWindow).Do(exec)
	if err != nil {
		return "", fmt.Errorf("cdp: create target: %w", err)
	}
	return id, nil
}

// Navigate loads url in an existing target.
func (c *Client) Navigate(ctx context.Context, id target.ID, url string) error {
	if err := c.wait(ctx); err != nil {
		return err
	}
	if err := c.connect(ctx); err != nil {
		return err
	}
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return ErrClosed
	}
	tabCtx, cancel := chromedp.NewContext(c.browserCtx, chromedp.WithTargetID(id))
	c.mu.Unlock()
	// Cancelling a context attached to an existing target detaches
	// without closing it.
	defer cancel()
	stop := context.AfterFunc(ctx, cancel)
	defer stop()

	return chromedp.Run(tabCtx, chromedp.Navigate(url))
}

// Close drops the connection. The browser itself keeps running.
func (c *Client) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.closed = true
	c.cancel()
	c.cancelAlloc()
}

// executor returns ctx bound to the browser-level connection, connecting
// first if needed.
func (c *Client) executor(ctx context.Context) (context.Context, error) {
	if err := c.wait(ctx); err != nil {
		return nil, err
	}
	if err := c.connect(ctx); err != nil {
		return nil, err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return nil, ErrClosed
	}
	return cdp.WithExecutor(ctx, chromedp.FromContext(c.browserCtx).Browser), nil
}

// connect waits for the browser attach until ctx ends. The attach itself
// runs on the client's context, so a caller giving up does not abort it
// for the next one. A failed attach is retried on the next call.
func (c *Client) connect(ctx context.Context) error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return ErrClosed
	}
	a := c.dial
	if a == nil {
		a = &dialAttempt{done: make(chan struct{})}
		c.dial = a
		go c.attach(a, c.browserCtx)
	}
	c.mu.Unlock()

	select {
	case <-a.done:
		if a.err != nil {
			return unavailable("connect", a.err)
		}
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (c *Client) attach(a *dialAttempt, browserCtx context.Context) {
	_, err := chromedp.Targets(browserCtx)

	c.mu.Lock()
	a.err = err
	if err != nil && c.dial == a {
		c.dial = nil
	}
	c.mu.Unlock()
	close(a.done)
}

func (c *Client) wait(ctx context.Context) error {
	return c.limiter.Wait(ctx)
}
