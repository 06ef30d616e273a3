package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/goliatone/go-formbuilder/pkg/document"
	"github.com/goliatone/go-formbuilder/pkg/schema"
	"github.com/goliatone/go-formbuilder/pkg/surveyjson"
	"github.com/goliatone/go-formbuilder/pkg/templates"
)

// ErrStaleLoad reports a load whose response arrived after a newer request
// was issued. The document is left untouched.
var ErrStaleLoad = errors.New("orchestrator: stale load discarded")

// LoadPolicy decides what happens when overlapping loads complete.
type LoadPolicy int

const (
	// LatestRequestWins applies a response only when no load or import was
	// started after it.
	LatestRequestWins LoadPolicy = iota
	// LastResponseWins applies every successful response in arrival order.
	LastResponseWins
)

func (p LoadPolicy) String() string {
	switch p {
	case LatestRequestWins:
		return "latest-request"
	case LastResponseWins:
		return "last-response"
	default:
		return fmt.Sprintf("LoadPolicy(%d)", int(p))
	}
}

// Option customises the orchestrator configuration.
type Option func(*Orchestrator)

// WithStore injects an existing document store.
func WithStore(store *document.Store) Option {
	return func(o *Orchestrator) {
		o.store = store
	}
}

// WithRegistry sets the template registry for the default store.
func WithRegistry(reg *templates.Registry) Option {
	return func(o *Orchestrator) {
		o.registry = reg
	}
}

// WithLoader injects the collaborator that fetches remote or local schemas.
func WithLoader(loader surveyjson.Loader) Option {
	return func(o *Orchestrator) {
		o.loader = loader
	}
}

// WithImportOptions configures decoding of imported schemas.
func WithImportOptions(options ...surveyjson.ImportOption) Option {
	return func(o *Orchestrator) {
		o.importOptions = append(o.importOptions, options...)
	}
}

// WithTransformer registers a Transformer applied to every imported form.
func WithTransformer(t Transformer) Option {
	return func(o *Orchestrator) {
		o.transformer = t
	}
}

// WithLoadPolicy selects how overlapping loads resolve.
func WithLoadPolicy(policy LoadPolicy) Option {
	return func(o *Orchestrator) {
		o.policy = policy
	}
}

// WithLogger sets the logger used for discarded and failed loads.
func WithLogger(logger *slog.Logger) Option {
	return func(o *Orchestrator) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// Orchestrator owns one editing session.
type Orchestrator struct {
	store         *document.Store
	registry      *templates.Registry
	loader        surveyjson.Loader
	importOptions []surveyjson.ImportOption
	transformer   Transformer
	policy        LoadPolicy
	logger        *slog.Logger

	generation atomic.Uint64
	applyMu    sync.Mutex
	inflight   sync.WaitGroup
}

// New constructs an Orchestrator. Without a loader only Import is usable;
// Load and LoadAsync fail.
func New(options ...Option) *Orchestrator {
	o := &Orchestrator{
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(o)
	}
	if o.store == nil {
		o.store = document.New(document.WithRegistry(o.registry))
	}
	return o
}

// Store returns the session document store.
func (o *Orchestrator) Store() *document.Store {
	return o.store
}

// Policy reports the configured load policy.
func (o *Orchestrator) Policy() LoadPolicy {
	return o.policy
}

// Export serialises the current document to indented wire JSON.
func (o *Orchestrator) Export() ([]byte, error) {
	return surveyjson.Export(o.store.Form())
}

// Import parses raw and replaces the document. It supersedes any load still
// in flight.
func (o *Orchestrator) Import(ctx context.Context, raw []byte) error {
	token := o.generation.Add(1)
	return o.apply(ctx, token, raw)
}

// Load fetches src and imports it.
func (o *Orchestrator) Load(ctx context.Context, src schema.Source) error {
	token := o.generation.Add(1)
	return o.load(ctx, token, src)
}

// Ticket tracks one asynchronous load.
type Ticket struct {
	Token  uint64
	Source schema.Source

	done chan struct{}
	err  error
}

// Done is closed once the load has been applied, discarded or has failed.
func (t *Ticket) Done() <-chan struct{} {
	return t.done
}

// Err returns the outcome. It is only meaningful after Done is closed.
func (t *Ticket) Err() error {
	select {
	case <-t.done:
		return t.err
	default:
		return nil
	}
}

// Wait blocks until the load finishes or ctx ends.
func (t *Ticket) Wait(ctx context.Context) error {
	select {
	case <-t.done:
		return t.err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// LoadAsync starts fetching src in the background and returns immediately.
// Under LatestRequestWins a ticket whose response arrives after a newer
// request completes with ErrStaleLoad.
func (o *Orchestrator) LoadAsync(ctx context.Context, src schema.Source) *Ticket {
	ticket := &Ticket{
		Token:  o.generation.Add(1),
		Source: src,
		done:   make(chan struct{}),
	}
	o.inflight.Add(1)
	go func() {
		defer o.inflight.Done()
		defer close(ticket.done)
		ticket.err = o.load(ctx, ticket.Token, src)
	}()
	return ticket
}

// Wait blocks until every LoadAsync call has finished.
func (o *Orchestrator) Wait() {
	o.inflight.Wait()
}

func (o *Orchestrator) load(ctx context.Context, token uint64, src schema.Source) error {
	if ctx == nil {
		return errors.New("orchestrator: context is required")
	}
	if o.loader == nil {
		return errors.New("orchestrator: loader is not configured")
	}
	if src == nil {
		return errors.New("orchestrator: source is required")
	}

	doc, err := o.loader.Load(ctx, src)
	if err != nil {
		o.logger.Warn("schema load failed",
			slog.String("kind", string(src.Kind())),
			slog.String("location", src.Location()),
			slog.Uint64("token", token),
			slog.Any("error", err),
		)
		return fmt.Errorf("orchestrator: load document: %w", err)
	}
	return o.apply(ctx, token, doc.Raw())
}

func (o *Orchestrator) apply(ctx context.Context, token uint64, raw []byte) error {
	form, err := surveyjson.Decode(ctx, raw, o.importOptions...)
	if err != nil {
		return err
	}
	if o.transformer != nil {
		if err := o.transformer.Transform(ctx, &form); err != nil {
			return fmt.Errorf("orchestrator: transform form: %w", err)
		}
	}

	o.applyMu.Lock()
	defer o.applyMu.Unlock()
	if o.policy == LatestRequestWins {
		if latest := o.generation.Load(); token != latest {
			o.logger.Info("discarding stale schema load",
				slog.Uint64("token", token),
				slog.Uint64("latest", latest),
			)
			return ErrStaleLoad
		}
	}
	o.store.LoadForm(form)
	return nil
}
