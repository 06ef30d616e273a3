package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/goliatone/go-formbuilder/pkg/model"
	"github.com/goliatone/go-formbuilder/pkg/schema"
	"github.com/goliatone/go-formbuilder/pkg/surveyjson"
)

func formJSON(title string) []byte {
	return []byte(fmt.Sprintf(`{"title":{"default":%q},"pages":[{"name":"page1","elements":[]}]}`, title))
}

// gatedLoader blocks each fetch until its location is released.
type gatedLoader struct {
	mu    sync.Mutex
	gates map[string]chan struct{}
	fail  map[string]error
}

func newGatedLoader(locations ...string) *gatedLoader {
	l := &gatedLoader{gates: map[string]chan struct{}{}, fail: map[string]error{}}
	for _, loc := range locations {
		l.gates[loc] = make(chan struct{})
	}
	return l
}

func (l *gatedLoader) release(location string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	close(l.gates[location])
}

func (l *gatedLoader) Load(ctx context.Context, src schema.Source) (schema.Document, error) {
	l.mu.Lock()
	gate, ok := l.gates[src.Location()]
	failure := l.fail[src.Location()]
	l.mu.Unlock()
	if ok {
		select {
		case <-gate:
		case <-ctx.Done():
			return schema.Document{}, ctx.Err()
		}
	}
	if failure != nil {
		return schema.Document{}, failure
	}
	return schema.NewDocument(src, formJSON(src.Location()))
}

var _ surveyjson.Loader = (*gatedLoader)(nil)

func title(o *Orchestrator) string {
	return o.Store().Form().Title.Get(model.LocaleDefault)
}

func waitTicket(t *testing.T, ticket *Ticket) error {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	err := ticket.Wait(ctx)
	if errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("ticket %d did not finish", ticket.Token)
	}
	return err
}

func TestImportExport(t *testing.T) {
	o := New()
	if err := o.Import(context.Background(), formJSON("Imported")); err != nil {
		t.Fatalf("Import: %v", err)
	}
	if title(o) != "Imported" {
		t.Fatalf("unexpected title %q", title(o))
	}
	raw, err := o.Export()
	if err != nil {
		t.Fatalf("Export: %v", err)
	}

	other := New()
	if err := other.Import(context.Background(), raw); err != nil {
		t.Fatalf("re-Import: %v", err)
	}
	if title(other) != "Imported" {
		t.Fatalf("unexpected round trip title %q", title(other))
	}
}

func TestImport_Malformed(t *testing.T) {
	o := New()
	before := o.Store().Snapshot()
	if err := o.Import(context.Background(), []byte("{not json")); !errors.Is(err, surveyjson.ErrMalformedJSON) {
		t.Fatalf("expected ErrMalformedJSON, got %v", err)
	}
	if o.Store().Snapshot().Form.Title.Get("default") != before.Form.Title.Get("default") {
		t.Fatalf("store mutated")
	}
}

func TestLoad_Sync(t *testing.T) {
	o := New(WithLoader(newGatedLoader()))
	if err := o.Load(context.Background(), schema.SourceFromFS("remote")); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if title(o) != "remote" {
		t.Fatalf("unexpected title %q", title(o))
	}
}

func TestLoad_NoLoader(t *testing.T) {
	if err := New().Load(context.Background(), schema.SourceFromFS("x")); err == nil {
		t.Fatalf("expected error without loader")
	}
}

func TestLoad_FailureLeavesForm(t *testing.T) {
	loader := newGatedLoader()
	boom := errors.New("boom")
	loader.fail["broken"] = boom
	o := New(WithLoader(loader))

	if err := o.Load(context.Background(), schema.SourceFromFS("broken")); !errors.Is(err, boom) {
		t.Fatalf("expected wrapped loader error, got %v", err)
	}
	if title(o) != "New Form" {
		t.Fatalf("failed load changed the form: %q", title(o))
	}
}

func TestLoadAsync_LatestRequestWins(t *testing.T) {
	loader := newGatedLoader("first", "second")
	o := New(WithLoader(loader))

	first := o.LoadAsync(context.Background(), schema.SourceFromFS("first"))
	second := o.LoadAsync(context.Background(), schema.SourceFromFS("second"))

	loader.release("second")
	if err := waitTicket(t, second); err != nil {
		t.Fatalf("second: %v", err)
	}
	loader.release("first")
	if err := waitTicket(t, first); !errors.Is(err, ErrStaleLoad) {
		t.Fatalf("expected ErrStaleLoad for first, got %v", err)
	}
	o.Wait()

	if title(o) != "second" {
		t.Fatalf("expected latest request to win, got %q", title(o))
	}
}

func TestLoadAsync_LastResponseWins(t *testing.T) {
	loader := newGatedLoader("first", "second")
	o := New(WithLoader(loader), WithLoadPolicy(LastResponseWins))

	first := o.LoadAsync(context.Background(), schema.SourceFromFS("first"))
	second := o.LoadAsync(context.Background(), schema.SourceFromFS("second"))

	loader.release("second")
	if err := waitTicket(t, second); err != nil {
		t.Fatalf("second: %v", err)
	}
	loader.release("first")
	if err := waitTicket(t, first); err != nil {
		t.Fatalf("first: %v", err)
	}

	if title(o) != "first" {
		t.Fatalf("expected last response to win, got %q", title(o))
	}
}

func TestImport_SupersedesInflightLoad(t *testing.T) {
	loader := newGatedLoader("slow")
	o := New(WithLoader(loader))

	ticket := o.LoadAsync(context.Background(), schema.SourceFromFS("slow"))
	if err := o.Import(context.Background(), formJSON("manual")); err != nil {
		t.Fatalf("Import: %v", err)
	}
	loader.release("slow")
	if err := waitTicket(t, ticket); !errors.Is(err, ErrStaleLoad) {
		t.Fatalf("expected ErrStaleLoad, got %v", err)
	}
	if title(o) != "manual" {
		t.Fatalf("expected manual import to stay, got %q", title(o))
	}
}

func TestTicketErrBeforeDone(t *testing.T) {
	loader := newGatedLoader("slow")
	o := New(WithLoader(loader))
	ticket := o.LoadAsync(context.Background(), schema.SourceFromFS("slow"))
	if err := ticket.Err(); err != nil {
		t.Fatalf("expected nil before completion, got %v", err)
	}
	loader.release("slow")
	if err := waitTicket(t, ticket); err != nil {
		t.Fatalf("Wait: %v", err)
	}
}

func TestTransformers(t *testing.T) {
	ids := 0
	o := New(WithTransformer(Chain(
		EnsureLocales("vi"),
		FillMissingIDs(func() string { ids++; return fmt.Sprintf("gen-%d", ids) }),
	)))

	raw := []byte(`{"title":{"default":"T"},"pages":[{"name":"p","title":{"default":"P"},"elements":[
		{"type":"dropdown","name":"d","title":{"default":"D"},"choices":[{"value":"a","text":{"default":"A"}}]}
	]}]}`)
	if err := o.Import(context.Background(), raw); err != nil {
		t.Fatalf("Import: %v", err)
	}
	form := o.Store().Form()
	if _, ok := form.Title["vi"]; !ok {
		t.Fatalf("expected vi slot on title")
	}
	if form.Description != nil {
		t.Fatalf("absent description must stay absent")
	}
	field := form.Pages[0].Elements[0]
	if field.ID != "gen-1" {
		t.Fatalf("expected generated id, got %q", field.ID)
	}
	if _, ok := field.Choices[0].Text["vi"]; !ok {
		t.Fatalf("expected vi slot on choice text")
	}
}

func TestTransformerErrorLeavesForm(t *testing.T) {
	boom := errors.New("nope")
	o := New(WithTransformer(TransformerFunc(func(context.Context, *model.Form) error { return boom })))
	if err := o.Import(context.Background(), formJSON("x")); !errors.Is(err, boom) {
		t.Fatalf("expected transformer error, got %v", err)
	}
	if title(o) != "New Form" {
		t.Fatalf("form changed on transformer error")
	}
}
