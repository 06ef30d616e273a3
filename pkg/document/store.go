// Package document holds the form being edited together with its selection
// state and routes every edit through a fixed operation set.
//
// Each operation builds the next state from a copy of the current one and
// swaps it in whole, so a Snapshot taken before a call is never affected by
// it. Boundary cases (deleting the last page, moving past either end,
// updating a field that is not on the selected page) are absorbed as no-ops.
package document

import (
	"sync"

	"github.com/goliatone/go-formbuilder/pkg/model"
	"github.com/goliatone/go-formbuilder/pkg/templates"
)

// State is one immutable view of the store.
type State struct {
	Form              model.Form
	SelectedPageIndex int
	// SelectedFieldID is empty when no field is selected.
	SelectedFieldID string
}

// Clone returns a deep copy of the state.
func (s State) Clone() State {
	return State{
		Form:              s.Form.Clone(),
		SelectedPageIndex: s.SelectedPageIndex,
		SelectedFieldID:   s.SelectedFieldID,
	}
}

// CurrentPage returns the selected page, if the form has one.
func (s State) CurrentPage() (model.Page, bool) {
	if s.SelectedPageIndex < 0 || s.SelectedPageIndex >= len(s.Form.Pages) {
		return model.Page{}, false
	}
	return s.Form.Pages[s.SelectedPageIndex], true
}

// CurrentField returns the selected field when it lives on the selected page.
func (s State) CurrentField() (model.Field, bool) {
	if s.SelectedFieldID == "" {
		return model.Field{}, false
	}
	page, ok := s.CurrentPage()
	if !ok {
		return model.Field{}, false
	}
	idx := page.IndexOf(s.SelectedFieldID)
	if idx < 0 {
		return model.Field{}, false
	}
	return page.Elements[idx], true
}

// Listener is notified after every state transition.
type Listener func(State)

// Store is the editing session's document. It is safe for concurrent use.
type Store struct {
	mu        sync.RWMutex
	state     State
	version   uint64
	registry  *templates.Registry
	newID     func() string
	listeners map[uint64]Listener
	nextSub   uint64
}

// Option configures a Store.
type Option func(*Store)

// WithRegistry sets the template registry used by AddFieldOfType.
func WithRegistry(reg *templates.Registry) Option {
	return func(s *Store) {
		if reg != nil {
			s.registry = reg
		}
	}
}

// WithIDGenerator overrides the generator used for fallback field ids.
func WithIDGenerator(fn func() string) Option {
	return func(s *Store) {
		if fn != nil {
			s.newID = fn
		}
	}
}

// WithForm seeds the store with form instead of the default new form.
func WithForm(form model.Form) Option {
	return func(s *Store) {
		s.state = State{Form: form.Clone()}
	}
}

// New returns a store holding the initial single-page form.
func New(options ...Option) *Store {
	s := &Store{
		state:     State{Form: model.NewForm()},
		registry:  templates.Default(),
		newID:     templates.NewID,
		listeners: make(map[uint64]Listener),
	}
	for _, opt := range options {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

// Snapshot returns a deep copy of the current state.
func (s *Store) Snapshot() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Clone()
}

// Form returns a deep copy of the current form.
func (s *Store) Form() model.Form {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Form.Clone()
}

// SelectedPageIndex returns the index of the selected page.
func (s *Store) SelectedPageIndex() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.SelectedPageIndex
}

// SelectedFieldID returns the selected field id, or "" when none.
func (s *Store) SelectedFieldID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.SelectedFieldID
}

// CurrentPage returns a copy of the selected page. It reports false only for
// forms loaded without pages.
func (s *Store) CurrentPage() (model.Page, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	page, ok := s.state.CurrentPage()
	if !ok {
		return model.Page{}, false
	}
	return page.Clone(), true
}

// CurrentField returns the selected field if its id resolves on the selected
// page.
func (s *Store) CurrentField() (model.Field, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	field, ok := s.state.CurrentField()
	if !ok {
		return model.Field{}, false
	}
	return field.Clone(), true
}

// Registry returns the template registry backing AddFieldOfType.
func (s *Store) Registry() *templates.Registry {
	return s.registry
}

// Version counts the transitions applied so far.
func (s *Store) Version() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.version
}

// Subscribe registers fn to run after every transition. The returned func
// removes the subscription.
func (s *Store) Subscribe(fn Listener) (cancel func()) {
	if fn == nil {
		return func() {}
	}
	s.mu.Lock()
	id := s.nextSub
	s.nextSub++
	s.listeners[id] = fn
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.listeners, id)
			s.mu.Unlock()
		})
	}
}

// update runs mutate against a private copy of the state. When mutate reports
// a change the copy replaces the current state and listeners are notified
// outside the lock.
func (s *Store) update(mutate func(next *State) (bool, error)) error {
	s.mu.Lock()
	next := s.state.Clone()
	changed, err := mutate(&next)
	if err != nil || !changed {
		s.mu.Unlock()
		return err
	}
	s.state = next
	s.version++
	listeners := make([]Listener, 0, len(s.listeners))
	for _, fn := range s.listeners {
		listeners = append(listeners, fn)
	}
	s.mu.Unlock()

	for _, fn := range listeners {
		fn(next.Clone())
	}
	return nil
}
