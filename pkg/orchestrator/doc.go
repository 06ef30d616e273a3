// Package orchestrator provides the application-state object of an editing
// session: the document store plus the import, export and loading
// collaborators around it. Views receive an *Orchestrator instead of reaching
// for global state.
package orchestrator
