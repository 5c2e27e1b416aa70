package cli

import (
	"github.com/jstrick/dojo/internal/habits"
	"github.com/jstrick/dojo/internal/journal"
	"github.com/jstrick/dojo/internal/storage"
	"github.com/jstrick/dojo/internal/urges"
)

// Context carries the store and the three logic components into every
// command's Run method.
type Context struct {
	Store   storage.Provider
	Habits  *habits.Tracker
	Journal *journal.Journal
	Urges   *urges.Log
}

// NewContext wires the logic components onto a store.
func NewContext(store storage.Provider) *Context {
	return &Context{
		Store:   store,
		Habits:  habits.NewTracker(store),
		Journal: journal.New(store),
		Urges:   urges.NewLog(store),
	}
}
