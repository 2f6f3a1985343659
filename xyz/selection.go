// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"slices"

	"cogentcore.org/pointgizmo/events"
)

// Selection is the set of currently selected nodes.
// The node list is a snapshot: every change builds a new slice, so a slice
// returned by [Selection.Nodes] or carried by a [SelectionEvent] is never
// modified afterward.
type Selection struct {
	// Listeners receive a [SelectionEvent] of type
	// [events.SelectionChanged] after every change.
	Listeners events.Listeners

	nodes []Node
}

// SelectionEvent reports a change of the [Selection].
type SelectionEvent struct {
	events.Base

	// Nodes is the new selection snapshot.
	Nodes []Node
}

// Clone returns a copy of the event of the given type.
func (ev *SelectionEvent) Clone(typ events.Types) events.Event {
	ne := *ev
	ne.Base = *ev.Base.Clone(typ).(*events.Base)
	return &ne
}

// NewSelection returns a new empty selection.
func NewSelection() *Selection {
	return &Selection{}
}

// CompactNodes returns a new slice with the nil entries of nodes removed.
func CompactNodes(nodes []Node) []Node {
	res := make([]Node, 0, len(nodes))
	for _, n := range nodes {
		if n != nil {
			res = append(res, n)
		}
	}
	return res
}

// On adds a listener for selection changes.
func (sl *Selection) On(fun func(ev *SelectionEvent)) {
	sl.Listeners.Add(events.SelectionChanged, func(e events.Event) {
		fun(e.(*SelectionEvent))
	})
}

// Nodes returns the current selection snapshot. It must not be modified.
func (sl *Selection) Nodes() []Node {
	return sl.nodes
}

// Len returns the number of selected nodes.
func (sl *Selection) Len() int {
	return len(sl.nodes)
}

// Contains returns true if the given node is selected.
func (sl *Selection) Contains(n Node) bool {
	return slices.Contains(sl.nodes, n)
}

// Set replaces the selection with the given nodes. Nil entries and
// duplicates are dropped.
func (sl *Selection) Set(nodes ...Node) {
	ns := CompactNodes(nodes)
	res := ns[:0]
	for _, n := range ns {
		if !slices.Contains(res, n) {
			res = append(res, n)
		}
	}
	sl.nodes = res
	sl.notify()
}

// Add adds the given node to the selection if it is not already selected.
func (sl *Selection) Add(n Node) {
	if n == nil || sl.Contains(n) {
		return
	}
	sl.nodes = append(slices.Clip(sl.nodes), n)
	sl.notify()
}

// Toggle adds the given node if it is not selected, and removes it otherwise.
func (sl *Selection) Toggle(n Node) {
	if n == nil {
		return
	}
	if !sl.Contains(n) {
		sl.Add(n)
		return
	}
	sl.nodes = slices.DeleteFunc(slices.Clone(sl.nodes), func(o Node) bool { return o == n })
	sl.notify()
}

// Clear empties the selection.
func (sl *Selection) Clear() {
	if len(sl.nodes) == 0 {
		return
	}
	sl.nodes = nil
	sl.notify()
}

func (sl *Selection) notify() {
	ev := &SelectionEvent{Nodes: sl.nodes}
	ev.Init()
	ev.Typ = events.SelectionChanged
	sl.Listeners.Call(ev)
}
