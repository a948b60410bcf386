// servarr-tui - Terminal dashboard and CLI for Radarr, Sonarr, and Lidarr
// Copyright 2026 tomtom215
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/servarr-tui

// Package keyhandler implements spec §4.4: the ordered chain of handlers
// that turns a key event into a state mutation and/or a network-event
// emission. Each handler is scoped to a set of route blocks via Accepts;
// the dispatcher in chain.go walks a compile-time list of handlers and
// invokes the single one whose Accepts matches the current route, the
// shape spec §9's design note recommends for a language without dynamic
// trait objects baked into the runtime the way the original design assumed.
package keyhandler

import "github.com/tomtom215/servarr-tui/internal/models"

// Key is one key event delivered by the (external) terminal input reader.
// Bindings are table-driven (spec §6): Rune carries the literal character
// for Runes/other printable keys; Name identifies non-printable keys.
type Key struct {
	Name Name
	Rune rune
}

// Name enumerates the non-printable keys spec §6 names, plus KeyRune for
// any printable character (inspected via Key.Rune).
type Name int

const (
	KeyRune Name = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyEnter
	KeyEsc
	KeyTab
	KeyDelete
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyBackspace
)

// Default single-character bindings (spec §6). Vim-style h/j/k/l double as
// Left/Down/Up/Right everywhere a handler doesn't treat them as textbox
// input (guarded by IgnoreSpecialKeysForTextboxInput, spec §4.4).
const (
	RuneLeft    = 'h'
	RuneDown    = 'j'
	RuneUp      = 'k'
	RuneRight   = 'l'
	RuneQuit    = 'q'
	RuneConfirm = 'y'
	RuneDelete  = 'x' // DEL key is the primary binding; 'x' is its rune fallback
	RuneEdit    = 'e'
	RuneAdd     = 'a'
	RuneRefresh = 'r'
	RuneUpdate  = 'u'
	RuneTest    = 't'
	RuneSort    = 's'
	RuneFilter  = '/'
)

// Action is the semantic operation a key resolves to, independent of which
// literal key produced it (arrow key or vim letter). Resolve translates a
// raw Key into an Action using the default bindings.
type Action int

const (
	ActionNone Action = iota
	ActionUp
	ActionDown
	ActionLeft
	ActionRight
	ActionEnter
	ActionEsc
	ActionTab
	ActionDelete
	ActionHome
	ActionEnd
	ActionPageUp
	ActionPageDown
	ActionQuit
	ActionConfirm
	ActionEdit
	ActionAdd
	ActionRefresh
	ActionUpdate
	ActionTest
	ActionSort
	ActionFilter
	ActionChar // any other printable rune, carried in Key.Rune for textbox input
)

// Resolve maps a raw Key to its Action under the default binding table.
// ignoreSpecial suppresses every single-character binding (each rune then
// resolves to ActionChar) while the user is typing into a text field (spec
// §4.4's textbox isolation); named keys keep their bindings.
func Resolve(k Key, ignoreSpecial bool) Action {
	switch k.Name {
	case KeyUp:
		return ActionUp
	case KeyDown:
		return ActionDown
	case KeyLeft:
		return ActionLeft
	case KeyRight:
		return ActionRight
	case KeyEnter:
		return ActionEnter
	case KeyEsc:
		return ActionEsc
	case KeyTab:
		return ActionTab
	case KeyDelete:
		return ActionDelete
	case KeyHome:
		return ActionHome
	case KeyEnd:
		return ActionEnd
	case KeyPageUp:
		return ActionPageUp
	case KeyPageDown:
		return ActionPageDown
	case KeyBackspace:
		return ActionChar
	}
	if ignoreSpecial {
		return ActionChar
	}
	switch k.Rune {
	case RuneLeft:
		return ActionLeft
	case RuneDown:
		return ActionDown
	case RuneUp:
		return ActionUp
	case RuneRight:
		return ActionRight
	case RuneQuit:
		return ActionQuit
	case RuneConfirm:
		return ActionConfirm
	case RuneDelete:
		return ActionDelete
	case RuneEdit:
		return ActionEdit
	case RuneAdd:
		return ActionAdd
	case RuneRefresh:
		return ActionRefresh
	case RuneUpdate:
		return ActionUpdate
	case RuneTest:
		return ActionTest
	case RuneSort:
		return ActionSort
	case RuneFilter:
		return ActionFilter
	}
	return ActionChar
}

// blockSet is a small fixed-membership helper used by every handler's
// Accepts implementation.
type blockSet map[models.Block]struct{}

func blocks(bs ...models.Block) blockSet {
	s := make(blockSet, len(bs))
	for _, b := range bs {
		s[b] = struct{}{}
	}
	return s
}

func (s blockSet) has(b models.Block) bool {
	_, ok := s[b]
	return ok
}
