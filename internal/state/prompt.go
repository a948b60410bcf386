// servarr-tui - Terminal dashboard and CLI for Radarr, Sonarr, and Lidarr
// Copyright 2026 tomtom215
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/servarr-tui

package state

// PromptCursor walks the ordered list of fields a multi-step add/edit prompt
// collects (spec §4.1/§4.4: AddMovieSelectMonitor -> ...SelectQualityProfile
// -> ...SelectRootFolder -> ...ConfirmPrompt, and similarly for Series and
// Artist). Each step is a models.Block the key-handler chain matches against
// to know which widget to render.
type PromptCursor struct {
	steps []int // models.Block values, kept as int to avoid an import cycle
	pos   int
}

// NewPromptCursor builds a cursor over steps, starting at the first one.
func NewPromptCursor(steps []int) *PromptCursor {
	return &PromptCursor{steps: steps}
}

// Current reports the active step, or false if the cursor has no steps.
func (c *PromptCursor) Current() (int, bool) {
	if c == nil || len(c.steps) == 0 {
		return 0, false
	}
	return c.steps[c.pos], true
}

// Next advances the cursor, clamped at the final step (the confirm screen
// stays put once reached — it is the key-handler's submit action, not the
// cursor, that completes the prompt).
func (c *PromptCursor) Next() {
	if c == nil || len(c.steps) == 0 {
		return
	}
	if c.pos < len(c.steps)-1 {
		c.pos++
	}
}

// Prev walks the cursor back one step, used by the left/esc handler to
// return to the previous field without discarding what was already entered.
func (c *PromptCursor) Prev() {
	if c == nil || c.pos == 0 {
		return
	}
	c.pos--
}

// AtFirst / AtLast report whether the cursor is at a boundary.
func (c *PromptCursor) AtFirst() bool { return c == nil || c.pos == 0 }
func (c *PromptCursor) AtLast() bool  { return c == nil || c.pos == len(c.steps)-1 }
