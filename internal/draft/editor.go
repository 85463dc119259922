// Package draft implements the single in-progress entry editor. The editor
// is a record of independent fields, not a validated state machine: each
// setter replaces exactly one field, and submit-time policy lives in
// ValidateForCommit, deliberately outside the editable state.
package draft

import (
	"github.com/yuhsinc/pocket-ledger/internal/dates"
	"github.com/yuhsinc/pocket-ledger/internal/model"
)

// Overrides optionally seeds individual draft fields on reset. Nil fields
// keep the defaults.
type Overrides struct {
	Mode       *model.Mode
	Amount     *float64
	Note       *string
	Date       *string
	CategoryID *model.CategoryID
	TemplateID *string
}

// Editor holds the current draft and its mutation set.
type Editor struct {
	d model.Draft
}

// NewEditor creates an editor holding a default draft, optionally seeded
// with overrides.
func NewEditor(ov *Overrides) *Editor {
	e := &Editor{}
	e.Reset(ov)
	return e
}

// Draft returns the current draft value.
func (e *Editor) Draft() model.Draft {
	return e.d
}

// SetMode replaces the draft's mode.
func (e *Editor) SetMode(m model.Mode) { e.d.Mode = m }

// SetAmount replaces the draft's amount.
func (e *Editor) SetAmount(v float64) { e.d.Amount = v }

// SetNote replaces the draft's note.
func (e *Editor) SetNote(s string) { e.d.Note = s }

// SetDate replaces the draft's date.
func (e *Editor) SetDate(iso string) { e.d.Date = iso }

// SetCategory replaces the draft's category. An empty id clears it.
func (e *Editor) SetCategory(id model.CategoryID) { e.d.CategoryID = id }

// SetTemplateID replaces the draft's template reference. An empty id
// clears it.
func (e *Editor) SetTemplateID(id string) { e.d.TemplateID = id }

// ApplyTemplate merges a quick template into the draft: template id,
// amount, and category come from the template, falling back to the current
// draft values when the template field is zero. Note and date are left
// untouched so the user's choices survive applying a template.
func (e *Editor) ApplyTemplate(tpl model.QuickTemplate) {
	e.d.TemplateID = tpl.ID
	if tpl.Amount != 0 {
		e.d.Amount = float64(tpl.Amount)
	}
	if tpl.CategoryID != "" {
		e.d.CategoryID = tpl.CategoryID
	}
}

// Reset replaces the entire draft with defaults merged with any overrides.
// Defaults: expense mode, zero amount, empty note, today's date, no
// category, no template.
func (e *Editor) Reset(ov *Overrides) {
	d := model.Draft{
		Mode: model.ModeExpense,
		Date: dates.Today(),
	}
	if ov != nil {
		if ov.Mode != nil {
			d.Mode = *ov.Mode
		}
		if ov.Amount != nil {
			d.Amount = *ov.Amount
		}
		if ov.Note != nil {
			d.Note = *ov.Note
		}
		if ov.Date != nil {
			d.Date = *ov.Date
		}
		if ov.CategoryID != nil {
			d.CategoryID = *ov.CategoryID
		}
		if ov.TemplateID != nil {
			d.TemplateID = *ov.TemplateID
		}
	}
	e.d = d
}
