package model

// Draft is the single in-progress, uncommitted entry being edited. Fields
// are mutated independently by the draft editor; nothing here is validated
// until the draft is committed.
type Draft struct {
	Mode       Mode
	Note       string
	Date       string     // YYYY-MM-DD
	CategoryID CategoryID // empty until the user picks one
	TemplateID string     // empty unless a quick template was applied
	Amount     float64
}
