package model

// GuidanceEntry explains when one legal-cost option makes sense. Entries
// are advisory copy keyed to the options actually generated; they never
// gate which options exist.
type GuidanceEntry struct {
	Type           OptionType
	Title          string
	Description    string
	WhenToChoose   []string
	Considerations []string
}
