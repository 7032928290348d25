package model

type SpellRequest struct {
	Key     string `json:"key"`
	Bias    string `json:"bias,omitempty"`
	Pitches []int  `json:"pitches"`
}

type SpellResponse struct {
	Key   string   `json:"key"`
	Notes []string `json:"notes"`
}

type KeyResponse struct {
	Key    string   `json:"key"`
	Tonic  string   `json:"tonic"`
	Scale  string   `json:"scale"`
	Bias   string   `json:"bias"`
	Notes  []string `json:"notes"`
	Triads []string `json:"triads"`
}

type ChordResponse struct {
	Name  string   `json:"name"`
	Root  string   `json:"root"`
	Type  string   `json:"type"`
	Notes []string `json:"notes"`
}

type ChordsResponse struct {
	Key    string          `json:"key"`
	Count  int             `json:"count"`
	Chords []ChordResponse `json:"chords"`
}

type IdentifyRequest struct {
	Key     string `json:"key"`
	Pitches []int  `json:"pitches"`
}

type CatalogEntry struct {
	ID        string   `json:"id"`
	Label     string   `json:"label"`
	Intervals []string `json:"intervals"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}
