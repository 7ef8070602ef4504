package entities

// Segment is a time-bounded span of recognized speech. End >= Start.
type Segment struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
	Text  string  `json:"text"`
}

// Bounds returns the start and end offsets in seconds
func (s Segment) Bounds() (float64, float64) {
	return s.Start, s.End
}

// Caption returns the segment text
func (s Segment) Caption() string {
	return s.Text
}

// Transcription is the recognizer output for one audio file
type Transcription struct {
	Language string    `json:"language"`
	Text     string    `json:"text"`
	Segments []Segment `json:"segments"`
}

// NormalizeSegments clamps negative offsets and makes sure no segment ends
// before it starts.
func (t *Transcription) NormalizeSegments() {
	for i := range t.Segments {
		s := &t.Segments[i]
		if s.Start < 0 {
			s.Start = 0
		}
		if s.End < s.Start {
			s.End = s.Start
		}
	}
}

// DetectedLanguage returns the language code or "unknown".
func (t *Transcription) DetectedLanguage() string {
	if t == nil || t.Language == "" {
		return "unknown"
	}
	return t.Language
}
