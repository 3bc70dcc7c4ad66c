package models

// Mode identifies a practice mode
type Mode string

const (
	ModePronunciation Mode = "pronunciation"
	ModeSpelling      Mode = "spelling"
)

// IsValid reports whether the mode is one of the two recognized values
func (m Mode) IsValid() bool {
	return m == ModePronunciation || m == ModeSpelling
}

func (m Mode) String() string {
	return string(m)
}
