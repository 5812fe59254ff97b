package capture

// Overlay strings. The display layer renders DisplayText verbatim.
const (
	// NoTextSentinel replaces an empty recognition result before
	// translation, so the translator never sees an empty call.
	NoTextSentinel = "No text recognized."

	awaitingText  = "Awaiting text capture..."
	displayPrefix = "Translated Text:\n"
)

// Slot selects which half of the language pair to change.
type Slot string

const (
	SlotSource Slot = "source"
	SlotTarget Slot = "target"
)

// Session is the controller's state, read by the display layer.
// Exactly one instance exists per controller; only the controller mutates
// it. Readers get copies via Controller.Snapshot.
type Session struct {
	// CameraReady is true once the camera source opened successfully.
	CameraReady bool `json:"camera_ready"`

	// Busy is true while a pipeline run is in flight.
	Busy bool `json:"busy"`

	// LastTranslatedText is the most recent translation, raw. Empty when
	// nothing is held (never set, or expired).
	LastTranslatedText string `json:"last_translated_text"`

	// SourceLang and TargetLang are the selected language pair.
	SourceLang string `json:"source_lang"`
	TargetLang string `json:"target_lang"`
}

// DisplayText returns the overlay line for this session.
func (s Session) DisplayText() string {
	if s.LastTranslatedText == "" {
		return awaitingText
	}
	return displayPrefix + s.LastTranslatedText
}
