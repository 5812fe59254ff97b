// Package ocr provides text recognition on captured camera frames.
//
// Recognition is delegated to a remote vision model; the package owns the
// request shaping and error taxonomy, not the recognition itself. An empty
// recognition result is valid and distinct from a failure: a frame with no
// readable text yields Result{Text: ""} and a nil error.
package ocr

import "context"

// Result is the output of one recognition call.
type Result struct {
	// Text is the recognized plain text. Empty when the frame holds no
	// readable text.
	Text string `json:"text"`
}

// Recognizer extracts text from an image file.
// All implementations must satisfy this interface.
type Recognizer interface {
	// Recognize runs text recognition on the image at imagePath.
	Recognize(ctx context.Context, imagePath string) (Result, error)
}
