package capture

import "testing"

func TestDisplayText(t *testing.T) {
	tests := []struct {
		name    string
		session Session
		want    string
	}{
		{
			name:    "nothing held",
			session: Session{CameraReady: true},
			want:    "Awaiting text capture...",
		},
		{
			name:    "translation held",
			session: Session{CameraReady: true, LastTranslatedText: "Hola mundo"},
			want:    "Translated Text:\nHola mundo",
		},
		{
			name:    "sentinel translation held",
			session: Session{CameraReady: true, LastTranslatedText: "No se reconoció texto."},
			want:    "Translated Text:\nNo se reconoció texto.",
		},
		{
			name:    "camera not ready",
			session: Session{},
			want:    "Awaiting text capture...",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.session.DisplayText(); got != tt.want {
				t.Errorf("Expected %q, got %q", tt.want, got)
			}
		})
	}
}
