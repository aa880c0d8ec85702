package form

import (
	"errors"
	"testing"
)

var cat = Image{Name: "cat.png", ContentType: "image/png", Data: []byte("png")}

func TestState_Submit(t *testing.T) {
	tests := []struct {
		name      string
		state     State
		wantAlert string
		wantSend  bool
		wantBusy  bool
	}{
		{name: "empty", state: State{}, wantAlert: AlertIncomplete},
		{name: "missing_image", state: State{Prompt: "a cat"}, wantAlert: AlertIncomplete},
		{name: "missing_prompt", state: State{Image: &cat}, wantAlert: AlertIncomplete},
		{name: "complete", state: State{Image: &cat, Prompt: "a cat"}, wantSend: true, wantBusy: true},
		{name: "whitespace_prompt_is_present", state: State{Image: &cat, Prompt: "  "}, wantSend: true, wantBusy: true},
		{name: "busy_ignored", state: State{Image: &cat, Prompt: "a cat", Busy: true}, wantBusy: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next, effect := tt.state.Submit()

			if effect.Alert != tt.wantAlert {
				t.Errorf("alert: got %q want %q", effect.Alert, tt.wantAlert)
			}
			if (effect.Send != nil) != tt.wantSend {
				t.Errorf("send: got %v want %v", effect.Send != nil, tt.wantSend)
			}
			if next.Busy != tt.wantBusy {
				t.Errorf("busy: got %v want %v", next.Busy, tt.wantBusy)
			}
		})
	}

	t.Run("clears_previous_result", func(t *testing.T) {
		s := State{Image: &cat, Prompt: "a cat", VideoUrl: "https://old.example/v.mp4"}
		next, effect := s.Submit()
		if next.VideoUrl != "" {
			t.Fatalf("video url not cleared: %q", next.VideoUrl)
		}
		if effect.Send.Prompt != "a cat" || effect.Send.Image.Name != "cat.png" {
			t.Fatalf("unexpected submission %+v", effect.Send)
		}
	})
}

func TestState_Receive(t *testing.T) {
	busy := State{Image: &cat, Prompt: "a cat", Busy: true}

	t.Run("success", func(t *testing.T) {
		next, effect := busy.Receive(Response{VideoUrl: "https://example.com/v.mp4"})
		if next.Busy {
			t.Fatal("busy flag still set")
		}
		if next.VideoUrl != "https://example.com/v.mp4" {
			t.Fatalf("video url: got %q", next.VideoUrl)
		}
		if effect.Alert != "" {
			t.Fatalf("unexpected alert %q", effect.Alert)
		}
	})

	t.Run("failure", func(t *testing.T) {
		next, effect := busy.Receive(Response{Err: errors.New("boom")})
		if next.Busy || next.VideoUrl != "" {
			t.Fatalf("unexpected state %+v", next)
		}
		if effect.Alert != AlertFailed {
			t.Fatalf("alert: got %q want %q", effect.Alert, AlertFailed)
		}
	})

	t.Run("empty_url_is_failure", func(t *testing.T) {
		_, effect := busy.Receive(Response{})
		if effect.Alert != AlertFailed {
			t.Fatalf("alert: got %q want %q", effect.Alert, AlertFailed)
		}
	})
}

func TestState_Inputs(t *testing.T) {
	dog := Image{Name: "dog.png"}

	s := State{}.SelectFile(cat).SelectFile(dog).ChangePrompt(" a dog\n")
	if s.Image == nil || s.Image.Name != "dog.png" {
		t.Fatalf("image not replaced: %+v", s.Image)
	}
	if s.Prompt != " a dog\n" {
		t.Fatalf("prompt not stored verbatim: %q", s.Prompt)
	}
}
