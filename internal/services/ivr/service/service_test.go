package service

import (
	"context"
	"testing"

	"navline/internal/core/dialog"
	"navline/internal/core/directive"
	"navline/internal/platform/testkit"
	"navline/internal/services/ivr/domain"
)

func TestNew_RequiresRouter(t *testing.T) {
	testkit.MustPanic(t, func() { New(nil, nil, dialog.Texts{}) })
}

func TestAnswer_MenuAndHangup(t *testing.T) {
	s := New(dialog.NewRouter(dialog.Deps{}), nil, dialog.Texts{})

	menu := s.Answer(context.Background(), domain.Request{ApiPhone: "0501234567"})
	if menu == "" || menu[:7] != "read=t-" {
		t.Fatalf("menu %q", menu)
	}
	if got := s.Answer(context.Background(), domain.Request{Hangup: "true", Menu: "1"}); got != "" {
		t.Fatalf("hangup %q", got)
	}
}

func TestTrouble_DefaultsWhenTextsEmpty(t *testing.T) {
	s := New(dialog.NewRouter(dialog.Deps{}), nil, dialog.Texts{})
	want := directive.MessageGoto(dialog.DefaultTexts().Trouble, directive.MenuRoot).Render()
	if s.Trouble() != want {
		t.Fatalf("trouble %q want %q", s.Trouble(), want)
	}
}

func TestRequest_Raw(t *testing.T) {
	raw := domain.Request{ApiPhone: "p", Menu: "m", Query: "q", Hangup: "h"}.Raw()
	if raw.CallerID != "p" || raw.KeypadInput != "m" || raw.SpokenText != "q" || raw.Hangup != "h" {
		t.Fatalf("raw %+v", raw)
	}
}
