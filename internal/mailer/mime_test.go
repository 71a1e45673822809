package mailer

import (
	"strings"
	"testing"
)

func TestBuildMIMEMessage(t *testing.T) {
	base := Email{
		From:     "no-reply@local.test",
		FromName: "Shop",
		To:       []string{"buyer@example.com"},
		Subject:  "Payment received",
	}

	t.Run("text and html become multipart", func(t *testing.T) {
		e := base
		e.TextBody = "hello"
		e.HTMLBody = "<p>hello</p>"
		raw, err := buildMIMEMessage(e, "local")
		if err != nil {
			t.Fatal(err)
		}
		for _, want := range []string{
			"multipart/alternative",
			"text/plain; charset=UTF-8",
			"text/html; charset=UTF-8",
			"From: Shop <no-reply@local.test>",
			"To: buyer@example.com",
		} {
			if !strings.Contains(raw, want) {
				t.Errorf("message missing %q", want)
			}
		}
	})

	t.Run("text only", func(t *testing.T) {
		e := base
		e.TextBody = "hello"
		raw, err := buildMIMEMessage(e, "local")
		if err != nil {
			t.Fatal(err)
		}
		if strings.Contains(raw, "multipart") {
			t.Error("text-only message should not be multipart")
		}
	})

	t.Run("non-ascii subject encoded", func(t *testing.T) {
		e := base
		e.Subject = "Ödeme alındı"
		e.TextBody = "hello"
		raw, err := buildMIMEMessage(e, "local")
		if err != nil {
			t.Fatal(err)
		}
		if !strings.Contains(raw, "=?utf-8?q?") {
			t.Error("non-ascii subject not RFC 2047 encoded")
		}
	})

	rejects := []struct {
		name   string
		mutate func(*Email)
	}{
		{"no recipient", func(e *Email) { e.To = nil }},
		{"no from", func(e *Email) { e.From = "" }},
		{"no subject", func(e *Email) { e.Subject = "" }},
		{"no body", func(e *Email) { e.TextBody = ""; e.HTMLBody = "" }},
	}
	for _, tt := range rejects {
		t.Run(tt.name, func(t *testing.T) {
			e := base
			e.TextBody = "hello"
			tt.mutate(&e)
			if _, err := buildMIMEMessage(e, "local"); err == nil {
				t.Fatal("buildMIMEMessage() accepted an invalid email")
			}
		})
	}
}
