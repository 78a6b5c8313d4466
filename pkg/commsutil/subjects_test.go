package commsutil

import "testing"

func TestBuildProcessedSubject(t *testing.T) {
	tests := []struct {
		name string
		key  string
		want string
	}{
		{"cash", "cash", "payments.processed.cash"},
		{"debit", "debit", "payments.processed.debit"},
		{"dotted key", "card.virtual", "payments.processed.card_virtual"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BuildProcessedSubject(tt.key)
			if got != tt.want {
				t.Errorf("BuildProcessedSubject(%q) = %q, want %q", tt.key, got, tt.want)
			}
		})
	}
}

func TestBuildNotifySubject(t *testing.T) {
	tests := []struct {
		name    string
		channel string
		want    string
	}{
		{"email", "email", "notify.email"},
		{"sms", "sms", "notify.sms"},
		{"dotted channel", "push.ios", "notify.push_ios"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BuildNotifySubject(tt.channel)
			if got != tt.want {
				t.Errorf("BuildNotifySubject(%q) = %q, want %q", tt.channel, got, tt.want)
			}
		})
	}
}
