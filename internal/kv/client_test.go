package kv

import "testing"

func TestParseKickPayload(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		userID  int64
		device  string
		wantErr bool
	}{
		{name: "pc device", payload: "42:PC", userID: 42, device: "PC"},
		{name: "device with colon", payload: "7:tab:1", userID: 7, device: "tab:1"},
		{name: "empty device", payload: "9:", userID: 9, device: ""},
		{name: "no separator", payload: "42", wantErr: true},
		{name: "empty user", payload: ":PC", wantErr: true},
		{name: "bad user", payload: "abc:PC", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userID, device, err := parseKickPayload(tt.payload)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Expected error for %q", tt.payload)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if userID != tt.userID || device != tt.device {
				t.Errorf("Expected (%d, %q), got (%d, %q)", tt.userID, tt.device, userID, device)
			}
		})
	}
}

func TestKeyNamespaces(t *testing.T) {
	if got := sessionKey(42); got != "session:42" {
		t.Errorf("sessionKey: got %s", got)
	}
	if got := locationKey(42); got != "location:42" {
		t.Errorf("locationKey: got %s", got)
	}
	if got := seqKey(7); got != "seq:7" {
		t.Errorf("seqKey: got %s", got)
	}
	if got := serviceKey("chat", "127.0.0.1:50052"); got != "service:chat:127.0.0.1:50052" {
		t.Errorf("serviceKey: got %s", got)
	}
}
