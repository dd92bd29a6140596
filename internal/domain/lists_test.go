package domain

import (
	"reflect"
	"testing"
)

func TestEncodeTextList(t *testing.T) {
	if got := EncodeTextList(nil); got != "" {
		t.Errorf("EncodeTextList(nil) = %q, want empty string", got)
	}
	if got := EncodeTextList([]string{"no jumping"}); got != `["no jumping"]` {
		t.Errorf("EncodeTextList = %q", got)
	}
}

func TestDecodeTextList(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{name: "round trip", input: `["a","b"]`, want: []string{"a", "b"}},
		{name: "empty string", input: "", want: []string{}},
		{name: "empty array", input: "[]", want: []string{}},
		{name: "not json", input: "no jumping, no spurs", want: []string{}},
		{name: "wrong type", input: `{"a":1}`, want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DecodeTextList(tt.input); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("DecodeTextList(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestSplitJoinName(t *testing.T) {
	tests := []struct {
		name  string
		first string
		last  string
	}{
		{name: "Anna de Vries", first: "Anna", last: "de Vries"},
		{name: "Anna", first: "Anna", last: ""},
		{name: "", first: "", last: ""},
	}
	for _, tt := range tests {
		first, last := SplitName(tt.name)
		if first != tt.first || last != tt.last {
			t.Errorf("SplitName(%q) = (%q, %q), want (%q, %q)", tt.name, first, last, tt.first, tt.last)
		}
	}
	if got := JoinName("Anna", "de Vries"); got != "Anna de Vries" {
		t.Errorf("JoinName = %q", got)
	}
	if got := JoinName("Anna", ""); got != "Anna" {
		t.Errorf("JoinName with empty last = %q", got)
	}
}

func TestPlaceholderEmail(t *testing.T) {
	email := PlaceholderEmail("kp_123")
	if email != "kp_123@noemail.kinde" {
		t.Errorf("PlaceholderEmail = %q", email)
	}
	if !IsPlaceholderEmail(email) {
		t.Error("placeholder email not recognized")
	}
	if IsPlaceholderEmail("anna@example.com") {
		t.Error("real email misclassified as placeholder")
	}
}
