// SPDX-License-Identifier: EPL-2.0

package wavetable

import (
	"errors"
	"flag"
	"testing"
)

func TestParseKind(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    Kind
		wantErr bool
	}{
		{"sine", Sine, false},
		{"SIN", Sine, false},
		{" square ", Square, false},
		{"sawtooth", Saw, false},
		{"tri", Triangle, false},
		{"noise", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		got, err := ParseKind(tt.in)
		if (err != nil) != tt.wantErr {
			t.Fatalf("ParseKind(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
		if err != nil && !errors.Is(err, ErrUnknownKind) {
			t.Errorf("ParseKind(%q) error = %v, want ErrUnknownKind", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ParseKind(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestKind_StringRoundTrip(t *testing.T) {
	t.Parallel()

	for _, k := range Kinds {
		got, err := ParseKind(k.String())
		if err != nil || got != k {
			t.Errorf("ParseKind(%q) = %v, %v, want %v", k.String(), got, err, k)
		}
	}

	if s := Kind(9).String(); s != "Kind(9)" {
		t.Errorf("Kind(9).String() = %q", s)
	}
}

func TestKind_FlagValue(t *testing.T) {
	t.Parallel()

	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	kind := Sine
	fs.Var(&kind, "wave", "waveform")

	if err := fs.Parse([]string{"-wave", "triangle"}); err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if kind != Triangle {
		t.Errorf("kind = %v, want triangle", kind)
	}
}
