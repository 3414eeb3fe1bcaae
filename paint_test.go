package shapes

import (
	"errors"
	"reflect"
	"testing"

	"github.com/gogpu/shapes/recording"
)

func TestParseDrawType(t *testing.T) {
	for _, d := range []DrawType{DrawFill, DrawStroke, DrawOutline} {
		got, err := ParseDrawType(d.String())
		if err != nil || got != d {
			t.Errorf("ParseDrawType(%q) = %v, %v", d.String(), got, err)
		}
	}
	if got, err := ParseDrawType(""); err != nil || got != DrawFill {
		t.Errorf("ParseDrawType(\"\") = %v, %v; want fill", got, err)
	}
	if _, err := ParseDrawType("dashed"); !errors.Is(err, ErrUnknownDrawType) {
		t.Errorf("ParseDrawType(dashed) error = %v, want ErrUnknownDrawType", err)
	}
	if got := DrawType(9).String(); got != "DrawType(9)" {
		t.Errorf("String() = %q", got)
	}
}

func TestPaintOperations(t *testing.T) {
	tests := []struct {
		name  string
		paint func(Surface) error
		want  []recording.Command
	}{
		{
			name:  "fill",
			paint: func(s Surface) error { return Fill(s, "red") },
			want: []recording.Command{
				recording.SetFillStyleCommand{Color: "red"},
				recording.FillCommand{},
			},
		},
		{
			name:  "stroke",
			paint: func(s Surface) error { return Stroke(s, "red") },
			want: []recording.Command{
				recording.SetStrokeStyleCommand{Color: "red"},
				recording.SetLineWidthCommand{Width: StrokeWidth},
				recording.StrokeCommand{},
			},
		},
		{
			name:  "outline default border",
			paint: func(s Surface) error { return Outline(s, "red", "") },
			want: []recording.Command{
				recording.SetFillStyleCommand{Color: "red"},
				recording.FillCommand{},
				recording.SetStrokeStyleCommand{Color: "white"},
				recording.SetLineWidthCommand{Width: StrokeWidth},
				recording.StrokeCommand{},
			},
		},
		{
			name:  "outline border",
			paint: func(s Surface) error { return Outline(s, "red", "blue") },
			want: []recording.Command{
				recording.SetFillStyleCommand{Color: "red"},
				recording.FillCommand{},
				recording.SetStrokeStyleCommand{Color: "blue"},
				recording.SetLineWidthCommand{Width: StrokeWidth},
				recording.StrokeCommand{},
			},
		},
		{
			name:  "unknown draw type",
			paint: func(s Surface) error { return paint(s, DrawType(7), "red", "") },
			want:  []recording.Command{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := recording.NewRecorder(10, 10)
			if err := tt.paint(rec); err != nil {
				t.Fatalf("paint: %v", err)
			}
			if got := rec.Commands(); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("commands = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPaintColorError(t *testing.T) {
	rec := recording.NewRecorder(10, 10)
	if err := Fill(rec, "blurple"); err == nil {
		t.Error("Fill with an invalid color: want error")
	}
	if err := Outline(rec, "red", "blurple"); err == nil {
		t.Error("Outline with an invalid border: want error")
	}
}
