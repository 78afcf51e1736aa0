package cli

import (
	"slices"
	"testing"

	"github.com/spf13/cobra"

	"github.com/matzehuels/tagcloud/pkg/errors"
	"github.com/matzehuels/tagcloud/pkg/geom"
	"github.com/matzehuels/tagcloud/pkg/pipeline"
)

func TestParsePoint(t *testing.T) {
	tests := []struct {
		in      string
		want    geom.Point
		wantErr bool
	}{
		{"0,0", geom.Pt(0, 0), false},
		{"10,-20", geom.Pt(10, -20), false},
		{" 3 , 4 ", geom.Pt(3, 4), false},
		{"3", geom.Point{}, true},
		{"a,b", geom.Point{}, true},
		{"1.5,2", geom.Point{}, true},
		{"", geom.Point{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parsePoint(tt.in)
			if tt.wantErr {
				if !errors.Is(err, errors.ErrCodeInvalidInput) {
					t.Errorf("parsePoint(%q) error = %v, want INVALID_INPUT", tt.in, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("parsePoint(%q) error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("parsePoint(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseFormats(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty", "", nil},
		{"single format", "svg", []string{"svg"}},
		{"multiple formats", "svg,png,json", []string{"svg", "png", "json"}},
		{"spaces and blanks", " png , ,svg ", []string{"png", "svg"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := parseFormats(tt.input); !slices.Equal(got, tt.want) {
				t.Errorf("parseFormats(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestLayoutFlagsApply(t *testing.T) {
	var lf layoutFlags
	cmd := &cobra.Command{Use: "x"}
	lf.register(cmd)
	if err := cmd.ParseFlags([]string{"--center", "5,6", "--spiral-step", "0.2"}); err != nil {
		t.Fatal(err)
	}

	opts := pipeline.Options{SpiralRadius: 3, SpiralStep: 1}
	if err := lf.apply(cmd, &opts); err != nil {
		t.Fatal(err)
	}
	if opts.Center == nil || *opts.Center != geom.Pt(5, 6) {
		t.Errorf("Center = %v", opts.Center)
	}
	if opts.SpiralStep != 0.2 {
		t.Errorf("SpiralStep = %v, want 0.2", opts.SpiralStep)
	}
	if opts.SpiralRadius != 3 {
		t.Errorf("unset flag overwrote SpiralRadius: %v", opts.SpiralRadius)
	}
}

func TestRenderFlagsApply(t *testing.T) {
	var rf renderFlags
	cmd := &cobra.Command{Use: "x"}
	rf.register(cmd, "formats")
	if err := cmd.ParseFlags([]string{"-f", "svg", "--stroke", "none", "--scale", "2"}); err != nil {
		t.Fatal(err)
	}

	opts := pipeline.Options{Fill: "#abcdef", Formats: []string{"png"}}
	rf.apply(cmd, &opts)
	if !slices.Equal(opts.Formats, []string{"svg"}) {
		t.Errorf("Formats = %v", opts.Formats)
	}
	if opts.Stroke != pipeline.StrokeNone || opts.Scale != 2 {
		t.Errorf("Stroke, Scale = %q, %d", opts.Stroke, opts.Scale)
	}
	if opts.Fill != "#abcdef" {
		t.Errorf("unset flag overwrote Fill: %q", opts.Fill)
	}
}
