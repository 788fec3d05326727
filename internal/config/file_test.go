package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/dshills/stringmod/internal/transform"
)

const sampleFile = `AccelBraces=<Control><Shift>b
AccelBrackets=<Control><Shift>k
AccelQuotes=
AccelCustom=<Alt>c
AccelStr2Array=
AccelStr2WArray=F7
CustomStart=/* 
CustomEnd= */
RadioCharArray=1
RadioWordArray=2
`

func TestParse(t *testing.T) {
	cfg, err := Parse(strings.NewReader(sampleFile), "sample")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	want := &Config{
		AccelBraces:     "<Control><Shift>b",
		AccelBrackets:   "<Control><Shift>k",
		AccelCustom:     "<Alt>c",
		AccelStr2WArray: "F7",
		CustomStart:     "/* ",
		CustomEnd:       " */",
		RadioCharArray:  1,
		RadioWordArray:  2,
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("Parse() mismatch (-want +got):\n%s", diff)
	}
}

func TestParseValueEdgeCases(t *testing.T) {
	tests := []struct {
		name  string
		start string
		want  string
	}{
		{"space value", "CustomStart= ", " "},
		{"equals in value", "CustomStart==", "="},
		{"empty", "CustomStart=", ""},
		{"crlf", "CustomStart=x\r", "x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lines := strings.Split(strings.TrimSuffix(sampleFile, "\n"), "\n")
			lines[KeyCustomStart] = tt.start
			cfg, err := Parse(strings.NewReader(strings.Join(lines, "\n")), "t")
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			if cfg.CustomStart != tt.want {
				t.Errorf("CustomStart = %q, want %q", cfg.CustomStart, tt.want)
			}
		})
	}
}

func TestParseCRLF(t *testing.T) {
	data := strings.ReplaceAll(sampleFile, "\n", "\r\n")
	cfg, err := Parse(strings.NewReader(data), "crlf")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if cfg.CustomEnd != " */" || cfg.RadioWordArray != 2 {
		t.Errorf("Parse() = %+v", cfg)
	}
}

func TestParseErrors(t *testing.T) {
	lines := strings.Split(strings.TrimSuffix(sampleFile, "\n"), "\n")
	with := func(i int, s string) string {
		l := append([]string(nil), lines...)
		l[i] = s
		return strings.Join(l, "\n") + "\n"
	}

	tests := []struct {
		name     string
		data     string
		wantErr  error
		wantLine int
	}{
		{"missing separator", with(2, "AccelQuotes"), ErrMissingSeparator, 3},
		{"wrong key", with(0, "AccelBrackets=x"), ErrUnexpectedKey, 1},
		{"reordered", with(7, "CustomStart=x"), ErrUnexpectedKey, 8},
		{"key with space", with(6, "CustomStart =x"), ErrUnexpectedKey, 7},
		{"not an int", with(8, "RadioCharArray=one"), ErrInvalidChoice, 9},
		{"out of range", with(9, "RadioWordArray=3"), transform.ErrChoiceOutOfRange, 10},
		{"negative", with(8, "RadioCharArray=-1"), transform.ErrChoiceOutOfRange, 9},
		{"truncated", strings.Join(lines[:4], "\n"), ErrMissingKey, 5},
		{"empty file", "", ErrMissingKey, 1},
		{"extra line", sampleFile + "Extra=1\n", ErrExtraLine, 11},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Parse(strings.NewReader(tt.data), "bad.cfg")
			if cfg != nil {
				t.Errorf("Parse() returned config on error")
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Parse() error = %v, want %v", err, tt.wantErr)
			}
			var pe *ParseError
			if !errors.As(err, &pe) {
				t.Fatalf("Parse() error = %T, want *ParseError", err)
			}
			if pe.Line != tt.wantLine {
				t.Errorf("ParseError.Line = %d, want %d", pe.Line, tt.wantLine)
			}
			if pe.Path != "bad.cfg" {
				t.Errorf("ParseError.Path = %q, want %q", pe.Path, "bad.cfg")
			}
		})
	}
}

func TestParseTrailingBlankLines(t *testing.T) {
	if _, err := Parse(strings.NewReader(sampleFile+"\n\n"), "t"); err != nil {
		t.Errorf("Parse() error = %v", err)
	}
}

func TestWrite(t *testing.T) {
	cfg, err := Parse(strings.NewReader(sampleFile), "sample")
	if err != nil {
		t.Fatal(err)
	}
	var b strings.Builder
	if err := Write(&b, cfg); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if b.String() != sampleFile {
		t.Errorf("Write() =\n%s\nwant\n%s", b.String(), sampleFile)
	}
}

func TestWriteInvalid(t *testing.T) {
	cfg := Default()
	cfg.RadioCharArray = 9
	var b strings.Builder
	if err := Write(&b, cfg); !errors.Is(err, transform.ErrChoiceOutOfRange) {
		t.Errorf("Write() error = %v, want ErrChoiceOutOfRange", err)
	}
	if b.Len() != 0 {
		t.Error("Write() should not write an invalid config")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	configs := []*Config{
		Default(),
		{
			AccelBraces: "<Control>b", AccelBrackets: "<Control>k", AccelQuotes: "<Control>q",
			AccelCustom: "F5", AccelStr2Array: "<Shift>F6", AccelStr2WArray: "<Alt>w",
			CustomStart: " ", CustomEnd: "a=b", RadioCharArray: 2, RadioWordArray: 1,
		},
		{CustomStart: "", CustomEnd: "", RadioCharArray: 0, RadioWordArray: 2},
	}

	for i, cfg := range configs {
		path := filepath.Join(t.TempDir(), "stringmod.cfg")
		if err := Save(path, cfg); err != nil {
			t.Fatalf("%d: Save() error = %v", i, err)
		}
		got, err := Load(path)
		if err != nil {
			t.Fatalf("%d: Load() error = %v", i, err)
		}
		if diff := cmp.Diff(cfg, got); diff != "" {
			t.Errorf("%d: round trip mismatch (-want +got):\n%s", i, diff)
		}
	}
}

func TestLoadCreatesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "stringmod.cfg")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if diff := cmp.Diff(Default(), cfg); diff != "" {
		t.Errorf("Load() mismatch (-want +got):\n%s", diff)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("defaults not written: %v", err)
	}
	want := "AccelBraces=\nAccelBrackets=\nAccelQuotes=\nAccelCustom=\nAccelStr2Array=\nAccelStr2WArray=\n" +
		"CustomStart=\"\nCustomEnd=\"\nRadioCharArray=0\nRadioWordArray=0\n"
	if string(data) != want {
		t.Errorf("written file =\n%s\nwant\n%s", data, want)
	}
}

func TestLoadMalformedLeavesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stringmod.cfg")
	bad := strings.Replace(sampleFile, "RadioCharArray=1", "RadioCharArray=7", 1)
	if err := os.WriteFile(path, []byte(bad), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); !errors.Is(err, transform.ErrChoiceOutOfRange) {
		t.Fatalf("Load() error = %v, want ErrChoiceOutOfRange", err)
	}
	data, _ := os.ReadFile(path)
	if string(data) != bad {
		t.Error("Load() must not rewrite a malformed file")
	}
}
