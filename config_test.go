package flow

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseConfig(t *testing.T) {
	type tc struct {
		data    string
		check   func(t *testing.T, c Config)
		wantErr string
	}

	tests := map[string]tc{
		"empty keeps defaults": {
			data: ``,
			check: func(t *testing.T, c Config) {
				if c != DefaultConfig() {
					t.Errorf("config = %+v, want defaults", c)
				}
			},
		},
		"partial override": {
			data: "[text]\nfont_size = 12.0\n\n[viewport]\nwidth = 1024.0\n",
			check: func(t *testing.T, c Config) {
				if c.Text.FontSize != 12 || c.Text.Estimator != EstimatorCell {
					t.Errorf("text = %+v, want font 12 with cell estimator", c.Text)
				}
				if c.ViewportSize() != (Size{Width: 1024, Height: 600}) {
					t.Errorf("viewport = %+v, want 1024x600", c.ViewportSize())
				}
			},
		},
		"face estimator": {
			data: "[text]\nestimator = \"face\"\n\n[debug]\nlog_file = \"trace.log\"\nlevel = \"debug\"\n",
			check: func(t *testing.T, c Config) {
				if _, ok := c.Estimator().(*FaceEstimator); !ok {
					t.Errorf("Estimator() = %T, want *FaceEstimator", c.Estimator())
				}
				if c.Debug.LogFile != "trace.log" || c.Debug.Level != "debug" {
					t.Errorf("debug = %+v", c.Debug)
				}
			},
		},
		"bad estimator": {
			data:    "[text]\nestimator = \"magic\"\n",
			wantErr: "text.estimator",
		},
		"negative viewport": {
			data:    "[viewport]\nheight = -1.0\n",
			wantErr: "viewport",
		},
		"negative metrics": {
			data:    "[text]\nchar_width = -0.5\n",
			wantErr: "text metrics",
		},
		"malformed": {
			data:    "[text\n",
			wantErr: "parse config",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			c, err := ParseConfig([]byte(tt.data))
			if tt.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
					t.Fatalf("ParseConfig() error = %v, want %q", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseConfig() error = %v", err)
			}
			tt.check(t, c)
		})
	}
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.toml")
	if err := os.WriteFile(path, []byte("[text]\nchar_width = 0.5\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	c, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if c.Text.CharWidth != 0.5 {
		t.Errorf("char_width = %v, want 0.5", c.Text.CharWidth)
	}

	if _, err := LoadConfig(filepath.Join(dir, "missing.toml")); err == nil {
		t.Error("LoadConfig(missing explicit path) error = nil, want error")
	}

	t.Chdir(dir)
	c, err = LoadConfig("")
	if err != nil || c != DefaultConfig() {
		t.Errorf("LoadConfig(\"\") without flow.toml = %+v, %v, want defaults", c, err)
	}
}

func TestConfig_EngineOptions(t *testing.T) {
	c := DefaultConfig()
	c.Text.FontSize = 10
	c.Text.CharWidth = 0.5

	label := Text("abcd", WithID("label"))
	root := VStack(WithID("root"), WithAlign(AlignStart), WithChildren(label))
	NewEngine(c.EngineOptions()...).ComputeLayout(root, Size{Width: 100, Height: 100})

	if got := label.Frame().Size(); got != (Size{Width: 20, Height: 12}) {
		t.Errorf("label size = %+v, want 20x12", got)
	}
}
