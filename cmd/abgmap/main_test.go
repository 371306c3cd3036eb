package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRun_Text(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"defaults", nil, "pH = 7.40\nClassification: Normal\n"},
		{"respiratory acidosis", []string{"-paco2", "60", "-hco3", "30"}, "Classification: Partially Compensated Respiratory Acidosis\n"},
		{"pH override", []string{"-paco2", "40", "-hco3", "18", "-ph", "7.20"}, "pH = 7.20\nClassification: Uncompensated Metabolic Acidosis\n"},
		{"german", []string{"-lang", "de"}, "pH = 7,40\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			if code := run(tt.args, &stdout, &stderr); code != 0 {
				t.Fatalf("run() = %d, stderr: %s", code, stderr.String())
			}
			if !strings.Contains(stdout.String(), tt.want) {
				t.Errorf("stdout = %q, want to contain %q", stdout.String(), tt.want)
			}
		})
	}
}

func TestRun_JSON(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"-paco2", "30", "-hco3", "24", "-json"}, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("run() = %d, stderr: %s", code, stderr.String())
	}
	var got struct {
		Result struct {
			Label string `json:"label"`
			Color string `json:"color"`
		} `json:"result"`
		Rule       string `json:"rule"`
		Consistent bool   `json:"consistent"`
	}
	if err := json.Unmarshal(stdout.Bytes(), &got); err != nil {
		t.Fatalf("invalid JSON %q: %v", stdout.String(), err)
	}
	if got.Result.Label != "Uncompensated Respiratory Alkalosis" || got.Result.Color != "Blue" {
		t.Errorf("result = %+v", got.Result)
	}
	if got.Rule != "alkalosis/respiratory/uncompensated" || !got.Consistent {
		t.Errorf("rule = %q consistent = %v", got.Rule, got.Consistent)
	}
}

func TestRun_InconsistentPHWarns(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if code := run([]string{"-ph", "7.0"}, &stdout, &stderr); code != 0 {
		t.Fatalf("run() = %d", code)
	}
	if !strings.Contains(stderr.String(), "supplied pH disagrees") {
		t.Errorf("stderr = %q, want consistency warning", stderr.String())
	}
	if !strings.Contains(stdout.String(), "Classification: Undefined") {
		t.Errorf("stdout = %q", stdout.String())
	}
}

func TestRun_OutsideSliderRangeWarns(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if code := run([]string{"-paco2", "120"}, &stdout, &stderr); code != 0 {
		t.Fatalf("run() = %d", code)
	}
	if !strings.Contains(stderr.String(), "PaCO2 outside slider range") {
		t.Errorf("stderr = %q", stderr.String())
	}
}

func TestRun_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		code int
	}{
		{"zero PaCO2", []string{"-paco2", "0"}, 1},
		{"negative HCO3", []string{"-hco3", "-3"}, 1},
		{"NaN pH", []string{"-ph", "NaN"}, 1},
		{"unknown flag", []string{"-nope"}, 2},
		{"bad language", []string{"-lang", "!!"}, 2},
		{"unwritable output", []string{"-o", filepath.Join(t.TempDir(), "missing", "map.png"), "-width", "200", "-height", "200"}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			if code := run(tt.args, &stdout, &stderr); code != tt.code {
				t.Errorf("run(%v) = %d, want %d; stderr: %s", tt.args, code, tt.code, stderr.String())
			}
		})
	}
}

func TestRun_WritesPNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "map.png")
	var stdout, stderr bytes.Buffer
	code := run([]string{"-o", path, "-width", "300", "-height", "300", "-paco2", "50", "-hco3", "28"}, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("run() = %d, stderr: %s", code, stderr.String())
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(data, []byte("\x89PNG\r\n\x1a\n")) {
		t.Error("output is not a PNG file")
	}
	if !strings.Contains(stderr.String(), "map written") {
		t.Errorf("stderr = %q, want info log", stderr.String())
	}
}
