package runner

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/ecomdemo/shopctl/internal/service"
)

func composeServices() []service.Service {
	return []service.Service{
		{Name: "payment-gateway", Directory: "payment-gateway", Python: "3.10.13", Port: 5001},
		{Name: "inventory-api", Directory: "inventory-api", Python: "3.10.13", Port: 5003},
	}
}

func TestGenerateComposeFile(t *testing.T) {
	t.Parallel()

	cf := GenerateComposeFile(composeServices())
	if len(cf.Services) != 2 {
		t.Fatalf("len(Services) = %d, want 2", len(cf.Services))
	}

	pg, ok := cf.Services["payment-gateway"]
	if !ok {
		t.Fatal("payment-gateway missing")
	}
	if pg.Image != "python:3.10-slim" {
		t.Errorf("Image = %q", pg.Image)
	}
	if len(pg.Ports) != 1 || pg.Ports[0] != "5001:5001" {
		t.Errorf("Ports = %v", pg.Ports)
	}
	if len(pg.Volumes) != 1 || pg.Volumes[0] != "./payment-gateway:/app" {
		t.Errorf("Volumes = %v", pg.Volumes)
	}
}

func TestGenerateComposeFileNoPort(t *testing.T) {
	t.Parallel()

	cf := GenerateComposeFile([]service.Service{{Name: "worker", Directory: "worker", Python: "3.10.13"}})
	if len(cf.Services["worker"].Ports) != 0 {
		t.Errorf("Ports = %v, want none", cf.Services["worker"].Ports)
	}
}

func TestWriteAndParseComposeFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "docker-compose.yml")
	cf := GenerateComposeFile(composeServices())

	if err := WriteComposeFile(cf, path); err != nil {
		t.Fatalf("WriteComposeFile: %v", err)
	}

	parsed, err := ParseComposeFile(path)
	if err != nil {
		t.Fatalf("ParseComposeFile: %v", err)
	}
	if len(parsed.Services) != 2 {
		t.Errorf("round-trip lost services: %d", len(parsed.Services))
	}
	if parsed.Services["inventory-api"].Ports[0] != "5003:5003" {
		t.Errorf("Ports = %v", parsed.Services["inventory-api"].Ports)
	}
}

func TestParseComposeFileMissing(t *testing.T) {
	t.Parallel()

	if _, err := ParseComposeFile(filepath.Join(t.TempDir(), "nope.yml")); err == nil {
		t.Fatal("expected error")
	}
}

func TestValidateComposeFile(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		cf      *ComposeFile
		wantErr string
	}{
		{
			name: "valid",
			cf:   GenerateComposeFile(composeServices()),
		},
		{
			name: "duplicate host port",
			cf: &ComposeFile{Services: map[string]ComposeService{
				"a": {Ports: []string{"5001:5001"}},
				"b": {Ports: []string{"5001:8080"}},
			}},
			wantErr: "host port 5001",
		},
		{
			name: "unknown dependency",
			cf: &ComposeFile{Services: map[string]ComposeService{
				"a": {DependsOn: []string{"ghost"}},
			}},
			wantErr: "unknown service ghost",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateComposeFile(tt.cf)
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("ValidateComposeFile: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("err = %v, want mention of %q", err, tt.wantErr)
			}
		})
	}
}

func TestMajorMinor(t *testing.T) {
	t.Parallel()

	tests := []struct{ in, want string }{
		{"3.10.13", "3.10"},
		{"3.11", "3.11"},
		{"3", "3"},
	}
	for _, tt := range tests {
		if got := majorMinor(tt.in); got != tt.want {
			t.Errorf("majorMinor(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
