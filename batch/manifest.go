package batch

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/shirou/gopsutil/cpu"
	"github.com/shirou/gopsutil/host"
	"github.com/shirou/gopsutil/mem"

	"git.solver4all.com/azaryc2s/cvrp"
)

const ManifestFile = "manifest.json"

// Manifest describes one batch run.
type Manifest struct {
	RunID   string       `json:"run_id"`
	Created time.Time    `json:"created"`
	System  cvrp.SysInfo `json:"system"`
	Stream  string       `json:"stream"`
	Failed  int          `json:"failed"`
	Entries []Entry      `json:"entries"`
}

func NewManifest(stream string, entries []Entry) *Manifest {
	failed := 0
	for _, e := range entries {
		if e.Error != "" {
			failed++
		}
	}
	return &Manifest{
		RunID:   uuid.NewString(),
		Created: time.Now().UTC(),
		System:  HostInfo(),
		Stream:  stream,
		Failed:  failed,
		Entries: entries,
	}
}

// HostInfo collects platform, CPU model and RAM of the running machine.
// Unavailable values stay empty.
func HostInfo() cvrp.SysInfo {
	var info cvrp.SysInfo
	if hostStat, err := host.Info(); err == nil {
		info.Platform = hostStat.Platform
	}
	if cpuStat, err := cpu.Info(); err == nil && len(cpuStat) > 0 {
		info.CPU = cpuStat[0].ModelName
	}
	if vmStat, err := mem.VirtualMemory(); err == nil {
		info.RAM = fmt.Sprintf("%d GB", vmStat.Total/1024/1024/1024)
	}
	return info
}

// WriteManifest stores m as dir/manifest.json. It is never compressed.
func WriteManifest(dir string, m *Manifest) (string, error) {
	data, err := json.MarshalIndent(m, "", "\t")
	if err != nil {
		return "", err
	}
	path := filepath.Join(dir, ManifestFile)
	if err := os.WriteFile(path, []byte(cvrp.SanitizeJSONArrayLineBreaks(string(data))), 0644); err != nil {
		return "", fmt.Errorf("failed to write manifest: %w", err)
	}
	return path, nil
}

// ReadManifest loads a manifest written by WriteManifest.
func ReadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("manifest %s: %w", path, err)
	}
	return &m, nil
}
