package storage

import (
	"bufio"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/san-kum/steamcup/internal/config"
	"github.com/san-kum/steamcup/internal/playback"
)

const (
	metadataFile = "metadata.json"
	framesFile   = "frames.txt"
	statsFile    = "stats.csv"

	// frameSeparator is a form feed on its own line; frames never contain it.
	frameSeparator = "\f\n"
)

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type Summary struct {
	Frames        int     `json:"frames"`
	PeakParticles int     `json:"peak_particles"`
	MeanParticles float64 `json:"mean_particles"`
	TotalExpired  int     `json:"total_expired"`
}

type RunMetadata struct {
	ID        string         `json:"id"`
	Scene     string         `json:"scene"`
	Timestamp time.Time      `json:"timestamp"`
	Config    *config.Config `json:"config"`
	Summary   Summary        `json:"summary"`
}

type FrameStat struct {
	Frame     int
	Particles int
	Expired   int
}

func Summarize(frames []playback.Frame) Summary {
	sum := Summary{Frames: len(frames)}
	if len(frames) == 0 {
		return sum
	}
	total := 0
	for _, f := range frames {
		total += f.Particles
		sum.TotalExpired += f.Expired
		if f.Particles > sum.PeakParticles {
			sum.PeakParticles = f.Particles
		}
	}
	sum.MeanParticles = float64(total) / float64(len(frames))
	return sum
}

// Save writes a run directory and returns its id.
func (s *Store) Save(cfg *config.Config, frames []playback.Frame) (string, error) {
	now := time.Now()
	runID := fmt.Sprintf("%s_%d", cfg.Scene, now.UnixNano())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:        runID,
		Scene:     cfg.Scene,
		Timestamp: now,
		Config:    cfg,
		Summary:   Summarize(frames),
	}
	if err := writeJSON(filepath.Join(runDir, metadataFile), meta); err != nil {
		return "", err
	}
	if err := writeFrames(filepath.Join(runDir, framesFile), frames); err != nil {
		return "", err
	}
	if err := writeStats(filepath.Join(runDir, statsFile), frames); err != nil {
		return "", err
	}
	return runID, nil
}

func writeJSON(path string, v any) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeFrames(path string, frames []playback.Frame) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for _, fr := range frames {
		w.WriteString(fr.Text)
		w.WriteString(frameSeparator)
	}
	return w.Flush()
}

func writeStats(path string, frames []playback.Frame) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"frame", "particles", "expired"}); err != nil {
		return err
	}
	for _, fr := range frames {
		row := []string{strconv.Itoa(fr.Index), strconv.Itoa(fr.Particles), strconv.Itoa(fr.Expired)}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

// List returns every readable run, oldest first.
func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		runs = append(runs, *meta)
	}

	sort.Slice(runs, func(i, j int) bool { return runs[i].Timestamp.Before(runs[j].Timestamp) })
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, metadataFile))
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

func (s *Store) LoadFrames(runID string) ([]string, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, framesFile))
	if err != nil {
		return nil, err
	}
	text := string(data)
	if text == "" {
		return []string{}, nil
	}
	return strings.Split(strings.TrimSuffix(text, frameSeparator), frameSeparator), nil
}

func (s *Store) LoadStats(runID string) ([]FrameStat, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, statsFile))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) < 2 {
		return []FrameStat{}, nil
	}

	stats := make([]FrameStat, 0, len(records)-1)
	for i, record := range records[1:] {
		if len(record) != 3 {
			return nil, fmt.Errorf("%s line %d: expected 3 fields, got %d", statsFile, i+2, len(record))
		}
		var st FrameStat
		for j, dst := range []*int{&st.Frame, &st.Particles, &st.Expired} {
			v, err := strconv.Atoi(record[j])
			if err != nil {
				return nil, fmt.Errorf("%s line %d: %w", statsFile, i+2, err)
			}
			*dst = v
		}
		stats = append(stats, st)
	}
	return stats, nil
}

// Particles returns the live count series of a run.
func Particles(stats []FrameStat) []float64 {
	out := make([]float64, len(stats))
	for i, st := range stats {
		out[i] = float64(st.Particles)
	}
	return out
}
