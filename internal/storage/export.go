package storage

import (
	"encoding/json"
	"io"
)

type ExportData struct {
	Run    RunMetadata  `json:"run"`
	Stats  []ExportStat `json:"stats"`
	Frames []string     `json:"frames"`
}

type ExportStat struct {
	Frame     int `json:"frame"`
	Particles int `json:"particles"`
	Expired   int `json:"expired"`
}

// ExportJSON writes a run with its frames and stats as one JSON document.
func (s *Store) ExportJSON(w io.Writer, runID string) error {
	meta, err := s.Load(runID)
	if err != nil {
		return err
	}
	frames, err := s.LoadFrames(runID)
	if err != nil {
		return err
	}
	stats, err := s.LoadStats(runID)
	if err != nil {
		return err
	}

	data := ExportData{
		Run:    *meta,
		Stats:  make([]ExportStat, len(stats)),
		Frames: frames,
	}
	for i, st := range stats {
		data.Stats[i] = ExportStat(st)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}
