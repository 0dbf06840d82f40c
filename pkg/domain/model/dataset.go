package model

import (
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/sprintboard/pkg/domain/types"
)

// Dataset is a set of sources with their raw items, loaded from a seed file
type Dataset struct {
	Sources []DatasetSource `yaml:"sources" json:"sources"`
}

// DatasetSource is the raw items of one source
type DatasetSource struct {
	ID    types.SourceID    `yaml:"id" json:"id"`
	Items []RawTimelineItem `yaml:"items" json:"items"`
}

// Validate validates the dataset
func (d *Dataset) Validate() error {
	if len(d.Sources) == 0 {
		return goerr.New("at least one source is required")
	}

	seen := make(map[types.SourceID]bool)
	for i, src := range d.Sources {
		if err := src.ID.Validate(); err != nil {
			return goerr.Wrap(err, "invalid source at index", goerr.V("index", i))
		}
		if seen[src.ID] {
			return goerr.New("duplicate source ID", goerr.V("id", src.ID))
		}
		seen[src.ID] = true
	}

	return nil
}

// FindSource returns the source with the given ID or nil
func (d *Dataset) FindSource(id types.SourceID) *DatasetSource {
	for i := range d.Sources {
		if d.Sources[i].ID == id {
			return &d.Sources[i]
		}
	}
	return nil
}
