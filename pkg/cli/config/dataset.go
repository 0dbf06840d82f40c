package config

import (
	"log/slog"
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/sprintboard/pkg/domain/model"
	"github.com/secmon-lab/sprintboard/pkg/domain/types"
	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"
)

// DefaultSourceID names the source of a bare item list
const DefaultSourceID types.SourceID = "default"

// Dataset holds the path of a seed dataset
type Dataset struct {
	Path  string
	Watch bool
}

// Flags returns CLI flags for Dataset configuration
func (d *Dataset) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "dataset",
			Usage:       "YAML or JSON file with timeline items to load",
			Sources:     cli.EnvVars("SPRINTBOARD_DATASET"),
			Destination: &d.Path,
		},
	}
}

// WatchFlags returns the flag enabling dataset reload, used by serve only
func (d *Dataset) WatchFlags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{
			Name:        "watch-dataset",
			Usage:       "Re-import the dataset when the file changes",
			Sources:     cli.EnvVars("SPRINTBOARD_WATCH_DATASET"),
			Destination: &d.Watch,
		},
	}
}

// Configure loads the dataset, or returns nil when no path is set
func (d *Dataset) Configure() (*model.Dataset, error) {
	if d.Path == "" {
		return nil, nil
	}
	return LoadDatasetFromFile(d.Path)
}

// LogValue returns structured log value
func (d Dataset) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("path", d.Path),
		slog.Bool("watch", d.Watch),
	)
}

// LoadDatasetFromFile loads a dataset from a YAML or JSON file. The file holds
// either a "sources" mapping or a bare list of items, which becomes the
// "default" source.
func LoadDatasetFromFile(path string) (*model.Dataset, error) {
	if path == "" {
		return nil, goerr.New("dataset file path is required")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, goerr.Wrap(err, "dataset file not found",
				goerr.V("path", path))
		}
		return nil, goerr.Wrap(err, "failed to read dataset file",
			goerr.V("path", path))
	}

	dataset, err := ParseDataset(data)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to load dataset", goerr.V("path", path))
	}
	return dataset, nil
}

// ParseDataset parses dataset content. JSON is accepted as it is valid YAML.
func ParseDataset(data []byte) (*model.Dataset, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, goerr.Wrap(err, "failed to parse dataset")
	}
	if root.Kind != yaml.DocumentNode || len(root.Content) == 0 {
		return nil, goerr.New("dataset is empty")
	}

	var dataset model.Dataset
	switch node := root.Content[0]; node.Kind {
	case yaml.SequenceNode:
		var items []model.RawTimelineItem
		if err := node.Decode(&items); err != nil {
			return nil, goerr.Wrap(err, "failed to decode item list")
		}
		dataset.Sources = []model.DatasetSource{{ID: DefaultSourceID, Items: items}}
	case yaml.MappingNode:
		if err := node.Decode(&dataset); err != nil {
			return nil, goerr.Wrap(err, "failed to decode dataset")
		}
	default:
		return nil, goerr.New("dataset must be a list of items or a mapping with sources")
	}

	if err := dataset.Validate(); err != nil {
		return nil, goerr.Wrap(err, "invalid dataset")
	}
	return &dataset, nil
}
