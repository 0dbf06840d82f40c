package model_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/sprintboard/pkg/domain/model"
)

func TestDatasetValidate(t *testing.T) {
	t.Run("valid dataset", func(t *testing.T) {
		ds := model.Dataset{Sources: []model.DatasetSource{
			{ID: "roadmap", Items: []model.RawTimelineItem{{"name": "A"}}},
			{ID: "sprint-42"},
		}}
		gt.NoError(t, ds.Validate())
		gt.V(t, ds.FindSource("sprint-42")).NotNil()
		gt.V(t, ds.FindSource("missing")).Nil()
	})

	t.Run("error when no sources", func(t *testing.T) {
		ds := model.Dataset{}
		gt.Error(t, ds.Validate())
	})

	t.Run("error on invalid source ID", func(t *testing.T) {
		ds := model.Dataset{Sources: []model.DatasetSource{{ID: "bad id"}}}
		gt.Error(t, ds.Validate())
	})

	t.Run("error on duplicate source ID", func(t *testing.T) {
		ds := model.Dataset{Sources: []model.DatasetSource{{ID: "roadmap"}, {ID: "roadmap"}}}
		err := ds.Validate()
		gt.Error(t, err)
		gt.S(t, err.Error()).Contains("duplicate source ID")
	})
}
