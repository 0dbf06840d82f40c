package http

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/sprintboard/pkg/domain/interfaces"
	"github.com/secmon-lab/sprintboard/pkg/domain/model"
	"github.com/secmon-lab/sprintboard/pkg/domain/types"
	"github.com/secmon-lab/sprintboard/pkg/utils/async"
)

// maxImportBytes bounds the body of an import request
const maxImportBytes = 10 << 20

// APIHandler serves the timeline JSON API
type APIHandler struct {
	timelineUC interfaces.Timeline
	digestUC   interfaces.Digest
}

// NewAPIHandler creates a new API handler. digestUC may be nil.
func NewAPIHandler(timelineUC interfaces.Timeline, digestUC interfaces.Digest) *APIHandler {
	return &APIHandler{
		timelineUC: timelineUC,
		digestUC:   digestUC,
	}
}

func sourceParam(r *http.Request) types.SourceID {
	return types.SourceID(chi.URLParam(r, "source"))
}

// HandleListSources returns all known sources
func (h *APIHandler) HandleListSources(w http.ResponseWriter, r *http.Request) {
	sources, err := h.timelineUC.Sources(r.Context())
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, map[string]any{"sources": sources})
}

// HandleTimeline returns the render instructions of a source
func (h *APIHandler) HandleTimeline(w http.ResponseWriter, r *http.Request) {
	opts, err := parseViewOptions(r)
	if err != nil {
		writeError(w, err, http.StatusBadRequest)
		return
	}

	view, err := h.timelineUC.View(r.Context(), sourceParam(r), opts)
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, view)
}

// HandleSummary returns the KPI summary of a source
func (h *APIHandler) HandleSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.timelineUC.Summary(r.Context(), sourceParam(r))
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, summary)
}

// HandleImport stores a JSON array of raw items under a source
func (h *APIHandler) HandleImport(w http.ResponseWriter, r *http.Request) {
	replace := false
	if v := r.URL.Query().Get("replace"); v != "" {
		parsed, err := strconv.ParseBool(v)
		if err != nil {
			writeError(w, goerr.Wrap(err, "invalid replace parameter", goerr.V("replace", v)), http.StatusBadRequest)
			return
		}
		replace = parsed
	}

	var items []model.RawTimelineItem
	body := http.MaxBytesReader(w, r.Body, maxImportBytes)
	if err := json.NewDecoder(body).Decode(&items); err != nil {
		writeError(w, goerr.Wrap(err, "invalid request body, expected a JSON array of items"), http.StatusBadRequest)
		return
	}

	source := sourceParam(r)
	n, err := h.timelineUC.Import(r.Context(), source, items, replace)
	if err != nil {
		handleError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, map[string]any{
		"source":   source,
		"imported": n,
		"replaced": replace,
	})
}

// HandleDelete removes a source
func (h *APIHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.timelineUC.Delete(r.Context(), sourceParam(r)); err != nil {
		handleError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleDigest posts the Slack digest of a source in the background
func (h *APIHandler) HandleDigest(w http.ResponseWriter, r *http.Request) {
	if h.digestUC == nil || !h.digestUC.IsConfigured() {
		writeError(w, model.ErrDigestNotConfigured, http.StatusServiceUnavailable)
		return
	}

	source := sourceParam(r)
	if err := source.Validate(); err != nil {
		writeError(w, err, http.StatusBadRequest)
		return
	}

	async.Dispatch(r.Context(), func(ctx context.Context) error {
		return h.digestUC.Post(ctx, source)
	})

	ctxlog.From(r.Context()).Info("Dispatched timeline digest", "source", source)
	writeJSON(w, r, http.StatusAccepted, map[string]any{
		"source": source,
		"status": "accepted",
	})
}

// parseViewOptions reads today, group and viewport query parameters
func parseViewOptions(r *http.Request) (interfaces.ViewOptions, error) {
	q := r.URL.Query()
	var opts interfaces.ViewOptions

	if v := q.Get("today"); v != "" {
		today, ok := model.ParseFlexibleDate(v)
		if !ok {
			return opts, goerr.New("invalid today parameter", goerr.V("today", v))
		}
		opts.Today = today
	}

	opts.Group = q.Get("group")

	widths := []struct {
		key string
		dst *float64
	}{
		{"renderedWidth", &opts.Viewport.RenderedWidth},
		{"viewportWidth", &opts.Viewport.ViewportWidth},
		{"scrollWidth", &opts.Viewport.ScrollWidth},
	}
	for _, width := range widths {
		v := q.Get(width.key)
		if v == "" {
			continue
		}
		f, err := strconv.ParseFloat(v, 64)
		if err != nil || f < 0 {
			return opts, goerr.New("invalid viewport parameter", goerr.V(width.key, v))
		}
		*width.dst = f
	}

	return opts, nil
}
