package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/matzehuels/plansmith/pkg/buildinfo"
	"github.com/matzehuels/plansmith/pkg/catalog"
	"github.com/matzehuels/plansmith/pkg/core/packing"
	"github.com/matzehuels/plansmith/pkg/core/plan"
	"github.com/matzehuels/plansmith/pkg/errors"
	"github.com/matzehuels/plansmith/pkg/palette"
	"github.com/matzehuels/plansmith/pkg/pipeline"
	"github.com/matzehuels/plansmith/pkg/store"
	"github.com/matzehuels/plansmith/pkg/wizard"
)

// generateRequest is a wizard config plus pipeline switches. Omitted
// config fields take their defaults.
type generateRequest struct {
	wizard.Config
	Clamp   bool `json:"clamp,omitempty"`
	Refresh bool `json:"refresh,omitempty"`
}

// generateResponse is the body of a successful POST /api/v1/plans.
type generateResponse struct {
	Plan          *plan.Plan        `json:"plan"`
	Strategy      packing.Strategy  `json:"strategy"`
	Advisories    []wizard.Advisory `json:"advisories"`
	Notes         []string          `json:"notes"`
	RequestedArea float64           `json:"requestedArea"`
	AllocatedArea float64           `json:"allocatedArea"`
	Cached        bool              `json:"cached"`
}

type styleEntry struct {
	ID string `json:"id"`
	palette.Palette
}

type healthBody struct {
	Status string         `json:"status"`
	Build  buildinfo.Info `json:"build"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthBody{Status: "ok", Build: buildinfo.Get()})
}

func (s *Server) handleCatalog(w http.ResponseWriter, r *http.Request) {
	items := []catalog.Item{}
	if s.runner.Catalog != nil {
		items = s.runner.Catalog.Items()
	}
	writeJSON(w, http.StatusOK, items)
}

func (s *Server) handleStyles(w http.ResponseWriter, r *http.Request) {
	styles := []styleEntry{}
	if s.runner.Palette != nil {
		for _, id := range s.runner.Palette.Styles() {
			styles = append(styles, styleEntry{ID: id, Palette: s.runner.Palette.Resolve(id)})
		}
	}
	writeJSON(w, http.StatusOK, styles)
}

func (s *Server) handleCreatePlan(w http.ResponseWriter, r *http.Request) {
	req := generateRequest{Config: wizard.DefaultConfig()}
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(&req); err != nil {
		s.writeError(w, r, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode request"))
		return
	}

	res, hit, err := s.runner.GenerateWithCacheInfo(r.Context(), pipeline.Options{
		Config:  req.Config,
		Clamp:   req.Clamp,
		Refresh: req.Refresh,
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if err := s.store.Save(r.Context(), res.Plan); err != nil {
		s.writeError(w, r, err)
		return
	}

	notes := res.Notes
	if notes == nil {
		notes = []string{}
	}
	w.Header().Set("Location", "/api/v1/plans/"+res.Plan.ID)
	writeJSON(w, http.StatusCreated, generateResponse{
		Plan:          res.Plan,
		Strategy:      res.Strategy,
		Advisories:    res.Advisories,
		Notes:         notes,
		RequestedArea: res.RequestedArea,
		AllocatedArea: res.AllocatedArea,
		Cached:        hit,
	})
}

func (s *Server) handleListPlans(w http.ResponseWriter, r *http.Request) {
	list, err := s.store.List(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if list == nil {
		list = []store.Summary{}
	}
	writeJSON(w, http.StatusOK, list)
}

func (s *Server) handleGetPlan(w http.ResponseWriter, r *http.Request) {
	p, ok := s.loadPlan(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (s *Server) handleDeletePlan(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := errors.ValidatePlanID(id); err != nil {
		s.writeError(w, r, err)
		return
	}
	if err := s.store.Delete(r.Context(), id); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleArtifact renders one format of a stored plan.
func (s *Server) handleArtifact(format string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := s.loadPlan(w, r)
		if !ok {
			return
		}
		artifacts, err := s.runner.Render(r.Context(), p, pipeline.Options{
			Formats:  []string{format},
			Detailed: r.URL.Query().Get("detailed") == "true",
		})
		if err != nil {
			s.writeError(w, r, err)
			return
		}

		w.Header().Set("Content-Type", pipeline.ContentTypes[format])
		if format == pipeline.FormatXLSX {
			w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", p.ID+".xlsx"))
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(artifacts[format])
	}
}

func (s *Server) loadPlan(w http.ResponseWriter, r *http.Request) (*plan.Plan, bool) {
	id := chi.URLParam(r, "id")
	if err := errors.ValidatePlanID(id); err != nil {
		s.writeError(w, r, err)
		return nil, false
	}
	p, err := s.store.Get(r.Context(), id)
	if err != nil {
		s.writeError(w, r, err)
		return nil, false
	}
	return p, true
}
