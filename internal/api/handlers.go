package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/sodam-labs/sodam/internal/feature"
	"github.com/sodam-labs/sodam/internal/model"
	"github.com/sodam-labs/sodam/internal/profile"
	"github.com/sodam-labs/sodam/internal/scorer"
	"github.com/sodam-labs/sodam/internal/store"
)

const maxBodyBytes = 10 << 20

// scoreRequest accepts biz_type as an alias for category.
type scoreRequest struct {
	Category string      `json:"category"`
	BizType  string      `json:"biz_type"`
	Features feature.Set `json:"features"`
}

type batchRequest struct {
	Category string       `json:"category"`
	BizType  string       `json:"biz_type"`
	Items    []model.Item `json:"items"`
}

type batchResponse struct {
	Items []scorer.ItemResult `json:"items"`
}

type categoryView struct {
	Name        string          `json:"name"`
	Weights     profile.Weights `json:"weights"`
	IncomeCurve string          `json:"income_curve"`
	AgeBinding  string          `json:"age_binding"`
	Gender      string          `json:"gender"`
}

func pickCategory(category, bizType string) string {
	if strings.TrimSpace(category) != "" {
		return category
	}
	return bizType
}

// decodeBody decodes a JSON request body into dst. An empty body leaves dst
// at its zero value.
func decodeBody(r *http.Request, dst any) error {
	data, err := io.ReadAll(r.Body)
	if err != nil {
		return err
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	return dec.Decode(dst)
}

// readRequest decodes the body into dst, writing a 400 or 413 on failure.
func readRequest(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	err := decodeBody(r, dst)
	if err == nil {
		return true
	}
	if isBodyTooLarge(err) {
		writeError(w, http.StatusRequestEntityTooLarge, "request body too large")
		return false
	}
	writeError(w, http.StatusBadRequest, "invalid request body")
	return false
}

func (h *Handler) health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) score(w http.ResponseWriter, r *http.Request) {
	var req scoreRequest
	if !readRequest(w, r, &req) {
		return
	}

	res := h.svc.Score(r.Context(), pickCategory(req.Category, req.BizType), req.Features)
	writeJSON(w, http.StatusOK, res)
}

func (h *Handler) batch(w http.ResponseWriter, r *http.Request) {
	var req batchRequest
	if !readRequest(w, r, &req) {
		return
	}
	if h.maxItems > 0 && len(req.Items) > h.maxItems {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("too many items: %d (max %d)", len(req.Items), h.maxItems))
		return
	}

	out := h.svc.ScoreBatch(r.Context(), pickCategory(req.Category, req.BizType), req.Items)
	if out == nil {
		out = []scorer.ItemResult{}
	}
	writeJSON(w, http.StatusOK, batchResponse{Items: out})
}

func (h *Handler) categories(w http.ResponseWriter, _ *http.Request) {
	all := profile.All()
	views := make([]categoryView, len(all))
	for i, p := range all {
		views[i] = categoryView{
			Name:        p.Name,
			Weights:     p.Weights,
			IncomeCurve: p.Income.String(),
			AgeBinding:  string(p.AgeBinding),
			Gender:      string(p.Gender),
		}
	}
	writeJSON(w, http.StatusOK, map[string]any{"categories": views})
}

func (h *Handler) sample(w http.ResponseWriter, r *http.Request) {
	category := pickCategory(r.URL.Query().Get("category"), r.URL.Query().Get("biz_type"))

	areas := store.SampleAreas()
	if h.areas != nil {
		stored, err := h.areas.ListAreas(r.Context(), store.AreaFilter{Limit: h.maxItems})
		if err != nil {
			zap.L().Error("api: list sample areas", zap.Error(err))
			writeError(w, http.StatusInternalServerError, "failed to load sample areas")
			return
		}
		areas = stored
	}

	items := make([]model.Item, len(areas))
	for i, a := range areas {
		items[i] = a.Item()
	}
	out := h.svc.ScoreBatch(r.Context(), category, items)
	if out == nil {
		out = []scorer.ItemResult{}
	}
	writeJSON(w, http.StatusOK, batchResponse{Items: out})
}

// isBodyTooLarge reports whether err came from http.MaxBytesReader.
func isBodyTooLarge(err error) bool {
	var mbe *http.MaxBytesError
	return errors.As(err, &mbe)
}
