package server

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/dominosheet/pkg/buildinfo"
	"github.com/matzehuels/dominosheet/pkg/dominoes"
	"github.com/matzehuels/dominosheet/pkg/errors"
	"github.com/matzehuels/dominosheet/pkg/pipeline"
	"github.com/matzehuels/dominosheet/pkg/pips"
)

// Response headers set on sheet responses.
const (
	HeaderDocumentID = "X-Document-Id"
	HeaderSeed       = "X-Seed"
	HeaderCache      = "X-Cache"
)

var contentTypes = map[string]string{
	pipeline.FormatSVG:  "image/svg+xml",
	pipeline.FormatPDF:  "application/pdf",
	pipeline.FormatPNG:  "image/png",
	pipeline.FormatJSON: "application/json",
}

type healthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

type decodeResponse struct {
	Value     int      `json:"value"`
	Binary    string   `json:"binary"`
	Rotated   int      `json:"rotated"`
	Canonical bool     `json:"canonical"`
	Pips      int      `json:"pips"`
	Rows      [2][]int `json:"rows"`
}

type errorResponse struct {
	Code  string `json:"code"`
	Error string `json:"error"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{Status: "ok", Version: buildinfo.Version})
}

func (s *Server) handleDecode(w http.ResponseWriter, r *http.Request) {
	raw := chi.URLParam(r, "value")
	v, err := strconv.ParseInt(raw, 0, 0)
	if err != nil {
		s.writeError(w, r, errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid value %q", raw))
		return
	}
	face, err := pips.Decode(int(v))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, decodeResponse{
		Value:     int(v),
		Binary:    fmt.Sprintf("%012b", v),
		Rotated:   dominoes.Rotate(int(v)),
		Canonical: dominoes.IsCanonical(int(v)),
		Pips:      face.Count(),
		Rows:      [2][]int{face.Lit(0), face.Lit(1)},
	})
}

// handleSheet renders one artifact. The JSON body is decoded on top of
// pipeline.DefaultOptions, so an empty body yields the default sheet. The
// format query parameter wins over the body's formats.
func (s *Server) handleSheet(w http.ResponseWriter, r *http.Request) {
	opts := pipeline.DefaultOptions()
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&opts); err != nil && err != io.EOF {
		s.writeError(w, r, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode request body"))
		return
	}

	format := r.URL.Query().Get("format")
	if format == "" && len(opts.Formats) > 0 {
		format = opts.Formats[0]
	}
	if format == "" {
		format = pipeline.FormatPDF
	}
	if err := pipeline.ValidateFormat(format); err != nil {
		s.writeError(w, r, err)
		return
	}
	opts.Formats = []string{format}
	opts.Logger = s.logger.With("request_id", middleware.GetReqID(r.Context()))

	result, err := s.runner.Execute(r.Context(), opts)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	cache := "MISS"
	if result.CacheInfo.RenderHit {
		cache = "HIT"
	}
	h := w.Header()
	h.Set("Content-Type", contentTypes[format])
	h.Set(HeaderDocumentID, result.DocumentID)
	h.Set(HeaderSeed, strconv.FormatUint(result.Seed, 10))
	h.Set(HeaderCache, cache)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(result.Artifacts[format])
}

// writeError maps err to a status code and writes it as JSON.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	if errors.IsClientError(err) {
		status = http.StatusBadRequest
	}
	code := errors.GetCode(err)
	if code == "" {
		code = errors.ErrCodeInternal
	}
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", "path", r.URL.Path, "err", err)
	}
	writeJSON(w, status, errorResponse{Code: string(code), Error: errors.UserMessage(err)})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
