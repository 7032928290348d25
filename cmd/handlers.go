package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/jsphweid/harmondex/chord"
	"github.com/jsphweid/harmondex/key"
	"github.com/jsphweid/harmondex/model"
	"github.com/jsphweid/harmondex/notation"
	"github.com/jsphweid/harmondex/util"
	"github.com/sirupsen/logrus"
)

const requestIDHeader = "X-Request-ID"

// maxPitches bounds the request bodies of /spell and /identify.
const maxPitches = 1024

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(requestIDHeader)
		if id == "" {
			id = uuid.New().String()
		}
		w.Header().Set(requestIDHeader, id)

		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)

		s.logger.WithFields(logrus.Fields{
			"request_id": id,
			"method":     r.Method,
			"path":       r.URL.Path,
			"status":     rec.status,
			"duration":   time.Since(start),
		}).Info("Handled request")
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, model.ErrorResponse{Error: err.Error()})
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) error {
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<20)).Decode(v); err != nil {
		return fmt.Errorf("could not decode request body: %w", err)
	}
	return nil
}

func toPitches(ints []int) ([]notation.Pitch, error) {
	if len(ints) > maxPitches {
		return nil, fmt.Errorf("at most %d pitches per request", maxPitches)
	}
	res := make([]notation.Pitch, len(ints))
	for i, v := range ints {
		p, err := parsePitch(v)
		if err != nil {
			return nil, err
		}
		res[i] = p
	}
	return res, nil
}

func (s *Server) parseKey(name, bias string) (key.Key, error) {
	spelling := s.cfg.Spelling
	if bias != "" {
		spelling.Bias = bias
	}
	return spelling.ParseKey(name)
}

func chordResponse(c chord.Chord) (model.ChordResponse, error) {
	classes, err := c.NoteClasses()
	if err != nil {
		return model.ChordResponse{}, err
	}
	res := model.ChordResponse{Name: c.String(), Root: c.Root.String(), Type: c.Type.ID()}
	for _, nc := range classes {
		res.Notes = append(res.Notes, nc.String())
	}
	return res, nil
}

func (s *Server) HandleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) HandleSpell(w http.ResponseWriter, r *http.Request) {
	var input model.SpellRequest
	if err := decodeBody(w, r, &input); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	pitches, err := toPitches(input.Pitches)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	k, err := s.parseKey(input.Key, input.Bias)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	res := model.SpellResponse{Key: k.Name(), Notes: make([]string, 0, len(pitches))}
	for _, n := range k.SpellAll(pitches) {
		res.Notes = append(res.Notes, n.String())
	}
	writeJSON(w, http.StatusOK, res)
}

func (s *Server) HandleIdentify(w http.ResponseWriter, r *http.Request) {
	var input model.IdentifyRequest
	if err := decodeBody(w, r, &input); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	pitches, err := toPitches(input.Pitches)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	k, err := s.parseKey(input.Key, "")
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	c, ok := k.Identify(pitches, s.catalog)
	if !ok {
		writeError(w, http.StatusNotFound, errors.New("no chord in the catalog matches these pitches"))
		return
	}
	res, err := chordResponse(c)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (s *Server) HandleCatalog(w http.ResponseWriter, r *http.Request) {
	res := make([]model.CatalogEntry, 0, len(s.catalog))
	for _, t := range s.catalog {
		e := model.CatalogEntry{ID: t.ID(), Label: t.Label()}
		for _, iv := range t.Intervals() {
			e.Intervals = append(e.Intervals, iv.String())
		}
		res = append(res, e)
	}
	writeJSON(w, http.StatusOK, res)
}

func (s *Server) HandleKey(w http.ResponseWriter, r *http.Request) {
	k, err := s.parseKey(mux.Vars(r)["name"], r.URL.Query().Get("bias"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	res := model.KeyResponse{
		Key:    k.Name(),
		Tonic:  k.Tonic().String(),
		Scale:  k.Scale().Name(),
		Bias:   k.Bias().String(),
		Triads: chordNames(k.PrimaryTriads()),
	}
	for _, n := range k.Notes() {
		res.Notes = append(res.Notes, n.NoteClass.String())
	}
	writeJSON(w, http.StatusOK, res)
}

// HandleKeyChords lists the key's catalog chords. ?catalog=standard|extended
// picks a built-in catalog instead of the configured one and ?limit=n caps
// the list.
func (s *Server) HandleKeyChords(w http.ResponseWriter, r *http.Request) {
	k, err := s.parseKey(mux.Vars(r)["name"], "")
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	cat := s.catalog
	switch name := r.URL.Query().Get("catalog"); name {
	case "":
	case "standard":
		cat = chord.StandardCatalog()
	case "extended":
		cat = chord.ExtendedCatalog()
	default:
		writeError(w, http.StatusBadRequest, fmt.Errorf("unknown catalog %q", name))
		return
	}

	chords := k.Chords(cat)
	count := len(chords)
	if v := r.URL.Query().Get("limit"); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil || limit < 0 {
			writeError(w, http.StatusBadRequest, fmt.Errorf("invalid limit %q", v))
			return
		}
		chords = chords[:util.Min(limit, len(chords))]
	}

	res := model.ChordsResponse{Key: k.Name(), Count: count, Chords: make([]model.ChordResponse, 0, len(chords))}
	for _, c := range chords {
		cr, err := chordResponse(c)
		if err != nil {
			writeError(w, http.StatusInternalServerError, err)
			return
		}
		res.Chords = append(res.Chords, cr)
	}
	writeJSON(w, http.StatusOK, res)
}
