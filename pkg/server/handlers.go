package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/matzehuels/tagcloud/pkg/buildinfo"
	tcerrors "github.com/matzehuels/tagcloud/pkg/errors"
	"github.com/matzehuels/tagcloud/pkg/geom"
	pkgio "github.com/matzehuels/tagcloud/pkg/io"
	"github.com/matzehuels/tagcloud/pkg/pipeline"
	"github.com/matzehuels/tagcloud/pkg/session"
)

type pointBody struct {
	X int `json:"x"`
	Y int `json:"y"`
}

type createBody struct {
	Center pointBody `json:"center"`
}

type createdBody struct {
	ID string `json:"id"`
}

type sizeBody struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

type rectBody struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

var imageTypes = map[string]string{
	pipeline.FormatPNG: "image/png",
	pipeline.FormatSVG: "image/svg+xml",
}

func (s *Server) healthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok", "version": buildinfo.Version})
}

func (s *Server) createSession(w http.ResponseWriter, r *http.Request) {
	var body createBody
	if err := decode(r, w, &body, true); err != nil {
		writeError(w, err)
		return
	}
	sess, err := s.store.Create(r.Context(), geom.Pt(body.Center.X, body.Center.Y))
	if err != nil {
		writeError(w, err)
		return
	}
	s.logger.Info("session created", "id", sess.ID)
	w.Header().Set("Location", "/sessions/"+sess.ID)
	writeJSON(w, http.StatusCreated, createdBody{ID: sess.ID})
}

func (s *Server) session(w http.ResponseWriter, r *http.Request) (*session.Session, bool) {
	sess, err := s.store.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return nil, false
	}
	return sess, true
}

func (s *Server) placeRect(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(w, r)
	if !ok {
		return
	}
	var body sizeBody
	if err := decode(r, w, &body, false); err != nil {
		writeError(w, err)
		return
	}
	rect, err := sess.Place(geom.Sz(body.Width, body.Height))
	if err != nil {
		if tcerrors.IsInternal(err) {
			s.logger.Error("placement failed", "session", sess.ID, "err", err)
		}
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, rectBody{
		X:      rect.Min.X,
		Y:      rect.Min.Y,
		Width:  rect.Size.Width,
		Height: rect.Size.Height,
	})
}

func (s *Server) recenter(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(w, r)
	if !ok {
		return
	}
	var body pointBody
	if err := decode(r, w, &body, false); err != nil {
		writeError(w, err)
		return
	}
	if err := sess.Recenter(geom.Pt(body.X, body.Y)); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) layout(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(w, r)
	if !ok {
		return
	}
	w.Header().Set("Content-Type", "application/json")
	if err := pkgio.WriteLayout(sess.Layout(), w); err != nil {
		s.logger.Warn("write layout", "session", sess.ID, "err", err)
	}
}

func (s *Server) image(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(w, r)
	if !ok {
		return
	}
	format := chi.URLParam(r, "format")
	contentType, ok := imageTypes[format]
	if !ok {
		writeError(w, tcerrors.New(tcerrors.ErrCodeInvalidFormat, "unsupported image format: %q", format))
		return
	}

	opts := s.render
	opts.Formats = []string{format}
	artifacts, err := s.runner.Render(r.Context(), sess.Layout(), opts)
	if err != nil {
		if tcerrors.GetCode(err) == "" {
			s.logger.Error("render failed", "session", sess.ID, "err", err)
		}
		writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(artifacts[format])
}

func (s *Server) deleteSession(w http.ResponseWriter, r *http.Request) {
	if err := s.store.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
