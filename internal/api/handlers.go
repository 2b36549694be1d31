package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/disruptops/cognitocache/internal/api/presenter"
	"github.com/disruptops/cognitocache/internal/buildinfo"
	"github.com/disruptops/cognitocache/internal/core"
)

// handleResolve processes token resolution requests.
func (s *Server) handleResolve(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := log.Ctx(ctx)

	var creds core.CredentialSet
	if err := DecodePayload(r, &creds); err != nil {
		logger.Warn().Err(err).Msg("failed to decode resolve request payload")
		presenter.Error(w, r, "invalid request payload", http.StatusBadRequest)
		return
	}
	s.cfg.ApplyDefaults(&creds)

	result, err := s.resolver.ResolveDetailed(ctx, creds)
	if err != nil {
		var validationErr *core.ValidationError
		if errors.As(err, &validationErr) {
			logger.Warn().Str("field", validationErr.Field).Msg("resolve request failed validation")
			presenter.Error(w, r, validationErr.Error(), http.StatusBadRequest)
			return
		}
		logger.Error().Err(err).Msg("token resolution failed")
		presenter.Error(w, r, "token resolution failed", http.StatusInternalServerError)
		return
	}

	logger.Info().
		Str("source", string(result.Source)).
		Bool("failed", result.Failed).
		Msg("token resolved")

	presenter.JSON(w, r, result, http.StatusOK)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	presenter.JSON(w, r, map[string]string{"status": "ok"}, http.StatusOK)
}

func (s *Server) handleAbout(w http.ResponseWriter, r *http.Request) {
	presenter.JSON(w, r, buildinfo.GetBuildInfo(), http.StatusOK)
}

// DecodePayload decodes a JSON request body into out.
func DecodePayload(r *http.Request, out any) error {
	if err := json.NewDecoder(r.Body).Decode(out); err != nil {
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("empty request body")
		}
		return fmt.Errorf("decoding payload: %w", err)
	}
	return nil
}
