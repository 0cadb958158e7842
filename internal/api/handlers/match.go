// internal/api/handlers/match.go
package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	commonerrors "github.com/c-xld1/ne-yesek-matching/internal/common/errors"
	"github.com/c-xld1/ne-yesek-matching/internal/common/logger"
	"github.com/c-xld1/ne-yesek-matching/internal/common/validation"
	"github.com/c-xld1/ne-yesek-matching/internal/models"
)

const maxRequestBodyBytes = 1 << 20

// Matcher is the engine operation this handler fronts.
type Matcher interface {
	Match(ctx context.Context, query models.MatchQuery) (*models.MatchResult, error)
}

type MatchHandler struct {
	Engine Matcher
	Logger logger.Logger
}

// matchResponse is the success envelope returned to the caller.
type matchResponse struct {
	Success      bool                `json:"success"`
	TotalFound   int                 `json:"total_found"`
	Chefs        []models.ScoredChef `json:"chefs"`
	UserLocation models.UserLocation `json:"user_location"`
}

// Match validates the request body against the schema, runs the matching
// engine, and returns the ranked chef list.
func (h *MatchHandler) Match(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxRequestBodyBytes))
	if err != nil {
		writeError(w, http.StatusBadRequest, "unable to read request body")
		return
	}
	defer r.Body.Close()

	if err := validation.ValidateMatchRequest(body); err != nil {
		writeError(w, http.StatusBadRequest, validationMessage(commonerrors.NewValidationError(err.Error())))
		return
	}

	var query models.MatchQuery
	if err := json.Unmarshal(body, &query); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json body")
		return
	}

	result, err := h.Engine.Match(r.Context(), query)
	if err != nil {
		var stdErr *commonerrors.StandardError
		if !errors.As(err, &stdErr) {
			err = commonerrors.NewInternalError(err)
		}
		status := commonerrors.HTTPStatus(err)
		if status >= http.StatusInternalServerError {
			h.Logger.WithError(err).Error("match request failed", map[string]interface{}{
				"userId": query.UserID,
			})
		}
		writeError(w, status, validationMessage(err))
		return
	}

	writeJSON(w, http.StatusOK, matchResponse{
		Success:      true,
		TotalFound:   result.TotalFound,
		Chefs:        result.Chefs,
		UserLocation: result.UserLocation,
	})
}

// validationMessage exposes validation details to the caller; other error
// classes only surface their generic message.
func validationMessage(err error) string {
	msg := commonerrors.UserMessage(err)
	var stdErr *commonerrors.StandardError
	if errors.As(err, &stdErr) && stdErr.Code == commonerrors.ErrCodeValidationFailed && stdErr.Details != "" {
		return msg + ": " + stdErr.Details
	}
	return msg
}
