package server

import (
	"context"
	"net/http"

	"bookmanagement/internal/response"
	"bookmanagement/internal/service"
)

// respondError translates service failures into HTTP responses. Anything that
// is not a classified business failure is reported as 500.
func respondError(w http.ResponseWriter, ctx context.Context, rr *response.Responder, err error) {
	switch service.KindOf(err) {
	case service.KindNotFound, service.KindInvalidTransition:
		rr.RespondMessage(w, ctx, http.StatusNotFound, service.Message(err))
	default:
		rr.RespondAndLogError(w, ctx, err)
	}
}
