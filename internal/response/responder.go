package response

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"runtime"
	"time"

	"github.com/google/uuid"
)

const (
	MessageUnexpected = "unexpected error occurred"
	MessageInvalid    = "invalid input"
)

type Responder struct {
	DebugMode bool
}

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type messageBody struct {
	Message string `json:"message"`
}

type validationBody struct {
	Message string       `json:"message"`
	Errors  []FieldError `json:"errors"`
}

type unexpectedBody struct {
	Message string `json:"message"`
	ErrorId string `json:"errorId"`
	Detail  string `json:"detail,omitempty"`
}

// RespondAndLogError will respond with generic error code (500) and log with slog.LevelError level.
// The client only sees the error text in debug mode.
func (rr *Responder) RespondAndLogError(w http.ResponseWriter, ctx context.Context, err error) {
	errId := uuid.NewString()
	log(ctx, slog.LevelError, err.Error(), slog.String("err_id", errId))

	body := unexpectedBody{Message: MessageUnexpected, ErrorId: errId}
	if rr.DebugMode {
		body.Detail = err.Error()
	}

	rr.SendJson(w, ctx, http.StatusInternalServerError, body)
}

// RespondMessage sends {"message": msg} and logs it at debug level.
func (rr *Responder) RespondMessage(w http.ResponseWriter, ctx context.Context, status int, msg string) {
	log(ctx, slog.LevelDebug, msg, slog.Int("status", status))
	rr.SendJson(w, ctx, status, messageBody{Message: msg})
}

func (rr *Responder) RespondValidation(w http.ResponseWriter, ctx context.Context, errs []FieldError) {
	log(ctx, slog.LevelDebug, MessageInvalid, slog.Any("errors", errs))
	rr.SendJson(w, ctx, http.StatusBadRequest, validationBody{Message: MessageInvalid, Errors: errs})
}

func (rr *Responder) SendJson(w http.ResponseWriter, ctx context.Context, status int, data any) {
	bs, err := json.Marshal(data)
	if err != nil {
		log(ctx, slog.LevelError, "cannot marshal response body: "+err.Error())
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = io.WriteString(w, MessageUnexpected)
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(status)
	_, _ = io.Copy(w, bytes.NewReader(bs))
}

// Needed because it skips one more frame item than the slog.Log
func log(ctx context.Context, level slog.Level, msg string, attrs ...slog.Attr) {
	l := slog.Default()

	if !l.Enabled(ctx, level) {
		return
	}

	var pc uintptr
	var pcs [1]uintptr
	// skip [runtime.Callers, this function, this function's caller]
	runtime.Callers(3, pcs[:])
	pc = pcs[0]

	r := slog.NewRecord(time.Now(), level, msg, pc)
	r.AddAttrs(attrs...)
	_ = l.Handler().Handle(ctx, r)
}
