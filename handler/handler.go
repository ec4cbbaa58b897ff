package handler

import (
	"net/http"
	"os"
	"strings"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/lambda-feedback/greeter/internal/middleware"
)

// MessageStyleEnv selects the style of the /json message.
const MessageStyleEnv = "MESSAGE_STYLE"

const (
	helloMessage   = "Hello json"
	messageStyleUp = "uppercase"
)

type HandlerParams struct {
	fx.In

	Log *zap.Logger
}

type messageResponse struct {
	Message string `json:"message"`
}

// MessageHandler serves the greeting message. The style is looked
// up on every request, so changes to the env apply immediately.
type MessageHandler struct {
	log *zap.Logger
}

func NewMessageHandler(params HandlerParams) *MessageHandler {
	return &MessageHandler{log: params.Log}
}

func (h *MessageHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.log, messageResponse{Message: Message(os.Getenv(MessageStyleEnv))})
}

// Message returns the greeting in the given style.
func Message(style string) string {
	if style == messageStyleUp {
		return strings.ToUpper(helloMessage)
	}
	return helloMessage
}

type timeResponse struct {
	Time string `json:"time"`
}

// NowHandler reports the time stamped by middleware.Timestamp.
type NowHandler struct {
	log *zap.Logger
}

func NewNowHandler(params HandlerParams) *NowHandler {
	return &NowHandler{log: params.Log}
}

func (h *NowHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	stamp, ok := middleware.TimeFromContext(r.Context())
	if !ok {
		h.log.Error("request carries no timestamp")
		http.Error(w, "missing timestamp", http.StatusInternalServerError)
		return
	}

	writeJSON(w, h.log, timeResponse{Time: stamp})
}

type echoResponse struct {
	Echo string `json:"echo"`
}

type EchoHandler struct {
	log *zap.Logger
}

func NewEchoHandler(params HandlerParams) *EchoHandler {
	return &EchoHandler{log: params.Log}
}

func (h *EchoHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.log, echoResponse{Echo: r.PathValue("word")})
}

type nameResponse struct {
	Name string `json:"name"`
}

// NameHandler joins first and last name. GET reads them from the
// query string, POST from the url-encoded body.
type NameHandler struct {
	log *zap.Logger
}

func NewNameHandler(params HandlerParams) *NameHandler {
	return &NameHandler{log: params.Log}
}

func (h *NameHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	values := r.URL.Query()
	if r.Method == http.MethodPost {
		values = middleware.Body(r.Context())
	}

	first, last := values.Get("first"), values.Get("last")

	writeJSON(w, h.log, nameResponse{Name: first + " " + last})
}

func HealthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}
