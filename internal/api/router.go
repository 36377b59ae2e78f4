package api

import (
	"net/http"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"github.com/voxroom/voxroom-backend/internal/api/recovery"
	"github.com/voxroom/voxroom-backend/internal/chat"
	"github.com/voxroom/voxroom-backend/internal/config"
	"github.com/voxroom/voxroom-backend/internal/events"
	"github.com/voxroom/voxroom-backend/internal/llm"
	"github.com/voxroom/voxroom-backend/internal/memory"
	"github.com/voxroom/voxroom-backend/internal/token"
)

// NewRouter wires HTTP routes to handlers and wraps them in the middleware
// stack (panic recovery, request logging, permissive CORS).
func NewRouter(cfg *config.Config, store *memory.Store, provider llm.Provider, bus *events.Bus, log zerolog.Logger) http.Handler {
	root := mux.NewRouter()
	root.Use(recovery.Middleware)
	root.Use(RequestLog(log))

	builder := token.NewBuilder(cfg.LiveKitAPIKey, cfg.LiveKitAPISecret, cfg.ResolveLiveKitHost())
	replier := chat.NewReplier(provider, cfg.ProviderTimeout(), log)

	health := NewHealthHandler()
	root.HandleFunc("/health", health.Check).Methods("GET")

	tok := NewTokenHandler(builder, log)
	root.HandleFunc("/token", tok.CreateToken).Methods("POST")

	ch := NewChatHandler(store, replier)
	root.HandleFunc("/chat", ch.Chat).Methods("POST")

	mem := NewMemoryHandler(store)
	root.HandleFunc("/memory/{username}", mem.GetMemory).Methods("GET")
	root.HandleFunc("/memory", mem.UpsertMemory).Methods("POST")

	hand := NewHandoffHandler(store, bus, log)
	root.HandleFunc("/handoff", hand.Handoff).Methods("POST")

	speech := NewSpeechHandler()
	root.HandleFunc("/stt", speech.SpeechToText).Methods("POST")
	root.HandleFunc("/tts", speech.TextToSpeech).Methods("POST")

	// Wide-open CORS, matching the rest of the development surface. Not
	// suitable for production as-is.
	cors := handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedMethods([]string{
			http.MethodGet, http.MethodPost, http.MethodPut,
			http.MethodDelete, http.MethodOptions,
		}),
		handlers.AllowedHeaders([]string{"Content-Type", "Authorization", "X-Requested-With"}),
		handlers.AllowCredentials(),
	)
	return cors(root)
}
