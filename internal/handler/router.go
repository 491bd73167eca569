package handler

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

// NewRouter creates a new HTTP router with all routes configured
func NewRouter(
	conversationHandler *ConversationHandler,
	optionsHandler *OptionsHandler,
) http.Handler {
	router := mux.NewRouter().StrictSlash(true)

	// Health check endpoint
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok","service":"pdf-chat-api"}`))
	}).Methods("GET")

	// Conversation routes
	router.HandleFunc("/conversation/", conversationHandler.Info).Methods("GET")
	router.HandleFunc("/conversation/", conversationHandler.Process).Methods("POST")

	// Options route
	router.HandleFunc("/options/", optionsHandler.Options).Methods("POST")

	// Configure CORS
	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodOptions,
		},
		AllowedHeaders: []string{
			"Accept",
			"Authorization",
			"Content-Type",
		},
		MaxAge: 300, // Maximum value not ignored by any of major browsers
	})

	return c.Handler(router)
}
