package routing

import (
	"database/sql"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/mongo"

	"wellnesshub/pkg/authsess"
	"wellnesshub/pkg/handlers"
	"wellnesshub/pkg/session"
	"wellnesshub/pkg/user"
)

const (
	staticPath = "./static"
	serverAddr = ":8080"
)

func InitRoutes(api *mux.Router, db *sql.DB, mongoDB *mongo.Database, logger *slog.Logger) {

	sessionRepo := authsess.NewMySQLRepo(db)

	userService := user.NewService(user.NewMySQLRepo(db), sessionRepo)
	userHandler := handlers.NewUserHandler(userService, logger)

	wellnessService := session.NewService(session.NewMongoRepo(mongoDB))
	wellnessHandler := handlers.NewSessionHandler(wellnessService, logger)

	/* -+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+ */

	authRouter := api.PathPrefix("").Subrouter()
	publicRouter := api.PathPrefix("/sessions").Subrouter()
	myRouter := api.PathPrefix("/my-sessions").Subrouter()

	/* auth routers */
	authRouter.HandleFunc("/register", userHandler.Register).Methods("POST").Name("register")
	authRouter.HandleFunc("/login", userHandler.Login).Methods("POST").Name("login")
	authRouter.HandleFunc("/logout", userHandler.Logout).Methods("POST").Name("logout")

	/* public session routers */
	publicRouter.HandleFunc("", wellnessHandler.GetPublicSessions).Methods("GET")
	publicRouter.HandleFunc("/{id:[a-zA-Z0-9]+}", wellnessHandler.GetPublicSession).Methods("GET")

	/* owner session routers */
	myRouter.HandleFunc("", wellnessHandler.GetMySessions).Methods("GET")
	myRouter.HandleFunc("/save-draft", wellnessHandler.SaveDraft).Methods("POST")
	myRouter.HandleFunc("/publish", wellnessHandler.Publish).Methods("POST")
	myRouter.HandleFunc("/{id:[a-zA-Z0-9]+}", wellnessHandler.GetMySession).Methods("GET")
	myRouter.HandleFunc("/{id:[a-zA-Z0-9]+}", wellnessHandler.DeleteSession).Methods("DELETE")
}

func ServeStaticFiles(r *mux.Router) {
	fs := http.FileServer(http.Dir(staticPath))
	r.PathPrefix("/static/").Handler(http.StripPrefix("/static/", fs))
}

func ServeFallback(r *mux.Router, logger *slog.Logger) {
	r.PathPrefix("/").HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, "/api/") || strings.HasPrefix(r.URL.Path, "/static/") {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusOK)
			if _, err := w.Write([]byte("[]")); err != nil {
				logger.Error("failed to write fallback JSON", slog.String("path", r.URL.Path), slog.Any("error", err))
			}
			return
		}
		http.ServeFile(w, r, "static/html/index.html")
	})
}

func StartServer(r *mux.Router) {
	fmt.Println("\n\033[32m", "The server is running on http://localhost"+serverAddr, "\033[0m")
	if err := http.ListenAndServe(serverAddr, r); err != nil {
		log.Fatal("Server failed:", err)
	}
}
