package main

import (
	"wellnesshub/internal/config"
	"wellnesshub/internal/logger"
	"wellnesshub/internal/mongo"
	"wellnesshub/internal/mysql"
	"wellnesshub/internal/routing"
	"wellnesshub/pkg/authsess"
	"wellnesshub/pkg/middleware"

	"github.com/gorilla/mux"
)

func main() {
	config.Load() // load env var from .env

	db := mysql.LoadDB()
	defer db.Close()

	mongoDB := mongo.LoadDB()

	logger := logger.Load()

	r := mux.NewRouter()
	api := r.PathPrefix("/api").Subrouter()
	api.Use(middleware.Panic)
	api.Use(middleware.CheckJWT(authsess.NewMySQLRepo(db)))

	routing.InitRoutes(api, db, mongoDB, logger)
	routing.ServeStaticFiles(r)
	routing.ServeFallback(r, logger)
	routing.StartServer(r) // start server on localhost:8080
}
