package main

import (
	"net/http"
	"os"

	"github.com/hrakoto/go-annuaire/app/cmd"
	"github.com/hrakoto/go-annuaire/app/configs"
	"github.com/hrakoto/go-annuaire/app/db/seeders"
	"github.com/hrakoto/go-annuaire/app/models/migrations"
	"github.com/hrakoto/go-annuaire/app/routes"
	"go.uber.org/zap"
)

func main() {
	env := configs.LoadEnv()
	configs.InitLogger(env)
	defer func() { _ = zap.L().Sync() }()

	if len(os.Args) > 1 {
		cmd.RunCli()
		return
	}

	db, err := configs.OpenConnection()
	if err != nil {
		zap.S().Fatalf("DB connection failed: %v", err)
	}
	zap.S().Infof("database connected (driver=%s)", env.DBDriver)

	if err := migrations.AutoMigrate(db); err != nil {
		zap.S().Fatalf("migration failed: %v", err)
	}
	if err := seeders.DBSeed(db); err != nil {
		zap.S().Fatalf("seeding failed: %v", err)
	}

	router := routes.NewRouter(db, env)

	server := http.Server{
		Addr:    env.Port,
		Handler: router,
	}

	zap.S().Infof("server starting on %s", server.Addr)
	if err := server.ListenAndServe(); err != nil {
		zap.S().Errorf("server stopped: %v", err)
	}
}
