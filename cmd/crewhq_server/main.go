package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/spf13/viper"
	"gorm.io/gorm"

	"github.com/crewhq/crewhq/internal/auth"
	"github.com/crewhq/crewhq/internal/cache"
	"github.com/crewhq/crewhq/internal/database"
	"github.com/crewhq/crewhq/internal/upload"
	"github.com/crewhq/crewhq/internal/workspace"
)

var (
	gitRevision = "unknown"
	gitBranch   = "unknown"
)

type AppConfig struct {
	apiAddr  string
	dbFile   string
	filesDir string
	filesURL string
	secret   string
	tokenTTL time.Duration
	debug    bool
}

type App struct {
	logger *slog.Logger
	config *AppConfig

	dbm    *database.DatabaseManager
	store  *upload.FileStore
	engine *workspace.Engine
	users  *auth.Service
	issuer *auth.TokenIssuer
	names  *cache.Cache[uint, string]
}

func NewApp(config *AppConfig) *App {
	app := &App{
		logger: slog.Default(),
		config: config,
	}

	db, err := gorm.Open(sqlite.Open(config.dbFile), &gorm.Config{})

	if err != nil {
		panic(err)
	}

	app.dbm = database.New(db)
	app.store = upload.NewFileStore(config.filesDir, config.filesURL)
	app.engine = workspace.NewEngine(app.dbm, app.store)
	app.issuer = auth.NewTokenIssuer(config.secret, config.tokenTTL)
	app.users = auth.NewService(app.dbm, app.issuer, app.store)

	app.names = cache.NewWithTTL[uint, string](time.Minute, func(id uint) string {
		if b := app.users.GetBrawler(id); b != nil {
			return b.DisplayName
		}

		return ""
	})

	return app
}

func (app *App) Run() {
	if err := app.dbm.Migrate(); err != nil {
		panic(err)
	}

	if err := app.store.Start(); err != nil {
		panic(err)
	}

	api := NewHttpApi(app)

	go func() {
		if err := api.Listen(); err != nil {
			panic(err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGINT, syscall.SIGTERM)
	<-c
	app.logger.Info("exiting...")
	_ = api.Shutdown()
}

func main() {
	fmt.Printf("version %s %s\n", gitRevision, gitBranch)

	var debug = flag.Bool("debug", false, "debug mode")
	var conf = flag.String("config", "crewhq.yml", "name of config file")
	flag.Parse()

	viper.SetConfigFile(*conf)

	viper.SetDefault("api_addr", ":8080")
	viper.SetDefault("db", "crewhq.db")
	viper.SetDefault("files.dir", "./data")
	viper.SetDefault("files.base_url", "/files")
	viper.SetDefault("jwt.secret", "")
	viper.SetDefault("jwt.ttl", "24h")

	if err := viper.ReadInConfig(); err != nil {
		slog.Info("no config file, using defaults", "error", err.Error())
	}

	level := slog.LevelInfo
	if *debug {
		level = slog.LevelDebug
	}

	h := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(h))

	config := &AppConfig{
		apiAddr:  viper.GetString("api_addr"),
		dbFile:   viper.GetString("db"),
		filesDir: viper.GetString("files.dir"),
		filesURL: viper.GetString("files.base_url"),
		secret:   viper.GetString("jwt.secret"),
		tokenTTL: viper.GetDuration("jwt.ttl"),
		debug:    *debug,
	}

	if config.secret == "" {
		slog.Warn("jwt.secret is not set, tokens will not survive restarts")
		config.secret = fmt.Sprintf("crewhq-%d", time.Now().UnixNano())
	}

	NewApp(config).Run()
}
