package main

import (
	"database/sql"
	"log"
	"time"

	_ "github.com/go-sql-driver/mysql"

	"itemBack/internal/config"
	"itemBack/internal/handlers"
	"itemBack/internal/repositories"
	"itemBack/internal/services"
	"itemBack/utils"
)

type application struct {
	errorLog  *log.Logger
	infoLog   *log.Logger
	jwtSecret string

	itemHandler      *handlers.ItemHandler
	itemStoreHandler *handlers.ItemStoreHandler
	userHandler      *handlers.UserHandler
	fileHandler      *handlers.FileHandler

	db *sql.DB
}

func initializeApp(db *sql.DB, cfg config.Config, errorLog, infoLog *log.Logger) (*application, error) {
	tokenManager, err := utils.NewManager(cfg.JWT.Secret, time.Duration(cfg.JWT.TTLHours)*time.Hour)
	if err != nil {
		return nil, err
	}

	var storage *utils.S3Storage
	if cfg.S3.Enabled {
		storage, err = utils.NewS3Storage(cfg.S3)
		if err != nil {
			return nil, err
		}
	}

	// Repositories
	itemRepo := repositories.ItemRepository{DB: db}
	itemStoreRepo := repositories.ItemStoreRepository{DB: db}
	userRepo := repositories.UserRepository{DB: db}
	fileRepo := repositories.FileRepository{DB: db}

	// Services
	itemService := &services.ItemService{ItemRepo: &itemRepo}
	itemStoreService := &services.ItemStoreService{StoreRepo: &itemStoreRepo, ItemRepo: &itemRepo}
	userService := &services.UserService{UserRepo: &userRepo, Tokens: tokenManager}
	fileService := &services.FileService{FileRepo: &fileRepo, Storage: storage, ErrorLog: errorLog}

	// Handlers
	itemHandler := &handlers.ItemHandler{Service: itemService}
	itemStoreHandler := &handlers.ItemStoreHandler{Service: itemStoreService}
	userHandler := &handlers.UserHandler{Service: userService}
	fileHandler := &handlers.FileHandler{Service: fileService, UploadDir: cfg.Uploads.Dir}

	return &application{
		errorLog:         errorLog,
		infoLog:          infoLog,
		jwtSecret:        cfg.JWT.Secret,
		itemHandler:      itemHandler,
		itemStoreHandler: itemStoreHandler,
		userHandler:      userHandler,
		fileHandler:      fileHandler,
		db:               db,
	}, nil
}

func openDB(dsn string) (*sql.DB, error) {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, err
	}
	if err = db.Ping(); err != nil {
		return nil, err
	}
	db.SetMaxIdleConns(35)
	return db, nil
}
