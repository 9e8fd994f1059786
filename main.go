package main

import (
	"log"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kataras/iris/v12"

	"luxe-estates-server/routes"
	"luxe-estates-server/storage"
)

func buildStore() storage.Store {
	switch os.Getenv("STORAGE_DRIVER") {
	case "", "memory":
		return storage.NewMemoryStore()
	case "sqlite", "postgres":
		db, err := storage.OpenDatabase()
		if err != nil {
			log.Fatal("error connecting to database: ", err)
		}
		store, err := storage.NewGormStore(db)
		if err != nil {
			log.Fatal("error migrating database: ", err)
		}
		return store
	default:
		log.Fatalf("unknown STORAGE_DRIVER %q", os.Getenv("STORAGE_DRIVER"))
		return nil
	}
}

func main() {
	godotenv.Load()

	store := buildStore()
	if os.Getenv("SKIP_SEED") == "" {
		if err := storage.Seed(store); err != nil {
			log.Fatal("error seeding store: ", err)
		}
	}

	cache := storage.NewCache()
	blob := storage.NewCloudinary()

	app := iris.New()
	app.Validator = validator.New()

	app.AllowMethods(iris.MethodOptions)
	app.UseRouter(func(ctx iris.Context) {
		ctx.Header("Access-Control-Allow-Origin", ctx.GetHeader("Origin"))
		ctx.Header("Vary", "Origin")
		ctx.Header("Access-Control-Allow-Credentials", "true")
		ctx.Header("Access-Control-Allow-Headers", "Authorization, Content-Type, X-Requested-With")
		ctx.Header("Access-Control-Allow-Methods", "GET,POST,PATCH,PUT,DELETE,OPTIONS")
		if ctx.Method() == iris.MethodOptions {
			ctx.StatusCode(iris.StatusNoContent)
			return
		}
		ctx.Next()
	})
	app.Use(iris.Compression)

	routes.Register(app, routes.NewHandler(store, cache, blob))

	port := os.Getenv("PORT")
	if port == "" {
		port = "4000"
	}
	app.Listen(":" + port)
}
