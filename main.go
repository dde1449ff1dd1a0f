package main

import (
	"context"
	"log"

	"genzshop-backend/config"
	"genzshop-backend/controllers"
	"genzshop-backend/routes"

	"github.com/cloudinary/cloudinary-go/v2"
)

func main() {
	cfg := config.Load()

	client, err := config.ConnectDB(cfg.MongoURI, cfg.MongoMode)
	if err != nil {
		log.Fatal(err)
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Println("Error disconnecting from MongoDB:", err)
		}
	}()

	var cld *cloudinary.Cloudinary
	if cfg.CloudinaryURL != "" {
		cld, err = cloudinary.NewFromURL(cfg.CloudinaryURL)
		if err != nil {
			log.Fatal("Invalid CLOUDINARY_URL:", err)
		}
	} else {
		log.Println("CLOUDINARY_URL not set, image uploads disabled")
	}

	ctrl := &controllers.Controller{
		DB:              client.Database(cfg.MongoDBName),
		Cld:             cld,
		PasetoSecretKey: cfg.PasetoSecretKey,
	}

	r := routes.Setup(ctrl, cfg.Env)
	log.Println("GenZShop API listening on port", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
